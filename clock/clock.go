/*
Copyright (c) Facebook, Inc. and its affiliates.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package clock

import (
	"fmt"
	"math"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// clock_adjtime modes from usr/include/linux/timex.h
const (
	// maximum time error
	AdjMaxError uint32 = 0x0004
	// clock status
	AdjStatus uint32 = 0x0010
	// add 'time' to current time
	AdjSetOffset uint32 = 0x0100
	// select nanosecond resolution
	AdjNano uint32 = 0x2000
)

// System is the system realtime clock
type System struct{}

// Now returns the current system time
func (c *System) Now() time.Time {
	return time.Now()
}

// Set sets CLOCK_REALTIME to t
func (c *System) Set(t time.Time) error {
	ts, err := timespec(t)
	if err != nil {
		return err
	}
	if err := unix.ClockSettime(unix.CLOCK_REALTIME, &ts); err != nil {
		return fmt.Errorf("clock_settime: %w", err)
	}
	return nil
}

// CLOCK_REALTIME can only be set within the range of int64 nanoseconds since the epoch
var (
	minSettable = time.Unix(0, 0)
	maxSettable = time.Unix(0, math.MaxInt64)
)

// timespec converts t without going through UnixNano, which wraps outside of 1678-2262
func timespec(t time.Time) (unix.Timespec, error) {
	if t.Before(minSettable) || t.After(maxSettable) {
		return unix.Timespec{}, fmt.Errorf("%s is outside of the settable range %s - %s",
			t.UTC().Format(time.RFC3339), minSettable.UTC().Format(time.RFC3339), maxSettable.UTC().Format(time.RFC3339))
	}
	return unix.Timespec{Sec: t.Unix(), Nsec: int64(t.Nanosecond())}, nil
}

// Step steps CLOCK_REALTIME by offset and marks it synchronised
func (c *System) Step(offset time.Duration) error {
	state, err := Step(unix.CLOCK_REALTIME, offset)
	if err != nil {
		return err
	}
	if state != unix.TIME_OK {
		log.Warningf("clock state %d is not TIME_OK after stepping", state)
	}
	return SetSync(unix.CLOCK_REALTIME)
}

// Step steps clock by given step
func Step(clockid int32, step time.Duration) (state int, err error) {
	tx := &unix.Timex{}
	tx.Modes = AdjSetOffset | AdjNano
	sec, nsec := splitStep(step)
	// this way we can have platform-dependent code isolated
	setTime(tx, sec, nsec)
	return unix.ClockAdjtime(clockid, tx)
}

// splitStep splits step into seconds and a non-negative nanosecond part,
// which is what ADJ_SETOFFSET|ADJ_NANO expects
func splitStep(step time.Duration) (sec, nsec time.Duration) {
	sec = step / time.Second
	nsec = step % time.Second
	if nsec < 0 {
		sec--
		nsec += time.Second
	}
	return sec, nsec
}

// SetSync sets clock status to TIME_OK
func SetSync(clockid int32) error {
	tx := &unix.Timex{}
	tx.Modes = AdjStatus | AdjMaxError
	state, err := unix.ClockAdjtime(clockid, tx)

	if err == nil && state != unix.TIME_OK {
		return fmt.Errorf("clock state %d is not TIME_OK after setting sync state", state)
	}
	return err
}
