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

package settings

import (
	"fmt"
)

// Reader assembles the current settings
type Reader struct {
	clock Clock
	tz    Timezone
	ntp   NTPStore
}

// NewReader returns a Reader over the given accessors
func NewReader(clock Clock, tz Timezone, ntp NTPStore) *Reader {
	return &Reader{clock: clock, tz: tz, ntp: ntp}
}

// Get returns the current time, timezone and NTP settings
func (r *Reader) Get() (*Snapshot, error) {
	tz, err := r.tz.Current()
	if err != nil {
		return nil, fmt.Errorf("reading timezone: %w", err)
	}
	n, err := r.ntp.Read()
	if err != nil {
		return nil, fmt.Errorf("reading ntp settings: %w", err)
	}
	return &Snapshot{
		Time:     FormatTime(r.clock.Now()),
		Timezone: tz,
		NTP:      *n,
	}, nil
}
