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
	"errors"

	log "github.com/sirupsen/logrus"
)

// step applies one field of an Update
type step struct {
	field   string
	present func(u *Update) bool
	apply   func(u *Update) *Failure
}

// Writer applies updates
type Writer struct {
	reader *Reader
	zones  ZoneLookup
	steps  []step
}

// NewWriter returns a Writer that mutates the accessors of r and
// validates timezone names against zones
func NewWriter(r *Reader, zones ZoneLookup) *Writer {
	w := &Writer{reader: r, zones: zones}
	// order matters: a failure stops every step after it
	w.steps = []step{
		{
			field:   "timezone",
			present: func(u *Update) bool { return u.Timezone != nil },
			apply:   w.applyTimezone,
		},
		{
			field:   "time",
			present: func(u *Update) bool { return u.Time != nil },
			apply:   w.applyTime,
		},
		{
			field:   "ntp",
			present: func(u *Update) bool { return u.NTP != nil },
			apply:   w.applyNTP,
		},
	}
	return w
}

// Put applies u and returns the resulting settings.
// The first failing field aborts the update, fields applied before it stay applied.
func (w *Writer) Put(u *Update) (*Snapshot, *Failure) {
	if u == nil || u.Empty() {
		return nil, clientError(MsgNoInput)
	}
	for _, s := range w.steps {
		if !s.present(u) {
			continue
		}
		log.Debugf("applying %s", s.field)
		if f := s.apply(u); f != nil {
			f.Field = s.field
			return nil, f
		}
	}
	snap, err := w.reader.Get()
	if err != nil {
		return nil, serverError(err.Error())
	}
	return snap, nil
}

func (w *Writer) applyTimezone(u *Update) *Failure {
	name := *u.Timezone
	if !w.zones.Known(name) {
		log.Warningf("unknown timezone %q", name)
		return clientError(MsgTimezoneNotExist)
	}
	if err := w.reader.tz.Set(name); err != nil {
		log.Errorf("failed to set timezone %q: %v", name, err)
		return serverError(MsgTimezoneFailed)
	}
	log.Infof("timezone set to %s", name)
	return nil
}

func (w *Writer) applyTime(u *Update) *Failure {
	t, err := ParseTime(*u.Time)
	if err != nil {
		log.Errorf("failed to set system time: %v", err)
		return serverError(MsgTimeFailed)
	}
	if err := w.reader.clock.Set(t); err != nil {
		log.Errorf("failed to set system time to %s: %v", t, err)
		return serverError(MsgTimeFailed)
	}
	log.Infof("system time set to %s", FormatTime(t))
	return nil
}

func (w *Writer) applyNTP(u *Update) *Failure {
	err := w.reader.ntp.Update(u.NTP)
	if err == nil {
		return nil
	}
	log.Errorf("failed to update ntp settings: %v", err)
	if errors.Is(err, ErrNTPNotApplied) {
		return serverError(MsgNTPFailed)
	}
	return clientError(err.Error())
}
