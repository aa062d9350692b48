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

/*
Package settings implements the system time endpoint.

Reader assembles the current time, timezone and NTP settings into a Snapshot.
Writer applies a partial Update in a fixed order (timezone, time, ntp) and stops
at the first failure. Nothing is rolled back: every applied field is already
committed by its accessor when the next one runs.
*/
package settings

//go:generate mockgen -source=settings.go -destination=mock_settings_test.go -package=settings

import (
	"errors"
	"time"
)

// Resource is the bus resource served by Handler
const Resource = "/system/time"

// ErrNTPNotApplied must be wrapped by NTPStore.Update when the store could not
// persist or apply the new settings. Any other error is reported back verbatim.
var ErrNTPNotApplied = errors.New("ntp settings not applied")

// Clock reads and sets the system wall clock
type Clock interface {
	Now() time.Time
	Set(t time.Time) error
}

// Timezone reads and sets the system timezone
type Timezone interface {
	Current() (string, error)
	Set(name string) error
}

// ZoneLookup tells whether a timezone identifier is known to the system
type ZoneLookup interface {
	Known(name string) bool
}

// NTPStore holds NTP client settings
type NTPStore interface {
	Read() (*NTP, error)
	Update(u *NTPUpdate) error
}

// StatsServer is a stats server interface
type StatsServer interface {
	IncRequest(method string, code int)
}
