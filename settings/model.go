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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"
)

// TimeLayout is how the current time is reported: UTC with microseconds
const TimeLayout = "2006-01-02T15:04:05.000000Z"

// accepted layouts for incoming timestamps, tried in order
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
}

var errNotBoolOrInt = errors.New("must be a boolean or an integer")

// Enable is the NTP enable flag. Clients send it either as a boolean or as an
// integer and it is always encoded back the way it came in.
type Enable struct {
	Value  int
	IsBool bool
}

// BoolEnable returns a boolean-encoded flag
func BoolEnable(on bool) Enable {
	e := Enable{IsBool: true}
	if on {
		e.Value = 1
	}
	return e
}

// IntEnable returns an integer-encoded flag
func IntEnable(v int) Enable {
	return Enable{Value: v}
}

// Enabled reports whether the flag is set
func (e Enable) Enabled() bool {
	return e.Value != 0
}

func (e Enable) String() string {
	if e.IsBool {
		return strconv.FormatBool(e.Enabled())
	}
	return strconv.Itoa(e.Value)
}

// enableFrom converts a decoded JSON or YAML scalar
func enableFrom(v interface{}) (Enable, error) {
	switch t := v.(type) {
	case bool:
		return BoolEnable(t), nil
	case int:
		return IntEnable(t), nil
	case json.Number:
		i, err := t.Int64()
		if err != nil {
			return Enable{}, errNotBoolOrInt
		}
		return IntEnable(int(i)), nil
	}
	return Enable{}, errNotBoolOrInt
}

// MarshalJSON implements json.Marshaler
func (e Enable) MarshalJSON() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (e *Enable) UnmarshalJSON(b []byte) error {
	v, err := decodeValue(b)
	if err != nil {
		return err
	}
	*e, err = enableFrom(v)
	return err
}

// MarshalYAML implements yaml.Marshaler
func (e Enable) MarshalYAML() (interface{}, error) {
	if e.IsBool {
		return e.Enabled(), nil
	}
	return e.Value, nil
}

// UnmarshalYAML implements yaml.Unmarshaler
func (e *Enable) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var v interface{}
	if err := unmarshal(&v); err != nil {
		return err
	}
	var err error
	*e, err = enableFrom(v)
	return err
}

// NTP is the NTP client configuration
type NTP struct {
	Enable   Enable `json:"enable" yaml:"enable"`
	Server   string `json:"server" yaml:"server"`
	Interval int    `json:"interval" yaml:"interval"`
}

// Merge returns a copy of n with every field present in u replaced
func (n NTP) Merge(u *NTPUpdate) NTP {
	if u == nil {
		return n
	}
	if u.Enable != nil {
		n.Enable = *u.Enable
	}
	if u.Server != nil {
		n.Server = *u.Server
	}
	if u.Interval != nil {
		n.Interval = *u.Interval
	}
	return n
}

// Snapshot is the full current state returned by GET and a successful PUT
type Snapshot struct {
	Time     string `json:"time"`
	Timezone string `json:"timezone"`
	NTP      NTP    `json:"ntp"`
}

// NTPUpdate is a partial NTP configuration. Nil fields are left untouched.
type NTPUpdate struct {
	Enable   *Enable `json:"enable,omitempty"`
	Server   *string `json:"server,omitempty"`
	Interval *int    `json:"interval,omitempty"`
}

// Update is a partial update request. Nil fields were not supplied.
type Update struct {
	Time     *string    `json:"time,omitempty"`
	Timezone *string    `json:"timezone,omitempty"`
	NTP      *NTPUpdate `json:"ntp,omitempty"`
}

// Empty reports whether none of the recognized keys were supplied
func (u *Update) Empty() bool {
	return u.Time == nil && u.Timezone == nil && u.NTP == nil
}

// FormatTime formats t the way Snapshot reports it
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// ParseTime parses an ISO-8601 timestamp. Timestamps without a zone are UTC.
func ParseTime(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported time format %q", s)
}

// decodeValue decodes a single JSON value keeping numbers as json.Number
func decodeValue(b []byte) (interface{}, error) {
	d := json.NewDecoder(bytes.NewReader(b))
	d.UseNumber()
	var v interface{}
	if err := d.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
