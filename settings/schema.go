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
	"regexp"
	"strings"
)

const maxStringLen = 255

var (
	errNotObject  = errors.New("must be an object")
	errNotString  = errors.New("must be a string")
	errNotInteger = errors.New("must be an integer")
	errBadZone    = errors.New("must be a timezone identifier")
)

var zoneFormat = regexp.MustCompile(`^[A-Za-z0-9_+\-/]*$`)

// ValidationError is returned by ParseUpdate for the first offending field
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value for %q: %s", e.Field, e.Reason)
}

// fieldRule validates one raw value and stores it in the update
type fieldRule struct {
	name  string
	parse func(u *Update, raw json.RawMessage) error
}

// updateSchema is checked in order, unknown keys are dropped
var updateSchema = []fieldRule{
	{
		name: "time",
		parse: func(u *Update, raw json.RawMessage) error {
			s, err := stringValue(raw, 1, maxStringLen)
			if err != nil {
				return err
			}
			u.Time = &s
			return nil
		},
	},
	{
		name: "timezone",
		parse: func(u *Update, raw json.RawMessage) error {
			s, err := stringValue(raw, 0, maxStringLen)
			if err != nil {
				return err
			}
			if !zoneFormat.MatchString(s) || strings.Contains(s, "..") {
				return errBadZone
			}
			u.Timezone = &s
			return nil
		},
	},
	{
		name: "ntp",
		parse: func(u *Update, raw json.RawMessage) error {
			n, err := parseNTP(raw)
			if err != nil {
				return err
			}
			u.NTP = n
			return nil
		},
	},
}

// ntpRule is a fieldRule for the ntp sub-object
type ntpRule struct {
	name  string
	parse func(n *NTPUpdate, raw json.RawMessage) error
}

var ntpSchema = []ntpRule{
	{
		name: "enable",
		parse: func(n *NTPUpdate, raw json.RawMessage) error {
			v, err := decodeValue(raw)
			if err != nil {
				return errNotBoolOrInt
			}
			e, err := enableFrom(v)
			if err != nil {
				return err
			}
			n.Enable = &e
			return nil
		},
	},
	{
		name: "server",
		parse: func(n *NTPUpdate, raw json.RawMessage) error {
			s, err := stringValue(raw, 0, maxStringLen)
			if err != nil {
				return err
			}
			n.Server = &s
			return nil
		},
	},
	{
		name: "interval",
		parse: func(n *NTPUpdate, raw json.RawMessage) error {
			v, err := decodeValue(raw)
			if err != nil {
				return errNotInteger
			}
			num, ok := v.(json.Number)
			if !ok {
				return errNotInteger
			}
			i, err := num.Int64()
			if err != nil {
				return errNotInteger
			}
			interval := int(i)
			n.Interval = &interval
			return nil
		},
	},
}

// ParseUpdate validates an inbound PUT body and returns the Update it describes.
// An empty or null body yields an empty Update.
func ParseUpdate(data []byte) (*Update, error) {
	u := &Update{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return u, nil
	}
	raw, err := objectValue(data)
	if err != nil {
		return nil, &ValidationError{Field: "data", Reason: err.Error()}
	}
	for _, rule := range updateSchema {
		v, ok := raw[rule.name]
		if !ok {
			continue
		}
		if err := rule.parse(u, v); err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) {
				return nil, verr
			}
			return nil, &ValidationError{Field: rule.name, Reason: err.Error()}
		}
	}
	return u, nil
}

func parseNTP(data json.RawMessage) (*NTPUpdate, error) {
	raw, err := objectValue(data)
	if err != nil {
		return nil, err
	}
	n := &NTPUpdate{}
	for _, rule := range ntpSchema {
		v, ok := raw[rule.name]
		if !ok {
			continue
		}
		if err := rule.parse(n, v); err != nil {
			return nil, &ValidationError{Field: "ntp." + rule.name, Reason: err.Error()}
		}
	}
	return n, nil
}

func objectValue(data []byte) (map[string]json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil || raw == nil {
		return nil, errNotObject
	}
	return raw, nil
}

func stringValue(raw json.RawMessage, minLen, maxLen int) (string, error) {
	var s *string
	if err := json.Unmarshal(raw, &s); err != nil || s == nil {
		return "", errNotString
	}
	if len(*s) < minLen {
		return "", fmt.Errorf("length of value must be at least %d", minLen)
	}
	if len(*s) > maxLen {
		return "", fmt.Errorf("length of value must be at most %d", maxLen)
	}
	return *s, nil
}
