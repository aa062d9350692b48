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
package zoneinfo

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Defaults for System
const (
	DefaultTimezoneFile  = "/etc/timezone"
	DefaultLocaltimeFile = "/etc/localtime"
)

var errNoTimezone = errors.New("no timezone configured")

// System is the system timezone, kept in /etc/timezone and the /etc/localtime symlink
type System struct {
	Dir           string
	TimezoneFile  string
	LocaltimeFile string
}

// NewSystem returns System with default paths
func NewSystem() *System {
	return &System{
		Dir:           DefaultDir,
		TimezoneFile:  DefaultTimezoneFile,
		LocaltimeFile: DefaultLocaltimeFile,
	}
}

// Current returns the configured timezone name.
// Falls back to the target of the localtime symlink when the timezone file is missing.
func (s *System) Current() (string, error) {
	data, err := os.ReadFile(s.TimezoneFile)
	if err == nil {
		if name := strings.TrimSpace(string(data)); name != "" {
			return name, nil
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}

	target, err := os.Readlink(s.LocaltimeFile)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errNoTimezone, err)
	}
	return zoneFromPath(target)
}

// Set points localtime to the zone file of name and records name in the timezone file
func (s *System) Set(name string) error {
	zone := filepath.Join(s.Dir, name)
	if name == "" || !filepath.IsLocal(name) || !IsTZif(zone) {
		return fmt.Errorf("no zone file for %q in %s", name, s.Dir)
	}

	prev, prevErr := os.ReadFile(s.TimezoneFile)
	if err := writeFile(s.TimezoneFile, []byte(name+"\n")); err != nil {
		return err
	}
	if err := s.link(zone); err != nil {
		// keep the timezone file in line with the untouched localtime
		if prevErr == nil {
			_ = writeFile(s.TimezoneFile, prev)
		} else {
			_ = os.Remove(s.TimezoneFile)
		}
		return err
	}
	return nil
}

// link points localtime to zone, replacing it atomically
func (s *System) link(zone string) error {
	tmp := s.LocaltimeFile + ".tmp"
	_ = os.Remove(tmp)
	if err := os.Symlink(zone, tmp); err != nil {
		return err
	}
	if err := os.Rename(tmp, s.LocaltimeFile); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// zoneFromPath extracts the zone name from a path inside a zoneinfo tree
func zoneFromPath(path string) (string, error) {
	const marker = "zoneinfo/"
	i := strings.LastIndex(path, marker)
	if i < 0 {
		return "", fmt.Errorf("%w: %s is not in a zoneinfo tree", errNoTimezone, path)
	}
	name := path[i+len(marker):]
	for dir := range skipDirs {
		name = strings.TrimPrefix(name, dir+"/")
	}
	if name == "" {
		return "", fmt.Errorf("%w: %s", errNoTimezone, path)
	}
	return name, nil
}

// writeFile replaces path atomically
func writeFile(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
