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
Package ntpsettings persists NTP client settings and pushes them into the
mechanism keeping the system clock in sync.

Store implements settings.NTPStore. Validation problems are returned as plain
errors, failures to persist or apply wrap settings.ErrNTPNotApplied.
*/
package ntpsettings

//go:generate mockgen -destination=mock_ntpsettings_test.go -package=ntpsettings github.com/facebook/systime/ntpsettings Applier,ProcessLister,UnitManager

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	yaml "gopkg.in/yaml.v2"

	"github.com/facebook/systime/settings"
)

// DefaultPath is where the settings are persisted
const DefaultPath = "/var/lib/systime/ntp.yaml"

// Defaults are used until settings are saved for the first time
var Defaults = settings.NTP{
	Enable:   settings.IntEnable(0),
	Server:   "pool.ntp.org",
	Interval: 7200,
}

// MaxInterval is the longest sync interval in seconds that fits a time.Duration
const MaxInterval = math.MaxInt64 / int64(time.Second)

var serverFormat = regexp.MustCompile(`^[A-Za-z0-9.\-:\[\]]*$`)

// Applier pushes settings into the running sync mechanism
type Applier interface {
	Apply(n settings.NTP) error
}

// Store keeps NTP settings in a YAML file
type Store struct {
	path    string
	applier Applier
	// Processes and Conflicts enable a check refusing to enable NTP
	// while another time daemon is running
	Processes ProcessLister
	Conflicts []string

	mu  sync.Mutex
	cur settings.NTP
}

// NewStore returns a Store saving to path and applying through applier
func NewStore(path string, applier Applier) *Store {
	return &Store{path: path, applier: applier, cur: Defaults}
}

// Load reads persisted settings, saving the defaults if there are none yet
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Infof("no ntp settings in %s, saving defaults", s.path)
		s.cur = Defaults
		return s.save(s.cur)
	}
	if err != nil {
		return err
	}
	n := Defaults
	if err := yaml.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("parsing %s: %w", s.path, err)
	}
	if err := Validate(n); err != nil {
		return fmt.Errorf("%s: %w", s.path, err)
	}
	s.cur = n
	return nil
}

// Apply pushes the current settings to the applier, used at startup
func (s *Store) Apply() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applier.Apply(s.cur)
}

// Read returns a copy of the current settings
func (s *Store) Read() (*settings.NTP, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.cur
	return &n, nil
}

// Update merges u into the current settings, saves and applies them
func (s *Store) Update(u *settings.NTPUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.cur.Merge(u)
	if err := Validate(next); err != nil {
		return err
	}
	if next.Enable.Enabled() {
		if err := s.checkConflicts(); err != nil {
			return err
		}
	}
	if err := s.save(next); err != nil {
		return fmt.Errorf("%w: saving %s: %v", settings.ErrNTPNotApplied, s.path, err)
	}
	s.cur = next
	log.Infof("ntp settings saved: enable=%s server=%s interval=%d", next.Enable, next.Server, next.Interval)
	if err := s.applier.Apply(next); err != nil {
		return fmt.Errorf("%w: %v", settings.ErrNTPNotApplied, err)
	}
	return nil
}

// Validate checks that n can be applied
func Validate(n settings.NTP) error {
	if n.Interval < 1 {
		return fmt.Errorf("ntp interval must be at least 1 second, got %d", n.Interval)
	}
	if int64(n.Interval) > MaxInterval {
		return fmt.Errorf("ntp interval must be at most %d seconds, got %d", MaxInterval, n.Interval)
	}
	if !serverFormat.MatchString(n.Server) {
		return fmt.Errorf("invalid ntp server %q", n.Server)
	}
	if n.Enable.Enabled() && n.Server == "" {
		return errors.New("ntp server must be set to enable ntp")
	}
	return nil
}

func (s *Store) checkConflicts() error {
	if s.Processes == nil || len(s.Conflicts) == 0 {
		return nil
	}
	names, err := s.Processes.Names()
	if err != nil {
		log.Warningf("failed to list processes: %v", err)
		return nil
	}
	running := map[string]bool{}
	for _, name := range names {
		running[name] = true
	}
	for _, c := range s.Conflicts {
		if running[c] {
			return fmt.Errorf("%s is running, stop it before enabling ntp", c)
		}
	}
	return nil
}

func (s *Store) save(n settings.NTP) error {
	data, err := yaml.Marshal(&n)
	if err != nil {
		return err
	}
	return writeFile(s.path, data)
}

// writeFile replaces path atomically, creating its directory if needed
func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
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
