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
package service

import (
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	yaml "gopkg.in/yaml.v2"

	"github.com/facebook/systime/bus"
	"github.com/facebook/systime/ntpsettings"
	"github.com/facebook/systime/zoneinfo"
)

// NTP sync backends
const (
	BackendBuiltin   = "builtin"
	BackendTimesyncd = "timesyncd"
)

// Config specifies systimed run options
type Config struct {
	NATSURL         string        `yaml:"nats_url"`
	Prefix          string        `yaml:"prefix"`
	MonitoringPort  int           `yaml:"monitoringport"`
	ZoneinfoDir     string        `yaml:"zoneinfo_dir"`
	TimezoneFile    string        `yaml:"timezone_file"`
	LocaltimeFile   string        `yaml:"localtime_file"`
	NTPSettingsPath string        `yaml:"ntp_settings_path"`
	Backend         string        `yaml:"backend"`
	NTPTimeout      time.Duration `yaml:"ntp_timeout"`
	MinStep         time.Duration `yaml:"min_step"`
	TimesyncdDropIn string        `yaml:"timesyncd_dropin"`
	Conflicts       []string      `yaml:"conflicts"`
}

// DefaultConfig returns Config initialized with default values
func DefaultConfig() *Config {
	return &Config{
		NATSURL:         "nats://127.0.0.1:4222",
		Prefix:          bus.DefaultPrefix,
		MonitoringPort:  4270,
		ZoneinfoDir:     zoneinfo.DefaultDir,
		TimezoneFile:    zoneinfo.DefaultTimezoneFile,
		LocaltimeFile:   zoneinfo.DefaultLocaltimeFile,
		NTPSettingsPath: ntpsettings.DefaultPath,
		Backend:         BackendBuiltin,
		NTPTimeout:      5 * time.Second,
		MinStep:         time.Millisecond,
		TimesyncdDropIn: ntpsettings.DefaultTimesyncdPath,
		Conflicts:       []string{"chronyd", "ntpd", "ntpsec", "systemd-timesyncd"},
	}
}

// Validate config is sane
func (c *Config) Validate() error {
	if c.NATSURL == "" {
		return fmt.Errorf("nats_url must be specified")
	}
	if c.Prefix == "" {
		return fmt.Errorf("prefix must be specified")
	}
	if c.MonitoringPort < 0 {
		return fmt.Errorf("monitoringport must be 0 or positive")
	}
	if c.ZoneinfoDir == "" || c.TimezoneFile == "" || c.LocaltimeFile == "" {
		return fmt.Errorf("zoneinfo_dir, timezone_file and localtime_file must be specified")
	}
	if c.NTPSettingsPath == "" {
		return fmt.Errorf("ntp_settings_path must be specified")
	}
	switch c.Backend {
	case BackendBuiltin:
		if c.NTPTimeout <= 0 {
			return fmt.Errorf("ntp_timeout must be greater than zero")
		}
		if c.MinStep < 0 {
			return fmt.Errorf("min_step must be 0 or positive")
		}
	case BackendTimesyncd:
		if c.TimesyncdDropIn == "" {
			return fmt.Errorf("timesyncd_dropin must be specified")
		}
	default:
		return fmt.Errorf("backend must be either %q or %q", BackendBuiltin, BackendTimesyncd)
	}
	return nil
}

// ReadConfig reads config from the file
func ReadConfig(path string) (*Config, error) {
	c := DefaultConfig()
	cData, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(cData, c)
	if err != nil {
		return nil, err
	}

	return c, nil
}

// PrepareConfig prepares final version of config based on defaults, CLI flags and on-disk config, and validates resulting config
func PrepareConfig(cfgPath string, natsURL string, monitoringPort int, backend string, setFlags map[string]bool) (*Config, error) {
	cfg := DefaultConfig()
	var err error
	warn := func(name string) {
		log.Warningf("overriding %s from CLI flag", name)
	}
	if cfgPath != "" {
		cfg, err = ReadConfig(cfgPath)
		if err != nil {
			return nil, fmt.Errorf("reading config from %q: %w", cfgPath, err)
		}
	}
	if setFlags["nats"] {
		warn("nats_url")
		cfg.NATSURL = natsURL
	}
	if setFlags["monitoringport"] {
		warn("monitoringport")
		cfg.MonitoringPort = monitoringPort
	}
	if setFlags["backend"] {
		warn("backend")
		cfg.Backend = backend
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	log.Debugf("config: %+v", cfg)
	return cfg, nil
}
