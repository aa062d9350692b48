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
package ntpsettings

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/coreos/go-systemd/dbus"
	"github.com/go-ini/ini"
	log "github.com/sirupsen/logrus"

	"github.com/facebook/systime/settings"
)

// Defaults for Timesyncd
const (
	DefaultTimesyncdPath = "/etc/systemd/timesyncd.conf.d/systime.conf"
	DefaultTimesyncdUnit = "systemd-timesyncd.service"
)

func init() {
	// timesyncd.conf(5) wants plain key=value lines
	ini.PrettyFormat = false
	ini.PrettySection = false
}

// UnitManager starts and stops systemd units
type UnitManager interface {
	Restart(unit string) error
	Stop(unit string) error
}

// Timesyncd applies settings by writing a systemd-timesyncd drop-in and restarting the unit
type Timesyncd struct {
	Path  string
	Unit  string
	Units UnitManager
}

// NewTimesyncd returns Timesyncd with default paths managing units over D-Bus
func NewTimesyncd() *Timesyncd {
	return &Timesyncd{
		Path:  DefaultTimesyncdPath,
		Unit:  DefaultTimesyncdUnit,
		Units: &SystemdUnits{},
	}
}

// Apply writes the drop-in and restarts timesyncd, or stops it if NTP is disabled
func (t *Timesyncd) Apply(n settings.NTP) error {
	if !n.Enable.Enabled() {
		log.Infof("ntp disabled, stopping %s", t.Unit)
		return t.Units.Stop(t.Unit)
	}
	buf, err := dropIn(n)
	if err != nil {
		return err
	}
	if err := writeFile(t.Path, buf.Bytes()); err != nil {
		return err
	}
	log.Infof("wrote %s, restarting %s", t.Path, t.Unit)
	return t.Units.Restart(t.Unit)
}

// dropIn renders the [Time] section for timesyncd.conf(5)
func dropIn(n settings.NTP) (*bytes.Buffer, error) {
	f := ini.Empty()
	s := f.Section("Time")
	interval := strconv.Itoa(n.Interval)
	s.Key("NTP").SetValue(n.Server)
	s.Key("PollIntervalMinSec").SetValue(interval)
	s.Key("PollIntervalMaxSec").SetValue(interval)

	buf := &bytes.Buffer{}
	_, err := f.WriteTo(buf)
	return buf, err
}

// SystemdUnits manages units through the systemd D-Bus API
type SystemdUnits struct{}

// Restart restarts unit and waits for the job to finish
func (SystemdUnits) Restart(unit string) error {
	return runJob(unit, "restart", func(c *dbus.Conn, ch chan<- string) (int, error) {
		return c.RestartUnit(unit, "replace", ch)
	})
}

// Stop stops unit and waits for the job to finish
func (SystemdUnits) Stop(unit string) error {
	return runJob(unit, "stop", func(c *dbus.Conn, ch chan<- string) (int, error) {
		return c.StopUnit(unit, "replace", ch)
	})
}

func runJob(unit, verb string, start func(c *dbus.Conn, ch chan<- string) (int, error)) error {
	conn, err := dbus.New()
	if err != nil {
		return fmt.Errorf("connecting to systemd: %w", err)
	}
	defer conn.Close()

	ch := make(chan string, 1)
	if _, err := start(conn, ch); err != nil {
		return fmt.Errorf("%s %s: %w", verb, unit, err)
	}
	if res := <-ch; res != "done" {
		return fmt.Errorf("%s %s: job %s", verb, unit, res)
	}
	return nil
}
