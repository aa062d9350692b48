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
Package service wires the system time endpoint together: timezone and clock
accessors, the NTP settings store with its sync backend, the bus server and
the metrics exporter.
*/
package service

import (
	"context"
	"fmt"

	"github.com/coreos/go-systemd/daemon"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/facebook/systime/bus"
	"github.com/facebook/systime/clock"
	"github.com/facebook/systime/ntpsettings"
	"github.com/facebook/systime/ntpsync"
	"github.com/facebook/systime/settings"
	"github.com/facebook/systime/stats"
	"github.com/facebook/systime/zoneinfo"
)

// Service is a running systimed
type Service struct {
	cfg    *Config
	stats  *stats.Stats
	store  *ntpsettings.Store
	router *bus.Router
	syncer *ntpsync.Syncer
}

// New builds all components from cfg. Loops of the builtin backend end when ctx is done.
func New(ctx context.Context, cfg *Config, st *stats.Stats) (*Service, error) {
	zones, err := zoneinfo.Load(cfg.ZoneinfoDir)
	if err != nil {
		return nil, fmt.Errorf("loading timezones from %s: %w", cfg.ZoneinfoDir, err)
	}
	log.Infof("found %d timezones in %s", len(zones.List()), cfg.ZoneinfoDir)
	tz := zoneinfo.NewSystem()
	tz.Dir = cfg.ZoneinfoDir
	tz.TimezoneFile = cfg.TimezoneFile
	tz.LocaltimeFile = cfg.LocaltimeFile
	clk := &clock.System{}

	s := &Service{cfg: cfg, stats: st, router: bus.NewRouter()}
	switch cfg.Backend {
	case BackendBuiltin:
		s.syncer = ntpsync.New(ctx, &ntpsync.SNTP{Timeout: cfg.NTPTimeout}, clk, st)
		s.syncer.MinStep = cfg.MinStep
		s.store = ntpsettings.NewStore(cfg.NTPSettingsPath, s.syncer)
		s.store.Processes = ntpsettings.Processes{}
		s.store.Conflicts = cfg.Conflicts
	case BackendTimesyncd:
		ts := ntpsettings.NewTimesyncd()
		ts.Path = cfg.TimesyncdDropIn
		s.store = ntpsettings.NewStore(cfg.NTPSettingsPath, ts)
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
	if err := s.store.Load(); err != nil {
		return nil, fmt.Errorf("loading ntp settings: %w", err)
	}

	r := settings.NewReader(clk, tz, s.store)
	settings.NewHandler(r, settings.NewWriter(r, zones), st).Register(s.router)
	return s, nil
}

// Router returns the router serving all resources
func (s *Service) Router() *bus.Router {
	return s.router
}

// Run applies the persisted NTP settings, serves the bus and metrics until ctx is done
func (s *Service) Run(ctx context.Context) error {
	if err := s.store.Apply(); err != nil {
		log.Errorf("failed to apply ntp settings: %v", err)
	}
	if s.syncer != nil {
		defer s.syncer.Stop()
	}

	nc, err := bus.Connect(s.cfg.NATSURL, "systimed")
	if err != nil {
		return fmt.Errorf("connecting to %s: %w", s.cfg.NATSURL, err)
	}
	defer nc.Close()
	server := bus.NewServer(nc, s.cfg.Prefix, s.router)
	if err := server.Start(); err != nil {
		return err
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		<-ctx.Done()
		return server.Stop()
	})
	if s.cfg.MonitoringPort > 0 {
		eg.Go(func() error {
			return s.stats.Start(ctx, s.cfg.MonitoringPort)
		})
	}

	if ok, err := daemon.SdNotify(false, daemon.SdNotifyReady); err != nil {
		log.Warningf("failed to notify systemd: %v", err)
	} else if ok {
		log.Debug("notified systemd")
	}
	err = eg.Wait()
	if _, nerr := daemon.SdNotify(false, daemon.SdNotifyStopping); nerr != nil {
		log.Warningf("failed to notify systemd: %v", nerr)
	}
	return err
}
