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
Package ntpsync keeps the system clock in sync with an NTP server.

Syncer queries the configured server every interval and steps the clock by the
measured offset. It implements ntpsettings.Applier: every settings change
restarts the loop, disabling NTP stops it.
*/
package ntpsync

//go:generate mockgen -source=syncer.go -destination=mock_ntpsync_test.go -package=ntpsync

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/beevik/ntp"
	"github.com/eclesh/welford"
	log "github.com/sirupsen/logrus"

	"github.com/facebook/systime/settings"
)

// Querier measures the offset of the local clock against server
type Querier interface {
	Offset(server string) (time.Duration, error)
}

// Stepper steps the local clock
type Stepper interface {
	Step(offset time.Duration) error
}

// StatsServer is a stats server interface
type StatsServer interface {
	IncSync(ok bool)
	SetOffset(offset time.Duration, mean, stddev float64)
}

// SNTP queries servers using the SNTP client from github.com/beevik/ntp
type SNTP struct {
	Timeout time.Duration
}

// Offset queries server once and returns the validated clock offset
func (q *SNTP) Offset(server string) (time.Duration, error) {
	resp, err := ntp.QueryWithOptions(server, ntp.QueryOptions{Timeout: q.Timeout})
	if err != nil {
		return 0, err
	}
	if err := resp.Validate(); err != nil {
		return 0, fmt.Errorf("%s: %w", server, err)
	}
	log.Debugf("%s: offset %v, rtt %v, stratum %d", server, resp.ClockOffset, resp.RTT, resp.Stratum)
	return resp.ClockOffset, nil
}

// Syncer runs the sync loop
type Syncer struct {
	querier Querier
	clock   Stepper
	stats   StatsServer
	// MinStep is the smallest offset worth stepping the clock for
	MinStep time.Duration

	parent  context.Context
	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	offsets *welford.Stats
}

// New returns a Syncer. Loops started by Apply end when ctx is done.
func New(ctx context.Context, q Querier, c Stepper, stats StatsServer) *Syncer {
	return &Syncer{
		querier: q,
		clock:   c,
		stats:   stats,
		MinStep: time.Millisecond,
		parent:  ctx,
		offsets: welford.New(),
	}
}

// Apply restarts the loop with n, or stops it if NTP is disabled
func (s *Syncer) Apply(n settings.NTP) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()
	if !n.Enable.Enabled() {
		log.Info("ntp sync disabled")
		return nil
	}
	if n.Server == "" || n.Interval < 1 || int64(n.Interval) > math.MaxInt64/int64(time.Second) {
		return fmt.Errorf("cannot sync with server %q every %ds", n.Server, n.Interval)
	}
	ctx, cancel := context.WithCancel(s.parent)
	s.cancel = cancel
	s.done = make(chan struct{})
	s.offsets = welford.New()
	interval := time.Duration(n.Interval) * time.Second
	log.Infof("syncing with %s every %v", n.Server, interval)
	go s.run(ctx, n.Server, interval, s.done)
	return nil
}

// Stop stops the loop and waits for it to exit
func (s *Syncer) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

// Running reports whether the loop is active
func (s *Syncer) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancel != nil
}

func (s *Syncer) stopLocked() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.cancel = nil
	s.done = nil
}

func (s *Syncer) run(ctx context.Context, server string, interval time.Duration, done chan struct{}) {
	defer close(done)
	for it := time.NewTicker(interval); ; {
		if err := s.SyncOnce(server); err != nil {
			log.Warningf("ntp sync with %s failed: %v", server, err)
		}
		select {
		case <-ctx.Done():
			it.Stop()
			return
		case <-it.C:
		}
	}
}

// SyncOnce queries server and steps the clock by the measured offset
func (s *Syncer) SyncOnce(server string) error {
	offset, err := s.querier.Offset(server)
	if err != nil {
		s.stats.IncSync(false)
		return err
	}
	s.offsets.Add(offset.Seconds())
	s.stats.SetOffset(offset, s.offsets.Mean(), s.offsets.Stddev())

	if offset.Abs() < s.MinStep {
		log.Debugf("offset %v is below %v, not stepping", offset, s.MinStep)
		s.stats.IncSync(true)
		return nil
	}
	if err := s.clock.Step(offset); err != nil {
		s.stats.IncSync(false)
		return fmt.Errorf("stepping clock by %v: %w", offset, err)
	}
	log.Infof("stepped clock by %v", offset)
	s.stats.IncSync(true)
	return nil
}
