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
Package stats exports systimed counters in prometheus format.
*/
package stats

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

const namespace = "systime"

// Stats holds the daemon metrics
type Stats struct {
	registry     *prometheus.Registry
	requests     *prometheus.CounterVec
	syncs        *prometheus.CounterVec
	offset       prometheus.Gauge
	offsetMean   prometheus.Gauge
	offsetStddev prometheus.Gauge
}

// New creates Stats with its own registry
func New() *Stats {
	s := &Stats{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "bus requests by method and response code",
		}, []string{"method", "code"}),
		syncs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ntp_syncs_total",
			Help:      "ntp sync attempts by result",
		}, []string{"result"}),
		offset: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ntp_offset_seconds",
			Help:      "last measured offset to the ntp server",
		}),
		offsetMean: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ntp_offset_mean_seconds",
			Help:      "mean offset since ntp settings last changed",
		}),
		offsetStddev: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ntp_offset_stddev_seconds",
			Help:      "offset standard deviation since ntp settings last changed",
		}),
	}
	s.registry.MustRegister(
		s.requests,
		s.syncs,
		s.offset,
		s.offsetMean,
		s.offsetStddev,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return s
}

// IncRequest counts a handled bus request
func (s *Stats) IncRequest(method string, code int) {
	s.requests.WithLabelValues(strings.ToLower(method), strconv.Itoa(code)).Inc()
}

// IncSync counts an ntp sync attempt
func (s *Stats) IncSync(ok bool) {
	result := "failure"
	if ok {
		result = "success"
	}
	s.syncs.WithLabelValues(result).Inc()
}

// SetOffset records the last offset and its running statistics, in seconds
func (s *Stats) SetOffset(offset time.Duration, mean, stddev float64) {
	s.offset.Set(offset.Seconds())
	s.offsetMean.Set(mean)
	s.offsetStddev.Set(stddev)
}

// Handler serves the registry
func (s *Stats) Handler() http.Handler {
	return promhttp.HandlerFor(
		s.registry,
		promhttp.HandlerOpts{
			// Opt into OpenMetrics to support exemplars.
			EnableOpenMetrics: true,
		},
	)
}

// Start serves /metrics on port until ctx is done
func (s *Stats) Start(ctx context.Context, port int) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", s.Handler())
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		if err := srv.Close(); err != nil {
			log.Warningf("closing metrics server: %v", err)
		}
	}()
	log.Infof("Starting metrics server on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
