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
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "net/http/pprof"

	log "github.com/sirupsen/logrus"

	"github.com/facebook/systime/service"
	"github.com/facebook/systime/stats"
)

func main() {
	var (
		verboseFlag        bool
		configFlag         string
		natsFlag           string
		monitoringPortFlag int
		backendFlag        string
		pprofFlag          string
	)
	defaults := service.DefaultConfig()

	flag.BoolVar(&verboseFlag, "verbose", false, "verbose output")
	flag.StringVar(&configFlag, "config", "", "path to the config")
	flag.StringVar(&natsFlag, "nats", defaults.NATSURL, "URL of the NATS server")
	flag.IntVar(&monitoringPortFlag, "monitoringport", defaults.MonitoringPort, "port to serve prometheus metrics on, 0 to disable")
	flag.StringVar(&backendFlag, "backend", defaults.Backend, "ntp sync backend, either builtin or timesyncd")
	flag.StringVar(&pprofFlag, "pprof", "", "Address to have the profiler listen on, disabled if empty.")

	flag.Parse()
	setFlags := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		setFlags[f.Name] = true
	})

	log.SetLevel(log.InfoLevel)
	if verboseFlag {
		log.SetLevel(log.DebugLevel)
	}
	cfg, err := service.PrepareConfig(configFlag, natsFlag, monitoringPortFlag, backendFlag, setFlags)
	if err != nil {
		log.Fatal(err)
	}
	if pprofFlag != "" {
		go func() {
			err := http.ListenAndServe(pprofFlag, nil)
			if err != nil {
				log.Errorf("Failed to start pprof. Err: %v", err)
			}
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	s, err := service.New(ctx, cfg, stats.New())
	if err != nil {
		log.Fatal(err)
	}
	if err := s.Run(ctx); err != nil {
		log.Fatal(err)
	}
	log.Info("shutting down")
}
