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
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/facebook/systime/bus"
	"github.com/facebook/systime/settings"
)

// RootCmd is a main entry point. It's exported so systimectl could be easily extended without touching core functionality.
var RootCmd = &cobra.Command{
	Use:   "systimectl",
	Short: "Query and change system time settings over the message bus",
}

// flags
var (
	rootVerboseFlag bool
	rootNATSFlag    string
	rootPrefixFlag  string
	rootTimeoutFlag time.Duration
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&rootVerboseFlag, "verbose", "v", false, "verbose output")
	RootCmd.PersistentFlags().StringVarP(&rootNATSFlag, "nats", "s", "nats://127.0.0.1:4222", "URL of the NATS server")
	RootCmd.PersistentFlags().StringVarP(&rootPrefixFlag, "prefix", "p", bus.DefaultPrefix, "subject prefix systimed serves on")
	RootCmd.PersistentFlags().DurationVarP(&rootTimeoutFlag, "timeout", "t", 5*time.Second, "how long to wait for a response")
}

// ConfigureVerbosity configures log verbosity based on parsed flags. Needs to be called by any subcommand.
func ConfigureVerbosity() {
	log.SetLevel(log.InfoLevel)
	if rootVerboseFlag {
		log.SetLevel(log.DebugLevel)
	}
}

// Execute is the main entry point for CLI interface
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// request sends a single request to systimed
func request(method string, data interface{}) (*bus.Message, error) {
	nc, err := bus.Connect(rootNATSFlag, "systimectl")
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", rootNATSFlag, err)
	}
	defer nc.Close()

	ctx, cancel := context.WithTimeout(context.Background(), rootTimeoutFlag)
	defer cancel()
	log.Debugf("%s %s via %s", method, settings.Resource, rootNATSFlag)
	return bus.NewClient(nc, rootPrefixFlag).Request(ctx, method, settings.Resource, data)
}
