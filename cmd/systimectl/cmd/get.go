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
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/facebook/systime/bus"
)

func init() {
	RootCmd.AddCommand(getCmd)
}

func getRun() error {
	resp, err := request(bus.MethodGet, nil)
	if err != nil {
		return err
	}
	snap, err := decodeSnapshot(resp)
	if err != nil {
		return err
	}
	printSnapshot(os.Stdout, snap)
	return nil
}

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Print current time, timezone and NTP settings",
	Run: func(_ *cobra.Command, _ []string) {
		ConfigureVerbosity()

		if err := getRun(); err != nil {
			log.Fatal(err)
		}
	},
}
