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
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/facebook/systime/zoneinfo"
)

var zonesDirFlag string

func init() {
	RootCmd.AddCommand(zonesCmd)
	zonesCmd.Flags().StringVarP(&zonesDirFlag, "dir", "d", zoneinfo.DefaultDir, "timezone database to list")
}

// filterZones returns names starting with prefix, case insensitive
func filterZones(names []string, prefix string) []string {
	prefix = strings.ToLower(prefix)
	res := []string{}
	for _, name := range names {
		if strings.HasPrefix(strings.ToLower(name), prefix) {
			res = append(res, name)
		}
	}
	return res
}

func zonesRun(dir, prefix string) error {
	zones, err := zoneinfo.Load(dir)
	if err != nil {
		return fmt.Errorf("loading timezones from %s: %w", dir, err)
	}
	for _, name := range filterZones(zones.List(), prefix) {
		fmt.Println(name)
	}
	return nil
}

var zonesCmd = &cobra.Command{
	Use:   "zones [prefix]",
	Short: "List timezones known to the local timezone database",
	Args:  cobra.MaximumNArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		ConfigureVerbosity()

		prefix := ""
		if len(args) > 0 {
			prefix = args[0]
		}
		if err := zonesRun(zonesDirFlag, prefix); err != nil {
			log.Fatal(err)
		}
	},
}
