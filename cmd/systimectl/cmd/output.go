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
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/facebook/systime/bus"
	"github.com/facebook/systime/settings"
)

var okString = color.GreenString("[ OK ]")
var failString = color.RedString("[FAIL]")

// decodeSnapshot returns the snapshot of a successful response, or the error message systimed replied with
func decodeSnapshot(resp *bus.Message) (*settings.Snapshot, error) {
	if resp.Code != http.StatusOK {
		e := map[string]string{}
		if err := json.Unmarshal(resp.Data, &e); err != nil || e["message"] == "" {
			return nil, fmt.Errorf("request failed with code %d", resp.Code)
		}
		return nil, fmt.Errorf("%s (code %d)", e["message"], resp.Code)
	}
	snap := &settings.Snapshot{}
	if err := resp.Decode(snap); err != nil {
		return nil, err
	}
	return snap, nil
}

// localTime renders the snapshot time in its own timezone when the zone can be loaded
func localTime(snap *settings.Snapshot) string {
	t, err := settings.ParseTime(snap.Time)
	if err != nil {
		return ""
	}
	loc, err := time.LoadLocation(snap.Timezone)
	if err != nil {
		return ""
	}
	return t.In(loc).Format(time.RFC3339)
}

func printSnapshot(w io.Writer, snap *settings.Snapshot) {
	enabled := color.RedString("disabled")
	if snap.NTP.Enable.Enabled() {
		enabled = color.GreenString("enabled")
	}
	table := tablewriter.NewWriter(w)
	table.SetColWidth(40)
	table.SetHeader([]string{"setting", "value"})
	table.Append([]string{"time (UTC)", snap.Time})
	if local := localTime(snap); local != "" {
		table.Append([]string{"local time", local})
	}
	table.Append([]string{"timezone", snap.Timezone})
	table.Append([]string{"ntp", enabled})
	table.Append([]string{"ntp server", snap.NTP.Server})
	table.Append([]string{"ntp interval", strconv.Itoa(snap.NTP.Interval) + "s"})
	table.Render()
}
