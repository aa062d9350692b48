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
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/facebook/systime/bus"
	"github.com/facebook/systime/settings"
)

func init() {
	RootCmd.AddCommand(setCmd)
	setCmd.Flags().AddFlagSet(setFlags())
}

func setFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("set", pflag.ContinueOnError)
	fs.String("time", "", "new system time, e.g. 2015-03-26T16:27:48.611441Z")
	fs.String("timezone", "", "new timezone, e.g. Asia/Taipei")
	fs.Bool("ntp-enable", false, "enable or disable NTP sync")
	fs.String("ntp-server", "", "NTP server to sync with")
	fs.Int("ntp-interval", 0, "NTP sync interval in seconds")
	return fs
}

// buildUpdate collects the flags that were set on the command line
func buildUpdate(fs *pflag.FlagSet) (*settings.Update, error) {
	u := &settings.Update{}
	var err error
	if fs.Changed("time") {
		var v string
		if v, err = fs.GetString("time"); err != nil {
			return nil, err
		}
		u.Time = &v
	}
	if fs.Changed("timezone") {
		var v string
		if v, err = fs.GetString("timezone"); err != nil {
			return nil, err
		}
		u.Timezone = &v
	}
	ntp := &settings.NTPUpdate{}
	if fs.Changed("ntp-enable") {
		var v bool
		if v, err = fs.GetBool("ntp-enable"); err != nil {
			return nil, err
		}
		e := settings.BoolEnable(v)
		ntp.Enable = &e
	}
	if fs.Changed("ntp-server") {
		var v string
		if v, err = fs.GetString("ntp-server"); err != nil {
			return nil, err
		}
		ntp.Server = &v
	}
	if fs.Changed("ntp-interval") {
		var v int
		if v, err = fs.GetInt("ntp-interval"); err != nil {
			return nil, err
		}
		ntp.Interval = &v
	}
	if ntp.Enable != nil || ntp.Server != nil || ntp.Interval != nil {
		u.NTP = ntp
	}
	if u.Empty() {
		return nil, fmt.Errorf("nothing to set, use --time, --timezone or the --ntp-* flags")
	}
	return u, nil
}

func setRun(fs *pflag.FlagSet) error {
	u, err := buildUpdate(fs)
	if err != nil {
		return err
	}
	resp, err := request(bus.MethodPut, u)
	if err != nil {
		return err
	}
	snap, err := decodeSnapshot(resp)
	if err != nil {
		fmt.Printf("%s %v\n", failString, err)
		return fmt.Errorf("settings were not changed")
	}
	fmt.Printf("%s settings changed\n", okString)
	printSnapshot(os.Stdout, snap)
	return nil
}

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Change time, timezone or NTP settings",
	Run: func(c *cobra.Command, _ []string) {
		ConfigureVerbosity()

		if err := setRun(c.Flags()); err != nil {
			log.Fatal(err)
		}
	},
}
