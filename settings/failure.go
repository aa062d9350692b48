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

package settings

import (
	"fmt"
	"net/http"
)

// Response messages. Clients match on these strings, typos included.
const (
	MsgNoInput          = "No input paramters."
	MsgTimezoneNotExist = "Timezone not exist."
	MsgTimezoneFailed   = "Change timezone failed."
	MsgTimeFailed       = "Change system time failed."
	MsgNTPFailed        = "Update ntp settings failed."
)

// Failure is a request outcome other than success
type Failure struct {
	// Code is a HTTP-like status code, 400 for client errors and 500 for accessor failures
	Code int
	// Field is the update field that failed, empty if no field was applied
	Field   string
	Message string
}

func (f *Failure) Error() string {
	if f.Field == "" {
		return fmt.Sprintf("%d: %s", f.Code, f.Message)
	}
	return fmt.Sprintf("%s: %d: %s", f.Field, f.Code, f.Message)
}

func clientError(msg string) *Failure {
	return &Failure{Code: http.StatusBadRequest, Message: msg}
}

func serverError(msg string) *Failure {
	return &Failure{Code: http.StatusInternalServerError, Message: msg}
}
