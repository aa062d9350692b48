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
Package bus implements request/response resources over NATS.

Every request and response is a JSON Message envelope. Requests for a resource
are published to the subject derived from the resource path and answered on the
NATS reply subject.
*/
package bus

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Methods
const (
	MethodGet = "get"
	MethodPut = "put"
)

// DefaultPrefix is the subject prefix used when none is configured
const DefaultPrefix = "systime"

// Message is the request and response envelope
type Message struct {
	ID       int64           `json:"id"`
	Method   string          `json:"method"`
	Resource string          `json:"resource"`
	Code     int             `json:"code,omitempty"`
	Data     json.RawMessage `json:"data,omitempty"`
}

// Response is what a handler returns
type Response struct {
	Code int
	Data interface{}
}

// OK returns a 200 response with data
func OK(data interface{}) *Response {
	return &Response{Code: http.StatusOK, Data: data}
}

// Error returns a response with the code and {"message": msg} as data
func Error(code int, msg string) *Response {
	return &Response{Code: code, Data: ErrorData(msg)}
}

// ErrorData is the data of an error response
func ErrorData(msg string) map[string]string {
	return map[string]string{"message": msg}
}

// Decode unmarshals the data of a message into v
func (m *Message) Decode(v interface{}) error {
	if len(m.Data) == 0 {
		return fmt.Errorf("message %d has no data", m.ID)
	}
	return json.Unmarshal(m.Data, v)
}

// Subject maps a resource path to a NATS subject, "/system/time" -> "<prefix>.system.time"
func Subject(prefix, resource string) string {
	path := strings.ReplaceAll(strings.Trim(resource, "/"), "/", ".")
	if prefix == "" {
		return path
	}
	return prefix + "." + path
}

func normalizeMethod(method string) string {
	return strings.ToLower(strings.TrimSpace(method))
}
