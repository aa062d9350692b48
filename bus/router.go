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

package bus

import (
	"encoding/json"
	"net/http"
	"sort"
	"sync"

	log "github.com/sirupsen/logrus"
)

// HandlerFunc handles one request
type HandlerFunc func(req *Message) *Response

// Router dispatches requests to handlers by resource and method.
// Dispatch is serialised: handlers never run concurrently.
type Router struct {
	mu     sync.Mutex
	routes map[string]map[string]HandlerFunc
}

// NewRouter returns an empty Router
func NewRouter() *Router {
	return &Router{routes: map[string]map[string]HandlerFunc{}}
}

// Handle registers h for method on resource
func (r *Router) Handle(method, resource string, h HandlerFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.routes[resource] == nil {
		r.routes[resource] = map[string]HandlerFunc{}
	}
	r.routes[resource][normalizeMethod(method)] = h
}

// Resources returns all resources with at least one handler
func (r *Router) Resources() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := make([]string, 0, len(r.routes))
	for resource := range r.routes {
		res = append(res, resource)
	}
	sort.Strings(res)
	return res
}

// Dispatch runs the handler for req and returns the response envelope
func (r *Router) Dispatch(req *Message) *Message {
	r.mu.Lock()
	defer r.mu.Unlock()

	resp := &Message{ID: req.ID, Method: req.Method, Resource: req.Resource}
	methods, ok := r.routes[req.Resource]
	if !ok {
		return fill(resp, Error(http.StatusNotFound, "Resource not found."))
	}
	h, ok := methods[normalizeMethod(req.Method)]
	if !ok {
		return fill(resp, Error(http.StatusMethodNotAllowed, "Method not allowed."))
	}
	return fill(resp, h(req))
}

func fill(m *Message, r *Response) *Message {
	m.Code = r.Code
	if r.Data == nil {
		return m
	}
	data, err := json.Marshal(r.Data)
	if err != nil {
		log.Errorf("failed to encode response to %s %s: %v", m.Method, m.Resource, err)
		m.Code = http.StatusInternalServerError
		data, _ = json.Marshal(ErrorData(err.Error()))
	}
	m.Data = data
	return m
}
