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
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/facebook/systime/bus"
)

// Handler serves Resource on the bus
type Handler struct {
	reader *Reader
	writer *Writer
	stats  StatsServer
}

// NewHandler returns a Handler
func NewHandler(r *Reader, w *Writer, stats StatsServer) *Handler {
	return &Handler{reader: r, writer: w, stats: stats}
}

// Register adds GET and PUT of Resource to router
func (h *Handler) Register(router *bus.Router) {
	router.Handle(bus.MethodGet, Resource, h.Get)
	router.Handle(bus.MethodPut, Resource, h.Put)
}

// Get handles GET requests
func (h *Handler) Get(_ *bus.Message) *bus.Response {
	snap, err := h.reader.Get()
	if err != nil {
		log.Errorf("failed to read settings: %v", err)
		return h.respond(bus.MethodGet, bus.Error(http.StatusInternalServerError, err.Error()))
	}
	return h.respond(bus.MethodGet, bus.OK(snap))
}

// Put handles PUT requests
func (h *Handler) Put(req *bus.Message) *bus.Response {
	u, err := ParseUpdate(req.Data)
	if err != nil {
		log.Warningf("rejected update: %v", err)
		return h.respond(bus.MethodPut, bus.Error(http.StatusBadRequest, err.Error()))
	}
	snap, f := h.writer.Put(u)
	if f != nil {
		return h.respond(bus.MethodPut, bus.Error(f.Code, f.Message))
	}
	return h.respond(bus.MethodPut, bus.OK(snap))
}

func (h *Handler) respond(method string, r *bus.Response) *bus.Response {
	if h.stats != nil {
		h.stats.IncRequest(method, r.Code)
	}
	return r
}
