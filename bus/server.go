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
	"fmt"
	"net/http"
	"time"

	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"
)

// Connect connects to the NATS server at url, reconnecting forever
func Connect(url, name string) (*nats.Conn, error) {
	nc, err := nats.Connect(url,
		nats.Name(name),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Warningf("disconnected from nats: %v", err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			log.Infof("reconnected to nats %s", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to nats %s: %w", url, err)
	}
	return nc, nil
}

// Server answers requests for every resource of a Router
type Server struct {
	nc     *nats.Conn
	prefix string
	router *Router
	subs   []*nats.Subscription
}

// NewServer returns a Server publishing router on nc
func NewServer(nc *nats.Conn, prefix string, router *Router) *Server {
	return &Server{nc: nc, prefix: prefix, router: router}
}

// Start subscribes to the subjects of all registered resources
func (s *Server) Start() error {
	for _, resource := range s.router.Resources() {
		subject := Subject(s.prefix, resource)
		sub, err := s.nc.Subscribe(subject, s.handle)
		if err != nil {
			_ = s.Stop()
			return fmt.Errorf("subscribing to %s: %w", subject, err)
		}
		log.Infof("serving %s on %s", resource, subject)
		s.subs = append(s.subs, sub)
	}
	return s.nc.Flush()
}

// Stop removes all subscriptions
func (s *Server) Stop() error {
	var firstErr error
	for _, sub := range s.subs {
		if err := sub.Unsubscribe(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	s.subs = nil
	return firstErr
}

func (s *Server) handle(m *nats.Msg) {
	if m.Reply == "" {
		log.Debugf("dropping message on %s without reply subject", m.Subject)
		return
	}
	resp := s.Handle(m.Data)
	out, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("failed to encode response on %s: %v", m.Subject, err)
		return
	}
	if err := m.Respond(out); err != nil {
		log.Errorf("failed to respond on %s: %v", m.Reply, err)
	}
}

// Handle decodes a raw request envelope and dispatches it
func (s *Server) Handle(data []byte) *Message {
	req := &Message{}
	if err := json.Unmarshal(data, req); err != nil {
		log.Warningf("malformed request: %v", err)
		return fill(&Message{}, Error(http.StatusBadRequest, "Malformed message."))
	}
	log.Debugf("%s %s id=%d", req.Method, req.Resource, req.ID)
	return s.router.Dispatch(req)
}
