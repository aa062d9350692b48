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
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"

	"github.com/nats-io/nats.go"
)

// Client sends requests to a Server
type Client struct {
	nc     *nats.Conn
	prefix string
	id     atomic.Int64
}

// NewClient returns a Client using nc
func NewClient(nc *nats.Conn, prefix string) *Client {
	return &Client{nc: nc, prefix: prefix}
}

// Request sends method on resource with data encoded as JSON and waits for the response
func (c *Client) Request(ctx context.Context, method, resource string, data interface{}) (*Message, error) {
	req := &Message{
		ID:       c.id.Add(1),
		Method:   normalizeMethod(method),
		Resource: resource,
	}
	if data != nil {
		b, err := json.Marshal(data)
		if err != nil {
			return nil, err
		}
		req.Data = b
	}
	out, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	subject := Subject(c.prefix, resource)
	m, err := c.nc.RequestWithContext(ctx, subject, out)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, subject, err)
	}
	resp := &Message{}
	if err := json.Unmarshal(m.Data, resp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if resp.ID != req.ID {
		return nil, fmt.Errorf("response id %d does not match request id %d", resp.ID, req.ID)
	}
	return resp, nil
}
