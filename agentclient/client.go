// Copyright 2025 The Idra Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package agentclient is the orchestrator-side client for the agent
// protocol. It forces [agentwire.Codec] on every call, so it interoperates
// with any agent speaking the wire contract regardless of how that agent
// was built.
package agentclient

import (
	"context"
	"io"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/idra-project/agent-go/agent"
	"github.com/idra-project/agent-go/agentwire"
)

// Client calls one agent process over an established gRPC connection.
type Client struct {
	cc *grpc.ClientConn
}

// New creates a Client using the given connection.
func New(cc *grpc.ClientConn) *Client {
	return &Client{cc: cc}
}

// Dial connects to the agent at addr (host:port). Agents are local
// subprocesses reached over loopback, so no transport security is used.
func Dial(addr string) (*Client, error) {
	cc, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	return New(cc), nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	return c.cc.Close()
}

var executeDesc = &grpc.StreamDesc{
	StreamName:    "Execute",
	ServerStreams: true,
}

// Execute starts the Execute RPC and returns the event stream. A request
// without a task ID gets a fresh one minted; the caller's request is not
// modified.
func (c *Client) Execute(ctx context.Context, req *agent.TaskRequest) (*ExecuteStream, error) {
	if req.TaskID == "" {
		r := *req
		r.TaskID = uuid.NewString()
		req = &r
	}
	stream, err := c.cc.NewStream(ctx, executeDesc, agent.MethodExecute,
		grpc.ForceCodec(agentwire.Codec{}))
	if err != nil {
		return nil, err
	}
	if err := stream.SendMsg(req); err != nil {
		return nil, err
	}
	if err := stream.CloseSend(); err != nil {
		return nil, err
	}
	return &ExecuteStream{stream: stream}, nil
}

// Health calls the Health RPC.
func (c *Client) Health(ctx context.Context) (*agent.HealthResponse, error) {
	resp := &agent.HealthResponse{}
	err := c.cc.Invoke(ctx, agent.MethodHealth, &agent.Empty{}, resp,
		grpc.ForceCodec(agentwire.Codec{}))
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ExecuteStream wraps a gRPC client stream of task events.
type ExecuteStream struct {
	stream grpc.ClientStream
}

// Recv reads the next event. It returns [io.EOF] when the agent has
// finished the task's event sequence.
func (s *ExecuteStream) Recv() (*agent.TaskEvent, error) {
	ev := &agent.TaskEvent{}
	if err := s.stream.RecvMsg(ev); err != nil {
		return nil, err
	}
	return ev, nil
}

// RecvAll drains the stream and returns every event in arrival order.
func (s *ExecuteStream) RecvAll() ([]*agent.TaskEvent, error) {
	var events []*agent.TaskEvent
	for {
		ev, err := s.Recv()
		if err == io.EOF {
			return events, nil
		}
		if err != nil {
			return events, err
		}
		events = append(events, ev)
	}
}
