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

// Package agentgrpc exposes an [agentsrv.Executor] over gRPC.
//
// The service descriptor is written by hand instead of generated: it is the
// dispatch table mapping each method name to its calling convention
// (unary-unary for Health, unary-stream for Execute), and all payload
// (de)serialization flows through [agentwire.Codec] rather than the
// runtime's default proto marshaling. Unknown methods are rejected by
// grpc-go's own unimplemented-method path.
package agentgrpc

import (
	"context"
	"log/slog"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/idra-project/agent-go/agent"
	"github.com/idra-project/agent-go/agentsrv"
	"github.com/idra-project/agent-go/agentwire"
)

// Handler bridges inbound gRPC calls to an [agentsrv.Executor].
type Handler struct {
	exec agentsrv.Executor
	log  *slog.Logger
}

// NewHandler is a [Handler] constructor function.
func NewHandler(exec agentsrv.Executor) *Handler {
	return &Handler{exec: exec, log: slog.Default()}
}

// RegisterWith registers the agent service with the provided [grpc.Server].
func (h *Handler) RegisterWith(s *grpc.Server) {
	s.RegisterService(&serviceDesc, h)
}

// NewServer returns a [grpc.Server] wired for the agent protocol: the wire
// codec installed as the serializer for every payload, and concurrency
// bounded so at most maxStreams calls are in flight.
func NewServer(exec agentsrv.Executor, maxStreams uint32, opts ...grpc.ServerOption) *grpc.Server {
	opts = append([]grpc.ServerOption{
		grpc.ForceServerCodec(agentwire.Codec{}),
		grpc.MaxConcurrentStreams(maxStreams),
		grpc.NumStreamWorkers(maxStreams),
	}, opts...)
	s := grpc.NewServer(opts...)
	NewHandler(exec).RegisterWith(s)
	return s
}

type agentServiceServer interface {
	execute(req *agent.TaskRequest, stream grpc.ServerStream) error
	health(ctx context.Context, req *agent.Empty) (*agent.HealthResponse, error)
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: agent.ServiceName,
	HandlerType: (*agentServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Health", Handler: healthHandler},
	},
	Streams: []grpc.StreamDesc{
		{StreamName: "Execute", Handler: executeHandler, ServerStreams: true},
	},
	Metadata: "agent.proto",
}

func executeHandler(srv any, stream grpc.ServerStream) error {
	req := new(agent.TaskRequest)
	// Malformed wire bytes surface here as a transport status; no events
	// are written for a request that did not decode.
	if err := stream.RecvMsg(req); err != nil {
		return err
	}
	return srv.(agentServiceServer).execute(req, stream)
}

func healthHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(agent.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(agentServiceServer).health(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: agent.MethodHealth}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(agentServiceServer).health(ctx, req.(*agent.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func (h *Handler) execute(req *agent.TaskRequest, stream grpc.ServerStream) error {
	events := h.exec.Execute(stream.Context(), req)
	h.log.Info("task executed", "task_id", req.TaskID, "skill", req.Skill, "events", len(events))
	for _, ev := range events {
		if err := stream.SendMsg(ev); err != nil {
			return status.Errorf(codes.Aborted, "failed to send event: %v", err)
		}
	}
	return nil
}

func (h *Handler) health(ctx context.Context, _ *agent.Empty) (*agent.HealthResponse, error) {
	return h.exec.Health(ctx), nil
}
