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

// Package agentsrv holds the agent's task execution service.
package agentsrv

import (
	"context"

	"github.com/idra-project/agent-go/agent"
)

// Executor is the service contract behind the agent's RPC surface.
//
// Execute consumes one decoded request and returns the full ordered event
// sequence for it. The sequence is finite and already materialized: task
// execution here has no suspension points, so events are computed eagerly
// and handed to the transport for sequential writes. A failed task is a
// normal sequence ending in an "error" event, not a Go error — the
// orchestrator distinguishes "agent is broken" (transport status) from
// "agent cannot do that" (in-band event).
//
// Implementations must be pure functions of the request: no state may be
// shared across calls.
type Executor interface {
	Execute(ctx context.Context, req *agent.TaskRequest) []*agent.TaskEvent
	Health(ctx context.Context) *agent.HealthResponse
}
