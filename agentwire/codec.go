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

package agentwire

import (
	"fmt"

	"google.golang.org/grpc/encoding"

	"github.com/idra-project/agent-go/agent"
)

// Codec is the gRPC message codec for the agent protocol. Installing it with
// grpc.ForceServerCodec / grpc.ForceCodec turns the runtime's serialization
// hook into a pass-through to this package, so the transport never touches
// proto-generated marshaling. It advertises the standard "proto" name to
// stay wire-compatible with stub-based peers.
type Codec struct{}

var _ encoding.Codec = Codec{}

// Name implements [encoding.Codec].
func (Codec) Name() string { return "proto" }

// Marshal implements [encoding.Codec] for the agent message types.
func (Codec) Marshal(v any) ([]byte, error) {
	switch m := v.(type) {
	case *agent.TaskRequest:
		return MarshalTaskRequest(m), nil
	case *agent.TaskEvent:
		return MarshalTaskEvent(m), nil
	case *agent.HealthResponse:
		return MarshalHealthResponse(m), nil
	case *agent.Empty:
		return nil, nil
	default:
		return nil, fmt.Errorf("agentwire: cannot marshal %T", v)
	}
}

// Unmarshal implements [encoding.Codec] for the agent message types.
func (Codec) Unmarshal(data []byte, v any) error {
	switch m := v.(type) {
	case *agent.TaskRequest:
		return UnmarshalTaskRequest(data, m)
	case *agent.TaskEvent:
		return UnmarshalTaskEvent(data, m)
	case *agent.HealthResponse:
		return UnmarshalHealthResponse(data, m)
	case *agent.Empty:
		return nil
	default:
		return fmt.Errorf("agentwire: cannot unmarshal into %T", v)
	}
}
