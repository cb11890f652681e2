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

// Package agent defines the message types of the Idra agent protocol.
// These are plain structs carried over gRPC by the hand-written wire codec
// in [github.com/idra-project/agent-go/agentwire]; no protoc-generated code
// is involved, but the encoding is wire-compatible with agents built from
// standard protobuf stubs.
package agent

// Well-known event types streamed by [TaskEvent.Type]. The set is open:
// orchestrators must tolerate types they do not recognize.
const (
	EventProgress = "progress"
	EventResult   = "result"
	EventError    = "error"
)

// SkillSummarize is the only skill this agent implements.
const SkillSummarize = "summarize"

// TaskRequest is sent by the orchestrator to start a task.
// Field numbers: task_id=1, skill=2, input=3, metadata=4.
type TaskRequest struct {
	TaskID   string
	Skill    string
	Input    string
	Metadata map[string]string
}

// TaskEvent is one unit of streamed output for a running task.
// Field numbers: task_id=1, type=2, payload=3.
type TaskEvent struct {
	TaskID  string
	Type    string
	Payload string
}

// HealthResponse answers a health probe.
// Field numbers: status=1, agent_name=2.
type HealthResponse struct {
	Status    string
	AgentName string
}

// Empty mirrors google.protobuf.Empty and serves as the Health request body.
type Empty struct{}
