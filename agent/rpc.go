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

package agent

// RPC surface of the agent protocol. Method strings must match the
// stub-generated form used by orchestrators and agents in other languages.
const (
	ServiceName = "agent.AgentService"

	// MethodExecute is unary-stream: one TaskRequest in, TaskEvents out.
	MethodExecute = "/agent.AgentService/Execute"

	// MethodHealth is unary-unary: Empty in, one HealthResponse out.
	MethodHealth = "/agent.AgentService/Health"
)
