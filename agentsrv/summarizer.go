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

package agentsrv

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/idra-project/agent-go/agent"
)

// DefaultAgentName is reported by health probes unless overridden.
const DefaultAgentName = "go-summarizer"

const (
	maxSummarySentences = 3
	fallbackRunes       = 200
)

// Summarizer is the extractive-summary [Executor]: it answers the
// "summarize" skill with the first sentences of the input.
type Summarizer struct {
	name string
}

var _ Executor = (*Summarizer)(nil)

// NewSummarizer returns a Summarizer reporting name in health probes, or
// [DefaultAgentName] if name is empty.
func NewSummarizer(name string) *Summarizer {
	if name == "" {
		name = DefaultAgentName
	}
	return &Summarizer{name: name}
}

// Execute implements [Executor]. An unrecognized skill yields a single
// "error" event; otherwise one "progress" event followed by one "result"
// event carrying the summary.
func (s *Summarizer) Execute(_ context.Context, req *agent.TaskRequest) []*agent.TaskEvent {
	if req.Skill != agent.SkillSummarize {
		return []*agent.TaskEvent{{
			TaskID:  req.TaskID,
			Type:    agent.EventError,
			Payload: fmt.Sprintf("unknown skill: %s", req.Skill),
		}}
	}

	sentences := splitSentences(req.Input)
	n := min(maxSummarySentences, len(sentences))
	summary := strings.Join(sentences[:n], " ")
	if summary == "" {
		// No sentence boundaries at all: fall back to a prefix of the raw input.
		summary = truncateRunes(req.Input, fallbackRunes)
	}

	return []*agent.TaskEvent{
		{
			TaskID:  req.TaskID,
			Type:    agent.EventProgress,
			Payload: fmt.Sprintf("Extracted %d sentences from %d total", n, len(sentences)),
		},
		{
			TaskID:  req.TaskID,
			Type:    agent.EventResult,
			Payload: summary,
		},
	}
}

// Health implements [Executor]. It cannot fail.
func (s *Summarizer) Health(context.Context) *agent.HealthResponse {
	return &agent.HealthResponse{Status: "ok", AgentName: s.name}
}

// splitSentences splits text into sentence fragments. A boundary is '.',
// '!' or '?' immediately followed by whitespace; the whitespace run is
// consumed and empty fragments are dropped.
func splitSentences(text string) []string {
	rs := []rune(strings.TrimSpace(text))
	var out []string
	start := 0
	for i := 0; i < len(rs); i++ {
		if !isSentenceEnd(rs[i]) || i+1 >= len(rs) || !unicode.IsSpace(rs[i+1]) {
			continue
		}
		if frag := string(rs[start : i+1]); frag != "" {
			out = append(out, frag)
		}
		j := i + 1
		for j < len(rs) && unicode.IsSpace(rs[j]) {
			j++
		}
		start = j
		i = j - 1
	}
	if start < len(rs) {
		out = append(out, string(rs[start:]))
	}
	return out
}

func isSentenceEnd(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func truncateRunes(s string, n int) string {
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	return string(rs[:n])
}
