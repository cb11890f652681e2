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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/idra-project/agent-go/agent"
)

func TestTaskEvent_RoundTrip(t *testing.T) {
	t.Parallel()
	want := &agent.TaskEvent{TaskID: "t-1", Type: agent.EventResult, Payload: "summary text"}

	got := &agent.TaskEvent{}
	if err := UnmarshalTaskEvent(MarshalTaskEvent(want), got); err != nil {
		t.Fatalf("UnmarshalTaskEvent() error = %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

// Empty string fields are omitted on encode, so presence does not survive a
// round trip: decoding yields the empty default, not an error.
func TestTaskEvent_EmptyStringsAreLossy(t *testing.T) {
	t.Parallel()
	in := &agent.TaskEvent{TaskID: "t-1", Type: "", Payload: "p"}
	raw := MarshalTaskEvent(in)

	fields, err := DecodeFields(raw)
	if err != nil {
		t.Fatalf("DecodeFields() error = %v", err)
	}
	if _, ok := fields[2]; ok {
		t.Error("empty type field was encoded, want omitted")
	}

	got := &agent.TaskEvent{}
	if err := UnmarshalTaskEvent(raw, got); err != nil {
		t.Fatalf("UnmarshalTaskEvent() error = %v", err)
	}
	if got.Type != "" {
		t.Errorf("Type = %q, want empty", got.Type)
	}

	if b := MarshalTaskEvent(&agent.TaskEvent{}); len(b) != 0 {
		t.Errorf("MarshalTaskEvent(zero) = %v, want no bytes", b)
	}
}

func TestHealthResponse_RoundTrip(t *testing.T) {
	t.Parallel()
	want := &agent.HealthResponse{Status: "ok", AgentName: "go-summarizer"}
	got := &agent.HealthResponse{}
	if err := UnmarshalHealthResponse(MarshalHealthResponse(want), got); err != nil {
		t.Fatalf("UnmarshalHealthResponse() error = %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestTaskRequest_MetadataRoundTrip(t *testing.T) {
	t.Parallel()
	want := &agent.TaskRequest{
		TaskID:   "t-2",
		Skill:    "summarize",
		Input:    "Some text.",
		Metadata: map[string]string{"a": "1", "b": "2"},
	}
	raw := MarshalTaskRequest(want)

	fields, err := DecodeFields(raw)
	if err != nil {
		t.Fatalf("DecodeFields() error = %v", err)
	}
	if len(fields[4]) != 2 {
		t.Fatalf("field 4 entries = %d, want 2", len(fields[4]))
	}

	got := &agent.TaskRequest{}
	if err := UnmarshalTaskRequest(raw, got); err != nil {
		t.Fatalf("UnmarshalTaskRequest() error = %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

// The metadata mapping must come out the same regardless of the order map
// entries appear on the wire.
func TestTaskRequest_MetadataEntryOrder(t *testing.T) {
	t.Parallel()
	entryA := appendString(appendString(nil, 1, "a"), 2, "1")
	entryB := appendString(appendString(nil, 1, "b"), 2, "2")
	want := map[string]string{"a": "1", "b": "2"}

	for name, entries := range map[string][][]byte{
		"a then b": {entryA, entryB},
		"b then a": {entryB, entryA},
	} {
		var raw []byte
		for _, e := range entries {
			raw = appendBytes(raw, 4, e)
		}
		got := &agent.TaskRequest{}
		if err := UnmarshalTaskRequest(raw, got); err != nil {
			t.Fatalf("%s: UnmarshalTaskRequest() error = %v", name, err)
		}
		if diff := cmp.Diff(want, got.Metadata); diff != "" {
			t.Errorf("%s: metadata mismatch (-want +got):\n%s", name, diff)
		}
	}
}

func TestTaskRequest_DuplicateMapKeyLastWins(t *testing.T) {
	t.Parallel()
	first := appendString(appendString(nil, 1, "k"), 2, "old")
	second := appendString(appendString(nil, 1, "k"), 2, "new")
	raw := appendBytes(appendBytes(nil, 4, first), 4, second)

	got := &agent.TaskRequest{}
	if err := UnmarshalTaskRequest(raw, got); err != nil {
		t.Fatalf("UnmarshalTaskRequest() error = %v", err)
	}
	if got.Metadata["k"] != "new" {
		t.Errorf("Metadata[k] = %q, want new", got.Metadata["k"])
	}
}

func TestTaskRequest_MapEntryDefaults(t *testing.T) {
	t.Parallel()
	// Entry carrying only a key: the value defaults to the empty string.
	raw := appendBytes(nil, 4, appendString(nil, 1, "solo"))

	got := &agent.TaskRequest{}
	if err := UnmarshalTaskRequest(raw, got); err != nil {
		t.Fatalf("UnmarshalTaskRequest() error = %v", err)
	}
	v, ok := got.Metadata["solo"]
	if !ok || v != "" {
		t.Errorf("Metadata[solo] = (%q, %v), want (\"\", true)", v, ok)
	}
}

func TestTaskRequest_SingularFieldLastWins(t *testing.T) {
	t.Parallel()
	raw := appendString(appendString(nil, 2, "first"), 2, "second")

	got := &agent.TaskRequest{}
	if err := UnmarshalTaskRequest(raw, got); err != nil {
		t.Fatalf("UnmarshalTaskRequest() error = %v", err)
	}
	if got.Skill != "second" {
		t.Errorf("Skill = %q, want second", got.Skill)
	}
}

// A string-typed field that arrives as a varint is stringified in decimal
// rather than rejected.
func TestTaskRequest_VarintValueStringified(t *testing.T) {
	t.Parallel()
	raw := AppendUvarint(nil, 1<<3|uint64(WireVarint))
	raw = AppendUvarint(raw, 42)

	got := &agent.TaskRequest{}
	if err := UnmarshalTaskRequest(raw, got); err != nil {
		t.Fatalf("UnmarshalTaskRequest() error = %v", err)
	}
	if got.TaskID != "42" {
		t.Errorf("TaskID = %q, want 42", got.TaskID)
	}
}

func TestTaskRequest_MalformedMapEntry(t *testing.T) {
	t.Parallel()
	raw := appendBytes(nil, 4, []byte{0x80}) // sub-message tag cut mid-varint

	if err := UnmarshalTaskRequest(raw, &agent.TaskRequest{}); !errors.Is(err, agent.ErrTruncatedInput) {
		t.Errorf("UnmarshalTaskRequest() error = %v, want ErrTruncatedInput", err)
	}
}

func TestTaskRequest_MalformedBuffer(t *testing.T) {
	t.Parallel()
	if err := UnmarshalTaskRequest([]byte{0x0A, 0x7F, 'x'}, &agent.TaskRequest{}); !errors.Is(err, agent.ErrInvalidLength) {
		t.Errorf("UnmarshalTaskRequest() error = %v, want ErrInvalidLength", err)
	}
}
