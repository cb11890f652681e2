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

import "github.com/idra-project/agent-go/agent"

// Empty string fields are omitted on encode, so a decoded empty field is
// indistinguishable from an absent one. That is the wire format's "default
// value is unset" convention and callers must not rely on empty-string
// presence surviving a round trip.

// MarshalTaskRequest encodes a TaskRequest.
// task_id=1, skill=2, input=3, metadata=4 (map entries, key=1 value=2).
func MarshalTaskRequest(m *agent.TaskRequest) []byte {
	var b []byte
	b = appendString(b, 1, m.TaskID)
	b = appendString(b, 2, m.Skill)
	b = appendString(b, 3, m.Input)
	for k, v := range m.Metadata {
		entry := appendString(nil, 1, k)
		entry = appendString(entry, 2, v)
		b = appendBytes(b, 4, entry)
	}
	return b
}

// UnmarshalTaskRequest decodes into m. Singular fields take the last value
// on the wire; duplicate metadata keys take the last entry.
func UnmarshalTaskRequest(data []byte, m *agent.TaskRequest) error {
	fields, err := DecodeFields(data)
	if err != nil {
		return err
	}
	if v, ok := fields.last(1); ok {
		m.TaskID = v.text()
	}
	if v, ok := fields.last(2); ok {
		m.Skill = v.text()
	}
	if v, ok := fields.last(3); ok {
		m.Input = v.text()
	}
	meta, err := decodeStringMap(fields[4])
	if err != nil {
		return err
	}
	if meta != nil {
		m.Metadata = meta
	}
	return nil
}

// MarshalTaskEvent encodes a TaskEvent. task_id=1, type=2, payload=3.
func MarshalTaskEvent(m *agent.TaskEvent) []byte {
	var b []byte
	b = appendString(b, 1, m.TaskID)
	b = appendString(b, 2, m.Type)
	b = appendString(b, 3, m.Payload)
	return b
}

// UnmarshalTaskEvent decodes into m.
func UnmarshalTaskEvent(data []byte, m *agent.TaskEvent) error {
	fields, err := DecodeFields(data)
	if err != nil {
		return err
	}
	if v, ok := fields.last(1); ok {
		m.TaskID = v.text()
	}
	if v, ok := fields.last(2); ok {
		m.Type = v.text()
	}
	if v, ok := fields.last(3); ok {
		m.Payload = v.text()
	}
	return nil
}

// MarshalHealthResponse encodes a HealthResponse. status=1, agent_name=2.
func MarshalHealthResponse(m *agent.HealthResponse) []byte {
	var b []byte
	b = appendString(b, 1, m.Status)
	b = appendString(b, 2, m.AgentName)
	return b
}

// UnmarshalHealthResponse decodes into m.
func UnmarshalHealthResponse(data []byte, m *agent.HealthResponse) error {
	fields, err := DecodeFields(data)
	if err != nil {
		return err
	}
	if v, ok := fields.last(1); ok {
		m.Status = v.text()
	}
	if v, ok := fields.last(2); ok {
		m.AgentName = v.text()
	}
	return nil
}

// decodeStringMap folds repeated map-entry sub-messages into a string map.
// Each entry is a nested message with key=1 and value=2; an absent key or
// value defaults to the empty string, and later duplicate keys win. Any
// additional mapping-typed field decodes through this same helper.
// Returns nil when entries holds no sub-messages.
func decodeStringMap(entries []RawValue) (map[string]string, error) {
	var m map[string]string
	for _, e := range entries {
		if e.Type != WireBytes {
			continue
		}
		sub, err := DecodeFields(e.Bytes)
		if err != nil {
			return nil, err
		}
		if m == nil {
			m = make(map[string]string)
		}
		m[mapEntryText(sub, 1)] = mapEntryText(sub, 2)
	}
	return m, nil
}

func mapEntryText(sub DecodedFields, num int) string {
	if vals := sub[num]; len(vals) > 0 {
		return vals[0].text()
	}
	return ""
}

func appendString(b []byte, num int, s string) []byte {
	if s == "" {
		return b
	}
	b = AppendUvarint(b, uint64(num)<<3|uint64(WireBytes))
	b = AppendUvarint(b, uint64(len(s)))
	return append(b, s...)
}

func appendBytes(b []byte, num int, raw []byte) []byte {
	b = AppendUvarint(b, uint64(num)<<3|uint64(WireBytes))
	b = AppendUvarint(b, uint64(len(raw)))
	return append(b, raw...)
}
