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
	"strconv"

	"github.com/idra-project/agent-go/agent"
)

// WireType identifies how a field value is encoded on the wire.
type WireType int

const (
	// WireVarint is wire type 0: a bare varint value.
	WireVarint WireType = 0
	// WireBytes is wire type 2: a varint length followed by that many bytes.
	WireBytes WireType = 2
)

// RawValue is one decoded occurrence of a field. Exactly one of Bytes and
// Varint is meaningful, selected by Type.
type RawValue struct {
	Type   WireType
	Bytes  []byte
	Varint uint64
}

// text renders the value as a string: UTF-8 bytes as-is, varints in decimal.
func (v RawValue) text() string {
	if v.Type == WireVarint {
		return strconv.FormatUint(v.Varint, 10)
	}
	return string(v.Bytes)
}

// DecodedFields maps a field number to its decoded occurrences in wire
// order. A field may legitimately appear more than once; repeated map-entry
// sub-messages depend on this.
type DecodedFields map[int][]RawValue

// last returns the final occurrence of field num. For singular fields the
// last value on the wire wins, matching protobuf merge semantics.
func (f DecodedFields) last(num int) (RawValue, bool) {
	vals := f[num]
	if len(vals) == 0 {
		return RawValue{}, false
	}
	return vals[len(vals)-1], true
}

// DecodeFields decodes a flat message buffer into its raw fields. Byte spans
// alias buf; callers that retain them past the buffer's lifetime must copy.
//
// Errors: [agent.ErrTruncatedInput] when a tag, value or length prefix is
// cut short, [agent.ErrInvalidLength] when a declared length overruns the
// buffer, [agent.ErrUnsupportedWireType] for wire types outside {0, 2}.
func DecodeFields(buf []byte) (DecodedFields, error) {
	fields := DecodedFields{}
	off := 0
	for off < len(buf) {
		tag, next, err := Uvarint(buf, off)
		if err != nil {
			return nil, err
		}
		off = next
		num := int(tag >> 3)
		switch wt := WireType(tag & 0x07); wt {
		case WireBytes:
			length, next, err := Uvarint(buf, off)
			if err != nil {
				return nil, err
			}
			off = next
			if length > uint64(len(buf)-off) {
				return nil, fmt.Errorf("%w: field %d declares %d bytes, %d remain",
					agent.ErrInvalidLength, num, length, len(buf)-off)
			}
			end := off + int(length)
			fields[num] = append(fields[num], RawValue{Type: WireBytes, Bytes: buf[off:end]})
			off = end
		case WireVarint:
			v, next, err := Uvarint(buf, off)
			if err != nil {
				return nil, err
			}
			off = next
			fields[num] = append(fields[num], RawValue{Type: WireVarint, Varint: v})
		default:
			return nil, fmt.Errorf("%w: %d (field %d)", agent.ErrUnsupportedWireType, wt, num)
		}
	}
	return fields, nil
}
