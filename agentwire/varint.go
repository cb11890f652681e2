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

// Package agentwire implements the subset of the protobuf wire format used
// by the Idra agent protocol: varints, length-delimited fields and the three
// agent message shapes. It exists so the agent binary carries no generated
// stubs and no protobuf runtime; the gRPC layer hands it raw bytes through
// [Codec].
//
// Supported wire types are varint (0) and length-delimited (2) only.
package agentwire

import (
	"fmt"

	"github.com/idra-project/agent-go/agent"
)

// AppendUvarint appends v to b in base-128 varint form: low 7 bits per byte,
// continuation bit 0x80 set on all but the final byte.
func AppendUvarint(b []byte, v uint64) []byte {
	for v > 0x7F {
		b = append(b, byte(v&0x7F)|0x80)
		v >>= 7
	}
	return append(b, byte(v))
}

// Uvarint decodes a varint from b starting at off and returns the value and
// the offset of the first byte after it. Magnitude is not bounded: bytes
// past the 64-bit range accumulate with standard unsigned wrapping. Callers
// bound untrusted input size at the transport layer.
func Uvarint(b []byte, off int) (uint64, int, error) {
	var v uint64
	var shift uint
	for ; off < len(b); off++ {
		c := b[off]
		v |= uint64(c&0x7F) << shift
		if c&0x80 == 0 {
			return v, off + 1, nil
		}
		shift += 7
	}
	return 0, off, fmt.Errorf("%w: varint runs past end of buffer", agent.ErrTruncatedInput)
}
