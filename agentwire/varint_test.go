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
	"math"
	"testing"

	"github.com/idra-project/agent-go/agent"
)

func TestUvarintRoundTrip(t *testing.T) {
	t.Parallel()
	for v := uint64(0); v < 1<<17; v++ {
		b := AppendUvarint(nil, v)
		got, off, err := Uvarint(b, 0)
		if err != nil {
			t.Fatalf("Uvarint(%v) error = %v", b, err)
		}
		if got != v {
			t.Fatalf("Uvarint() got = %d, want %d", got, v)
		}
		if off != len(b) {
			t.Fatalf("Uvarint() next offset = %d, want %d", off, len(b))
		}
	}
}

func TestUvarintRoundTrip_Boundaries(t *testing.T) {
	t.Parallel()
	values := []uint64{
		0, 1, 0x7F, 0x80, 0x3FFF, 0x4000,
		1<<21 - 1, 1 << 21, 1<<32 - 1, 1 << 32, 1 << 42,
		math.MaxUint64 - 1, math.MaxUint64,
	}
	for _, v := range values {
		b := AppendUvarint(nil, v)
		got, off, err := Uvarint(b, 0)
		if err != nil {
			t.Fatalf("Uvarint(%#x) error = %v", v, err)
		}
		if got != v || off != len(b) {
			t.Errorf("Uvarint(%#x) got = (%#x, %d), want (%#x, %d)", v, got, off, v, len(b))
		}
	}
}

func TestUvarint_Offset(t *testing.T) {
	t.Parallel()
	b := AppendUvarint(nil, 300)
	b = AppendUvarint(b, 7)

	first, off, err := Uvarint(b, 0)
	if err != nil {
		t.Fatalf("Uvarint() error = %v", err)
	}
	if first != 300 {
		t.Errorf("Uvarint() got = %d, want 300", first)
	}
	second, off, err := Uvarint(b, off)
	if err != nil {
		t.Fatalf("Uvarint() error = %v", err)
	}
	if second != 7 || off != len(b) {
		t.Errorf("Uvarint() got = (%d, %d), want (7, %d)", second, off, len(b))
	}
}

func TestUvarint_Truncated(t *testing.T) {
	t.Parallel()
	cases := [][]byte{
		{0x80},
		{0xFF, 0xFF},
		AppendUvarint(nil, 1<<42)[:3],
		{},
	}
	for _, b := range cases {
		if _, _, err := Uvarint(b, 0); !errors.Is(err, agent.ErrTruncatedInput) {
			t.Errorf("Uvarint(%v) error = %v, want ErrTruncatedInput", b, err)
		}
	}
}
