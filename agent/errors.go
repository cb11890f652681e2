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

import "errors"

var (
	// ErrTruncatedInput indicates that the wire bytes ended mid-varint or
	// mid-value, so decoding cannot proceed.
	ErrTruncatedInput = errors.New("truncated input")

	// ErrInvalidLength indicates a length-delimited field declared more
	// bytes than remain in the buffer.
	ErrInvalidLength = errors.New("invalid length")

	// ErrUnsupportedWireType indicates a field used a wire type outside the
	// supported subset (varint, length-delimited).
	ErrUnsupportedWireType = errors.New("unsupported wire type")
)
