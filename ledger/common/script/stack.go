// Copyright 2026 Blink Labs Software
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

// Package script builds and parses output scripts
package script

import (
	"github.com/blinklabs-io/gohathor/codec"
)

// Stack is a script under construction, kept as the list of chunks appended to it.
// A Stack is not safe for concurrent use.
type Stack [][]byte

// PushOp appends a single opcode
func (s *Stack) PushOp(op byte) {
	*s = append(*s, []byte{op})
}

// Bytes returns the script formed by concatenating every chunk
func (s Stack) Bytes() []byte {
	var out []byte
	for _, chunk := range s {
		out = append(out, chunk...)
	}
	return out
}

// PushData appends the canonical push of data to stack: OP_PUSHDATA1 when data is
// longer than MaxDirectPushLength, then a single length byte, then data itself.
// The data slice is appended as-is, not copied. Data longer than 255 bytes
// can't be described by the length byte and returns an error without
// modifying the stack.
func PushData(stack *Stack, data []byte) error {
	lenByte, err := codec.EncodeUnsigned(uint64(len(data)), 1)
	if err != nil {
		return err
	}
	if len(data) > MaxDirectPushLength {
		stack.PushOp(OpPushData1)
	}
	*stack = append(*stack, lenByte, data)
	return nil
}
