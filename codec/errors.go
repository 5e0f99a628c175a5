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

package codec

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedWidth = errors.New("unsupported width")
	ErrBufferUnderrun   = errors.New("buffer underrun")
	ErrValueOutOfRange  = errors.New("value out of range")
)

// UnsupportedWidthError indicates a byte width that isn't legal for the numeric kind
type UnsupportedWidthError struct {
	Kind  string
	Width int
}

func (e UnsupportedWidthError) Error() string {
	return fmt.Sprintf("unsupported width for %s value: %d", e.Kind, e.Width)
}

func (UnsupportedWidthError) Is(target error) bool {
	return target == ErrUnsupportedWidth
}

// BufferUnderrunError indicates that fewer than Width bytes remain at Offset
type BufferUnderrunError struct {
	Offset    int
	Width     int
	Available int
}

func (e BufferUnderrunError) Error() string {
	return fmt.Sprintf(
		"buffer underrun: need %d bytes at offset %d, buffer has %d",
		e.Width,
		e.Offset,
		e.Available,
	)
}

func (BufferUnderrunError) Is(target error) bool {
	return target == ErrBufferUnderrun
}

// ValueOutOfRangeError indicates a value that can't be represented in the requested width
type ValueOutOfRangeError struct {
	Value any
	Width int
}

func (e ValueOutOfRangeError) Error() string {
	return fmt.Sprintf("value %v does not fit in %d bytes", e.Value, e.Width)
}

func (ValueOutOfRangeError) Is(target error) bool {
	return target == ErrValueOutOfRange
}
