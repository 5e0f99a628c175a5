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

package ledger

import (
	"errors"
	"fmt"

	"github.com/blinklabs-io/gohathor/ledger/common"
)

var (
	ErrInvalidNetwork           = common.ErrInvalidNetwork
	ErrUnsupportedRecordVersion = errors.New("unsupported record version")
	ErrMalformedInput           = errors.New("malformed input")
	ErrParse                    = errors.New("record parse error")
)

// UnsupportedRecordVersionError indicates a version tag with no registered decoder
type UnsupportedRecordVersionError struct {
	Version uint16
}

func (e UnsupportedRecordVersionError) Error() string {
	return fmt.Sprintf("unsupported record version: %d", e.Version)
}

func (UnsupportedRecordVersionError) Is(target error) bool {
	return target == ErrUnsupportedRecordVersion
}

// MalformedInputError indicates input that couldn't be converted to record bytes
type MalformedInputError struct {
	Err error
}

func (e MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input: %v", e.Err)
}

func (e MalformedInputError) Unwrap() error { return e.Err }

func (MalformedInputError) Is(target error) bool {
	return target == ErrMalformedInput
}

// ParseError indicates record bytes that don't follow the layout for their version
type ParseError struct {
	Offset  int
	Message string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("failed to parse record at offset %d: %s", e.Offset, e.Message)
}

func (ParseError) Is(target error) bool {
	return target == ErrParse
}
