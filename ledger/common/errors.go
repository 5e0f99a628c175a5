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

package common

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidNetwork is returned when network parameters are missing
	ErrInvalidNetwork    = errors.New("invalid network parameter")
	ErrInvalidHashLength = errors.New("invalid address hash length")
	ErrInvalidAddress    = errors.New("invalid address")
	ErrShortDigest       = errors.New("digest too short for address checksum")
)

// InvalidHashLengthError indicates an address hash that isn't exactly Hash160Size bytes
type InvalidHashLengthError struct {
	Length int
}

func (e InvalidHashLengthError) Error() string {
	return fmt.Sprintf(
		"invalid address hash length: expected %d bytes, got %d",
		Hash160Size,
		e.Length,
	)
}

func (InvalidHashLengthError) Is(target error) bool {
	return target == ErrInvalidHashLength
}

// InvalidAddressError indicates address text that failed validation
type InvalidAddressError struct {
	Address string
	Reason  string
}

func (e InvalidAddressError) Error() string {
	return fmt.Sprintf("invalid address %q: %s", e.Address, e.Reason)
}

func (InvalidAddressError) Is(target error) bool {
	return target == ErrInvalidAddress
}
