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

// Package common provides the types shared by the record decoders and scripts.
//
// # Key Files by Purpose
//
//   - network.go: Network parameters and the predefined networks
//   - hash.go: Fixed-size hash types (Hash160, Hash256)
//   - address.go: Base58Check address encoding, parsing and validation
//   - errors.go: Error types returned by this package
//
// # Addresses
//
// An address is the base58 text of
//
//	version byte || 20-byte hash || 4-byte checksum
//
// where the checksum is the first 4 bytes of sha256(sha256(version || hash)).
// The digest and the text encoding are injected into AddressEncoder through
// single-method interfaces, so tests can substitute either one. The package
// level functions use sha256 and base58.
package common
