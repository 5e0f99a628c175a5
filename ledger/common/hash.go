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
	"encoding/hex"
	"encoding/json"

	"github.com/blinklabs-io/gohathor/cbor"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck
)

const (
	Hash160Size = 20
	Hash256Size = 32
)

// Hash160 is the 20-byte hash carried in P2PKH scripts and addresses
type Hash160 [Hash160Size]byte

func NewHash160(data []byte) Hash160 {
	h := Hash160{}
	copy(h[:], data)
	return h
}

func (h Hash160) String() string {
	return hex.EncodeToString(h[:])
}

func (h Hash160) Bytes() []byte {
	return h[:]
}

func (h Hash160) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

func (h Hash160) MarshalCBOR() ([]byte, error) {
	// Ensure we always encode a full-sized bytestring, even if the hash is zero-valued
	hashBytes := make([]byte, Hash160Size)
	copy(hashBytes, h[:])
	return cbor.Encode(hashBytes)
}

// Hash160Hash generates ripemd160(sha256(data)), the address hash of a public key
func Hash160Hash(data []byte) Hash160 {
	hasher := ripemd160.New()
	hasher.Write(chainhash.HashB(data))
	return Hash160(hasher.Sum(nil))
}

// Hash256 is a 32-byte identifier, used for transaction IDs and token UIDs
type Hash256 [Hash256Size]byte

func NewHash256(data []byte) Hash256 {
	h := Hash256{}
	copy(h[:], data)
	return h
}

func (h Hash256) String() string {
	return hex.EncodeToString(h[:])
}

func (h Hash256) Bytes() []byte {
	return h[:]
}

func (h Hash256) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

func (h Hash256) MarshalCBOR() ([]byte, error) {
	hashBytes := make([]byte, Hash256Size)
	copy(hashBytes, h[:])
	return cbor.Encode(hashBytes)
}
