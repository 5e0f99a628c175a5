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

package common_test

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/blinklabs-io/gohathor/cbor"
	"github.com/blinklabs-io/gohathor/ledger/common"
)

func TestHash256Encoding(t *testing.T) {
	h := common.NewHash256([]byte{0xde, 0xad, 0xbe, 0xef})
	expectedHex := "deadbeef" + "00000000000000000000000000000000000000000000000000000000"
	if h.String() != expectedHex {
		t.Fatalf("unexpected hash string: got %s, wanted %s", h.String(), expectedHex)
	}
	jsonData, err := json.Marshal(h)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if string(jsonData) != `"`+expectedHex+`"` {
		t.Fatalf("unexpected JSON: %s", jsonData)
	}
	cborData, err := cbor.Encode(h)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	// 32-byte bytestring header followed by the hash
	if hex.EncodeToString(cborData) != "5820"+expectedHex {
		t.Fatalf("unexpected CBOR: %x", cborData)
	}
}

func TestHash160ZeroValueCbor(t *testing.T) {
	var h common.Hash160
	cborData, err := cbor.Encode(h)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if hex.EncodeToString(cborData) != "54"+hex.EncodeToString(make([]byte, 20)) {
		t.Fatalf("unexpected CBOR: %x", cborData)
	}
}
