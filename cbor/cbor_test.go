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

package cbor_test

import (
	"encoding/hex"
	"reflect"
	"testing"

	"github.com/blinklabs-io/gohathor/cbor"
)

var codecTests = []struct {
	CborHex   string
	Object    any
	BytesRead int
}{
	// Simple list of numbers
	{
		CborHex: "83010203",
		Object:  []any{uint64(1), uint64(2), uint64(3)},
	},
	// Text string
	{
		CborHex: "6468617468",
		Object:  "hath",
	},
	// Map keys are sorted on encode
	{
		CborHex: "a2616101616202",
		Object:  map[any]any{"a": uint64(1), "b": uint64(2)},
	},
}

func TestEncode(t *testing.T) {
	for _, test := range codecTests {
		cborData, err := cbor.Encode(test.Object)
		if err != nil {
			t.Fatalf("failed to encode object to CBOR: %s", err)
		}
		cborHex := hex.EncodeToString(cborData)
		if cborHex != test.CborHex {
			t.Fatalf(
				"object did not encode to expected CBOR\n  got: %s\n  wanted: %s",
				cborHex,
				test.CborHex,
			)
		}
	}
}

func TestDecode(t *testing.T) {
	for _, test := range codecTests {
		cborData, err := hex.DecodeString(test.CborHex)
		if err != nil {
			t.Fatalf("failed to decode CBOR hex: %s", err)
		}
		var dest any
		bytesRead, err := cbor.Decode(cborData, &dest)
		if err != nil {
			t.Fatalf("failed to decode CBOR: %s", err)
		}
		if bytesRead != len(cborData) {
			t.Fatalf("expected to read %d bytes, read %d instead", len(cborData), bytesRead)
		}
		if !reflect.DeepEqual(dest, test.Object) {
			t.Fatalf("CBOR did not decode to expected object\n  got: %#v\n  wanted: %#v", dest, test.Object)
		}
	}
}

func TestDecodeMultipleItems(t *testing.T) {
	// Only the first of two concatenated items is consumed
	cborData, _ := hex.DecodeString("81018102")
	var dest any
	bytesRead, err := cbor.Decode(cborData, &dest)
	if err != nil {
		t.Fatalf("failed to decode CBOR: %s", err)
	}
	if bytesRead != 2 {
		t.Fatalf("expected to read 2 bytes, read %d instead", bytesRead)
	}
}
