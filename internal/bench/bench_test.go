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

package bench

import (
	"fmt"
	"testing"

	"github.com/blinklabs-io/gohathor/codec"
	"github.com/blinklabs-io/gohathor/ledger"
	"github.com/blinklabs-io/gohathor/ledger/common"
	"github.com/blinklabs-io/gohathor/ledger/common/script"
)

// benchSink prevents compiler dead-code elimination in benchmarks.
var benchSink any

// BenchmarkRecordDecode benchmarks record dispatch and decoding by fixture size.
func BenchmarkRecordDecode(b *testing.B) {
	fixtures, err := RecordFixtures()
	if err != nil {
		b.Fatalf("RecordFixtures failed: %v", err)
	}
	d := ledger.NewDispatcher()
	for _, fixture := range fixtures {
		b.Run("Size_"+fixture.Name, func(b *testing.B) {
			b.SetBytes(int64(len(fixture.Data)))
			b.ReportAllocs()
			b.ResetTimer()
			for n := 0; n < b.N; n++ {
				benchSink, _ = d.DecodeRecord(fixture.Data, &common.NetworkMainnet)
			}
		})
	}
}

// BenchmarkRecordEncode benchmarks transaction serialization by fixture size.
func BenchmarkRecordEncode(b *testing.B) {
	fixtures, err := RecordFixtures()
	if err != nil {
		b.Fatalf("RecordFixtures failed: %v", err)
	}
	for _, fixture := range fixtures {
		record, err := ledger.NewRecordFromBytes(fixture.Data, &common.NetworkMainnet)
		if err != nil {
			b.Fatalf("NewRecordFromBytes failed for %s: %v", fixture.Name, err)
		}
		b.Run("Size_"+fixture.Name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for n := 0; n < b.N; n++ {
				benchSink, _ = record.Bytes()
			}
		})
	}
}

// BenchmarkEncodeAddress benchmarks checksum calculation and base58 encoding.
func BenchmarkEncodeAddress(b *testing.B) {
	hash := make([]byte, common.Hash160Size)
	b.ReportAllocs()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		benchSink, _ = common.EncodeAddress(hash, &common.NetworkMainnet)
	}
}

// BenchmarkPushData benchmarks script data pushes on both sides of the direct push limit.
func BenchmarkPushData(b *testing.B) {
	for _, size := range []int{20, 200} {
		data := make([]byte, size)
		b.Run(fmt.Sprintf("Len_%d", size), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for n := 0; n < b.N; n++ {
				var stack script.Stack
				_ = script.PushData(&stack, data)
				benchSink = stack
			}
		})
	}
}

// BenchmarkDecodeUnsigned benchmarks fixed-width integer decoding.
func BenchmarkDecodeUnsigned(b *testing.B) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	for _, width := range []int{1, 2, 4} {
		b.Run(fmt.Sprintf("Width_%d", width), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for n := 0; n < b.N; n++ {
				benchSink, _, _ = codec.DecodeUnsigned(data, 0, width)
			}
		})
	}
}
