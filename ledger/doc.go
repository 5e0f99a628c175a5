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

// Package ledger decodes serialized transaction records.
//
// Every record starts with a 2-byte big-endian version tag. A Dispatcher maps
// version tags to decoders:
//
//	DefaultTxVersion      Transaction
//	CreateTokenTxVersion  CreateTokenTransaction
//
// Further versions are added with WithRecordDecoder without affecting the
// existing entries:
//
//	d := ledger.NewDispatcher(
//	    ledger.WithRecordDecoder(3, decodeMyRecord),
//	)
//	record, err := d.DecodeRecord(data, &common.NetworkMainnet)
//
// NewRecordFromBytes and NewRecordFromHex use a dispatcher with the default
// decoders.
package ledger
