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

package script

const (
	OpPushData1            = 0x4c
	OpGreaterThanTimestamp = 0x6f
	OpDup                  = 0x76
	OpEqualVerify          = 0x88
	OpHash160              = 0xa9
	OpCheckSig             = 0xac
)

// MaxDirectPushLength is the longest data that can be pushed with only a length byte
const MaxDirectPushLength = 75
