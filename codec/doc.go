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

// Package codec converts numbers to and from fixed-width byte sequences.
//
// All values are written in network (big-endian) byte order. The legal widths
// depend on the kind of value:
//
//	unsigned  1, 2, 4
//	signed    1, 2, 4, 8
//	float     8
//
// Any other width returns an UnsupportedWidthError. Values that don't fit in
// the requested width return a ValueOutOfRangeError rather than being
// truncated.
//
// Decoders take a buffer and an offset and return the value along with the
// offset of the next unread byte, which makes sequential field parsing
// straightforward:
//
//	version, offset, err := codec.DecodeUnsigned(data, 0, 2)
//	if err != nil {
//	    return err
//	}
//	count, offset, err := codec.DecodeUnsigned(data, offset, 1)
package codec
