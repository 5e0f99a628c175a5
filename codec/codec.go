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

package codec

import (
	"encoding/binary"
	"math"
)

const (
	kindUnsigned = "unsigned"
	kindSigned   = "signed"
	kindFloat    = "float"
)

// EncodeUnsigned writes value as a big-endian unsigned integer of exactly width bytes.
// Only widths 1, 2 and 4 are supported.
func EncodeUnsigned(value uint64, width int) ([]byte, error) {
	switch width {
	case 1, 2, 4:
	default:
		return nil, UnsupportedWidthError{Kind: kindUnsigned, Width: width}
	}
	ret := make([]byte, width)
	switch width {
	case 1:
		if value > math.MaxUint8 {
			return nil, ValueOutOfRangeError{Value: value, Width: width}
		}
		ret[0] = uint8(value)
	case 2:
		if value > math.MaxUint16 {
			return nil, ValueOutOfRangeError{Value: value, Width: width}
		}
		binary.BigEndian.PutUint16(ret, uint16(value))
	case 4:
		if value > math.MaxUint32 {
			return nil, ValueOutOfRangeError{Value: value, Width: width}
		}
		binary.BigEndian.PutUint32(ret, uint32(value))
	}
	return ret, nil
}

// EncodeSigned writes value as a big-endian two's complement integer of exactly width bytes.
// Widths 1, 2, 4 and 8 are supported, and the 8 byte form covers the full int64 range.
func EncodeSigned(value int64, width int) ([]byte, error) {
	switch width {
	case 1, 2, 4, 8:
	default:
		return nil, UnsupportedWidthError{Kind: kindSigned, Width: width}
	}
	ret := make([]byte, width)
	switch width {
	case 1:
		if value < math.MinInt8 || value > math.MaxInt8 {
			return nil, ValueOutOfRangeError{Value: value, Width: width}
		}
		ret[0] = uint8(int8(value))
	case 2:
		if value < math.MinInt16 || value > math.MaxInt16 {
			return nil, ValueOutOfRangeError{Value: value, Width: width}
		}
		binary.BigEndian.PutUint16(ret, uint16(int16(value)))
	case 4:
		if value < math.MinInt32 || value > math.MaxInt32 {
			return nil, ValueOutOfRangeError{Value: value, Width: width}
		}
		binary.BigEndian.PutUint32(ret, uint32(int32(value)))
	case 8:
		binary.BigEndian.PutUint64(ret, uint64(value))
	}
	return ret, nil
}

// EncodeFloat writes value as a big-endian IEEE-754 double. Only width 8 is supported.
func EncodeFloat(value float64, width int) ([]byte, error) {
	if width != 8 {
		return nil, UnsupportedWidthError{Kind: kindFloat, Width: width}
	}
	ret := make([]byte, 8)
	binary.BigEndian.PutUint64(ret, math.Float64bits(value))
	return ret, nil
}

// DecodeUnsigned reads a big-endian unsigned integer of width bytes starting at offset.
// It returns the value and the offset immediately after it.
func DecodeUnsigned(data []byte, offset int, width int) (uint64, int, error) {
	switch width {
	case 1, 2, 4:
	default:
		return 0, offset, UnsupportedWidthError{Kind: kindUnsigned, Width: width}
	}
	buf, err := window(data, offset, width)
	if err != nil {
		return 0, offset, err
	}
	var ret uint64
	switch width {
	case 1:
		ret = uint64(buf[0])
	case 2:
		ret = uint64(binary.BigEndian.Uint16(buf))
	case 4:
		ret = uint64(binary.BigEndian.Uint32(buf))
	}
	return ret, offset + width, nil
}

// DecodeSigned reads a big-endian two's complement integer of width bytes starting at offset
func DecodeSigned(data []byte, offset int, width int) (int64, int, error) {
	switch width {
	case 1, 2, 4, 8:
	default:
		return 0, offset, UnsupportedWidthError{Kind: kindSigned, Width: width}
	}
	buf, err := window(data, offset, width)
	if err != nil {
		return 0, offset, err
	}
	var ret int64
	switch width {
	case 1:
		ret = int64(int8(buf[0]))
	case 2:
		ret = int64(int16(binary.BigEndian.Uint16(buf)))
	case 4:
		ret = int64(int32(binary.BigEndian.Uint32(buf)))
	case 8:
		ret = int64(binary.BigEndian.Uint64(buf))
	}
	return ret, offset + width, nil
}

// DecodeFloat reads a big-endian IEEE-754 double starting at offset
func DecodeFloat(data []byte, offset int, width int) (float64, int, error) {
	if width != 8 {
		return 0, offset, UnsupportedWidthError{Kind: kindFloat, Width: width}
	}
	buf, err := window(data, offset, width)
	if err != nil {
		return 0, offset, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(buf)), offset + width, nil
}

// DecodeBytes returns a copy of the length bytes starting at offset
func DecodeBytes(data []byte, offset int, length int) ([]byte, int, error) {
	buf, err := window(data, offset, length)
	if err != nil {
		return nil, offset, err
	}
	ret := make([]byte, length)
	copy(ret, buf)
	return ret, offset + length, nil
}

func window(data []byte, offset int, width int) ([]byte, error) {
	if offset < 0 || width < 0 || offset > len(data) || len(data)-offset < width {
		return nil, BufferUnderrunError{
			Offset:    offset,
			Width:     width,
			Available: len(data),
		}
	}
	return data[offset : offset+width], nil
}
