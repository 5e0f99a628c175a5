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

package ledger

import (
	"bytes"

	"github.com/blinklabs-io/gohathor/codec"
	"github.com/blinklabs-io/gohathor/ledger/common"
)

// fieldReader walks a record buffer field by field
type fieldReader struct {
	data   []byte
	offset int
}

func (r *fieldReader) uint(width int) (uint64, error) {
	ret, offset, err := codec.DecodeUnsigned(r.data, r.offset, width)
	if err != nil {
		return 0, err
	}
	r.offset = offset
	return ret, nil
}

func (r *fieldReader) int(width int) (int64, error) {
	ret, offset, err := codec.DecodeSigned(r.data, r.offset, width)
	if err != nil {
		return 0, err
	}
	r.offset = offset
	return ret, nil
}

func (r *fieldReader) float() (float64, error) {
	ret, offset, err := codec.DecodeFloat(r.data, r.offset, 8)
	if err != nil {
		return 0, err
	}
	r.offset = offset
	return ret, nil
}

func (r *fieldReader) bytes(length int) ([]byte, error) {
	ret, offset, err := codec.DecodeBytes(r.data, r.offset, length)
	if err != nil {
		return nil, err
	}
	r.offset = offset
	return ret, nil
}

func (r *fieldReader) hash() (common.Hash256, error) {
	ret, err := r.bytes(common.Hash256Size)
	if err != nil {
		return common.Hash256{}, err
	}
	return common.NewHash256(ret), nil
}

// peek returns the next byte without consuming it
func (r *fieldReader) peek() (byte, error) {
	ret, _, err := codec.DecodeUnsigned(r.data, r.offset, 1)
	return byte(ret), err
}

func (r *fieldReader) remaining() int {
	return len(r.data) - r.offset
}

// fieldWriter accumulates encoded fields. The first error is kept and every
// later write is skipped.
type fieldWriter struct {
	buf bytes.Buffer
	err error
}

func (w *fieldWriter) uint(value uint64, width int) {
	if w.err != nil {
		return
	}
	var tmp []byte
	tmp, w.err = codec.EncodeUnsigned(value, width)
	w.buf.Write(tmp)
}

func (w *fieldWriter) int(value int64, width int) {
	if w.err != nil {
		return
	}
	var tmp []byte
	tmp, w.err = codec.EncodeSigned(value, width)
	w.buf.Write(tmp)
}

func (w *fieldWriter) float(value float64) {
	if w.err != nil {
		return
	}
	var tmp []byte
	tmp, w.err = codec.EncodeFloat(value, 8)
	w.buf.Write(tmp)
}

func (w *fieldWriter) bytes(data []byte) {
	if w.err != nil {
		return
	}
	w.buf.Write(data)
}

func (w *fieldWriter) result() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	return w.buf.Bytes(), nil
}
