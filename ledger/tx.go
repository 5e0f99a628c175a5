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
	"fmt"
	"math"

	"github.com/blinklabs-io/gohathor/ledger/common"
	"github.com/blinklabs-io/gohathor/ledger/common/script"
)

const (
	// Largest output value that is serialized in 4 bytes
	MaxOutputValue32 = math.MaxInt32

	TokenAuthorityMask = 0x80
	TokenIndexMask     = 0x7f
)

type TxInput struct {
	TxId  common.Hash256 `json:"txId"`
	Index uint8          `json:"index"`
	Data  []byte         `json:"data"`
}

type TxOutput struct {
	Value     uint64 `json:"value"`
	TokenData uint8  `json:"tokenData"`
	Script    []byte `json:"script"`
}

// IsAuthority returns true for outputs that carry a token authority instead of an amount
func (o TxOutput) IsAuthority() bool {
	return o.TokenData&TokenAuthorityMask != 0
}

// TokenIndex returns the index of the output token. 0 is the native token, and
// n > 0 refers to the (n-1)th entry of the transaction token list.
func (o TxOutput) TokenIndex() int {
	return int(o.TokenData & TokenIndexMask)
}

// P2PKH decodes the output script as a P2PKH script on the given network
func (o TxOutput) P2PKH(network *common.Network) (*script.P2PKH, error) {
	return script.ParseP2PKHScript(o.Script, network)
}

// BaseTransaction holds the fields shared by every record version
type BaseTransaction struct {
	Inputs    []TxInput        `json:"inputs"`
	Outputs   []TxOutput       `json:"outputs"`
	Weight    float64          `json:"weight"`
	Timestamp uint32           `json:"timestamp"`
	Parents   []common.Hash256 `json:"parents"`
	Nonce     uint32           `json:"nonce"`
	network   common.Network
	raw       []byte
}

// Network returns the network the record was decoded for
func (t *BaseTransaction) Network() common.Network {
	return t.network
}

// Raw returns the bytes the record was decoded from
func (t *BaseTransaction) Raw() []byte {
	return t.raw
}

func (t *BaseTransaction) decodeInputsOutputs(
	r *fieldReader,
	inputCount int,
	outputCount int,
) error {
	t.Inputs = make([]TxInput, 0, inputCount)
	for n := 0; n < inputCount; n++ {
		input, err := decodeInput(r)
		if err != nil {
			return err
		}
		t.Inputs = append(t.Inputs, input)
	}
	t.Outputs = make([]TxOutput, 0, outputCount)
	for n := 0; n < outputCount; n++ {
		output, err := decodeOutput(r)
		if err != nil {
			return err
		}
		t.Outputs = append(t.Outputs, output)
	}
	return nil
}

func (t *BaseTransaction) decodeGraphAndNonce(r *fieldReader) error {
	var err error
	if t.Weight, err = r.float(); err != nil {
		return err
	}
	timestamp, err := r.uint(4)
	if err != nil {
		return err
	}
	t.Timestamp = uint32(timestamp)
	parentCount, err := r.uint(1)
	if err != nil {
		return err
	}
	t.Parents = make([]common.Hash256, 0, parentCount)
	for n := uint64(0); n < parentCount; n++ {
		parent, err := r.hash()
		if err != nil {
			return err
		}
		t.Parents = append(t.Parents, parent)
	}
	nonce, err := r.uint(4)
	if err != nil {
		return err
	}
	t.Nonce = uint32(nonce)
	if r.remaining() > 0 {
		return ParseError{
			Offset:  r.offset,
			Message: fmt.Sprintf("%d unexpected trailing bytes", r.remaining()),
		}
	}
	return nil
}

func (t *BaseTransaction) encodeInputsOutputs(w *fieldWriter) {
	for _, input := range t.Inputs {
		w.bytes(input.TxId.Bytes())
		w.uint(uint64(input.Index), 1)
		w.uint(uint64(len(input.Data)), 2)
		w.bytes(input.Data)
	}
	for _, output := range t.Outputs {
		encodeOutputValue(w, output.Value)
		w.uint(uint64(output.TokenData), 1)
		w.uint(uint64(len(output.Script)), 2)
		w.bytes(output.Script)
	}
}

func (t *BaseTransaction) encodeGraphAndNonce(w *fieldWriter) {
	w.float(t.Weight)
	w.uint(uint64(t.Timestamp), 4)
	w.uint(uint64(len(t.Parents)), 1)
	for _, parent := range t.Parents {
		w.bytes(parent.Bytes())
	}
	w.uint(uint64(t.Nonce), 4)
}

func decodeInput(r *fieldReader) (TxInput, error) {
	var ret TxInput
	var err error
	if ret.TxId, err = r.hash(); err != nil {
		return ret, err
	}
	index, err := r.uint(1)
	if err != nil {
		return ret, err
	}
	ret.Index = uint8(index)
	dataLen, err := r.uint(2)
	if err != nil {
		return ret, err
	}
	if ret.Data, err = r.bytes(int(dataLen)); err != nil {
		return ret, err
	}
	return ret, nil
}

func decodeOutput(r *fieldReader) (TxOutput, error) {
	var ret TxOutput
	var err error
	if ret.Value, err = decodeOutputValue(r); err != nil {
		return ret, err
	}
	tokenData, err := r.uint(1)
	if err != nil {
		return ret, err
	}
	ret.TokenData = uint8(tokenData)
	scriptLen, err := r.uint(2)
	if err != nil {
		return ret, err
	}
	if ret.Script, err = r.bytes(int(scriptLen)); err != nil {
		return ret, err
	}
	return ret, nil
}

// Output values up to MaxOutputValue32 use 4 bytes. Larger values are stored
// negated in 8 bytes, so the sign bit of the first byte selects the width.
func decodeOutputValue(r *fieldReader) (uint64, error) {
	highByte, err := r.peek()
	if err != nil {
		return 0, err
	}
	if highByte&0x80 == 0 {
		value, err := r.int(4)
		if err != nil {
			return 0, err
		}
		return uint64(value), nil
	}
	offset := r.offset
	value, err := r.int(8)
	if err != nil {
		return 0, err
	}
	if value == math.MinInt64 || -value <= MaxOutputValue32 {
		return 0, ParseError{
			Offset:  offset,
			Message: fmt.Sprintf("invalid 8-byte output value %d", value),
		}
	}
	return uint64(-value), nil
}

func encodeOutputValue(w *fieldWriter, value uint64) {
	if w.err != nil {
		return
	}
	if value <= MaxOutputValue32 {
		w.int(int64(value), 4)
		return
	}
	if value > math.MaxInt64 {
		w.err = fmt.Errorf("output value %d exceeds maximum", value)
		return
	}
	w.int(-int64(value), 8)
}

// Transaction is a regular (version 1) record
type Transaction struct {
	BaseTransaction
	Version uint16           `json:"version"`
	Tokens  []common.Hash256 `json:"tokens"`
}

// NewTransactionFromBytes decodes a regular transaction record
func NewTransactionFromBytes(
	data []byte,
	network *common.Network,
) (*Transaction, error) {
	if network == nil {
		return nil, ErrInvalidNetwork
	}
	r := &fieldReader{data: data}
	version, err := r.uint(2)
	if err != nil {
		return nil, err
	}
	if version != DefaultTxVersion {
		return nil, ParseError{
			Offset:  0,
			Message: fmt.Sprintf("expected version %d, got %d", DefaultTxVersion, version),
		}
	}
	tokenCount, err := r.uint(1)
	if err != nil {
		return nil, err
	}
	inputCount, err := r.uint(1)
	if err != nil {
		return nil, err
	}
	outputCount, err := r.uint(1)
	if err != nil {
		return nil, err
	}
	ret := &Transaction{
		Version: uint16(version),
		Tokens:  make([]common.Hash256, 0, tokenCount),
	}
	for n := uint64(0); n < tokenCount; n++ {
		token, err := r.hash()
		if err != nil {
			return nil, err
		}
		ret.Tokens = append(ret.Tokens, token)
	}
	if err := ret.decodeInputsOutputs(r, int(inputCount), int(outputCount)); err != nil {
		return nil, err
	}
	if err := ret.decodeGraphAndNonce(r); err != nil {
		return nil, err
	}
	ret.network = *network
	ret.raw = bytes.Clone(data)
	return ret, nil
}

func (t *Transaction) RecordVersion() uint16 {
	return t.Version
}

// Bytes serializes the transaction
func (t *Transaction) Bytes() ([]byte, error) {
	w := &fieldWriter{}
	w.uint(uint64(t.Version), 2)
	w.uint(uint64(len(t.Tokens)), 1)
	w.uint(uint64(len(t.Inputs)), 1)
	w.uint(uint64(len(t.Outputs)), 1)
	for _, token := range t.Tokens {
		w.bytes(token.Bytes())
	}
	t.encodeInputsOutputs(w)
	t.encodeGraphAndNonce(w)
	return w.result()
}
