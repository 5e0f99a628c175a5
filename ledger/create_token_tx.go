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

	"github.com/blinklabs-io/gohathor/ledger/common"
)

const TokenInfoVersion = 1

// CreateTokenTransaction is a (version 2) record that creates a new token
type CreateTokenTransaction struct {
	BaseTransaction
	Version     uint16 `json:"version"`
	TokenName   string `json:"tokenName"`
	TokenSymbol string `json:"tokenSymbol"`
}

// NewCreateTokenTransactionFromBytes decodes a create-token transaction record
func NewCreateTokenTransactionFromBytes(
	data []byte,
	network *common.Network,
) (*CreateTokenTransaction, error) {
	if network == nil {
		return nil, ErrInvalidNetwork
	}
	r := &fieldReader{data: data}
	version, err := r.uint(2)
	if err != nil {
		return nil, err
	}
	if version != CreateTokenTxVersion {
		return nil, ParseError{
			Offset:  0,
			Message: fmt.Sprintf("expected version %d, got %d", CreateTokenTxVersion, version),
		}
	}
	inputCount, err := r.uint(1)
	if err != nil {
		return nil, err
	}
	outputCount, err := r.uint(1)
	if err != nil {
		return nil, err
	}
	ret := &CreateTokenTransaction{
		Version: uint16(version),
	}
	if err := ret.decodeInputsOutputs(r, int(inputCount), int(outputCount)); err != nil {
		return nil, err
	}
	// Token info
	infoOffset := r.offset
	infoVersion, err := r.uint(1)
	if err != nil {
		return nil, err
	}
	if infoVersion != TokenInfoVersion {
		return nil, ParseError{
			Offset:  infoOffset,
			Message: fmt.Sprintf("unknown token info version %d", infoVersion),
		}
	}
	if ret.TokenName, err = readShortString(r); err != nil {
		return nil, err
	}
	if ret.TokenSymbol, err = readShortString(r); err != nil {
		return nil, err
	}
	if err := ret.decodeGraphAndNonce(r); err != nil {
		return nil, err
	}
	ret.network = *network
	ret.raw = bytes.Clone(data)
	return ret, nil
}

func (t *CreateTokenTransaction) RecordVersion() uint16 {
	return t.Version
}

// Bytes serializes the transaction
func (t *CreateTokenTransaction) Bytes() ([]byte, error) {
	w := &fieldWriter{}
	w.uint(uint64(t.Version), 2)
	w.uint(uint64(len(t.Inputs)), 1)
	w.uint(uint64(len(t.Outputs)), 1)
	t.encodeInputsOutputs(w)
	w.uint(TokenInfoVersion, 1)
	w.uint(uint64(len(t.TokenName)), 1)
	w.bytes([]byte(t.TokenName))
	w.uint(uint64(len(t.TokenSymbol)), 1)
	w.bytes([]byte(t.TokenSymbol))
	t.encodeGraphAndNonce(w)
	return w.result()
}

// readShortString reads a string prefixed with a 1-byte length
func readShortString(r *fieldReader) (string, error) {
	length, err := r.uint(1)
	if err != nil {
		return "", err
	}
	ret, err := r.bytes(int(length))
	if err != nil {
		return "", err
	}
	return string(ret), nil
}
