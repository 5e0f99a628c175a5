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

// Package bench holds fixtures shared by the benchmarks
package bench

import (
	"github.com/blinklabs-io/gohathor/ledger"
	"github.com/blinklabs-io/gohathor/ledger/common"
	"github.com/blinklabs-io/gohathor/ledger/common/script"
)

// RecordFixture is a serialized record used as benchmark input
type RecordFixture struct {
	Name string
	Data []byte
}

// BuildTransactionFixture serializes a regular transaction with the given
// number of inputs and outputs. Every output pays to a P2PKH script.
func BuildTransactionFixture(inputCount int, outputCount int) ([]byte, error) {
	addr, err := common.EncodeAddress(
		make([]byte, common.Hash160Size),
		&common.NetworkMainnet,
	)
	if err != nil {
		return nil, err
	}
	p2pkhScript, err := script.NewP2PKHScript(addr, nil)
	if err != nil {
		return nil, err
	}
	tx := &ledger.Transaction{
		Version: ledger.DefaultTxVersion,
		Tokens:  []common.Hash256{},
	}
	tx.Inputs = make([]ledger.TxInput, 0, inputCount)
	for i := 0; i < inputCount; i++ {
		tx.Inputs = append(
			tx.Inputs,
			ledger.TxInput{
				TxId:  common.NewHash256([]byte{byte(i)}),
				Index: uint8(i), // #nosec G115
				Data:  make([]byte, 106),
			},
		)
	}
	tx.Outputs = make([]ledger.TxOutput, 0, outputCount)
	for i := 0; i < outputCount; i++ {
		tx.Outputs = append(
			tx.Outputs,
			ledger.TxOutput{
				Value:  uint64(i+1) * 100, // #nosec G115
				Script: p2pkhScript,
			},
		)
	}
	tx.Weight = 17.5
	tx.Timestamp = 1600000000
	tx.Parents = []common.Hash256{
		common.NewHash256([]byte{0x22}),
		common.NewHash256([]byte{0x33}),
	}
	return tx.Bytes()
}

// RecordFixtures returns transaction fixtures of increasing size
func RecordFixtures() ([]RecordFixture, error) {
	sizes := []struct {
		name    string
		inputs  int
		outputs int
	}{
		{"small", 1, 2},
		{"medium", 16, 16},
		{"large", 255, 255},
	}
	ret := make([]RecordFixture, 0, len(sizes))
	for _, size := range sizes {
		data, err := BuildTransactionFixture(size.inputs, size.outputs)
		if err != nil {
			return nil, err
		}
		ret = append(ret, RecordFixture{Name: size.name, Data: data})
	}
	return ret, nil
}
