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

package common

import (
	"fmt"
	"math"

	"github.com/blinklabs-io/gohathor/ledger"
	ledgercommon "github.com/blinklabs-io/gohathor/ledger/common"
)

// OutputAddress describes a P2PKH output of a decoded record
type OutputAddress struct {
	Index    int                  `json:"index"`
	Address  ledgercommon.Address `json:"address"`
	Hash     ledgercommon.Hash160 `json:"hash"`
	Timelock *uint32              `json:"timelock,omitempty"`
}

// OutputAddresses returns the outputs of record that pay to a P2PKH script.
// Other outputs are skipped.
func OutputAddresses(
	record ledger.Record,
	network *ledgercommon.Network,
) []OutputAddress {
	var outputs []ledger.TxOutput
	switch tx := record.(type) {
	case *ledger.Transaction:
		outputs = tx.Outputs
	case *ledger.CreateTokenTransaction:
		outputs = tx.Outputs
	}
	ret := make([]OutputAddress, 0, len(outputs))
	for idx, output := range outputs {
		p2pkh, err := output.P2PKH(network)
		if err != nil {
			continue
		}
		ret = append(
			ret,
			OutputAddress{
				Index:    idx,
				Address:  p2pkh.Address,
				Hash:     p2pkh.Address.Hash(),
				Timelock: p2pkh.Timelock,
			},
		)
	}
	return ret
}

// ParseTimelock converts a timelock flag value. Zero means no timelock.
func ParseTimelock(value uint64) (*uint32, error) {
	if value == 0 {
		return nil, nil
	}
	if value > math.MaxUint32 {
		return nil, fmt.Errorf(
			"timelock %d exceeds maximum of %d",
			value,
			uint64(math.MaxUint32),
		)
	}
	ret := uint32(value)
	return &ret, nil
}
