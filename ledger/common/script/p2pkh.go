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

import (
	"errors"

	"github.com/blinklabs-io/gohathor/codec"
	"github.com/blinklabs-io/gohathor/ledger/common"
)

const (
	p2pkhScriptLen         = 25
	p2pkhTimelockPrefixLen = 6
)

var ErrUnrecognizedScript = errors.New("script is not a P2PKH script")

// P2PKH is a decoded pay-to-pubkey-hash output script
type P2PKH struct {
	Address  common.Address
	Timelock *uint32 // output can't be spent before this timestamp
}

// NewP2PKHScript returns the output script paying to addr. When timelock is set the
// output is locked until that timestamp.
func NewP2PKHScript(addr common.Address, timelock *uint32) ([]byte, error) {
	var stack Stack
	if timelock != nil {
		timelockBytes, err := codec.EncodeUnsigned(uint64(*timelock), 4)
		if err != nil {
			return nil, err
		}
		if err := PushData(&stack, timelockBytes); err != nil {
			return nil, err
		}
		stack.PushOp(OpGreaterThanTimestamp)
	}
	stack.PushOp(OpDup)
	stack.PushOp(OpHash160)
	hash := addr.Hash()
	if err := PushData(&stack, hash.Bytes()); err != nil {
		return nil, err
	}
	stack.PushOp(OpEqualVerify)
	stack.PushOp(OpCheckSig)
	return stack.Bytes(), nil
}

// ParseP2PKHScript decodes a P2PKH output script, with or without timelock, and
// returns the address it pays to on the given network
func ParseP2PKHScript(script []byte, network *common.Network) (*P2PKH, error) {
	if network == nil {
		return nil, common.ErrInvalidNetwork
	}
	ret := &P2PKH{}
	switch len(script) {
	case p2pkhScriptLen:
	case p2pkhScriptLen + p2pkhTimelockPrefixLen:
		if script[0] != 4 || script[5] != OpGreaterThanTimestamp {
			return nil, ErrUnrecognizedScript
		}
		timelock, _, err := codec.DecodeUnsigned(script, 1, 4)
		if err != nil {
			return nil, err
		}
		tmpTimelock := uint32(timelock)
		ret.Timelock = &tmpTimelock
		script = script[p2pkhTimelockPrefixLen:]
	default:
		return nil, ErrUnrecognizedScript
	}
	if script[0] != OpDup ||
		script[1] != OpHash160 ||
		script[2] != common.Hash160Size ||
		script[23] != OpEqualVerify ||
		script[24] != OpCheckSig {
		return nil, ErrUnrecognizedScript
	}
	addr, err := common.EncodeAddress(script[3:23], network)
	if err != nil {
		return nil, err
	}
	ret.Address = addr
	return ret, nil
}
