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

package script_test

import (
	"encoding/hex"
	"testing"

	"github.com/blinklabs-io/gohathor/codec"
	"github.com/blinklabs-io/gohathor/internal/test"
	"github.com/blinklabs-io/gohathor/ledger/common"
	"github.com/blinklabs-io/gohathor/ledger/common/script"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushDataShort(t *testing.T) {
	for _, length := range []int{0, 1, 20, script.MaxDirectPushLength} {
		var stack script.Stack
		data := test.FilledBytes(0x11, length)
		require.NoError(t, script.PushData(&stack, data))
		require.Len(t, stack, 2)
		assert.Equal(t, []byte{byte(length)}, stack[0])
		assert.Equal(t, data, stack[1])
	}
}

func TestPushDataExtended(t *testing.T) {
	for _, length := range []int{script.MaxDirectPushLength + 1, 200, 255} {
		var stack script.Stack
		data := test.FilledBytes(0x22, length)
		require.NoError(t, script.PushData(&stack, data))
		require.Len(t, stack, 3)
		assert.Equal(t, []byte{script.OpPushData1}, stack[0])
		assert.Equal(t, []byte{byte(length)}, stack[1])
		assert.Equal(t, data, stack[2])
	}
}

func TestPushDataTooLong(t *testing.T) {
	stack := script.Stack{{script.OpDup}}
	err := script.PushData(&stack, make([]byte, 256))
	assert.ErrorIs(t, err, codec.ErrValueOutOfRange)
	// Nothing is appended on failure
	assert.Len(t, stack, 1)
}

func TestPushDataAppends(t *testing.T) {
	stack := script.Stack{{script.OpDup}}
	data := []byte{0x01, 0x02}
	require.NoError(t, script.PushData(&stack, data))
	require.NoError(t, script.PushData(&stack, data))
	assert.Equal(t, "76020102020102", hex.EncodeToString(stack.Bytes()))
	// The data chunk is the caller's slice, not a copy
	assert.Same(t, &data[0], &stack[2][0])
}

func TestP2PKHScript(t *testing.T) {
	addr, err := common.EncodeAddress(make([]byte, 20), &common.NetworkMainnet)
	require.NoError(t, err)
	testDefs := []struct {
		name        string
		timelock    *uint32
		expectedHex string
	}{
		{
			name:        "NoTimelock",
			expectedHex: "76a914000000000000000000000000000000000000000088ac",
		},
		{
			name:        "Timelock",
			timelock:    func() *uint32 { v := uint32(1600000000); return &v }(),
			expectedHex: "045f5e10006f76a914000000000000000000000000000000000000000088ac",
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			scriptBytes, err := script.NewP2PKHScript(addr, testDef.timelock)
			require.NoError(t, err)
			assert.Equal(t, testDef.expectedHex, hex.EncodeToString(scriptBytes))
			parsed, err := script.ParseP2PKHScript(scriptBytes, &common.NetworkMainnet)
			require.NoError(t, err)
			assert.Equal(t, addr.String(), parsed.Address.String())
			assert.Equal(t, testDef.timelock, parsed.Timelock)
		})
	}
}

func TestParseP2PKHScriptUnrecognized(t *testing.T) {
	testDefs := []string{
		"",
		"76a9",
		// Wrong final opcode
		"76a914000000000000000000000000000000000000000088ad",
		// Timelock prefix with the wrong opcode
		"045f5e10006e76a914000000000000000000000000000000000000000088ac",
		// P2SH-shaped script
		"a914000000000000000000000000000000000000000087",
	}
	for _, scriptHex := range testDefs {
		_, err := script.ParseP2PKHScript(test.DecodeHexString(scriptHex), &common.NetworkMainnet)
		assert.ErrorIs(t, err, script.ErrUnrecognizedScript, "script %s", scriptHex)
	}
	_, err := script.ParseP2PKHScript(
		test.DecodeHexString("76a914000000000000000000000000000000000000000088ac"),
		nil,
	)
	assert.ErrorIs(t, err, common.ErrInvalidNetwork)
}
