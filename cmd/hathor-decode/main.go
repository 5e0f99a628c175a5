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

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/blinklabs-io/gohathor/cbor"
	"github.com/blinklabs-io/gohathor/cmd/common"
	"github.com/blinklabs-io/gohathor/ledger"
)

type decodeFlags struct {
	*common.GlobalFlags
	hexData    string
	cborOutput bool
}

func main() {
	// Parse commandline
	f := decodeFlags{
		GlobalFlags: common.NewGlobalFlags(),
	}
	f.Flagset.StringVar(
		&f.hexData,
		"hex",
		"",
		"hex encoded record to decode (read from stdin if not specified)",
	)
	f.Flagset.BoolVar(
		&f.cborOutput,
		"cbor",
		false,
		"print the output addresses as hex encoded CBOR",
	)
	f.Parse()
	network := f.NetworkParams()
	logger := f.Logger()

	hexData := f.hexData
	if hexData == "" {
		stdinData, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Printf("ERROR: failed to read stdin: %s\n", err)
			os.Exit(1)
		}
		hexData = string(stdinData)
	}

	d := ledger.NewDispatcher(ledger.WithLogger(logger))
	record, err := d.DecodeRecordHex(hexData, network)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	recordJson, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		fmt.Printf("ERROR: failed to encode record: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s\n", recordJson)

	addresses := common.OutputAddresses(record, network)
	logger.Debug(
		"found output addresses",
		"count",
		len(addresses),
	)
	if f.cborOutput {
		addressesCbor, err := cbor.Encode(addresses)
		if err != nil {
			fmt.Printf("ERROR: failed to encode output addresses: %s\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s\n", hex.EncodeToString(addressesCbor))
		return
	}
	for _, output := range addresses {
		if output.Timelock != nil {
			fmt.Printf(
				"output %d: %s (timelock %d)\n",
				output.Index,
				output.Address.String(),
				*output.Timelock,
			)
			continue
		}
		fmt.Printf("output %d: %s\n", output.Index, output.Address.String())
	}
}
