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
	"fmt"
	"os"

	"github.com/blinklabs-io/gohathor/cmd/common"
	ledgercommon "github.com/blinklabs-io/gohathor/ledger/common"
	"github.com/blinklabs-io/gohathor/ledger/common/script"
)

type addressFlags struct {
	*common.GlobalFlags
	pubKey   string
	hash     string
	decode   string
	timelock uint64
}

func main() {
	// Parse commandline
	f := addressFlags{
		GlobalFlags: common.NewGlobalFlags(),
	}
	f.Flagset.StringVar(&f.pubKey, "pubkey", "", "hex encoded public key to build an address from")
	f.Flagset.StringVar(&f.hash, "hash", "", "hex encoded 20-byte public key hash to build an address from")
	f.Flagset.StringVar(&f.decode, "decode", "", "address to validate and decode")
	f.Flagset.Uint64Var(&f.timelock, "timelock", 0, "add a timelock to the generated P2PKH script")
	f.Parse()
	network := f.NetworkParams()
	logger := f.Logger()
	timelock, err := common.ParseTimelock(f.timelock)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}

	var addr ledgercommon.Address
	switch {
	case f.decode != "":
		addr, err = ledgercommon.NewAddress(f.decode, network)
	case f.pubKey != "":
		var pubKey []byte
		if pubKey, err = hex.DecodeString(f.pubKey); err == nil {
			addr, err = ledgercommon.NewAddressFromPublicKey(pubKey, network)
		}
	case f.hash != "":
		var hash []byte
		if hash, err = hex.DecodeString(f.hash); err == nil {
			addr, err = ledgercommon.EncodeAddress(hash, network)
		}
	default:
		fmt.Printf("ERROR: one of -pubkey, -hash or -decode is required\n")
		os.Exit(1)
	}
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	logger.Debug(
		"built address",
		"network",
		addr.Network().Name,
		"version_byte",
		addr.VersionByte(),
	)
	fmt.Printf("Address: %s\n", addr.String())
	fmt.Printf("Hash:    %s\n", addr.Hash().String())
	fmt.Printf("Bytes:   %s\n", hex.EncodeToString(addr.Bytes()))
	if addr.IsP2SH() {
		return
	}
	p2pkhScript, err := script.NewP2PKHScript(addr, timelock)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("Script:  %s\n", hex.EncodeToString(p2pkhScript))
}
