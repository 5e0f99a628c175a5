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
	"flag"
	"fmt"
	"log/slog"
	"os"

	ledgercommon "github.com/blinklabs-io/gohathor/ledger/common"
)

type GlobalFlags struct {
	Flagset *flag.FlagSet
	Network string
	Debug   bool
}

func NewGlobalFlags() *GlobalFlags {
	f := &GlobalFlags{
		Flagset: flag.NewFlagSet(os.Args[0], flag.ExitOnError),
	}
	f.Flagset.StringVar(
		&f.Network,
		"network",
		"mainnet",
		"network used to validate addresses (mainnet, testnet, privatenet)",
	)
	f.Flagset.BoolVar(&f.Debug, "debug", false, "enable debug logging")
	return f
}

func (f *GlobalFlags) Parse() {
	if err := f.Flagset.Parse(os.Args[1:]); err != nil {
		fmt.Printf("failed to parse command args: %s\n", err)
		os.Exit(1)
	}
	if network := ledgercommon.NetworkByName(f.Network); network == ledgercommon.NetworkInvalid {
		fmt.Printf("Invalid network specified: %s\n", f.Network)
		os.Exit(1)
	}
}

// NetworkParams returns the parameters for the selected network
func (f *GlobalFlags) NetworkParams() *ledgercommon.Network {
	network := ledgercommon.NetworkByName(f.Network)
	return &network
}

// Logger returns a logger writing to stderr, at debug level when -debug is set
func (f *GlobalFlags) Logger() *slog.Logger {
	level := slog.LevelInfo
	if f.Debug {
		level = slog.LevelDebug
	}
	return slog.New(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
	)
}
