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

// Network definitions
var (
	NetworkMainnet = Network{
		Name:             "mainnet",
		P2PKHVersionByte: 0x28,
		P2SHVersionByte:  0x64,
	}
	NetworkTestnet = Network{
		Name:             "testnet",
		P2PKHVersionByte: 0x49,
		P2SHVersionByte:  0x87,
	}
	NetworkPrivatenet = Network{
		Name:             "privatenet",
		P2PKHVersionByte: 0x49,
		P2SHVersionByte:  0x87,
	}

	NetworkInvalid = Network{
		Name: "invalid",
	} // NetworkInvalid is used as a return value for lookup functions when a network isn't found
)

// List of valid networks for use in lookup functions
var networks = []Network{
	NetworkMainnet,
	NetworkTestnet,
	NetworkPrivatenet,
}

// NetworkByName returns a predefined network by name
func NetworkByName(name string) Network {
	for _, network := range networks {
		if network.Name == name {
			return network
		}
	}
	return NetworkInvalid
}

// NetworkByVersionByte returns the first predefined network that uses the
// provided address version byte. Testnet and privatenet share version bytes,
// so testnet is returned for those.
func NetworkByVersionByte(versionByte uint8) Network {
	for _, network := range networks {
		if network.P2PKHVersionByte == versionByte ||
			network.P2SHVersionByte == versionByte {
			return network
		}
	}
	return NetworkInvalid
}

// Network holds the per-network address parameters
type Network struct {
	Name             string
	P2PKHVersionByte uint8 // first byte of pay-to-pubkey-hash addresses
	P2SHVersionByte  uint8 // first byte of pay-to-script-hash addresses
}

func (n Network) String() string {
	return n.Name
}
