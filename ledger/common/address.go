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
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/blinklabs-io/gohathor/cbor"
	"github.com/blinklabs-io/gohathor/codec"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const (
	AddressChecksumSize = 4
	// version byte + hash + checksum
	AddressSize = 1 + Hash160Size + AddressChecksumSize
)

// Digester computes a fixed-size digest of the input. The digest must be at
// least AddressChecksumSize bytes long.
type Digester interface {
	Digest(data []byte) []byte
}

// DigestFunc adapts a plain function to the Digester interface
type DigestFunc func([]byte) []byte

func (f DigestFunc) Digest(data []byte) []byte {
	return f(data)
}

// TextEncoder converts raw address bytes to their text form
type TextEncoder interface {
	Encode(data []byte) string
}

// TextEncoderFunc adapts a plain function to the TextEncoder interface
type TextEncoderFunc func([]byte) string

func (f TextEncoderFunc) Encode(data []byte) string {
	return f(data)
}

// TextDecoder converts address text back to raw bytes. Invalid input yields an empty result.
type TextDecoder interface {
	Decode(text string) []byte
}

// TextDecoderFunc adapts a plain function to the TextDecoder interface
type TextDecoderFunc func(string) []byte

func (f TextDecoderFunc) Decode(text string) []byte {
	return f(text)
}

// Address is a Base58Check encoded payment address
type Address struct {
	text    string
	raw     []byte
	network Network
}

func (a Address) String() string {
	return a.text
}

// Network returns the network parameters the address was built or validated with
func (a Address) Network() Network {
	return a.network
}

// Bytes returns the decoded address bytes: version byte, hash and checksum
func (a Address) Bytes() []byte {
	return bytes.Clone(a.raw)
}

func (a Address) VersionByte() uint8 {
	if len(a.raw) == 0 {
		return 0
	}
	return a.raw[0]
}

// Hash returns the 20-byte hash carried by the address
func (a Address) Hash() Hash160 {
	if len(a.raw) < 1+Hash160Size {
		return Hash160{}
	}
	return NewHash160(a.raw[1 : 1+Hash160Size])
}

// IsP2SH returns true if the address uses the network's pay-to-script-hash version byte
func (a Address) IsP2SH() bool {
	return len(a.raw) > 0 && a.raw[0] == a.network.P2SHVersionByte &&
		a.network.P2SHVersionByte != a.network.P2PKHVersionByte
}

func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.text)
}

func (a Address) MarshalCBOR() ([]byte, error) {
	return cbor.Encode(a.text)
}

// UnmarshalCBOR decodes and validates address text. The network is inferred
// from the version byte, see NetworkByVersionByte.
func (a *Address) UnmarshalCBOR(data []byte) error {
	var text string
	if _, err := cbor.Decode(data, &text); err != nil {
		return err
	}
	raw := base58.Decode(text)
	if len(raw) == 0 {
		return InvalidAddressError{Address: text, Reason: "not valid base58"}
	}
	network := NetworkByVersionByte(raw[0])
	if network == NetworkInvalid {
		return InvalidAddressError{
			Address: text,
			Reason:  fmt.Sprintf("unknown version byte 0x%02x", raw[0]),
		}
	}
	tmpAddr, err := NewAddress(text, &network)
	if err != nil {
		return err
	}
	*a = tmpAddr
	return nil
}

// AddressEncoder builds and validates addresses using the configured digest and text encoding
type AddressEncoder struct {
	digester    Digester
	textEncoder TextEncoder
	textDecoder TextDecoder
}

type AddressEncoderOptionFunc func(*AddressEncoder)

// WithDigester specifies the digest applied twice to compute the checksum
func WithDigester(digester Digester) AddressEncoderOptionFunc {
	return func(e *AddressEncoder) {
		e.digester = digester
	}
}

// WithTextEncoder specifies the encoder used to produce address text
func WithTextEncoder(textEncoder TextEncoder) AddressEncoderOptionFunc {
	return func(e *AddressEncoder) {
		e.textEncoder = textEncoder
	}
}

// WithTextDecoder specifies the decoder used when parsing address text
func WithTextDecoder(textDecoder TextDecoder) AddressEncoderOptionFunc {
	return func(e *AddressEncoder) {
		e.textDecoder = textDecoder
	}
}

// NewAddressEncoder returns an AddressEncoder. It defaults to sha256 and base58.
func NewAddressEncoder(opts ...AddressEncoderOptionFunc) *AddressEncoder {
	e := &AddressEncoder{
		digester:    DigestFunc(chainhash.HashB),
		textEncoder: TextEncoderFunc(base58.Encode),
		textDecoder: TextDecoderFunc(base58.Decode),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Checksum returns the first 4 bytes of the double digest of data
func (e *AddressEncoder) Checksum(data []byte) ([]byte, error) {
	sum := e.digester.Digest(e.digester.Digest(data))
	if len(sum) < AddressChecksumSize {
		return nil, fmt.Errorf(
			"%w: got %d bytes, need at least %d",
			ErrShortDigest,
			len(sum),
			AddressChecksumSize,
		)
	}
	return bytes.Clone(sum[:AddressChecksumSize]), nil
}

// EncodeAddress builds the P2PKH address for a 20-byte hash on the given network
func (e *AddressEncoder) EncodeAddress(
	addressHash []byte,
	network *Network,
) (Address, error) {
	if network == nil {
		return Address{}, ErrInvalidNetwork
	}
	if len(addressHash) != Hash160Size {
		return Address{}, InvalidHashLengthError{Length: len(addressHash)}
	}
	versionByte, err := codec.EncodeUnsigned(uint64(network.P2PKHVersionByte), 1)
	if err != nil {
		return Address{}, err
	}
	payload := append(append([]byte(nil), versionByte...), addressHash...)
	checksum, err := e.Checksum(payload)
	if err != nil {
		return Address{}, err
	}
	raw := append(append([]byte(nil), payload...), checksum...)
	return Address{
		text:    e.textEncoder.Encode(raw),
		raw:     raw,
		network: *network,
	}, nil
}

// DecodeAddress parses address text, verifying its length, checksum and version byte
func (e *AddressEncoder) DecodeAddress(text string, network *Network) (Address, error) {
	if network == nil {
		return Address{}, ErrInvalidNetwork
	}
	raw := e.textDecoder.Decode(text)
	if len(raw) != AddressSize {
		return Address{}, InvalidAddressError{
			Address: text,
			Reason: fmt.Sprintf(
				"expected %d bytes, got %d",
				AddressSize,
				len(raw),
			),
		}
	}
	payload := raw[:AddressSize-AddressChecksumSize]
	checksum := raw[AddressSize-AddressChecksumSize:]
	expectedChecksum, err := e.Checksum(payload)
	if err != nil {
		return Address{}, err
	}
	if !bytes.Equal(checksum, expectedChecksum) {
		return Address{}, InvalidAddressError{
			Address: text,
			Reason:  "checksum does not match",
		}
	}
	if raw[0] != network.P2PKHVersionByte && raw[0] != network.P2SHVersionByte {
		return Address{}, InvalidAddressError{
			Address: text,
			Reason: fmt.Sprintf(
				"version byte 0x%02x is not valid for network %s",
				raw[0],
				network.Name,
			),
		}
	}
	return Address{
		text:    text,
		raw:     raw,
		network: *network,
	}, nil
}

var defaultAddressEncoder = NewAddressEncoder()

// EncodeAddress builds the P2PKH address for a 20-byte hash using sha256 and base58
func EncodeAddress(addressHash []byte, network *Network) (Address, error) {
	return defaultAddressEncoder.EncodeAddress(addressHash, network)
}

// NewAddress returns an Address based on the provided base58 address string
func NewAddress(addr string, network *Network) (Address, error) {
	return defaultAddressEncoder.DecodeAddress(addr, network)
}

// NewAddressFromPublicKey returns the P2PKH address for a serialized public key
func NewAddressFromPublicKey(pubKey []byte, network *Network) (Address, error) {
	hash := Hash160Hash(pubKey)
	return defaultAddressEncoder.EncodeAddress(hash.Bytes(), network)
}

// Checksum returns the first 4 bytes of sha256(sha256(data))
func Checksum(data []byte) []byte {
	return chainhash.DoubleHashB(data)[:AddressChecksumSize]
}
