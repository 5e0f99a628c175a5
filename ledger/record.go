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
	"encoding/hex"
	"fmt"
	"log/slog"
	"maps"
	"strings"

	"github.com/blinklabs-io/gohathor/codec"
	"github.com/blinklabs-io/gohathor/ledger/common"
)

// Record version tags
const (
	DefaultTxVersion     = 1
	CreateTokenTxVersion = 2
)

// Size of the big-endian version tag at the start of every record
const RecordVersionSize = 2

// Record is a decoded record of any version
type Record interface {
	RecordVersion() uint16
	Network() common.Network
	// Raw returns the bytes the record was decoded from
	Raw() []byte
	// Bytes serializes the record
	Bytes() ([]byte, error)
}

// RecordDecoderFunc decodes the full record buffer, version tag included
type RecordDecoderFunc func(data []byte, network *common.Network) (Record, error)

func decodeTransaction(data []byte, network *common.Network) (Record, error) {
	tx, err := NewTransactionFromBytes(data, network)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

func decodeCreateTokenTransaction(data []byte, network *common.Network) (Record, error) {
	tx, err := NewCreateTokenTransactionFromBytes(data, network)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

var defaultRecordDecoders = map[uint16]RecordDecoderFunc{
	DefaultTxVersion:     decodeTransaction,
	CreateTokenTxVersion: decodeCreateTokenTransaction,
}

// Dispatcher selects a record decoder based on the version tag of the record.
// It is not modified after creation and is safe for concurrent use.
type Dispatcher struct {
	decoders map[uint16]RecordDecoderFunc
	logger   *slog.Logger
}

// NewDispatcher returns a Dispatcher with decoders for the default and
// create-token versions, plus any added or replaced through options
func NewDispatcher(opts ...DispatcherOptionFunc) *Dispatcher {
	d := &Dispatcher{
		decoders: maps.Clone(defaultRecordDecoders),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = slog.Default()
	}
	return d
}

// Supports returns whether a decoder is registered for the version tag
func (d *Dispatcher) Supports(version uint16) bool {
	_, ok := d.decoders[version]
	return ok
}

// DecodeRecord decodes a record buffer using the decoder registered for its
// version tag. The caller's buffer is copied before decoding and never modified.
func (d *Dispatcher) DecodeRecord(
	data []byte,
	network *common.Network,
) (Record, error) {
	if network == nil {
		return nil, ErrInvalidNetwork
	}
	tmpData := bytes.Clone(data)
	version, _, err := codec.DecodeUnsigned(tmpData, 0, RecordVersionSize)
	if err != nil {
		return nil, fmt.Errorf("failed to read record version: %w", err)
	}
	decoder, ok := d.decoders[uint16(version)]
	if !ok || decoder == nil {
		return nil, UnsupportedRecordVersionError{Version: uint16(version)}
	}
	d.logger.Debug(
		"decoding record",
		"version",
		version,
		"size",
		len(tmpData),
		"network",
		network.Name,
	)
	record, err := decoder(tmpData, network)
	if err != nil {
		return nil, fmt.Errorf("failed to decode version %d record: %w", version, err)
	}
	return record, nil
}

// DecodeRecordHex decodes a hex encoded record buffer
func (d *Dispatcher) DecodeRecordHex(
	hexData string,
	network *common.Network,
) (Record, error) {
	if network == nil {
		return nil, ErrInvalidNetwork
	}
	data, err := hex.DecodeString(strings.TrimSpace(hexData))
	if err != nil {
		return nil, MalformedInputError{Err: err}
	}
	return d.DecodeRecord(data, network)
}

var defaultDispatcher = NewDispatcher()

// NewRecordFromBytes decodes a record buffer with the default decoders
func NewRecordFromBytes(data []byte, network *common.Network) (Record, error) {
	return defaultDispatcher.DecodeRecord(data, network)
}

// NewRecordFromHex decodes a hex encoded record with the default decoders
func NewRecordFromHex(hexData string, network *common.Network) (Record, error) {
	return defaultDispatcher.DecodeRecordHex(hexData, network)
}
