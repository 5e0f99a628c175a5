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
	"log/slog"
)

type DispatcherOptionFunc func(*Dispatcher)

// WithRecordDecoder registers decoder for the version tag, replacing any existing entry
func WithRecordDecoder(version uint16, decoder RecordDecoderFunc) DispatcherOptionFunc {
	return func(d *Dispatcher) {
		d.decoders[version] = decoder
	}
}

// WithoutRecordDecoder removes the decoder for the version tag
func WithoutRecordDecoder(version uint16) DispatcherOptionFunc {
	return func(d *Dispatcher) {
		delete(d.decoders, version)
	}
}

func WithLogger(logger *slog.Logger) DispatcherOptionFunc {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}
