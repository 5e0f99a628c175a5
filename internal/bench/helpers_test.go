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

package bench

import (
	"testing"

	"github.com/blinklabs-io/gohathor/ledger"
	"github.com/blinklabs-io/gohathor/ledger/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordFixturesDecode(t *testing.T) {
	fixtures, err := RecordFixtures()
	require.NoError(t, err)
	require.Len(t, fixtures, 3)
	for _, fixture := range fixtures {
		t.Run(fixture.Name, func(t *testing.T) {
			record, err := ledger.NewRecordFromBytes(fixture.Data, &common.NetworkMainnet)
			require.NoError(t, err)
			assert.Equal(t, uint16(ledger.DefaultTxVersion), record.RecordVersion())
			encoded, err := record.Bytes()
			require.NoError(t, err)
			assert.Equal(t, fixture.Data, encoded)
		})
	}
}

func TestBuildTransactionFixtureTooManyInputs(t *testing.T) {
	_, err := BuildTransactionFixture(256, 1)
	assert.Error(t, err)
}
