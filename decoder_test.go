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

package gur_test

import (
	"testing"

	gur "github.com/blinklabs-io/gur"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURRoundtrip(t *testing.T) {
	message := makeMessageUR(t, "Wolf", 32767)
	encoder, err := gur.NewEncoder("bytes", message, 1000)
	require.NoError(t, err)
	decoder := gur.NewDecoder()
	for !decoder.IsComplete() {
		decoded, err := decoder.Message()
		require.NoError(t, err)
		assert.Nil(t, decoded)
		part, err := encoder.NextPart()
		require.NoError(t, err)
		require.NoError(t, decoder.Receive(part))
	}
	assert.Equal(t, "bytes", decoder.Type())
	decoded, err := decoder.Message()
	require.NoError(t, err)
	assert.Equal(t, message, decoded)
}

// Same as above, but round-tripping every part through its string form so
// that the parse and bytewords paths are exercised
func TestURRoundtripStrings(t *testing.T) {
	message := makeMessageUR(t, "Wolf", 256)
	encoder, err := gur.NewEncoder("bytes", message, 30)
	require.NoError(t, err)
	decoder := gur.NewDecoder()
	for !decoder.IsComplete() {
		part, err := encoder.NextPart()
		require.NoError(t, err)
		require.NoError(t, decoder.ReceiveString(part.String()))
	}
	decoded, err := decoder.Message()
	require.NoError(t, err)
	assert.Equal(t, message, decoded)
}

func TestURDecoderSkipParts(t *testing.T) {
	message := makeMessageUR(t, "Wolf", 32767)
	encoder, err := gur.NewEncoder("bytes", message, 1000)
	require.NoError(t, err)
	decoder := gur.NewDecoder()
	for i := 0; !decoder.IsComplete(); i++ {
		part, err := encoder.NextPart()
		require.NoError(t, err)
		if i%2 == 1 {
			continue
		}
		require.NoError(t, decoder.Receive(part))
	}
	decoded, err := decoder.Message()
	require.NoError(t, err)
	assert.Equal(t, message, decoded)
}

func TestURDecoderErrors(t *testing.T) {
	decoder := gur.NewDecoder()
	assert.True(t, decoder.IsEmpty())
	// Single-part resources cannot be fed to the multi-part decoder
	singlePart, err := gur.Parse("ur:bytes/aeadaolazmjendeoti")
	require.NoError(t, err)
	assert.ErrorIs(t, decoder.Receive(singlePart), gur.ErrNotMultiPart)
	assert.True(t, decoder.IsEmpty())
	// Parts with a different UR type are rejected
	message := makeMessageUR(t, "Wolf", 256)
	bytesEncoder, err := gur.NewEncoder("bytes", message, 30)
	require.NoError(t, err)
	psbtEncoder, err := gur.NewEncoder("crypto-psbt", message, 30)
	require.NoError(t, err)
	part, err := bytesEncoder.NextPart()
	require.NoError(t, err)
	require.NoError(t, decoder.Receive(part))
	assert.Equal(t, "bytes", decoder.Type())
	part, err = psbtEncoder.NextPart()
	require.NoError(t, err)
	assert.ErrorIs(t, decoder.Receive(part), gur.ErrInconsistentType)
	// Reset clears the session
	decoder.Reset()
	assert.True(t, decoder.IsEmpty())
	assert.Equal(t, "", decoder.Type())
	part, err = psbtEncoder.NextPart()
	require.NoError(t, err)
	require.NoError(t, decoder.Receive(part))
	assert.Equal(t, "crypto-psbt", decoder.Type())
}
