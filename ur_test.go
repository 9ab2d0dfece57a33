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
	"github.com/blinklabs-io/gur/cbor"
	"github.com/blinklabs-io/gur/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeMessageUR generates a deterministic message and wraps it in a CBOR
// byte string, the payload form used by the bytes UR type
func makeMessageUR(t *testing.T, seed string, length int) []byte {
	t.Helper()
	payload, err := cbor.Encode(test.MakeMessage(seed, length))
	require.NoError(t, err)
	return payload
}

func TestSinglePartUR(t *testing.T) {
	const expected = "ur:bytes/hdeymejtswhhylkepmykhhtsytsnoyoyaxaedsuttydmmhhpktpmsrjtgwdpfnsboxgwlbaawzuefywkdplrsrjynbvygabwjldapfcsdwkbrkch"
	payload := makeMessageUR(t, "Wolf", 50)
	encoded := gur.Encode("bytes", payload)
	assert.Equal(t, expected, encoded)
	parsed, err := gur.Parse(encoded)
	require.NoError(t, err)
	assert.True(t, parsed.IsSinglePart())
	assert.False(t, parsed.IsDeserialized())
	assert.Equal(t, "bytes", parsed.Type())
	assert.Equal(
		t,
		"hdeymejtswhhylkepmykhhtsytsnoyoyaxaedsuttydmmhhpktpmsrjtgwdpfnsboxgwlbaawzuefywkdplrsrjynbvygabwjldapfcsdwkbrkch",
		parsed.Bytewords(),
	)
	urType, decoded, err := gur.Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, "bytes", urType)
	assert.Equal(t, payload, decoded)
}

func TestParse(t *testing.T) {
	testDefs := []string{
		"ur:bytes/aeadaolazmjendeoti",
		"ur:whatever-12/aeadaolazmjendeoti",
	}
	for _, testDef := range testDefs {
		ur, err := gur.Parse(testDef)
		require.NoError(t, err)
		assert.True(t, ur.IsSinglePart())
		assert.Equal(t, "aeadaolazmjendeoti", ur.Bytewords())
	}
	ur, err := gur.Parse("ur:bytes/6-23/lpamchcfatttcyclehgsdphdhgehfghkkkdl")
	require.NoError(t, err)
	assert.True(t, ur.IsMultiPart())
	assert.Equal(t, "bytes", ur.Type())
	assert.Equal(t, uint32(6), ur.Sequence())
	assert.Equal(t, uint32(23), ur.SequenceCount())
	assert.Equal(t, "lpamchcfatttcyclehgsdphdhgehfghkkkdl", ur.Bytewords())
}

func TestParseErrors(t *testing.T) {
	testDefs := []struct {
		input       string
		expectedErr error
	}{
		{
			input:       "uhr:bytes/aeadaolazmjendeoti",
			expectedErr: gur.ErrInvalidScheme,
		},
		{
			input:       "ur:aeadaolazmjendeoti",
			expectedErr: gur.ErrTypeUnspecified,
		},
		{
			input:       "ur:bytes#4/aeadaolazmjendeoti",
			expectedErr: gur.ErrInvalidCharacters,
		},
		{
			input:       "ur:bytes/1 1/aeadaolazmjendeoti",
			expectedErr: gur.ErrInvalidIndices,
		},
	}
	for _, testDef := range testDefs {
		_, err := gur.Parse(testDef.input)
		assert.ErrorIs(
			t,
			err,
			testDef.expectedErr,
			"no error parsing %q",
			testDef.input,
		)
	}
	// Malformed sequence indices
	_, err := gur.Parse("ur:bytes/1-1/toomuch/aeadaolazmjendeoti")
	assert.Error(t, err)
	_, err = gur.Parse("ur:bytes/1-1a/aeadaolazmjendeoti")
	assert.Error(t, err)
}
