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

package urtypes_test

import (
	"encoding/hex"
	"testing"

	"github.com/blinklabs-io/gur/cbor"
	"github.com/blinklabs-io/gur/internal/test"
	"github.com/blinklabs-io/gur/urtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeypath(t *testing.T) {
	testDefs := []struct {
		path     string
		expected urtypes.Keypath
	}{
		{
			path: "m/44'/0'/1'",
			expected: urtypes.Keypath{
				Components: []urtypes.PathComponent{
					{Index: 44, Hardened: true},
					{Index: 0, Hardened: true},
					{Index: 1, Hardened: true},
				},
			},
		},
		{
			path: "m/84h/0h/0h/0/5",
			expected: urtypes.Keypath{
				Components: []urtypes.PathComponent{
					{Index: 84, Hardened: true},
					{Index: 0, Hardened: true},
					{Index: 0, Hardened: true},
					{Index: 0},
					{Index: 5},
				},
			},
		},
		{
			path: "m/48'/0'/0'/2'/0-1",
			expected: urtypes.Keypath{
				Components: []urtypes.PathComponent{
					{Index: 48, Hardened: true},
					{Index: 0, Hardened: true},
					{Index: 0, Hardened: true},
					{Index: 2, Hardened: true},
					{Index: 0, High: 1, IsRange: true},
				},
			},
		},
		{
			path:     "m",
			expected: urtypes.Keypath{},
		},
	}
	for _, testDef := range testDefs {
		keypath, err := urtypes.ParseKeypath(testDef.path)
		require.NoError(t, err)
		assert.Equal(t, testDef.expected, keypath)
	}
}

func TestParseKeypathErrors(t *testing.T) {
	for _, path := range []string{
		"m/44x",
		"m/44'/bad",
		// Child numbers are 31-bit values
		"m/2147483648",
	} {
		_, err := urtypes.ParseKeypath(path)
		assert.Error(t, err, "expected error for path %q", path)
	}
}

func TestKeypathString(t *testing.T) {
	keypath, err := urtypes.ParseKeypath("m/48'/0'/0'/2'/0-1")
	require.NoError(t, err)
	assert.Equal(t, "m/48'/0'/0'/2'/0-1", keypath.String())
	assert.Equal(t, "m", urtypes.Keypath{}.String())
}

func TestKeypathEncode(t *testing.T) {
	keypath, err := urtypes.ParseKeypath("m/44'/0'/1'")
	require.NoError(t, err)
	cborData, err := cbor.Encode(&keypath)
	require.NoError(t, err)
	assert.Equal(
		t,
		"a10186182cf500f501f5",
		hex.EncodeToString(cborData),
	)
	var decoded urtypes.Keypath
	_, err = cbor.Decode(cborData, &decoded)
	require.NoError(t, err)
	assert.Equal(t, keypath, decoded)
}

func TestKeypathRoundtrip(t *testing.T) {
	keypath, err := urtypes.ParseKeypath("m/48'/0'/0'/2'/0-1")
	require.NoError(t, err)
	keypath.SourceFingerprint = 0xd34db33f
	depth := uint8(5)
	keypath.Depth = &depth
	cborData, err := cbor.Encode(&keypath)
	require.NoError(t, err)
	var decoded urtypes.Keypath
	_, err = cbor.Decode(cborData, &decoded)
	require.NoError(t, err)
	assert.Equal(t, keypath, decoded)
}

func TestKeypathInvalid(t *testing.T) {
	// No components entry
	var keypath urtypes.Keypath
	_, err := cbor.Decode(test.DecodeHexString("a0"), &keypath)
	var missingErr urtypes.MissingFieldError
	require.ErrorAs(t, err, &missingErr)
	// Odd component array length
	_, err = cbor.Decode(test.DecodeHexString("a10181182c"), &keypath)
	require.Error(t, err)
	// Zero source fingerprint
	_, err = cbor.Decode(test.DecodeHexString("a201800200"), &keypath)
	var rangeErr urtypes.OutOfRangeError
	require.ErrorAs(t, err, &rangeErr)
}
