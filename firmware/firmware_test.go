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

package firmware_test

import (
	"testing"

	"github.com/blinklabs-io/gur/firmware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHeader() *firmware.Header {
	header := &firmware.Header{
		Information: firmware.Information{
			Magic:     firmware.MagicColor,
			Timestamp: 1693526400,
			Date:      "Sep. 01, 2023",
			Version:   "2.1.2",
			Length:    831488,
		},
		Signature: firmware.Signature{
			PublicKey1: 1,
			PublicKey2: 3,
		},
	}
	for i := range header.Signature.Signature1 {
		header.Signature.Signature1[i] = byte(i)
		header.Signature.Signature2[i] = byte(255 - i)
	}
	return header
}

func TestSerializeLengths(t *testing.T) {
	header := testHeader()
	assert.Len(t, header.Information.Serialize(), firmware.InformationLen)
	assert.Len(t, header.Signature.Serialize(), firmware.SignatureLen)
	assert.Len(
		t,
		header.Serialize(),
		firmware.InformationLen+firmware.SignatureLen,
	)
}

func TestInformationSerialize(t *testing.T) {
	info := firmware.Information{
		Magic:     firmware.MagicMono,
		Timestamp: 0x01020304,
		Date:      "Jan. 01, 2021",
		Version:   "1.0.0",
		Length:    firmware.HeaderLen,
	}
	expected := []byte{
		// magic, little endian
		0x53, 0x53, 0x41, 0x50,
		// timestamp
		0x04, 0x03, 0x02, 0x01,
		// date, NUL padded
		'J', 'a', 'n', '.', ' ', '0', '1', ',', ' ', '2', '0', '2', '1', 0x00,
		// version, NUL padded
		'1', '.', '0', '.', '0', 0x00, 0x00, 0x00,
		// length
		0x00, 0x08, 0x00, 0x00,
	}
	assert.Equal(t, expected, info.Serialize())
}

func TestParseHeaderRoundtrip(t *testing.T) {
	header := testHeader()
	// Trailing header padding is ignored
	data := make([]byte, firmware.HeaderLen)
	copy(data, header.Serialize())
	parsed, err := firmware.ParseHeader(data)
	require.NoError(t, err)
	assert.Equal(t, header, parsed)
	require.NoError(t, parsed.Verify())
}

func TestParseHeaderErrors(t *testing.T) {
	header := testHeader()
	serialized := header.Serialize()
	// Truncated input
	_, err := firmware.ParseHeader(serialized[:40])
	assert.ErrorIs(t, err, firmware.ErrHeaderTooShort)
	// Date field without a NUL terminator
	bad := make([]byte, len(serialized))
	copy(bad, serialized)
	for i := 8; i < 8+firmware.DateLen; i++ {
		bad[i] = 'x'
	}
	_, err = firmware.ParseHeader(bad)
	assert.ErrorIs(t, err, firmware.ErrInvalidString)
	// Non-ASCII version field
	copy(bad, serialized)
	bad[8+firmware.DateLen] = 0xff
	_, err = firmware.ParseHeader(bad)
	assert.ErrorIs(t, err, firmware.ErrInvalidString)
}

func TestVerify(t *testing.T) {
	testDefs := []struct {
		name        string
		modify      func(h *firmware.Header)
		expectedErr error
	}{
		{
			name:   "valid",
			modify: func(h *firmware.Header) {},
		},
		{
			name: "unknown magic",
			modify: func(h *firmware.Header) {
				h.Information.Magic = 0xdeadbeef
			},
			expectedErr: firmware.ErrUnknownMagic,
		},
		{
			name: "zero timestamp",
			modify: func(h *firmware.Header) {
				h.Information.Timestamp = 0
			},
			expectedErr: firmware.ErrInvalidTimestamp,
		},
		{
			name: "too small",
			modify: func(h *firmware.Header) {
				h.Information.Length = firmware.HeaderLen - 1
			},
			expectedErr: firmware.ErrFirmwareTooSmall,
		},
		{
			name: "too big",
			modify: func(h *firmware.Header) {
				h.Information.Length = firmware.MaxLen + 1
			},
			expectedErr: firmware.ErrFirmwareTooBig,
		},
		{
			name: "key 1 out of range",
			modify: func(h *firmware.Header) {
				h.Signature.PublicKey1 = firmware.MaxPublicKeys
			},
			expectedErr: firmware.ErrInvalidKeyIndex,
		},
		{
			name: "key 2 out of range",
			modify: func(h *firmware.Header) {
				h.Signature.PublicKey2 = firmware.MaxPublicKeys
			},
			expectedErr: firmware.ErrInvalidKeyIndex,
		},
		{
			name: "same keys",
			modify: func(h *firmware.Header) {
				h.Signature.PublicKey2 = h.Signature.PublicKey1
			},
			expectedErr: firmware.ErrSamePublicKeys,
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			header := testHeader()
			testDef.modify(header)
			err := header.Verify()
			if testDef.expectedErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, testDef.expectedErr)
			}
		})
	}
}

func TestUserSignedKeyIndexes(t *testing.T) {
	header := testHeader()
	header.Signature.PublicKey1 = firmware.UserKey
	header.Signature.PublicKey2 = firmware.UserKey
	assert.True(t, header.IsSignedByUser())
	// Key index rules don't apply to user-signed firmware
	require.NoError(t, header.Verify())
}
