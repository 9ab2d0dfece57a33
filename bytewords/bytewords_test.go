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

package bytewords_test

import (
	"errors"
	"testing"

	"github.com/blinklabs-io/gur/bytewords"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	testDefs := []struct {
		style    bytewords.Style
		data     []byte
		expected string
	}{
		{
			style:    bytewords.StyleStandard,
			data:     []byte{0, 1, 2, 128, 255},
			expected: "able acid also lava zoom jade need echo taxi",
		},
		{
			style:    bytewords.StyleUri,
			data:     []byte{0, 1, 2, 128, 255},
			expected: "able-acid-also-lava-zoom-jade-need-echo-taxi",
		},
		{
			style:    bytewords.StyleMinimal,
			data:     []byte{0, 1, 2, 128, 255},
			expected: "aeadaolazmjendeoti",
		},
		{
			style:    bytewords.StyleStandard,
			data:     []byte{0},
			expected: "able tied also webs lung",
		},
		{
			style:    bytewords.StyleUri,
			data:     []byte{0},
			expected: "able-tied-also-webs-lung",
		},
		{
			style:    bytewords.StyleMinimal,
			data:     []byte{0},
			expected: "aetdaowslg",
		},
		{
			style:    bytewords.StyleStandard,
			data:     []byte("Some bytes"),
			expected: "guru jowl join inch crux iced kick jury inch junk taxi aqua kite limp",
		},
		{
			style:    bytewords.StyleUri,
			data:     []byte("Some bytes"),
			expected: "guru-jowl-join-inch-crux-iced-kick-jury-inch-junk-taxi-aqua-kite-limp",
		},
		{
			style:    bytewords.StyleMinimal,
			data:     []byte("Some binary data"),
			expected: "gujljnihcxidinjthsjpkkcxiehsjyhsnsgdmkht",
		},
	}
	for _, testDef := range testDefs {
		encoded := bytewords.Encode(testDef.style, testDef.data)
		assert.Equal(t, testDef.expected, encoded)
		decoded, err := bytewords.Decode(testDef.style, encoded)
		require.NoError(t, err)
		assert.Equal(t, testDef.data, decoded)
	}
}

func TestEncodeLong(t *testing.T) {
	input := []byte{
		245, 215, 20, 198, 241, 235, 69, 59, 209, 205, 165, 18, 150, 158,
		116, 135, 229, 212, 19, 159, 17, 37, 239, 240, 253, 11, 109, 191,
		37, 242, 38, 120, 223, 41, 156, 189, 242, 254, 147, 204, 66, 163,
		216, 175, 191, 72, 169, 54, 32, 60, 144, 230, 210, 137, 184, 197,
		33, 113, 88, 14, 157, 31, 177, 46, 1, 115, 205, 69, 225, 150, 65,
		235, 58, 144, 65, 240, 133, 69, 113, 247, 63, 53, 242, 165, 160,
		144, 26, 13, 79, 237, 133, 71, 82, 69, 254, 165, 138, 41, 85, 24,
	}
	encoded := "yank toys bulb skew when warm free fair tent swan " +
		"open brag mint noon jury list view tiny brew note " +
		"body data webs what zinc bald join runs data whiz " +
		"days keys user diet news ruby whiz zone menu surf " +
		"flew omit trip pose runs fund part even crux fern " +
		"math visa tied loud redo silk curl jugs hard beta " +
		"next cost puma drum acid junk swan free very mint " +
		"flap warm fact math flap what limp free jugs yell " +
		"fish epic whiz open numb math city belt glow wave " +
		"limp fuel grim free zone open love diet gyro cats " +
		"fizz holy city puff"
	encodedMinimal := "yktsbbswwnwmfefrttsnonbgmtnnjyltvwtybwne" +
		"bydawswtzcbdjnrsdawzdsksurdtnsrywzzemusf" +
		"fwottppersfdptencxfnmhvatdldroskcljshdba" +
		"ntctpadmadjksnfevymtfpwmftmhfpwtlpfejsyl" +
		"fhecwzonnbmhcybtgwwelpflgmfezeonledtgocs" +
		"fzhycypf"
	assert.Equal(t, encoded, bytewords.Encode(bytewords.StyleStandard, input))
	assert.Equal(
		t,
		encodedMinimal,
		bytewords.Encode(bytewords.StyleMinimal, input),
	)
	decoded, err := bytewords.Decode(bytewords.StyleStandard, encoded)
	require.NoError(t, err)
	assert.Equal(t, input, decoded)
	decoded, err = bytewords.Decode(bytewords.StyleMinimal, encodedMinimal)
	require.NoError(t, err)
	assert.Equal(t, input, decoded)
}

func TestEncodeEmpty(t *testing.T) {
	// An empty payload still carries the four checksum words
	encoded := bytewords.Encode(bytewords.StyleMinimal, nil)
	assert.Len(t, encoded, 8)
	decoded, err := bytewords.Decode(bytewords.StyleMinimal, encoded)
	require.NoError(t, err)
	assert.Empty(t, decoded)
}

func TestDecodeChecksumMismatch(t *testing.T) {
	expectedErr := bytewords.ChecksumMismatchError{
		Expected:   [4]byte{107, 155, 51, 243},
		Calculated: [4]byte{108, 246, 247, 201},
	}
	testDefs := []struct {
		style   bytewords.Style
		encoded string
	}{
		{
			style:   bytewords.StyleStandard,
			encoded: "able acid also lava zero jade need echo wolf",
		},
		{
			style:   bytewords.StyleUri,
			encoded: "able-acid-also-lava-zero-jade-need-echo-wolf",
		},
		{
			style:   bytewords.StyleMinimal,
			encoded: "aeadaolazojendeowf",
		},
	}
	for _, testDef := range testDefs {
		_, err := bytewords.Decode(testDef.style, testDef.encoded)
		var checksumErr bytewords.ChecksumMismatchError
		require.ErrorAs(t, err, &checksumErr)
		assert.Equal(t, expectedErr, checksumErr)
	}
}

func TestDecodeErrors(t *testing.T) {
	testDefs := []struct {
		style       bytewords.Style
		encoded     string
		expectedErr error
	}{
		{
			style:       bytewords.StyleStandard,
			encoded:     "wolf",
			expectedErr: bytewords.ErrChecksumNotPresent,
		},
		{
			style:       bytewords.StyleStandard,
			encoded:     "",
			expectedErr: bytewords.ErrChecksumNotPresent,
		},
		{
			style:       bytewords.StyleMinimal,
			encoded:     "aetdao",
			expectedErr: bytewords.ErrChecksumNotPresent,
		},
		{
			style:       bytewords.StyleMinimal,
			encoded:     "aea",
			expectedErr: bytewords.ErrInvalidLength,
		},
		{
			style:       bytewords.StyleStandard,
			encoded:     "₿",
			expectedErr: bytewords.ErrNonAscii,
		},
		{
			style:       bytewords.StyleUri,
			encoded:     "₿",
			expectedErr: bytewords.ErrNonAscii,
		},
		{
			style:       bytewords.StyleMinimal,
			encoded:     "₿",
			expectedErr: bytewords.ErrNonAscii,
		},
	}
	for _, testDef := range testDefs {
		_, err := bytewords.Decode(testDef.style, testDef.encoded)
		assert.ErrorIs(t, err, testDef.expectedErr)
	}
}

func TestDecodeInvalidWord(t *testing.T) {
	_, err := bytewords.Decode(
		bytewords.StyleStandard,
		"able zzzz also webs lung",
	)
	var wordErr bytewords.InvalidWordError
	require.True(t, errors.As(err, &wordErr))
	assert.Equal(t, "zzzz", wordErr.Word)
	assert.Equal(t, 1, wordErr.Position)
	// Wrong style looks like an invalid word
	_, err = bytewords.Decode(
		bytewords.StyleStandard,
		"able-tied-also-webs-lung",
	)
	assert.True(t, errors.As(err, &wordErr))
}
