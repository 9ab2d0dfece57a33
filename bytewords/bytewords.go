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

// Package bytewords implements the bytewords encoding (BCR-2020-012): a
// scheme that maps each byte to one of 256 four-letter English words and
// appends a CRC-32 checksum of the payload
package bytewords

import (
	"errors"
	"fmt"
	"hash/crc32"
	"strings"
)

// Style selects the output format of an encoding
type Style int

const (
	// StyleStandard separates full words with spaces
	StyleStandard Style = iota
	// StyleUri separates full words with dashes
	StyleUri
	// StyleMinimal concatenates the two-letter form of each word
	StyleMinimal
)

const checksumLen = 4

var (
	// ErrChecksumNotPresent is returned when the input is too short to
	// carry the four checksum words
	ErrChecksumNotPresent = errors.New(
		"bytewords: checksum not present",
	)
	// ErrInvalidLength is returned when a minimal-style input has an odd
	// number of characters
	ErrInvalidLength = errors.New(
		"bytewords: invalid length",
	)
	// ErrNonAscii is returned when the input contains bytes outside the
	// ASCII range
	ErrNonAscii = errors.New(
		"bytewords: input contains non-ASCII characters",
	)
)

// InvalidWordError is returned when a token does not appear in the word
// table
type InvalidWordError struct {
	Word     string
	Position int
}

func (e InvalidWordError) Error() string {
	return fmt.Sprintf(
		"bytewords: invalid word %q at position %d",
		e.Word,
		e.Position,
	)
}

// ChecksumMismatchError is returned when the trailing checksum words do not
// match the CRC-32 of the decoded payload
type ChecksumMismatchError struct {
	Expected   [checksumLen]byte
	Calculated [checksumLen]byte
}

func (e ChecksumMismatchError) Error() string {
	return fmt.Sprintf(
		"bytewords: invalid checksum: expected %x, calculated %x",
		e.Expected,
		e.Calculated,
	)
}

// Encode returns the bytewords encoding of data in the given style,
// including the trailing checksum words
func Encode(style Style, data []byte) string {
	crc := crc32.ChecksumIEEE(data)
	buf := make([]byte, 0, len(data)+checksumLen)
	buf = append(buf, data...)
	buf = append(
		buf,
		byte(crc>>24),
		byte(crc>>16),
		byte(crc>>8),
		byte(crc),
	)
	var sb strings.Builder
	for i, b := range buf {
		if style == StyleMinimal {
			sb.WriteString(minimals[b])
			continue
		}
		if i > 0 {
			if style == StyleUri {
				sb.WriteByte('-')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(words[b])
	}
	return sb.String()
}

// Decode parses a bytewords string in the given style, verifies the
// trailing checksum words, and returns the payload
func Decode(style Style, s string) ([]byte, error) {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return nil, ErrNonAscii
		}
	}
	var tokens []string
	switch style {
	case StyleStandard, StyleUri:
		sep := " "
		if style == StyleUri {
			sep = "-"
		}
		if s == "" {
			return nil, ErrChecksumNotPresent
		}
		tokens = strings.Split(s, sep)
	case StyleMinimal:
		if len(s)%2 != 0 {
			return nil, ErrInvalidLength
		}
		tokens = make([]string, 0, len(s)/2)
		for i := 0; i < len(s); i += 2 {
			tokens = append(tokens, s[i:i+2])
		}
	default:
		return nil, fmt.Errorf("bytewords: unknown style %d", style)
	}
	if len(tokens) < checksumLen {
		return nil, ErrChecksumNotPresent
	}
	buf := make([]byte, 0, len(tokens))
	for i, tok := range tokens {
		var (
			b  byte
			ok bool
		)
		if style == StyleMinimal {
			b, ok = minimalIdxs[tok]
		} else {
			b, ok = wordIdxs[tok]
		}
		if !ok {
			return nil, InvalidWordError{Word: tok, Position: i}
		}
		buf = append(buf, b)
	}
	payload := buf[:len(buf)-checksumLen]
	crc := crc32.ChecksumIEEE(payload)
	var expected, calculated [checksumLen]byte
	copy(expected[:], buf[len(buf)-checksumLen:])
	calculated = [checksumLen]byte{
		byte(crc >> 24),
		byte(crc >> 16),
		byte(crc >> 8),
		byte(crc),
	}
	if expected != calculated {
		return nil, ChecksumMismatchError{
			Expected:   expected,
			Calculated: calculated,
		}
	}
	return payload, nil
}
