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

// Package gur implements Uniform Resources (URs), a method for encoding
// binary data as URIs suitable for transport in QR codes. Payloads are
// wrapped in CBOR, rendered with the bytewords minimal style, and split
// into fountain-encoded parts when they exceed a single QR code.
package gur

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/blinklabs-io/gur/bytewords"
	"github.com/blinklabs-io/gur/fountain"
)

var (
	// ErrInvalidScheme is returned when a UR string does not start with "ur:"
	ErrInvalidScheme = errors.New("invalid UR scheme")
	// ErrTypeUnspecified is returned when a UR string has no type component
	ErrTypeUnspecified = errors.New("no UR type specified")
	// ErrInvalidCharacters is returned when a UR type contains characters
	// outside of ASCII letters, digits, and dashes
	ErrInvalidCharacters = errors.New("UR type contains invalid characters")
	// ErrInvalidIndices is returned when the sequence component of a
	// multi-part UR is not of the form <sequence>-<count>
	ErrInvalidIndices = errors.New("invalid UR sequence indices")
	// ErrNotSinglePart is returned when a single-part operation is given a
	// multi-part UR
	ErrNotSinglePart = errors.New("UR is not single-part")
)

// UR is a single uniform resource: a typed payload, either in one piece or
// as one fountain-encoded part of a longer message. A UR is serialized
// when it carries its payload as a bytewords string and deserialized when
// it carries the decoded form.
type UR struct {
	urType        string
	words         string
	payload       []byte
	part          *fountain.Part
	sequence      uint32
	sequenceCount uint32
	multiPart     bool
	deserialized  bool
}

// NewUR returns a deserialized single-part UR for the given type and
// CBOR-encoded payload
func NewUR(urType string, payload []byte) UR {
	return UR{
		urType:       urType,
		payload:      payload,
		deserialized: true,
	}
}

// Parse parses a UR string of the form ur:<type>/<message> or
// ur:<type>/<sequence>-<count>/<fragment>. The bytewords payload is not
// decoded, only the URI structure is validated.
func Parse(s string) (UR, error) {
	rest, ok := strings.CutPrefix(s, "ur:")
	if !ok {
		return UR{}, ErrInvalidScheme
	}
	urType, rest, ok := strings.Cut(rest, "/")
	if !ok {
		return UR{}, ErrTypeUnspecified
	}
	for _, c := range urType {
		if (c < 'a' || c > 'z') &&
			(c < 'A' || c > 'Z') &&
			(c < '0' || c > '9') &&
			c != '-' {
			return UR{}, ErrInvalidCharacters
		}
	}
	sepIdx := strings.LastIndexByte(rest, '/')
	if sepIdx < 0 {
		return UR{
			urType: urType,
			words:  rest,
		}, nil
	}
	indices, fragment := rest[:sepIdx], rest[sepIdx+1:]
	sequenceStr, sequenceCountStr, ok := strings.Cut(indices, "-")
	if !ok {
		return UR{}, ErrInvalidIndices
	}
	sequence, err := strconv.ParseUint(sequenceStr, 10, 32)
	if err != nil {
		return UR{}, fmt.Errorf("invalid UR sequence number: %w", err)
	}
	sequenceCount, err := strconv.ParseUint(sequenceCountStr, 10, 32)
	if err != nil {
		return UR{}, fmt.Errorf("invalid UR sequence count: %w", err)
	}
	return UR{
		urType:        urType,
		words:         fragment,
		sequence:      uint32(sequence),
		sequenceCount: uint32(sequenceCount),
		multiPart:     true,
	}, nil
}

// Type returns the UR type
func (u UR) Type() string {
	return u.urType
}

// IsSinglePart returns whether the UR carries a complete message
func (u UR) IsSinglePart() bool {
	return !u.multiPart
}

// IsMultiPart returns whether the UR carries a fountain-encoded part
func (u UR) IsMultiPart() bool {
	return u.multiPart
}

// IsDeserialized returns whether the UR carries a decoded payload
func (u UR) IsDeserialized() bool {
	return u.deserialized
}

// Bytewords returns the serialized payload of a parsed UR. It returns an
// empty string for deserialized single-part URs.
func (u UR) Bytewords() string {
	return u.words
}

// Part returns the fountain part of a deserialized multi-part UR and nil
// otherwise
func (u UR) Part() *fountain.Part {
	return u.part
}

// Sequence returns the sequence number of a multi-part UR
func (u UR) Sequence() uint32 {
	return u.sequence
}

// SequenceCount returns the total sequence count of a multi-part UR
func (u UR) SequenceCount() uint32 {
	return u.sequenceCount
}

func (u UR) String() string {
	if !u.multiPart {
		words := u.words
		if u.deserialized {
			words = bytewords.Encode(bytewords.StyleMinimal, u.payload)
		}
		return fmt.Sprintf("ur:%s/%s", u.urType, words)
	}
	return fmt.Sprintf(
		"ur:%s/%d-%d/%s",
		u.urType,
		u.sequence,
		u.sequenceCount,
		u.words,
	)
}

// Encode returns the single-part UR string for the given type and
// CBOR-encoded payload
func Encode(urType string, payload []byte) string {
	return NewUR(urType, payload).String()
}

// Decode parses a single-part UR string and returns its type and
// CBOR-encoded payload
func Decode(s string) (string, []byte, error) {
	ur, err := Parse(s)
	if err != nil {
		return "", nil, err
	}
	if ur.IsMultiPart() {
		return "", nil, ErrNotSinglePart
	}
	payload, err := bytewords.Decode(bytewords.StyleMinimal, ur.Bytewords())
	if err != nil {
		return "", nil, err
	}
	return ur.Type(), payload, nil
}
