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

// Package firmware implements the fixed-layout header found at the start of
// signed firmware images: a little-endian information block followed by two
// key-index/signature pairs. Signature verification against actual keys is
// out of scope here, Verify only performs structural checks.
package firmware

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	// HeaderLen is the total length of the header area, in bytes
	HeaderLen = 2048
	// DateLen is the length of the firmware date field, in bytes
	DateLen = 14
	// VersionLen is the length of the firmware version field, in bytes
	VersionLen = 8
	// MaxLen is the maximum length of a firmware image, in bytes
	MaxLen = (1792 * 1024) - 256
	// UserKey is the public key index indicating a self-signed firmware
	UserKey = 255
	// MaxPublicKeys is the number of well-known signing keys
	MaxPublicKeys = 4
	// InformationLen is the serialized length of Information
	InformationLen = (4 * 2) + DateLen + VersionLen + 4
	// SignatureLen is the serialized length of Signature
	SignatureLen = (4 + 64) * 2
)

// Magic values identifying the device family a firmware targets
const (
	MagicMono  uint32 = 0x50415353
	MagicColor uint32 = 0x53534150
)

var (
	ErrHeaderTooShort   = errors.New("firmware header is too short")
	ErrInvalidString    = errors.New("invalid header string field")
	ErrUnknownMagic     = errors.New("unknown magic bytes")
	ErrInvalidTimestamp = errors.New("invalid timestamp")
	ErrFirmwareTooSmall = errors.New("firmware is too small")
	ErrFirmwareTooBig   = errors.New("firmware is too big")
	ErrInvalidKeyIndex  = errors.New("public key index is out of range")
	ErrSamePublicKeys   = errors.New("same public key used for both signatures")
)

// Information is the firmware description block
type Information struct {
	Magic     uint32
	Timestamp uint32
	// Build date as a printable string, at most DateLen-1 bytes
	Date string
	// Version as a printable string, at most VersionLen-1 bytes
	Version string
	// Total length of the firmware image including the header
	Length uint32
}

// Signature carries the two key-index/signature pairs covering the firmware
type Signature struct {
	PublicKey1 uint32
	Signature1 [64]byte
	PublicKey2 uint32
	Signature2 [64]byte
}

// Header is the complete firmware header
type Header struct {
	Information Information
	Signature   Signature
}

type informationWire struct {
	Magic     uint32
	Timestamp uint32
	Date      [DateLen]byte
	Version   [VersionLen]byte
	Length    uint32
}

type signatureWire struct {
	PublicKey1 uint32
	Signature1 [64]byte
	PublicKey2 uint32
	Signature2 [64]byte
}

// ParseHeader parses the header at the start of a firmware image. The input
// must hold at least the information and signature blocks, any trailing
// header padding is ignored.
func ParseHeader(data []byte) (*Header, error) {
	if len(data) < InformationLen+SignatureLen {
		return nil, ErrHeaderTooShort
	}
	reader := bytes.NewReader(data)
	var infoWire informationWire
	if err := binary.Read(reader, binary.LittleEndian, &infoWire); err != nil {
		return nil, err
	}
	date, err := fixedString(infoWire.Date[:])
	if err != nil {
		return nil, fmt.Errorf("%w: date", err)
	}
	version, err := fixedString(infoWire.Version[:])
	if err != nil {
		return nil, fmt.Errorf("%w: version", err)
	}
	var sigWire signatureWire
	if err := binary.Read(reader, binary.LittleEndian, &sigWire); err != nil {
		return nil, err
	}
	return &Header{
		Information: Information{
			Magic:     infoWire.Magic,
			Timestamp: infoWire.Timestamp,
			Date:      date,
			Version:   version,
			Length:    infoWire.Length,
		},
		Signature: Signature(sigWire),
	}, nil
}

// fixedString extracts a NUL-terminated ASCII string from a fixed-size
// field. A field with no terminator is rejected.
func fixedString(data []byte) (string, error) {
	idx := bytes.IndexByte(data, 0)
	if idx < 0 {
		return "", ErrInvalidString
	}
	for _, c := range data[:idx] {
		if c > 0x7f {
			return "", ErrInvalidString
		}
	}
	return string(data[:idx]), nil
}

// Serialize renders the information block in its wire form
func (i *Information) Serialize() []byte {
	wire := informationWire{
		Magic:     i.Magic,
		Timestamp: i.Timestamp,
		Length:    i.Length,
	}
	copy(wire.Date[:], i.Date)
	copy(wire.Version[:], i.Version)
	var buf bytes.Buffer
	// Writing fixed-size fields to a Buffer cannot fail
	_ = binary.Write(&buf, binary.LittleEndian, &wire)
	return buf.Bytes()
}

// Serialize renders the signature block in its wire form
func (s *Signature) Serialize() []byte {
	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.LittleEndian, (*signatureWire)(s))
	return buf.Bytes()
}

// Serialize renders the header in its wire form, without the padding that
// pads the header area to HeaderLen
func (h *Header) Serialize() []byte {
	ret := h.Information.Serialize()
	ret = append(ret, h.Signature.Serialize()...)
	return ret
}

// IsSignedByUser returns true when the firmware is self-signed with a user
// key rather than a well-known key
func (h *Header) IsSignedByUser() bool {
	return h.Signature.PublicKey1 == UserKey
}

// Verify checks that the header is well-formed
func (h *Header) Verify() error {
	switch h.Information.Magic {
	case MagicMono, MagicColor:
	default:
		return fmt.Errorf(
			"%w: %#08x",
			ErrUnknownMagic,
			h.Information.Magic,
		)
	}
	if h.Information.Timestamp == 0 {
		return ErrInvalidTimestamp
	}
	if h.Information.Length < HeaderLen {
		return fmt.Errorf(
			"%w: %d bytes",
			ErrFirmwareTooSmall,
			h.Information.Length,
		)
	}
	if h.Information.Length > MaxLen {
		return fmt.Errorf(
			"%w: %d bytes",
			ErrFirmwareTooBig,
			h.Information.Length,
		)
	}
	if !h.IsSignedByUser() {
		if h.Signature.PublicKey1 >= MaxPublicKeys {
			return fmt.Errorf(
				"%w: key 1 index %d",
				ErrInvalidKeyIndex,
				h.Signature.PublicKey1,
			)
		}
		if h.Signature.PublicKey2 >= MaxPublicKeys {
			return fmt.Errorf(
				"%w: key 2 index %d",
				ErrInvalidKeyIndex,
				h.Signature.PublicKey2,
			)
		}
		if h.Signature.PublicKey1 == h.Signature.PublicKey2 {
			return fmt.Errorf(
				"%w: %d",
				ErrSamePublicKeys,
				h.Signature.PublicKey1,
			)
		}
	}
	return nil
}
