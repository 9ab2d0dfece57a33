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

// Package urtypes implements the registry of known UR types: typed values
// such as seeds, keys, addresses, and output descriptors, along with their
// CBOR representations.
package urtypes

import (
	"errors"
	"fmt"

	gur "github.com/blinklabs-io/gur"
	"github.com/blinklabs-io/gur/cbor"
)

// ErrUnsupportedResource is returned for UR types not present in the
// registry
var ErrUnsupportedResource = errors.New("unsupported Uniform Resource type")

// MissingFieldError is returned when a required map entry is absent
type MissingFieldError struct {
	Type  string
	Field string
}

func (e MissingFieldError) Error() string {
	return fmt.Sprintf("%s: %s is not present", e.Type, e.Field)
}

// InvalidLengthError is returned when a byte string field has the wrong
// length
type InvalidLengthError struct {
	Type   string
	Field  string
	Length int
}

func (e InvalidLengthError) Error() string {
	return fmt.Sprintf(
		"%s: invalid %s length (%d bytes)",
		e.Type,
		e.Field,
		e.Length,
	)
}

// OutOfRangeError is returned when a numeric field is outside its allowed
// range
type OutOfRangeError struct {
	Type  string
	Field string
}

func (e OutOfRangeError) Error() string {
	return fmt.Sprintf("%s: %s is out of range", e.Type, e.Field)
}

// WrongTypeError is returned when a map entry holds a CBOR item of a type
// other than the one the registry defines for it. The wrapped error names
// the offending field.
type WrongTypeError struct {
	Type string
	Err  error
}

func (e WrongTypeError) Error() string {
	return fmt.Sprintf("%s: wrong field type: %v", e.Type, e.Err)
}

func (e WrongTypeError) Unwrap() error {
	return e.Err
}

// decodeWire decodes a registry item's CBOR map, converting type mismatches
// into WrongTypeError so that callers can tell a mistyped field from
// malformed CBOR
func decodeWire(urType string, data []byte, dest any) error {
	if _, err := cbor.Decode(data, dest); err != nil {
		if cbor.TypeMismatch(err) {
			return WrongTypeError{Type: urType, Err: err}
		}
		return err
	}
	return nil
}

// Value is a typed UR registry value. URType reports the UR type string
// used when rendering the value as a UR; the deprecated crypto-* names are
// emitted since many wallets still only accept those.
type Value interface {
	URType() string
}

// Bytes is an opaque byte payload (the bytes UR type)
type Bytes []byte

func (Bytes) URType() string {
	return "bytes"
}

func (b Bytes) MarshalCBOR() ([]byte, error) {
	return cbor.Encode([]byte(b))
}

func (b *Bytes) UnmarshalCBOR(data []byte) error {
	var payload []byte
	if _, err := cbor.Decode(data, &payload); err != nil {
		return err
	}
	*b = payload
	return nil
}

// Psbt is a partially signed Bitcoin transaction (the crypto-psbt UR
// type). The transaction itself is carried opaquely.
type Psbt []byte

func (Psbt) URType() string {
	return "crypto-psbt"
}

func (p Psbt) MarshalCBOR() ([]byte, error) {
	return cbor.Encode([]byte(p))
}

func (p *Psbt) UnmarshalCBOR(data []byte) error {
	var payload []byte
	if _, err := cbor.Decode(data, &payload); err != nil {
		return err
	}
	*p = payload
	return nil
}

// FromUR decodes a CBOR payload into the registry value for the given UR
// type. Both the current and the deprecated crypto-* type names are
// accepted.
func FromUR(urType string, payload []byte) (Value, error) {
	var dest Value
	switch urType {
	case "bytes":
		dest = &Bytes{}
	case "psbt", "crypto-psbt":
		dest = &Psbt{}
	case "seed", "crypto-seed":
		dest = &Seed{}
	case "hdkey", "crypto-hdkey":
		dest = &HDKey{}
	case "eckey", "crypto-eckey":
		dest = &ECKey{}
	case "address", "crypto-address":
		dest = &Address{}
	case "coin-info", "crypto-coin-info":
		dest = &CoinInfo{}
	case "output", "crypto-output":
		dest = &Output{}
	default:
		return nil, ErrUnsupportedResource
	}
	if _, err := cbor.Decode(payload, dest); err != nil {
		return nil, fmt.Errorf("decode %s payload: %w", urType, err)
	}
	return dest, nil
}

// DecodeUR decodes a single-part UR string into a registry value
func DecodeUR(text string) (Value, error) {
	urType, payload, err := gur.Decode(text)
	if err != nil {
		return nil, err
	}
	return FromUR(urType, payload)
}

// EncodeUR renders a registry value as a single-part UR string
func EncodeUR(value Value) (string, error) {
	payload, err := cbor.Encode(value)
	if err != nil {
		return "", err
	}
	return gur.Encode(value.URType(), payload), nil
}
