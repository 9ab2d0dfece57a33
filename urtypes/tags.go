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

package urtypes

import (
	"errors"
	"fmt"

	"github.com/blinklabs-io/gur/cbor"
)

// CBOR tags for values embedded in registry types
const (
	TagCoinInfo   = 305
	TagECKey      = 306
	TagAddress    = 307
	TagHDKey      = 303
	TagKeypath    = 40304
	TagUseInfo    = 40305
	TagSeedDigest = 600
)

// Timestamp is an epoch-based date/time (RFC 8949 section 3.4.2, tag 1).
// The wire form may be either an integer or a floating point number of
// seconds.
type Timestamp struct {
	secs    int64
	fsecs   float64
	isFloat bool
}

// NewTimestamp returns an integer Timestamp
func NewTimestamp(secs int64) Timestamp {
	return Timestamp{secs: secs}
}

// NewTimestampFloat returns a floating point Timestamp
func NewTimestampFloat(secs float64) Timestamp {
	return Timestamp{fsecs: secs, isFloat: true}
}

// Unix returns the timestamp as whole seconds since the epoch
func (t Timestamp) Unix() int64 {
	if t.isFloat {
		return int64(t.fsecs)
	}
	return t.secs
}

func (t Timestamp) MarshalCBOR() ([]byte, error) {
	if t.isFloat {
		return cbor.Encode(cbor.Tag{Number: cbor.CborTagTimestamp, Content: t.fsecs})
	}
	return cbor.Encode(cbor.Tag{Number: cbor.CborTagTimestamp, Content: t.secs})
}

func (t *Timestamp) UnmarshalCBOR(data []byte) error {
	var rawTag cbor.RawTag
	if _, err := cbor.Decode(data, &rawTag); err != nil {
		return err
	}
	if rawTag.Number != cbor.CborTagTimestamp {
		return fmt.Errorf("invalid timestamp tag: %d", rawTag.Number)
	}
	var secs int64
	if _, err := cbor.Decode(rawTag.Content, &secs); err == nil {
		*t = Timestamp{secs: secs}
		return nil
	}
	var fsecs float64
	if _, err := cbor.Decode(rawTag.Content, &fsecs); err != nil {
		return errors.New("invalid timestamp")
	}
	*t = Timestamp{fsecs: fsecs, isFloat: true}
	return nil
}

// TagDate is the CBOR tag for an epoch-based date (RFC 8943)
const TagDate = 100

// Date is a number of days since the epoch (RFC 8943, tag 100), used for
// seed creation dates
type Date int64

func (d Date) MarshalCBOR() ([]byte, error) {
	return cbor.Encode(cbor.Tag{Number: TagDate, Content: int64(d)})
}

func (d *Date) UnmarshalCBOR(data []byte) error {
	var rawTag cbor.RawTag
	if _, err := cbor.Decode(data, &rawTag); err != nil {
		return err
	}
	if rawTag.Number != TagDate {
		return fmt.Errorf("invalid date tag: %d", rawTag.Number)
	}
	var days int64
	if _, err := cbor.Decode(rawTag.Content, &days); err != nil {
		return err
	}
	*d = Date(days)
	return nil
}

// Uuid is an RFC 4122 UUID (tag 37)
type Uuid [16]byte

func (u Uuid) MarshalCBOR() ([]byte, error) {
	return cbor.Encode(cbor.Tag{Number: cbor.CborTagUuid, Content: u[:]})
}

func (u *Uuid) UnmarshalCBOR(data []byte) error {
	var rawTag cbor.RawTag
	if _, err := cbor.Decode(data, &rawTag); err != nil {
		return err
	}
	if rawTag.Number != cbor.CborTagUuid {
		return fmt.Errorf("invalid UUID tag: %d", rawTag.Number)
	}
	var tmpBytes []byte
	if _, err := cbor.Decode(rawTag.Content, &tmpBytes); err != nil {
		return err
	}
	if len(tmpBytes) != len(u) {
		return InvalidLengthError{
			Type:   "uuid",
			Field:  "value",
			Length: len(tmpBytes),
		}
	}
	copy(u[:], tmpBytes)
	return nil
}

// SeedDigest is the SHA-256 digest identifying a seed (crypto-seed-digest,
// tag 600)
type SeedDigest [32]byte

func (d SeedDigest) MarshalCBOR() ([]byte, error) {
	return cbor.Encode(cbor.Tag{Number: TagSeedDigest, Content: d[:]})
}

func (d *SeedDigest) UnmarshalCBOR(data []byte) error {
	var rawTag cbor.RawTag
	if _, err := cbor.Decode(data, &rawTag); err != nil {
		return err
	}
	if rawTag.Number != TagSeedDigest {
		return fmt.Errorf("invalid seed digest tag: %d", rawTag.Number)
	}
	var tmpBytes []byte
	if _, err := cbor.Decode(rawTag.Content, &tmpBytes); err != nil {
		return err
	}
	if len(tmpBytes) != len(d) {
		return InvalidLengthError{
			Type:   "crypto-seed-digest",
			Field:  "digest",
			Length: len(tmpBytes),
		}
	}
	copy(d[:], tmpBytes)
	return nil
}
