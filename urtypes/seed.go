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
	"crypto/sha256"

	"github.com/blinklabs-io/gur/cbor"
)

// Seed is a cryptographic seed (crypto-seed, BCR-2020-006): 1 to 64 bytes
// of entropy with optional metadata
type Seed struct {
	Payload      []byte
	CreationDate *Date
	Name         string
	Note         string
}

type seedWire struct {
	Payload      []byte `cbor:"1,keyasint"`
	CreationDate *Date  `cbor:"2,keyasint,omitempty"`
	Name         string `cbor:"3,keyasint,omitempty"`
	Note         string `cbor:"4,keyasint,omitempty"`
}

func (Seed) URType() string {
	return "crypto-seed"
}

// Digest returns the SHA-256 digest identifying the seed
func (s *Seed) Digest() SeedDigest {
	return sha256.Sum256(s.Payload)
}

func (s *Seed) MarshalCBOR() ([]byte, error) {
	if len(s.Payload) < 1 || len(s.Payload) > 64 {
		return nil, InvalidLengthError{
			Type:   "crypto-seed",
			Field:  "payload",
			Length: len(s.Payload),
		}
	}
	return cbor.Encode(seedWire{
		Payload:      s.Payload,
		CreationDate: s.CreationDate,
		Name:         s.Name,
		Note:         s.Note,
	})
}

func (s *Seed) UnmarshalCBOR(data []byte) error {
	var tmp seedWire
	if err := decodeWire("crypto-seed", data, &tmp); err != nil {
		return err
	}
	if tmp.Payload == nil {
		return MissingFieldError{Type: "crypto-seed", Field: "payload"}
	}
	if len(tmp.Payload) < 1 || len(tmp.Payload) > 64 {
		return InvalidLengthError{
			Type:   "crypto-seed",
			Field:  "payload",
			Length: len(tmp.Payload),
		}
	}
	*s = Seed{
		Payload:      tmp.Payload,
		CreationDate: tmp.CreationDate,
		Name:         tmp.Name,
		Note:         tmp.Note,
	}
	return nil
}
