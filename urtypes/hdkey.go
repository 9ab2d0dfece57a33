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

// HDKey is a hierarchical deterministic key (crypto-hdkey, BCR-2020-007),
// either a master key or a derived key
type HDKey struct {
	Master  *MasterKey
	Derived *DerivedKey
}

func (HDKey) URType() string {
	return "crypto-hdkey"
}

func (k *HDKey) MarshalCBOR() ([]byte, error) {
	switch {
	case k.Master != nil:
		return k.Master.MarshalCBOR()
	case k.Derived != nil:
		return k.Derived.MarshalCBOR()
	default:
		return nil, errors.New("crypto-hdkey: no key present")
	}
}

func (k *HDKey) UnmarshalCBOR(data []byte) error {
	var master MasterKey
	if err := master.UnmarshalCBOR(data); err == nil {
		*k = HDKey{Master: &master}
		return nil
	}
	var derived DerivedKey
	if err := derived.UnmarshalCBOR(data); err != nil {
		return errors.New(
			"crypto-hdkey: couldn't decode as master-key or derived-key",
		)
	}
	*k = HDKey{Derived: &derived}
	return nil
}

// MasterKey is a BIP-32 master extended private key
type MasterKey struct {
	// 32-byte private key
	KeyData []byte
	// 32-byte chain code
	ChainCode []byte
}

func (m *MasterKey) MarshalCBOR() ([]byte, error) {
	if len(m.KeyData) != 32 {
		return nil, InvalidLengthError{
			Type:   "crypto-hdkey",
			Field:  "key-data",
			Length: len(m.KeyData),
		}
	}
	if len(m.ChainCode) != 32 {
		return nil, InvalidLengthError{
			Type:   "crypto-hdkey",
			Field:  "chain-code",
			Length: len(m.ChainCode),
		}
	}
	// Private keys carry a zero prefix byte to pad them to the same
	// length as a compressed public key
	keyData := make([]byte, 33)
	copy(keyData[1:], m.KeyData)
	return cbor.Encode(map[int]any{
		1: true,
		3: keyData,
		4: m.ChainCode,
	})
}

func (m *MasterKey) UnmarshalCBOR(data []byte) error {
	var tmp struct {
		IsMaster  *bool  `cbor:"1,keyasint"`
		KeyData   []byte `cbor:"3,keyasint"`
		ChainCode []byte `cbor:"4,keyasint"`
	}
	if err := decodeWire("crypto-hdkey", data, &tmp); err != nil {
		return err
	}
	if tmp.IsMaster == nil {
		return MissingFieldError{Type: "crypto-hdkey", Field: "is-master"}
	}
	if !*tmp.IsMaster {
		return errors.New("crypto-hdkey: is-master is false")
	}
	if len(tmp.KeyData) != 33 {
		return InvalidLengthError{
			Type:   "crypto-hdkey",
			Field:  "key-data",
			Length: len(tmp.KeyData),
		}
	}
	if len(tmp.ChainCode) != 32 {
		return InvalidLengthError{
			Type:   "crypto-hdkey",
			Field:  "chain-code",
			Length: len(tmp.ChainCode),
		}
	}
	*m = MasterKey{
		KeyData:   tmp.KeyData[1:],
		ChainCode: tmp.ChainCode,
	}
	return nil
}

// DerivedKey is an extended key derived from a master key
type DerivedKey struct {
	// True for private keys
	IsPrivate bool
	// 33-byte key data: a compressed public key or a zero-prefixed
	// private key
	KeyData []byte
	// Optional 32-byte chain code
	ChainCode []byte
	// How the key is to be used
	UseInfo *CoinInfo
	// How the key was derived
	Origin *Keypath
	// What children should or can be derived from this key
	Children *Keypath
	// Fingerprint of this key's direct ancestor, zero when unknown
	ParentFingerprint uint32
	// A short name for the key
	Name string
	// Arbitrary text describing the key
	Note string
}

func (d *DerivedKey) MarshalCBOR() ([]byte, error) {
	if len(d.KeyData) != 33 {
		return nil, InvalidLengthError{
			Type:   "crypto-hdkey",
			Field:  "key-data",
			Length: len(d.KeyData),
		}
	}
	if d.ChainCode != nil && len(d.ChainCode) != 32 {
		return nil, InvalidLengthError{
			Type:   "crypto-hdkey",
			Field:  "chain-code",
			Length: len(d.ChainCode),
		}
	}
	tmpMap := map[int]any{
		3: d.KeyData,
	}
	if d.IsPrivate {
		tmpMap[2] = true
	}
	if d.ChainCode != nil {
		tmpMap[4] = d.ChainCode
	}
	if d.UseInfo != nil {
		tmpMap[5] = cbor.Tag{Number: TagUseInfo, Content: *d.UseInfo}
	}
	if d.Origin != nil {
		tmpMap[6] = cbor.Tag{Number: TagKeypath, Content: d.Origin}
	}
	if d.Children != nil {
		tmpMap[7] = cbor.Tag{Number: TagKeypath, Content: d.Children}
	}
	if d.ParentFingerprint != 0 {
		tmpMap[8] = d.ParentFingerprint
	}
	if d.Name != "" {
		tmpMap[9] = d.Name
	}
	if d.Note != "" {
		tmpMap[10] = d.Note
	}
	return cbor.Encode(tmpMap)
}

func (d *DerivedKey) UnmarshalCBOR(data []byte) error {
	var tmp struct {
		IsPrivate         bool            `cbor:"2,keyasint"`
		KeyData           []byte          `cbor:"3,keyasint"`
		ChainCode         []byte          `cbor:"4,keyasint"`
		UseInfo           cbor.RawMessage `cbor:"5,keyasint"`
		Origin            cbor.RawMessage `cbor:"6,keyasint"`
		Children          cbor.RawMessage `cbor:"7,keyasint"`
		ParentFingerprint *uint32         `cbor:"8,keyasint"`
		Name              string          `cbor:"9,keyasint"`
		Note              string          `cbor:"10,keyasint"`
	}
	if err := decodeWire("crypto-hdkey", data, &tmp); err != nil {
		return err
	}
	if tmp.KeyData == nil {
		return MissingFieldError{Type: "crypto-hdkey", Field: "key-data"}
	}
	if len(tmp.KeyData) != 33 {
		return InvalidLengthError{
			Type:   "crypto-hdkey",
			Field:  "key-data",
			Length: len(tmp.KeyData),
		}
	}
	if tmp.ChainCode != nil && len(tmp.ChainCode) != 32 {
		return InvalidLengthError{
			Type:   "crypto-hdkey",
			Field:  "chain-code",
			Length: len(tmp.ChainCode),
		}
	}
	ret := DerivedKey{
		IsPrivate: tmp.IsPrivate,
		KeyData:   tmp.KeyData,
		ChainCode: tmp.ChainCode,
		Name:      tmp.Name,
		Note:      tmp.Note,
	}
	if tmp.UseInfo != nil {
		useInfo, err := decodeTagged[CoinInfo](tmp.UseInfo, TagUseInfo)
		if err != nil {
			return err
		}
		ret.UseInfo = useInfo
	}
	if tmp.Origin != nil {
		origin, err := decodeTagged[Keypath](tmp.Origin, TagKeypath)
		if err != nil {
			return err
		}
		ret.Origin = origin
	}
	if tmp.Children != nil {
		children, err := decodeTagged[Keypath](tmp.Children, TagKeypath)
		if err != nil {
			return err
		}
		ret.Children = children
	}
	if tmp.ParentFingerprint != nil {
		if *tmp.ParentFingerprint == 0 {
			return OutOfRangeError{
				Type:  "crypto-hdkey",
				Field: "parent-fingerprint",
			}
		}
		ret.ParentFingerprint = *tmp.ParentFingerprint
	}
	*d = ret
	return nil
}

// decodeTagged decodes a CBOR value wrapped in the given expected tag
func decodeTagged[T any](data []byte, tagNumber uint64) (*T, error) {
	var rawTag cbor.RawTag
	if _, err := cbor.Decode(data, &rawTag); err != nil {
		return nil, err
	}
	if rawTag.Number != tagNumber {
		return nil, fmt.Errorf(
			"invalid tag: expected %d, got %d",
			tagNumber,
			rawTag.Number,
		)
	}
	var ret T
	if _, err := cbor.Decode(rawTag.Content, &ret); err != nil {
		return nil, err
	}
	return &ret, nil
}
