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
	"github.com/blinklabs-io/gur/cbor"
)

// AddressKind is a Bitcoin-style address type
type AddressKind uint8

const (
	AddressKindP2pkh  AddressKind = 0
	AddressKindP2sh   AddressKind = 1
	AddressKindP2wpkh AddressKind = 2
)

// Address is a cryptocurrency address (crypto-address, BCR-2020-009)
type Address struct {
	// Coin information, nil for the Bitcoin mainnet default
	Info *CoinInfo
	// Address type where applicable
	Kind *AddressKind
	// The address data, for example a public key hash
	Data []byte
}

func (Address) URType() string {
	return "crypto-address"
}

func (a *Address) MarshalCBOR() ([]byte, error) {
	tmpMap := map[int]any{
		3: a.Data,
	}
	if a.Info != nil && !a.Info.IsDefault() {
		tmpMap[1] = cbor.Tag{Number: TagCoinInfo, Content: *a.Info}
	}
	if a.Kind != nil {
		tmpMap[2] = uint8(*a.Kind)
	}
	return cbor.Encode(tmpMap)
}

func (a *Address) UnmarshalCBOR(data []byte) error {
	var tmp struct {
		Info cbor.RawMessage `cbor:"1,keyasint"`
		Kind *uint8          `cbor:"2,keyasint"`
		Data []byte          `cbor:"3,keyasint"`
	}
	if err := decodeWire("crypto-address", data, &tmp); err != nil {
		return err
	}
	if tmp.Data == nil {
		return MissingFieldError{Type: "crypto-address", Field: "data"}
	}
	ret := Address{
		Data: tmp.Data,
	}
	if tmp.Info != nil {
		info, err := decodeTagged[CoinInfo](tmp.Info, TagCoinInfo)
		if err != nil {
			return err
		}
		ret.Info = info
	}
	if tmp.Kind != nil {
		if *tmp.Kind > uint8(AddressKindP2wpkh) {
			return OutOfRangeError{Type: "crypto-address", Field: "type"}
		}
		kind := AddressKind(*tmp.Kind)
		ret.Kind = &kind
	}
	*a = ret
	return nil
}
