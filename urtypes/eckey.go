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

// CurveSecp256k1 is the default elliptic curve type
const CurveSecp256k1 = 0

// ECKey is an elliptic curve key (crypto-eckey, BCR-2020-008). The curve
// and private key flag are omitted on the wire when they have their
// default values.
type ECKey struct {
	Curve     uint64 `cbor:"1,keyasint,omitempty"`
	IsPrivate bool   `cbor:"2,keyasint,omitempty"`
	Data      []byte `cbor:"3,keyasint"`
}

func (ECKey) URType() string {
	return "crypto-eckey"
}

func (k *ECKey) UnmarshalCBOR(data []byte) error {
	type tECKey ECKey
	var tmp tECKey
	if err := decodeWire("crypto-eckey", data, &tmp); err != nil {
		return err
	}
	if tmp.Data == nil {
		return MissingFieldError{Type: "crypto-eckey", Field: "data"}
	}
	*k = ECKey(tmp)
	return nil
}
