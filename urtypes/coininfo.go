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

const (
	// CoinTypeBtc is the SLIP-44 coin type for Bitcoin
	CoinTypeBtc = 0
	// NetworkMainnet is the main network of any coin type
	NetworkMainnet = 0
	// NetworkBtcTestnet is the Bitcoin test network
	NetworkBtcTestnet = 1
)

// CoinInfo describes the type and intended use of a cryptocurrency value
// (crypto-coin-info, BCR-2020-007). Coin types are SLIP-44 values without
// the hardened bit. The zero value means Bitcoin mainnet, and default
// fields are omitted on the wire.
type CoinInfo struct {
	CoinType uint32 `cbor:"1,keyasint,omitempty"`
	Network  uint64 `cbor:"2,keyasint,omitempty"`
}

func (CoinInfo) URType() string {
	return "crypto-coin-info"
}

// IsDefault returns whether the coin info denotes Bitcoin mainnet
func (c CoinInfo) IsDefault() bool {
	return c.CoinType == CoinTypeBtc && c.Network == NetworkMainnet
}

func (c *CoinInfo) UnmarshalCBOR(data []byte) error {
	type tCoinInfo CoinInfo
	var tmp tCoinInfo
	if err := decodeWire("crypto-coin-info", data, &tmp); err != nil {
		return err
	}
	// SLIP-44 coin types exclude the hardened bit
	if tmp.CoinType >= 1<<31 {
		return OutOfRangeError{Type: "crypto-coin-info", Field: "coin type"}
	}
	*c = CoinInfo(tmp)
	return nil
}
