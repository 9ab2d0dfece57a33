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
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"errors"

	"github.com/btcsuite/btcd/btcutil/base58"
	"golang.org/x/crypto/ripemd160"
)

// BIP-32 extended key version bytes
var (
	VersionXpub = [4]byte{0x04, 0x88, 0xb2, 0x1e}
	VersionXprv = [4]byte{0x04, 0x88, 0xad, 0xe4}
	VersionTpub = [4]byte{0x04, 0x35, 0x87, 0xcf}
	VersionTprv = [4]byte{0x04, 0x35, 0x83, 0x94}
)

const extendedKeyLen = 78

var (
	// ErrInvalidExtendedKey is returned when a base58 extended key cannot
	// be parsed
	ErrInvalidExtendedKey = errors.New("invalid extended key")
	// ErrInvalidChecksum is returned when a base58 extended key fails its
	// checksum
	ErrInvalidChecksum = errors.New("invalid extended key checksum")
)

// Hash160 returns RIPEMD-160(SHA-256(data)), the hash used for BIP-32 key
// identifiers
func Hash160(data []byte) []byte {
	sha := sha256.Sum256(data)
	h := ripemd160.New()
	h.Write(sha[:])
	return h.Sum(nil)
}

// Fingerprint returns the BIP-32 fingerprint of this key: the first four
// bytes of the key identifier. It only has meaning for public keys.
func (d *DerivedKey) Fingerprint() uint32 {
	return binary.BigEndian.Uint32(Hash160(d.KeyData)[:4])
}

// childNumber returns the BIP-32 child number of the key, derived from the
// last component of the origin path
func (d *DerivedKey) childNumber() uint32 {
	if d.Origin == nil || len(d.Origin.Components) == 0 {
		return 0
	}
	last := d.Origin.Components[len(d.Origin.Components)-1]
	number := last.Index
	if last.Hardened {
		number |= 1 << 31
	}
	return number
}

// depth returns the BIP-32 depth of the key
func (d *DerivedKey) depth() uint8 {
	if d.Origin != nil {
		if d.Origin.Depth != nil {
			return *d.Origin.Depth
		}
		return uint8(len(d.Origin.Components)) // #nosec G115
	}
	return 0
}

// ExtendedKey renders the key in the BIP-32 base58 form (xpub, tpub, xprv,
// tprv depending on the private key flag and the network in the use info)
func (d *DerivedKey) ExtendedKey() (string, error) {
	if len(d.KeyData) != 33 {
		return "", InvalidLengthError{
			Type:   "crypto-hdkey",
			Field:  "key-data",
			Length: len(d.KeyData),
		}
	}
	if len(d.ChainCode) != 32 {
		return "", InvalidLengthError{
			Type:   "crypto-hdkey",
			Field:  "chain-code",
			Length: len(d.ChainCode),
		}
	}
	testnet := d.UseInfo != nil && d.UseInfo.Network != NetworkMainnet
	var version [4]byte
	switch {
	case d.IsPrivate && testnet:
		version = VersionTprv
	case d.IsPrivate:
		version = VersionXprv
	case testnet:
		version = VersionTpub
	default:
		version = VersionXpub
	}
	payload := make([]byte, 0, extendedKeyLen+4)
	payload = append(payload, version[:]...)
	payload = append(payload, d.depth())
	payload = binary.BigEndian.AppendUint32(payload, d.ParentFingerprint)
	payload = binary.BigEndian.AppendUint32(payload, d.childNumber())
	payload = append(payload, d.ChainCode...)
	payload = append(payload, d.KeyData...)
	checksum := doubleSha256(payload)
	payload = append(payload, checksum[:4]...)
	return base58.Encode(payload), nil
}

// ParseExtendedKey parses a BIP-32 base58 extended key into a derived key
func ParseExtendedKey(s string) (*DerivedKey, error) {
	decoded := base58.Decode(s)
	if len(decoded) != extendedKeyLen+4 {
		return nil, ErrInvalidExtendedKey
	}
	payload, checksum := decoded[:extendedKeyLen], decoded[extendedKeyLen:]
	expected := doubleSha256(payload)
	if !bytes.Equal(checksum, expected[:4]) {
		return nil, ErrInvalidChecksum
	}
	var version [4]byte
	copy(version[:], payload[:4])
	var isPrivate, testnet bool
	switch version {
	case VersionXpub:
	case VersionXprv:
		isPrivate = true
	case VersionTpub:
		testnet = true
	case VersionTprv:
		isPrivate = true
		testnet = true
	default:
		return nil, ErrInvalidExtendedKey
	}
	depth := payload[4]
	parentFingerprint := binary.BigEndian.Uint32(payload[5:9])
	childNumber := binary.BigEndian.Uint32(payload[9:13])
	chainCode := payload[13:45]
	keyData := payload[45:78]
	if isPrivate && keyData[0] != 0 {
		return nil, ErrInvalidExtendedKey
	}
	ret := &DerivedKey{
		IsPrivate:         isPrivate,
		KeyData:           keyData,
		ChainCode:         chainCode,
		ParentFingerprint: parentFingerprint,
	}
	if testnet {
		ret.UseInfo = &CoinInfo{
			CoinType: CoinTypeBtc,
			Network:  NetworkBtcTestnet,
		}
	}
	origin := &Keypath{Depth: &depth}
	if depth > 0 {
		component := PathComponent{
			Index:    childNumber &^ (1 << 31),
			Hardened: childNumber&(1<<31) != 0,
		}
		origin.Components = []PathComponent{component}
	}
	ret.Origin = origin
	return ret, nil
}

func doubleSha256(data []byte) [32]byte {
	first := sha256.Sum256(data)
	return sha256.Sum256(first[:])
}
