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

// Script expression tags (crypto-output, BCR-2020-010)
const (
	tagScriptHash           = 400
	tagWitnessScriptHash    = 401
	tagPublicKey            = 402
	tagPublicKeyHash        = 403
	tagWitnessPublicKeyHash = 404
	tagCombo                = 405
	tagMultisig             = 406
	tagSortedMultisig       = 407
	tagRawScript            = 408
	tagTaproot              = 409
	tagCosigner             = 410
)

// Script expressions nest (sh(wsh(...)) and similar), but real descriptors
// are shallow
const maxDescriptorDepth = 16

// Output is an output descriptor (crypto-output, BCR-2020-010) wrapping a
// tree of script expressions
type Output struct {
	Descriptor Terminal
}

func (Output) URType() string {
	return "crypto-output"
}

func (o *Output) MarshalCBOR() ([]byte, error) {
	return marshalTerminal(o.Descriptor)
}

func (o *Output) UnmarshalCBOR(data []byte) error {
	descriptor, err := unmarshalTerminal(data, 0)
	if err != nil {
		return err
	}
	o.Descriptor = descriptor
	return nil
}

// Terminal is a single script expression within an output descriptor
type Terminal interface {
	isTerminal()
}

// ScriptHash is the sh(...) script expression
type ScriptHash struct {
	Script Terminal
}

// WitnessScriptHash is the wsh(...) script expression
type WitnessScriptHash struct {
	Script Terminal
}

// Taproot is the tr(...) script expression
type Taproot struct {
	Script Terminal
}

// PublicKey is the pk(KEY) script expression
type PublicKey struct {
	Key Key
}

// PublicKeyHash is the pkh(KEY) script expression
type PublicKeyHash struct {
	Key Key
}

// WitnessPublicKeyHash is the wpkh(KEY) script expression
type WitnessPublicKeyHash struct {
	Key Key
}

// Combo is the combo(KEY) script expression
type Combo struct {
	Key Key
}

// Cosigner is the cosigner(KEY) script expression
type Cosigner struct {
	Key Key
}

// Multisig is the multi(k, KEY...) script expression, or
// sorted-multi(k, KEY...) when Sorted is set
type Multisig struct {
	Threshold uint8
	Keys      []Key
	Sorted    bool
}

// RawScript is the raw(HEX) script expression
type RawScript []byte

func (ScriptHash) isTerminal()           {}
func (WitnessScriptHash) isTerminal()    {}
func (Taproot) isTerminal()              {}
func (PublicKey) isTerminal()            {}
func (PublicKeyHash) isTerminal()        {}
func (WitnessPublicKeyHash) isTerminal() {}
func (Combo) isTerminal()                {}
func (Cosigner) isTerminal()             {}
func (Multisig) isTerminal()             {}
func (RawScript) isTerminal()            {}
func (Address) isTerminal()              {}

// Key is a key usable inside an output descriptor, either an *ECKey or an
// *HDKey
type Key interface {
	keyTag() uint64
}

func (*ECKey) keyTag() uint64 {
	return TagECKey
}

func (*HDKey) keyTag() uint64 {
	return TagHDKey
}

func marshalKey(key Key) ([]byte, error) {
	if key == nil {
		return nil, errors.New("crypto-output: missing key")
	}
	inner, err := cbor.Encode(key)
	if err != nil {
		return nil, err
	}
	return cbor.Encode(cbor.Tag{
		Number:  key.keyTag(),
		Content: cbor.RawMessage(inner),
	})
}

func unmarshalKey(data []byte) (Key, error) {
	var rawTag cbor.RawTag
	if _, err := cbor.Decode(data, &rawTag); err != nil {
		return nil, err
	}
	switch rawTag.Number {
	case TagECKey:
		var key ECKey
		if err := key.UnmarshalCBOR(rawTag.Content); err != nil {
			return nil, err
		}
		return &key, nil
	case TagHDKey:
		var key HDKey
		if err := key.UnmarshalCBOR(rawTag.Content); err != nil {
			return nil, err
		}
		return &key, nil
	default:
		return nil, fmt.Errorf("crypto-output: invalid key tag %d", rawTag.Number)
	}
}

func marshalTagged(tagNumber uint64, inner []byte) ([]byte, error) {
	return cbor.Encode(cbor.Tag{
		Number:  tagNumber,
		Content: cbor.RawMessage(inner),
	})
}

func marshalKeyExpression(tagNumber uint64, key Key) ([]byte, error) {
	inner, err := marshalKey(key)
	if err != nil {
		return nil, err
	}
	return marshalTagged(tagNumber, inner)
}

func marshalScriptExpression(
	tagNumber uint64,
	script Terminal,
) ([]byte, error) {
	inner, err := marshalTerminal(script)
	if err != nil {
		return nil, err
	}
	return marshalTagged(tagNumber, inner)
}

func marshalMultisig(m Multisig) ([]byte, error) {
	if len(m.Keys) == 0 {
		return nil, errors.New("crypto-output: empty keys array")
	}
	keys := make([]cbor.RawMessage, 0, len(m.Keys))
	for _, key := range m.Keys {
		encodedKey, err := marshalKey(key)
		if err != nil {
			return nil, err
		}
		keys = append(keys, encodedKey)
	}
	inner, err := cbor.Encode(map[int]any{
		1: m.Threshold,
		2: keys,
	})
	if err != nil {
		return nil, err
	}
	tagNumber := uint64(tagMultisig)
	if m.Sorted {
		tagNumber = tagSortedMultisig
	}
	return marshalTagged(tagNumber, inner)
}

func marshalTerminal(t Terminal) ([]byte, error) {
	switch v := t.(type) {
	case ScriptHash:
		return marshalScriptExpression(tagScriptHash, v.Script)
	case WitnessScriptHash:
		return marshalScriptExpression(tagWitnessScriptHash, v.Script)
	case Taproot:
		return marshalScriptExpression(tagTaproot, v.Script)
	case PublicKey:
		return marshalKeyExpression(tagPublicKey, v.Key)
	case PublicKeyHash:
		return marshalKeyExpression(tagPublicKeyHash, v.Key)
	case WitnessPublicKeyHash:
		return marshalKeyExpression(tagWitnessPublicKeyHash, v.Key)
	case Combo:
		return marshalKeyExpression(tagCombo, v.Key)
	case Cosigner:
		return marshalKeyExpression(tagCosigner, v.Key)
	case Multisig:
		return marshalMultisig(v)
	case RawScript:
		inner, err := cbor.Encode([]byte(v))
		if err != nil {
			return nil, err
		}
		return marshalTagged(tagRawScript, inner)
	case Address:
		inner, err := v.MarshalCBOR()
		if err != nil {
			return nil, err
		}
		return marshalTagged(TagAddress, inner)
	case nil:
		return nil, errors.New("crypto-output: missing script expression")
	default:
		return nil, fmt.Errorf("crypto-output: unknown script expression %T", t)
	}
}

func unmarshalTerminal(data []byte, depth int) (Terminal, error) {
	if depth > maxDescriptorDepth {
		return nil, errors.New("crypto-output: descriptor is nested too deeply")
	}
	var rawTag cbor.RawTag
	if _, err := cbor.Decode(data, &rawTag); err != nil {
		return nil, err
	}
	switch rawTag.Number {
	case tagScriptHash, tagWitnessScriptHash, tagTaproot:
		inner, err := unmarshalTerminal(rawTag.Content, depth+1)
		if err != nil {
			return nil, err
		}
		switch rawTag.Number {
		case tagScriptHash:
			return ScriptHash{Script: inner}, nil
		case tagWitnessScriptHash:
			return WitnessScriptHash{Script: inner}, nil
		default:
			return Taproot{Script: inner}, nil
		}
	case tagPublicKey, tagPublicKeyHash, tagWitnessPublicKeyHash,
		tagCombo, tagCosigner:
		key, err := unmarshalKey(rawTag.Content)
		if err != nil {
			return nil, err
		}
		switch rawTag.Number {
		case tagPublicKey:
			return PublicKey{Key: key}, nil
		case tagPublicKeyHash:
			return PublicKeyHash{Key: key}, nil
		case tagWitnessPublicKeyHash:
			return WitnessPublicKeyHash{Key: key}, nil
		case tagCombo:
			return Combo{Key: key}, nil
		default:
			return Cosigner{Key: key}, nil
		}
	case tagMultisig, tagSortedMultisig:
		var tmp struct {
			Threshold uint8             `cbor:"1,keyasint"`
			Keys      []cbor.RawMessage `cbor:"2,keyasint"`
		}
		if _, err := cbor.Decode(rawTag.Content, &tmp); err != nil {
			return nil, err
		}
		if len(tmp.Keys) == 0 {
			return nil, errors.New("crypto-output: empty keys array")
		}
		keys := make([]Key, 0, len(tmp.Keys))
		for _, rawKey := range tmp.Keys {
			key, err := unmarshalKey(rawKey)
			if err != nil {
				return nil, err
			}
			keys = append(keys, key)
		}
		return Multisig{
			Threshold: tmp.Threshold,
			Keys:      keys,
			Sorted:    rawTag.Number == tagSortedMultisig,
		}, nil
	case tagRawScript:
		var script []byte
		if _, err := cbor.Decode(rawTag.Content, &script); err != nil {
			return nil, err
		}
		return RawScript(script), nil
	case TagAddress:
		var address Address
		if err := address.UnmarshalCBOR(rawTag.Content); err != nil {
			return nil, err
		}
		return address, nil
	default:
		return nil, fmt.Errorf(
			"crypto-output: invalid script expression tag %d",
			rawTag.Number,
		)
	}
}
