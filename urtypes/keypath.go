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
	"strconv"
	"strings"

	"github.com/blinklabs-io/gur/cbor"
)

// PathComponent is one step of a BIP-32 derivation path: either a single
// child index or an index range, optionally hardened
type PathComponent struct {
	Index    uint32
	High     uint32
	IsRange  bool
	Hardened bool
}

func (c PathComponent) String() string {
	var sb strings.Builder
	if c.IsRange {
		fmt.Fprintf(&sb, "%d-%d", c.Index, c.High)
	} else {
		fmt.Fprintf(&sb, "%d", c.Index)
	}
	if c.Hardened {
		sb.WriteByte('\'')
	}
	return sb.String()
}

// Keypath is the complete or partial derivation path of a key
// (crypto-keypath, BCR-2020-007)
type Keypath struct {
	Components []PathComponent
	// Fingerprint of the ancestor key, zero when unknown
	SourceFingerprint uint32
	// Number of derivations from the master key, nil when unknown
	Depth *uint8
}

func (Keypath) URType() string {
	return "crypto-keypath"
}

// NewMasterKeypath returns the key path of a master extended key given
// the master key fingerprint
func NewMasterKeypath(sourceFingerprint uint32) Keypath {
	var depth uint8
	return Keypath{
		SourceFingerprint: sourceFingerprint,
		Depth:             &depth,
	}
}

// ParseKeypath parses a derivation path string such as "m/44'/0'/0'".
// Both apostrophe and "h" suffixes denote hardened components.
func ParseKeypath(path string) (Keypath, error) {
	var ret Keypath
	for idx, elem := range strings.Split(path, "/") {
		if idx == 0 && (elem == "m" || elem == "M" || elem == "") {
			continue
		}
		var component PathComponent
		if rest, ok := strings.CutSuffix(elem, "'"); ok {
			component.Hardened = true
			elem = rest
		} else if rest, ok := strings.CutSuffix(elem, "h"); ok {
			component.Hardened = true
			elem = rest
		}
		lowStr, highStr, isRange := strings.Cut(elem, "-")
		low, err := strconv.ParseUint(lowStr, 10, 31)
		if err != nil {
			return Keypath{}, fmt.Errorf("invalid path component %q", elem)
		}
		component.Index = uint32(low)
		if isRange {
			high, err := strconv.ParseUint(highStr, 10, 31)
			if err != nil {
				return Keypath{}, fmt.Errorf("invalid path component %q", elem)
			}
			component.High = uint32(high)
			component.IsRange = true
		}
		ret.Components = append(ret.Components, component)
	}
	return ret, nil
}

func (k Keypath) String() string {
	var sb strings.Builder
	sb.WriteByte('m')
	for _, component := range k.Components {
		sb.WriteByte('/')
		sb.WriteString(component.String())
	}
	return sb.String()
}

func (k *Keypath) MarshalCBOR() ([]byte, error) {
	components := make([]any, 0, len(k.Components)*2)
	for _, component := range k.Components {
		if component.IsRange {
			components = append(
				components,
				[]uint32{component.Index, component.High},
			)
		} else {
			components = append(components, component.Index)
		}
		components = append(components, component.Hardened)
	}
	tmpMap := map[int]any{
		1: components,
	}
	if k.SourceFingerprint != 0 {
		tmpMap[2] = k.SourceFingerprint
	}
	if k.Depth != nil {
		tmpMap[3] = *k.Depth
	}
	return cbor.Encode(tmpMap)
}

func (k *Keypath) UnmarshalCBOR(data []byte) error {
	var tmp struct {
		Components        []cbor.RawMessage `cbor:"1,keyasint"`
		SourceFingerprint *uint32           `cbor:"2,keyasint"`
		Depth             *uint8            `cbor:"3,keyasint"`
	}
	if err := decodeWire("crypto-keypath", data, &tmp); err != nil {
		return err
	}
	if tmp.Components == nil {
		return MissingFieldError{Type: "crypto-keypath", Field: "components"}
	}
	if len(tmp.Components)%2 != 0 {
		return errors.New("crypto-keypath: odd component array length")
	}
	components := make([]PathComponent, 0, len(tmp.Components)/2)
	for i := 0; i < len(tmp.Components); i += 2 {
		var component PathComponent
		var index uint32
		if _, err := cbor.Decode(tmp.Components[i], &index); err == nil {
			component.Index = index
		} else {
			var indexRange []uint32
			if _, err := cbor.Decode(tmp.Components[i], &indexRange); err != nil {
				return errors.New("crypto-keypath: unknown child number")
			}
			if len(indexRange) != 2 {
				return errors.New("crypto-keypath: invalid child index range")
			}
			component.Index = indexRange[0]
			component.High = indexRange[1]
			component.IsRange = true
		}
		if _, err := cbor.Decode(tmp.Components[i+1], &component.Hardened); err != nil {
			return fmt.Errorf("crypto-keypath: invalid hardened flag: %w", err)
		}
		components = append(components, component)
	}
	ret := Keypath{
		Components: components,
		Depth:      tmp.Depth,
	}
	if tmp.SourceFingerprint != nil {
		if *tmp.SourceFingerprint == 0 {
			return OutOfRangeError{
				Type:  "crypto-keypath",
				Field: "source fingerprint",
			}
		}
		ret.SourceFingerprint = *tmp.SourceFingerprint
	}
	*k = ret
	return nil
}
