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

// Package cbor wraps github.com/fxamacker/cbor/v2 with the encoding and
// decoding conventions used by the UR registry types.
//
// Encoding always uses core deterministic ordering, so map keys are sorted
// and integers use their smallest possible encoding. This matters because
// registry item payloads are expected to be byte-identical across
// implementations.
//
// # Key Types
//
// Embeddable types for struct encoding:
//   - StructAsArray: Embed to encode struct fields as a CBOR array instead of a map
//   - DecodeStoreCbor: Embed to preserve original CBOR bytes across a decode
//
// Utility types:
//   - RawMessage: Deferred decoding (like json.RawMessage)
//   - ByteString: Bytestrings that can be used as map keys
//   - Tag, RawTag: CBOR semantic tags
//   - Value: Arbitrary CBOR data, including types Go maps cannot key on
//
// # Critical Pattern: DecodeStoreCbor
//
// When a type needs its original CBOR bytes preserved:
//
//	type MyType struct {
//	    cbor.DecodeStoreCbor
//	    Field1 string
//	    Field2 int
//	}
//
//	func (m *MyType) UnmarshalCBOR(data []byte) error {
//	    type tMyType MyType  // Type alias to avoid recursion
//	    var tmp tMyType
//	    if _, err := cbor.Decode(data, &tmp); err != nil {
//	        return err
//	    }
//	    *m = MyType(tmp)
//	    m.SetCbor(data)  // Store original bytes
//	    return nil
//	}
//
// Later, m.Cbor() returns the original bytes.
package cbor
