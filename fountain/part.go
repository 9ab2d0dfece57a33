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

package fountain

import (
	"errors"
	"fmt"

	"github.com/blinklabs-io/gur/cbor"
)

// Part is a single share of a fountain-encoded message. It maps to the CBOR
// array [seqNum, seqLen, messageLen, checksum, data] defined by BCR-2020-005.
// The sequence number can be higher than the sequence count, in which case
// the data is usually (but not always) a mix of multiple fragments.
type Part struct {
	cbor.StructAsArray
	cbor.DecodeStoreCbor
	Sequence      uint32
	SequenceCount uint32
	MessageLength uint32
	Checksum      uint32
	Data          []byte
}

// MessageDescription is the subset of a Part that describes how the whole
// message is split. Every part of a message must agree on it.
type MessageDescription struct {
	SequenceCount  uint32
	MessageLength  uint32
	Checksum       uint32
	FragmentLength int
}

func (p *Part) UnmarshalCBOR(cborData []byte) error {
	// Interoperability requires stricter decoding than the CBOR library does by
	// default: the four leading items must be unsigned integers no wider than
	// 32 bits, and the data must be a definite-length byte string
	count, headerSize, indef := cbor.ArrayInfo(cborData)
	if indef || count != 5 {
		return errors.New("invalid CBOR array length")
	}
	sd, err := cbor.NewStreamDecoder(cborData)
	if err != nil {
		return err
	}
	if err := sd.Advance(int(headerSize)); err != nil {
		return err
	}
	for i := 0; i < 4; i++ {
		var tmpInt uint64
		_, raw, err := sd.DecodeRaw(&tmpInt)
		if err != nil {
			return err
		}
		if raw[0]&cbor.CborTypeMask != cbor.CborTypeUint {
			return errors.New("expected unsigned integer")
		}
		if raw[0]&0x1f == cbor.CborUint64 {
			return errors.New("unsigned integer is too wide")
		}
	}
	var tmpData []byte
	_, raw, err := sd.DecodeRaw(&tmpData)
	if err != nil {
		return err
	}
	if raw[0]&cbor.CborTypeMask != cbor.CborTypeByteString ||
		raw[0]&0x1f == cbor.CborIndefinite {
		return errors.New("expected definite-length byte string")
	}
	if !sd.EOF() {
		return errors.New("trailing data after part")
	}
	return p.UnmarshalCborGeneric(cborData, p)
}

func (p *Part) MarshalCBOR() ([]byte, error) {
	return cbor.EncodeGeneric(p)
}

// IsValid returns true if the part is plausible: all values are positive
// and the fragment length is coherent with the described message. An honest
// encoder uses the minimum number of fragments of a given length, so the
// fragments must cover the message without overshooting it by more than one
// fragment. The coherence check also bounds the reassembly buffer near the
// claimed message length regardless of how large the sequence count is.
func (p *Part) IsValid() bool {
	if p.Sequence == 0 || p.SequenceCount == 0 ||
		p.MessageLength == 0 || len(p.Data) == 0 {
		return false
	}
	fragmentLen := uint64(len(p.Data))
	sequenceCount := uint64(p.SequenceCount)
	messageLen := uint64(p.MessageLength)
	if fragmentLen > messageLen {
		return false
	}
	return fragmentLen*sequenceCount >= messageLen &&
		fragmentLen*(sequenceCount-1) < messageLen
}

// Indexes returns the fragment indexes mixed into this part
func (p *Part) Indexes() ([]int, error) {
	return chooseFragments(p.Sequence, p.SequenceCount, p.Checksum)
}

// Description returns the message description this part claims to belong to
func (p *Part) Description() MessageDescription {
	return MessageDescription{
		SequenceCount:  p.SequenceCount,
		MessageLength:  p.MessageLength,
		Checksum:       p.Checksum,
		FragmentLength: len(p.Data),
	}
}

// Matches returns true if the part agrees with the given message description
func (p *Part) Matches(desc MessageDescription) bool {
	return p.Description() == desc
}

func (p *Part) String() string {
	return fmt.Sprintf(
		"Part %d of %d (%d bytes)",
		p.Sequence,
		p.SequenceCount,
		len(p.Data),
	)
}
