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
	"hash/crc32"
)

// Encoder emits an unbounded stream of parts for a message. The first
// sequenceCount parts are the message fragments in order. Every part after
// that XORs together a deterministic pseudo-random selection of fragments,
// so a receiver can recover the message from any sufficiently large subset
// of parts.
type Encoder struct {
	message         []byte
	fragmentLength  int
	checksum        uint32
	currentSequence uint32
	sequenceCount   uint32
}

// NewEncoder returns an Encoder that splits message into fragments no
// longer than maxFragmentLength bytes
func NewEncoder(message []byte, maxFragmentLength int) (*Encoder, error) {
	if len(message) == 0 {
		return nil, errors.New("message must not be empty")
	}
	if maxFragmentLength <= 0 {
		return nil, errors.New(
			"fragment length must be greater than zero",
		)
	}
	fragmentLength := FragmentLength(len(message), maxFragmentLength)
	return &Encoder{
		message:        message,
		fragmentLength: fragmentLength,
		checksum:       crc32.ChecksumIEEE(message),
		// #nosec G115
		sequenceCount: uint32(divCeil(len(message), fragmentLength)),
	}, nil
}

// CurrentSequence returns the count of parts emitted so far
func (e *Encoder) CurrentSequence() uint32 {
	return e.currentSequence
}

// SequenceCount returns the number of fragments the message was split into
func (e *Encoder) SequenceCount() uint32 {
	return e.sequenceCount
}

// FragmentLength returns the length of each emitted fragment
func (e *Encoder) FragmentLength() int {
	return e.fragmentLength
}

// IsComplete returns whether each fragment has been emitted at least once.
// The stream emits all plain fragments before any mixed parts, so this is
// equivalent to checking CurrentSequence() >= SequenceCount().
func (e *Encoder) IsComplete() bool {
	return e.currentSequence >= e.sequenceCount
}

// NextPart returns the next part in the stream. The sequence number wraps
// around after reaching the maximum uint32 value.
func (e *Encoder) NextPart() (*Part, error) {
	e.currentSequence++
	indexes, err := chooseFragments(
		e.currentSequence,
		e.sequenceCount,
		e.checksum,
	)
	if err != nil {
		return nil, err
	}
	data := make([]byte, e.fragmentLength)
	for _, index := range indexes {
		fragment := e.message[index*e.fragmentLength:]
		if len(fragment) > e.fragmentLength {
			fragment = fragment[:e.fragmentLength]
		}
		// The last fragment can be shorter than the rest. The missing bytes
		// are implicitly zero, which leaves the XOR output unchanged.
		xorInto(data[:len(fragment)], fragment)
	}
	return &Part{
		Sequence:      e.currentSequence,
		SequenceCount: e.sequenceCount,
		// #nosec G115
		MessageLength: uint32(len(e.message)),
		Checksum:      e.checksum,
		Data:          data,
	}, nil
}
