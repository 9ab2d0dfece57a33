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

package gur

import (
	"errors"

	"github.com/blinklabs-io/gur/bytewords"
	"github.com/blinklabs-io/gur/cbor"
	"github.com/blinklabs-io/gur/fountain"
)

// Encoder emits an unbounded sequence of multi-part URs for a message too
// large to fit in a single UR. The first SequenceCount parts are the plain
// message fragments, later parts mix multiple fragments together so that
// a receiver can recover from lost parts.
type Encoder struct {
	urType   string
	fountain *fountain.Encoder
}

// NewEncoder returns an Encoder that splits the given message into parts
// no larger than maxFragmentLength bytes
func NewEncoder(
	urType string,
	message []byte,
	maxFragmentLength int,
) (*Encoder, error) {
	if urType == "" {
		return nil, errors.New("UR type cannot be empty")
	}
	fountainEncoder, err := fountain.NewEncoder(message, maxFragmentLength)
	if err != nil {
		return nil, err
	}
	return &Encoder{
		urType:   urType,
		fountain: fountainEncoder,
	}, nil
}

// CurrentSequence returns the count of already emitted parts
func (e *Encoder) CurrentSequence() uint32 {
	return e.fountain.CurrentSequence()
}

// SequenceCount returns the number of fragments the message was split into
func (e *Encoder) SequenceCount() uint32 {
	return e.fountain.SequenceCount()
}

// IsComplete returns whether enough parts have been emitted for a
// lossless receiver to reassemble the message
func (e *Encoder) IsComplete() bool {
	return e.fountain.IsComplete()
}

// NextPart returns the UR for the next fountain part
func (e *Encoder) NextPart() (UR, error) {
	part, err := e.fountain.NextPart()
	if err != nil {
		return UR{}, err
	}
	cborData, err := cbor.Encode(part)
	if err != nil {
		return UR{}, err
	}
	return UR{
		urType:        e.urType,
		words:         bytewords.Encode(bytewords.StyleMinimal, cborData),
		part:          part,
		sequence:      part.Sequence,
		sequenceCount: part.SequenceCount,
		multiPart:     true,
		deserialized:  true,
	}, nil
}
