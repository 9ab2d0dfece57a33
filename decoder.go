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
	"fmt"

	"github.com/blinklabs-io/gur/bytewords"
	"github.com/blinklabs-io/gur/cbor"
	"github.com/blinklabs-io/gur/fountain"
)

var (
	// ErrNotMultiPart is returned when a decoder receives a single-part UR
	ErrNotMultiPart = errors.New("UR is not multi-part")
	// ErrInconsistentType is returned when a received UR does not have the
	// same type as previously received parts
	ErrInconsistentType = errors.New(
		"UR type differs from previously received parts",
	)
)

// Decoder reassembles a message from multi-part URs. Parts can arrive in
// any order, with duplicates and losses.
type Decoder struct {
	urType   string
	fountain *fountain.Decoder
}

// NewDecoder returns an empty multi-part UR decoder
func NewDecoder() *Decoder {
	return &Decoder{
		fountain: fountain.NewDecoder(),
	}
}

// Receive feeds a multi-part UR into the decoder. The UR may be either
// parsed (its fragment still bytewords-encoded) or produced directly by an
// Encoder.
func (d *Decoder) Receive(ur UR) error {
	if !ur.IsMultiPart() {
		return ErrNotMultiPart
	}
	if d.urType == "" {
		d.urType = ur.Type()
	} else if d.urType != ur.Type() {
		return ErrInconsistentType
	}
	part := ur.Part()
	if part == nil {
		cborData, err := bytewords.Decode(
			bytewords.StyleMinimal,
			ur.Bytewords(),
		)
		if err != nil {
			return err
		}
		part = &fountain.Part{}
		if _, err := cbor.Decode(cborData, part); err != nil {
			return fmt.Errorf("decode part: %w", err)
		}
	}
	if _, err := d.fountain.Receive(part); err != nil {
		return err
	}
	return nil
}

// ReceiveString parses a UR string and feeds it into the decoder
func (d *Decoder) ReceiveString(s string) error {
	ur, err := Parse(s)
	if err != nil {
		return err
	}
	return d.Receive(ur)
}

// Type returns the UR type of the message being decoded. It returns an
// empty string until the first part is received.
func (d *Decoder) Type() string {
	return d.urType
}

// IsComplete returns whether the message has been fully reassembled
func (d *Decoder) IsComplete() bool {
	return d.fountain.IsComplete()
}

// IsEmpty returns true until the first part is successfully received
func (d *Decoder) IsEmpty() bool {
	return d.fountain.IsEmpty()
}

// Message returns the reassembled CBOR-encoded payload once the decoder
// is complete and nil otherwise
func (d *Decoder) Message() ([]byte, error) {
	return d.fountain.Message()
}

// EstimatedPercentComplete returns a rough progress estimate in [0, 1]
func (d *Decoder) EstimatedPercentComplete() float64 {
	return d.fountain.EstimatedPercentComplete()
}

// Reset clears the decoder so that it can be used for another message
func (d *Decoder) Reset() {
	d.urType = ""
	d.fountain.Reset()
}
