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
	"hash/crc32"
	"math"
	"slices"
)

var (
	// ErrInvalidPart is returned when a received part fails basic validation
	ErrInvalidPart = errors.New("fountain: invalid part")
	// ErrInvalidPadding is returned when the padding bytes of a decoded
	// message are not all zero
	ErrInvalidPadding = errors.New("fountain: invalid padding")
	// ErrInvalidChecksum is returned when a reassembled message does not
	// match the checksum carried by its parts
	ErrInvalidChecksum = errors.New("fountain: invalid message checksum")
)

// InconsistentPartError is returned when a received part does not agree
// with the message description established by earlier parts
type InconsistentPartError struct {
	Received MessageDescription
	Expected MessageDescription
}

func (e InconsistentPartError) Error() string {
	return fmt.Sprintf(
		"fountain: inconsistent part: received %+v, expected %+v",
		e.Received,
		e.Expected,
	)
}

// indexedPart is a received part annotated with the indexes of the
// fragments mixed into its data
type indexedPart struct {
	data    []byte
	indexes []int // sorted
}

func (p *indexedPart) isSimple() bool {
	return len(p.indexes) == 1
}

// reduce removes another part's fragments from this part if they are all
// present in it
func (p *indexedPart) reduce(other *indexedPart) {
	if p.isSimple() {
		return
	}
	if !indexesSubset(other.indexes, p.indexes) {
		return
	}
	p.indexes = indexesSubtract(p.indexes, other.indexes)
	xorInto(p.data, other.data)
}

// reduceBySimple removes a single already-decoded fragment from this part
func (p *indexedPart) reduceBySimple(data []byte, index int) {
	pos, ok := slices.BinarySearch(p.indexes, index)
	if !ok {
		return
	}
	p.indexes = slices.Delete(p.indexes, pos, pos+1)
	xorInto(p.data, data)
}

// indexesSubset returns true if every element of sub is present in super.
// Both slices must be sorted.
func indexesSubset(sub, super []int) bool {
	for _, idx := range sub {
		if _, ok := slices.BinarySearch(super, idx); !ok {
			return false
		}
	}
	return true
}

// indexesSubtract returns a minus b. Both slices must be sorted.
func indexesSubtract(a, b []int) []int {
	ret := make([]int, 0, len(a))
	for _, idx := range a {
		if _, ok := slices.BinarySearch(b, idx); !ok {
			ret = append(ret, idx)
		}
	}
	return ret
}

// Decoder recombines fountain-encoded parts back into the original
// message. Parts can arrive in any order, with duplicates and losses, as
// long as enough of them eventually arrive.
type Decoder struct {
	message     []byte
	mixedParts  []*indexedPart
	received    []int // sorted
	queue       []*indexedPart
	description *MessageDescription
}

// NewDecoder returns an empty Decoder
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Receive feeds a part into the decoder. It returns true if more parts are
// needed to complete the message.
func (d *Decoder) Receive(part *Part) (bool, error) {
	if d.IsComplete() {
		return false, nil
	}
	if !part.IsValid() {
		return false, ErrInvalidPart
	}
	if d.IsEmpty() {
		// Part validity bounds this near the claimed message length, but
		// the product can still overflow int on 32-bit platforms
		bufferLen := uint64(len(part.Data)) * uint64(part.SequenceCount)
		if bufferLen > uint64(math.MaxInt) {
			return false, ErrInvalidPart
		}
		d.message = make([]byte, int(bufferLen))
		desc := part.Description()
		d.description = &desc
	} else if !d.IsPartConsistent(part) {
		return false, InconsistentPartError{
			Received: part.Description(),
			Expected: *d.description,
		}
	}
	indexes, err := part.Indexes()
	if err != nil {
		return false, err
	}
	data := make([]byte, len(part.Data))
	copy(data, part.Data)
	d.queue = append(d.queue, &indexedPart{data: data, indexes: indexes})
	for !d.IsComplete() && len(d.queue) > 0 {
		next := d.queue[0]
		d.queue = d.queue[1:]
		if next.isSimple() {
			d.processSimple(next)
		} else {
			d.processMixed(next)
		}
	}
	return !d.IsComplete(), nil
}

// IsPartConsistent returns whether a part agrees with the message
// description established by previously received parts. A fresh decoder
// always returns false here.
func (d *Decoder) IsPartConsistent(part *Part) bool {
	if d.description == nil {
		return false
	}
	return part.Matches(*d.description)
}

// Message returns the decoded message once the decoder is complete and nil
// otherwise. Decoding fails if any padding byte beyond the message length
// is non-zero, or if the reassembled message does not match the checksum
// the parts carried.
func (d *Decoder) Message() ([]byte, error) {
	if !d.IsComplete() {
		return nil, nil
	}
	messageLen := int(d.description.MessageLength)
	for _, b := range d.message[messageLen:] {
		if b != 0 {
			return nil, ErrInvalidPadding
		}
	}
	// Mixing can cancel out corrupted duplicate parts in a way that still
	// recovers every index, so the message checksum is authoritative
	if crc32.ChecksumIEEE(d.message[:messageLen]) != d.description.Checksum {
		return nil, ErrInvalidChecksum
	}
	return d.message[:messageLen], nil
}

// IsComplete returns whether every fragment has been recovered
func (d *Decoder) IsComplete() bool {
	if d.IsEmpty() {
		return false
	}
	return len(d.received) == int(d.description.SequenceCount)
}

// IsEmpty returns true until the first part is successfully received
func (d *Decoder) IsEmpty() bool {
	return len(d.message) == 0 &&
		len(d.mixedParts) == 0 &&
		len(d.received) == 0 &&
		len(d.queue) == 0 &&
		d.description == nil
}

// EstimatedPercentComplete returns a rough progress estimate in [0, 1]
func (d *Decoder) EstimatedPercentComplete() float64 {
	if d.IsComplete() {
		return 1.0
	}
	if d.IsEmpty() {
		return 0.0
	}
	estimatedInputParts := float64(d.description.SequenceCount) * 1.75
	return min(0.99, float64(len(d.received))/estimatedInputParts)
}

// Reset clears the decoder so that it can be used for another message
func (d *Decoder) Reset() {
	d.message = nil
	d.mixedParts = nil
	d.received = nil
	d.queue = nil
	d.description = nil
}

// reduceMixed reduces all stored mixed parts by the given part, moving any
// that become simple onto the queue
func (d *Decoder) reduceMixed(part *indexedPart) {
	remaining := d.mixedParts[:0]
	for _, mixed := range d.mixedParts {
		mixed.reduce(part)
		if mixed.isSimple() {
			d.queue = append(d.queue, mixed)
		} else {
			remaining = append(remaining, mixed)
		}
	}
	d.mixedParts = remaining
}

func (d *Decoder) processSimple(part *indexedPart) {
	index := part.indexes[0]
	if _, ok := slices.BinarySearch(d.received, index); ok {
		return
	}
	d.reduceMixed(part)
	fragmentLen := d.description.FragmentLength
	copy(d.message[index*fragmentLen:(index+1)*fragmentLen], part.data)
	pos, _ := slices.BinarySearch(d.received, index)
	d.received = slices.Insert(d.received, pos, index)
}

func (d *Decoder) processMixed(part *indexedPart) {
	for _, mixed := range d.mixedParts {
		if slices.Equal(part.indexes, mixed.indexes) {
			return
		}
	}
	// Reduce this part by all the fragments decoded so far
	fragmentLen := d.description.FragmentLength
	for _, index := range d.received {
		part.reduceBySimple(
			d.message[index*fragmentLen:(index+1)*fragmentLen],
			index,
		)
		if part.isSimple() {
			break
		}
	}
	// Then reduce this part by all the stored mixed parts
	if !part.isSimple() {
		for _, mixed := range d.mixedParts {
			part.reduce(mixed)
			if part.isSimple() {
				break
			}
		}
	}
	if part.isSimple() {
		d.queue = append(d.queue, part)
	} else {
		d.reduceMixed(part)
		d.mixedParts = append(d.mixedParts, part)
	}
}
