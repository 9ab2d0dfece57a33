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
	"crypto/sha256"
	"encoding/binary"
	"hash/crc32"
	"math/bits"
)

// Xoshiro256 is a xoshiro256** pseudo-random number generator seeded from
// the SHA-256 digest of arbitrary input. Fragment selection depends on its
// output being identical across implementations, so the sequence produced
// for a given seed must never change.
type Xoshiro256 struct {
	s [4]uint64
}

// NewXoshiro256 returns a generator seeded from the SHA-256 digest of data
func NewXoshiro256(data []byte) *Xoshiro256 {
	digest := sha256.Sum256(data)
	var x Xoshiro256
	for i := range x.s {
		x.s[i] = binary.BigEndian.Uint64(digest[i*8:])
	}
	return &x
}

// NewXoshiro256FromCrc32 returns a generator seeded from the big-endian
// CRC-32 of data
func NewXoshiro256FromCrc32(data []byte) *Xoshiro256 {
	crc := crc32.ChecksumIEEE(data)
	var seed [4]byte
	binary.BigEndian.PutUint32(seed[:], crc)
	return NewXoshiro256(seed[:])
}

// Next returns the next value in the sequence
func (x *Xoshiro256) Next() uint64 {
	result := bits.RotateLeft64(x.s[1]*5, 7) * 9
	t := x.s[1] << 17
	x.s[2] ^= x.s[0]
	x.s[3] ^= x.s[1]
	x.s[1] ^= x.s[2]
	x.s[0] ^= x.s[3]
	x.s[2] ^= t
	x.s[3] = bits.RotateLeft64(x.s[3], 45)
	return result
}

// NextDouble returns the next value scaled into [0, 1)
func (x *Xoshiro256) NextDouble() float64 {
	const two64 = 1 << 64
	return float64(x.Next()) / float64(two64)
}

// NextInt returns the next value scaled into [low, high]
func (x *Xoshiro256) NextInt(low, high uint64) uint64 {
	return uint64(x.NextDouble()*float64(high-low+1)) + low
}

// NextByte returns the next value scaled into [0, 255]
func (x *Xoshiro256) NextByte() byte {
	return byte(x.NextInt(0, 255))
}
