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
	"encoding/binary"
	"fmt"
	"slices"
)

// chooseFragments returns the set of fragment indexes mixed into the part
// with the given sequence number. The first sequenceCount parts are the
// plain fragments in order. Later parts mix a pseudo-random selection
// derived from the sequence number and message checksum, so any
// implementation can reproduce the same selection.
func chooseFragments(
	sequence uint32,
	sequenceCount uint32,
	checksum uint32,
) ([]int, error) {
	if sequence == 0 || sequenceCount == 0 {
		return nil, fmt.Errorf(
			"invalid sequence %d of %d",
			sequence,
			sequenceCount,
		)
	}
	if sequence <= sequenceCount {
		return []int{int(sequence - 1)}, nil
	}
	var seed [8]byte
	binary.BigEndian.PutUint32(seed[0:], sequence)
	binary.BigEndian.PutUint32(seed[4:], checksum)
	rng := NewXoshiro256(seed[:])
	degree, err := chooseDegree(rng, sequenceCount)
	if err != nil {
		return nil, err
	}
	indexes := make([]int, 0, sequenceCount)
	for i := 0; i < int(sequenceCount); i++ {
		indexes = append(indexes, i)
	}
	chosen := shuffleIndexes(rng, indexes, degree)
	slices.Sort(chosen)
	return chosen, nil
}

func chooseDegree(rng *Xoshiro256, sequenceCount uint32) (int, error) {
	weights := make([]float64, 0, sequenceCount)
	for i := uint32(0); i < sequenceCount; i++ {
		weights = append(weights, 1.0/float64(i+1))
	}
	sampler, err := newWeightedSampler(weights)
	if err != nil {
		return 0, err
	}
	return int(sampler.next(rng)) + 1, nil
}

// shuffleIndexes picks degree items from indexes using a partial
// Fisher-Yates shuffle that preserves the order of the remaining items.
// It consumes indexes.
func shuffleIndexes(rng *Xoshiro256, indexes []int, degree int) []int {
	shuffled := make([]int, 0, degree)
	for len(shuffled) < degree {
		// #nosec G115
		idx := int(rng.NextInt(0, uint64(len(indexes)-1)))
		item := indexes[idx]
		indexes = append(indexes[:idx], indexes[idx+1:]...)
		shuffled = append(shuffled, item)
	}
	return shuffled
}
