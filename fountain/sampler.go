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
)

// weightedSampler draws indexes with the given relative weights using the
// Walker alias method. The table construction order below is part of the
// deterministic fragment selection and must not change.
type weightedSampler struct {
	aliases []uint32
	probs   []float64
}

func newWeightedSampler(weights []float64) (*weightedSampler, error) {
	count := len(weights)
	scaled := make([]float64, count)
	var summed float64
	for i, w := range weights {
		if w < 0 {
			return nil, errors.New("negative probability encountered")
		}
		scaled[i] = w
		summed += w
	}
	if summed <= 0 {
		return nil, errors.New(
			"probabilities don't sum to a positive value",
		)
	}
	ratio := float64(count) / summed
	for i := range scaled {
		scaled[i] *= ratio
	}
	s := &weightedSampler{
		aliases: make([]uint32, count),
		probs:   make([]float64, count),
	}
	var small, large []int
	for i := count - 1; i >= 0; i-- {
		if scaled[i] < 1.0 {
			small = append(small, i)
		} else {
			large = append(large, i)
		}
	}
	for len(small) > 0 && len(large) > 0 {
		a := small[len(small)-1]
		small = small[:len(small)-1]
		g := large[len(large)-1]
		large = large[:len(large)-1]
		s.probs[a] = scaled[a]
		s.aliases[a] = uint32(g) // #nosec G115
		scaled[g] += scaled[a] - 1.0
		if scaled[g] < 1.0 {
			small = append(small, g)
		} else {
			large = append(large, g)
		}
	}
	for _, g := range large {
		s.probs[g] = 1.0
	}
	for _, a := range small {
		s.probs[a] = 1.0
	}
	return s, nil
}

func (s *weightedSampler) next(rng *Xoshiro256) uint32 {
	r1 := rng.NextDouble()
	r2 := rng.NextDouble()
	i := int(float64(len(s.probs)) * r1)
	if r2 < s.probs[i] {
		return uint32(i) // #nosec G115
	}
	return s.aliases[i]
}
