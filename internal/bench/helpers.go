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

// Package bench provides helpers for the codec benchmarks.
package bench

import (
	"fmt"

	"github.com/blinklabs-io/gur/fountain"
	"github.com/blinklabs-io/gur/internal/test"
)

// Message returns a deterministic pseudorandom message of the given size
func Message(size int) []byte {
	return test.MakeMessage("Wolf", size)
}

// Parts generates enough fountain parts for the given message that a
// decoder can always reassemble it, even when benchmarks skip some
func Parts(message []byte, maxFragmentLen int) []*fountain.Part {
	enc, err := fountain.NewEncoder(message, maxFragmentLen)
	if err != nil {
		panic(fmt.Sprintf("generate parts: %s", err))
	}
	count := int(enc.SequenceCount()) * 2
	ret := make([]*fountain.Part, 0, count)
	for len(ret) < count {
		part, err := enc.NextPart()
		if err != nil {
			panic(fmt.Sprintf("generate parts: %s", err))
		}
		ret = append(ret, part)
	}
	return ret
}
