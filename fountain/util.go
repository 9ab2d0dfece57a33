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

func divCeil(a, b int) int {
	return (a + b - 1) / b
}

// FragmentLength returns the length of each fragment when a message of
// messageLen bytes is split into the smallest number of fragments not
// longer than maxFragmentLen. All fragments share this length, with the
// final fragment zero-padded up to it.
func FragmentLength(messageLen, maxFragmentLen int) int {
	fragmentCount := divCeil(messageLen, maxFragmentLen)
	return divCeil(messageLen, fragmentCount)
}

// xorInto XORs src into dst, which must be of equal length
func xorInto(dst, src []byte) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}
