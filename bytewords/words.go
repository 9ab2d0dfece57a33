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

package bytewords

// The 256-word alphabet from BCR-2020-012. Each word is four letters, and
// the (first, last) letter pair is unique across the table, which is what
// makes the minimal style decodable.
var words = [256]string{
	"able", "acid", "also", "apex", "aqua", "arch", "atom", "aunt", "away", "axis",
	"back", "bald", "barn", "belt", "beta", "bias", "blue", "body", "brag", "brew",
	"bulb", "buzz", "calm", "cash", "cats", "chef", "city", "claw", "code", "cola",
	"cook", "cost", "crux", "curl", "cusp", "cyan", "dark", "data", "days", "deli",
	"dice", "diet", "door", "down", "draw", "drop", "drum", "dull", "duty", "each",
	"easy", "echo", "edge", "epic", "even", "exam", "exit", "eyes", "fact", "fair",
	"fern", "figs", "film", "fish", "fizz", "flap", "flew", "flux", "foxy", "free",
	"frog", "fuel", "fund", "gala", "game", "gear", "gems", "gift", "girl", "glow",
	"good", "gray", "grim", "guru", "gush", "gyro", "half", "hang", "hard", "hawk",
	"heat", "help", "high", "hill", "holy", "hope", "horn", "huts", "iced", "idea",
	"idle", "inch", "inky", "into", "iris", "iron", "item", "jade", "jazz", "join",
	"jolt", "jowl", "judo", "jugs", "jump", "junk", "jury", "keep", "keno", "kept",
	"keys", "kick", "kiln", "king", "kite", "kiwi", "knob", "lamb", "lava", "lazy",
	"leaf", "legs", "liar", "limp", "lion", "list", "logo", "loud", "love", "luau",
	"luck", "lung", "main", "many", "math", "maze", "memo", "menu", "meow", "mild",
	"mint", "miss", "monk", "nail", "navy", "need", "news", "next", "noon", "note",
	"numb", "obey", "oboe", "omit", "onyx", "open", "oval", "owls", "paid", "part",
	"peck", "play", "plus", "poem", "pool", "pose", "puff", "puma", "purr", "quad",
	"quiz", "race", "ramp", "real", "redo", "rich", "road", "rock", "roof", "ruby",
	"ruin", "runs", "rust", "safe", "saga", "scar", "sets", "silk", "skew", "slot",
	"soap", "solo", "song", "stub", "surf", "swan", "taco", "task", "taxi", "tent",
	"tied", "time", "tiny", "toil", "tomb", "toys", "trip", "tuna", "twin", "ugly",
	"undo", "unit", "urge", "user", "vast", "very", "veto", "vial", "vibe", "view",
	"visa", "void", "vows", "wall", "wand", "warm", "wasp", "wave", "waxy", "webs",
	"what", "when", "whiz", "wolf", "work", "yank", "yawn", "yell", "yoga", "yurt",
	"zaps", "zero", "zest", "zinc", "zone", "zoom",
}

var (
	minimals    [256]string
	wordIdxs    map[string]byte
	minimalIdxs map[string]byte
)

func init() {
	wordIdxs = make(map[string]byte, 256)
	minimalIdxs = make(map[string]byte, 256)
	for i, w := range words {
		// The minimal form is the first and last letter of the word
		m := string([]byte{w[0], w[3]})
		minimals[i] = m
		wordIdxs[w] = byte(i)
		minimalIdxs[m] = byte(i)
	}
}
