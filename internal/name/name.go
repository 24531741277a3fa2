// Package name generates random container names.
package name

import (
	"crypto/rand"
	"encoding/hex"
	mathrand "math/rand"
)

var adjectives = []string{
	"bold", "brave", "bright", "calm", "clever",
	"cool", "eager", "fair", "fast", "fierce",
	"gentle", "happy", "jolly", "keen", "kind",
	"lively", "lucky", "merry", "mighty", "noble",
	"proud", "quick", "quiet", "sharp", "sleek",
	"smart", "snappy", "speedy", "steady", "swift",
	"tender", "tough", "vivid", "warm", "wild",
	"wise", "witty", "zen", "zesty", "agile",
	"alert", "cosmic", "daring", "epic", "grand",
}

var animals = []string{
	"badger", "bear", "beaver", "bison", "cat",
	"cheetah", "coyote", "crane", "crow", "deer",
	"dolphin", "dove", "eagle", "falcon", "ferret",
	"finch", "fox", "frog", "gopher", "hawk",
	"heron", "horse", "jaguar", "koala", "lemur",
	"lion", "lynx", "marmot", "moose", "narwhal",
	"octopus", "otter", "owl", "panda", "penguin",
	"puma", "quail", "rabbit", "raven", "salmon",
	"seal", "shark", "sparrow", "swan", "tiger",
	"turtle", "walrus", "whale", "wolf", "wombat",
}

// Generate returns a random name in adjective-animal format.
func Generate() string {
	adj := adjectives[mathrand.Intn(len(adjectives))]
	animal := animals[mathrand.Intn(len(animals))]
	return adj + "-" + animal
}

// Suffix returns a short random hex string for disambiguating names.
// Uses 2 cryptographically random bytes encoded as 4 hex characters.
func Suffix() string {
	b := make([]byte, 2)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failing is effectively unheard of; fall back to math/rand
		return hex.EncodeToString([]byte{byte(mathrand.Intn(256)), byte(mathrand.Intn(256))})
	}
	return hex.EncodeToString(b)
}

// Unique returns candidate if no name in taken matches it. On collision the
// candidate is suffixed with a random hex tag until it differs from every
// taken name.
func Unique(candidate string, taken map[string]bool) string {
	if !taken[candidate] {
		return candidate
	}
	for {
		renamed := candidate + "-" + Suffix()
		if !taken[renamed] {
			return renamed
		}
	}
}
