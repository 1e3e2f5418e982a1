package procgen

import (
	"math/rand"
	"time"
)

// NewRand returns the default random source for generators: unseeded in the
// sense that every call produces a differently-seeded stream, so repeated
// renders of the same document intentionally differ. Tests that need
// reproducible output construct their own rand.New with a fixed seed and pass
// it in instead.
func NewRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
