package chip8

import "math/rand"

// defaultRandSource is the production randSource, grounded on the
// teacher's and massung's use of math/rand for CXNN.
type defaultRandSource struct{}

func (defaultRandSource) Intn(n int) int { return rand.Intn(n) }
