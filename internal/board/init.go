package board

import "sync"

var initOnce sync.Once

// Init populates every precomputed attack table. It is idempotent and safe
// to call from multiple goroutines; only the first call does any work, and
// every caller blocks until that work is complete. Init must run before
// generating moves, making a move, or querying IsSquareAttacked — nothing
// in this package does it implicitly, matching §9's "host program must
// call it at startup."
func Init() {
	initOnce.Do(func() {
		initLeaperAttacks()
		initMagics()
	})
}
