//go:build !board_debug

package board

// debugAssert is a no-op outside board_debug builds.
func debugAssert(cond bool, format string, args ...any) {}

// checkInvariants is a no-op outside board_debug builds.
func (p *Position) checkInvariants() {}
