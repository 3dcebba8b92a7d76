// Package perft walks the move tree rooted at a position to a fixed depth,
// counting leaf nodes. It is the standard correctness harness for a move
// generator: each node count is a published, independently verified
// constant for a handful of well-known positions, so a mismatch pinpoints a
// move-generation or make/undo bug far more precisely than a single game
// ever could.
package perft

import "github.com/hailam/bitperft/internal/board"

// Count returns the number of leaf positions reachable from pos in exactly
// depth plies. Count(pos, 0) is 1 by convention (the position itself).
func Count(pos *board.Position, depth int) int64 {
	if depth == 0 {
		return 1
	}

	moves := pos.GenerateMoves()
	var nodes int64
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		saved := pos.CastlingRights
		if !pos.MakeMove(m) {
			continue
		}
		if depth == 1 {
			nodes++
		} else {
			nodes += Count(pos, depth-1)
		}
		pos.UndoMove(m, saved)
	}
	return nodes
}

// DivideEntry is one root move's contribution to a Divide report.
type DivideEntry struct {
	Move  board.Move
	Nodes int64
}

// Divide returns, for every legal root move, the leaf-node count of the
// subtree below it at depth-1 plies — the standard per-move breakdown used
// to bisect a perft mismatch down to the offending root move.
func Divide(pos *board.Position, depth int) []DivideEntry {
	if depth <= 0 {
		return nil
	}

	moves := pos.GenerateMoves()
	entries := make([]DivideEntry, 0, moves.Len())
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		saved := pos.CastlingRights
		if !pos.MakeMove(m) {
			continue
		}
		entries = append(entries, DivideEntry{Move: m, Nodes: Count(pos, depth-1)})
		pos.UndoMove(m, saved)
	}
	return entries
}
