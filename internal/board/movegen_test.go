package board

import "testing"

func init() {
	Init()
}

// perft counts leaf nodes at depth, driving GenerateMoves/MakeMove/UndoMove
// exactly as a real caller would: generate pseudo-legal moves, let MakeMove
// reject the ones that leave the mover in check.
func perft(p *Position, depth int) int64 {
	if depth == 0 {
		return 1
	}

	moves := p.GenerateMoves()
	var nodes int64
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		saved := p.CastlingRights
		if !p.MakeMove(m) {
			continue
		}
		nodes += perft(p, depth-1)
		p.UndoMove(m, saved)
	}
	return nodes
}

func mustParseFEN(t *testing.T, fen string) *Position {
	t.Helper()
	pos, err := parseTestFEN(fen)
	if err != nil {
		t.Fatalf("failed to parse FEN %q: %v", fen, err)
	}
	return pos
}

func TestPerftStartingPosition(t *testing.T) {
	pos := StartingPosition()

	tests := []struct {
		depth    int
		expected int64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
		{5, 4865609},
	}

	for _, tc := range tests {
		got := perft(pos.Clone(), tc.depth)
		if got != tc.expected {
			t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.expected)
		}
	}
}

func TestPerftKiwipete(t *testing.T) {
	pos := mustParseFEN(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")

	tests := []struct {
		depth    int
		expected int64
	}{
		{1, 48},
		{2, 2039},
		{3, 97862},
		{4, 4085603},
	}

	for _, tc := range tests {
		got := perft(pos.Clone(), tc.depth)
		if got != tc.expected {
			t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.expected)
		}
	}
}

// TestPerftEnPassantHeavy exercises a position with several live en-passant
// captures available, including a discovered-check-on-capture edge case.
func TestPerftEnPassantHeavy(t *testing.T) {
	pos := mustParseFEN(t, "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")

	tests := []struct {
		depth    int
		expected int64
	}{
		{1, 14},
		{2, 191},
		{3, 2812},
		{4, 43238},
		{5, 674624},
	}

	for _, tc := range tests {
		got := perft(pos.Clone(), tc.depth)
		if got != tc.expected {
			t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.expected)
		}
	}
}

// TestPerftEnPassantPin exercises the horizontal-pin edge case: a capturing
// pawn may not take en passant if doing so exposes its own king to a rook
// on the vacated rank.
func TestPerftEnPassantPin(t *testing.T) {
	pos := mustParseFEN(t, "8/8/8/8/k2Pp2R/8/8/4K3 b - d3 0 1")

	moves := pos.GenerateMoves()
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		if !m.IsEnPassant() {
			continue
		}
		saved := pos.CastlingRights
		if pos.MakeMove(m) {
			t.Errorf("en passant move %v should be illegal (horizontal pin)", m)
			pos.UndoMove(m, saved)
		}
	}

	tests := []struct {
		depth    int
		expected int64
	}{
		{1, 6},
		{2, 94},
	}

	for _, tc := range tests {
		got := perft(pos.Clone(), tc.depth)
		if got != tc.expected {
			t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.expected)
		}
	}
}

// TestCastlingBlockedByAttack checks that castling out of check is excluded
// at generation time, while the plain rook move a1b1 is still generated.
func TestCastlingBlockedByAttack(t *testing.T) {
	pos := mustParseFEN(t, "4k3/8/8/8/8/8/4r3/R3K2R w KQ - 0 1")

	moves := pos.GenerateMoves()
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		if m.IsCastle() {
			t.Errorf("castling move %v should not be generated, the king on e1 is attacked", m)
		}
	}

	rookLift := NewMove(A1, B1, WR, NoPieceType, FlagNone)
	if !moves.Contains(rookLift) {
		t.Errorf("expected rook lift a1b1 to be a generated move")
	}
}
