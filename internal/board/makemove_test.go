package board

import "testing"

// TestPromotionRoundTrip checks that every promotion choice for a pawn one
// step from queening produces the right piece and leaves no residue of the
// pre-promotion pawn, and that undoing restores the exact original bitboards.
func TestPromotionRoundTrip(t *testing.T) {
	pos := mustParseFEN(t, "4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	before := *pos

	src, dst := A7, A8
	count := 0
	for _, flag := range promoFlags {
		m := NewMove(src, dst, WP, NoPieceType, flag)
		kind, _ := m.PromotionKind()
		want := MakePieceType(kind, White)

		saved := pos.CastlingRights
		if !pos.MakeMove(m) {
			t.Fatalf("promotion move %v unexpectedly illegal", m)
		}
		if pos.PieceAt(dst) != want {
			t.Errorf("after promotion %v, piece at a8 = %v, want %v", m, pos.PieceAt(dst), want)
		}
		if pos.Bitboards[WP] != 0 {
			t.Errorf("after promotion %v, white pawn bitboard should be empty, got %#x", m, pos.Bitboards[WP])
		}
		count++

		pos.UndoMove(m, saved)
		if *pos != before {
			t.Errorf("position after undo of %v does not match pre-move state", m)
		}
	}
	if count != 4 {
		t.Errorf("expected 4 promotion choices to be exercised, got %d", count)
	}
}

// TestPromotionCapture checks that a capturing promotion restores the
// captured piece, not the promoted one, on undo.
func TestPromotionCapture(t *testing.T) {
	pos := mustParseFEN(t, "1n2k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	before := *pos

	m := NewMove(A7, B8, WP, BN, FlagPromoQ)
	saved := pos.CastlingRights
	if !pos.MakeMove(m) {
		t.Fatalf("capturing promotion unexpectedly illegal")
	}
	if pos.PieceAt(B8) != WQ {
		t.Fatalf("expected WQ on b8 after capturing promotion, got %v", pos.PieceAt(B8))
	}
	if pos.Bitboards[BN] != 0 {
		t.Fatalf("captured knight should be gone from the board")
	}

	pos.UndoMove(m, saved)
	if *pos != before {
		t.Fatalf("position after undo of capturing promotion does not match pre-move state")
	}
	if pos.PieceAt(B8) != BN {
		t.Fatalf("expected BN restored on b8 after undo, got %v", pos.PieceAt(B8))
	}
}

// TestEnPassantRoundTrip checks capture removal and restoration for a white
// en-passant capture.
func TestEnPassantRoundTrip(t *testing.T) {
	pos := mustParseFEN(t, "4k3/8/8/Pp6/8/8/8/4K3 w - b6 0 1")
	before := *pos

	m := NewMove(A5, B6, WP, NoPieceType, FlagWEnPassant)
	saved := pos.CastlingRights
	if !pos.MakeMove(m) {
		t.Fatalf("en passant capture unexpectedly illegal")
	}
	if pos.PieceAt(B5) != NoPieceType {
		t.Fatalf("captured pawn should be gone from b5")
	}
	if pos.PieceAt(B6) != WP {
		t.Fatalf("expected white pawn on b6 after en passant")
	}

	pos.UndoMove(m, saved)
	if *pos != before {
		t.Fatalf("position after undo of en passant capture does not match pre-move state")
	}
}

// TestCastlingRoundTrip checks that both white castling moves are legal and
// that undoing each restores the exact pre-move position.
func TestCastlingRoundTrip(t *testing.T) {
	pos := mustParseFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	before := *pos

	moves := []Move{
		NewMove(E1, G1, WK, NoPieceType, FlagWKCastle),
		NewMove(E1, C1, WK, NoPieceType, FlagWQCastle),
	}
	for _, m := range moves {
		fresh := mustParseFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
		saved := fresh.CastlingRights
		if !fresh.MakeMove(m) {
			t.Fatalf("castling move %v unexpectedly illegal", m)
		}
		fresh.UndoMove(m, saved)
		if *fresh != before {
			t.Errorf("position after undo of %v does not match pre-move state", m)
		}
	}
}

// TestCastlingRightsRevokedByRookCapture checks that capturing a rook on
// its home square revokes that side's castling right even though the
// capturing piece never moved through it before.
func TestCastlingRightsRevokedByRookCapture(t *testing.T) {
	pos := mustParseFEN(t, "r3k2r/8/8/8/8/8/6b1/R3K2R w KQkq - 0 1")
	m := NewMove(H1, H8, WR, BR, FlagNone)
	saved := pos.CastlingRights
	if !pos.MakeMove(m) {
		t.Fatalf("rook capture unexpectedly illegal")
	}
	if pos.CastlingRights.Has(BlackKingSide) {
		t.Errorf("black kingside rights should be revoked once its rook is captured on h8")
	}
	pos.UndoMove(m, saved)
	if pos.CastlingRights&BlackKingSide == 0 {
		t.Errorf("undo should restore black kingside rights")
	}
}

// TestMakeMoveRejectsSelfCheck checks that a move leaving the mover's own
// king in check is rejected and the position is fully restored.
func TestMakeMoveRejectsSelfCheck(t *testing.T) {
	pos := mustParseFEN(t, "4k3/8/8/8/8/8/3r4/4K3 w - - 0 1")
	before := *pos

	m := NewMove(E1, D1, WK, NoPieceType, FlagNone)
	saved := pos.CastlingRights
	if pos.MakeMove(m) {
		t.Fatalf("king move into check should be rejected")
	}
	if *pos != before {
		t.Fatalf("rejected move must leave the position untouched")
	}
	_ = saved
}
