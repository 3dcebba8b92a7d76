package board

// SavedRights is the pre-move castling-rights snapshot a caller must keep
// in order to call UndoMove later. The en-passant square is not part of it:
// UndoMove reconstructs it from the move's flag instead.
type SavedRights = CastlingRights

// MakeMove applies m to p and reports whether the result is legal: it
// returns false if the side that just moved is left in check, in which
// case it has already called UndoMove to restore p before returning.
//
// Callers that want to undo a successful MakeMove themselves must capture
// p.CastlingRights before calling MakeMove and pass it to UndoMove.
func (p *Position) MakeMove(m Move) bool {
	saved := p.CastlingRights
	savedEP := p.EnPassant
	mover := m.Piece().Color()

	p.applyMove(m)

	if IsSquareAttacked(p, p.KingSquare(mover), mover.Opposite()) {
		p.UndoMove(m, saved)
		p.EnPassant = savedEP
		return false
	}
	return true
}

// applyMove performs the unconditional mechanics of make_move, §4.5 steps
// 1-8. Every mutation names its piece type explicitly (never "whatever
// occupies this square") so that a promotion's capture and its
// just-replaced pawn never get confused with each other.
func (p *Position) applyMove(m Move) {
	src, dst, piece, captured, flag := m.Decode()
	color := piece.Color()

	p.RemovePieceType(piece, src)
	p.SetPiece(piece, dst)
	if captured != NoPieceType {
		p.RemovePieceType(captured, dst)
	}

	p.EnPassant = NoSquare

	switch flag {
	case FlagNone:
	case FlagWDoublePawn:
		p.EnPassant = dst.Below()
	case FlagBDoublePawn:
		p.EnPassant = dst.Above()
	case FlagWEnPassant:
		p.RemovePieceType(BP, dst.Below())
	case FlagBEnPassant:
		p.RemovePieceType(WP, dst.Above())
	case FlagWKCastle:
		p.RemovePieceType(WR, H1)
		p.SetPiece(WR, F1)
	case FlagWQCastle:
		p.RemovePieceType(WR, A1)
		p.SetPiece(WR, D1)
	case FlagBKCastle:
		p.RemovePieceType(BR, H8)
		p.SetPiece(BR, F8)
	case FlagBQCastle:
		p.RemovePieceType(BR, A8)
		p.SetPiece(BR, D8)
	case FlagPromoN, FlagPromoB, FlagPromoR, FlagPromoQ:
		p.RemovePieceType(piece, dst)
		kind, _ := m.PromotionKind()
		p.SetPiece(MakePieceType(kind, color), dst)
	}

	p.CastlingRights = p.CastlingRights.Update(src, dst)
	p.SideToMove = p.SideToMove.Opposite()
	p.recomputeOccupancy()
	p.checkInvariants()
}

// UndoMove reverses the most recent successful MakeMove(m), restoring
// castling rights to saved (the pre-move snapshot the caller retained) and
// reconstructing the en-passant square from m's flag. Step-for-step inverse
// of applyMove: the original pawn is placed back on src even for
// promotions, and the promoted piece is then separately removed from dst —
// no re-place-and-remove of the pawn on dst ever occurs, since the pawn's
// bitboard, not the promoted piece's, is what step 2 operates on.
func (p *Position) UndoMove(m Move, saved SavedRights) {
	src, dst, piece, captured, flag := m.Decode()
	color := piece.Color()

	p.SideToMove = p.SideToMove.Opposite()

	p.SetPiece(piece, src)
	p.RemovePieceType(piece, dst)
	if captured != NoPieceType {
		p.SetPiece(captured, dst)
	}

	p.EnPassant = NoSquare

	switch flag {
	case FlagNone, FlagWDoublePawn, FlagBDoublePawn:
	case FlagWEnPassant:
		p.EnPassant = dst
		p.SetPiece(BP, dst.Below())
	case FlagBEnPassant:
		p.EnPassant = dst
		p.SetPiece(WP, dst.Above())
	case FlagWKCastle:
		p.SetPiece(WR, H1)
		p.RemovePieceType(WR, F1)
	case FlagWQCastle:
		p.SetPiece(WR, A1)
		p.RemovePieceType(WR, D1)
	case FlagBKCastle:
		p.SetPiece(BR, H8)
		p.RemovePieceType(BR, F8)
	case FlagBQCastle:
		p.SetPiece(BR, A8)
		p.RemovePieceType(BR, D8)
	case FlagPromoN, FlagPromoB, FlagPromoR, FlagPromoQ:
		kind, _ := m.PromotionKind()
		p.RemovePieceType(MakePieceType(kind, color), dst)
	}

	p.CastlingRights = saved
	p.recomputeOccupancy()
	p.checkInvariants()
}
