package board

// findPiece returns the piece type of color c occupying sq, probing the
// canonical (pawn, knight, bishop, rook, queen, king) order. Panics under
// the board_debug build tag if none match — the caller has already
// established sq is occupied by c, so exactly one bitboard must hit.
func findPiece(p *Position, c Color, sq Square) PieceType {
	for _, pt := range PieceTypesByColor(c) {
		if p.Bitboards[pt].IsSet(sq) {
			return pt
		}
	}
	debugAssert(false, "no %s piece found on %s despite occupancy", c, sq)
	return NoPieceType
}

func singlePushTarget(c Color, sq Square) Square {
	if c == White {
		return sq.Above()
	}
	return sq.Below()
}

func doublePushTarget(c Color, sq Square) Square {
	if c == White {
		return sq.Above().Above()
	}
	return sq.Below().Below()
}

func isPawnHomeRank(c Color, sq Square) bool {
	if c == White {
		return sq.DisplayRank() == 2
	}
	return sq.DisplayRank() == 7
}

func isPawnPromotionRank(c Color, sq Square) bool {
	if c == White {
		return sq.DisplayRank() == 7
	}
	return sq.DisplayRank() == 2
}

func isEnPassantSourceRank(c Color, sq Square) bool {
	if c == White {
		return sq.DisplayRank() == 5
	}
	return sq.DisplayRank() == 4
}

// GenerateMoves produces every pseudo-legal move for the side to move:
// moves that obey piece movement rules but may leave the mover's own king
// in check. Legality is enforced separately, at make time (§4.5).
func (p *Position) GenerateMoves() *MoveList {
	ml := &MoveList{}

	us := p.SideToMove
	them := us.Opposite()
	ownOcc := p.Occupied[us]
	enemyOcc := p.Occupied[them]
	invAll := ^p.AllOccupied
	invOwn := ^ownOcc

	p.generatePawnMoves(ml, us, them, enemyOcc, invAll)
	p.generateLeaperMoves(ml, MakePieceType(Knight, us), knightAttacks[:], invOwn, us)
	p.generateSliderMoves(ml, MakePieceType(Bishop, us), BishopAttacks, invOwn, us)
	p.generateSliderMoves(ml, MakePieceType(Rook, us), RookAttacks, invOwn, us)
	p.generateSliderMoves(ml, MakePieceType(Queen, us), QueenAttacks, invOwn, us)
	p.generateKingMoves(ml, us, invOwn)
	p.generateCastlingMoves(ml, us)

	return ml
}

func (p *Position) generatePawnMoves(ml *MoveList, us, them Color, enemyOcc, invAll Bitboard) {
	pawn := pawnOf(us)
	srcs := p.Bitboards[pawn]

	for srcs != 0 {
		src := srcs.PopLSB()

		captureMask := PawnCaptures(us, src) & enemyOcc
		for captureMask != 0 {
			dst := captureMask.PopLSB()
			captured := findPiece(p, them, dst)
			if isPawnPromotionRank(us, src) {
				for _, flag := range promoFlags {
					ml.Add(NewMove(src, dst, pawn, captured, flag))
				}
			} else {
				ml.Add(NewMove(src, dst, pawn, captured, FlagNone))
			}
		}

		if p.EnPassant != NoSquare && isEnPassantSourceRank(us, src) && PawnCaptures(us, src).IsSet(p.EnPassant) {
			ml.Add(NewMove(src, p.EnPassant, pawn, NoPieceType, enPassantFlag(us)))
		}

		single := singlePushTarget(us, src)
		pushMask := PawnQuiets(us, src)
		allOcc := ^invAll
		bothPushSquaresEmpty := pushMask&allOcc == 0

		if p.IsEmpty(single) {
			if isPawnPromotionRank(us, src) {
				for _, flag := range promoFlags {
					ml.Add(NewMove(src, single, pawn, NoPieceType, flag))
				}
			} else {
				ml.Add(NewMove(src, single, pawn, NoPieceType, FlagNone))
			}

			if isPawnHomeRank(us, src) && bothPushSquaresEmpty {
				ml.Add(NewMove(src, doublePushTarget(us, src), pawn, NoPieceType, doublePawnFlag(us)))
			}
		}
	}
}

func (p *Position) generateLeaperMoves(ml *MoveList, piece PieceType, table []Bitboard, invOwn Bitboard, us Color) {
	srcs := p.Bitboards[piece]
	for srcs != 0 {
		src := srcs.PopLSB()
		targets := table[src] & invOwn
		p.emitTargets(ml, piece, src, targets, us)
	}
}

func (p *Position) generateSliderMoves(ml *MoveList, piece PieceType, attacks func(Square, Bitboard) Bitboard, invOwn Bitboard, us Color) {
	srcs := p.Bitboards[piece]
	for srcs != 0 {
		src := srcs.PopLSB()
		targets := attacks(src, p.AllOccupied) & invOwn
		p.emitTargets(ml, piece, src, targets, us)
	}
}

func (p *Position) generateKingMoves(ml *MoveList, us Color, invOwn Bitboard) {
	king := MakePieceType(King, us)
	src := p.Bitboards[king].LSB()
	if src == NoSquare {
		return
	}
	targets := KingAttacks(src) & invOwn
	p.emitTargets(ml, king, src, targets, us)
}

// emitTargets appends one move per set bit in targets, determining the
// captured piece (if any) by probing the enemy bitboards in canonical order.
func (p *Position) emitTargets(ml *MoveList, piece PieceType, src Square, targets Bitboard, us Color) {
	them := us.Opposite()
	for targets != 0 {
		dst := targets.PopLSB()
		var captured PieceType = NoPieceType
		if p.Occupied[them].IsSet(dst) {
			captured = findPiece(p, them, dst)
		}
		ml.Add(NewMove(src, dst, piece, captured, FlagNone))
	}
}

func (p *Position) generateCastlingMoves(ml *MoveList, us Color) {
	king := MakePieceType(King, us)

	if us == White {
		if p.CastlingRights.CanCastle(White, true) &&
			p.AllOccupied&WhiteKingSidePath == 0 &&
			!IsSquareAttacked(p, E1, Black) && !IsSquareAttacked(p, F1, Black) && !IsSquareAttacked(p, G1, Black) {
			ml.Add(NewMove(E1, G1, king, NoPieceType, FlagWKCastle))
		}
		if p.CastlingRights.CanCastle(White, false) &&
			p.AllOccupied&WhiteQueenSidePath == 0 &&
			!IsSquareAttacked(p, E1, Black) && !IsSquareAttacked(p, D1, Black) && !IsSquareAttacked(p, C1, Black) {
			ml.Add(NewMove(E1, C1, king, NoPieceType, FlagWQCastle))
		}
		return
	}

	if p.CastlingRights.CanCastle(Black, true) &&
		p.AllOccupied&BlackKingSidePath == 0 &&
		!IsSquareAttacked(p, E8, White) && !IsSquareAttacked(p, F8, White) && !IsSquareAttacked(p, G8, White) {
		ml.Add(NewMove(E8, G8, king, NoPieceType, FlagBKCastle))
	}
	if p.CastlingRights.CanCastle(Black, false) &&
		p.AllOccupied&BlackQueenSidePath == 0 &&
		!IsSquareAttacked(p, E8, White) && !IsSquareAttacked(p, D8, White) && !IsSquareAttacked(p, C8, White) {
		ml.Add(NewMove(E8, C8, king, NoPieceType, FlagBQCastle))
	}
}
