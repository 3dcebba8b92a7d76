package board

// Precomputed leaper-piece attack/push tables, indexed by origin square.
// Populated once by initLeaperAttacks; read-only thereafter.
var (
	knightAttacks [64]Bitboard
	kingAttacks   [64]Bitboard
	pawnCaptures  [2][64]Bitboard
	pawnQuiets    [2][64]Bitboard
)

// initLeaperAttacks computes the knight, king, and pawn push/capture tables.
func initLeaperAttacks() {
	for s := Square(0); s < 64; s++ {
		bb := SquareBB(s)
		file := s.File()

		// Knight: eight L-shaped offsets, each suppressed on the file(s) it
		// would otherwise wrap across.
		var n Bitboard
		if file != 0 {
			n |= bb.ShiftUpwards(17)
			n |= bb.ShiftDownwards(15)
			if file != 1 {
				n |= bb.ShiftUpwards(10)
				n |= bb.ShiftDownwards(6)
			}
		}
		if file != 7 {
			n |= bb.ShiftUpwards(15)
			n |= bb.ShiftDownwards(17)
			if file != 6 {
				n |= bb.ShiftUpwards(6)
				n |= bb.ShiftDownwards(10)
			}
		}
		knightAttacks[s] = n

		// King: one step in each of the eight directions.
		var k Bitboard
		k |= bb.ShiftUpwards(8)
		k |= bb.ShiftDownwards(8)
		if file != 0 {
			k |= bb.ShiftUpwards(1)
			k |= bb.ShiftUpwards(9)
			k |= bb.ShiftDownwards(7)
		}
		if file != 7 {
			k |= bb.ShiftUpwards(7)
			k |= bb.ShiftDownwards(1)
			k |= bb.ShiftDownwards(9)
		}
		kingAttacks[s] = k

		// Pawns: push masks (single, plus double from the home rank) and
		// diagonal capture masks, suppressed across file boundaries.
		var wq, bq Bitboard
		wq |= bb.ShiftUpwards(8)
		if s.DisplayRank() == 2 {
			wq |= bb.ShiftUpwards(16)
		}
		bq |= bb.ShiftDownwards(8)
		if s.DisplayRank() == 7 {
			bq |= bb.ShiftDownwards(16)
		}
		pawnQuiets[White][s] = wq
		pawnQuiets[Black][s] = bq

		var wc, bc Bitboard
		if file != 0 {
			wc |= bb.ShiftUpwards(9)
			bc |= bb.ShiftDownwards(7)
		}
		if file != 7 {
			wc |= bb.ShiftUpwards(7)
			bc |= bb.ShiftDownwards(9)
		}
		pawnCaptures[White][s] = wc
		pawnCaptures[Black][s] = bc
	}
}

// KnightAttacks returns the knight's attack set from sq.
func KnightAttacks(sq Square) Bitboard { return knightAttacks[sq] }

// KingAttacks returns the king's attack set from sq (non-castling moves only).
func KingAttacks(sq Square) Bitboard { return kingAttacks[sq] }

// PawnCaptures returns the two diagonal capture squares available to a c
// pawn on sq, suppressed across file boundaries.
func PawnCaptures(c Color, sq Square) Bitboard { return pawnCaptures[c][sq] }

// PawnQuiets returns a c pawn's push mask from sq: the single push, plus the
// double push if sq is on the home rank. Callers must additionally confirm
// both squares are empty before trusting the double push (see movegen.go).
func PawnQuiets(c Color, sq Square) Bitboard { return pawnQuiets[c][sq] }

// IsSquareAttacked reports whether any piece of attacker attacks sq in
// position p. Uses the "reverse pawn" trick for pawns: the capture mask
// for the defending side from sq coincides with the squares an attacking
// pawn could capture sq from.
func IsSquareAttacked(p *Position, sq Square, attacker Color) bool {
	defender := attacker.Opposite()

	if PawnCaptures(defender, sq)&p.Bitboards[pawnOf(attacker)] != 0 {
		return true
	}
	if KnightAttacks(sq)&p.Bitboards[MakePieceType(Knight, attacker)] != 0 {
		return true
	}
	occ := p.AllOccupied
	if BishopAttacks(sq, occ)&p.Bitboards[MakePieceType(Bishop, attacker)] != 0 {
		return true
	}
	if RookAttacks(sq, occ)&p.Bitboards[MakePieceType(Rook, attacker)] != 0 {
		return true
	}
	if QueenAttacks(sq, occ)&p.Bitboards[MakePieceType(Queen, attacker)] != 0 {
		return true
	}
	if KingAttacks(sq)&p.Bitboards[MakePieceType(King, attacker)] != 0 {
		return true
	}
	return false
}
