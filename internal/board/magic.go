package board

// Magic bitboards for sliding-piece (bishop, rook) attack lookup. For a
// square s and the current all-piece occupancy, the attack set is found by
// masking occ down to the relevant blockers, multiplying by a hard-coded
// magic constant, and shifting the high bits down into a table index — see
// §4.2. The magic numbers and relevant-bit counts below are the standard
// widely-circulated constants for this masking scheme, known not to collide.

// Magic holds everything needed to compute one square's table index.
type Magic struct {
	Mask   Bitboard
	Number uint64
	Shift  uint8
	Offset uint32
}

var (
	bishopMagics [64]Magic
	rookMagics   [64]Magic

	bishopTable [5248]Bitboard
	rookTable   [102400]Bitboard
)

var bishopRelevantBits = [64]uint8{
	6, 5, 5, 5, 5, 5, 5, 6,
	5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 7, 7, 7, 7, 5, 5,
	5, 5, 7, 9, 9, 7, 5, 5,
	5, 5, 7, 9, 9, 7, 5, 5,
	5, 5, 7, 7, 7, 7, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5,
	6, 5, 5, 5, 5, 5, 5, 6,
}

var rookRelevantBits = [64]uint8{
	12, 11, 11, 11, 11, 11, 11, 12,
	11, 10, 10, 10, 10, 10, 10, 11,
	11, 10, 10, 10, 10, 10, 10, 11,
	11, 10, 10, 10, 10, 10, 10, 11,
	11, 10, 10, 10, 10, 10, 10, 11,
	11, 10, 10, 10, 10, 10, 10, 11,
	11, 10, 10, 10, 10, 10, 10, 11,
	12, 11, 11, 11, 11, 11, 11, 12,
}

var bishopMagicNumbers = [64]uint64{
	0x40040844404084, 0x2004208a004208, 0x10190041080202, 0x108060845042010,
	0x581104180800210, 0x2112080446200010, 0x1080820820060210, 0x3c0808410220200,
	0x4050404440404, 0x21001420088, 0x24d0080801082102, 0x1020a0a020400,
	0x40308200402, 0x4011002100800, 0x401484104104005, 0x801010402020200,
	0x400210c3880100, 0x404022024108200, 0x810018200204102, 0x4002801a02003,
	0x85040820080400, 0x810102c808880400, 0xe900410884800, 0x8002020480840102,
	0x220200865090201, 0x2010100a02021202, 0x152048408022401, 0x20080002081110,
	0x4001001021004000, 0x800040400a011002, 0xe4004081011002, 0x1c004001012080,
	0x8004200962a00220, 0x8422100208500202, 0x2000402200300c08, 0x8646020080080080,
	0x80020a0200100808, 0x2010004880111000, 0x623000a080011400, 0x42008c0340209202,
	0x209188240001000, 0x400408a884001800, 0x110400a6080400, 0x1840060a44020800,
	0x90080104000041, 0x201011000808101, 0x1a2208080504f080, 0x8012020600211212,
	0x500861011240000, 0x180806108200800, 0x4000020e01040044, 0x300000261044000a,
	0x802241102020002, 0x20906061210001, 0x5a84841004010310, 0x4010801011c04,
	0xa010109502200, 0x4a02012000, 0x500201010098b028, 0x8040002811040900,
	0x28000010020204, 0x6000020202d0240, 0x8918844842082200, 0x4010011029020020,
}

var rookMagicNumbers = [64]uint64{
	0x8a80104000800020, 0x140002000100040, 0x2801880a0017001, 0x100081001000420,
	0x200020010080420, 0x3001c0002010008, 0x8480008002000100, 0x2080088004402900,
	0x800098204000, 0x2024401000200040, 0x100802000801000, 0x120800800801000,
	0x208808088000400, 0x2802200800400, 0x2200800100020080, 0x801000060821100,
	0x80044006422000, 0x100808020004000, 0x12108a0010204200, 0x140848010000802,
	0x481828014002800, 0x8094004002004100, 0x4010040010010802, 0x20008806104,
	0x100400080208000, 0x2040002120081000, 0x21200680100081, 0x20100080080080,
	0x2000a00200410, 0x20080800400, 0x80088400100102, 0x80004600042881,
	0x4040008040800020, 0x440003000200801, 0x4200011004500, 0x188020010100100,
	0x14800401802800, 0x2080040080800200, 0x124080204001001, 0x200046502000484,
	0x480400080088020, 0x1000422010034000, 0x30200100110040, 0x100021010009,
	0x2002080100110004, 0x202008004008002, 0x20020004010100, 0x2048440040820001,
	0x101002200408200, 0x40802000401080, 0x4008142004410100, 0x2060820c0120200,
	0x1001004080100, 0x20c020080040080, 0x2935610830022400, 0x44440041009200,
	0x280001040802101, 0x2100190040002085, 0x80c0084100102001, 0x4024081001000421,
	0x20030a0244872, 0x12001008414402, 0x2006104900a0804, 0x1004081002402,
}

// bishopMask computes the relevant-blocker mask for a bishop on sq: the four
// diagonal rays, excluding the board edge and sq itself.
func bishopMask(sq Square) Bitboard {
	var mask Bitboard
	seeker := SquareBB(sq)
	for (seeker&Rank8).Empty() && (seeker&FileA).Empty() {
		mask |= seeker
		seeker = seeker.ShiftUpwards(9)
	}
	seeker = SquareBB(sq)
	for (seeker&Rank8).Empty() && (seeker&FileH).Empty() {
		mask |= seeker
		seeker = seeker.ShiftUpwards(7)
	}
	seeker = SquareBB(sq)
	for (seeker&Rank1).Empty() && (seeker&FileA).Empty() {
		mask |= seeker
		seeker = seeker.ShiftDownwards(7)
	}
	seeker = SquareBB(sq)
	for (seeker&Rank1).Empty() && (seeker&FileH).Empty() {
		mask |= seeker
		seeker = seeker.ShiftDownwards(9)
	}
	return mask.Clear(sq)
}

// rookMask computes the relevant-blocker mask for a rook on sq.
func rookMask(sq Square) Bitboard {
	var mask Bitboard
	seeker := SquareBB(sq)
	for (seeker & Rank8).Empty() {
		mask |= seeker
		seeker = seeker.ShiftUpwards(8)
	}
	seeker = SquareBB(sq)
	for (seeker & Rank1).Empty() {
		mask |= seeker
		seeker = seeker.ShiftDownwards(8)
	}
	seeker = SquareBB(sq)
	for (seeker & FileA).Empty() {
		mask |= seeker
		seeker = seeker.ShiftUpwards(1)
	}
	seeker = SquareBB(sq)
	for (seeker & FileH).Empty() {
		mask |= seeker
		seeker = seeker.ShiftDownwards(1)
	}
	return mask.Clear(sq)
}

// bishopAttacksSlow walks the four diagonal rays from sq, stopping at (and
// including) the first blocker, for use only while populating the table.
func bishopAttacksSlow(sq Square, blockers Bitboard) Bitboard {
	var attacks Bitboard
	seeker := SquareBB(sq)
	for (seeker&Rank8).Empty() && (seeker&FileA).Empty() && (seeker&blockers).Empty() {
		seeker = seeker.ShiftUpwards(9)
		attacks |= seeker
	}
	seeker = SquareBB(sq)
	for (seeker&Rank8).Empty() && (seeker&FileH).Empty() && (seeker&blockers).Empty() {
		seeker = seeker.ShiftUpwards(7)
		attacks |= seeker
	}
	seeker = SquareBB(sq)
	for (seeker&Rank1).Empty() && (seeker&FileA).Empty() && (seeker&blockers).Empty() {
		seeker = seeker.ShiftDownwards(7)
		attacks |= seeker
	}
	seeker = SquareBB(sq)
	for (seeker&Rank1).Empty() && (seeker&FileH).Empty() && (seeker&blockers).Empty() {
		seeker = seeker.ShiftDownwards(9)
		attacks |= seeker
	}
	return attacks
}

// rookAttacksSlow walks the four orthogonal rays from sq, stopping at (and
// including) the first blocker, for use only while populating the table.
func rookAttacksSlow(sq Square, blockers Bitboard) Bitboard {
	var attacks Bitboard
	seeker := SquareBB(sq)
	for (seeker&Rank8).Empty() && (seeker&blockers).Empty() {
		seeker = seeker.ShiftUpwards(8)
		attacks |= seeker
	}
	seeker = SquareBB(sq)
	for (seeker&Rank1).Empty() && (seeker&blockers).Empty() {
		seeker = seeker.ShiftDownwards(8)
		attacks |= seeker
	}
	seeker = SquareBB(sq)
	for (seeker&FileA).Empty() && (seeker&blockers).Empty() {
		seeker = seeker.ShiftUpwards(1)
		attacks |= seeker
	}
	seeker = SquareBB(sq)
	for (seeker&FileH).Empty() && (seeker&blockers).Empty() {
		seeker = seeker.ShiftDownwards(1)
		attacks |= seeker
	}
	return attacks
}

// occupancyPermutation extracts the index-th subset of mask, where mask has
// numBits set bits. Iterating index from 0 to 2^numBits-1 enumerates every
// subset exactly once — the standard "index to occupancy" trick.
func occupancyPermutation(index uint32, numBits uint8, mask Bitboard) Bitboard {
	var occ Bitboard
	for i := uint8(0); i < numBits; i++ {
		sq := mask.PopLSB()
		if index&(1<<i) != 0 {
			occ = occ.Set(sq)
		}
	}
	return occ
}

// initMagics populates bishopMagics/rookMagics and their flat attack tables.
func initMagics() {
	var bishopOffset, rookOffset uint32

	for s := Square(0); s < 64; s++ {
		mask := bishopMask(s)
		bits := bishopRelevantBits[s]
		bishopMagics[s] = Magic{
			Mask:   mask,
			Number: bishopMagicNumbers[s],
			Shift:  64 - bits,
			Offset: bishopOffset,
		}
		count := uint32(1) << bits
		for index := uint32(0); index < count; index++ {
			occ := occupancyPermutation(index, bits, mask)
			magicIndex := (uint64(occ) * bishopMagicNumbers[s]) >> (64 - bits)
			bishopTable[bishopOffset+uint32(magicIndex)] = bishopAttacksSlow(s, occ)
		}
		bishopOffset += count

		mask = rookMask(s)
		bits = rookRelevantBits[s]
		rookMagics[s] = Magic{
			Mask:   mask,
			Number: rookMagicNumbers[s],
			Shift:  64 - bits,
			Offset: rookOffset,
		}
		count = uint32(1) << bits
		for index := uint32(0); index < count; index++ {
			occ := occupancyPermutation(index, bits, mask)
			magicIndex := (uint64(occ) * rookMagicNumbers[s]) >> (64 - bits)
			rookTable[rookOffset+uint32(magicIndex)] = rookAttacksSlow(s, occ)
		}
		rookOffset += count
	}
}

// BishopAttacks returns a bishop's attack set from sq given the current
// all-piece occupancy.
func BishopAttacks(sq Square, occ Bitboard) Bitboard {
	m := &bishopMagics[sq]
	index := (uint64(occ&m.Mask) * m.Number) >> m.Shift
	return bishopTable[m.Offset+uint32(index)]
}

// RookAttacks returns a rook's attack set from sq given the current
// all-piece occupancy.
func RookAttacks(sq Square, occ Bitboard) Bitboard {
	m := &rookMagics[sq]
	index := (uint64(occ&m.Mask) * m.Number) >> m.Shift
	return rookTable[m.Offset+uint32(index)]
}

// QueenAttacks returns a queen's attack set from sq: the union of a bishop's
// and a rook's.
func QueenAttacks(sq Square, occ Bitboard) Bitboard {
	return BishopAttacks(sq, occ) | RookAttacks(sq, occ)
}
