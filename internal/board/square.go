// Package board implements chess board representation, attack generation,
// and move application using bitboards.
package board

import "fmt"

// Square identifies one of the 64 board squares, plus a sentinel for "none".
//
// Layout: square 0 = a8, square 63 = h1. Rank = sq>>3 gives 0 for the 8th
// rank (the one printed first) through 7 for the 1st rank; File = sq&7
// gives 0 for the a-file through 7 for the h-file.
type Square uint8

// Square constants, rank-major starting at a8 (square 0) through h1 (square 63).
const (
	A8 Square = iota
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A1
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	NoSquare Square = 64
)

// File returns the file of the square, 0 (a) through 7 (h).
func (sq Square) File() int {
	return int(sq) & 7
}

// Rank returns the internal rank index of the square: 0 for the 8th rank
// through 7 for the 1st rank. Use DisplayRank for the printed rank number.
func (sq Square) Rank() int {
	return int(sq) >> 3
}

// DisplayRank returns the rank number as printed on a board, 1 through 8.
func (sq Square) DisplayRank() int {
	return 8 - sq.Rank()
}

// NewSquare builds a square from a file (0..7) and a printed rank (1..8).
func NewSquare(file, displayRank int) Square {
	return Square((8-displayRank)*8 + file)
}

// Above returns the square one rank closer to the 8th rank (sq-8).
// Callers must only use it where the result stays within 0..63.
func (sq Square) Above() Square {
	return sq - 8
}

// Below returns the square one rank closer to the 1st rank (sq+8).
// Callers must only use it where the result stays within 0..63.
func (sq Square) Below() Square {
	return sq + 8
}

// IsValid reports whether sq is one of the 64 real board squares.
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// String returns algebraic notation for the square (e.g. "e4"), or "-" for NoSquare.
func (sq Square) String() string {
	if sq >= NoSquare {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'a'+sq.File(), sq.DisplayRank())
}

// ParseSquare parses algebraic notation (e.g. "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("board: invalid square %q", s)
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '0')
	if file < 0 || file > 7 || rank < 1 || rank > 8 {
		return NoSquare, fmt.Errorf("board: invalid square %q", s)
	}
	return NewSquare(file, rank), nil
}
