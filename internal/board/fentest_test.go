package board

import (
	"fmt"
	"strconv"
	"strings"
)

// parseTestFEN is a minimal FEN reader for this package's own tests. The
// core deliberately carries no FEN parser (see internal/fenio, which
// imports this package and so cannot be imported back from here without a
// cycle) — this is test-only plumbing, not a second implementation of it.
func parseTestFEN(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 {
		return nil, fmt.Errorf("need at least 4 FEN fields, got %d", len(parts))
	}

	pos := &Position{EnPassant: NoSquare, FullMoveNumber: 1}

	ranks := strings.Split(parts[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("need 8 ranks, got %d", len(ranks))
	}
	for i, rankStr := range ranks {
		displayRank := 8 - i
		file := 0
		for _, c := range rankStr {
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			pt, err := PieceTypeFromChar(byte(c))
			if err != nil {
				return nil, err
			}
			pos.SetPiece(pt, NewSquare(file, displayRank))
			file++
		}
	}

	switch parts[1] {
	case "w":
		pos.SideToMove = White
	case "b":
		pos.SideToMove = Black
	default:
		return nil, fmt.Errorf("invalid side to move %q", parts[1])
	}

	if parts[2] != "-" {
		for _, c := range parts[2] {
			switch c {
			case 'K':
				pos.CastlingRights |= WhiteKingSide
			case 'Q':
				pos.CastlingRights |= WhiteQueenSide
			case 'k':
				pos.CastlingRights |= BlackKingSide
			case 'q':
				pos.CastlingRights |= BlackQueenSide
			}
		}
	}

	if parts[3] != "-" {
		sq, err := ParseSquare(parts[3])
		if err != nil {
			return nil, err
		}
		pos.EnPassant = sq
	}

	if len(parts) > 4 {
		if n, err := strconv.Atoi(parts[4]); err == nil {
			pos.HalfMoveClock = n
		}
	}
	if len(parts) > 5 {
		if n, err := strconv.Atoi(parts[5]); err == nil {
			pos.FullMoveNumber = n
		}
	}

	return pos, nil
}
