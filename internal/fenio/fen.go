// Package fenio converts between Forsyth-Edwards Notation strings and
// board.Position values. It is a thin external collaborator: the core
// board package has no notion of FEN, so any host that wants to seed a
// position from text goes through here.
package fenio

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hailam/bitperft/internal/board"
)

// StartFEN is the FEN string for the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Parse parses a FEN string into a Position. Accepts the four mandatory
// fields (placement, side to move, castling, en passant); half-move clock
// and full-move number default to 0 and 1 when omitted, as many hand-typed
// test positions drop them.
func Parse(fen string) (*board.Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 {
		return nil, fmt.Errorf("fenio: invalid FEN: need at least 4 fields, got %d", len(parts))
	}

	pos := &board.Position{
		EnPassant:      board.NoSquare,
		FullMoveNumber: 1,
	}

	if err := parsePlacement(pos, parts[0]); err != nil {
		return nil, err
	}

	switch parts[1] {
	case "w":
		pos.SideToMove = board.White
	case "b":
		pos.SideToMove = board.Black
	default:
		return nil, fmt.Errorf("fenio: invalid side to move: %s", parts[1])
	}

	rights, err := parseCastling(parts[2])
	if err != nil {
		return nil, err
	}
	pos.CastlingRights = rights

	if parts[3] != "-" {
		sq, err := board.ParseSquare(parts[3])
		if err != nil {
			return nil, fmt.Errorf("fenio: invalid en passant square: %s", parts[3])
		}
		pos.EnPassant = sq
	}

	if len(parts) > 4 {
		hmc, err := strconv.Atoi(parts[4])
		if err != nil {
			return nil, fmt.Errorf("fenio: invalid half-move clock: %s", parts[4])
		}
		pos.HalfMoveClock = hmc
	}

	if len(parts) > 5 {
		fmn, err := strconv.Atoi(parts[5])
		if err != nil {
			return nil, fmt.Errorf("fenio: invalid full-move number: %s", parts[5])
		}
		pos.FullMoveNumber = fmn
	}

	if err := pos.Validate(); err != nil {
		return nil, fmt.Errorf("fenio: %v", err)
	}

	return pos, nil
}

func parsePlacement(pos *board.Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("fenio: invalid piece placement: need 8 ranks, got %d", len(ranks))
	}

	for i, rankStr := range ranks {
		displayRank := 8 - i
		file := 0

		for _, c := range rankStr {
			if file > 7 {
				return fmt.Errorf("fenio: too many squares in rank %d", displayRank)
			}
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			pt, err := board.PieceTypeFromChar(byte(c))
			if err != nil {
				return fmt.Errorf("fenio: %v", err)
			}
			pos.SetPiece(pt, board.NewSquare(file, displayRank))
			file++
		}

		if file != 8 {
			return fmt.Errorf("fenio: invalid number of squares in rank %d: got %d", displayRank, file)
		}
	}

	return nil
}

func parseCastling(castling string) (board.CastlingRights, error) {
	if castling == "-" {
		return board.NoCastling, nil
	}

	var rights board.CastlingRights
	for _, c := range castling {
		switch c {
		case 'K':
			rights |= board.WhiteKingSide
		case 'Q':
			rights |= board.WhiteQueenSide
		case 'k':
			rights |= board.BlackKingSide
		case 'q':
			rights |= board.BlackQueenSide
		default:
			return 0, fmt.Errorf("fenio: invalid castling character: %c", c)
		}
	}
	return rights, nil
}

// Format renders pos as a FEN string.
func Format(pos *board.Position) string {
	var sb strings.Builder

	for displayRank := 8; displayRank >= 1; displayRank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := board.NewSquare(file, displayRank)
			pt := pos.PieceAt(sq)
			if pt == board.NoPieceType {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pt.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if displayRank > 1 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if pos.SideToMove == board.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(pos.CastlingRights.String())

	sb.WriteByte(' ')
	sb.WriteString(pos.EnPassant.String())

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(pos.HalfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(pos.FullMoveNumber))

	return sb.String()
}
