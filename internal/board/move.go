package board

import "fmt"

// MoveFlag distinguishes the special cases of a move: none, a pawn's double
// step (which sets the en-passant square), an en-passant capture, a
// castling move on either wing for either color, or a promotion to one of
// the four promotable pieces.
type MoveFlag uint8

const (
	FlagNone MoveFlag = iota
	FlagWDoublePawn
	FlagBDoublePawn
	FlagWEnPassant
	FlagBEnPassant
	FlagWKCastle
	FlagWQCastle
	FlagBKCastle
	FlagBQCastle
	FlagPromoN
	FlagPromoB
	FlagPromoR
	FlagPromoQ
)

// Move packs a single chess move into one integer: source square (6 bits),
// target square (6 bits), moving piece (4 bits), captured piece (4 bits,
// NoPieceType when none), and flag (4 bits).
type Move uint32

const (
	moveSrcShift  = 0
	moveDstShift  = 6
	movePieceShift = 12
	moveCapShift  = 16
	moveFlagShift = 20

	moveSquareMask = 0x3F
	movePieceMask  = 0xF
	moveFlagMask   = 0xF
)

// NoMove is the sentinel for "no move".
const NoMove Move = 1<<31 - 1

// NewMove packs a move from its five decoded fields.
func NewMove(src, dst Square, piece, captured PieceType, flag MoveFlag) Move {
	return Move(src)<<moveSrcShift |
		Move(dst)<<moveDstShift |
		Move(piece)<<movePieceShift |
		Move(captured)<<moveCapShift |
		Move(flag)<<moveFlagShift
}

// Src returns the move's source square.
func (m Move) Src() Square {
	return Square((m >> moveSrcShift) & moveSquareMask)
}

// Dst returns the move's target square.
func (m Move) Dst() Square {
	return Square((m >> moveDstShift) & moveSquareMask)
}

// Piece returns the piece being moved.
func (m Move) Piece() PieceType {
	return PieceType((m >> movePieceShift) & movePieceMask)
}

// Captured returns the captured piece, or NoPieceType if the move is not a capture.
func (m Move) Captured() PieceType {
	return PieceType((m >> moveCapShift) & movePieceMask)
}

// Flag returns the move's flag.
func (m Move) Flag() MoveFlag {
	return MoveFlag((m >> moveFlagShift) & moveFlagMask)
}

// Decode unpacks all five fields at once.
func (m Move) Decode() (src, dst Square, piece, captured PieceType, flag MoveFlag) {
	return m.Src(), m.Dst(), m.Piece(), m.Captured(), m.Flag()
}

// IsCapture reports whether the move removes an enemy piece, either by
// landing on it or via en passant. En-passant moves carry NoPieceType in
// their captured field (the captured pawn isn't on the destination square),
// so the flag is checked too.
func (m Move) IsCapture() bool {
	return m.Captured() != NoPieceType || m.IsEnPassant()
}

// IsEnPassant reports whether the move is an en-passant capture.
func (m Move) IsEnPassant() bool {
	f := m.Flag()
	return f == FlagWEnPassant || f == FlagBEnPassant
}

// IsCastle reports whether the move is a castling move.
func (m Move) IsCastle() bool {
	switch m.Flag() {
	case FlagWKCastle, FlagWQCastle, FlagBKCastle, FlagBQCastle:
		return true
	default:
		return false
	}
}

// IsDoublePawnPush reports whether the move is a pawn's two-square advance.
func (m Move) IsDoublePawnPush() bool {
	f := m.Flag()
	return f == FlagWDoublePawn || f == FlagBDoublePawn
}

// PromotionKind returns the promoted-to piece kind and true, or (NoKind,
// false) if the move is not a promotion.
func (m Move) PromotionKind() (Kind, bool) {
	switch m.Flag() {
	case FlagPromoN:
		return Knight, true
	case FlagPromoB:
		return Bishop, true
	case FlagPromoR:
		return Rook, true
	case FlagPromoQ:
		return Queen, true
	default:
		return NoKind, false
	}
}

// promoFlags lists the four promotion flags in canonical N,B,R,Q order.
var promoFlags = [4]MoveFlag{FlagPromoN, FlagPromoB, FlagPromoR, FlagPromoQ}

var promoChars = [4]byte{'n', 'b', 'r', 'q'}

// String renders the move in UCI notation, e.g. "e2e4" or "a7a8q".
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	s := m.Src().String() + m.Dst().String()
	if _, ok := m.PromotionKind(); ok {
		for i, f := range promoFlags {
			if f == m.Flag() {
				s += string(promoChars[i])
				break
			}
		}
	}
	return s
}

// MoveList is a fixed-capacity, insertion-ordered sequence of moves. No
// legal chess position has more than 218 legal moves, so 256 slots avoid
// dynamic allocation on the move-generation hot path.
type MoveList struct {
	moves [256]Move
	count int
}

// Add appends m to the list.
func (ml *MoveList) Add(m Move) {
	ml.moves[ml.count] = m
	ml.count++
}

// Len returns the number of moves currently in the list.
func (ml *MoveList) Len() int {
	return ml.count
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move {
	return ml.moves[i]
}

// Clear empties the list without releasing its backing array.
func (ml *MoveList) Clear() {
	ml.count = 0
}

// Contains reports whether m is present in the list.
func (ml *MoveList) Contains(m Move) bool {
	for i := 0; i < ml.count; i++ {
		if ml.moves[i] == m {
			return true
		}
	}
	return false
}

// Slice returns the list's moves as a slice sharing the list's storage.
func (ml *MoveList) Slice() []Move {
	return ml.moves[:ml.count]
}

// ParseUCIMove parses a UCI-format move string (e.g. "e2e4", "a7a8q")
// against pos, filling in the piece/captured/flag fields by inspecting the
// position. Returns an error if src holds no piece or the string is malformed.
func ParseUCIMove(s string, pos *Position) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return NoMove, fmt.Errorf("board: invalid move string %q", s)
	}
	src, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, err
	}
	dst, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove, err
	}
	piece := pos.PieceAt(src)
	if piece == NoPieceType {
		return NoMove, fmt.Errorf("board: no piece at %s", src)
	}
	captured := pos.PieceAt(dst)
	color := piece.Color()

	if len(s) == 5 {
		var flag MoveFlag
		switch s[4] {
		case 'n':
			flag = FlagPromoN
		case 'b':
			flag = FlagPromoB
		case 'r':
			flag = FlagPromoR
		case 'q':
			flag = FlagPromoQ
		default:
			return NoMove, fmt.Errorf("board: invalid promotion piece %q", s[4])
		}
		return NewMove(src, dst, piece, captured, flag), nil
	}

	if piece.Kind() == King {
		delta := int(dst) - int(src)
		if delta == 2 || delta == -2 {
			flag := kCastleFlag(color)
			if delta == -2 {
				flag = qCastleFlag(color)
			}
			return NewMove(src, dst, piece, NoPieceType, flag), nil
		}
	}

	if piece.Kind() == Pawn {
		if dst == pos.EnPassant && captured == NoPieceType {
			return NewMove(src, dst, piece, NoPieceType, enPassantFlag(color)), nil
		}
		if abs(int(dst)-int(src)) == 16 {
			return NewMove(src, dst, piece, NoPieceType, doublePawnFlag(color)), nil
		}
	}

	return NewMove(src, dst, piece, captured, FlagNone), nil
}

func kCastleFlag(c Color) MoveFlag {
	if c == White {
		return FlagWKCastle
	}
	return FlagBKCastle
}

func qCastleFlag(c Color) MoveFlag {
	if c == White {
		return FlagWQCastle
	}
	return FlagBQCastle
}

func enPassantFlag(c Color) MoveFlag {
	if c == White {
		return FlagWEnPassant
	}
	return FlagBEnPassant
}

func doublePawnFlag(c Color) MoveFlag {
	if c == White {
		return FlagWDoublePawn
	}
	return FlagBDoublePawn
}

func pawnOf(c Color) PieceType {
	if c == White {
		return WP
	}
	return BP
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
