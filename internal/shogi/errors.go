package shogi

import "fmt"

// ErrorKind classifies validation failures so callers can decide between
// showing a dialog and silently rejecting a gesture.
type ErrorKind int

const (
	KindInvalidPiece ErrorKind = iota + 1
	KindInvalidSide
	KindMissingKing
	KindDuplicateKing
	KindTooManyPieces
	KindDoublePawn
	KindDeadPiece
	KindInvalidHand
	KindInvalidSquare
	KindEmptyOrigin
	KindWrongSide
	KindPieceMismatch
	KindCaptureMismatch
	KindEmptyHand
	KindInvalidSFEN
	KindInvalidMove
)

var kindNames = map[ErrorKind]string{
	KindInvalidPiece:    "invalid_piece",
	KindInvalidSide:     "invalid_side",
	KindMissingKing:     "missing_king",
	KindDuplicateKing:   "duplicate_king",
	KindTooManyPieces:   "too_many_pieces",
	KindDoublePawn:      "double_pawn",
	KindDeadPiece:       "dead_piece",
	KindInvalidHand:     "invalid_hand",
	KindInvalidSquare:   "invalid_square",
	KindEmptyOrigin:     "empty_origin",
	KindWrongSide:       "wrong_side",
	KindPieceMismatch:   "piece_mismatch",
	KindCaptureMismatch: "capture_mismatch",
	KindEmptyHand:       "empty_hand",
	KindInvalidSFEN:     "invalid_sfen",
	KindInvalidMove:     "invalid_move",
}

func (k ErrorKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Structural reports whether the kind describes a broken board snapshot
// rather than a bad candidate move.
func (k ErrorKind) Structural() bool {
	return k >= KindInvalidPiece && k <= KindInvalidHand
}

type ValidationError struct {
	Kind   ErrorKind
	Square Square
	Msg    string
}

func (e *ValidationError) Error() string {
	if e.Msg == "" {
		return "shogi: " + e.Kind.String()
	}
	return "shogi: " + e.Msg
}

// Is matches any ValidationError of the same kind, so the sentinels below
// work with errors.Is.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Kind == e.Kind
}

func newError(kind ErrorKind, sq Square, format string, args ...any) *ValidationError {
	return &ValidationError{Kind: kind, Square: sq, Msg: fmt.Sprintf(format, args...)}
}

var (
	ErrInvalidPiece    = &ValidationError{Kind: KindInvalidPiece, Square: NoSquare, Msg: "invalid piece"}
	ErrInvalidSide     = &ValidationError{Kind: KindInvalidSide, Square: NoSquare, Msg: "invalid side"}
	ErrMissingKing     = &ValidationError{Kind: KindMissingKing, Square: NoSquare, Msg: "king missing"}
	ErrDuplicateKing   = &ValidationError{Kind: KindDuplicateKing, Square: NoSquare, Msg: "more than one king"}
	ErrTooManyPieces   = &ValidationError{Kind: KindTooManyPieces, Square: NoSquare, Msg: "piece count exceeds the set"}
	ErrDoublePawn      = &ValidationError{Kind: KindDoublePawn, Square: NoSquare, Msg: "two unpromoted pawns on one file"}
	ErrDeadPiece       = &ValidationError{Kind: KindDeadPiece, Square: NoSquare, Msg: "unpromoted piece with no further move"}
	ErrInvalidHand     = &ValidationError{Kind: KindInvalidHand, Square: NoSquare, Msg: "invalid hand"}
	ErrInvalidSquare   = &ValidationError{Kind: KindInvalidSquare, Square: NoSquare, Msg: "square out of range"}
	ErrEmptyOrigin     = &ValidationError{Kind: KindEmptyOrigin, Square: NoSquare, Msg: "no piece on origin square"}
	ErrWrongSide       = &ValidationError{Kind: KindWrongSide, Square: NoSquare, Msg: "piece belongs to the other side"}
	ErrPieceMismatch   = &ValidationError{Kind: KindPieceMismatch, Square: NoSquare, Msg: "moving piece does not match the board"}
	ErrCaptureMismatch = &ValidationError{Kind: KindCaptureMismatch, Square: NoSquare, Msg: "captured piece does not match the board"}
	ErrEmptyHand       = &ValidationError{Kind: KindEmptyHand, Square: NoSquare, Msg: "piece not in hand"}
	ErrInvalidSFEN     = &ValidationError{Kind: KindInvalidSFEN, Square: NoSquare, Msg: "invalid SFEN"}
	ErrInvalidMove     = &ValidationError{Kind: KindInvalidMove, Square: NoSquare, Msg: "invalid move string"}
)
