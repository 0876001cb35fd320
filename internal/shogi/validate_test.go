package shogi

import (
	"errors"
	"testing"
)

func TestStructuralErrors(t *testing.T) {
	cases := []struct {
		name   string
		sfen   string
		side   Color
		mutate func(p *Position)
		want   error
	}{
		{"missing king", "k8/9/9/9/9/9/9/9/9 b - 1", Black, nil, ErrMissingKing},
		{"duplicate king", "k8/9/9/9/9/9/9/9/3KK4 b - 1", Black, nil, ErrDuplicateKing},
		{"too many rooks", "k8/9/9/9/9/9/9/9/4K4 b 3R 1", Black, nil, ErrTooManyPieces},
		{"too many golds across hands", "k8/9/9/9/9/9/9/9/3GKG3 b 2Gg 1", Black, nil, ErrTooManyPieces},
		{"double pawn", "k8/9/9/9/9/4P4/4P4/9/4K4 b - 1", Black, nil, ErrDoublePawn},
		{"pawn on last rank", "k3P4/9/9/9/9/9/9/9/4K4 b - 1", Black, nil, ErrDeadPiece},
		{"white knight on eighth rank", "k8/9/9/9/9/9/9/4n4/K8 w - 1", White, nil, ErrDeadPiece},
		{"king in hand", "k8/9/9/9/9/9/9/9/4K4 b - 1", Black, func(p *Position) { p.Hands[Black][King] = 1 }, ErrInvalidHand},
		{"negative hand", "k8/9/9/9/9/9/9/9/4K4 b - 1", Black, func(p *Position) { p.Hands[White][Pawn] = -1 }, ErrInvalidHand},
		{"invalid code", "k8/9/9/9/9/9/9/9/4K4 b - 1", Black, func(p *Position) { p.Board[40] = Piece(20) }, ErrInvalidPiece},
		{"invalid side", StartSFEN, NoColor, nil, ErrInvalidSide},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := mustSFEN(t, tc.sfen)
			if tc.mutate != nil {
				tc.mutate(p)
			}
			_, err := p.LegalMoves(tc.side)
			if !errors.Is(err, tc.want) {
				t.Fatalf("error mismatch: got=%v want=%v", err, tc.want)
			}
			var ve *ValidationError
			if !errors.As(err, &ve) || !ve.Kind.Structural() {
				t.Fatalf("expected a structural validation error, got %v", err)
			}
		})
	}
}

func TestOpponentKingMayBeAbsent(t *testing.T) {
	p := mustSFEN(t, "9/9/9/9/9/9/9/9/4K4 b G 1")
	moves, err := p.LegalMoves(Black)
	if err != nil {
		t.Fatalf("legal moves: %v", err)
	}
	// 玉 5 手 + 金打ち 80 格
	if len(moves) != 85 {
		t.Fatalf("move count mismatch: got=%d want=%d", len(moves), 85)
	}
	if _, err := p.LegalMoves(White); !errors.Is(err, ErrMissingKing) {
		t.Fatalf("white without a king: got=%v want=%v", err, ErrMissingKing)
	}
}

func TestPlacementRejectsBadCodes(t *testing.T) {
	var b Board
	b[0] = Piece(-15)
	if _, err := NewPlacement(&b); !errors.Is(err, ErrInvalidPiece) {
		t.Fatalf("placement: got=%v want=%v", err, ErrInvalidPiece)
	}
	if _, err := BoardFromCodes([]byte("x")); !errors.Is(err, ErrInvalidPiece) {
		t.Fatalf("short board: got=%v", err)
	}
}

func TestBoardCodesRoundTrip(t *testing.T) {
	p := NewInitialPosition()
	codes := p.Board.Codes()
	if got := string(codes[:9]); got != "lnsgkgsnl" {
		t.Fatalf("rank 1 codes: got=%q", got)
	}
	b, err := BoardFromCodes(codes)
	if err != nil {
		t.Fatalf("from codes: %v", err)
	}
	if b != p.Board {
		t.Fatalf("board changed after code round trip")
	}
	pc, err := PieceFromCode('u')
	if err != nil || pc != MakePiece(White, Dragon) {
		t.Fatalf("code u: got=%v err=%v", pc, err)
	}
}
