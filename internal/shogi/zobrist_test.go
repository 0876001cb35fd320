package shogi

import (
	"math/rand"
	"testing"
)

func TestHashInitializedFromInitialAndSFEN(t *testing.T) {
	pos := NewInitialPosition()
	if pos.Hash != pos.CalculateHash() {
		t.Fatalf("initial hash mismatch: got=%d want=%d", pos.Hash, pos.CalculateHash())
	}

	white := mustSFEN(t, "lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL w - 1")
	if white.Hash == pos.Hash {
		t.Fatalf("side to move not hashed")
	}

	a := mustSFEN(t, "lnsgkg1nl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b S 1")
	b := mustSFEN(t, "lnsgkg1nl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b s 1")
	if a.Hash == b.Hash {
		t.Fatalf("hand owner not hashed")
	}
}

func TestApplyMoveHashIncrementalMatchesFullRecompute(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	pos := NewInitialPosition()
	for ply := 0; ply < 200; ply++ {
		moves, err := pos.LegalMoves(pos.SideToMove)
		if err != nil {
			t.Fatalf("legal moves at ply %d: %v", ply, err)
		}
		if len(moves) == 0 {
			return
		}
		mv := moves[rng.Intn(len(moves))]
		next, ok := pos.ApplyMove(mv)
		if !ok {
			t.Fatalf("apply move failed at ply %d: %s", ply, mv.USI())
		}
		got := next.Hash
		want := next.CalculateHash()
		if got != want {
			t.Fatalf("hash mismatch at ply %d: got=%d want=%d move=%s", ply, got, want, mv.USI())
		}
		pos = next
	}
}

func TestApplyMoveCapturesToHand(t *testing.T) {
	p := mustSFEN(t, "lnsgkgsnl/1r5b1/pppppp1pp/6p2/9/2P6/PP1PPPPPP/1B5R1/LNSGKGSNL b - 1")
	m, err := p.ParseUSIMove("8h2b+")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	np, ok := p.ApplyMove(m)
	if !ok {
		t.Fatalf("apply failed")
	}
	if got := np.Hands[Black][Bishop]; got != 1 {
		t.Fatalf("bishops in hand: got=%d want=1", got)
	}
	if got := np.Board[sq(t, "2b")]; got != MakePiece(Black, Horse) {
		t.Fatalf("2b: got=%v", got)
	}
	if p.Board[sq(t, "8h")] != MakePiece(Black, Bishop) {
		t.Fatalf("original position was modified")
	}

	if _, ok := p.ApplyMove(Move{From: sq(t, "5i"), To: sq(t, "5h"), Promote: true}); ok {
		t.Fatalf("promoted king move accepted")
	}
}
