package game

import (
	"errors"
	"testing"

	"shogilegal/internal/shogi"
)

func TestRegisterAndPlay(t *testing.T) {
	m := NewManager()
	s := m.Register(shogi.NewInitialPosition())
	if s.ID == "" {
		t.Fatalf("empty session id")
	}

	mv, err := s.Pos.ParseUSIMove("7g7f")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	got, v, err := m.Play(s.ID, mv)
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if !v.NonPromoting {
		t.Fatalf("verdict: got=%+v", v)
	}
	if got.Pos.SideToMove != shogi.White || len(got.Moves) != 1 || got.LastTo != mv.To {
		t.Fatalf("session not advanced: %+v", got)
	}

	// 同一步再走一次：此时起点已空
	if _, _, err := m.Play(s.ID, mv); !errors.Is(err, shogi.ErrEmptyOrigin) {
		t.Fatalf("replay: got=%v want=%v", err, shogi.ErrEmptyOrigin)
	}
}

func TestPlayRejectsIllegalVariant(t *testing.T) {
	m := NewManager()
	pos, err := shogi.DecodeSFEN("k8/8P/9/9/9/9/9/9/4K4 b - 1")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	s := m.Register(pos)
	mv, _ := pos.ParseUSIMove("1b1a")
	got, v, err := m.Play(s.ID, mv)
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if v.NonPromoting || !v.Promoting {
		t.Fatalf("verdict: got=%+v", v)
	}
	if len(got.Moves) != 0 {
		t.Fatalf("illegal variant was played")
	}
}

func TestPlayRendersJapaneseFromPlayedPosition(t *testing.T) {
	m := NewManager()
	s := m.Register(shogi.NewInitialPosition())
	want := []struct{ usi, jp string }{
		{"7g7f", "▲７六歩"},
		{"3c3d", "△３四歩"},
		{"8h2b+", "▲２二角成"},
		{"3a2b", "△同　銀"},
	}
	for _, w := range want {
		cur, err := m.Get(s.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		mv, err := cur.Pos.ParseUSIMove(w.usi)
		if err != nil {
			t.Fatalf("parse %s: %v", w.usi, err)
		}
		got, v, err := m.Play(s.ID, mv)
		if err != nil || !v.Allows(mv.Promote) {
			t.Fatalf("play %s: verdict=%+v err=%v", w.usi, v, err)
		}
		if got.LastJapanese != w.jp {
			t.Fatalf("%s: got=%s want=%s", w.usi, got.LastJapanese, w.jp)
		}
	}
}

func TestUnknownSession(t *testing.T) {
	m := NewManager()
	if _, err := m.Get("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get: got=%v", err)
	}
	if _, _, err := m.Play("nope", shogi.Move{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("play: got=%v", err)
	}
}

func TestLegalMovesMemo(t *testing.T) {
	m := NewManager()
	pos := shogi.NewInitialPosition()
	a, err := m.LegalMoves(pos, shogi.Black)
	if err != nil {
		t.Fatalf("legal moves: %v", err)
	}
	b, err := m.LegalMoves(pos, shogi.Black)
	if err != nil {
		t.Fatalf("legal moves: %v", err)
	}
	if len(a) != 30 || len(b) != 30 || &a[0] != &b[0] {
		t.Fatalf("second call should hit the memo")
	}
	if m.memo.len() != 1 {
		t.Fatalf("memo size: got=%d want=1", m.memo.len())
	}
}

func TestLegalMovesValidatesBeforeMemo(t *testing.T) {
	m := NewManager()
	if _, err := m.LegalMoves(shogi.NewInitialPosition(), shogi.Black); err != nil {
		t.Fatalf("legal moves: %v", err)
	}

	// 19 枚以上的持驹不进入哈希，必须在查缓存之前被拒绝
	bad := shogi.NewInitialPosition()
	bad.Hands[shogi.Black][shogi.Pawn] = 19
	if _, err := m.LegalMoves(bad, shogi.Black); !errors.Is(err, shogi.ErrTooManyPieces) {
		t.Fatalf("19 pawns in hand: got=%v want=%v", err, shogi.ErrTooManyPieces)
	}
	bad.Hands[shogi.Black][shogi.Pawn] = -1
	if _, err := m.LegalMoves(bad, shogi.Black); !errors.Is(err, shogi.ErrInvalidHand) {
		t.Fatalf("negative hand: got=%v want=%v", err, shogi.ErrInvalidHand)
	}
}

func TestMoveMemoComparesPositionOnHit(t *testing.T) {
	c := newMoveMemo(8)
	start := shogi.NewInitialPosition()
	other, err := shogi.DecodeSFEN("lnsgkgsnl/1r5b1/ppppppppp/9/9/2P6/PP1PPPPPP/1B5R1/LNSGKGSNL b - 1")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	// 模拟哈希碰撞：other 的键下存着初期局面的结果
	moves, err := start.LegalMoves(shogi.Black)
	if err != nil {
		t.Fatalf("legal moves: %v", err)
	}
	c.m[keyOf(other, shogi.Black)] = memoEntry{board: start.Board, hands: start.Hands, moves: moves}
	if _, ok := c.get(other, shogi.Black); ok {
		t.Fatalf("colliding entry for another board was returned")
	}

	c.put(start, shogi.Black, moves)
	if got, ok := c.get(start, shogi.Black); !ok || len(got) != 30 {
		t.Fatalf("exact entry missed: ok=%v len=%d", ok, len(got))
	}
	if _, ok := c.get(start, shogi.White); ok {
		t.Fatalf("entry for the other side was returned")
	}
}

func TestMoveMemoResetsAtCapacity(t *testing.T) {
	c := newMoveMemo(2)
	var positions []*shogi.Position
	for _, s := range []string{
		"k8/9/9/9/9/9/9/9/4K4 b - 1",
		"k8/9/9/9/9/9/9/9/3K5 b - 1",
		"k8/9/9/9/9/9/9/9/5K3 b - 1",
	} {
		pos, err := shogi.DecodeSFEN(s)
		if err != nil {
			t.Fatalf("decode %s: %v", s, err)
		}
		positions = append(positions, pos)
		c.put(pos, shogi.Black, nil)
	}
	if c.len() != 1 {
		t.Fatalf("memo size: got=%d want=1", c.len())
	}
	if _, ok := c.get(positions[2], shogi.Black); !ok {
		t.Fatalf("latest entry lost")
	}
}
