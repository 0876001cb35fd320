package shogi

import (
	"fmt"
	"sync"
)

type delta struct{ df, dr int }

var (
	attackOnce sync.Once

	// 跳驹（含飞驹的单步部分）的步进表，按先后手分开；只读。
	stepAttacks [NumColors][PieceTypeCount][NumSquares]Bitboard

	betweenBB [NumSquares][NumSquares]Bitboard
	lineBB    [NumSquares][NumSquares]Bitboard
)

var (
	orthogonal = []delta{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	diagonal   = []delta{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
)

// stepDeltas 按先手视角给出（dr<0 为前进），後手翻转 dr。
func stepDeltas(c Color, pt PieceType) []delta {
	f := forward(c)
	switch pt {
	case Pawn:
		return []delta{{0, f}}
	case Knight:
		return []delta{{-1, 2 * f}, {1, 2 * f}}
	case Silver:
		return []delta{{0, f}, {-1, f}, {1, f}, {-1, -f}, {1, -f}}
	case Gold, ProPawn, ProLance, ProKnight, ProSilver:
		return []delta{{0, f}, {-1, f}, {1, f}, {-1, 0}, {1, 0}, {0, -f}}
	case King:
		return append(append([]delta{}, orthogonal...), diagonal...)
	case Horse:
		return orthogonal
	case Dragon:
		return diagonal
	}
	return nil
}

func rayDeltas(c Color, pt PieceType) []delta {
	switch pt {
	case Lance:
		return []delta{{0, forward(c)}}
	case Bishop, Horse:
		return diagonal
	case Rook, Dragon:
		return orthogonal
	}
	return nil
}

func initAttacks() {
	for c := Black; c <= White; c++ {
		for pt := Pawn; pt <= Dragon; pt++ {
			ds := stepDeltas(c, pt)
			for s := Square(0); s < NumSquares; s++ {
				var bb Bitboard
				for _, d := range ds {
					f, r := s.File()+d.df, s.Rank()+d.dr
					if onBoard(f, r) {
						bb = bb.With(SquareAt(f, r))
					}
				}
				stepAttacks[c][pt][s] = bb
			}
		}
	}

	all := append(append([]delta{}, orthogonal...), diagonal...)
	for a := Square(0); a < NumSquares; a++ {
		for _, d := range all {
			var ray Bitboard
			f, r := a.File()+d.df, a.Rank()+d.dr
			for onBoard(f, r) {
				b := SquareAt(f, r)
				betweenBB[a][b] = ray
				ray = ray.With(b)
				f, r = f+d.df, r+d.dr
			}
		}
	}
	for a := Square(0); a < NumSquares; a++ {
		for _, d := range all {
			full := SquareBB(a).Or(walk(a, d, EmptyBB)).Or(walk(a, delta{-d.df, -d.dr}, EmptyBB))
			walk(a, d, EmptyBB).ForEach(func(b Square) {
				lineBB[a][b] = full
			})
		}
	}
}

func ensureAttacks() { attackOnce.Do(initAttacks) }

// walk 沿一个方向滑行，遇到第一个占用格（含）即停。
func walk(s Square, d delta, occ Bitboard) Bitboard {
	var out Bitboard
	f, r := s.File()+d.df, s.Rank()+d.dr
	for onBoard(f, r) {
		t := SquareAt(f, r)
		out = out.With(t)
		if occ.Has(t) {
			break
		}
		f, r = f+d.df, r+d.dr
	}
	return out
}

// AttacksFrom returns the squares a piece of the given color and type on s
// attacks under occupancy occ. Own pieces are not masked out.
func AttacksFrom(c Color, pt PieceType, s Square, occ Bitboard) Bitboard {
	ensureAttacks()
	if !c.valid() || !pt.Valid() {
		panic(fmt.Sprintf("shogi: attacks for %v %v", c, pt))
	}
	bb := stepAttacks[c][pt][s]
	for _, d := range rayDeltas(c, pt) {
		bb = bb.Or(walk(s, d, occ))
	}
	return bb
}

// Attacks is the union of AttacksFrom over every square in pieces.
func Attacks(c Color, pt PieceType, pieces, occ Bitboard) Bitboard {
	var out Bitboard
	pieces.ForEach(func(s Square) {
		out = out.Or(AttacksFrom(c, pt, s, occ))
	})
	return out
}

// between 两格同线时返回严格位于其间的格子，否则为空。
func between(a, b Square) Bitboard {
	ensureAttacks()
	return betweenBB[a][b]
}

// line 返回穿过 a、b 的整条直线（不同线为空）。
func line(a, b Square) Bitboard {
	ensureAttacks()
	return lineBB[a][b]
}
