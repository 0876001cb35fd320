package shogi

import (
	"math/bits"
	"strings"
)

// Bitboard is an 81-bit square set: lo holds squares 0..63, hi holds 64..80.
type Bitboard struct {
	lo, hi uint64
}

const hiMask = uint64(1)<<(NumSquares-64) - 1

var (
	EmptyBB = Bitboard{}
	FullBB  = Bitboard{lo: ^uint64(0), hi: hiMask}
)

func SquareBB(s Square) Bitboard {
	switch {
	case s < 0 || s >= NumSquares:
		return EmptyBB
	case s < 64:
		return Bitboard{lo: 1 << uint(s)}
	default:
		return Bitboard{hi: 1 << uint(s-64)}
	}
}

func (b Bitboard) Has(s Square) bool {
	switch {
	case s < 0 || s >= NumSquares:
		return false
	case s < 64:
		return b.lo&(1<<uint(s)) != 0
	default:
		return b.hi&(1<<uint(s-64)) != 0
	}
}

func (b Bitboard) With(s Square) Bitboard    { return b.Or(SquareBB(s)) }
func (b Bitboard) Without(s Square) Bitboard { return b.AndNot(SquareBB(s)) }

func (b Bitboard) Or(o Bitboard) Bitboard     { return Bitboard{b.lo | o.lo, b.hi | o.hi} }
func (b Bitboard) And(o Bitboard) Bitboard    { return Bitboard{b.lo & o.lo, b.hi & o.hi} }
func (b Bitboard) AndNot(o Bitboard) Bitboard { return Bitboard{b.lo &^ o.lo, b.hi &^ o.hi} }
func (b Bitboard) Not() Bitboard              { return Bitboard{^b.lo, ^b.hi & hiMask} }

func (b Bitboard) IsEmpty() bool { return b.lo == 0 && b.hi == 0 }
func (b Bitboard) Any() bool     { return !b.IsEmpty() }

func (b Bitboard) Count() int { return bits.OnesCount64(b.lo) + bits.OnesCount64(b.hi) }

// First returns the lowest square in the set, or NoSquare.
func (b Bitboard) First() Square {
	if b.lo != 0 {
		return Square(bits.TrailingZeros64(b.lo))
	}
	if b.hi != 0 {
		return Square(64 + bits.TrailingZeros64(b.hi))
	}
	return NoSquare
}

func (b Bitboard) PopFirst() (Square, Bitboard) {
	s := b.First()
	if s == NoSquare {
		return s, b
	}
	return s, b.Without(s)
}

func (b Bitboard) ForEach(fn func(Square)) {
	for bb := b; bb.Any(); {
		var s Square
		s, bb = bb.PopFirst()
		fn(s)
	}
}

func (b Bitboard) Squares() []Square {
	out := make([]Square, 0, b.Count())
	b.ForEach(func(s Square) { out = append(out, s) })
	return out
}

// String draws the set like a shogi diagram: file 9 on the left, rank 1 on top.
func (b Bitboard) String() string {
	var sb strings.Builder
	for rank := 1; rank <= Ranks; rank++ {
		for file := Files; file >= 1; file-- {
			if b.Has(SquareAt(file, rank)) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('.')
			}
			if file > 1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

var (
	fileBB [Files + 1]Bitboard
	rankBB [Ranks + 1]Bitboard
)

func init() {
	for file := 1; file <= Files; file++ {
		for rank := 1; rank <= Ranks; rank++ {
			s := SquareAt(file, rank)
			fileBB[file] = fileBB[file].With(s)
			rankBB[rank] = rankBB[rank].With(s)
		}
	}
}
