package shogi

// deadSquares 打入后无法再移动的格子：歩・香は最奥 1 段，桂は奥 2 段。
func deadSquares(c Color, pt PieceType) Bitboard {
	var out Bitboard
	for rank := 1; rank <= Ranks; rank++ {
		if isDeadRank(c, pt, rank) {
			out = out.Or(rankBB[rank])
		}
	}
	return out
}

// dropTargets 返回某持驹可打的格子。二歩用整筋掩码在生成阶段排除。
func (g *generator) dropTargets(pt PieceType) Bitboard {
	if g.ci.count == DoubleCheck {
		return EmptyBB
	}
	t := g.pl.Occupied.Not().And(g.ci.necessary).AndNot(deadSquares(g.side, pt))
	if pt == Pawn {
		t = t.AndNot(g.pl.pawnFiles(g.side))
	}
	return t
}

func (g *generator) dropMoves(emit func(Move) bool) bool {
	hand := &g.pos.Hands[g.side]
	from := HandOf(g.side)
	for _, pt := range HandTypes {
		if hand[pt] <= 0 {
			continue
		}
		pc := MakePiece(g.side, pt)
		for targets := g.dropTargets(pt); targets.Any(); {
			var to Square
			to, targets = targets.PopFirst()
			if pt == Pawn && !g.pawnDropAllowed(to) {
				continue
			}
			if !emit(Move{From: from, To: to, Piece: pc}) {
				return false
			}
		}
	}
	return true
}

func (g *generator) dropVerdict(pt PieceType, to Square) Verdict {
	if !g.dropTargets(pt).Has(to) {
		return Verdict{}
	}
	if pt == Pawn && !g.pawnDropAllowed(to) {
		return Verdict{}
	}
	return Verdict{NonPromoting: true}
}
