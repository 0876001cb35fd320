package shogi

// pawnDropAllowed 打歩詰めの判定。只在歩打ちで直接王手になる場合才模拟。
func (g *generator) pawnDropAllowed(to Square) bool {
	if g.nested {
		return true
	}
	ek := g.pl.king(g.side.Opponent())
	if ek == NoSquare || !AttacksFrom(g.side, Pawn, to, EmptyBB).Has(ek) {
		return true
	}
	return !g.pos.isPawnDropMate(g.side, to)
}

// isPawnDropMate 在局面副本上打歩，再问对方是否还有合法着。
// 内层枚举 nested=true，递归深度固定为一层。
func (p *Position) isPawnDropMate(side Color, to Square) bool {
	np := *p
	np.Board[to] = MakePiece(side, Pawn)
	np.Hands[side][Pawn]--
	np.SideToMove = side.Opponent()
	np.Hash = 0

	ng, err := newGenerator(&np, side.Opponent(), true)
	if err != nil {
		panic("shogi: drop simulation lost the king: " + err.Error())
	}
	if ng.ci.count == NotInCheck {
		return false
	}
	return !ng.any()
}
