package shogi

// generator 保存一次调用内对某一方的全部中间结果；每次调用重新构建。
type generator struct {
	pos    *Position
	side   Color
	pl     Placement
	ci     checkInfo
	king   Square
	pinned Bitboard
	// 打歩詰め判定内部的枚举：不再递归判定
	nested bool
}

func newGenerator(p *Position, side Color, nested bool) (*generator, error) {
	pl, err := NewPlacement(&p.Board)
	if err != nil {
		return nil, err
	}
	ci, err := pl.checkState(side)
	if err != nil {
		return nil, err
	}
	return &generator{
		pos:    p,
		side:   side,
		pl:     pl,
		ci:     ci,
		king:   pl.king(side),
		pinned: pl.pinned(side),
		nested: nested,
	}, nil
}

// generate 依次输出盘上走法与打ち駒；emit 返回 false 时立即停止。
func (g *generator) generate(emit func(Move) bool) bool {
	if !g.boardMoves(emit) {
		return false
	}
	return g.dropMoves(emit)
}

func (g *generator) any() bool {
	found := false
	g.generate(func(Move) bool {
		found = true
		return false
	})
	return found
}

// boardMoves 按駒种、起点、终点升序枚举盘上走法，成/不成展开。
func (g *generator) boardMoves(emit func(Move) bool) bool {
	own := g.pl.ByColor[g.side]
	for pt := Pawn; pt <= Dragon; pt++ {
		if g.ci.count == DoubleCheck && pt != King {
			continue
		}
		pc := MakePiece(g.side, pt)
		for origins := g.pl.Pieces[g.side][pt]; origins.Any(); {
			var from Square
			from, origins = origins.PopFirst()
			targets := AttacksFrom(g.side, pt, from, g.pl.Occupied).AndNot(own)
			targets = g.legalTargets(pt, from, targets)
			for targets.Any() {
				var to Square
				to, targets = targets.PopFirst()
				m := Move{From: from, To: to, Piece: pc, Captured: g.pos.Board[to]}
				if !expand(m, promotionOptions(g.side, pt, from, to), emit) {
					return false
				}
			}
		}
	}
	return true
}

// boardVerdict 只针对一个起点和终点跑完整条流水线。
func (g *generator) boardVerdict(from, to Square) Verdict {
	pt := g.pos.Board[from].Type()
	targets := AttacksFrom(g.side, pt, from, g.pl.Occupied).AndNot(g.pl.ByColor[g.side])
	if !targets.Has(to) {
		return Verdict{}
	}
	if !g.legalTargets(pt, from, SquareBB(to)).Has(to) {
		return Verdict{}
	}
	return promotionOptions(g.side, pt, from, to)
}
