package shogi

// AttackersTo 返回 by 方所有攻击 s 格的駒。
// 利用走法对称性：从 s 以对方颜色生成攻击范围，再与 by 方对应駒种求交。
func (pl *Placement) AttackersTo(s Square, by Color, occ Bitboard) Bitboard {
	rev := by.Opponent()
	var out Bitboard
	for pt := Pawn; pt <= Dragon; pt++ {
		lane := pl.Pieces[by][pt]
		if lane.IsEmpty() {
			continue
		}
		out = out.Or(AttacksFrom(rev, pt, s, occ).And(lane))
	}
	return out
}

// IsAttacked 判断 s 是否被 by 方攻击。
func (pl *Placement) IsAttacked(s Square, by Color, occ Bitboard) bool {
	return pl.AttackersTo(s, by, occ).Any()
}

type checkInfo struct {
	count    CheckCount
	checkers Bitboard
	// 解除单将时非王子必须落到的格子；未被将为全盘，双将为空。
	necessary Bitboard
}

func (pl *Placement) checkState(side Color) (checkInfo, error) {
	k := pl.king(side)
	if k == NoSquare {
		return checkInfo{}, newError(KindMissingKing, NoSquare, "%v king missing", side)
	}
	checkers := pl.AttackersTo(k, side.Opponent(), pl.Occupied)
	switch n := checkers.Count(); {
	case n == 0:
		return checkInfo{count: NotInCheck, necessary: FullBB}, nil
	case n == 1:
		c := checkers.First()
		nec := checkers
		if pl.pieceAt(c).Type().IsSlider() {
			nec = nec.Or(between(c, k))
		}
		return checkInfo{count: SingleCheck, checkers: checkers, necessary: nec}, nil
	default:
		return checkInfo{count: DoubleCheck, checkers: checkers}, nil
	}
}

// pinned 返回被敌方飞驹钉在己方玉前的己方駒。
func (pl *Placement) pinned(side Color) Bitboard {
	k := pl.king(side)
	if k == NoSquare {
		return EmptyBB
	}
	enemy := side.Opponent()
	var out Bitboard
	for _, pt := range [...]PieceType{Lance, Bishop, Rook, Horse, Dragon} {
		pl.Pieces[enemy][pt].ForEach(func(sn Square) {
			if !AttacksFrom(enemy, pt, sn, EmptyBB).Has(k) {
				return
			}
			blockers := between(sn, k).And(pl.Occupied)
			if blockers.Count() == 1 && blockers.And(pl.ByColor[side]).Any() {
				out = out.Or(blockers)
			}
		})
	}
	return out
}

// IsInCheck reports whether side's king is attacked. Broken boards, an
// invalid side and a missing king are returned as errors.
func (p *Position) IsInCheck(side Color) (bool, error) {
	if !side.valid() {
		return false, newError(KindInvalidSide, NoSquare, "invalid side %d", int(side))
	}
	pl, err := NewPlacement(&p.Board)
	if err != nil {
		return false, err
	}
	k := pl.king(side)
	if k == NoSquare {
		return false, newError(KindMissingKing, NoSquare, "%v king missing", side)
	}
	return pl.IsAttacked(k, side.Opponent(), pl.Occupied), nil
}
