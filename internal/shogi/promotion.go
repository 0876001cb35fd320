package shogi

// promotionOptions 返回一步盘上走法的不成/成两种变化各自是否允许。
// 金、玉和已成的駒只有不成；进出敌阵时可选；不成会成为死驹时必须成。
func promotionOptions(c Color, pt PieceType, from, to Square) Verdict {
	if !pt.CanPromote() {
		return Verdict{NonPromoting: true}
	}
	if !inPromotionZone(c, from.Rank()) && !inPromotionZone(c, to.Rank()) {
		return Verdict{NonPromoting: true}
	}
	return Verdict{
		NonPromoting: !isDeadRank(c, pt, to.Rank()),
		Promoting:    true,
	}
}

// expand 按先不成后成的顺序展开为具体走法。
func expand(m Move, v Verdict, emit func(Move) bool) bool {
	if v.NonPromoting {
		m.Promote = false
		if !emit(m) {
			return false
		}
	}
	if v.Promoting {
		m.Promote = true
		if !emit(m) {
			return false
		}
	}
	return true
}
