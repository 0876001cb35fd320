package shogi

// legalTargets 过滤掉会让己方玉处于被攻击状态的终点。
//
// 玉：终点在去掉玉原位后的占用下不能被攻击（沿飞驹射线后退不算安全）。
// 其他駒：双将时全部排除；单将时只能落在 necessary 上（吃掉将军駒或合驹）；
// 被钉住的駒只能沿玉所在直线移动。
func (g *generator) legalTargets(pt PieceType, from Square, targets Bitboard) Bitboard {
	if pt == King {
		enemy := g.side.Opponent()
		occ := g.pl.Occupied.Without(from)
		var out Bitboard
		targets.ForEach(func(to Square) {
			if !g.pl.IsAttacked(to, enemy, occ) {
				out = out.With(to)
			}
		})
		return out
	}
	if g.ci.count == DoubleCheck {
		return EmptyBB
	}
	targets = targets.And(g.ci.necessary)
	if g.pinned.Has(from) {
		targets = targets.And(line(g.king, from))
	}
	return targets
}
