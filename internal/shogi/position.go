package shogi

// NewInitialPosition 返回平手初期局面（先手番）。
func NewInitialPosition() *Position {
	p, err := DecodeSFEN(StartSFEN)
	if err != nil {
		panic("invalid start position: " + err.Error())
	}
	return p
}

// ApplyMove 返回走完 m 之后的新局面，原局面不变。
// 这里只检查着法的形式（起点有手番方的駒、不吃自己的駒和玉、持驹足够），合法性由上层保证。
func (p *Position) ApplyMove(m Move) (*Position, bool) {
	side := p.SideToMove
	if !side.valid() || !m.To.OnBoard() {
		return nil, false
	}

	initZobrist()
	np := *p
	h := p.hashOrCalculate()

	if m.IsDrop() {
		pt := m.Piece.Type()
		if m.From != HandOf(side) || m.Piece.Color() != side || !pt.Droppable() {
			return nil, false
		}
		n := p.Hands[side][pt]
		if n <= 0 || p.Board[m.To] != NoPiece {
			return nil, false
		}
		np.Hands[side][pt] = n - 1
		np.Board[m.To] = m.Piece
		h ^= handHashKey(side, pt, n) ^ handHashKey(side, pt, n-1)
		h ^= pieceHashKey(m.Piece, m.To)
	} else {
		if !m.From.OnBoard() {
			return nil, false
		}
		pc := p.Board[m.From]
		if pc == NoPiece || pc.Color() != side {
			return nil, false
		}
		captured := p.Board[m.To]
		if captured != NoPiece && (captured.Color() == side || captured.Type() == King) {
			return nil, false
		}
		moved := pc
		if m.Promote {
			if !pc.Type().CanPromote() {
				return nil, false
			}
			moved = MakePiece(side, pc.Type().Promoted())
		}

		np.Board[m.From] = NoPiece
		np.Board[m.To] = moved
		// 增量 Zobrist：移除 from 的子、移除被吃子（若有）、加入 to 的子、持驹 +1。
		h ^= pieceHashKey(pc, m.From) ^ pieceHashKey(moved, m.To)
		if captured != NoPiece {
			h ^= pieceHashKey(captured, m.To)
			base := captured.Type().Base()
			n := p.Hands[side][base]
			np.Hands[side][base] = n + 1
			h ^= handHashKey(side, base, n) ^ handHashKey(side, base, n+1)
		}
	}

	np.SideToMove = side.Opponent()
	h ^= zobristSide
	np.Hash = h
	return &np, true
}
