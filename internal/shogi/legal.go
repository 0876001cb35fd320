package shogi

func (p *Position) prepare(side Color) (*generator, error) {
	if err := p.Validate(side); err != nil {
		return nil, err
	}
	return newGenerator(p, side, false)
}

// LegalMoves 返回 side 的全部合法着（成/不成分别列出）。
// 顺序固定：盘上走法按駒种、起点、终点升序，不成在前；随后是打ち駒，按駒种、格子升序。
func (p *Position) LegalMoves(side Color) ([]Move, error) {
	g, err := p.prepare(side)
	if err != nil {
		return nil, err
	}
	moves := make([]Move, 0, 128)
	g.generate(func(m Move) bool {
		moves = append(moves, m)
		return true
	})
	return moves, nil
}

// IsLegalMove reports which promotion variants of m are legal for side.
// Malformed candidates (out of range squares, empty origin, wrong side,
// mismatched piece or capture, empty hand) return an error; a well-formed
// but illegal move returns the zero Verdict.
func (p *Position) IsLegalMove(side Color, m Move) (Verdict, error) {
	g, err := p.prepare(side)
	if err != nil {
		return Verdict{}, err
	}
	if err := p.validateCandidate(side, m); err != nil {
		return Verdict{}, err
	}
	if m.IsDrop() {
		return g.dropVerdict(m.Piece.Type(), m.To), nil
	}
	return g.boardVerdict(m.From, m.To), nil
}

// CheckCount 返回 side 的玉被几枚駒将军（0/1/2）。
func (p *Position) CheckCount(side Color) (CheckCount, error) {
	if err := p.Validate(side); err != nil {
		return NotInCheck, err
	}
	pl, err := NewPlacement(&p.Board)
	if err != nil {
		return NotInCheck, err
	}
	ci, err := pl.checkState(side)
	if err != nil {
		return NotInCheck, err
	}
	return ci.count, nil
}

// HasLegalMove 找到第一手合法着即返回。
func (p *Position) HasLegalMove(side Color) (bool, error) {
	g, err := p.prepare(side)
	if err != nil {
		return false, err
	}
	return g.any(), nil
}

// IsCheckmate 被将军且无合法着。
func (p *Position) IsCheckmate(side Color) (bool, error) {
	g, err := p.prepare(side)
	if err != nil {
		return false, err
	}
	return g.ci.count != NotInCheck && !g.any(), nil
}

// GenerateLegalMoves enumerates side's legal moves for a snapshot given as
// separate parts.
func GenerateLegalMoves(side Color, board Board, hands [NumColors]Hand) ([]Move, error) {
	p := Position{Board: board, Hands: hands, SideToMove: side}
	return p.LegalMoves(side)
}

func IsLegalMove(side Color, board Board, hands [NumColors]Hand, m Move) (Verdict, error) {
	p := Position{Board: board, Hands: hands, SideToMove: side}
	return p.IsLegalMove(side, m)
}

func KingCheckCount(side Color, board Board) (CheckCount, error) {
	p := Position{Board: board, SideToMove: side}
	return p.CheckCount(side)
}
