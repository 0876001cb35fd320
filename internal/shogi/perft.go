package shogi

// Perft 统计从 p 出发、深度为 depth 的叶子节点数（手番取 p.SideToMove）。
func Perft(p *Position, depth int) (uint64, error) {
	if depth <= 0 {
		return 1, nil
	}
	moves, err := p.LegalMoves(p.SideToMove)
	if err != nil {
		return 0, err
	}
	if depth == 1 {
		return uint64(len(moves)), nil
	}
	var total uint64
	for _, m := range moves {
		np, ok := p.ApplyMove(m)
		if !ok {
			panic("shogi: generated move does not apply: " + m.USI())
		}
		n, err := Perft(np, depth-1)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

type DivideEntry struct {
	Move  Move
	Nodes uint64
}

// Divide 按根节点着法拆分 perft 结果，顺序与 LegalMoves 相同。
func Divide(p *Position, depth int) ([]DivideEntry, error) {
	moves, err := p.LegalMoves(p.SideToMove)
	if err != nil {
		return nil, err
	}
	out := make([]DivideEntry, len(moves))
	for i, m := range moves {
		np, ok := p.ApplyMove(m)
		if !ok {
			panic("shogi: generated move does not apply: " + m.USI())
		}
		n, err := Perft(np, depth-1)
		if err != nil {
			return nil, err
		}
		out[i] = DivideEntry{Move: m, Nodes: n}
	}
	return out, nil
}
