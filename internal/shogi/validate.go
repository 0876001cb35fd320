package shogi

// Validate checks that the snapshot is a board the engine can reason about
// for side: valid codes, side's king present, no duplicate kings, piece
// totals within one set, no nifu, no immobile unpromoted piece, sane hands.
// The opponent's king may be absent (tsume problems).
func (p *Position) Validate(side Color) error {
	if !side.valid() {
		return newError(KindInvalidSide, NoSquare, "invalid side %d", int(side))
	}

	var kings [NumColors]int
	var totals [PieceTypeCount]int
	var pawnsOnFile [NumColors][Files + 1]int
	for i, pc := range p.Board {
		if pc == NoPiece {
			continue
		}
		sq := Square(i)
		if !pc.Valid() {
			return newError(KindInvalidPiece, sq, "invalid piece code %d at %v", int(pc), sq)
		}
		c, pt := pc.Color(), pc.Type()
		totals[pt.Base()]++
		switch pt {
		case King:
			kings[c]++
		case Pawn:
			pawnsOnFile[c][sq.File()]++
			if pawnsOnFile[c][sq.File()] > 1 {
				return newError(KindDoublePawn, sq, "%v has two pawns on file %d", c, sq.File())
			}
		}
		if isDeadRank(c, pt, sq.Rank()) {
			return newError(KindDeadPiece, sq, "%v on %v can never move", pc, sq)
		}
	}

	for c := Black; c <= White; c++ {
		if kings[c] > 1 {
			return newError(KindDuplicateKing, NoSquare, "%v has %d kings", c, kings[c])
		}
	}
	if kings[side] == 0 {
		return newError(KindMissingKing, NoSquare, "%v king missing", side)
	}

	for c := Black; c <= White; c++ {
		h := &p.Hands[c]
		for pt := 0; pt < PieceTypeCount; pt++ {
			n := h[pt]
			switch {
			case n < 0:
				return newError(KindInvalidHand, HandOf(c), "%v hand holds %d %v", c, n, PieceType(pt))
			case n > 0 && !PieceType(pt).Droppable():
				return newError(KindInvalidHand, HandOf(c), "%v cannot be held in hand", PieceType(pt))
			}
			totals[pt] += n
		}
	}

	for pt := Pawn; pt <= King; pt++ {
		if totals[pt] > maxPieces[pt] {
			return newError(KindTooManyPieces, NoSquare, "%d %vs, a set has %d", totals[pt], pt, maxPieces[pt])
		}
	}
	return nil
}

// validateCandidate 检查候选着本身是否能够被判定；不合法但形式正确的着不报错。
func (p *Position) validateCandidate(side Color, m Move) error {
	if !m.To.OnBoard() {
		return newError(KindInvalidSquare, m.To, "destination %d out of range", int(m.To))
	}
	if m.Captured != NoPiece && m.Captured != p.Board[m.To] {
		return newError(KindCaptureMismatch, m.To, "declared capture %v, board has %v", m.Captured, p.Board[m.To])
	}

	if m.From.IsHand() {
		if m.From != HandOf(side) {
			return newError(KindWrongSide, m.From, "%v cannot drop from %v", side, m.From)
		}
		if !m.Piece.Valid() {
			return newError(KindInvalidPiece, m.From, "drop without a valid piece")
		}
		if m.Piece.Color() != side {
			return newError(KindWrongSide, m.From, "%v cannot drop %v", side, m.Piece)
		}
		pt := m.Piece.Type()
		if !pt.Droppable() {
			return newError(KindInvalidPiece, m.From, "%v cannot be dropped", pt)
		}
		if p.Hands[side][pt] <= 0 {
			return newError(KindEmptyHand, m.From, "%v has no %v in hand", side, pt)
		}
		return nil
	}

	if !m.From.OnBoard() {
		return newError(KindInvalidSquare, m.From, "origin %d out of range", int(m.From))
	}
	pc := p.Board[m.From]
	if pc == NoPiece {
		return newError(KindEmptyOrigin, m.From, "no piece on %v", m.From)
	}
	if pc.Color() != side {
		return newError(KindWrongSide, m.From, "%v on %v does not belong to %v", pc, m.From, side)
	}
	if m.Piece != NoPiece && m.Piece != pc {
		return newError(KindPieceMismatch, m.From, "declared %v, board has %v on %v", m.Piece, pc, m.From)
	}
	return nil
}
