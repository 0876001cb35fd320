package shogi

// Placement 是盘面的位棋盘视图：先后手 × 14 駒种 = 28 条，外加占用。
type Placement struct {
	Pieces   [NumColors][PieceTypeCount]Bitboard
	ByColor  [NumColors]Bitboard
	Occupied Bitboard
}

// NewPlacement builds the 28 piece lanes of a board. Exactly one bit is set
// per occupied square; an impossible piece code is reported, not guessed.
func NewPlacement(b *Board) (Placement, error) {
	var pl Placement
	for i, pc := range b {
		if pc == NoPiece {
			continue
		}
		if !pc.Valid() {
			return Placement{}, newError(KindInvalidPiece, Square(i), "invalid piece code %d at %v", int(pc), Square(i))
		}
		pl.put(pc, Square(i))
	}
	return pl, nil
}

func (pl *Placement) put(pc Piece, s Square) {
	c, pt := pc.Color(), pc.Type()
	pl.Pieces[c][pt] = pl.Pieces[c][pt].With(s)
	pl.ByColor[c] = pl.ByColor[c].With(s)
	pl.Occupied = pl.Occupied.With(s)
}

func (pl *Placement) remove(pc Piece, s Square) {
	c, pt := pc.Color(), pc.Type()
	pl.Pieces[c][pt] = pl.Pieces[c][pt].Without(s)
	pl.ByColor[c] = pl.ByColor[c].Without(s)
	pl.Occupied = pl.Occupied.Without(s)
}

// pieceAt 通过 28 条位棋盘反查某格上的駒。
func (pl *Placement) pieceAt(s Square) Piece {
	if !pl.Occupied.Has(s) {
		return NoPiece
	}
	for c := Black; c <= White; c++ {
		if !pl.ByColor[c].Has(s) {
			continue
		}
		for pt := Pawn; pt <= Dragon; pt++ {
			if pl.Pieces[c][pt].Has(s) {
				return MakePiece(c, pt)
			}
		}
	}
	return NoPiece
}

func (pl *Placement) king(c Color) Square {
	return pl.Pieces[c][King].First()
}

// pawnFiles 返回含有该方未成歩的筋的掩码（整筋置位）。
func (pl *Placement) pawnFiles(c Color) Bitboard {
	var out Bitboard
	pl.Pieces[c][Pawn].ForEach(func(s Square) {
		out = out.Or(fileBB[s.File()])
	})
	return out
}
