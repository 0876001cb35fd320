package shogi

import "fmt"

const (
	Files      = 9
	Ranks      = 9
	NumSquares = Files * Ranks
)

// Square 盘上格子编号 (rank-1)*9 + (file-1)；另有两个駒台哨兵。
type Square int8

const (
	NoSquare  Square = -1
	BlackHand Square = NumSquares     // 先手駒台
	WhiteHand Square = NumSquares + 1 // 後手駒台
)

func SquareAt(file, rank int) Square {
	if !onBoard(file, rank) {
		return NoSquare
	}
	return Square((rank-1)*Files + (file - 1))
}

func onBoard(file, rank int) bool {
	return file >= 1 && file <= Files && rank >= 1 && rank <= Ranks
}

func (s Square) File() int { return int(s)%Files + 1 }
func (s Square) Rank() int { return int(s)/Files + 1 }

func (s Square) OnBoard() bool { return s >= 0 && s < NumSquares }
func (s Square) IsHand() bool  { return s == BlackHand || s == WhiteHand }

// HandOf returns the hand sentinel a side drops from.
func HandOf(c Color) Square {
	if c == White {
		return WhiteHand
	}
	return BlackHand
}

func (s Square) String() string {
	switch {
	case s == BlackHand:
		return "black-hand"
	case s == WhiteHand:
		return "white-hand"
	case s.OnBoard():
		return fmt.Sprintf("%d%c", s.File(), 'a'+byte(s.Rank()-1))
	}
	return "none"
}

// 前进方向：先手向 1 段（-1），後手向 9 段（+1）
func forward(c Color) int {
	if c == White {
		return +1
	}
	return -1
}

// relativeRank 以该方视角计的段：1 为最远的一段。
func relativeRank(c Color, rank int) int {
	if c == White {
		return Ranks + 1 - rank
	}
	return rank
}

// 敌阵（成り可能な 3 段）
func inPromotionZone(c Color, rank int) bool {
	return relativeRank(c, rank) <= 3
}

// 不成时再也无法移动的段：歩・香は最奥 1 段，桂は 2 段。
func isDeadRank(c Color, pt PieceType, rank int) bool {
	rr := relativeRank(c, rank)
	switch pt {
	case Pawn, Lance:
		return rr == 1
	case Knight:
		return rr <= 2
	}
	return false
}

func (b *Board) At(s Square) Piece {
	if !s.OnBoard() {
		return NoPiece
	}
	return b[s]
}

// kingSquare 找到某方的玉；不存在返回 NoSquare。
func (b *Board) kingSquare(c Color) Square {
	k := MakePiece(c, King)
	for sq, pc := range b {
		if pc == k {
			return Square(sq)
		}
	}
	return NoSquare
}

// BoardFromCodes builds a board from 81 one-letter codes, indexed like Square.
func BoardFromCodes(codes []byte) (Board, error) {
	var b Board
	if len(codes) != NumSquares {
		return b, newError(KindInvalidPiece, NoSquare, "board has %d squares, want %d", len(codes), NumSquares)
	}
	for i, ch := range codes {
		pc, err := PieceFromCode(ch)
		if err != nil {
			return b, newError(KindInvalidPiece, Square(i), "unknown piece code %q at %v", ch, Square(i))
		}
		b[i] = pc
	}
	return b, nil
}

// Codes is the inverse of BoardFromCodes.
func (b *Board) Codes() []byte {
	out := make([]byte, NumSquares)
	for i, pc := range b {
		out[i] = pc.Code()
	}
	return out
}
