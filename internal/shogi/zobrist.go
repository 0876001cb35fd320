package shogi

import "sync"

// 持驹枚数上限（歩 18 枚），下标即枚数
const zobristMaxHand = 18

var (
	zobristOnce sync.Once

	zobristPieces [NumColors][PieceTypeCount][NumSquares]uint64
	zobristHands  [NumColors][PieceTypeCount][zobristMaxHand + 1]uint64
	zobristSide   uint64
)

func initZobrist() {
	zobristOnce.Do(func() {
		seed := uint64(0x9E3779B97F4A7C15)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}

		for c := 0; c < NumColors; c++ {
			for pt := 1; pt < PieceTypeCount; pt++ {
				for sq := 0; sq < NumSquares; sq++ {
					zobristPieces[c][pt][sq] = next()
				}
			}
			for _, pt := range HandTypes {
				// 0 枚不参与哈希
				for n := 1; n <= zobristMaxHand; n++ {
					zobristHands[c][pt][n] = next()
				}
			}
		}
		zobristSide = next()
	})
}

func pieceHashKey(pc Piece, sq Square) uint64 {
	if !pc.Valid() || !sq.OnBoard() {
		return 0
	}
	initZobrist()
	return zobristPieces[pc.Color()][pc.Type()][sq]
}

func handHashKey(c Color, pt PieceType, n int) uint64 {
	if !c.valid() || !pt.Droppable() || n <= 0 || n > zobristMaxHand {
		return 0
	}
	initZobrist()
	return zobristHands[c][pt][n]
}

// CalculateHash 全量计算当前局面的 Zobrist 哈希（盘面、持驹、手番）。
func (p *Position) CalculateHash() uint64 {
	initZobrist()

	var h uint64
	for sq, pc := range p.Board {
		if pc == NoPiece {
			continue
		}
		h ^= pieceHashKey(pc, Square(sq))
	}
	for c := Black; c <= White; c++ {
		for _, pt := range HandTypes {
			h ^= handHashKey(c, pt, p.Hands[c][pt])
		}
	}
	if p.SideToMove == White {
		h ^= zobristSide
	}
	return h
}

// EnsureHash 确保 Position.Hash 已初始化；返回当前哈希值。
func (p *Position) EnsureHash() uint64 {
	if p.Hash == 0 {
		p.Hash = p.CalculateHash()
	}
	return p.Hash
}

func (p *Position) hashOrCalculate() uint64 {
	if p.Hash != 0 {
		return p.Hash
	}
	return p.CalculateHash()
}
