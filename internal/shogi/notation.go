package shogi

import (
	"strconv"
	"strings"

	"golang.org/x/text/width"
)

// USI returns the move in USI form: "7g7f", "8h2b+", "P*5e".
func (m Move) USI() string {
	if m.IsDrop() {
		return string(sfenLetters[m.Piece.Type()]) + "*" + m.To.String()
	}
	s := m.From.String() + m.To.String()
	if m.Promote {
		s += "+"
	}
	return s
}

func parseUSISquare(s string) (Square, bool) {
	if len(s) != 2 || s[0] < '1' || s[0] > '9' || s[1] < 'a' || s[1] > 'i' {
		return NoSquare, false
	}
	return SquareAt(int(s[0]-'0'), int(s[1]-'a')+1), true
}

// ParseUSIMove resolves a USI move string against the position: the moving
// piece and any capture are read from the board, drops come from the hand
// of the side to move. The result is not checked for legality.
func (p *Position) ParseUSIMove(s string) (Move, error) {
	bad := func() error { return newError(KindInvalidMove, NoSquare, "bad USI move %q", s) }

	if len(s) == 4 && s[1] == '*' {
		pt, ok := sfenType(s[0])
		if !ok || !pt.Droppable() || s[0] < 'A' || s[0] > 'Z' {
			return Move{}, bad()
		}
		to, ok := parseUSISquare(s[2:])
		if !ok {
			return Move{}, bad()
		}
		return Move{From: HandOf(p.SideToMove), To: to, Piece: MakePiece(p.SideToMove, pt)}, nil
	}

	promote := strings.HasSuffix(s, "+")
	body := strings.TrimSuffix(s, "+")
	if len(body) != 4 {
		return Move{}, bad()
	}
	from, ok1 := parseUSISquare(body[:2])
	to, ok2 := parseUSISquare(body[2:])
	if !ok1 || !ok2 {
		return Move{}, bad()
	}
	return Move{
		From:     from,
		To:       to,
		Piece:    p.Board[from],
		Captured: p.Board[to],
		Promote:  promote,
	}, nil
}

var kanjiRanks = [...]string{"", "一", "二", "三", "四", "五", "六", "七", "八", "九"}

var kanjiPieces = [PieceTypeCount]string{
	"", "歩", "香", "桂", "銀", "金", "角", "飛", "玉",
	"と", "成香", "成桂", "成銀", "馬", "龍",
}

// Japanese 以「▲７六歩」形式表示 m。last 为上一手的落点，相同时写「同　」。
// 打ち駒只在盘上同种駒也能到达该格时加「打」；左右・上引等区别不做。
func (p *Position) Japanese(m Move, last Square) string {
	var sb strings.Builder
	if m.Piece.Color() == White {
		sb.WriteString("△")
	} else {
		sb.WriteString("▲")
	}

	if m.To == last {
		sb.WriteString("同　")
	} else {
		sb.WriteString(width.Widen.String(strconv.Itoa(m.To.File())))
		sb.WriteString(kanjiRanks[m.To.Rank()])
	}

	pt := m.Piece.Type()
	sb.WriteString(kanjiPieces[pt])

	switch {
	case m.IsDrop():
		if p.boardPieceReaches(m.Piece, m.To) {
			sb.WriteString("打")
		}
	case m.Promote:
		sb.WriteString("成")
	case pt.CanPromote():
		side := m.Piece.Color()
		if inPromotionZone(side, m.From.Rank()) || inPromotionZone(side, m.To.Rank()) {
			sb.WriteString("不成")
		}
	}
	return sb.String()
}

func (p *Position) boardPieceReaches(pc Piece, to Square) bool {
	moves, err := p.LegalMoves(pc.Color())
	if err != nil {
		return false
	}
	for _, m := range moves {
		if !m.IsDrop() && m.Piece == pc && m.To == to {
			return true
		}
	}
	return false
}
