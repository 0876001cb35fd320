package shogi

import (
	"strconv"
	"strings"
)

// StartSFEN 平手初期局面
const StartSFEN = "lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b - 1"

var sfenLetters = [PieceTypeCount]byte{
	Pawn: 'P', Lance: 'L', Knight: 'N', Silver: 'S', Gold: 'G', Bishop: 'B', Rook: 'R', King: 'K',
}

// SFEN 持驹的书写顺序
var sfenHandOrder = [...]PieceType{Rook, Bishop, Gold, Silver, Knight, Lance, Pawn}

func sfenType(ch byte) (PieceType, bool) {
	up := ch
	if ch >= 'a' && ch <= 'z' {
		up = ch - ('a' - 'A')
	}
	for pt, l := range sfenLetters {
		if l != 0 && l == up {
			return PieceType(pt), true
		}
	}
	return NoPieceType, false
}

func sfenPiece(pc Piece) string {
	pt := pc.Type()
	l := sfenLetters[pt.Base()]
	if pc.Color() == White {
		l += 'a' - 'A'
	}
	if pt.IsPromoted() {
		return "+" + string(l)
	}
	return string(l)
}

func sfenError(format string, args ...any) error {
	return newError(KindInvalidSFEN, NoSquare, "sfen: "+format, args...)
}

// DecodeSFEN parses "board side hands [ply]". Only syntax is checked here;
// callers run Validate for the structural rules.
func DecodeSFEN(s string) (*Position, error) {
	fields := strings.Fields(s)
	if len(fields) > 0 && fields[0] == "sfen" {
		fields = fields[1:]
	}
	if len(fields) < 3 || len(fields) > 4 {
		return nil, sfenError("want 3 or 4 fields, got %d", len(fields))
	}

	var p Position
	rows := strings.Split(fields[0], "/")
	if len(rows) != Ranks {
		return nil, sfenError("want %d ranks, got %d", Ranks, len(rows))
	}
	for r, row := range rows {
		rank := r + 1
		file := Files
		promote := false
		for i := 0; i < len(row); i++ {
			ch := row[i]
			switch {
			case ch >= '1' && ch <= '9':
				if promote {
					return nil, sfenError("'+' before a digit in rank %d", rank)
				}
				file -= int(ch - '0')
			case ch == '+':
				if promote {
					return nil, sfenError("double '+' in rank %d", rank)
				}
				promote = true
			default:
				pt, ok := sfenType(ch)
				if !ok {
					return nil, sfenError("unknown piece %q", ch)
				}
				if file < 1 {
					return nil, sfenError("rank %d too long", rank)
				}
				if promote {
					if !pt.CanPromote() {
						return nil, sfenError("%v cannot promote", pt)
					}
					pt = pt.Promoted()
					promote = false
				}
				c := Black
				if ch >= 'a' && ch <= 'z' {
					c = White
				}
				p.Board[SquareAt(file, rank)] = MakePiece(c, pt)
				file--
			}
			if file < 0 {
				return nil, sfenError("rank %d too long", rank)
			}
		}
		if file != 0 || promote {
			return nil, sfenError("rank %d has the wrong length", rank)
		}
	}

	switch fields[1] {
	case "b":
		p.SideToMove = Black
	case "w":
		p.SideToMove = White
	default:
		return nil, sfenError("bad side %q", fields[1])
	}

	if fields[2] != "-" {
		n := 0
		for i := 0; i < len(fields[2]); i++ {
			ch := fields[2][i]
			if ch >= '0' && ch <= '9' {
				n = n*10 + int(ch-'0')
				continue
			}
			pt, ok := sfenType(ch)
			if !ok || !pt.Droppable() {
				return nil, sfenError("bad hand piece %q", ch)
			}
			if n == 0 {
				n = 1
			}
			c := Black
			if ch >= 'a' && ch <= 'z' {
				c = White
			}
			p.Hands[c][pt] += n
			n = 0
		}
		if n != 0 {
			return nil, sfenError("dangling count in hand %q", fields[2])
		}
	}

	if len(fields) == 4 {
		if _, err := strconv.Atoi(fields[3]); err != nil {
			return nil, sfenError("bad move number %q", fields[3])
		}
	}

	p.Hash = p.CalculateHash()
	return &p, nil
}

// SFEN encodes the position; the move number is always 1.
func (p *Position) SFEN() string {
	var sb strings.Builder
	for rank := 1; rank <= Ranks; rank++ {
		if rank > 1 {
			sb.WriteByte('/')
		}
		empty := 0
		for file := Files; file >= 1; file-- {
			pc := p.Board[SquareAt(file, rank)]
			if pc == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteString(sfenPiece(pc))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}

	sb.WriteByte(' ')
	if p.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	wrote := false
	for c := Black; c <= White; c++ {
		for _, pt := range sfenHandOrder {
			n := p.Hands[c][pt]
			if n <= 0 {
				continue
			}
			if n > 1 {
				sb.WriteString(strconv.Itoa(n))
			}
			sb.WriteString(sfenPiece(MakePiece(c, pt)))
			wrote = true
		}
	}
	if !wrote {
		sb.WriteByte('-')
	}
	sb.WriteString(" 1")
	return sb.String()
}
