package shogi

type Color int8

const (
	NoColor Color = -1
	Black   Color = 0 // 先手，向 1 段前进
	White   Color = 1 // 後手
)

const NumColors = 2

func (c Color) Opponent() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	}
	return NoColor
}

func (c Color) valid() bool { return c == Black || c == White }

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	}
	return "none"
}

type PieceType int8

const (
	NoPieceType PieceType = iota
	Pawn                  // 歩
	Lance                 // 香
	Knight                // 桂
	Silver                // 銀
	Gold                  // 金
	Bishop                // 角
	Rook                  // 飛
	King                  // 玉
	ProPawn               // と
	ProLance              // 成香
	ProKnight             // 成桂
	ProSilver             // 成銀
	Horse                 // 馬
	Dragon                // 龍
)

// PieceTypeCount 为数组长度，下标 0 保留不用。
const PieceTypeCount = int(Dragon) + 1

// 可以成为持驹（持ち駒）的駒种
var HandTypes = [...]PieceType{Pawn, Lance, Knight, Silver, Gold, Bishop, Rook}

var promotedOf = [PieceTypeCount]PieceType{
	Pawn:   ProPawn,
	Lance:  ProLance,
	Knight: ProKnight,
	Silver: ProSilver,
	Bishop: Horse,
	Rook:   Dragon,
}

var baseOf = [PieceTypeCount]PieceType{
	Pawn: Pawn, Lance: Lance, Knight: Knight, Silver: Silver, Gold: Gold,
	Bishop: Bishop, Rook: Rook, King: King,
	ProPawn: Pawn, ProLance: Lance, ProKnight: Knight, ProSilver: Silver,
	Horse: Bishop, Dragon: Rook,
}

// 一副棋子中各駒种的总枚数（双方合计）
var maxPieces = [PieceTypeCount]int{
	Pawn: 18, Lance: 4, Knight: 4, Silver: 4, Gold: 4, Bishop: 2, Rook: 2, King: 2,
}

func (pt PieceType) Valid() bool { return pt >= Pawn && pt <= Dragon }

func (pt PieceType) CanPromote() bool { return pt.Valid() && promotedOf[pt] != NoPieceType }

func (pt PieceType) IsPromoted() bool { return pt >= ProPawn && pt <= Dragon }

// Promoted returns the promoted form, or pt itself when it cannot promote.
func (pt PieceType) Promoted() PieceType {
	if pt.CanPromote() {
		return promotedOf[pt]
	}
	return pt
}

// Base strips promotion: the type a captured piece becomes in hand.
func (pt PieceType) Base() PieceType {
	if !pt.Valid() {
		return NoPieceType
	}
	return baseOf[pt]
}

func (pt PieceType) Droppable() bool { return pt >= Pawn && pt <= Rook }

// 飞驹（可以连续滑行）
func (pt PieceType) IsSlider() bool {
	switch pt {
	case Lance, Bishop, Rook, Horse, Dragon:
		return true
	}
	return false
}

var pieceTypeNames = [PieceTypeCount]string{
	"none", "pawn", "lance", "knight", "silver", "gold", "bishop", "rook", "king",
	"+pawn", "+lance", "+knight", "+silver", "horse", "dragon",
}

func (pt PieceType) String() string {
	if pt < 0 || int(pt) >= PieceTypeCount {
		return "invalid"
	}
	return pieceTypeNames[pt]
}

// Piece 0=空；>0 先手；<0 後手；abs=PieceType
type Piece int8

const NoPiece Piece = 0

func MakePiece(c Color, pt PieceType) Piece {
	if pt == NoPieceType || !c.valid() {
		return NoPiece
	}
	if c == Black {
		return Piece(pt)
	}
	return -Piece(pt)
}

func (p Piece) Type() PieceType {
	if p < 0 {
		return PieceType(-p)
	}
	return PieceType(p)
}

func (p Piece) Color() Color {
	if p == 0 {
		return NoColor
	}
	if p > 0 {
		return Black
	}
	return White
}

func (p Piece) Valid() bool { return p != NoPiece && p.Type().Valid() }

// 盘面数组使用的单字母编码，大写为先手。
const blackCodes = "?PLNSGBRKQMOTCU"

// Code returns the one-letter board code, ' ' for an empty square.
func (p Piece) Code() byte {
	if p == NoPiece {
		return ' '
	}
	pt := p.Type()
	if !pt.Valid() {
		return '?'
	}
	ch := blackCodes[pt]
	if p.Color() == White {
		ch += 'a' - 'A'
	}
	return ch
}

// PieceFromCode parses a one-letter board code. ' ' and '.' are empty squares.
func PieceFromCode(ch byte) (Piece, error) {
	if ch == ' ' || ch == '.' || ch == 0 {
		return NoPiece, nil
	}
	c := Black
	up := ch
	if ch >= 'a' && ch <= 'z' {
		c = White
		up = ch - ('a' - 'A')
	}
	for i := 1; i < len(blackCodes); i++ {
		if blackCodes[i] == up {
			return MakePiece(c, PieceType(i)), nil
		}
	}
	return NoPiece, newError(KindInvalidPiece, NoSquare, "unknown piece code %q", ch)
}

func (p Piece) String() string {
	if p == NoPiece {
		return "empty"
	}
	return p.Color().String() + " " + p.Type().String()
}

type CheckCount int

const (
	NotInCheck  CheckCount = 0
	SingleCheck CheckCount = 1
	DoubleCheck CheckCount = 2
)

// Move: From 为持ち駒时是手番方的駒台（BlackHand / WhiteHand）。
type Move struct {
	From     Square `json:"from"`
	To       Square `json:"to"`
	Piece    Piece  `json:"piece"`
	Captured Piece  `json:"captured,omitempty"`
	Promote  bool   `json:"promote,omitempty"`
}

func (m Move) IsDrop() bool { return m.From.IsHand() }

// Verdict tells which variants of a board move are legal. Both can be true,
// in which case the player has to be offered the choice.
type Verdict struct {
	NonPromoting bool `json:"non_promoting"`
	Promoting    bool `json:"promoting"`
}

func (v Verdict) Legal() bool { return v.NonPromoting || v.Promoting }

// Allows reports whether the variant with the given promotion flag is legal.
func (v Verdict) Allows(promote bool) bool {
	if promote {
		return v.Promoting
	}
	return v.NonPromoting
}

type Hand [PieceTypeCount]int

func (h Hand) Empty() bool {
	for _, pt := range HandTypes {
		if h[pt] > 0 {
			return false
		}
	}
	return true
}

type Board [NumSquares]Piece

// Position = 盘面 + 双方持驹 + 手番；局面一律按值传递，引擎不修改。
type Position struct {
	Board      Board
	Hands      [NumColors]Hand
	SideToMove Color
	Hash       uint64
}
