package httpserver

import (
	"shogilegal/internal/shogi"
)

// 前端 / 对局控制器使用的招法结构。
// 优先使用 USI；为空时按 from/to/piece 字段解释（持ち駒的 from 为 81/82）。
type MoveDTO struct {
	USI      string `json:"usi,omitempty"`
	From     int    `json:"from"`
	To       int    `json:"to"`
	Piece    string `json:"piece,omitempty"`    // 单字母编码，大写先手
	Captured string `json:"captured,omitempty"` // 同上
	Promote  bool   `json:"promote,omitempty"`
	Japanese string `json:"japanese,omitempty"`
}

// PositionRequest 通用请求：game_id 与 sfen 二选一；side 省略时取手番方。
type PositionRequest struct {
	GameID string `json:"game_id,omitempty"`
	SFEN   string `json:"sfen,omitempty"`
	Side   string `json:"side,omitempty"` // "black" / "white"
}

type NewPositionRequest struct {
	SFEN string `json:"sfen"`
}

type IsLegalRequest struct {
	PositionRequest
	Move MoveDTO `json:"move"`
}

type PlayRequest struct {
	GameID string  `json:"game_id"`
	Move   MoveDTO `json:"move"`
}

type StateRequest struct {
	GameID string `json:"game_id"`
}

// StateResponse 也用作新建与走子后的返回。
type StateResponse struct {
	GameID     string    `json:"game_id"`
	Position   string    `json:"position"` // SFEN
	ToMove     string    `json:"to_move"`
	CheckCount int       `json:"check_count"`
	LegalMoves []MoveDTO `json:"legal_moves"`
	Status     string    `json:"status"` // "ongoing" / "checkmate" / "no_moves"
	LastMove   *MoveDTO  `json:"last_move,omitempty"`
}

type LegalMovesResponse struct {
	Side       string    `json:"side"`
	LegalMoves []MoveDTO `json:"legal_moves"`
}

type VerdictResponse struct {
	NonPromoting bool `json:"non_promoting"`
	Promoting    bool `json:"promoting"`
}

type CheckResponse struct {
	Side       string `json:"side"`
	CheckCount int    `json:"check_count"`
}

type ErrorResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func pieceCode(pc shogi.Piece) string {
	if pc == shogi.NoPiece {
		return ""
	}
	return string(pc.Code())
}

func moveToDTO(m shogi.Move) MoveDTO {
	return MoveDTO{
		USI:      m.USI(),
		From:     int(m.From),
		To:       int(m.To),
		Piece:    pieceCode(m.Piece),
		Captured: pieceCode(m.Captured),
		Promote:  m.Promote,
	}
}

func movesToDTO(ms []shogi.Move) []MoveDTO {
	out := make([]MoveDTO, len(ms))
	for i, m := range ms {
		out[i] = moveToDTO(m)
	}
	return out
}

func codeToPiece(s string) (shogi.Piece, error) {
	switch len(s) {
	case 0:
		return shogi.NoPiece, nil
	case 1:
		return shogi.PieceFromCode(s[0])
	}
	return shogi.NoPiece, shogi.ErrInvalidPiece
}

// dtoToMove 把请求里的招法还原成 shogi.Move。
func dtoToMove(pos *shogi.Position, d MoveDTO) (shogi.Move, error) {
	if d.USI != "" {
		return pos.ParseUSIMove(d.USI)
	}
	pc, err := codeToPiece(d.Piece)
	if err != nil {
		return shogi.Move{}, err
	}
	captured, err := codeToPiece(d.Captured)
	if err != nil {
		return shogi.Move{}, err
	}
	return shogi.Move{
		From:     shogi.Square(clampSquare(d.From)),
		To:       shogi.Square(clampSquare(d.To)),
		Piece:    pc,
		Captured: captured,
		Promote:  d.Promote,
	}, nil
}

// int8 之外的值一律映射为越界格，交给引擎报 invalid_square。
func clampSquare(v int) int {
	if v < -1 || v > 127 {
		return 127
	}
	return v
}

func parseSide(s string, def shogi.Color) (shogi.Color, error) {
	switch s {
	case "":
		return def, nil
	case "black", "b", "sente":
		return shogi.Black, nil
	case "white", "w", "gote":
		return shogi.White, nil
	}
	return shogi.NoColor, shogi.ErrInvalidSide
}
