package main

import (
	"errors"

	"shogilegal/internal/shogi"
)

const handSlots = shogi.NumColors * len(shogi.HandTypes)

// toPosition 把 C 侧传来的盘面与持驹还原为局面；hands 为空表示双方无持驹。
func toPosition(codes []byte, hands []int32, side int) (*shogi.Position, shogi.Color, error) {
	c, err := toColor(side)
	if err != nil {
		return nil, shogi.NoColor, err
	}
	board, err := shogi.BoardFromCodes(codes)
	if err != nil {
		return nil, shogi.NoColor, err
	}
	pos := &shogi.Position{Board: board, SideToMove: c}
	if len(hands) == handSlots {
		for i, n := range hands {
			color := shogi.Color(i / len(shogi.HandTypes))
			pt := shogi.HandTypes[i%len(shogi.HandTypes)]
			pos.Hands[color][pt] = int(n)
		}
	}
	return pos, c, nil
}

func toColor(side int) (shogi.Color, error) {
	switch side {
	case 0:
		return shogi.Black, nil
	case 1:
		return shogi.White, nil
	}
	return shogi.NoColor, shogi.ErrInvalidSide
}

// makeMove 组装候选着：持ち駒时 from 为 81/82，piece 为单字母编码。
func makeMove(pos *shogi.Position, side shogi.Color, from, to int, piece byte, promote bool) (shogi.Move, error) {
	if from < -1 || from > shogi.NumSquares+1 || to < -1 || to >= shogi.NumSquares {
		return shogi.Move{}, shogi.ErrInvalidSquare
	}
	m := shogi.Move{From: shogi.Square(from), To: shogi.Square(to), Promote: promote}
	if m.IsDrop() {
		pc, err := shogi.PieceFromCode(piece)
		if err != nil {
			return shogi.Move{}, err
		}
		m.Piece = pc
		return m, nil
	}
	if m.From.OnBoard() {
		m.Piece = pos.Board[m.From]
	}
	if m.To.OnBoard() {
		m.Captured = pos.Board[m.To]
	}
	return m, nil
}

// verdictBits: bit0 = 不成可, bit1 = 成可
func verdictBits(v shogi.Verdict) int {
	out := 0
	if v.NonPromoting {
		out |= 1
	}
	if v.Promoting {
		out |= 2
	}
	return out
}

func errorCode(err error) int {
	var ve *shogi.ValidationError
	if errors.As(err, &ve) {
		return -int(ve.Kind)
	}
	return -100
}
