package game

import (
	"time"

	"shogilegal/internal/shogi"
)

// Session 是外部对局控制器登记的一个局面快照，以及此后经 Play 走出的着法。
type Session struct {
	ID     string
	Pos    *shogi.Position
	LastTo shogi.Square
	Moves  []shogi.Move
	// 最后一手的日文表示，按走之前的局面生成
	LastJapanese string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
