package game

import (
	"sync"

	"shogilegal/internal/shogi"
)

const moveMemoCap = 1 << 14

type memoKey struct {
	hash uint64
	side shogi.Color
}

// 哈希可能碰撞，命中时还要比对盘面与持驹。
type memoEntry struct {
	board shogi.Board
	hands [shogi.NumColors]shogi.Hand
	moves []shogi.Move
}

// moveMemo 按局面哈希缓存合法着列表；超过容量时整体清空。
type moveMemo struct {
	mu  sync.RWMutex
	cap int
	m   map[memoKey]memoEntry
}

func newMoveMemo(capacity int) *moveMemo {
	return &moveMemo{cap: capacity, m: make(map[memoKey]memoEntry, 256)}
}

func keyOf(pos *shogi.Position, side shogi.Color) memoKey {
	return memoKey{hash: pos.CalculateHash(), side: side}
}

func (c *moveMemo) get(pos *shogi.Position, side shogi.Color) ([]shogi.Move, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.m[keyOf(pos, side)]
	if !ok || e.board != pos.Board || e.hands != pos.Hands {
		return nil, false
	}
	return e.moves, true
}

func (c *moveMemo) put(pos *shogi.Position, side shogi.Color, moves []shogi.Move) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.m) >= c.cap {
		c.m = make(map[memoKey]memoEntry, 256)
	}
	c.m[keyOf(pos, side)] = memoEntry{board: pos.Board, hands: pos.Hands, moves: moves}
}

func (c *moveMemo) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}
