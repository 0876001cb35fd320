package game

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"shogilegal/internal/shogi"
)

var ErrNotFound = errors.New("session not found")

type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	memo *moveMemo
}

func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		memo:     newMoveMemo(moveMemoCap),
	}
}

// Register 登记一个局面，返回新会话（uuid）。
func (m *Manager) Register(pos *shogi.Position) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	s := &Session{
		ID:        uuid.NewString(),
		Pos:       pos,
		LastTo:    shogi.NoSquare,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.sessions[s.ID] = s
	return s
}

// Get 返回会话的副本，调用方可以随意读取。
func (m *Manager) Get(id string) (Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	out := *s
	out.Moves = append([]shogi.Move(nil), s.Moves...)
	return out, nil
}

// Play 在会话局面上走一步；不合法时返回 verdict 供调用方说明原因。
func (m *Manager) Play(id string, mv shogi.Move) (Session, shogi.Verdict, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return Session{}, shogi.Verdict{}, ErrNotFound
	}

	v, err := s.Pos.IsLegalMove(s.Pos.SideToMove, mv)
	if err != nil {
		return *s, v, err
	}
	if !v.Allows(mv.Promote) {
		return *s, v, nil
	}
	if mv.IsDrop() {
		mv.Captured = shogi.NoPiece
	} else {
		mv.Piece = s.Pos.Board[mv.From]
		mv.Captured = s.Pos.Board[mv.To]
	}
	jp := s.Pos.Japanese(mv, s.LastTo)
	next, ok := s.Pos.ApplyMove(mv)
	if !ok {
		panic("game: legal move did not apply: " + mv.USI())
	}
	s.Pos = next
	s.LastJapanese = jp
	s.LastTo = mv.To
	s.Moves = append(s.Moves, mv)
	s.UpdatedAt = time.Now()

	out := *s
	out.Moves = append([]shogi.Move(nil), s.Moves...)
	return out, v, nil
}

// LegalMoves 先做结构校验，再经由按局面缓存的结果返回合法着；返回的切片不可修改。
func (m *Manager) LegalMoves(pos *shogi.Position, side shogi.Color) ([]shogi.Move, error) {
	if err := pos.Validate(side); err != nil {
		return nil, err
	}
	if moves, ok := m.memo.get(pos, side); ok {
		return moves, nil
	}
	moves, err := pos.LegalMoves(side)
	if err != nil {
		return nil, err
	}
	m.memo.put(pos, side, moves)
	return moves, nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
