package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/apex/log"
	"shogilegal/internal/server/game"
	"shogilegal/internal/shogi"
)

// Handler 实现 http.Handler，用于 /api/* 路由
type Handler struct {
	games *game.Manager
}

func NewHandler() *Handler {
	return &Handler{games: game.NewManager()}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	switch r.URL.Path {
	case "/api/positions":
		h.handleNewPosition(w, r)
	case "/api/legal_moves":
		h.handleLegalMoves(w, r)
	case "/api/is_legal":
		h.handleIsLegal(w, r)
	case "/api/check":
		h.handleCheck(w, r)
	case "/api/play":
		h.handlePlay(w, r)
	case "/api/state":
		h.handleState(w, r)
	default:
		http.NotFound(w, r)
	}
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v any) {
	writeJSONStatus(w, http.StatusOK, v)
}

func writeJSONStatus(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Warn("write json")
	}
}

// writeError 校验错误 → 422 {kind,message}；会话不存在 → 404。
func writeError(w http.ResponseWriter, err error) {
	var ve *shogi.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSONStatus(w, http.StatusUnprocessableEntity, ErrorResponse{Kind: ve.Kind.String(), Message: ve.Error()})
	case errors.Is(err, game.ErrNotFound):
		http.Error(w, "game not found", http.StatusNotFound)
	default:
		log.WithError(err).Error("unexpected error")
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// resolve 取得请求所指的局面：会话优先，其次是 SFEN。
func (h *Handler) resolve(req PositionRequest) (*shogi.Position, shogi.Color, error) {
	var pos *shogi.Position
	switch {
	case req.GameID != "":
		s, err := h.games.Get(req.GameID)
		if err != nil {
			return nil, shogi.NoColor, err
		}
		pos = s.Pos
	case req.SFEN != "":
		p, err := shogi.DecodeSFEN(req.SFEN)
		if err != nil {
			return nil, shogi.NoColor, err
		}
		pos = p
	default:
		return nil, shogi.NoColor, shogi.ErrInvalidSFEN
	}
	side, err := parseSide(req.Side, pos.SideToMove)
	if err != nil {
		return nil, shogi.NoColor, err
	}
	return pos, side, nil
}

func (h *Handler) stateOf(s game.Session) (StateResponse, error) {
	side := s.Pos.SideToMove
	legal, err := h.games.LegalMoves(s.Pos, side)
	if err != nil {
		return StateResponse{}, err
	}
	cc, err := s.Pos.CheckCount(side)
	if err != nil {
		return StateResponse{}, err
	}

	status := "ongoing"
	if len(legal) == 0 {
		status = "no_moves"
		if cc != shogi.NotInCheck {
			status = "checkmate"
		}
	}

	resp := StateResponse{
		GameID:     s.ID,
		Position:   s.Pos.SFEN(),
		ToMove:     side.String(),
		CheckCount: int(cc),
		LegalMoves: movesToDTO(legal),
		Status:     status,
	}
	if n := len(s.Moves); n > 0 {
		last := moveToDTO(s.Moves[n-1])
		last.Japanese = s.LastJapanese
		resp.LastMove = &last
	}
	return resp, nil
}

func (h *Handler) handleNewPosition(w http.ResponseWriter, r *http.Request) {
	var req NewPositionRequest
	if !decode(w, r, &req) {
		return
	}
	if req.SFEN == "" {
		req.SFEN = shogi.StartSFEN
	}
	pos, err := shogi.DecodeSFEN(req.SFEN)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := pos.Validate(pos.SideToMove); err != nil {
		writeError(w, err)
		return
	}

	s := h.games.Register(pos)
	log.WithFields(log.Fields{"game_id": s.ID, "sfen": req.SFEN}).Info("position registered")

	resp, err := h.stateOf(*s)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, resp)
}

func (h *Handler) handleLegalMoves(w http.ResponseWriter, r *http.Request) {
	var req PositionRequest
	if !decode(w, r, &req) {
		return
	}
	pos, side, err := h.resolve(req)
	if err != nil {
		writeError(w, err)
		return
	}
	legal, err := h.games.LegalMoves(pos, side)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, LegalMovesResponse{Side: side.String(), LegalMoves: movesToDTO(legal)})
}

func (h *Handler) handleIsLegal(w http.ResponseWriter, r *http.Request) {
	var req IsLegalRequest
	if !decode(w, r, &req) {
		return
	}
	pos, side, err := h.resolve(req.PositionRequest)
	if err != nil {
		writeError(w, err)
		return
	}
	// USI 的打ち駒按手番方解释；显式 side 时以 side 为准
	view := *pos
	view.SideToMove = side
	mv, err := dtoToMove(&view, req.Move)
	if err != nil {
		writeError(w, err)
		return
	}
	v, err := pos.IsLegalMove(side, mv)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, VerdictResponse{NonPromoting: v.NonPromoting, Promoting: v.Promoting})
}

func (h *Handler) handleCheck(w http.ResponseWriter, r *http.Request) {
	var req PositionRequest
	if !decode(w, r, &req) {
		return
	}
	pos, side, err := h.resolve(req)
	if err != nil {
		writeError(w, err)
		return
	}
	cc, err := pos.CheckCount(side)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, CheckResponse{Side: side.String(), CheckCount: int(cc)})
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if !decode(w, r, &req) {
		return
	}
	s, err := h.games.Get(req.GameID)
	if err != nil {
		writeError(w, err)
		return
	}
	mv, err := dtoToMove(s.Pos, req.Move)
	if err != nil {
		writeError(w, err)
		return
	}
	next, v, err := h.games.Play(req.GameID, mv)
	if err != nil {
		writeError(w, err)
		return
	}
	if !v.Allows(mv.Promote) {
		writeJSONStatus(w, http.StatusUnprocessableEntity, ErrorResponse{Kind: "illegal_move", Message: "illegal move " + mv.USI()})
		return
	}
	played := next.Moves[len(next.Moves)-1]
	log.WithFields(log.Fields{"game_id": req.GameID, "move": played.USI(), "ply": len(next.Moves)}).Info("move played")

	resp, err := h.stateOf(next)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, resp)
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req StateRequest
	if !decode(w, r, &req) {
		return
	}
	s, err := h.games.Get(req.GameID)
	if err != nil {
		writeError(w, err)
		return
	}
	resp, err := h.stateOf(s)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, resp)
}
