package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func post(t *testing.T, srv http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if s, ok := body.(string); ok {
		buf.WriteString(s)
	} else if err := json.NewEncoder(&buf).Encode(body); err != nil {
		t.Fatalf("encode: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v (body=%q)", err, rec.Body.String())
	}
	return v
}

func TestNewPositionAndPlay(t *testing.T) {
	srv := NewServer()

	rec := post(t, srv, "/api/positions", NewPositionRequest{})
	if rec.Code != http.StatusOK {
		t.Fatalf("positions: status=%d body=%s", rec.Code, rec.Body.String())
	}
	st := decodeBody[StateResponse](t, rec)
	if st.GameID == "" || len(st.LegalMoves) != 30 || st.ToMove != "black" || st.Status != "ongoing" {
		t.Fatalf("unexpected state: %+v", st)
	}

	rec = post(t, srv, "/api/play", PlayRequest{GameID: st.GameID, Move: MoveDTO{USI: "7g7f"}})
	if rec.Code != http.StatusOK {
		t.Fatalf("play: status=%d body=%s", rec.Code, rec.Body.String())
	}
	st = decodeBody[StateResponse](t, rec)
	if st.ToMove != "white" || st.LastMove == nil || st.LastMove.Japanese != "▲７六歩" {
		t.Fatalf("unexpected state after play: %+v", st)
	}

	rec = post(t, srv, "/api/state", StateRequest{GameID: st.GameID})
	if rec.Code != http.StatusOK {
		t.Fatalf("state: status=%d", rec.Code)
	}
	if got := decodeBody[StateResponse](t, rec); got.Position != st.Position {
		t.Fatalf("state position: got=%s want=%s", got.Position, st.Position)
	}
}

func TestPlayIllegalMove(t *testing.T) {
	srv := NewServer()
	st := decodeBody[StateResponse](t, post(t, srv, "/api/positions", NewPositionRequest{}))

	rec := post(t, srv, "/api/play", PlayRequest{GameID: st.GameID, Move: MoveDTO{USI: "7g7e"}})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status: got=%d want=%d", rec.Code, http.StatusUnprocessableEntity)
	}
	if e := decodeBody[ErrorResponse](t, rec); e.Kind != "illegal_move" {
		t.Fatalf("kind: got=%s", e.Kind)
	}

	rec = post(t, srv, "/api/play", PlayRequest{GameID: st.GameID, Move: MoveDTO{USI: "5e5d"}})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status: got=%d want=%d", rec.Code, http.StatusUnprocessableEntity)
	}
	if e := decodeBody[ErrorResponse](t, rec); e.Kind != "empty_origin" || e.Message == "" {
		t.Fatalf("error: got=%+v", e)
	}
}

func TestIsLegalAndCheck(t *testing.T) {
	srv := NewServer()

	rec := post(t, srv, "/api/is_legal", IsLegalRequest{
		PositionRequest: PositionRequest{SFEN: "k8/8P/9/9/9/9/9/9/4K4 b - 1"},
		Move:            MoveDTO{USI: "1b1a+"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("is_legal: status=%d body=%s", rec.Code, rec.Body.String())
	}
	if v := decodeBody[VerdictResponse](t, rec); v.NonPromoting || !v.Promoting {
		t.Fatalf("verdict: got=%+v", v)
	}

	rec = post(t, srv, "/api/is_legal", IsLegalRequest{
		PositionRequest: PositionRequest{SFEN: "8k/9/6NG1/9/9/9/9/9/K8 b P 1"},
		Move:            MoveDTO{From: 81, To: 9, Piece: "P"},
	})
	if v := decodeBody[VerdictResponse](t, rec); v.NonPromoting || v.Promoting {
		t.Fatalf("drop pawn mate verdict: got=%+v", v)
	}

	rec = post(t, srv, "/api/check", PositionRequest{SFEN: "g3k4/9/9/9/8B/9/9/9/K3R4 w - 1"})
	if c := decodeBody[CheckResponse](t, rec); c.CheckCount != 2 || c.Side != "white" {
		t.Fatalf("check: got=%+v", c)
	}

	rec = post(t, srv, "/api/legal_moves", PositionRequest{SFEN: "7Gk/7R1/9/9/9/9/9/9/K8 w - 1"})
	if m := decodeBody[LegalMovesResponse](t, rec); len(m.LegalMoves) != 0 {
		t.Fatalf("tsume: got %d moves", len(m.LegalMoves))
	}
}

func TestLegalMovesRejectsInvalidHandAfterCachedStart(t *testing.T) {
	srv := NewServer()
	start := "lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b - 1"
	rec := post(t, srv, "/api/legal_moves", PositionRequest{SFEN: start})
	if m := decodeBody[LegalMovesResponse](t, rec); len(m.LegalMoves) != 30 {
		t.Fatalf("start: got %d moves", len(m.LegalMoves))
	}

	// 持驹 19 枚超出哈希范围，与初期局面同哈希；仍须报 422
	rec = post(t, srv, "/api/legal_moves", PositionRequest{SFEN: "lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b 19P 1"})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status: got=%d want=%d body=%s", rec.Code, http.StatusUnprocessableEntity, rec.Body.String())
	}
	if e := decodeBody[ErrorResponse](t, rec); e.Kind != "too_many_pieces" {
		t.Fatalf("kind: got=%s want=too_many_pieces", e.Kind)
	}
}

func TestStateKeepsLastMoveJapanese(t *testing.T) {
	srv := NewServer()
	st := decodeBody[StateResponse](t, post(t, srv, "/api/positions", NewPositionRequest{}))
	post(t, srv, "/api/play", PlayRequest{GameID: st.GameID, Move: MoveDTO{USI: "2g2f"}})
	got := decodeBody[StateResponse](t, post(t, srv, "/api/state", StateRequest{GameID: st.GameID}))
	if got.LastMove == nil || got.LastMove.Japanese != "▲２六歩" {
		t.Fatalf("last move: got=%+v", got.LastMove)
	}
}

func TestErrorStatuses(t *testing.T) {
	srv := NewServer()
	cases := []struct {
		name   string
		path   string
		body   any
		status int
		kind   string
	}{
		{"bad json", "/api/check", "{", http.StatusBadRequest, ""},
		{"unknown game", "/api/state", StateRequest{GameID: "missing"}, http.StatusNotFound, ""},
		{"missing king", "/api/check", PositionRequest{SFEN: "k8/9/9/9/9/9/9/9/9 b - 1"}, http.StatusUnprocessableEntity, "missing_king"},
		{"bad sfen", "/api/legal_moves", PositionRequest{SFEN: "nonsense"}, http.StatusUnprocessableEntity, "invalid_sfen"},
		{"bad side", "/api/check", PositionRequest{SFEN: "k8/9/9/9/9/9/9/9/4K4 b - 1", Side: "red"}, http.StatusUnprocessableEntity, "invalid_side"},
		{"nifu board", "/api/positions", NewPositionRequest{SFEN: "k8/9/9/9/9/4P4/4P4/9/4K4 b - 1"}, http.StatusUnprocessableEntity, "double_pawn"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := post(t, srv, tc.path, tc.body)
			if rec.Code != tc.status {
				t.Fatalf("status: got=%d want=%d body=%s", rec.Code, tc.status, rec.Body.String())
			}
			if tc.kind != "" {
				if e := decodeBody[ErrorResponse](t, rec); e.Kind != tc.kind {
					t.Fatalf("kind: got=%s want=%s", e.Kind, tc.kind)
				}
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/state", nil)
	rec := httptest.NewRecorder()
	NewServer().ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status: got=%d", rec.Code)
	}
}
