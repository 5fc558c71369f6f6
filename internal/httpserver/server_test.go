package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordlebot/internal/daily"
	"github.com/robalobadob/wordlebot/internal/history"
	"github.com/robalobadob/wordlebot/internal/solver"
	"github.com/robalobadob/wordlebot/internal/store"
)

var testWords = []string{"crane", "slate", "adieu", "trace"}

func newTestServer(t *testing.T, secret string, withHistory bool) (*Server, *history.Store) {
	t.Helper()
	var hist *history.Store
	if withHistory {
		var err error
		hist, err = history.Open(":memory:")
		require.NoError(t, err)
		t.Cleanup(func() { _ = hist.Close() })
	}
	s := New(store.NewMemoryStore(), hist, Options{
		Words:     testWords,
		Freq:      solver.DefaultFrequencyTable(),
		Openers:   []string{"arise"},
		Secret:    secret,
		DailySalt: "test_salt",
	})
	return s, hist
}

func do(t *testing.T, s *Server, method, path string, body any, hdr ...string) (int, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	for i := 0; i+1 < len(hdr); i += 2 {
		req.Header.Set(hdr[i], hdr[i+1])
	}
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	var out map[string]any
	if rec.Body.Len() > 0 && rec.Header().Get("Content-Type") != "" {
		_ = json.Unmarshal(rec.Body.Bytes(), &out)
	}
	return rec.Code, out
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t, "", false)
	code, body := do(t, s, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["ok"])
	assert.EqualValues(t, len(testWords), body["words"])
}

func TestSessionFlowSolved(t *testing.T) {
	s, _ := newTestServer(t, "", true)

	code, body := do(t, s, http.MethodPost, "/sessions", nil)
	require.Equal(t, http.StatusCreated, code)
	id, _ := body["sessionId"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, "arise", body["guess"])
	assert.Equal(t, "awaiting_feedback", body["state"])

	code, body = do(t, s, http.MethodPost, "/sessions/"+id+"/feedback", map[string]string{"guess": "arise", "pattern": "ybbyg"})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "continue", body["outcome"])
	assert.Equal(t, "slate", body["guess"])
	assert.EqualValues(t, 1, body["candidates"])

	code, body = do(t, s, http.MethodPost, "/sessions/"+id+"/next", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "slate", body["guess"])

	tiles := make([]map[string]string, 0, 5)
	for _, c := range "slate" {
		tiles = append(tiles, map[string]string{"letter": string(c), "feedback": "correct"})
	}
	code, body = do(t, s, http.MethodPost, "/sessions/"+id+"/feedback", map[string]any{"tiles": tiles})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "solved", body["outcome"])
	assert.Equal(t, "slate", body["pattern"])
	assert.Nil(t, body["guess"])

	code, body = do(t, s, http.MethodPost, "/sessions/"+id+"/next", nil)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "solved", body["state"])

	code, _ = do(t, s, http.MethodPost, "/sessions/"+id+"/feedback", map[string]any{"tiles": tiles})
	assert.Equal(t, http.StatusConflict, code)

	code, body = do(t, s, http.MethodGet, "/history", nil)
	require.Equal(t, http.StatusOK, code)
	runs, _ := body["runs"].([]any)
	require.Len(t, runs, 1)
	run := runs[0].(map[string]any)
	assert.Equal(t, id, run["id"])
	assert.Equal(t, "session", run["source"])
	assert.Equal(t, "slate", run["answer"])
	assert.Equal(t, []any{"arise", "slate"}, run["guesses"])
}

func TestSessionContradiction(t *testing.T) {
	s, _ := newTestServer(t, "", false)
	_, body := do(t, s, http.MethodPost, "/sessions", map[string]any{"openers": []string{"crane"}})
	id := body["sessionId"].(string)
	assert.Equal(t, "crane", body["guess"])

	code, body := do(t, s, http.MethodPost, "/sessions/"+id+"/feedback", map[string]string{"guess": "crane", "pattern": "bbbbb"})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "contradiction", body["outcome"])
	assert.EqualValues(t, 0, body["candidates"])

	code, _ = do(t, s, http.MethodPost, "/sessions/"+id+"/next", nil)
	assert.Equal(t, http.StatusConflict, code)
}

func TestSessionConflictingFeedback(t *testing.T) {
	s, _ := newTestServer(t, "", false)
	_, body := do(t, s, http.MethodPost, "/sessions", nil)
	id := body["sessionId"].(string)

	code, body := do(t, s, http.MethodPost, "/sessions/"+id+"/feedback", map[string]string{"guess": "arise", "pattern": "ybbyg"})
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "continue", body["outcome"])

	code, body = do(t, s, http.MethodPost, "/sessions/"+id+"/feedback", map[string]string{"guess": "crank", "pattern": "bbbbg"})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "conflicting_feedback", body["error"])

	code, body = do(t, s, http.MethodGet, "/sessions/"+id, nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 1, body["rounds"])
	assert.Equal(t, "____e", body["pattern"])
	assert.EqualValues(t, 1, body["candidates"])
}

func TestSessionBadRequests(t *testing.T) {
	s, _ := newTestServer(t, "", false)

	code, _ := do(t, s, http.MethodPost, "/sessions", map[string]any{"openers": []string{"toolong"}})
	assert.Equal(t, http.StatusBadRequest, code)

	_, body := do(t, s, http.MethodPost, "/sessions", nil)
	id := body["sessionId"].(string)

	cases := []any{
		map[string]any{},
		map[string]string{"guess": "crane"},
		map[string]string{"guess": "crane", "pattern": "gggxg"},
		map[string]any{"tiles": []map[string]string{{"letter": "c", "feedback": "correct"}}},
		map[string]any{"tiles": []map[string]string{
			{"letter": "c", "feedback": "correct"}, {"letter": "r", "feedback": "absent"},
			{"letter": "a", "feedback": "absent"}, {"letter": "n", "feedback": "absent"},
			{"letter": "e"},
		}},
		map[string]any{"tiles": []map[string]string{
			{"letter": "c", "feedback": "correct"}, {"letter": "r", "feedback": "absent"},
			{"letter": "a", "feedback": "absent"}, {"letter": "n", "feedback": "absent"},
			{"letter": "e", "feedback": "maybe"},
		}},
	}
	for i, c := range cases {
		code, _ := do(t, s, http.MethodPost, "/sessions/"+id+"/feedback", c)
		assert.Equal(t, http.StatusBadRequest, code, "case %d", i)
	}

	code, _ = do(t, s, http.MethodGet, "/sessions/nope", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestDeleteSession(t *testing.T) {
	s, _ := newTestServer(t, "", false)
	_, body := do(t, s, http.MethodPost, "/sessions", nil)
	id := body["sessionId"].(string)

	code, _ := do(t, s, http.MethodDelete, "/sessions/"+id, nil)
	assert.Equal(t, http.StatusNoContent, code)
	code, _ = do(t, s, http.MethodGet, "/sessions/"+id, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestSimulateRecordsHistory(t *testing.T) {
	s, _ := newTestServer(t, "", true)

	code, body := do(t, s, http.MethodPost, "/simulate", map[string]string{"answer": "slate"})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "solved", body["outcome"])
	assert.Equal(t, []any{"arise", "slate"}, body["guesses"])
	assert.NotEmpty(t, body["runId"])

	code, body = do(t, s, http.MethodGet, "/history/stats", nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 1, body["played"])
	assert.EqualValues(t, 1, body["solved"])
	assert.EqualValues(t, 2, body["meanRounds"])
}

func TestSimulateDailyAnswer(t *testing.T) {
	s, _ := newTestServer(t, "", false)
	fixed := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	code, body := do(t, s, http.MethodPost, "/simulate", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "2026-10-19", body["date"])
	assert.Equal(t, daily.Target(fixed, "test_salt", testWords), body["answer"])
	assert.Nil(t, body["runId"])

	code, _ = do(t, s, http.MethodPost, "/simulate", map[string]string{"answer": "nope"})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestHistoryDisabled(t *testing.T) {
	s, _ := newTestServer(t, "", false)
	code, body := do(t, s, http.MethodGet, "/history", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "history_disabled", body["error"])
	code, _ = do(t, s, http.MethodGet, "/history/stats", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestAuthRequired(t *testing.T) {
	s, _ := newTestServer(t, "s3cret", false)

	code, _ := do(t, s, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, code)

	code, body := do(t, s, http.MethodPost, "/sessions", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "unauthorized", body["error"])

	bad, _, err := IssueToken("other", "bot", time.Minute)
	require.NoError(t, err)
	code, _ = do(t, s, http.MethodPost, "/sessions", nil, "Authorization", "Bearer "+bad)
	assert.Equal(t, http.StatusUnauthorized, code)

	expired, _, err := IssueToken("s3cret", "bot", -time.Minute)
	require.NoError(t, err)
	code, _ = do(t, s, http.MethodPost, "/sessions", nil, "Authorization", "Bearer "+expired)
	assert.Equal(t, http.StatusUnauthorized, code)

	good, exp, err := IssueToken("s3cret", "bot", time.Hour)
	require.NoError(t, err)
	assert.True(t, exp.After(time.Now()))
	code, _ = do(t, s, http.MethodPost, "/sessions", nil, "Authorization", "Bearer "+good)
	assert.Equal(t, http.StatusCreated, code)
}

func TestIssueTokenValidation(t *testing.T) {
	_, _, err := IssueToken("", "bot", time.Minute)
	assert.Error(t, err)
	_, _, err = IssueToken("s", "", time.Minute)
	assert.Error(t, err)
}

func TestMetricsEndpoint(t *testing.T) {
	s, _ := newTestServer(t, "", false)
	do(t, s, http.MethodPost, "/simulate", map[string]string{"answer": "crane"})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "wordlebot_session_outcomes_total")
}
