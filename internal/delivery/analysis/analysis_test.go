package analysis

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domain "shogi_insight/internal/domain/analysis"
	"shogi_insight/internal/domain/pattern"
	"shogi_insight/internal/domain/shogi"
	appErrors "shogi_insight/internal/errors"
	"shogi_insight/internal/metrics"
	"shogi_insight/internal/registry"
	repo "shogi_insight/internal/repository"
	analysisuc "shogi_insight/internal/usecase/analysis"
	"shogi_insight/internal/usecase/recognition"
)

type envelope struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
}

func newRouter(t *testing.T) *chi.Mux {
	t.Helper()
	log := zap.NewNop().Sugar()
	rec := recognition.NewRecognizer(registry.Default(), log, 2)
	uc := analysisuc.NewAnalysisUseCase(
		rec,
		repo.NewMemoryRecognitionCache(time.Minute, 0),
		repo.NewMemoryAnalysisArchive(0),
		metrics.New(prometheus.NewRegistry()),
		log,
	)
	r := chi.NewRouter()
	NewAnalysisHandler(log, uc).Routes(r)
	return r
}

func do(t *testing.T, r http.Handler, method, target, body string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	assert.Equal(t, w.Code, env.Status)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	return w.Code, env
}

func TestRecognizeAndFetch(t *testing.T) {
	r := newRouter(t)

	code, env := do(t, r, http.MethodPost, "/recognize", fmt.Sprintf(`{"sfen": %q}`, shogi.StartSFEN))
	require.Equal(t, http.StatusOK, code)

	var a domain.Analysis
	require.NoError(t, json.Unmarshal(env.Body, &a))
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, shogi.StartSFEN, a.SFEN)
	assert.True(t, slices.ContainsFunc(a.Strategies, func(m pattern.MatchResult) bool {
		return m.Pattern == "居飛車" && m.Side == shogi.First
	}))
	require.Len(t, a.KingSafety, 2)
	assert.Equal(t, 6, a.KingSafety[0].GoldCount)
	assert.Equal(t, 0, a.Material.Advantage)
	assert.Equal(t, 6300, a.Material.SenteScore)

	code, env = do(t, r, http.MethodGet, "/analyses/"+a.ID, "")
	require.Equal(t, http.StatusOK, code)
	var fetched domain.Analysis
	require.NoError(t, json.Unmarshal(env.Body, &fetched))
	assert.Equal(t, a.ID, fetched.ID)

	code, env = do(t, r, http.MethodGet, "/analyses?limit=5", "")
	require.Equal(t, http.StatusOK, code)
	var recent []domain.Analysis
	require.NoError(t, json.Unmarshal(env.Body, &recent))
	assert.Len(t, recent, 1)
}

func TestRecognizeErrors(t *testing.T) {
	r := newRouter(t)

	cases := []struct {
		name   string
		method string
		target string
		body   string
		status int
	}{
		{"malformed json", http.MethodPost, "/recognize", `{"sfen":`, http.StatusBadRequest},
		{"unknown field", http.MethodPost, "/recognize", `{"position": "x"}`, http.StatusBadRequest},
		{"bad sfen", http.MethodPost, "/recognize", `{"sfen": "9/9 b - 1"}`, http.StatusBadRequest},
		{"missing analysis", http.MethodGet, "/analyses/nope", "", http.StatusNotFound},
		{"bad limit", http.MethodGet, "/analyses?limit=-1", "", http.StatusBadRequest},
		{"unknown family", http.MethodGet, "/patterns?family=opening", "", http.StatusBadRequest},
		{"unknown pattern", http.MethodPost, "/explain", fmt.Sprintf(`{"sfen": %q, "family": "formation", "pattern": "none"}`, shogi.StartSFEN), http.StatusNotFound},
		{"bad side", http.MethodPost, "/explain", fmt.Sprintf(`{"sfen": %q, "side": "north", "family": "formation", "pattern": "矢倉"}`, shogi.StartSFEN), http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, env := do(t, r, tc.method, tc.target, tc.body)
			assert.Equal(t, tc.status, code)
			assert.Contains(t, string(env.Body), `"error"`)
		})
	}
}

func TestRecognizeBatch(t *testing.T) {
	r := newRouter(t)

	body := fmt.Sprintf(`{"positions": [%q, %q]}`, shogi.StartSFEN, shogi.StartSFEN)
	code, env := do(t, r, http.MethodPost, "/recognize/batch", body)
	require.Equal(t, http.StatusOK, code)

	var resp domain.BatchResponse
	require.NoError(t, json.Unmarshal(env.Body, &resp))
	require.Len(t, resp.Analyses, 2)
	assert.NotEqual(t, resp.Analyses[0].ID, resp.Analyses[1].ID)

	positions := make([]string, analysisuc.MaxBatch+1)
	for i := range positions {
		positions[i] = shogi.StartSFEN
	}
	raw, err := json.Marshal(domain.BatchRequest{Positions: positions})
	require.NoError(t, err)
	code, _ = do(t, r, http.MethodPost, "/recognize/batch", string(raw))
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestExplainEndpoint(t *testing.T) {
	r := newRouter(t)

	body := fmt.Sprintf(`{"sfen": %q, "family": "strategy", "pattern": "居飛車"}`, shogi.StartSFEN)
	code, env := do(t, r, http.MethodPost, "/explain", body)
	require.Equal(t, http.StatusOK, code)

	var ev recognition.Evaluation
	require.NoError(t, json.Unmarshal(env.Body, &ev))
	assert.Equal(t, "居飛車", ev.Pattern)
	assert.Equal(t, shogi.First, ev.Side)
	assert.True(t, ev.Matched)
	assert.NotEmpty(t, ev.Scores)
}

func TestPatternsEndpoint(t *testing.T) {
	r := newRouter(t)

	code, env := do(t, r, http.MethodGet, "/patterns?family=strategy&category="+url.QueryEscape("奇襲"), "")
	require.Equal(t, http.StatusOK, code)
	var summaries []map[string]any
	require.NoError(t, json.Unmarshal(env.Body, &summaries))
	require.Len(t, summaries, 1)
	assert.Equal(t, "strategy", summaries[0]["family"])
}

func TestRecognizeFeed(t *testing.T) {
	srv := httptest.NewServer(newRouter(t))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/recognize"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	read := func() envelope {
		t.Helper()
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
		var env envelope
		require.NoError(t, conn.ReadJSON(&env))
		return env
	}

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(shogi.StartSFEN)))
	env := read()
	assert.Equal(t, http.StatusOK, env.Status)
	var first domain.Analysis
	require.NoError(t, json.Unmarshal(env.Body, &first))
	assert.False(t, first.Cached)

	require.NoError(t, conn.WriteJSON(domain.RecognizeRequest{SFEN: shogi.StartSFEN}))
	env = read()
	var second domain.Analysis
	require.NoError(t, json.Unmarshal(env.Body, &second))
	assert.True(t, second.Cached)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not a position")))
	env = read()
	assert.Equal(t, http.StatusBadRequest, env.Status)
	assert.Contains(t, string(env.Body), appErrors.ErrInvalidSFEN.Error())
}
