package api_test

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lernquiz/backend/internal/api"
	"github.com/lernquiz/backend/internal/loader"
	"github.com/lernquiz/backend/internal/service"
	"github.com/lernquiz/backend/internal/store"
	"github.com/lernquiz/backend/internal/worker"
)

const demoQuestions = `[
	{"id":1,"type":"mc","question":"one","options":["a","b"],"correct":[0]},
	{"id":2,"type":"open","question":"two","solution":"whatever"}
]`

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	dataDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dataDir, "demo.json"), []byte(demoQuestions), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}

	logger := slog.New(slog.DiscardHandler)
	catalog := loader.NewCatalog(dataDir)

	players, err := store.NewJSONFileStore(t.TempDir(), logger)
	if err != nil {
		t.Fatalf("NewJSONFileStore: %v", err)
	}

	pool := worker.NewPool(1, 8)
	t.Cleanup(pool.Close)
	scores := service.NewScoreService(nil, pool, logger)
	sessions := service.NewSessionService(catalog, players, scores, 7, logger)

	mux := http.NewServeMux()
	api.NewHandler(sessions, catalog, nil, logger).RegisterRoutes(mux)

	srv := httptest.NewServer(api.CORS(mux))
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, srv *httptest.Server, path string, wantStatus int, v any) {
	t.Helper()
	resp, err := http.Get(srv.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != wantStatus {
		t.Fatalf("GET %s: status %d, want %d", path, resp.StatusCode, wantStatus)
	}
	if v != nil {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			t.Fatalf("decode %s: %v", path, err)
		}
	}
}

func postJSON(t *testing.T, srv *httptest.Server, path, body string, wantStatus int, v any) {
	t.Helper()
	resp, err := http.Post(srv.URL+path, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != wantStatus {
		t.Fatalf("POST %s: status %d, want %d", path, resp.StatusCode, wantStatus)
	}
	if v != nil {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			t.Fatalf("decode %s: %v", path, err)
		}
	}
}

func TestListDatasets(t *testing.T) {
	srv := newServer(t)

	var sets []api.DatasetSummary
	getJSON(t, srv, "/datasets", http.StatusOK, &sets)
	if len(sets) != 1 || sets[0].ID != "demo" || sets[0].QuestionCount != 2 {
		t.Fatalf("datasets = %+v", sets)
	}
}

func TestSessionRoundTrip(t *testing.T) {
	srv := newServer(t)

	var view service.View
	getJSON(t, srv, "/datasets/demo/players/alice/session", http.StatusOK, &view)
	if view.Question == nil || view.Total != 2 {
		t.Fatalf("view = %+v", view)
	}

	body := fmt.Sprintf(`{"question_id":%d,"skipped":true}`, view.Question.ID)
	var res service.SubmitResult
	postJSON(t, srv, "/datasets/demo/players/alice/answers", body, http.StatusOK, &res)
	if res.View.Today.Skipped != 1 {
		t.Fatalf("today = %+v, want one skipped", res.View.Today)
	}

	// Same submit again is stale: the cursor moved on.
	postJSON(t, srv, "/datasets/demo/players/alice/answers", body, http.StatusConflict, nil)
}

func TestUnknownDatasetIs404(t *testing.T) {
	srv := newServer(t)
	getJSON(t, srv, "/datasets/ghost/players/alice/session", http.StatusNotFound, nil)
}

func TestAddQuestionValidation(t *testing.T) {
	srv := newServer(t)

	postJSON(t, srv, "/datasets/demo/questions", `{"type":"choice","text":""}`, http.StatusBadRequest, nil)
	postJSON(t, srv, "/datasets/demo/questions", `{"type":"choice","text":"q","options":["only one"],"correct":[0]}`, http.StatusBadRequest, nil)
	postJSON(t, srv, "/datasets/demo/questions", `{"type":"choice","text":"q","options":["a","b"],"correct":[5]}`, http.StatusBadRequest, nil)
	postJSON(t, srv, "/datasets/demo/questions", `{"type":"choice","text":"q","options":["a","b"],"correct":[1]}`, http.StatusCreated, nil)

	var sets []api.DatasetSummary
	getJSON(t, srv, "/datasets", http.StatusOK, &sets)
	if sets[0].QuestionCount != 3 {
		t.Fatalf("question count = %d, want 3 after adding", sets[0].QuestionCount)
	}
}

func TestResetScopeValidation(t *testing.T) {
	srv := newServer(t)
	postJSON(t, srv, "/datasets/demo/players/alice/reset", `{"scope":"everything"}`, http.StatusBadRequest, nil)
	postJSON(t, srv, "/datasets/demo/players/alice/reset", `{"scope":"cursor"}`, http.StatusOK, nil)
}

func TestLeaderboardWithoutBackend(t *testing.T) {
	srv := newServer(t)
	getJSON(t, srv, "/leaderboard/today", http.StatusServiceUnavailable, nil)
	getJSON(t, srv, "/leaderboard/total", http.StatusServiceUnavailable, nil)
}

func TestExportCSV(t *testing.T) {
	srv := newServer(t)

	var view service.View
	getJSON(t, srv, "/datasets/demo/players/bob/session", http.StatusOK, &view)
	body := fmt.Sprintf(`{"question_id":%d,"skipped":true}`, view.Question.ID)
	postJSON(t, srv, "/datasets/demo/players/bob/answers", body, http.StatusOK, nil)

	resp, err := http.Get(srv.URL + "/datasets/demo/players/bob/missed/export.csv")
	if err != nil {
		t.Fatalf("GET export: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("content type = %q", ct)
	}
}

func TestCORSPreflight(t *testing.T) {
	srv := newServer(t)

	req, _ := http.NewRequest(http.MethodOptions, srv.URL+"/datasets", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("OPTIONS: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", resp.StatusCode)
	}
	if resp.Header.Get("Access-Control-Allow-Origin") != "*" {
		t.Error("missing CORS header")
	}
}
