// Playtrack - Game Session Analytics and Visualization
// Copyright 2026 Gabriel V. (playtrackhq)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/playtrackhq/playtrack

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/playtrackhq/playtrack/internal/config"
	"github.com/playtrackhq/playtrack/internal/datasource"
	"github.com/playtrackhq/playtrack/internal/models"
)

// envelope mirrors models.APIResponse with raw data for per-test decoding.
type envelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 8093},
		Dataset: config.DatasetConfig{
			URL:      "http://dataset.invalid/sessions.json",
			Timezone: "UTC",
		},
		Charts: config.ChartsConfig{
			PieTopGames:    7,
			BarTopGames:    5,
			TimelineWindow: 24 * time.Hour,
		},
		Security: config.SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitDisabled: true,
		},
	}
}

func testSession(game, user string, start time.Time, d time.Duration) models.Session {
	startMS := start.UnixMilli()
	durMS := d.Milliseconds()
	return models.Session{
		Game:     game,
		User:     user,
		Start:    startMS,
		Stop:     startMS + durMS,
		Duration: durMS,
		StatusLog: []models.StatusRun{
			{Status: models.StatusActive, DurationMS: durMS},
		},
		ActiveDuration: durMS,
	}
}

// newTestHandler builds a handler over a pre-populated store with a
// pinned clock.
func newTestHandler(t *testing.T, sessions []models.Session) (*Handler, time.Time) {
	t.Helper()

	now := time.Date(2026, 8, 28, 15, 0, 0, 0, time.UTC)

	store := datasource.NewStore()
	if len(sessions) > 0 {
		if !store.Replace(datasource.NewSnapshot(sessions, 0, now.Add(-time.Minute))) {
			t.Fatal("snapshot replace failed")
		}
	}

	h := NewHandler(store, nil, testConfig())
	h.now = func() time.Time { return now }
	return h, now
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body %q)", err, rec.Body.String())
	}
	return env
}

func TestHealthReportsReadiness(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t, []models.Session{
		testSession("Factorio", "wren", now20260828(10), time.Hour),
	})

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	if rec.Header().Get("ETag") == "" {
		t.Error("missing ETag header")
	}

	env := decodeEnvelope(t, rec)
	if env.Status != "success" {
		t.Fatalf("envelope status = %q", env.Status)
	}
	var body struct {
		Status   string `json:"status"`
		Ready    bool   `json:"ready"`
		Sessions int    `json:"sessions"`
	}
	if err := json.Unmarshal(env.Data, &body); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if !body.Ready || body.Sessions != 1 || body.Status != "ok" {
		t.Errorf("health body = %+v", body)
	}
	if env.Metadata.DataAsOf == nil {
		t.Error("expected data_as_of for a loaded snapshot")
	}
}

func TestHealthBeforeFirstSnapshot(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t, nil)

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	env := decodeEnvelope(t, rec)
	var body struct {
		Ready bool `json:"ready"`
	}
	if err := json.Unmarshal(env.Data, &body); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if body.Ready {
		t.Error("empty store reported ready")
	}
	if env.Metadata.DataAsOf != nil {
		t.Error("data_as_of set without a snapshot")
	}
}

func now20260828(hour int) time.Time {
	return time.Date(2026, 8, 28, hour, 0, 0, 0, time.UTC)
}

func TestUsersAndGamesLists(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t, []models.Session{
		testSession("Factorio", "wren", now20260828(9), time.Hour),
		testSession("Apex", "lobabob", now20260828(10), time.Hour),
	})

	rec := httptest.NewRecorder()
	h.Users(rec, httptest.NewRequest(http.MethodGet, "/api/v1/users", nil))
	var users struct {
		Users []string `json:"users"`
	}
	if err := json.Unmarshal(decodeEnvelope(t, rec).Data, &users); err != nil {
		t.Fatalf("decode users: %v", err)
	}
	if len(users.Users) != 2 || users.Users[0] != "lobabob" || users.Users[1] != "wren" {
		t.Errorf("users = %v, want sorted [lobabob wren]", users.Users)
	}

	rec = httptest.NewRecorder()
	h.Games(rec, httptest.NewRequest(http.MethodGet, "/api/v1/games", nil))
	var games struct {
		Games []string `json:"games"`
	}
	if err := json.Unmarshal(decodeEnvelope(t, rec).Data, &games); err != nil {
		t.Fatalf("decode games: %v", err)
	}
	if len(games.Games) != 2 || games.Games[0] != "Apex" {
		t.Errorf("games = %v, want sorted [Apex Factorio]", games.Games)
	}
}

func TestSessionsFiltersByUser(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t, []models.Session{
		testSession("Factorio", "wren", now20260828(9), time.Hour),
		testSession("Apex", "lobabob", now20260828(10), time.Hour),
	})

	rec := httptest.NewRecorder()
	h.Sessions(rec, httptest.NewRequest(http.MethodGet, "/api/v1/sessions?user=wren", nil))

	var body struct {
		Sessions []models.Session `json:"sessions"`
		Count    int              `json:"count"`
	}
	if err := json.Unmarshal(decodeEnvelope(t, rec).Data, &body); err != nil {
		t.Fatalf("decode sessions: %v", err)
	}
	if body.Count != 1 || len(body.Sessions) != 1 || body.Sessions[0].User != "wren" {
		t.Errorf("filtered sessions = %+v", body)
	}
}

func TestSessionsEmptyIsArrayNotNull(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t, nil)

	rec := httptest.NewRecorder()
	h.Sessions(rec, httptest.NewRequest(http.MethodGet, "/api/v1/sessions", nil))

	var body struct {
		Sessions json.RawMessage `json:"sessions"`
	}
	if err := json.Unmarshal(decodeEnvelope(t, rec).Data, &body); err != nil {
		t.Fatalf("decode sessions: %v", err)
	}
	if string(body.Sessions) != "[]" {
		t.Errorf("sessions = %s, want []", body.Sessions)
	}
}

func TestGamesPlayedChart(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t, []models.Session{
		testSession("Factorio", "wren", now20260828(8), 2*time.Hour),
		testSession("Apex", "wren", now20260828(11), time.Hour),
	})

	rec := httptest.NewRecorder()
	h.GamesPlayed(rec, httptest.NewRequest(http.MethodGet, "/api/v1/charts/games-played", nil))

	var chart models.ChartData
	if err := json.Unmarshal(decodeEnvelope(t, rec).Data, &chart); err != nil {
		t.Fatalf("decode chart: %v", err)
	}
	if len(chart.Labels) != 2 || chart.Labels[0] != "Factorio" {
		t.Errorf("labels = %v, want Factorio first by playtime", chart.Labels)
	}
	if len(chart.Datasets) != 1 {
		t.Fatalf("datasets = %d, want 1", len(chart.Datasets))
	}
	if chart.Datasets[0].Data[0] != (2 * time.Hour).Milliseconds() {
		t.Errorf("Factorio total = %d", chart.Datasets[0].Data[0])
	}
}

func TestGamesPlayedRejectsBadPeriod(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t, nil)

	rec := httptest.NewRecorder()
	h.GamesPlayed(rec, httptest.NewRequest(http.MethodGet, "/api/v1/charts/games-played?period=5", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Error == nil || env.Error.Code != "VALIDATION_ERROR" {
		t.Errorf("error = %+v, want VALIDATION_ERROR", env.Error)
	}
}

func TestGamesPlayedRejectsNonNumericPeriod(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t, nil)

	rec := httptest.NewRecorder()
	h.GamesPlayed(rec, httptest.NewRequest(http.MethodGet, "/api/v1/charts/games-played?period=week", nil))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestActivityTrendUsesHourAxisForDayPeriod(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t, []models.Session{
		testSession("Factorio", "wren", now20260828(9), time.Hour),
	})

	rec := httptest.NewRecorder()
	h.ActivityTrend(rec, httptest.NewRequest(http.MethodGet, "/api/v1/charts/activity-trend?period=1", nil))

	var chart models.ChartData
	if err := json.Unmarshal(decodeEnvelope(t, rec).Data, &chart); err != nil {
		t.Fatalf("decode chart: %v", err)
	}
	if len(chart.Labels) != 24 {
		t.Fatalf("labels = %d, want 24 hour slots", len(chart.Labels))
	}
	if chart.Labels[0] != "12 AM" {
		t.Errorf("first label = %q", chart.Labels[0])
	}
}

func TestGameDetailsRequiresGameParam(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t, nil)

	rec := httptest.NewRecorder()
	h.GameDetails(rec, httptest.NewRequest(http.MethodGet, "/api/v1/charts/game-details", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Error == nil || env.Error.Code != "VALIDATION_ERROR" {
		t.Errorf("error = %+v", env.Error)
	}
}

func TestGameDetailsBreaksDownByUser(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t, []models.Session{
		testSession("Factorio", "wren", now20260828(8), 2*time.Hour),
		testSession("Factorio", "lobabob", now20260828(10), time.Hour),
		testSession("Apex", "wren", now20260828(12), 5*time.Hour),
	})

	rec := httptest.NewRecorder()
	h.GameDetails(rec, httptest.NewRequest(http.MethodGet, "/api/v1/charts/game-details?game=Factorio", nil))

	var chart models.ChartData
	if err := json.Unmarshal(decodeEnvelope(t, rec).Data, &chart); err != nil {
		t.Fatalf("decode chart: %v", err)
	}
	if len(chart.Labels) != 2 || chart.Labels[0] != "wren" {
		t.Errorf("labels = %v, want wren first by active time", chart.Labels)
	}
}

func TestTimelineWindowBounds(t *testing.T) {
	t.Parallel()

	h, now := newTestHandler(t, []models.Session{
		testSession("Factorio", "wren", now20260828(13), time.Hour),
	})

	rec := httptest.NewRecorder()
	h.Timeline(rec, httptest.NewRequest(http.MethodGet, "/api/v1/charts/timeline", nil))

	var data models.TimelineData
	if err := json.Unmarshal(decodeEnvelope(t, rec).Data, &data); err != nil {
		t.Fatalf("decode timeline: %v", err)
	}
	if data.RangeEnd != now.UnixMilli() {
		t.Errorf("range_end = %d, want %d", data.RangeEnd, now.UnixMilli())
	}
	if data.RangeEnd-data.RangeStart != (24 * time.Hour).Milliseconds() {
		t.Errorf("window = %dms, want 24h", data.RangeEnd-data.RangeStart)
	}
	if len(data.Series) != 1 || data.Series[0].Name != "Factorio" {
		t.Errorf("series = %+v", data.Series)
	}
}

func TestRefreshWithoutRefresherIsUnavailable(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t, nil)

	rec := httptest.NewRecorder()
	h.Refresh(rec, httptest.NewRequest(http.MethodPost, "/api/v1/refresh", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Error == nil || env.Error.Code != "UPSTREAM_UNAVAILABLE" {
		t.Errorf("error = %+v", env.Error)
	}
}

func TestHandlerRejectsWrongMethod(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t, nil)

	rec := httptest.NewRecorder()
	h.Users(rec, httptest.NewRequest(http.MethodPost, "/api/v1/users", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Error == nil || env.Error.Code != "METHOD_NOT_ALLOWED" {
		t.Errorf("error = %+v", env.Error)
	}
}

func TestGenerateETag(t *testing.T) {
	t.Parallel()

	data := []byte(`{"status":"success"}`)
	if generateETag(data) != generateETag(data) {
		t.Error("ETag is not deterministic")
	}
	if generateETag(data) == generateETag([]byte(`{"status":"error"}`)) {
		t.Error("distinct payloads share an ETag")
	}
	if generateETag(nil) == "" {
		t.Error("empty payload should still produce an ETag")
	}
}

func TestSanitizeLogValue(t *testing.T) {
	t.Parallel()

	got := sanitizeLogValue("line1\nline2\tx\x00")
	if got != `line1\x0aline2\x09x\x00` {
		t.Errorf("sanitized = %q", got)
	}
}
