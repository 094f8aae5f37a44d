package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/benventuring/backend/internal/config"
	"github.com/benventuring/backend/internal/models"
	"github.com/benventuring/backend/internal/storage/storagetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func testConfig() *config.Config {
	return &config.Config{
		Database:  config.DatabaseConfig{URL: "mongodb://localhost:27017", Name: "test", Timeout: time.Second},
		Server:    config.ServerConfig{Port: 8000},
		Logging:   config.LoggingConfig{Level: "info"},
		CORS:      config.CORSConfig{AllowedOrigins: []string{"*"}},
		RateLimit: config.RateLimitConfig{RequestsPerMinute: 1000},
	}
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRouter_Root(t *testing.T) {
	r := newRouter(testConfig(), storagetest.New(), zap.NewNop())

	w := do(t, r, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Ben Venturing API is running"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = do(t, r, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRouter_LeadDefaults(t *testing.T) {
	store := storagetest.New()
	r := newRouter(testConfig(), store, zap.NewNop())

	w := do(t, r, http.MethodPost, "/api/leads", `{"email":"a@b.com"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.CreatedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Len(t, resp.ID, 24)

	docs := store.Documents(models.CollectionLead)
	require.Len(t, docs, 1)
	assert.Equal(t, "a@b.com", docs[0]["email"])
	assert.Equal(t, "chatbot", docs[0]["source"])
	assert.Contains(t, docs[0], "note")
	assert.Nil(t, docs[0]["note"])

	w = do(t, r, http.MethodPost, "/api/leads", `{"email":"c@d.com","source":null}`)
	require.Equal(t, http.StatusOK, w.Code)
	docs = store.Documents(models.CollectionLead)
	require.Len(t, docs, 2)
	assert.Contains(t, docs[1], "source")
	assert.Nil(t, docs[1]["source"])
}

func TestRouter_InquiryDefaults(t *testing.T) {
	store := storagetest.New()
	r := newRouter(testConfig(), store, zap.NewNop())

	w := do(t, r, http.MethodPost, "/api/inquiries", `{"name":"Ada","email":"ada@example.com","projectType":"Web"}`)
	require.Equal(t, http.StatusOK, w.Code)

	docs := store.Documents(models.CollectionInquiry)
	require.Len(t, docs, 1)
	assert.Equal(t, "new", docs[0]["status"])
	assert.Equal(t, "Web", docs[0]["projectType"])
}

func TestRouter_InvalidBodiesAreNotStored(t *testing.T) {
	store := storagetest.New()
	r := newRouter(testConfig(), store, zap.NewNop())

	requests := []struct {
		target string
		body   string
	}{
		{target: "/api/leads", body: `{"source":"footer"}`},
		{target: "/api/leads", body: `{"email":"a@b.com"} this is not json`},
		{target: "/api/inquiries", body: `{"name":"Ada"`},
		{target: "/api/inquiries", body: `{"name":"Ada","email":"ada@example.com"}{}`},
	}
	for _, req := range requests {
		w := do(t, r, http.MethodPost, req.target, req.body)
		assert.GreaterOrEqual(t, w.Code, http.StatusBadRequest, req.body)
		assert.Less(t, w.Code, http.StatusInternalServerError, req.body)
	}
	assert.Zero(t, store.InsertCalls)
	assert.Zero(t, store.Count(models.CollectionLead))
	assert.Zero(t, store.Count(models.CollectionInquiry))
}

func TestRouter_CoursesSeededOnce(t *testing.T) {
	store := storagetest.New()
	ensureSeedIndexes(context.Background(), store, zap.NewNop())
	r := newRouter(testConfig(), store, zap.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w := do(t, r, http.MethodGet, "/api/courses", "")
			assert.Equal(t, http.StatusOK, w.Code)
		}()
	}
	wg.Wait()

	w := do(t, r, http.MethodGet, "/api/courses", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ListResponse[models.Course]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "launch-your-life", resp.Items[0].ID)
	assert.Len(t, resp.Items[0].Modules, 3)
	assert.Equal(t, 1, store.Count(models.CollectionCourse))
}

func TestEnsureSeedIndexes(t *testing.T) {
	t.Run("indexes seeded collections", func(t *testing.T) {
		store := storagetest.New()

		ensureSeedIndexes(context.Background(), store, zap.NewNop())

		assert.Equal(t, []string{"id"}, store.UniqueIndexes(models.CollectionCourse))
		assert.Equal(t, []string{"id"}, store.UniqueIndexes(models.CollectionPortfolioItem))
		assert.Empty(t, store.UniqueIndexes(models.CollectionLead))
	})

	t.Run("skipped when storage is unavailable", func(t *testing.T) {
		store := storagetest.New()
		store.Unavailable = true

		ensureSeedIndexes(context.Background(), store, zap.NewNop())

		assert.Empty(t, store.UniqueIndexes(models.CollectionCourse))
	})

	t.Run("index failure is logged", func(t *testing.T) {
		store := storagetest.New()
		store.IndexErr = errors.New("not authorized")
		core, logs := observer.New(zapcore.WarnLevel)

		ensureSeedIndexes(context.Background(), store, zap.New(core))

		assert.Equal(t, 1, logs.FilterMessage("Failed to create seed indexes").Len())
	})
}

func TestRouter_PortfolioSeeded(t *testing.T) {
	store := storagetest.New()
	r := newRouter(testConfig(), store, zap.NewNop())

	w := do(t, r, http.MethodGet, "/api/portfolio", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ListResponse[models.PortfolioItem]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "p1", resp.Items[0].ID)
	assert.Equal(t, "p2", resp.Items[1].ID)
}

func TestRouter_StorageUnavailable(t *testing.T) {
	store := storagetest.New()
	store.Unavailable = true
	cfg := testConfig()
	cfg.Database.URL = ""
	r := newRouter(cfg, store, zap.NewNop())

	for _, target := range []string{"/api/courses", "/api/portfolio"} {
		w := do(t, r, http.MethodGet, target, "")
		assert.Equal(t, http.StatusInternalServerError, w.Code, target)
	}

	w := do(t, r, http.MethodPost, "/api/leads", `{"email":"a@b.com"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w = do(t, r, http.MethodGet, "/test", "")
	require.Equal(t, http.StatusOK, w.Code)
	var report models.DiagnosticReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, models.DatabaseUnavailable, report.State)
	assert.Equal(t, "❌ Not Set", report.DatabaseURL)
	assert.Equal(t, "✅ Set", report.DatabaseName)
	assert.Equal(t, "Not Connected", report.ConnectionStatus)
	assert.Empty(t, report.Collections)
}

func TestRouter_Diagnostics(t *testing.T) {
	store := storagetest.New()
	r := newRouter(testConfig(), store, zap.NewNop())

	do(t, r, http.MethodPost, "/api/leads", `{"email":"a@b.com"}`)

	w := do(t, r, http.MethodGet, "/test", "")
	require.Equal(t, http.StatusOK, w.Code)
	var report models.DiagnosticReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, models.DatabaseOperational, report.State)
	assert.Equal(t, "✅ Connected & Working", report.Database)
	assert.Equal(t, []string{models.CollectionLead}, report.Collections)
}

func TestRouter_Schema(t *testing.T) {
	r := newRouter(testConfig(), storagetest.New(), zap.NewNop())

	w := do(t, r, http.MethodGet, "/api/schema", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	for _, name := range []string{
		models.CollectionCourse,
		models.CollectionPortfolioItem,
		models.CollectionInquiry,
		models.CollectionLead,
	} {
		assert.Contains(t, resp, name)
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	r := newRouter(testConfig(), storagetest.New(), zap.NewNop())

	req := httptest.NewRequest(http.MethodOptions, "/api/leads", nil)
	req.Header.Set("Origin", "https://site.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_RateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit.RequestsPerMinute = 2
	r := newRouter(cfg, storagetest.New(), zap.NewNop())

	assert.Equal(t, http.StatusOK, do(t, r, http.MethodGet, "/api/health", "").Code)
	assert.Equal(t, http.StatusOK, do(t, r, http.MethodGet, "/api/health", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, do(t, r, http.MethodGet, "/api/health", "").Code)
}
