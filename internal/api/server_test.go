// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/legaldesign/internal/core/blog"
	"github.com/taibuivan/legaldesign/internal/core/calculator"
	"github.com/taibuivan/legaldesign/internal/core/cms"
	"github.com/taibuivan/legaldesign/internal/core/content"
	"github.com/taibuivan/legaldesign/internal/core/dashboard"
	"github.com/taibuivan/legaldesign/internal/core/decision"
	"github.com/taibuivan/legaldesign/internal/core/process"
	"github.com/taibuivan/legaldesign/internal/core/reference"
	"github.com/taibuivan/legaldesign/internal/core/search"
	"github.com/taibuivan/legaldesign/internal/core/seed"
	"github.com/taibuivan/legaldesign/internal/platform/config"
	"github.com/taibuivan/legaldesign/internal/platform/constants"
	"github.com/taibuivan/legaldesign/internal/platform/docstore"
	"github.com/taibuivan/legaldesign/internal/platform/sec"
	"github.com/taibuivan/legaldesign/internal/users/auth"
)

const adminPassword = "admin123"

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := docstore.NewMemory()

	client := redis.NewClient(&redis.Options{Addr: miniredis.RunT(t).Addr()})
	t.Cleanup(func() { _ = client.Close() })

	tokens, err := sec.NewTokenService("test-secret", constants.AuthIssuer)
	require.NoError(t, err)

	authService := auth.NewService(auth.NewUserRepository(store), auth.NewRevocationRepository(client), tokens, logger)
	require.NoError(t, authService.EnsureDefaultAdmin(ctx, adminPassword))

	searchService := search.NewService(store, nil, logger)
	processService := process.NewService(process.NewDocumentRepository(store), searchService, logger)
	calculatorService := calculator.NewService(calculator.NewDocumentRepository(store), logger)
	referenceService := reference.NewService(reference.NewDocumentRepository(store), logger)
	blogService := blog.NewService(blog.NewDocumentRepository(store), searchService, logger)
	cmsService := cms.NewService(cms.NewDocumentRepository(store), logger)

	seeder := seed.NewSeeder(store, seed.Writers{
		Processes:            seed.Create(processService.Create),
		CalculatorParameters: seed.Create(calculatorService.Create),
		DocumentDescriptions: seed.Create(referenceService.Create),
		BlogPosts:            seed.Create(blogService.Create),
		LegalAid:             cmsService.EnsureLegalAid,
	}, logger)

	liveness, readiness := NewHealthHandlers([]DependencyCheck{
		{Name: "store", Probe: store.Ping},
		{Name: "redis", Probe: func(ctx context.Context) error { return client.Ping(ctx).Err() }},
	}, logger)

	cfg := &config.Config{ServerPort: "0", CORSOrigins: []string{"*"}}
	server := NewServer(ctx, cfg, logger, authService, Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Auth:       auth.NewHandler(authService),
		Processes:  process.NewHandler(processService),
		Calculator: calculator.NewHandler(calculatorService),
		Content:    content.NewHandler(content.NewService(content.NewDocumentRepository(store), logger)),
		Blog:       blog.NewHandler(blogService),
		Decisions:  decision.NewHandler(decision.NewService(decision.NewDocumentRepository(store), searchService, logger)),
		Reference:  reference.NewHandler(referenceService),
		CMS:        cms.NewHandler(cmsService),
		Search:     search.NewHandler(searchService),
		Dashboard:  dashboard.NewHandler(dashboard.NewService(store)),
		Seed:       seed.NewHandler(seeder),
	})

	return server.Handler()
}

type apiClient struct {
	t       *testing.T
	handler http.Handler
	token   string
}

func (c *apiClient) do(method, path, body string) (int, map[string]any) {
	c.t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	request := httptest.NewRequest(method, path, reader)
	if c.token != "" {
		request.Header.Set("Authorization", "Bearer "+c.token)
	}

	recorder := httptest.NewRecorder()
	c.handler.ServeHTTP(recorder, request)

	var decoded map[string]any
	if err := json.Unmarshal(recorder.Body.Bytes(), &decoded); err != nil {
		var list []any
		require.NoError(c.t, json.Unmarshal(recorder.Body.Bytes(), &list), recorder.Body.String())
		decoded = map[string]any{"items": list}
	}
	return recorder.Code, decoded
}

func login(t *testing.T, handler http.Handler) *apiClient {
	t.Helper()
	anonymous := &apiClient{t: t, handler: handler}

	status, body := anonymous.do(http.MethodPost, "/api/admin/login", `{"username":"admin","password":"`+adminPassword+`"}`)
	require.Equal(t, http.StatusOK, status)
	return &apiClient{t: t, handler: handler, token: body["access_token"].(string)}
}

/*
TestServer_Infrastructure covers the greeting and the probes.
*/
func TestServer_Infrastructure(t *testing.T) {
	anonymous := &apiClient{t: t, handler: newTestServer(t)}

	status, body := anonymous.do(http.MethodGet, "/api/", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, constants.WelcomeMessage, body["message"])

	status, body = anonymous.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])

	status, body = anonymous.do(http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ready", body["status"])
	assert.Len(t, body["checks"], 2)
}

/*
TestServer_AdminGate verifies that the admin scope needs a token, except the login.
*/
func TestServer_AdminGate(t *testing.T) {
	handler := newTestServer(t)
	anonymous := &apiClient{t: t, handler: handler}

	for _, path := range []string{"/api/admin/blog-posts", "/api/admin/dashboard", "/api/admin/me"} {
		status, _ := anonymous.do(http.MethodGet, path, "")
		assert.Equal(t, http.StatusUnauthorized, status, path)
	}

	status, body := anonymous.do(http.MethodPost, "/api/admin/login", `{"username":"admin","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, auth.MessageBadCredentials, body["detail"])

	admin := login(t, handler)
	status, body = admin.do(http.MethodGet, "/api/admin/dashboard", "")
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1250, body["total_visits"])

	status, _ = admin.do(http.MethodPost, "/api/admin/logout", "")
	require.Equal(t, http.StatusOK, status)

	status, _ = admin.do(http.MethodGet, "/api/admin/dashboard", "")
	assert.Equal(t, http.StatusUnauthorized, status)
}

/*
TestServer_BlogPublishCycle follows a post from draft to published and back.
*/
func TestServer_BlogPublishCycle(t *testing.T) {
	handler := newTestServer(t)
	admin := login(t, handler)
	anonymous := &apiClient{t: t, handler: handler}

	status, created := admin.do(http.MethodPost, "/api/admin/blog-posts", `{"title":"Kira Artışı","isPublished":false}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "kira-artisi", created["slug"])
	assert.Nil(t, created["published_at"])
	id := created["id"].(string)

	status, _ = anonymous.do(http.MethodGet, "/api/blog-posts/kira-artisi", "")
	assert.Equal(t, http.StatusNotFound, status)

	status, updated := admin.do(http.MethodPut, "/api/admin/blog-posts/"+id, `{"is_published":true}`)
	require.Equal(t, http.StatusOK, status)
	assert.NotNil(t, updated["published_at"])
	assert.Equal(t, updated["published_at"], updated["publishedAt"])

	status, public := anonymous.do(http.MethodGet, "/api/blog-posts/kira-artisi", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Kira Artışı", public["title"])

	status, listing := anonymous.do(http.MethodGet, "/api/blog-posts", "")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, listing["items"], 1)

	status, hits := anonymous.do(http.MethodGet, "/api/search?q=kira&type=blog", "")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, hits["blog_posts"], 1)

	status, updated = admin.do(http.MethodPut, "/api/admin/blog-posts/"+id, `{"is_published":false}`)
	require.Equal(t, http.StatusOK, status)
	assert.Nil(t, updated["published_at"])

	status, _ = anonymous.do(http.MethodGet, "/api/blog-posts/kira-artisi", "")
	assert.Equal(t, http.StatusNotFound, status)

	status, body := admin.do(http.MethodDelete, "/api/admin/blog-posts/"+id, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Blog post deleted successfully", body["message"])
}

/*
TestServer_DecisionDraftAndSearchType checks the public decision routes and
the search type parameter.
*/
func TestServer_DecisionDraftAndSearchType(t *testing.T) {
	handler := newTestServer(t)
	admin := login(t, handler)
	anonymous := &apiClient{t: t, handler: handler}

	status, created := admin.do(http.MethodPost, "/api/admin/supreme-court-decisions", `{"title":"Kıdem tazminatı kararı","is_published":false}`)
	require.Equal(t, http.StatusOK, status)
	id := created["id"].(string)

	status, listing := anonymous.do(http.MethodGet, "/api/supreme-court-decisions", "")
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, listing["items"])

	status, draft := anonymous.do(http.MethodGet, "/api/supreme-court-decisions/"+id, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Kıdem tazminatı kararı", draft["title"])

	status, _ = anonymous.do(http.MethodGet, "/api/supreme-court-decisions/missing", "")
	assert.Equal(t, http.StatusNotFound, status)

	status, hits := anonymous.do(http.MethodGet, "/api/search?q=tazminat&type=videos", "")
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, hits)

	status, _ = anonymous.do(http.MethodGet, "/api/search?q=t", "")
	assert.Equal(t, http.StatusUnprocessableEntity, status)
}

/*
TestServer_MigrateThenBrowse loads the catalog through the admin endpoint.
*/
func TestServer_MigrateThenBrowse(t *testing.T) {
	handler := newTestServer(t)
	admin := login(t, handler)
	anonymous := &apiClient{t: t, handler: handler}

	status, report := admin.do(http.MethodPost, "/api/admin/migrate-frontend-data", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Migration completed", report["message"])

	status, processes := anonymous.do(http.MethodGet, "/api/legal-processes", "")
	require.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, processes["items"])

	status, parameters := anonymous.do(http.MethodGet, "/api/calculator-parameters", "")
	require.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, parameters["items"])
}

var errProbe = errors.New("connection refused")

/*
TestReadiness_Degraded reports 503 when a dependency fails.
*/
func TestReadiness_Degraded(t *testing.T) {
	_, readiness := NewHealthHandlers([]DependencyCheck{
		{Name: "store", Probe: func(context.Context) error { return nil }},
		{Name: "search", Probe: func(context.Context) error { return errProbe }},
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	recorder := httptest.NewRecorder()
	readiness(recorder, httptest.NewRequest(http.MethodGet, "/ready", nil))

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"status":"degraded"`)
	assert.Contains(t, recorder.Body.String(), "connection refused")
}
