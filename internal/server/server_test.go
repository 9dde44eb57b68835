package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NickMcConnell/FAangband-sub006/internal/design"
	"github.com/NickMcConnell/FAangband-sub006/internal/domain"
	"github.com/NickMcConnell/FAangband-sub006/internal/handler"
	"github.com/NickMcConnell/FAangband-sub006/internal/naming"
	"github.com/NickMcConnell/FAangband-sub006/internal/registry"
	"github.com/NickMcConnell/FAangband-sub006/internal/repository/jsonfile"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	namer, err := naming.NewNamer("")
	require.NoError(t, err)
	svc := design.NewService(registry.Kinds(), namer)
	store, err := jsonfile.NewStore(t.TempDir(), registry.Kinds())
	require.NoError(t, err)
	return NewServer(0, nil, nil, svc, registry.Kinds(), store)
}

func TestServerHealthEndpoints(t *testing.T) {
	srv := testServer(t)

	for _, path := range []string{"/healthz", "/readyz", "/version"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestServerPreviewEndpoint(t *testing.T) {
	srv := testServer(t)

	body := bytes.NewBufferString(`{"kind":"Long Sword","potential":5000,"seed":17}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/preview", body)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp handler.PreviewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(17), resp.Seed)
	assert.Equal(t, "Long Sword", resp.Item.KindName)
	assert.NotEmpty(t, resp.Item.Name)
}

func TestServerPreviewRejectsUnknownKind(t *testing.T) {
	srv := testServer(t)

	body := bytes.NewBufferString(`{"kind":"Vorpal Blade"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/preview", body)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServerGenerateAndFetchRun(t *testing.T) {
	srv := testServer(t)

	body := bytes.NewBufferString(`{"seed":99,"count":5,"max_depth":40}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/runs/", body)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created handler.GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, int64(99), created.Seed)
	assert.Equal(t, 5, created.Count)

	req = httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/runs/%s", created.RunID), nil)
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var run handler.RunResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &run))
	assert.Len(t, run.Items, 5)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/runs/", nil)
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var summaries []domain.RunSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summaries))
	require.Len(t, summaries, 1)
	assert.Equal(t, 5, summaries[0].ItemCount)
}

func TestServerGetRunNotFound(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/runs/00000000-0000-0000-0000-000000000001", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServerRejectsBadCount(t *testing.T) {
	srv := testServer(t)

	for _, payload := range []string{
		`{"seed":1,"count":0}`,
		`{"seed":1,"count":10001}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/runs/", bytes.NewBufferString(payload))
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code, payload)

		var resp handler.ValidationErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Contains(t, resp.Fields, "count", payload)
	}
}

func TestServerPreviewRequiresKindOrCategory(t *testing.T) {
	srv := testServer(t)

	body := bytes.NewBufferString(`{"potential":1000}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/preview", body)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp handler.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Fields, "category")
}
