package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/halstrom/app-registry/config"
	"github.com/halstrom/app-registry/db"
	"github.com/halstrom/app-registry/models"
)

func newTestServer(t *testing.T) *Server {
	gin.SetMode(gin.TestMode)

	cfg := config.Default()
	cfg.Database.Path = filepath.Join(t.TempDir(), "test.db")

	database, err := db.Open(cfg.Database.Path, "")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	return NewServer(cfg, database)
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func doRaw(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	req, err := http.NewRequest(method, path, bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decodeAppDTOBody(t *testing.T, w *httptest.ResponseRecorder) models.AppDTO {
	var dto models.AppDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dto))
	return dto
}

func decodeErrorBody(t *testing.T, w *httptest.ResponseRecorder) models.ErrorDTO {
	var dto models.ErrorDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dto))
	return dto
}

func appBody(name, author, version string) map[string]string {
	return map[string]string{
		"appName":    name,
		"devName":    author,
		"appVersion": version,
	}
}
