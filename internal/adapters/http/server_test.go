package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aretw0/graft/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	engine, _ := testutils.NewMathEngine(t)
	return NewHandler(engine)
}

func serve(t *testing.T, handler http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()

	req, _ := http.NewRequest("GET", path, nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestGetHealth(t *testing.T) {
	rr := serve(t, newTestHandler(t), "/health")

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, "ok", resp["status"])
}

func TestGetInfo(t *testing.T) {
	rr := serve(t, newTestHandler(t), "/info")

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, "graft-http", resp["app"])
	assert.NotEmpty(t, resp["version"])
}

func TestListModules(t *testing.T) {
	rr := serve(t, newTestHandler(t), "/modules")

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp []struct {
		Name  string `json:"name"`
		Title string `json:"title"`
		Types int    `json:"types"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "math", resp[0].Name)
	assert.Equal(t, "Math", resp[0].Title)
	assert.Equal(t, 4, resp[0].Types)
}

func TestGetEditor(t *testing.T) {
	handler := newTestHandler(t)

	rr := serve(t, handler, "/node-edit/math")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rr.Body.String(), "litegraph.js")
	assert.Contains(t, rr.Body.String(), "/node-edit/math/nodes.js")
	assert.Contains(t, rr.Body.String(), "<title>math - graft editor</title>")

	rr = serve(t, handler, "/node-edit/audio")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "unknown module: audio")
}

func TestGetEditorCustomTitle(t *testing.T) {
	engine, _ := testutils.NewMathEngine(t)
	handler := NewHandler(engine, WithTitle("studio"))

	rr := serve(t, handler, "/node-edit/math")
	assert.Contains(t, rr.Body.String(), "<title>math - studio</title>")
}

func TestGetScript(t *testing.T) {
	handler := newTestHandler(t)

	rr := serve(t, handler, "/node-edit/math/nodes.js")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/javascript")
	assert.Contains(t, rr.Body.String(), `LiteGraph.registerNodeType("math/binop", binop);`)

	rr = serve(t, handler, "/node-edit/audio/nodes.js")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestMetricsCountScriptRequests(t *testing.T) {
	handler := newTestHandler(t)

	serve(t, handler, "/node-edit/math/nodes.js")
	serve(t, handler, "/node-edit/audio/nodes.js")

	rr := serve(t, handler, "/metrics")
	assert.Equal(t, http.StatusOK, rr.Code)

	body := rr.Body.String()
	assert.Contains(t, body, `graft_script_requests_total{module="math",status="ok"} 1`)
	assert.Contains(t, body, `graft_script_requests_total{module="audio",status="not_found"} 1`)
}

func TestCORSPreflight(t *testing.T) {
	handler := newTestHandler(t)

	req, _ := http.NewRequest("OPTIONS", "/node-edit/math", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}
