package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/251207-go-pkg-propexp/pkg/propexp"
	"github.com/lwmacct/251207-go-pkg-propexp/pkg/propstore"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store := propstore.NewMemoryStore()
	store.SetUser("name", "www")
	store.Put("host", "${name}.example.org", propstore.FileOrigin("build.properties"))
	store.Put("env.BASH_FUNC_x%%", "() { :; }", propstore.OriginEnv)

	r := propexp.New(store)
	_, err := r.ExpandAll()
	require.NoError(t, err)

	srv := httptest.NewServer(newHandler(store, func(key string) bool { return !r.IsOpaque(key) }))
	t.Cleanup(srv.Close)

	return srv
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()
	resp, err := http.Get(url) //nolint:noctx // test helper
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))

	return resp.StatusCode
}

func TestHandler_Health(t *testing.T) {
	srv := newTestServer(t)

	var body map[string]string
	assert.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/health", &body))
	assert.Equal(t, "ok", body["status"])
}

func TestHandler_Properties(t *testing.T) {
	srv := newTestServer(t)

	var entries []propstore.Entry
	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/properties", &entries))
	assert.Equal(t, []propstore.Entry{
		{Key: "name", Value: "www", Origin: propstore.OriginDefine},
		{Key: "host", Value: "www.example.org", Origin: propstore.OriginExpanded},
	}, entries)
}

func TestHandler_Property(t *testing.T) {
	srv := newTestServer(t)

	var e propstore.Entry
	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/properties/host", &e))
	assert.Equal(t, "www.example.org", e.Value)

	var notFound map[string]string
	assert.Equal(t, http.StatusNotFound, getJSON(t, srv.URL+"/properties/missing", &notFound))
	assert.Contains(t, notFound["error"], "missing")

	assert.Equal(t, http.StatusNotFound, getJSON(t, srv.URL+"/properties/env.BASH_FUNC_x%25%25", &notFound))
}
