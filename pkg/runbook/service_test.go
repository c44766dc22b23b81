package runbook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stanley-ops/stanley/pkg/tools"
)

// testTransport redirects GitHub requests to the test server.
type testTransport struct {
	server   *httptest.Server
	delegate http.RoundTripper
}

func (t *testTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.URL.Host == "api.github.com" || req.URL.Host == "raw.githubusercontent.com" {
		parsed, _ := url.Parse(t.server.URL)
		req.URL.Scheme = parsed.Scheme
		req.URL.Host = parsed.Host
	}
	return t.delegate.RoundTrip(req)
}

func newTestService(server *httptest.Server, ttl time.Duration) *Service {
	svc := NewService(Config{
		RepoURL:  "https://github.com/acme/runbooks/tree/main/docs",
		CacheTTL: ttl,
	})
	svc.github.httpClient = &http.Client{
		Transport: &testTransport{server: server, delegate: http.DefaultTransport},
	}
	return svc
}

func TestService_FetchByName(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte("# payment-api runbook\n\n1. Check the queue depth"))
	}))
	defer server.Close()

	svc := newTestService(server, time.Minute)

	content, err := svc.Fetch(context.Background(), "payment-api")
	require.NoError(t, err)
	assert.Contains(t, content, "payment-api runbook")
	assert.Equal(t, "/acme/runbooks/refs/heads/main/docs/payment-api.md", gotPath)
}

func TestService_FetchByURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("# ad-hoc runbook"))
	}))
	defer server.Close()

	svc := newTestService(server, time.Minute)

	content, err := svc.Fetch(context.Background(), server.URL+"/org/repo/blob/main/adhoc.md")
	require.NoError(t, err)
	assert.Equal(t, "# ad-hoc runbook", content)
}

func TestService_FetchCaches(t *testing.T) {
	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("content"))
	}))
	defer server.Close()

	svc := newTestService(server, time.Minute)

	_, err := svc.Fetch(context.Background(), "payment-api")
	require.NoError(t, err)
	_, err = svc.Fetch(context.Background(), "payment-api")
	require.NoError(t, err)
	assert.Equal(t, int64(1), hits.Load())
}

func TestService_CacheExpires(t *testing.T) {
	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("content"))
	}))
	defer server.Close()

	svc := newTestService(server, time.Nanosecond)

	_, err := svc.Fetch(context.Background(), "payment-api")
	require.NoError(t, err)
	time.Sleep(time.Millisecond)
	_, err = svc.Fetch(context.Background(), "payment-api")
	require.NoError(t, err)
	assert.Equal(t, int64(2), hits.Load())
}

func TestService_FetchValidation(t *testing.T) {
	svc := NewService(Config{})

	_, err := svc.Fetch(context.Background(), "  ")
	require.Error(t, err)

	// Name lookup without a configured repo
	_, err = svc.Fetch(context.Background(), "payment-api")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no runbook repository configured")
}

func TestService_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/acme/runbooks/contents/docs", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]map[string]string{
			{"name": "payment-api.md", "path": "docs/payment-api.md", "type": "file",
				"html_url": "https://github.com/acme/runbooks/blob/main/docs/payment-api.md"},
			{"name": "README.txt", "path": "docs/README.txt", "type": "file"},
		})
	}))
	defer server.Close()

	svc := newTestService(server, time.Minute)

	files, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"https://github.com/acme/runbooks/blob/main/docs/payment-api.md"}, files)
}

func TestService_RegisterToolOverridesStub(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("# fetched runbook"))
	}))
	defer server.Close()

	registry := tools.NewRegistry()
	tools.RegisterBuiltinTools(registry)

	svc := newTestService(server, time.Minute)
	svc.RegisterTool(registry)

	tool, ok := registry.Get("get_runbook")
	require.True(t, ok)

	content, err := tool.Handler(context.Background(), json.RawMessage(`{"runbook":"payment-api"}`))
	require.NoError(t, err)
	assert.Equal(t, "# fetched runbook", content)
}
