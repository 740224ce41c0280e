package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitledger/internal/auth"
	"github.com/mmynk/splitledger/internal/config"
	"github.com/mmynk/splitledger/internal/storage/sqlstore"
	"github.com/mmynk/splitledger/pkg/api"
	"github.com/mmynk/splitledger/pkg/api/apiconnect"
)

func newTestServer(t *testing.T, authRequired bool, staticPath string) *httptest.Server {
	t.Helper()

	store, err := sqlstore.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	cfg := &config.Config{
		AuthRequired: authRequired,
		MaxGroupSize: 100,
		StaticPath:   staticPath,
	}
	handler, err := newHandler(cfg, store, auth.NewJWTManager("test-secret-value", time.Hour), prometheus.NewRegistry())
	require.NoError(t, err)

	server := httptest.NewServer(handler)
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})
	return server
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestHealthz(t *testing.T) {
	server := newTestServer(t, true, "")

	status, body := get(t, server.URL+"/healthz")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok\n", body)
}

func TestMetricsEndpointCountsRPCs(t *testing.T) {
	server := newTestServer(t, false, "")
	client := apiconnect.NewLedgerServiceClient(http.DefaultClient, server.URL)

	_, err := client.AddPerson(context.Background(), connect.NewRequest(&api.AddPersonRequest{Name: "Alice"}))
	require.NoError(t, err)

	status, body := get(t, server.URL+"/metrics")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `splitledger_rpc_requests_total{code="ok",procedure="/splitledger.v1.LedgerService/AddPerson"} 1`)
	assert.Contains(t, body, "splitledger_rpc_duration_seconds_bucket")
}

func TestAuthRequired(t *testing.T) {
	server := newTestServer(t, true, "")
	client := apiconnect.NewLedgerServiceClient(http.DefaultClient, server.URL)

	_, err := client.ListPeople(context.Background(), connect.NewRequest(&api.ListPeopleRequest{}))
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))
}

func TestPlainJSONCall(t *testing.T) {
	server := newTestServer(t, false, "")

	resp, err := http.Post(server.URL+apiconnect.LedgerServiceSplitEvenlyProcedure, "application/json",
		strings.NewReader(`{"total": 100, "person_ids": ["8f14e45f-ceea-467f-a8f8-3f0e1e9c2a11", "c9f0f895-fb98-4b91-b8f8-2a5b0b7f6d22", "45c48cce-2e2d-4fbd-aa1a-f1b0c6d2e333"]}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Contains(t, string(body), `"amount":33.34`)
}

func TestCORSPreflight(t *testing.T) {
	server := newTestServer(t, true, "")

	req, err := http.NewRequest(http.MethodOptions, server.URL+apiconnect.LedgerServiceListPeopleProcedure, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestStaticFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>ledger</h1>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o644))

	server := newTestServer(t, true, dir)

	_, body := get(t, server.URL+"/app.js")
	assert.Equal(t, "console.log(1)", body)

	_, body = get(t, server.URL+"/people/unknown")
	assert.Equal(t, "<h1>ledger</h1>", body)
}
