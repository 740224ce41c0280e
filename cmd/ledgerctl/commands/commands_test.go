package commands

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitledger/internal/service"
	"github.com/mmynk/splitledger/internal/storage/sqlstore"
	"github.com/mmynk/splitledger/pkg/api"
	"github.com/mmynk/splitledger/pkg/api/apiconnect"
)

// newLedgerServer runs an unauthenticated LedgerService for the CLI to talk to.
func newLedgerServer(t *testing.T) string {
	t.Helper()

	store, err := sqlstore.OpenSQLite(filepath.Join(t.TempDir(), "cli.db"))
	require.NoError(t, err)

	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewLedgerServiceHandler(service.NewLedgerService(store, 0)))
	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})
	return server.URL
}

func run(t *testing.T, serverURL string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := NewRootCmd(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--server", serverURL}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestLedgerWorkflow(t *testing.T) {
	url := newLedgerServer(t)

	out, err := run(t, url, "people", "add", "Alice", "Bob", "Charlie")
	require.NoError(t, err)
	assert.Equal(t, "added Alice\nadded Bob\nadded Charlie\n", out)

	_, err = run(t, url, "expenses", "add", "Dinner", "30", "--paid-by", "alice", "--equal", "Alice,Bob,Charlie")
	require.NoError(t, err)

	out, err = run(t, url, "balances")
	require.NoError(t, err)
	assert.Equal(t, "Bob owes Alice 10.00\nCharlie owes Alice 10.00\n", out)

	out, err = run(t, url, "settle", "Bob", "Alice", "10", "--note", "cash")
	require.NoError(t, err)
	assert.Equal(t, "Bob paid Alice 10.00\n", out)

	out, err = run(t, url, "balances", "--members")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Charlie owes Alice 10.00\n"), out)
	assert.Contains(t, out, "30.00")

	out, err = run(t, url, "settlements", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "cash")

	out, err = run(t, url, "expenses", "list", "--splits")
	require.NoError(t, err)
	assert.Contains(t, out, "Dinner")
	assert.Contains(t, out, "30.00")

	_, err = run(t, url, "expenses", "add", "Old receipt", "3", "--paid-by", "Bob", "--split", "Bob=3", "--date", "1970-01-01")
	require.NoError(t, err)
	out, err = run(t, url, "expenses", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "1970-01-01")
}

func TestExpensesAdd_ReportsValidationMessages(t *testing.T) {
	url := newLedgerServer(t)
	_, err := run(t, url, "people", "add", "Alice", "Bob")
	require.NoError(t, err)

	_, err = run(t, url, "expenses", "add", "Taxi", "10", "--paid-by", "Alice", "--split", "Bob=5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Splits total ($5.00) must equal expense ($10.00).")

	_, err = run(t, url, "expenses", "add", "Taxi", "10", "--paid-by", "Alice", "--split", "Bob=5", "--dry-run")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Splits total ($5.00) must equal expense ($10.00).")

	out, err := run(t, url, "expenses", "add", "Taxi", "10", "--paid-by", "Alice", "--split", "Bob=5", "--split", "Alice=5", "--dry-run")
	require.NoError(t, err)
	assert.Equal(t, "valid: splits total 10.00\n", out)

	out, err = run(t, url, "expenses", "list")
	require.NoError(t, err)
	assert.Equal(t, "no expenses yet\n", out)
}

func TestPeopleRm_InUse(t *testing.T) {
	url := newLedgerServer(t)
	_, err := run(t, url, "people", "add", "Alice", "Bob")
	require.NoError(t, err)
	_, err = run(t, url, "settle", "Bob", "Alice", "3")
	require.NoError(t, err)

	_, err = run(t, url, "people", "rm", "Bob")
	assert.Error(t, err)

	_, err = run(t, url, "people", "rm", "Zed")
	assert.EqualError(t, err, `unknown person "Zed"`)
}

func TestParseSplits(t *testing.T) {
	people := []api.Person{{ID: "a", Name: "Alice"}, {ID: "b", Name: "Bob"}}

	splits, err := parseSplits(people, []string{"bob=2.50", "Alice=7.5"})
	require.NoError(t, err)
	assert.Equal(t, []api.Split{{PersonID: "b", Amount: 2.5}, {PersonID: "a", Amount: 7.5}}, splits)

	_, err = parseSplits(people, []string{"Bob"})
	assert.Error(t, err)
	_, err = parseSplits(people, []string{"Bob=abc"})
	assert.Error(t, err)
	_, err = parseSplits(people, []string{"Carol=1"})
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	got, err := parseDate("2024-03-09")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(1709942400), *got)

	got, err = parseDate("1970-01-01")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Zero(t, *got)

	got, err = parseDate("")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = parseDate("09/03/2024")
	assert.Error(t, err)
}
