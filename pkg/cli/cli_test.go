package cli

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes the root command with args against a fake facade server.
func runCLI(t *testing.T, srv *httptest.Server, args ...string) error {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	root := newRootCmd()
	root.SetArgs(append([]string{"--host", srv.URL, "-o", "json"}, args...))
	return root.Execute()
}

func TestHealthCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
			"openmetadata_healthy": true,
			"message":              "ok",
		})
	}))
	defer srv.Close()

	require.NoError(t, runCLI(t, srv, "health"))
}

func TestMetadataCommand(t *testing.T) {
	t.Run("passes_option_flags", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/service/mysql_prod/metadata", r.URL.Path)
			assert.Equal(t, "true", r.URL.Query().Get("include_lineage"))
			assert.Empty(t, r.URL.Query().Get("include_sample_data"))
			json.NewEncoder(w).Encode(map[string]any{"summary": map[string]any{}}) //nolint:errcheck
		}))
		defer srv.Close()

		require.NoError(t, runCLI(t, srv, "metadata", "mysql_prod", "--lineage"))
	})

	t.Run("missing_service_fails", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]any{"code": 404, "message": "not found"}) //nolint:errcheck
		}))
		defer srv.Close()

		err := runCLI(t, srv, "metadata", "missing")
		require.Error(t, err)
		apiErr, ok := err.(*APIError)
		require.True(t, ok)
		assert.Equal(t, 404, apiErr.HTTPStatus)
	})

	t.Run("requires_service_argument", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		defer srv.Close()

		assert.Error(t, runCLI(t, srv, "metadata"))
	})
}

func TestTablesCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/service/svc/tables", r.URL.Path)
		assert.Equal(t, "db", r.URL.Query().Get("database_name"))
		assert.Equal(t, "false", r.URL.Query().Get("include_columns"))
		json.NewEncoder(w).Encode(map[string]any{"tables": []any{}, "count": 0}) //nolint:errcheck
	}))
	defer srv.Close()

	require.NoError(t, runCLI(t, srv, "tables", "svc", "--database", "db", "--no-columns"))
}

func TestCreateServiceCommand(t *testing.T) {
	t.Run("builds_request_from_flags", func(t *testing.T) {
		var got map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			json.NewEncoder(w).Encode(map[string]any{"message": "created"}) //nolint:errcheck
		}))
		defer srv.Close()

		require.NoError(t, runCLI(t, srv, "create-service", "pg",
			"--type", "PostgreSQL",
			"--connection", "hostPort=pg:5432",
			"--connection", "username=reader",
			"--tag", "Tier.Gold",
			"--owner", "data-team:team"))

		assert.Equal(t, "pg", got["name"])
		assert.Equal(t, "PostgreSQL", got["serviceType"])
		conn := got["connection"].(map[string]any)
		assert.Equal(t, "pg:5432", conn["hostPort"])
		assert.Equal(t, "reader", conn["username"])
		assert.Equal(t, []any{"Tier.Gold"}, got["tags"])
	})

	t.Run("rejects_malformed_connection_pair", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		defer srv.Close()

		err := runCLI(t, srv, "create-service", "pg", "--type", "PostgreSQL",
			"--connection", "no-equals-sign")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "key=value")
	})
}

func TestOutputFormatValidation(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	t.Setenv("HOME", t.TempDir())
	root := newRootCmd()
	root.SetArgs([]string{"--host", srv.URL, "-o", "xml", "health"})
	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output format")
}
