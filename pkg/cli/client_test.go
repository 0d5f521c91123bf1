package cli

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Get(t *testing.T) {
	t.Run("decodes_response_and_sends_token", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/health", r.URL.Path)
			assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
			json.NewEncoder(w).Encode(map[string]any{"openmetadata_healthy": true}) //nolint:errcheck
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "tok")
		var out map[string]any
		require.NoError(t, c.Get("/health", nil, &out))
		assert.Equal(t, true, out["openmetadata_healthy"])
	})

	t.Run("query_params_encoded", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "true", r.URL.Query().Get("include_lineage"))
			json.NewEncoder(w).Encode(map[string]any{}) //nolint:errcheck
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "")
		q := url.Values{}
		q.Set("include_lineage", "true")
		var out map[string]any
		require.NoError(t, c.Get("/service/x/metadata", q, &out))
	})

	t.Run("error_body_becomes_api_error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
				"code":    404,
				"message": "service \"missing\" not found",
			})
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "")
		err := c.Get("/service/missing/metadata", nil, &map[string]any{})
		require.Error(t, err)

		apiErr, ok := err.(*APIError)
		require.True(t, ok)
		assert.Equal(t, http.StatusNotFound, apiErr.HTTPStatus)
		assert.Equal(t, 404, apiErr.Code)
		assert.Contains(t, apiErr.Message, "missing")
	})

	t.Run("non_json_error_body_still_reported", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "gateway timeout", http.StatusGatewayTimeout)
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "")
		err := c.Get("/health", nil, &map[string]any{})

		apiErr, ok := err.(*APIError)
		require.True(t, ok)
		assert.Equal(t, http.StatusGatewayTimeout, apiErr.HTTPStatus)
		assert.Contains(t, apiErr.Message, "gateway timeout")
	})
}

func TestClient_Post(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "pg", body["name"])
		json.NewEncoder(w).Encode(map[string]any{"message": "created"}) //nolint:errcheck
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	var out struct {
		Message string `json:"message"`
	}
	require.NoError(t, c.Post("/service", map[string]any{"name": "pg"}, &out))
	assert.Equal(t, "created", out.Message)
}
