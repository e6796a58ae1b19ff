package vault_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanLimbu/task-tracker/internal/envvar/vault"
)

func newVaultServer(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Vault-Token") != "token" {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"errors":["permission denied"]}`))

			return
		}

		switch r.URL.Path {
		case "/v1/secret/data/database":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"data":{"data":{"password":"s3cr3t"},"metadata":{"version":1}}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"errors":[]}`))
		}
	}))

	t.Cleanup(srv.Close)

	return srv
}

func TestProvider_Get(t *testing.T) {
	srv := newVaultServer(t)

	provider, err := vault.New("token", srv.URL, "secret/data")
	require.NoError(t, err)

	v, err := provider.Get("database:password")
	require.NoError(t, err)
	assert.Equal(t, "s3cr3t", v)

	_, err = provider.Get("database:username")
	assert.Error(t, err)

	_, err = provider.Get("missing:password")
	assert.Error(t, err)

	_, err = provider.Get("database")
	assert.Error(t, err)
}
