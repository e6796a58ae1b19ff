package envvar_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanLimbu/task-tracker/internal/envvar"
)

type fakeProvider map[string]string

func (f fakeProvider) Get(key string) (string, error) {
	v, ok := f[key]
	if !ok {
		return "", errors.New("missing")
	}

	return v, nil
}

func TestConfiguration_Get(t *testing.T) {
	t.Setenv("DATABASE_HOST", "localhost")
	t.Setenv("DATABASE_PASSWORD", "plain")
	t.Setenv("DATABASE_PASSWORD_SECURE", "database:password")

	conf := envvar.New(fakeProvider{"database:password": "s3cr3t"})

	host, err := conf.Get("DATABASE_HOST")
	require.NoError(t, err)
	assert.Equal(t, "localhost", host)

	password, err := conf.Get("DATABASE_PASSWORD")
	require.NoError(t, err)
	assert.Equal(t, "s3cr3t", password)
}

func TestConfiguration_Get_SecureWithoutProvider(t *testing.T) {
	t.Setenv("DATABASE_PASSWORD_SECURE", "database:password")

	_, err := envvar.New(nil).Get("DATABASE_PASSWORD")
	assert.Error(t, err)
}

func TestConfiguration_Get_ProviderError(t *testing.T) {
	t.Setenv("DATABASE_PASSWORD_SECURE", "database:unknown")

	_, err := envvar.New(fakeProvider{}).Get("DATABASE_PASSWORD")
	assert.Error(t, err)
}

func TestConfiguration_GetDefault(t *testing.T) {
	t.Setenv("API_BASE_PATH", "")

	conf := envvar.New(nil)

	v, err := conf.GetDefault("API_BASE_PATH", "/api")
	require.NoError(t, err)
	assert.Equal(t, "/api", v)

	t.Setenv("API_BASE_PATH", "/v1")

	v, err = conf.GetDefault("API_BASE_PATH", "/api")
	require.NoError(t, err)
	assert.Equal(t, "/v1", v)
}

func TestLoad(t *testing.T) {
	require.NoError(t, envvar.Load(""))

	assert.Error(t, envvar.Load(filepath.Join(t.TempDir(), "missing.env")))

	filename := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(filename, []byte("TASK_TRACKER_LOAD_TEST=loaded\n"), 0o600))

	t.Cleanup(func() { os.Unsetenv("TASK_TRACKER_LOAD_TEST") })

	require.NoError(t, envvar.Load(filename))
	assert.Equal(t, "loaded", os.Getenv("TASK_TRACKER_LOAD_TEST"))
}
