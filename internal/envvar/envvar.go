package envvar

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/sanLimbu/task-tracker/internal"
)

// Provider ...
type Provider interface {
	Get(key string) (string, error)
}

// Configuration ...
type Configuration struct {
	provider Provider
}

// Load reads the env filename and load it into ENV for this process. An empty filename is a no-op.
func Load(filename string) error {
	if filename == "" {
		return nil
	}

	if err := godotenv.Load(filename); err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeUnknown, "loading env var file")
	}

	return nil
}

// New instantiates a new Configuration, provider may be nil when no secure values are used.
func New(provider Provider) *Configuration {
	return &Configuration{
		provider: provider,
	}
}

// Get returns the value from environment variable `<key>`. When an environment variable `<key>_SECURE` exists
// the provider is used for getting the value.
func (c *Configuration) Get(key string) (string, error) {
	res := os.Getenv(key)

	valSecret := os.Getenv(fmt.Sprintf("%s_SECURE", key))
	if valSecret != "" {
		if c.provider == nil {
			return "", internal.NewErrorf(internal.ErrorCodeInvalidArgument, "%s_SECURE set without a secrets provider", key)
		}

		valSecretRes, err := c.provider.Get(valSecret)
		if err != nil {
			return "", internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "provider.Get")
		}

		res = valSecretRes
	}

	return res, nil
}

// GetDefault behaves like Get but returns fallback when the value is empty.
func (c *Configuration) GetDefault(key, fallback string) (string, error) {
	res, err := c.Get(key)
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(res) == "" {
		return fallback, nil
	}

	return res, nil
}
