package vault

import (
	"path"
	"strings"

	"github.com/hashicorp/vault/api"

	"github.com/sanLimbu/task-tracker/internal"
)

// Provider ...
type Provider struct {
	path    string
	logical *api.Logical
}

// New instantiates the Vault client.
func New(token, addr, path string) (*Provider, error) {
	config := &api.Config{
		Address: addr,
	}

	client, err := api.NewClient(config)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "api.NewClient")
	}

	client.SetToken(token)

	return &Provider{
		path:    path,
		logical: client.Logical(),
	}, nil
}

// Get retrieves the value using the `<secret>:<field>` format, `<secret>` is relative to the configured path.
func (p *Provider) Get(v string) (string, error) {
	secretPath, field, ok := strings.Cut(v, ":")
	if !ok || field == "" {
		return "", internal.NewErrorf(internal.ErrorCodeInvalidArgument, "invalid secret reference %q", v)
	}

	secret, err := p.logical.Read(path.Join(p.path, secretPath))
	if err != nil {
		return "", internal.WrapErrorf(err, internal.ErrorCodeUnknown, "logical.Read")
	}

	if secret == nil {
		return "", internal.NewErrorf(internal.ErrorCodeNotFound, "secret %q not found", secretPath)
	}

	data := secret.Data

	// KV version 2 nests the fields under "data".
	if nested, ok := data["data"].(map[string]interface{}); ok {
		data = nested
	}

	value, ok := data[field].(string)
	if !ok {
		return "", internal.NewErrorf(internal.ErrorCodeNotFound, "field %q not found in %q", field, secretPath)
	}

	return value, nil
}
