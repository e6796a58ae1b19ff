package internal

import (
	"os"

	"github.com/sanLimbu/task-tracker/internal"
	"github.com/sanLimbu/task-tracker/internal/envvar"
	"github.com/sanLimbu/task-tracker/internal/envvar/vault"
)

// NewVaultProvider instantiates the Vault client using configuration defined in environment variables.
// Without VAULT_ADDRESS no provider is returned and secure values can't be resolved.
func NewVaultProvider() (envvar.Provider, error) {
	vaultAddress := os.Getenv("VAULT_ADDRESS")
	if vaultAddress == "" {
		return nil, nil
	}

	vaultPath := os.Getenv("VAULT_PATH")
	vaultToken := os.Getenv("VAULT_TOKEN")

	provider, err := vault.New(vaultToken, vaultAddress, vaultPath)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "vault.New")
	}

	return provider, nil
}
