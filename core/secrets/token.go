package secrets

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	// KeyringService groups the application's secrets in the OS keychain.
	KeyringService = "application-sync"

	tokenAccountPrefix = "notion:"
)

// ErrNotFound is returned when no token is stored for the database.
var ErrNotFound = errors.New("secrets: token not found")

// TokenAccount returns the keychain account holding the token of a database.
// Tokens stored without a database id use the "default" account.
func TokenAccount(databaseID string) string {
	databaseID = strings.TrimSpace(databaseID)
	if databaseID == "" {
		databaseID = "default"
	}
	return tokenAccountPrefix + databaseID
}

// GetToken reads the Notion token for a database, falling back to the default account.
func GetToken(databaseID string) (string, error) {
	accounts := []string{TokenAccount(databaseID)}
	if def := TokenAccount(""); accounts[0] != def {
		accounts = append(accounts, def)
	}

	for _, account := range accounts {
		token, err := keyring.Get(KeyringService, account)
		if err == nil && strings.TrimSpace(token) != "" {
			return token, nil
		}
		if err != nil && !errors.Is(err, keyring.ErrNotFound) {
			return "", fmt.Errorf("secrets: read keychain: %w", err)
		}
	}
	return "", ErrNotFound
}

// SetToken stores the Notion token for a database.
func SetToken(databaseID, token string) error {
	if strings.TrimSpace(token) == "" {
		return errors.New("secrets: token is empty")
	}
	return keyring.Set(KeyringService, TokenAccount(databaseID), token)
}

// DeleteToken removes the Notion token of a database.
func DeleteToken(databaseID string) error {
	err := keyring.Delete(KeyringService, TokenAccount(databaseID))
	if errors.Is(err, keyring.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
