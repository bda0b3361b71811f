// Package keyring stores secrets in the OS keyring under the application's
// service name.
package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/julianstephens/dayflow/internal/constants"
)

var (
	// ErrNotFound is returned when no secret is stored for the account
	ErrNotFound = errors.New("credentials not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// Get reads the secret stored for account.
func Get(account string) (string, error) {
	v, err := keyring.Get(constants.AppName, account)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return v, nil
}

// Set stores secret for account, replacing any previous value.
func Set(account, secret string) error {
	if secret == "" {
		return errors.New("secret cannot be empty")
	}
	if err := keyring.Set(constants.AppName, account, secret); err != nil {
		return fmt.Errorf("failed to store credentials in keyring: %w", err)
	}
	return nil
}

// Delete removes the secret for account.
func Delete(account string) error {
	err := keyring.Delete(constants.AppName, account)
	if errors.Is(err, keyring.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete credentials from keyring: %w", err)
	}
	return nil
}

// GetConnectionString returns the stored PostgreSQL connection string.
func GetConnectionString() (string, error) {
	return Get(constants.DefaultKeyringUser)
}

func SetConnectionString(connStr string) error {
	return Set(constants.DefaultKeyringUser, connStr)
}

func DeleteConnectionString() error {
	return Delete(constants.DefaultKeyringUser)
}

// IsAvailable makes a best-effort read to see whether a keyring backend exists.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "availability-check")
	return err == nil || errors.Is(err, keyring.ErrNotFound)
}
