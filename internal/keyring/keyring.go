package keyring

import (
	"errors"
	"fmt"

	"github.com/sremy91/intuis-schedule-card/internal/constants"
	"github.com/zalando/go-keyring"
)

var (
	// ErrNotFound is returned when no gateway token is stored in the keyring
	ErrNotFound = errors.New("gateway token not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetGatewayToken retrieves the gateway access token from the OS keyring.
// Returns ErrNotFound if no token is stored.
func GetGatewayToken() (string, error) {
	token, err := keyring.Get(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", ErrNotFound
		}
		// Wrap other keyring errors as unavailable
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return token, nil
}

// SetGatewayToken stores the gateway access token in the OS keyring.
func SetGatewayToken(token string) error {
	if token == "" {
		return errors.New("gateway token cannot be empty")
	}
	if err := keyring.Set(constants.AppName, constants.DefaultKeyringUser, token); err != nil {
		return fmt.Errorf("failed to store gateway token in keyring: %w", err)
	}
	return nil
}

// DeleteGatewayToken removes the gateway access token from the OS keyring.
func DeleteGatewayToken() error {
	err := keyring.Delete(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete gateway token from keyring: %w", err)
	}
	return nil
}

// IsAvailable checks if the OS keyring is available on the current system.
// Best-effort: an ErrNotFound means available but empty.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	return err == nil || err == keyring.ErrNotFound
}
