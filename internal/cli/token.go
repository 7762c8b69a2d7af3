package cli

import (
	"errors"
	"fmt"

	"github.com/sremy91/intuis-schedule-card/internal/keyring"
)

// TokenSetCmd stores the gateway API token in the OS keyring
type TokenSetCmd struct {
	Token string `arg:"" help:"Gateway API token to store in the keyring."`
}

func (cmd *TokenSetCmd) Run(appCtx *Context) error {
	if cmd.Token == "" {
		return errors.New("token must not be empty")
	}
	if err := keyring.SetGatewayToken(cmd.Token); err != nil {
		return fmt.Errorf("failed to store token in keyring: %w", err)
	}
	fmt.Println("✓ Gateway token stored in OS keyring")
	return nil
}

// TokenGetCmd shows whether a gateway token is stored
type TokenGetCmd struct{}

func (cmd *TokenGetCmd) Run(appCtx *Context) error {
	token, err := keyring.GetGatewayToken()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no gateway token found in keyring, use 'intuisched keyring set' to store one")
		}
		return fmt.Errorf("failed to read token from keyring: %w", err)
	}

	// Show a few characters only, the full token stays in the keyring.
	masked := token
	if len(masked) > 8 {
		masked = masked[:4] + "..." + masked[len(masked)-4:]
	}
	fmt.Printf("Gateway token present: %s\n", masked)
	return nil
}

// TokenDeleteCmd removes the stored gateway token
type TokenDeleteCmd struct{}

func (cmd *TokenDeleteCmd) Run(appCtx *Context) error {
	if err := keyring.DeleteGatewayToken(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			fmt.Println("No gateway token stored.")
			return nil
		}
		return fmt.Errorf("failed to delete token from keyring: %w", err)
	}
	fmt.Println("✓ Gateway token removed from OS keyring")
	return nil
}
