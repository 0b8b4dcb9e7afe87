package system

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/julianstephens/contribgrid/internal/cli"
	"github.com/julianstephens/contribgrid/internal/keyring"
)

// TokenSetCmd stores a GitHub API token in the OS keyring
type TokenSetCmd struct {
	Token string `arg:"" optional:"" help:"GitHub API token. Read from the terminal without echo when omitted."`
}

func (cmd *TokenSetCmd) Run(ctx *cli.Context) error {
	token := strings.TrimSpace(cmd.Token)
	if token == "" {
		if !ctx.Interactive || ctx.ReadSecret == nil {
			return errors.New("a token argument is required when not running in a terminal")
		}
		fmt.Fprint(ctx.Out, "GitHub API token: ")
		secret, err := ctx.ReadSecret()
		fmt.Fprintln(ctx.Out)
		if err != nil {
			return fmt.Errorf("failed to read token: %w", err)
		}
		token = secret
	}

	if err := keyring.SetToken(token); err != nil {
		return err
	}

	fmt.Fprintln(ctx.Out, "✓ Token stored in OS keyring")
	return nil
}

// TokenGetCmd shows the stored token, masked
type TokenGetCmd struct{}

func (cmd *TokenGetCmd) Run(ctx *cli.Context) error {
	token, err := keyring.GetToken()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no token found in keyring. Use 'contribgrid token set' to store one")
		}
		return fmt.Errorf("failed to retrieve token from keyring: %w", err)
	}

	fmt.Fprintln(ctx.Out, keyring.Mask(token))
	return nil
}

// TokenDeleteCmd removes the stored token
type TokenDeleteCmd struct{}

func (cmd *TokenDeleteCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteToken(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no token found in keyring")
		}
		return err
	}

	fmt.Fprintln(ctx.Out, "✓ Token deleted from OS keyring")
	return nil
}

// TokenStatusCmd reports where a token would be read from
type TokenStatusCmd struct{}

func (cmd *TokenStatusCmd) Run(ctx *cli.Context) error {
	if os.Getenv("GITHUB_API_TOKEN") != "" {
		fmt.Fprintln(ctx.Out, "✓ GITHUB_API_TOKEN is set and takes precedence over the keyring")
	}

	if !keyring.IsAvailable() {
		fmt.Fprintln(ctx.Out, "❌ OS keyring is not available on this system")
		return errors.New("keyring unavailable")
	}
	fmt.Fprintln(ctx.Out, "✓ OS keyring is available")

	_, err := keyring.GetToken()
	switch {
	case err == nil:
		fmt.Fprintln(ctx.Out, "✓ Token is stored in keyring")
	case errors.Is(err, keyring.ErrNotFound):
		fmt.Fprintln(ctx.Out, "ℹ No token stored in keyring")
	default:
		return err
	}
	return nil
}
