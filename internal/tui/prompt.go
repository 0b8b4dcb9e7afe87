package tui

import (
	"errors"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/julianstephens/contribgrid/internal/constants"
)

// ErrEmptyUsername is returned for a blank username
var ErrEmptyUsername = errors.New("username cannot be empty")

// IsInteractive reports whether both stdin and stdout are terminals
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// ValidateUsername rejects blank input
func ValidateUsername(s string) error {
	if strings.TrimSpace(s) == "" {
		return ErrEmptyUsername
	}
	return nil
}

// NewUsernameForm creates the form asking for a GitHub login
func NewUsernameForm(username *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(constants.PromptTitle).
				Value(username).
				Validate(ValidateUsername),
		),
	)
}

// PromptUsername asks for a GitHub login on the terminal
func PromptUsername() (string, error) {
	var username string
	if err := NewUsernameForm(&username).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrInterrupted
		}
		return "", err
	}
	return strings.TrimSpace(username), nil
}

// ReadSecret reads a line from the terminal without echoing it
func ReadSecret() (string, error) {
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}
