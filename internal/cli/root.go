package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/contribgrid/internal/config"
	"github.com/julianstephens/contribgrid/internal/github"
	"github.com/julianstephens/contribgrid/internal/logger"
	"github.com/julianstephens/contribgrid/internal/tui"
)

// Context is passed to every command's Run method
type Context struct {
	Config      config.Config
	Fetcher     github.Fetcher
	In          io.Reader
	Out         io.Writer
	Interactive bool
	Lipgloss    *lipgloss.Renderer

	// Prompt asks for a username; ReadSecret reads a token without echo
	Prompt     func() (string, error)
	ReadSecret func() (string, error)
}

// NewContext wires the context to the process' terminal
func NewContext(cfg config.Config) *Context {
	return &Context{
		Config:      cfg,
		In:          os.Stdin,
		Out:         os.Stdout,
		Interactive: tui.IsInteractive(),
		Lipgloss:    lipgloss.NewRenderer(os.Stdout),
		Prompt:      tui.PromptUsername,
		ReadSecret:  tui.ReadSecret,
	}
}

// CalendarFetcher returns the configured fetcher, creating a GitHub client
// on first use.
func (c *Context) CalendarFetcher() github.Fetcher {
	if c.Fetcher == nil {
		source := c.Config.ResolveToken()
		logger.Debug("Resolved API token", "source", source)
		c.Fetcher = github.NewClient(c.Config.Endpoint, c.Config.Token)
	}
	return c.Fetcher
}
