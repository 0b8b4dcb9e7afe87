package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/contribgrid/internal/cli"
	"github.com/julianstephens/contribgrid/internal/cli/calendar"
	"github.com/julianstephens/contribgrid/internal/cli/system"
	"github.com/julianstephens/contribgrid/internal/config"
	"github.com/julianstephens/contribgrid/internal/constants"
	"github.com/julianstephens/contribgrid/internal/errors"
	"github.com/julianstephens/contribgrid/internal/logger"
)

var CLI struct {
	Version kong.VersionFlag
	Debug   bool   `help:"Write debug logs to stderr."`
	EnvFile string `help:"Environment file to load before reading GITHUB_API_TOKEN." default:".env" name:"env-file"`

	Show  calendar.ShowCmd `cmd:"" help:"Render a user's contribution calendar." default:"withargs"`
	Token struct {
		Set    system.TokenSetCmd    `cmd:"" help:"Store a GitHub API token in the OS keyring."`
		Get    system.TokenGetCmd    `cmd:"" help:"Show the stored token, masked."`
		Delete system.TokenDeleteCmd `cmd:"" help:"Delete the stored token."`
		Status system.TokenStatusCmd `cmd:"" help:"Report where the token is read from." default:"1"`
	} `cmd:"" help:"Manage the GitHub API token."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Render a GitHub contribution calendar in the terminal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	cfg, err := config.Load(CLI.EnvFile)
	if err != nil {
		errors.Fatal(err)
	}

	if err := logger.Init(logger.Config{Debug: CLI.Debug || cfg.Debug, ConfigDir: cfg.ConfigDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}
	logger.Debug("Starting", "command", ctx.Command(), "endpoint", cfg.Endpoint)

	errors.Fatal(ctx.Run(cli.NewContext(cfg)))
}
