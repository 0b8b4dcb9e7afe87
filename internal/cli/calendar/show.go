package calendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/contribgrid/internal/cli"
	"github.com/julianstephens/contribgrid/internal/constants"
	"github.com/julianstephens/contribgrid/internal/heatmap"
	"github.com/julianstephens/contribgrid/internal/logger"
	"github.com/julianstephens/contribgrid/internal/models"
	"github.com/julianstephens/contribgrid/internal/tui"
)

// ErrUsernameRequired is returned when no username is given and no terminal is available to ask for one
var ErrUsernameRequired = errors.New("a username is required when not running in a terminal")

type ShowCmd struct {
	Username     string `arg:"" optional:"" help:"GitHub username (prompted for when omitted)."`
	Labels       string `help:"Weekday labels: none, short or long." enum:"none,short,long" default:"short"`
	NoMonths     bool   `help:"Hide the month header." name:"no-months"`
	UnknownColor string `help:"Color for days without a contribution level." default:"#000000" name:"unknown-color"`
	NoSpinner    bool   `help:"Do not show the progress spinner." name:"no-spinner"`
	JSON         bool   `help:"Print the fetched calendar as JSON instead of the grid." name:"json"`
}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	username, err := c.username(ctx)
	if err != nil {
		return err
	}

	cal, err := c.fetch(ctx, username)
	if err != nil {
		return err
	}

	if c.JSON {
		jsonBytes, err := json.MarshalIndent(cal, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal calendar: %w", err)
		}
		fmt.Fprintln(ctx.Out, string(jsonBytes))
		return nil
	}

	r := heatmap.New(ctx.Lipgloss, c.Options())
	lines, err := r.Render(cal)
	if err != nil {
		return fmt.Errorf("failed to render calendar: %w", err)
	}

	fmt.Fprintln(ctx.Out, r.Summary(cal))
	fmt.Fprintln(ctx.Out, strings.Join(lines, "\n"))
	return nil
}

// Options converts the flags into renderer options
func (c *ShowCmd) Options() heatmap.Options {
	opts := heatmap.DefaultOptions()
	opts.ShowMonthLabels = !c.NoMonths
	if c.Labels != "" {
		opts.DayLabels = constants.DayLabelStyle(c.Labels)
	}
	if c.UnknownColor != "" {
		opts.UnknownColor = c.UnknownColor
	}
	return opts
}

func (c *ShowCmd) username(ctx *cli.Context) (string, error) {
	if username := strings.TrimSpace(c.Username); username != "" {
		return username, nil
	}
	if !ctx.Interactive || ctx.Prompt == nil {
		return "", ErrUsernameRequired
	}
	username, err := ctx.Prompt()
	if err != nil {
		return "", err
	}
	if err := tui.ValidateUsername(username); err != nil {
		return "", err
	}
	return username, nil
}

func (c *ShowCmd) fetch(ctx *cli.Context, username string) (models.Calendar, error) {
	fetcher := ctx.CalendarFetcher()
	fetch := func(fctx context.Context) (models.Calendar, error) {
		return fetcher.FetchCalendar(fctx, username)
	}

	var (
		cal models.Calendar
		err error
	)
	if ctx.Interactive && !c.NoSpinner {
		cal, err = tui.RunFetch(context.Background(), ctx.In, ctx.Out, constants.SpinnerMessage, fetch)
	} else {
		cal, err = fetch(context.Background())
	}
	if err != nil {
		logger.Error("Failed to fetch contribution calendar", "login", username, "error", err)
		return models.Calendar{}, err
	}

	logger.Info("Fetched contribution calendar", "login", username, "weeks", len(cal.Weeks))
	return cal, nil
}
