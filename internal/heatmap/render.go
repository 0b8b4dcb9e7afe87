package heatmap

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/contribgrid/internal/constants"
	"github.com/julianstephens/contribgrid/internal/models"
)

// cell is the text of one grid cell; only its background is visible
const cell = "  "

var (
	monthLetters = [12]string{"J", "F", "M", "A", "M", "J", "J", "A", "S", "O", "N", "D"}
	shortDays    = [models.DaysPerWeek]string{"S", "M", "T", "W", "T", "F", "S"}
	longDays     = [models.DaysPerWeek]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
)

// Options controls the layout and fallback colors of the grid
type Options struct {
	ShowMonthLabels bool
	DayLabels       constants.DayLabelStyle
	UnknownColor    string // placeholder slots and unrecognized levels
	BackgroundColor string // borders, header and label column
}

// DefaultOptions returns the labelled layout: month header and 1-letter weekday labels.
func DefaultOptions() Options {
	return Options{
		ShowMonthLabels: true,
		DayLabels:       constants.DayLabelsShort,
		UnknownColor:    constants.DefaultUnknownColor,
		BackgroundColor: constants.DefaultBackgroundColor,
	}
}

// Renderer draws calendars as lines of colored cells
type Renderer struct {
	opts       Options
	lg         *lipgloss.Renderer
	background lipgloss.Style
}

// New creates a Renderer painting through lg. A nil lg uses lipgloss' default renderer.
func New(lg *lipgloss.Renderer, opts Options) *Renderer {
	if lg == nil {
		lg = lipgloss.DefaultRenderer()
	}
	if opts.UnknownColor == "" {
		opts.UnknownColor = constants.DefaultUnknownColor
	}
	if opts.BackgroundColor == "" {
		opts.BackgroundColor = constants.DefaultBackgroundColor
	}
	if opts.DayLabels == "" {
		opts.DayLabels = constants.DayLabelsNone
	}
	return &Renderer{
		opts:       opts,
		lg:         lg,
		background: lg.NewStyle().Background(lipgloss.Color(opts.BackgroundColor)),
	}
}

// Options returns the renderer's effective options
func (r *Renderer) Options() Options {
	return r.opts
}

// Render normalizes the calendar and returns the grid lines, top border first.
// Nothing is rendered when normalization fails.
func (r *Renderer) Render(cal models.Calendar) ([]string, error) {
	weeks, err := Normalize(cal)
	if err != nil {
		return nil, err
	}
	return r.RenderWeeks(cal, weeks), nil
}

// RenderWeeks draws already normalized weeks. cal supplies the month of each
// week column and must hold the same weeks in the same order.
func (r *Renderer) RenderWeeks(cal models.Calendar, weeks []models.NormalizedWeek) []string {
	width := len(weeks) + 2 + r.labelCells()

	lines := make([]string, 0, models.DaysPerWeek+3)
	lines = append(lines, r.border(width))
	if r.opts.ShowMonthLabels {
		lines = append(lines, r.monthHeader(cal))
	}
	for wd := 0; wd < models.DaysPerWeek; wd++ {
		lines = append(lines, r.row(wd, weeks))
	}
	lines = append(lines, r.border(width))
	return lines
}

// Width returns the number of cells in every line drawn for the given week count
func (r *Renderer) Width(weeks int) int {
	return weeks + 2 + r.labelCells()
}

// Summary is the headline printed above the grid
func (r *Renderer) Summary(cal models.Calendar) string {
	label := r.lg.NewStyle().Foreground(lipgloss.Color("4")).Render("Total contributions in the last year: ")
	total := r.lg.NewStyle().Foreground(lipgloss.Color("3")).Bold(true).Render(strconv.Itoa(cal.TotalContributions))
	return label + total
}

func (r *Renderer) labelCells() int {
	switch r.opts.DayLabels {
	case constants.DayLabelsShort:
		return 1
	case constants.DayLabelsLong:
		return 2
	default:
		return 0
	}
}

func (r *Renderer) paint(color string) string {
	return r.lg.NewStyle().Background(lipgloss.Color(color)).Render(cell)
}

func (r *Renderer) border(width int) string {
	return r.background.Render(strings.Repeat(cell, width))
}

func (r *Renderer) dayLabel(wd int) string {
	var label string
	switch r.opts.DayLabels {
	case constants.DayLabelsShort:
		label = shortDays[wd]
	case constants.DayLabelsLong:
		label = longDays[wd]
	default:
		return ""
	}
	// pad to whole cells
	width := r.labelCells() * len(cell)
	return r.background.Render(label + strings.Repeat(" ", width-len(label)))
}

func (r *Renderer) row(wd int, weeks []models.NormalizedWeek) string {
	var b strings.Builder
	b.WriteString(r.background.Render(cell))
	b.WriteString(r.dayLabel(wd))
	for _, week := range weeks {
		b.WriteString(r.paint(Color(week[wd].Level(), r.opts.UnknownColor)))
	}
	b.WriteString(r.background.Render(cell))
	return b.String()
}

// monthHeader prints the first letter of a month above the first week whose
// leading day falls in it. Empty weeks get a blank cell and keep the previous month.
func (r *Renderer) monthHeader(cal models.Calendar) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(cell, 1+r.labelCells()))

	lastMonth := -1
	for _, week := range cal.Weeks {
		day, ok := week.FirstDay()
		if !ok {
			b.WriteString(cell)
			continue
		}
		t, err := day.Time()
		if err != nil {
			b.WriteString(cell)
			continue
		}
		month := int(t.Month()) - 1
		if month != lastMonth {
			b.WriteString(monthLetters[month] + " ")
		} else {
			b.WriteString(cell)
		}
		lastMonth = month
	}
	b.WriteString(cell)

	return r.background.Render(b.String())
}
