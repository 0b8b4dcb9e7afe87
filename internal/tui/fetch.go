package tui

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/contribgrid/internal/models"
)

// ErrInterrupted is returned when the user quits while the fetch is running
var ErrInterrupted = errors.New("interrupted")

// FetchFunc performs the single blocking fetch shown behind the spinner
type FetchFunc func(ctx context.Context) (models.Calendar, error)

type fetchDoneMsg struct {
	calendar models.Calendar
	err      error
}

// FetchModel shows a spinner until its fetch finishes, then a success or
// failure line.
type FetchModel struct {
	spinner  spinner.Model
	message  string
	ctx      context.Context
	cancel   context.CancelFunc
	fetch    FetchFunc
	done     bool
	calendar models.Calendar
	err      error
}

func NewFetchModel(ctx context.Context, message string, fetch FetchFunc) FetchModel {
	ctx, cancel := context.WithCancel(ctx)
	return FetchModel{
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(spinnerStyle)),
		message: message,
		ctx:     ctx,
		cancel:  cancel,
		fetch:   fetch,
	}
}

func (m FetchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.run)
}

func (m FetchModel) run() tea.Msg {
	cal, err := m.fetch(m.ctx)
	return fetchDoneMsg{calendar: cal, err: err}
}

func (m FetchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fetchDoneMsg:
		m.done = true
		m.calendar = msg.calendar
		m.err = msg.err
		m.cancel()
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.done = true
			m.err = ErrInterrupted
			m.cancel()
			return m, tea.Quit
		}
		return m, nil
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m FetchModel) View() string {
	if !m.done {
		return m.spinner.View() + " " + messageStyle.Render(m.message) + "\n"
	}
	if m.err != nil {
		return failureStyle.Render("✖ "+m.err.Error()) + "\n"
	}
	return successStyle.Render("✔") + " " + messageStyle.Render(m.message) + "\n"
}

// Done reports whether the fetch finished or was interrupted
func (m FetchModel) Done() bool {
	return m.done
}

// Result returns the fetched calendar or the error that ended the fetch
func (m FetchModel) Result() (models.Calendar, error) {
	return m.calendar, m.err
}

// RunFetch runs fetch behind a spinner drawn on out and returns its result.
func RunFetch(ctx context.Context, in io.Reader, out io.Writer, message string, fetch FetchFunc) (models.Calendar, error) {
	p := tea.NewProgram(
		NewFetchModel(ctx, message, fetch),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)

	final, err := p.Run()
	if err != nil {
		return models.Calendar{}, err
	}

	fm, ok := final.(FetchModel)
	if !ok {
		return models.Calendar{}, errors.New("unexpected spinner model")
	}
	return fm.Result()
}
