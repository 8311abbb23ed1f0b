package checkin

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/studafishka/afishactl/internal/tui"
)

// statusTTL is how long a scan outcome stays on screen.
const statusTTL = 3 * time.Second

// consoleModel is the bubbletea model for the interactive check-in console.
type consoleModel struct {
	ctx        context.Context
	processor  *Processor
	eventTitle string

	input    textinput.Model
	status   *Status
	statusID int
	inFlight bool
	accepted int
	quitting bool
}

type scanResultMsg struct {
	status Status
}

type clearStatusMsg struct {
	id int
}

// RunConsole runs the interactive console until the organizer exits with
// Esc or Ctrl+C. It returns the number of accepted check-ins.
func RunConsole(ctx context.Context, processor *Processor, eventTitle string) (int, error) {
	input := textinput.New()
	input.Placeholder = "scan or paste a registration code"
	input.Focus()
	input.CharLimit = 64

	model := consoleModel{
		ctx:        ctx,
		processor:  processor,
		eventTitle: eventTitle,
		input:      input,
	}

	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return 0, fmt.Errorf("run check-in console: %w", err)
	}
	return final.(consoleModel).accepted, nil
}

func (m consoleModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m consoleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			// One request in flight at a time; further submissions are
			// dropped until the current one resolves.
			if m.inFlight {
				return m, nil
			}
			code := m.input.Value()
			if code == "" {
				return m, nil
			}
			m.input.Reset()
			m.inFlight = true
			processor := m.processor
			ctx := m.ctx
			return m, func() tea.Msg {
				return scanResultMsg{status: processor.Process(ctx, code)}
			}
		}

	case scanResultMsg:
		m.inFlight = false
		m.status = &msg.status
		m.statusID++
		if msg.status.OK() {
			m.accepted++
		}
		id := m.statusID
		return m, tea.Tick(statusTTL, func(time.Time) tea.Msg {
			return clearStatusMsg{id: id}
		})

	case clearStatusMsg:
		// Only clear if no newer status replaced this one.
		if msg.id == m.statusID {
			m.status = nil
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m consoleModel) View() string {
	if m.quitting {
		// The caller reports the final count.
		return ""
	}

	view := tui.TitleStyle.Render("Check-in: "+m.eventTitle) + "\n\n"
	view += m.input.View() + "\n\n"

	switch {
	case m.inFlight:
		view += tui.Notice("Processing scan...")
	case m.status != nil:
		view += renderStatus(*m.status)
	default:
		view += tui.MutedStyle.Render("Waiting for a scan. Esc to finish.")
	}
	return view + "\n"
}

func renderStatus(s Status) string {
	switch s.Kind {
	case StatusSuccess:
		return tui.Success(s.Message)
	case StatusDuplicate:
		return tui.Notice("Duplicate: " + s.Message)
	default:
		return tui.Failure(s.Message)
	}
}
