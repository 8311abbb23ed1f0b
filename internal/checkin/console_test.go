package checkin

import (
	"context"
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel() consoleModel {
	input := textinput.New()
	input.Focus()
	return consoleModel{
		ctx:        context.Background(),
		processor:  NewProcessor(nil, 5),
		eventTitle: "Go Meetup",
		input:      input,
	}
}

func TestConsole_EscQuits(t *testing.T) {
	m := newTestModel()

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	model := updated.(consoleModel)

	assert.True(t, model.quitting)
	require.NotNil(t, cmd)
}

func TestConsole_EnterWhileInFlightIsIgnored(t *testing.T) {
	m := newTestModel()
	m.inFlight = true
	m.input.SetValue("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model := updated.(consoleModel)

	assert.Nil(t, cmd, "submission during an in-flight request must be dropped")
	assert.Equal(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8", model.input.Value())
}

func TestConsole_EnterWithEmptyInputDoesNothing(t *testing.T) {
	m := newTestModel()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestConsole_ScanResultCountsAndSchedulesClear(t *testing.T) {
	m := newTestModel()

	updated, cmd := m.Update(scanResultMsg{status: Status{Kind: StatusSuccess, Message: "Alice checked in"}})
	model := updated.(consoleModel)

	assert.Equal(t, 1, model.accepted)
	require.NotNil(t, model.status)
	assert.False(t, model.inFlight)
	require.NotNil(t, cmd, "a clear tick must be scheduled")

	// A rejection does not bump the counter.
	updated, _ = model.Update(scanResultMsg{status: Status{Kind: StatusRejected, Message: "already attended"}})
	model = updated.(consoleModel)
	assert.Equal(t, 1, model.accepted)
}

func TestConsole_StaleClearDoesNotWipeNewerStatus(t *testing.T) {
	m := newTestModel()

	updated, _ := m.Update(scanResultMsg{status: Status{Kind: StatusSuccess, Message: "first"}})
	model := updated.(consoleModel)
	firstID := model.statusID

	updated, _ = model.Update(scanResultMsg{status: Status{Kind: StatusRejected, Message: "second"}})
	model = updated.(consoleModel)

	// The first status's expiry tick arrives late.
	updated, _ = model.Update(clearStatusMsg{id: firstID})
	model = updated.(consoleModel)
	require.NotNil(t, model.status)
	assert.Equal(t, "second", model.status.Message)

	// The matching tick clears it.
	updated, _ = model.Update(clearStatusMsg{id: model.statusID})
	model = updated.(consoleModel)
	assert.Nil(t, model.status)
}

func TestConsole_View(t *testing.T) {
	m := newTestModel()
	assert.Contains(t, m.View(), "Go Meetup")

	m.status = &Status{Kind: StatusSuccess, Message: "Alice checked in"}
	assert.Contains(t, m.View(), "Alice checked in")

	m.quitting = true
	assert.Empty(t, m.View())
}
