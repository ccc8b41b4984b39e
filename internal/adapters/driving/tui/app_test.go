package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/heos-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/heos-cli/internal/core/domain"
)

func newTestPorts() *Ports {
	return &Ports{
		Browse: &MockBrowseService{
			SourcesFunc: func(context.Context) ([]*domain.MediaSource, error) {
				return []*domain.MediaSource{
					{Name: "Local Music", Type: "heos_server", SourceID: domain.SourceIDPtr(1024), Available: true},
				}, nil
			},
		},
		Settings: &MockSettingsService{Settings: domain.DefaultAppSettings()},
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestNewApp(t *testing.T) {
	app, err := NewApp(newTestPorts())

	require.NoError(t, err)
	assert.Equal(t, messages.ViewBrowser, app.CurrentView())
	assert.False(t, app.Ready())
	assert.Equal(t, "Initialising...", app.View())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	app, err := NewApp(&Ports{})

	assert.ErrorIs(t, err, ErrMissingBrowseService)
	assert.Nil(t, app)
}

func TestApp_WithContext(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("key"), "value")

	assert.Same(t, app, app.WithContext(ctx))
}

func TestApp_Init(t *testing.T) {
	app, _ := NewApp(newTestPorts())
	assert.NotNil(t, app.Init())
}

func TestApp_WindowSize(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	model, cmd := app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.Same(t, app, model)
	assert.Nil(t, cmd)
	assert.True(t, app.Ready())
}

func TestApp_ForwardsToBrowser(t *testing.T) {
	app, _ := NewApp(newTestPorts())
	app.SetDimensions(100, 30)

	sources, err := app.ports.Browse.Sources(context.Background())
	require.NoError(t, err)
	app.Update(messages.SourcesLoaded{Sources: sources})

	assert.Len(t, app.Browser().Items(), 1)
	assert.Contains(t, app.View(), "Local Music")
}

func TestApp_Quit(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.Msg
	}{
		{"q", key("q")},
		{"ctrl+c", key("ctrl+c")},
		{"quit message", messages.Quit{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _ := NewApp(newTestPorts())
			_, cmd := app.Update(tt.msg)
			assert.True(t, isQuit(cmd))
		})
	}
}

func TestApp_QWhileJumpingIsTyped(t *testing.T) {
	app, _ := NewApp(newTestPorts())
	app.SetDimensions(100, 30)
	app.Update(key("/"))
	require.True(t, app.Browser().Jumping())

	_, cmd := app.Update(key("q"))

	assert.False(t, isQuit(cmd))
	assert.True(t, app.Browser().Jumping())
}

func TestApp_HelpToggle(t *testing.T) {
	app, _ := NewApp(newTestPorts())
	app.SetDimensions(100, 30)

	app.Update(key("?"))
	assert.Equal(t, messages.ViewHelp, app.CurrentView())

	view := app.View()
	assert.Contains(t, view, "jump to name")
	assert.Contains(t, view, "Page size   50")

	app.Update(key("esc"))
	assert.Equal(t, messages.ViewBrowser, app.CurrentView())
}

func TestApp_HelpWithoutSettings(t *testing.T) {
	ports := newTestPorts()
	ports.Settings = nil
	app, _ := NewApp(ports)
	app.SetDimensions(100, 30)

	app.Update(messages.ViewChanged{View: messages.ViewHelp})

	assert.NotContains(t, app.View(), "Page size")
}
