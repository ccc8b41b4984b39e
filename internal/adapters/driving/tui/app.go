package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/heos-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/heos-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/heos-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/heos-cli/internal/adapters/driving/tui/views/browser"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap

	browserView *browser.View
	currentView messages.ViewType

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		browserView: browser.NewView(s, km, ports.Browse),
		currentView: messages.ViewBrowser,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.browserView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("heos"),
		a.browserView.Init(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		keyStr := msg.String()
		if keyStr == "ctrl+c" {
			return a, tea.Quit
		}

		if a.currentView == messages.ViewHelp {
			if keymap.Matches(keyStr, a.keymap.Quit) {
				return a, tea.Quit
			}
			a.currentView = messages.ViewBrowser
			return a, nil
		}

		// The jump prompt takes every key.
		if !a.browserView.Jumping() {
			switch {
			case keymap.Matches(keyStr, a.keymap.Quit):
				return a, tea.Quit
			case keymap.Matches(keyStr, a.keymap.Help):
				a.currentView = messages.ViewHelp
				return a, nil
			}
		}

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	a.browserView, cmd = a.browserView.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	if a.currentView == messages.ViewHelp {
		return a.viewHelp()
	}
	return a.browserView.View()
}

// viewHelp renders the keybindings and the active settings.
func (a *App) viewHelp() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")

	for _, group := range a.keymap.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("  %-8s %s\n", h.Key, h.Desc))
		}
		b.WriteString("\n")
	}

	if a.ports.Settings != nil {
		if settings, err := a.ports.Settings.Get(); err == nil {
			b.WriteString(a.styles.Title.Render("Settings"))
			b.WriteString("\n\n")
			b.WriteString(fmt.Sprintf("  Page size   %d\n", settings.Index.PageSize))
			b.WriteString(fmt.Sprintf("  Rate limit  %g/s (burst %d)\n", settings.Commands.RateLimit, settings.Commands.Burst))
			if settings.Catalog.Path != "" {
				b.WriteString(fmt.Sprintf("  Catalog     %s\n", settings.Catalog.Path))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString(a.styles.Help.Render("[any key] back  [q] quit"))
	return b.String()
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Browser returns the browser view.
func (a *App) Browser() *browser.View {
	return a.browserView
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.browserView.SetDimensions(width, height)
}
