// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/heos-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/heos-cli/internal/adapters/driving/tui/styles"
)

// State represents the current browser state for display.
type State string

const (
	StateReady    State = "ready"
	StateLoading  State = "loading"
	StateIndexing State = "indexing"
	StateJumping  State = "jumping"
	StateError    State = "error"
)

// Bar displays browser status and keybinding hints.
type Bar struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	state     State
	message   string
	itemCount int
	width     int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReady,
		width:  80,
	}
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft() string {
	switch s.state {
	case StateLoading:
		return s.styles.Muted.Render("Loading...")
	case StateIndexing:
		return s.styles.Muted.Render("Indexing...")
	case StateError:
		if s.message != "" {
			return s.styles.Error.Render(fmt.Sprintf("Error: %s", s.message))
		}
		return s.styles.Error.Render("Error")
	case StateReady, StateJumping:
	}

	if s.message != "" {
		return s.styles.Success.Render(s.message)
	}
	if s.itemCount == 1 {
		return s.styles.Normal.Render("1 item")
	}
	return s.styles.Normal.Render(fmt.Sprintf("%d items", s.itemCount))
}

func (s *Bar) renderRight() string {
	bindings := s.keymap.BrowserHelp()
	if s.state == StateJumping {
		bindings = s.keymap.JumpHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		hints = append(hints, hint(b))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

func hint(b key.Binding) string {
	h := b.Help()
	return fmt.Sprintf("%s: %s", h.Key, h.Desc)
}

// SetState sets the current state and clears the message.
func (s *Bar) SetState(state State) {
	s.state = state
	s.message = ""
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets a message shown in the current state.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetItemCount sets the number of listed items.
func (s *Bar) SetItemCount(count int) {
	s.itemCount = count
}

// ItemCount returns the number of listed items.
func (s *Bar) ItemCount() int {
	return s.itemCount
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}
