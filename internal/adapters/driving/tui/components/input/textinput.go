// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/heos-cli/internal/adapters/driving/tui/styles"
)

// JumpInput is the prompt for a child name.
type JumpInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int
}

// NewJumpInput creates a blurred, empty prompt.
func NewJumpInput(s *styles.Styles) *JumpInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "name"
	ti.Prompt = "/ "
	ti.CharLimit = 128
	ti.Width = 40

	return &JumpInput{
		textinput: ti,
		styles:    s,
		width:     40,
	}
}

// Open clears the prompt and focuses it.
func (j *JumpInput) Open() tea.Cmd {
	j.textinput.Reset()
	return tea.Batch(j.textinput.Focus(), textinput.Blink)
}

// Close blurs the prompt.
func (j *JumpInput) Close() {
	j.textinput.Blur()
}

// Update handles input messages.
func (j *JumpInput) Update(msg tea.Msg) (*JumpInput, tea.Cmd) {
	var cmd tea.Cmd
	j.textinput, cmd = j.textinput.Update(msg)
	return j, cmd
}

// View renders the prompt.
func (j *JumpInput) View() string {
	label := j.styles.Title.Render("Jump to ")
	field := j.styles.Prompt.Render(j.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, field)
}

// Value returns the typed name.
func (j *JumpInput) Value() string {
	return j.textinput.Value()
}

// SetValue sets the typed name.
func (j *JumpInput) SetValue(value string) {
	j.textinput.SetValue(value)
}

// Focused returns whether the prompt is open.
func (j *JumpInput) Focused() bool {
	return j.textinput.Focused()
}

// SetWidth sets the width of the prompt.
func (j *JumpInput) SetWidth(width int) {
	j.width = width
	inputWidth := width - 16
	if inputWidth < 20 {
		inputWidth = 20
	}
	j.textinput.Width = inputWidth
}

// Width returns the current width.
func (j *JumpInput) Width() int {
	return j.width
}
