// Package browser provides the content tree browser view for the TUI.
package browser

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/heos-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/heos-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/heos-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/heos-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/heos-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/heos-cli/internal/core/domain"
	"github.com/custodia-labs/heos-cli/internal/core/ports/driving"
)

// chromeLines is the number of rows used by everything but the list.
const chromeLines = 7

// View lists one level of the content tree at a time.
// The top level is the device's sources.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	browse driving.BrowseService
	ctx    context.Context

	// path holds the nodes descended into, outermost first.
	path []*domain.MediaSource
	// cursors holds the selection to restore at each level of path.
	cursors []int

	items    []*domain.MediaSource
	selected int
	offset   int

	jump    *input.JumpInput
	bar     *status.Bar
	loading bool
	err     error

	width  int
	height int
}

// NewView creates a new browser view.
func NewView(s *styles.Styles, km *keymap.KeyMap, browse driving.BrowseService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{
		styles: s,
		keymap: km,
		browse: browse,
		ctx:    context.Background(),
		jump:   input.NewJumpInput(s),
		bar:    status.NewBar(s, km),
		width:  80,
		height: 24,
	}
}

// WithContext sets the context used for service calls.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the top-level sources.
func (v *View) Init() tea.Cmd {
	v.setLoading()
	return v.loadSources()
}

func (v *View) loadSources() tea.Cmd {
	ctx := v.ctx
	return func() tea.Msg {
		sources, err := v.browse.Sources(ctx)
		return messages.SourcesLoaded{Sources: sources, Err: err}
	}
}

func (v *View) loadChildren(node *domain.MediaSource) tea.Cmd {
	ctx := v.ctx
	return func() tea.Msg {
		children, err := v.browse.Children(ctx, node)
		return messages.ChildrenLoaded{Parent: node, Children: children, Err: err}
	}
}

func (v *View) findChild(parent *domain.MediaSource, name string) tea.Cmd {
	ctx := v.ctx
	return func() tea.Msg {
		if parent == nil {
			src, err := v.browse.Source(ctx, name)
			if errors.Is(err, domain.ErrNotFound) {
				return messages.ChildFound{Name: name}
			}
			return messages.ChildFound{Name: name, Child: src, Found: err == nil, Err: err}
		}
		child, ok, err := v.browse.ChildByName(ctx, parent, name)
		return messages.ChildFound{Parent: parent, Name: name, Child: child, Found: ok, Err: err}
	}
}

func (v *View) indexAll(node *domain.MediaSource) tea.Cmd {
	ctx := v.ctx
	return func() tea.Msg {
		report, err := v.browse.IndexAll(ctx, node)
		return messages.IndexCompleted{Node: node, Report: report, Err: err}
	}
}

// Update handles messages for the browser view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		if v.jump.Focused() {
			return v.handleJumpKey(msg)
		}
		return v.handleKey(msg)

	case messages.SourcesLoaded:
		if len(v.path) > 0 {
			return v, nil
		}
		v.loading = false
		if msg.Err != nil {
			v.setError(msg.Err)
			return v, nil
		}
		v.setItems(msg.Sources)
		return v, nil

	case messages.ChildrenLoaded:
		if msg.Parent != v.Current() {
			return v, nil
		}
		v.loading = false
		if msg.Err != nil {
			v.setError(msg.Err)
			return v, nil
		}
		v.setItems(msg.Children)
		return v, nil

	case messages.ChildFound:
		return v.handleChildFound(msg)

	case messages.IndexCompleted:
		if msg.Err != nil {
			v.setError(msg.Err)
			return v, nil
		}
		v.bar.SetState(status.StateReady)
		v.bar.SetMessage(fmt.Sprintf("Indexed %s: %d items in %s",
			msg.Report.Source, msg.Report.Leaves, msg.Report.Duration.Round(time.Millisecond)))
		return v, nil

	case messages.CatalogReloaded:
		v.browse.Refresh()
		v.path = nil
		v.cursors = nil
		v.setLoading()
		return v, v.loadSources()
	}

	var cmd tea.Cmd
	if v.jump.Focused() {
		v.jump, cmd = v.jump.Update(msg)
	}
	return v, cmd
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
			v.scroll()
		}

	case keymap.Matches(keyStr, v.keymap.Down):
		if v.selected < len(v.items)-1 {
			v.selected++
			v.scroll()
		}

	case keymap.Matches(keyStr, v.keymap.Open):
		if v.loading {
			return v, nil
		}
		if node := v.Selected(); node != nil {
			return v, v.descend(node)
		}

	case keymap.Matches(keyStr, v.keymap.Back):
		if v.loading || len(v.path) == 0 {
			return v, nil
		}
		return v, v.ascend()

	case keymap.Matches(keyStr, v.keymap.Jump):
		if v.loading {
			return v, nil
		}
		v.bar.SetState(status.StateJumping)
		return v, v.jump.Open()

	case keymap.Matches(keyStr, v.keymap.Index):
		node := v.Current()
		if node == nil {
			node = v.Selected()
		}
		if node == nil || v.loading {
			return v, nil
		}
		v.bar.SetState(status.StateIndexing)
		return v, v.indexAll(node)

	case keymap.Matches(keyStr, v.keymap.Reload):
		if v.loading {
			return v, nil
		}
		v.setLoading()
		if node := v.Current(); node != nil {
			return v, v.loadChildren(node)
		}
		v.browse.Refresh()
		return v, v.loadSources()
	}

	return v, nil
}

func (v *View) handleJumpKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, v.keymap.Cancel):
		v.jump.Close()
		v.bar.SetState(status.StateReady)
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Confirm):
		name := strings.TrimSpace(v.jump.Value())
		v.jump.Close()
		v.bar.SetState(status.StateReady)
		if name == "" {
			return v, nil
		}
		v.setLoading()
		return v, v.findChild(v.Current(), name)
	}

	var cmd tea.Cmd
	v.jump, cmd = v.jump.Update(msg)
	return v, cmd
}

func (v *View) handleChildFound(msg messages.ChildFound) (*View, tea.Cmd) {
	if msg.Parent != v.Current() {
		return v, nil
	}
	v.loading = false
	if msg.Err != nil {
		v.setError(msg.Err)
		return v, nil
	}

	v.bar.SetState(status.StateReady)
	if !msg.Found {
		v.bar.SetMessage(fmt.Sprintf("No %q here", msg.Name))
		return v, nil
	}

	// Lookups go through the index, so the current listing holds the
	// same pointers once it has been loaded.
	for i, item := range v.items {
		if item == msg.Child {
			v.selected = i
			v.scroll()
			break
		}
	}
	if msg.Child.Container || msg.Parent == nil {
		return v, v.descend(msg.Child)
	}
	return v, nil
}

// descend opens node. Top-level sources and containers have children;
// other items only report what they are.
func (v *View) descend(node *domain.MediaSource) tea.Cmd {
	if !node.Container && len(v.path) > 0 {
		v.bar.SetState(status.StateReady)
		v.bar.SetMessage(describeLeaf(node))
		return nil
	}

	v.path = append(v.path, node)
	v.cursors = append(v.cursors, v.selected)
	v.items = nil
	v.selected = 0
	v.offset = 0
	v.setLoading()
	return v.loadChildren(node)
}

func (v *View) ascend() tea.Cmd {
	last := len(v.path) - 1
	cursor := v.cursors[last]
	v.path = v.path[:last]
	v.cursors = v.cursors[:last]

	v.items = nil
	v.selected = cursor
	v.offset = 0
	v.setLoading()
	if node := v.Current(); node != nil {
		return v.loadChildren(node)
	}
	return v.loadSources()
}

func (v *View) setItems(items []*domain.MediaSource) {
	v.items = items
	if v.selected >= len(items) {
		v.selected = len(items) - 1
	}
	if v.selected < 0 {
		v.selected = 0
	}
	v.err = nil
	v.scroll()
	v.bar.SetState(status.StateReady)
	v.bar.SetItemCount(len(items))
}

func (v *View) setLoading() {
	v.loading = true
	v.err = nil
	v.bar.SetState(status.StateLoading)
}

func (v *View) setError(err error) {
	v.loading = false
	v.err = err
	v.bar.SetState(status.StateError)
	v.bar.SetMessage(err.Error())
}

// visibleRows is the number of list rows that fit on screen.
func (v *View) visibleRows() int {
	rows := v.height - chromeLines
	if rows < 3 {
		rows = 3
	}
	return rows
}

// scroll keeps the selection inside the visible window.
func (v *View) scroll() {
	rows := v.visibleRows()
	if v.selected < v.offset {
		v.offset = v.selected
	}
	if v.selected >= v.offset+rows {
		v.offset = v.selected - rows + 1
	}
}

// View renders the browser.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("HEOS"))
	b.WriteString("  ")
	b.WriteString(v.styles.Breadcrumb.Render(v.Breadcrumb()))
	b.WriteString("\n\n")

	switch {
	case v.loading && len(v.items) == 0:
		b.WriteString(v.styles.Muted.Render("Loading..."))
		b.WriteString("\n")
	case v.err != nil && len(v.items) == 0:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n")
	case len(v.items) == 0:
		b.WriteString(v.styles.Muted.Render("(empty)"))
		b.WriteString("\n")
	default:
		end := v.offset + v.visibleRows()
		if end > len(v.items) {
			end = len(v.items)
		}
		for i := v.offset; i < end; i++ {
			b.WriteString(v.renderItem(i))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if v.jump.Focused() {
		b.WriteString(v.jump.View())
		b.WriteString("\n")
	}
	b.WriteString(v.bar.View())

	return b.String()
}

func (v *View) renderItem(index int) string {
	item := v.items[index]

	name := item.Name
	if item.Container {
		name += "/"
	}
	maxName := v.width - 24
	if maxName < 10 {
		maxName = 10
	}
	if len(name) > maxName {
		name = name[:maxName-3] + "..."
	}

	kind := item.Type
	if len(v.path) == 0 && !item.Available {
		kind += ", unavailable"
	}

	if index == v.selected {
		return v.styles.Selected.Render(fmt.Sprintf("> %s", name)) + " " + v.styles.Muted.Render(kind)
	}

	style := v.styles.Normal
	switch {
	case item.Container:
		style = v.styles.Container
	case item.Playable:
		style = v.styles.Playable
	}
	return "  " + style.Render(name) + " " + v.styles.Muted.Render(kind)
}

func describeLeaf(node *domain.MediaSource) string {
	if node.Playable {
		return fmt.Sprintf("%s is playable (mid=%s)", node.Name, node.MediaID)
	}
	return fmt.Sprintf("%s has no children", node.Name)
}

// Breadcrumb returns the path from the sources list to the current node.
func (v *View) Breadcrumb() string {
	parts := make([]string, 0, len(v.path)+1)
	parts = append(parts, "Sources")
	for _, node := range v.path {
		parts = append(parts, node.Name)
	}
	return strings.Join(parts, " / ")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.bar.SetWidth(width)
	v.jump.SetWidth(width)
	v.scroll()
}

// Current returns the node being listed, or nil at the top level.
func (v *View) Current() *domain.MediaSource {
	if len(v.path) == 0 {
		return nil
	}
	return v.path[len(v.path)-1]
}

// Selected returns the node under the cursor, or nil if the list is empty.
func (v *View) Selected() *domain.MediaSource {
	if v.selected < 0 || v.selected >= len(v.items) {
		return nil
	}
	return v.items[v.selected]
}

// Items returns the listed nodes.
func (v *View) Items() []*domain.MediaSource {
	return v.items
}

// SelectedIndex returns the cursor position.
func (v *View) SelectedIndex() int {
	return v.selected
}

// Jumping returns whether the name prompt is open.
func (v *View) Jumping() bool {
	return v.jump.Focused()
}

// Loading returns whether a listing is in flight.
func (v *View) Loading() bool {
	return v.loading
}

// Status returns the status bar.
func (v *View) Status() *status.Bar {
	return v.bar
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
