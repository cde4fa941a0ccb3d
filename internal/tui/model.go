package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/jask/combokit/core"
	"github.com/jask/combokit/internal/database/repository"
)

const (
	recentSection   = "Recent"
	recentLimit     = 5
	statusClearKey  = "status-clear"
	statusClearWait = 5 * time.Second
)

// History stores and lists past selections.
type History interface {
	Record(ctx context.Context, itemID, query string) (repository.Selection, error)
	Recent(ctx context.Context, limit int) ([]repository.RecentItem, error)
}

// Options configure the picker program.
type Options struct {
	Title      string
	IDPrefix   string
	MenuHeight int
	Debounce   time.Duration
	Keys       map[string][]string
	Logger     *zap.Logger
}

// Model is a single combobox bound to a terminal.
type Model struct {
	ctx     context.Context
	opts    Options
	items   []core.PickerItem
	picker  *core.Picker
	keys    *core.KeyRegistry
	input   textinput.Model
	window  *menuWindow
	history History
	log     *zap.Logger

	announce *core.Debouncer[string]
	send     func(tea.Msg)
	status   string
	clearSeq int

	chosen   *core.PickerItem
	width    int
	quitting bool
}

type liveRegionMsg struct{ text string }

type selectionSavedMsg struct {
	sel repository.Selection
	err error
}

type recentLoadedMsg struct {
	items []repository.RecentItem
	err   error
}

// New builds the model. history may be nil, in which case nothing is recorded.
func New(ctx context.Context, items []core.PickerItem, history History, opts Options) *Model {
	if opts.MenuHeight <= 0 {
		opts.MenuHeight = 8
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	m := &Model{
		ctx:     ctx,
		opts:    opts,
		items:   append([]core.PickerItem(nil), items...),
		history: history,
		log:     opts.Logger.Named("tui"),
		window:  &menuWindow{height: opts.MenuHeight},
		keys: core.NewKeyRegistry(
			core.ApplyActionKeybindings(core.DefaultKeyBindings(), opts.Keys),
		),
	}

	ids := core.NewIDAllocator()
	m.picker = core.NewPicker(opts.Title, m.items,
		core.WithIDs(ids, opts.IDPrefix),
		core.WithKeyRegistry(m.keys),
		core.WithPageSize(opts.MenuHeight),
		core.OnSelectionChange(func(item core.PickerItem) {
			m.log.Debug("selected", zap.String("id", item.ID), zap.String("label", item.Label))
		}),
	)
	m.picker.MenuRef(nil)(m.window)

	m.input = textinput.New()
	m.input.Prompt = "> "
	m.input.Placeholder = "type to filter"
	m.input.Focus()

	m.announce = core.Debounce(func(text string) {
		if m.send != nil {
			m.send(liveRegionMsg{text: text})
		}
	}, opts.Debounce)
	return m
}

// Attach routes debounced live-region updates into p. Call it before p.Run.
func (m *Model) Attach(p *tea.Program) {
	m.SetSender(p.Send)
}

// SetSender routes debounced live-region updates to send.
func (m *Model) SetSender(send func(tea.Msg)) {
	m.send = send
}

// Chosen returns the item picked before the program quit, if any.
func (m *Model) Chosen() (core.PickerItem, bool) {
	if m.chosen == nil {
		return core.PickerItem{}, false
	}
	return *m.chosen, true
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadRecent())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(10, msg.Width-4)
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case liveRegionMsg:
		m.status = msg.text
		m.clearSeq++
		tag := core.DebounceTag{Key: statusClearKey, Seq: m.clearSeq}
		return m, core.DebounceCmd(tag, statusClearWait, nil)

	case core.DebounceMsg:
		if msg.Tag.Key == statusClearKey && msg.Tag.Seq == m.clearSeq {
			m.status = ""
		}
		return m, nil

	case selectionSavedMsg:
		if msg.err != nil {
			m.log.Warn("record selection", zap.Error(msg.err))
			return m, nil
		}
		return m, m.loadRecent()

	case recentLoadedMsg:
		if msg.err != nil {
			m.log.Warn("load recent selections", zap.Error(msg.err))
			return m, nil
		}
		m.applyRecent(msg.items)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.keys.IsAction(msg, core.ActionQuit, core.ScopePicker) {
		m.announce.Cancel()
		m.quitting = true
		return tea.Quit
	}

	query := m.picker.Query()
	if msg.Type == tea.KeyRunes && len(msg.Runes) > 1 {
		// pasted text and fast typing arrive as one message
		if m.picker.AppendQuery(string(msg.Runes)) {
			m.syncInput()
			m.queueStatus()
		}
		return nil
	}
	res := m.picker.HandleKey(core.ArrowKeyFromMsg(msg), m.completeOnTab)
	m.syncInput()
	m.queueStatus()

	if res.Action == core.PickerActionSelected {
		item := res.Item
		m.chosen = &item
		return m.recordSelection(item, query)
	}
	return nil
}

// completeOnTab fills the input with the highlighted label and stops the default handling.
func (m *Model) completeOnTab(ev *core.Event, _ ...any) {
	if ev.Key != "tab" {
		return
	}
	ev.PreventDefault()
	if item, ok := m.picker.CurrentItem(); ok {
		m.picker.SetQuery(item.Label)
	}
}

func (m *Model) syncInput() {
	if m.input.Value() != m.picker.Query() {
		m.input.SetValue(m.picker.Query())
		m.input.CursorEnd()
	}
	m.window.clamp(len(m.picker.Items()))
}

// queueStatus hands a non-empty live-region message to the debouncer; an empty message
// leaves the last announcement in place.
func (m *Model) queueStatus() {
	if text := m.picker.StatusMessage(); text != "" {
		m.announce.Call(text)
	}
}

func (m *Model) recordSelection(item core.PickerItem, query string) tea.Cmd {
	if m.history == nil {
		return nil
	}
	ctx := m.ctx
	return func() tea.Msg {
		sel, err := m.history.Record(ctx, item.ID, query)
		return selectionSavedMsg{sel: sel, err: err}
	}
}

func (m *Model) loadRecent() tea.Cmd {
	if m.history == nil {
		return nil
	}
	ctx := m.ctx
	return func() tea.Msg {
		items, err := m.history.Recent(ctx, recentLimit)
		return recentLoadedMsg{items: items, err: err}
	}
}

func (m *Model) applyRecent(recent []repository.RecentItem) {
	out := make([]core.PickerItem, 0, len(recent)+len(m.items))
	for _, r := range recent {
		out = append(out, core.PickerItem{
			ID:      r.ID,
			Label:   r.Label,
			Section: recentSection,
			Meta:    r.Section,
			Search:  r.Search,
		})
	}
	out = append(out, m.items...)
	m.picker.SetItems(out)
	m.window.clamp(len(m.picker.Items()))
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	width := max(40, m.width)

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.picker.Title()))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.picker.IsOpen() {
		b.WriteString(m.renderMenu(width - 4))
		b.WriteString("\n")
	}
	b.WriteString(renderStatus(m.status, width))
	b.WriteString("\n")
	b.WriteString(renderFooter(m.keys, core.ScopePicker, width))
	return b.String()
}

func (m *Model) renderMenu(width int) string {
	items := m.picker.Items()
	if len(items) == 0 {
		return menuStyle.Width(width).Render(emptyStyle.Render("No results"))
	}
	end := min(len(items), m.window.top+m.window.height)
	rows := make([]string, 0, end-m.window.top)
	for i := m.window.top; i < end; i++ {
		props := m.picker.ItemProps(i)
		rows = append(rows, renderRow(items[i], props))
	}
	return menuStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func renderRow(item core.PickerItem, props core.ItemProps) string {
	mark := " "
	if props.Selected {
		mark = selectedMark
	}
	label := item.Label
	if props.Highlighted {
		label = cursorStyle.Render(label)
	} else {
		label = rowStyle.Render(label)
	}
	line := mark + " " + label
	if item.Section != "" {
		line += " " + sectionStyle.Render(item.Section)
	}
	return line
}
