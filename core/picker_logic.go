package core

import (
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/sahilm/fuzzy"
)

type PickerItem struct {
	ID      string
	Label   string
	Section string
	Meta    string
	Search  string
}

func (i PickerItem) searchText() string {
	if s := strings.TrimSpace(i.Search); s != "" {
		return s
	}
	return i.Label
}

type PickerAction int

const (
	PickerActionNone PickerAction = iota
	PickerActionMoved
	PickerActionSelected
	PickerActionCancelled
	PickerActionOpened
	PickerActionQueryChanged
)

type PickerResult struct {
	Action PickerAction
	Item   PickerItem
}

// ItemProps are the attributes a host renders for one menu row.
type ItemProps struct {
	ID          string
	Index       int
	Highlighted bool
	Selected    bool
}

const defaultPageSize = 10

// Picker is a filterable list with a wrapping highlight. Consumers may control any of the
// State fields through SetControlled; controlled values win over internal ones.
type Picker struct {
	title    string
	items    []PickerItem
	filtered []PickerItem
	state    State
	patch    StatePatch
	keys     *KeyRegistry
	pageSize int

	id                string
	announcedCount    int
	menu              RefSlot[LineWindow]
	scroll            ScrollEngine
	onSelectionChange func(PickerItem)
}

type PickerOption func(*Picker)

// WithIDs draws the picker's id from ids instead of the process-wide allocator.
func WithIDs(ids *IDAllocator, prefix string) PickerOption {
	return func(p *Picker) {
		p.id = ids.Scoped(prefix)
	}
}

func WithKeyRegistry(reg *KeyRegistry) PickerOption {
	return func(p *Picker) { p.keys = reg }
}

func WithPageSize(n int) PickerOption {
	return func(p *Picker) {
		if n > 0 {
			p.pageSize = n
		}
	}
}

func WithScrollEngine(engine ScrollEngine) PickerOption {
	return func(p *Picker) { p.scroll = engine }
}

func OnSelectionChange(fn func(PickerItem)) PickerOption {
	return func(p *Picker) { p.onSelectionChange = fn }
}

func NewPicker(title string, items []PickerItem, opts ...PickerOption) *Picker {
	p := &Picker{
		title:    strings.TrimSpace(title),
		pageSize: defaultPageSize,
		scroll:   LineScrollEngine{},
		state:    State{HighlightedIndex: UnsetIndex},
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.keys == nil {
		p.keys = NewKeyRegistry(DefaultKeyBindings())
	}
	if p.id == "" {
		p.id = "combokit-" + GenerateID()
	}
	p.SetItems(items)
	return p
}

func (p *Picker) Title() string {
	if p == nil {
		return ""
	}
	return p.title
}

// State returns the effective state: internal state overridden by controlled props.
func (p *Picker) State() State {
	if p == nil {
		return State{HighlightedIndex: UnsetIndex}
	}
	return p.patch.Apply(p.state)
}

// SetControlled replaces the controlled props. Only the whitelisted state keys present in
// props are taken; an explicit nil selectedItem is a controlled "no selection".
func (p *Picker) SetControlled(props map[string]any) {
	if p == nil {
		return
	}
	p.patch = StatePatchFromMap(props)
	p.rebuildFiltered()
}

func (p *Picker) Query() string {
	return p.State().InputValue
}

func (p *Picker) IsOpen() bool {
	return p.State().IsOpen
}

func (p *Picker) Cursor() int {
	return p.State().HighlightedIndex
}

func (p *Picker) Items() []PickerItem {
	if p == nil {
		return nil
	}
	return append([]PickerItem(nil), p.filtered...)
}

func (p *Picker) SetItems(items []PickerItem) {
	if p == nil {
		return
	}
	p.items = append([]PickerItem(nil), items...)
	p.rebuildFiltered()
}

func (p *Picker) SetQuery(q string) {
	if p == nil {
		return
	}
	p.state.InputValue = q
	p.state.IsOpen = true
	p.state.HighlightedIndex = UnsetIndex
	p.rebuildFiltered()
}

// AppendQuery appends the printable runes of text to the query. It reports whether the
// query changed.
func (p *Picker) AppendQuery(text string) bool {
	if p == nil {
		return false
	}
	var b strings.Builder
	for _, r := range text {
		if unicode.IsControl(r) || r == utf8.RuneError {
			continue
		}
		b.WriteRune(r)
	}
	if b.Len() == 0 {
		return false
	}
	p.SetQuery(p.state.InputValue + b.String())
	return true
}

// Open opens the menu without changing the highlight.
func (p *Picker) Open() {
	if p == nil {
		return
	}
	p.state.IsOpen = true
}

// Close closes the menu and drops the highlight.
func (p *Picker) Close() {
	if p == nil {
		return
	}
	p.state.IsOpen = false
	p.state.HighlightedIndex = UnsetIndex
}

// Move shifts the highlight by amount, wrapping at both ends, and opens the menu.
func (p *Picker) Move(amount int) bool {
	if p == nil || len(p.filtered) == 0 {
		return false
	}
	before := p.Cursor()
	p.state.IsOpen = true
	p.state.HighlightedIndex = NextWrappingIndex(amount, before, len(p.filtered))
	p.scrollToHighlighted()
	return p.Cursor() != before
}

// SetHighlightedIndex highlights idx, or clears the highlight when idx is out of range.
func (p *Picker) SetHighlightedIndex(idx int) {
	if p == nil {
		return
	}
	if idx < 0 || idx >= len(p.filtered) {
		idx = UnsetIndex
	}
	p.state.HighlightedIndex = idx
	p.scrollToHighlighted()
}

func (p *Picker) CurrentItem() (PickerItem, bool) {
	if p == nil {
		return PickerItem{}, false
	}
	idx := p.Cursor()
	if idx < 0 || idx >= len(p.filtered) {
		return PickerItem{}, false
	}
	return p.filtered[idx], true
}

// SelectedItem returns the selected item, if any.
func (p *Picker) SelectedItem() (PickerItem, bool) {
	item, ok := p.State().SelectedItem.(PickerItem)
	return item, ok
}

// SelectItem selects item, closes the menu and writes the item label into the input.
func (p *Picker) SelectItem(item PickerItem) {
	if p == nil {
		return
	}
	p.state.SelectedItem = item
	p.state.InputValue = item.Label
	p.Close()
	p.rebuildFiltered()
	if p.onSelectionChange != nil {
		p.onSelectionChange(item)
	}
}

// HandleKey runs the user handlers, then the default key handling, as one chain. A user
// handler calling PreventDefault on the event skips the default handling.
func (p *Picker) HandleKey(keyName string, user ...EventHandler) PickerResult {
	if p == nil {
		return PickerResult{Action: PickerActionNone}
	}
	var res PickerResult
	handlers := make([]EventHandler, 0, len(user)+1)
	handlers = append(handlers, user...)
	handlers = append(handlers, func(ev *Event, _ ...any) {
		res = p.defaultKey(ev.Key)
	})
	CallAllEventHandlers(handlers...)(&Event{Type: "keydown", Key: keyName})
	return res
}

func (p *Picker) defaultKey(keyName string) PickerResult {
	count := len(p.filtered)
	switch p.keys.Action(keyName, ScopePicker) {
	case ActionMoveUp:
		return p.moved(p.Move(-1))
	case ActionMoveDown:
		return p.moved(p.Move(1))
	case ActionPageUp:
		return p.moved(p.Move(-min(p.pageSize, count)))
	case ActionPageDown:
		return p.moved(p.Move(min(p.pageSize, count)))
	case ActionFirst:
		if !p.IsOpen() {
			return PickerResult{Action: PickerActionNone}
		}
		before := p.Cursor()
		p.SetHighlightedIndex(0)
		return p.moved(p.Cursor() != before)
	case ActionLast:
		if !p.IsOpen() {
			return PickerResult{Action: PickerActionNone}
		}
		before := p.Cursor()
		p.SetHighlightedIndex(count - 1)
		return p.moved(p.Cursor() != before)
	case ActionSelect:
		item, ok := p.CurrentItem()
		if !ok || !p.IsOpen() {
			return PickerResult{Action: PickerActionNone}
		}
		p.SelectItem(item)
		return PickerResult{Action: PickerActionSelected, Item: item}
	case ActionClose:
		if !p.IsOpen() {
			return PickerResult{Action: PickerActionNone}
		}
		p.Close()
		return PickerResult{Action: PickerActionCancelled}
	case ActionToggle:
		if p.IsOpen() {
			p.Close()
			return PickerResult{Action: PickerActionCancelled}
		}
		p.Open()
		return PickerResult{Action: PickerActionOpened}
	case ActionClearText:
		p.SetQuery("")
		return PickerResult{Action: PickerActionQueryChanged}
	}

	switch keyName {
	case "backspace":
		q := p.state.InputValue
		if q == "" {
			return PickerResult{Action: PickerActionNone}
		}
		_, size := utf8.DecodeLastRuneInString(q)
		p.SetQuery(q[:len(q)-size])
		return PickerResult{Action: PickerActionQueryChanged}
	case "space":
		keyName = " "
	}
	if isPrintableKey(keyName) {
		p.SetQuery(p.state.InputValue + keyName)
		return PickerResult{Action: PickerActionQueryChanged}
	}
	return PickerResult{Action: PickerActionNone}
}

func (p *Picker) moved(changed bool) PickerResult {
	if changed {
		return PickerResult{Action: PickerActionMoved}
	}
	return PickerResult{Action: PickerActionNone}
}

// ID is the base id of the picker; element ids derive from it.
func (p *Picker) ID() string      { return p.id }
func (p *Picker) InputID() string { return p.id + "-input" }
func (p *Picker) MenuID() string  { return p.id + "-menu" }
func (p *Picker) LabelID() string { return p.id + "-label" }

// ItemProps returns the row attributes for the filtered item at index.
func (p *Picker) ItemProps(index int) ItemProps {
	if index < 0 || index >= len(p.filtered) {
		IndexOutOfRange("ItemProps", index, len(p.filtered))
		return ItemProps{Index: UnsetIndex}
	}
	sel, hasSel := p.SelectedItem()
	return ItemProps{
		ID:          p.id + "-item-" + strconv.Itoa(index),
		Index:       index,
		Highlighted: index == p.Cursor(),
		Selected:    hasSel && sel.ID == p.filtered[index].ID,
	}
}

// MenuRef returns the setter a host calls with its menu window. The picker keeps the
// window to scroll the highlighted row into view; user, if set, receives it as well.
func (p *Picker) MenuRef(user Ref[LineWindow]) func(LineWindow) {
	return CallAllRefs[LineWindow](&p.menu, user)
}

func (p *Picker) scrollToHighlighted() {
	idx := p.Cursor()
	if idx < 0 || p.menu.Current == nil {
		return
	}
	ScrollIntoView(p.scroll, LineTarget{Row: idx}, p.menu.Current)
}

// StatusMessage returns the live-region text for the current state and remembers the result
// count it announced, so an unchanged count is not announced twice.
func (p *Picker) StatusMessage() string {
	if p == nil {
		return ""
	}
	st := p.State()
	var selected any
	if item, ok := st.SelectedItem.(PickerItem); ok {
		selected = item
	}
	msg := A11yStatusMessage(StatusParams{
		IsOpen:              st.IsOpen,
		SelectedItem:        selected,
		ResultCount:         len(p.filtered),
		PreviousResultCount: p.announcedCount,
		ItemToString: func(item any) string {
			return item.(PickerItem).Label
		},
	})
	if st.IsOpen {
		p.announcedCount = len(p.filtered)
	} else {
		p.announcedCount = 0
	}
	return msg
}

func (p *Picker) SectionOrder() []string {
	if p == nil {
		return nil
	}
	seen := make(map[string]bool, len(p.items))
	out := make([]string, 0, len(p.items))
	for _, item := range p.items {
		if seen[item.Section] {
			continue
		}
		seen[item.Section] = true
		out = append(out, item.Section)
	}
	return out
}

type pickerSource []PickerItem

func (s pickerSource) String(i int) string { return s[i].searchText() }
func (s pickerSource) Len() int            { return len(s) }

type scoredPickerItem struct {
	item     PickerItem
	score    int
	distance int
	index    int
}

func (p *Picker) rebuildFiltered() {
	if p == nil {
		return
	}
	q := strings.TrimSpace(p.State().InputValue)
	if sel, ok := p.SelectedItem(); ok && !p.IsOpen() && q == sel.Label {
		// the input shows the selection; list everything
		q = ""
	}

	var scored []scoredPickerItem
	if q == "" {
		scored = make([]scoredPickerItem, 0, len(p.items))
		for idx, item := range p.items {
			scored = append(scored, scoredPickerItem{item: item, index: idx})
		}
	} else {
		qLower := strings.ToLower(q)
		matches := fuzzy.FindFrom(q, pickerSource(p.items))
		scored = make([]scoredPickerItem, 0, len(matches))
		for _, m := range matches {
			item := p.items[m.Index]
			scored = append(scored, scoredPickerItem{
				item:     item,
				score:    m.Score,
				distance: levenshtein.ComputeDistance(strings.ToLower(item.searchText()), qLower),
				index:    m.Index,
			})
		}
	}

	bySection := make(map[string][]scoredPickerItem)
	for _, row := range scored {
		bySection[row.item.Section] = append(bySection[row.item.Section], row)
	}

	out := make([]PickerItem, 0, len(scored))
	for _, section := range p.SectionOrder() {
		rows := bySection[section]
		if len(rows) == 0 {
			continue
		}
		sort.SliceStable(rows, func(i, j int) bool {
			if rows[i].score != rows[j].score {
				return rows[i].score > rows[j].score
			}
			if rows[i].distance != rows[j].distance {
				return rows[i].distance < rows[j].distance
			}
			return rows[i].index < rows[j].index
		})
		for _, row := range rows {
			out = append(out, row.item)
		}
	}
	p.filtered = out

	if p.state.HighlightedIndex >= len(p.filtered) {
		p.state.HighlightedIndex = UnsetIndex
	}
}

func isPrintableKey(keyName string) bool {
	r, size := utf8.DecodeRuneInString(keyName)
	return size > 0 && size == len(keyName) && r >= 32 && r != 127 && r != utf8.RuneError
}
