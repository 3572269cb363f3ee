package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dleamy/daila/internal/activity"
	"github.com/dleamy/daila/internal/calendar"
	"github.com/dleamy/daila/internal/canvas"
	"github.com/dleamy/daila/internal/config"
	"github.com/dleamy/daila/internal/heatmap"
	"github.com/dleamy/daila/internal/storage"
)

type sessionMode int

const (
	modeDefault sessionMode = iota
	modeEditor
	modeConfirm
)

type pendingKind int

const (
	pendingQuitWithoutSaving pendingKind = iota
	pendingDeleteType
)

// pendingAction is the action a confirmation popup guards.
type pendingAction struct {
	kind   pendingKind
	typeID activity.ID
}

const (
	tooSmallNotice = "Make the terminal larger"
	headerHeight   = 1
)

// TUIConfig holds resolved settings for the interactive session.
type TUIConfig struct {
	Theme   Theme
	HeatMap config.HeatMapConfig
}

// sessionModel owns the registry, the log and every piece of UI state. The
// popup states are only meaningful in their mode.
type sessionModel struct {
	store storage.Store
	reg   *activity.Registry
	log   *activity.Log
	cfg   TUIConfig

	selector SelectorState
	mode     sessionMode
	editor   activityPopupState
	confirm  confirmPopupState
	pending  pendingAction

	active  calendar.Date
	refresh bool

	keys keyMap
	help help.Model
	now  func() time.Time

	width  int
	height int

	saved bool
	err   error
}

func newSessionModel(store storage.Store, reg *activity.Registry, log *activity.Log, cfg TUIConfig) sessionModel {
	h := help.New()
	h.ShowAll = true
	h.Styles = help.Styles{
		ShortKey:       lipgloss.NewStyle(),
		ShortDesc:      lipgloss.NewStyle(),
		ShortSeparator: lipgloss.NewStyle(),
		Ellipsis:       lipgloss.NewStyle(),
		FullKey:        lipgloss.NewStyle(),
		FullDesc:       lipgloss.NewStyle(),
		FullSeparator:  lipgloss.NewStyle(),
	}
	m := sessionModel{
		store:    store,
		reg:      reg,
		log:      log,
		cfg:      cfg,
		selector: NewSelectorState(reg.Count()),
		keys:     defaultKeyMap(),
		help:     h,
		now:      time.Now,
	}
	m.active = calendar.FromTime(m.now())
	return m
}

func (m sessionModel) Init() tea.Cmd {
	return nil
}

func (m sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.refresh = true
	case tea.KeyMsg:
		switch m.mode {
		case modeEditor:
			cmd = m.updateEditor(msg)
		case modeConfirm:
			cmd = m.updateConfirm(msg)
		default:
			cmd = m.updateDefault(msg)
		}
	}

	if m.refresh {
		m.refresh = false
		if cmd == nil {
			return m, tea.ClearScreen
		}
		return m, tea.Sequence(tea.ClearScreen, cmd)
	}
	return m, cmd
}

func (m *sessionModel) updateDefault(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.PrevDay):
		m.active = m.active.Prev()
	case key.Matches(msg, m.keys.NextDay):
		m.active = m.active.Next()
	case key.Matches(msg, m.keys.Today):
		m.active = calendar.FromTime(m.now())
	case key.Matches(msg, m.keys.Left):
		m.selector = m.selector.Left()
	case key.Matches(msg, m.keys.Right):
		m.selector = m.selector.Right()
	case key.Matches(msg, m.keys.Up):
		m.selector = m.selector.Up()
	case key.Matches(msg, m.keys.Down):
		m.selector = m.selector.Down()
	case key.Matches(msg, m.keys.Toggle):
		if t, ok := m.selectedType(); ok {
			m.log.Toggle(t.ID, m.active)
		}
	case key.Matches(msg, m.keys.Create):
		m.editor = newCreatePopup()
		m.mode = modeEditor
		m.refresh = true
	case key.Matches(msg, m.keys.Edit):
		if t, ok := m.selectedType(); ok {
			m.editor = newEditPopup(t)
			m.mode = modeEditor
			m.refresh = true
		}
	case key.Matches(msg, m.keys.Delete):
		if t, ok := m.selectedType(); ok {
			m.openConfirm(fmt.Sprintf("Delete activity %q?", t.Name), pendingAction{kind: pendingDeleteType, typeID: t.ID})
		}
	case key.Matches(msg, m.keys.SaveQuit):
		return m.saveAndQuit()
	case key.Matches(msg, m.keys.QuitNoSave):
		m.openConfirm("Quit without saving?", pendingAction{kind: pendingQuitWithoutSaving})
	}
	return nil
}

func (m *sessionModel) openConfirm(prompt string, pending pendingAction) {
	m.confirm = newConfirmPopup(prompt)
	m.pending = pending
	m.mode = modeConfirm
	m.refresh = true
}

func (m *sessionModel) updateEditor(msg tea.KeyMsg) tea.Cmd {
	action, done := m.editor.HandleKey(msg)
	if !done {
		return nil
	}
	switch action.kind {
	case editorCreateAction:
		if activity.ValidateName(action.name) == nil {
			m.reg.Create(action.name)
			m.selector = NewSelectorState(m.reg.Count())
		}
	case editorEditAction:
		if activity.ValidateName(action.name) == nil {
			m.reg.Rename(action.id, action.name)
		}
	}
	m.closePopup()
	return nil
}

func (m *sessionModel) updateConfirm(msg tea.KeyMsg) tea.Cmd {
	accepted, done := m.confirm.HandleKey(msg)
	if !done {
		return nil
	}
	if accepted && m.pending.kind == pendingQuitWithoutSaving {
		m.mode = modeDefault
		return tea.Quit
	}
	m.closePopup()
	if !accepted {
		return nil
	}
	switch m.pending.kind {
	case pendingDeleteType:
		m.reg.Delete(m.pending.typeID)
		m.selector = NewSelectorState(m.reg.Count())
	}
	return nil
}

func (m *sessionModel) closePopup() {
	m.mode = modeDefault
	m.refresh = true
}

func (m *sessionModel) saveAndQuit() tea.Cmd {
	if err := m.store.Save(m.reg, m.log); err != nil {
		m.err = fmt.Errorf("saving activities: %w", err)
		return tea.Quit
	}
	m.saved = true
	return tea.Quit
}

// selectedType returns the activity type under the selector cursor.
func (m sessionModel) selectedType() (activity.Type, bool) {
	idx, ok := m.selector.Selected()
	if !ok {
		return activity.Type{}, false
	}
	types := m.reg.List()
	if idx >= len(types) {
		return activity.Type{}, false
	}
	return types[idx], true
}

// heatMap builds the heat-map for the selected type over the active date's
// year.
func (m sessionModel) heatMap() heatmap.Model {
	hm := heatmap.ForYear(m.active.Year)
	hm.LowColor = m.cfg.Theme.Muted
	hm.HighColor = m.cfg.Theme.Success
	if m.cfg.HeatMap.LowColor != "" {
		hm.LowColor = lipgloss.Color(m.cfg.HeatMap.LowColor)
	}
	if m.cfg.HeatMap.HighColor != "" {
		hm.HighColor = lipgloss.Color(m.cfg.HeatMap.HighColor)
	}
	hm.Gradient = m.cfg.HeatMap.Gradient
	hm.SeparatorColor = m.cfg.Theme.Muted
	hm.LabelColor = m.cfg.Theme.Primary
	hm.Active = m.active
	hm.ActiveColor = m.cfg.Theme.Accent
	if t, ok := m.selectedType(); ok {
		hm.Values = heatmap.Index(m.log.RecordsOfType(t.ID))
	}
	return hm
}

func (m sessionModel) helpLines() []string {
	lines := strings.Split(m.help.View(m.keys), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return lines
}

func (m sessionModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	theme := m.cfg.Theme
	buf := canvas.NewBuffer(m.width, m.height, theme.base())
	frame := buf.Bounds()

	hm := m.heatMap()
	helpLines := m.helpLines()
	heatPanel := hm.Height() + 2
	displayWidth := hm.Width() + 2
	minHeight := headerHeight + minSelectorHeight + heatPanel + len(helpLines)
	if frame.Width < displayWidth || frame.Height < minHeight {
		renderNotice(buf, frame, theme)
		return buf.Render()
	}

	display := frame.CenterWidth(displayWidth)
	selH := min(selectorHeight(m.reg.Count()), frame.Height-headerHeight-heatPanel-len(helpLines))
	rows := display.SplitRows(headerHeight, selH, heatPanel, len(helpLines))

	m.renderHeader(buf, rows[0])
	options := activity.Options(m.reg, m.log, m.active)
	renderSelector(buf, rows[1], options, m.selector, theme, m.keys.Create.Help().Key)
	m.renderHeatMap(buf, rows[2], hm)
	for i, line := range helpLines {
		buf.SetStringN(rows[3].X+1, rows[3].Y+i, line, rows[3].Width-1, theme.muted())
	}

	switch m.mode {
	case modeEditor:
		drawPopup(buf, frame, editorPopupWidth, editorPopupHeight, func(area canvas.Rect) {
			m.editor.render(buf, area, theme)
		})
	case modeConfirm:
		drawPopup(buf, frame, confirmPopupWidth, confirmPopupHeight, func(area canvas.Rect) {
			m.confirm.render(buf, area, theme)
		})
	}
	return buf.Render()
}

func (m sessionModel) renderHeader(buf *canvas.Buffer, area canvas.Rect) {
	theme := m.cfg.Theme
	x := buf.SetString(area.X+1, area.Y, m.active.Format("Monday, 2 January 2006"), theme.title())
	if m.active == calendar.FromTime(m.now()) {
		buf.SetString(x+1, area.Y, "(today)", theme.muted())
	}
	if t, ok := m.selectedType(); ok {
		name := t.Name
		w := canvas.StringWidth(name)
		buf.SetStringN(max(x+9, area.Right()-1-w), area.Y, name, w, theme.accent())
	}
}

func (m sessionModel) renderHeatMap(buf *canvas.Buffer, area canvas.Rect, hm heatmap.Model) {
	theme := m.cfg.Theme
	title := fmt.Sprintf(" %d ", hm.Start.Year)
	inner := buf.DrawBox(area, lipgloss.RoundedBorder(), theme.border(), title, theme.title())
	// Layout already reserved the full heat-map size.
	_ = hm.Render(buf, inner)
}

// renderNotice draws the too-small notice centred in frame.
func renderNotice(buf *canvas.Buffer, frame canvas.Rect, theme Theme) {
	w := min(canvas.StringWidth(tooSmallNotice)+4, frame.Width)
	h := min(3, frame.Height)
	box := canvas.Rect{
		X:      frame.X + (frame.Width-w)/2,
		Y:      frame.Y + (frame.Height-h)/2,
		Width:  w,
		Height: h,
	}
	buf.DrawBorder(box, lipgloss.RoundedBorder(), theme.danger())
	text := box.Inset(1)
	if text.Empty() {
		buf.SetStringN(frame.X, frame.Y, tooSmallNotice, frame.Width, theme.danger())
		return
	}
	buf.SetStringN(text.X+1, text.Y, tooSmallNotice, text.Width-1, theme.danger())
}
