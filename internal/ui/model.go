// Package ui implements the interactive icon picker: a fuzzy query over the
// catalog with a live preview of the resolved animation descriptors.
package ui

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"livelyicons/internal/animation"
	"livelyicons/internal/catalog"
	"livelyicons/internal/config"
	"livelyicons/internal/domain"
	"livelyicons/internal/eventbus"
	"livelyicons/internal/motion"
	"livelyicons/internal/search"
	"livelyicons/internal/ui/logic"
	"livelyicons/internal/ui/views"
)

// readyMarker is printed once the first frame renders in e2e runs
const readyMarker = "__READY__"

// chromeLines is the number of screen lines not available to the list
const chromeLines = 10

// Options configures a picker model
type Options struct {
	Store    catalog.IconStore
	Bus      eventbus.EventBus
	Config   *config.Config
	Scanning bool   // a discovery scan is running
	Watching bool   // a directory watcher is running
	ScanDir  string // source directory F5 rescans; "" disables rescans

	// CopyFunc writes to the clipboard; nil uses the system clipboard
	CopyFunc func(string) error
}

// Model represents the UI state
type Model struct {
	config  *config.Config
	store   catalog.IconStore
	bus     eventbus.EventBus
	scanDir string

	width     int
	height    int
	input     textinput.Model
	keys      KeyMap
	help      help.Model
	search    *search.Service
	renderer  *views.Renderer
	helpOps   *HelpOps
	helpTexts *HelpRenderer

	query         logic.Query
	rows          map[string]logic.Row // last ranking, by icon name
	sortMode      logic.SortMode
	viewportStart int

	pickedMotion motion.MotionType // "" previews each icon's own motion
	trigger      motion.TriggerType
	override     *bool
	ctx          animation.Context

	scanning      bool
	watching      bool
	rescanning    bool            // a rescan was requested and has not started yet
	rescanSeen    map[string]bool // icons found by the running rescan
	inPagerMode   bool
	statusMessage string
	chosen        string
	e2e           bool

	copyFunc func(string) error
	program  *tea.Program
}

// NewModel creates a new UI model
func NewModel(opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	input := textinput.New()
	input.Prompt = "› "
	input.Placeholder = "search icons, e.g. arrow motion:translate"
	input.Focus()

	copyFunc := opts.CopyFunc
	if copyFunc == nil {
		copyFunc = clipboard.WriteAll
	}

	keys := DefaultKeyMap()
	m := &Model{
		config:    cfg,
		store:     opts.Store,
		bus:       opts.Bus,
		scanDir:   opts.ScanDir,
		input:     input,
		keys:      keys,
		help:      help.New(),
		renderer:  views.NewRenderer(),
		helpOps:   NewHelpOps(),
		helpTexts: NewHelpRenderer(keys),
		rows:      make(map[string]logic.Row),
		trigger:   cfg.Animation.DefaultTrigger,
		ctx:       cfg.Context(),
		scanning:  opts.Scanning,
		watching:  opts.Watching,
		copyFunc:  copyFunc,
		e2e:       os.Getenv("LIVELY_E2E_TEST") == "1",
	}

	if cfg.UISettings.Sort != "" {
		mode, ok := logic.ParseSortMode(cfg.UISettings.Sort)
		if !ok {
			log.Printf("Config: unknown sort %q, using %s", cfg.UISettings.Sort, mode)
		}
		m.sortMode = mode
	}

	if m.store == nil {
		m.store = catalog.NewMemoryIconStore()
	}

	m.search = search.NewService(opts.Bus, m.store.Names)
	m.search.SetRanker(m.rank)
	m.search.SetListAll(true)
	m.search.SetQuery("")

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps.SetProgram(p)
}

// Chosen returns the snippet picked with enter, "" when the picker was left
// without choosing
func (m *Model) Chosen() string {
	return m.chosen
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tick())
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = msg.Width - 8
		m.syncViewport()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.handleNonKeyboardMsg(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Clear):
		if m.input.Value() == "" {
			return m, tea.Quit
		}
		m.input.SetValue("")
		m.applyQuery()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.search.NavigatePrevious()
		m.syncViewport()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.search.NavigateNext()
		m.syncViewport()
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.page(-1)
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.page(1)
		return m, nil

	case key.Matches(msg, m.keys.NextMotion):
		m.pickedMotion = m.previewMotion().Next()
		return m, nil

	case key.Matches(msg, m.keys.PrevMotion):
		m.pickedMotion = m.previewMotion().Prev()
		return m, nil

	case key.Matches(msg, m.keys.Trigger):
		m.trigger = m.trigger.Next()
		return m, nil

	case key.Matches(msg, m.keys.Reduced):
		m.ctx.ReducedMotion = !m.ctx.ReducedMotion
		return m, nil

	case key.Matches(msg, m.keys.Override):
		m.cycleOverride()
		return m, nil

	case key.Matches(msg, m.keys.Sort):
		m.sortMode = m.sortMode.Next()
		m.search.Refresh()
		m.syncViewport()
		return m, m.setStatus("Sort: " + m.sortMode.String())

	case key.Matches(msg, m.keys.Copy):
		snippet, ok := m.currentSnippet()
		if !ok {
			return m, nil
		}
		if err := m.copyFunc(snippet); err != nil {
			log.Printf("Failed to copy to clipboard: %v", err)
			return m, m.setStatus(fmt.Sprintf("Copy failed: %v", err))
		}
		return m, m.setStatus("Copied " + snippet)

	case key.Matches(msg, m.keys.Choose):
		snippet, ok := m.currentSnippet()
		if !ok {
			return m, nil
		}
		m.chosen = snippet
		if err := m.copyFunc(snippet); err != nil {
			log.Printf("Failed to copy to clipboard: %v", err)
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Rescan):
		return m, m.requestRescan()

	case key.Matches(msg, m.keys.Help):
		if m.program == nil {
			return m, nil
		}
		return m, m.fetchHelpPager(m.helpTexts.RenderHelpContent())
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.applyQuery()
	}
	return m, cmd
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case tickMsg:
		// Don't continue tick loop if we're in pager mode
		if m.inPagerMode || !m.scanning {
			return m, nil
		}
		return m, tick()

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("Help pager failed: %v", msg.err)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, tick()

	case clearStatusMsg:
		m.statusMessage = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleEvent folds discovery events into the store and re-ranks
func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.ScanStartedEvent:
		m.scanning = true
		if m.rescanning {
			m.rescanning = false
			m.rescanSeen = make(map[string]bool)
		}
		return tick()

	case eventbus.IconDiscoveredEvent:
		m.store.AddIcon(e.Icon)
		if m.rescanSeen != nil {
			m.rescanSeen[e.Icon.Name] = true
		}
		m.search.Refresh()

	case eventbus.IconRemovedEvent:
		m.store.RemoveIcon(e.Name)
		m.search.Refresh()

	case eventbus.ScanCompletedEvent:
		m.scanning = false
		if m.rescanSeen != nil {
			for _, name := range m.store.Names() {
				if !m.rescanSeen[name] {
					m.store.RemoveIcon(name)
				}
			}
			m.rescanSeen = nil
		}
		m.search.Refresh()
		m.syncViewport()
		return m.setStatus(fmt.Sprintf("Found %d icons", e.IconsFound))

	case eventbus.ErrorEvent:
		log.Printf("Error event: %s: %v", e.Message, e.Err)
		m.syncViewport()
		return m.setStatus(e.Message)
	}

	m.syncViewport()
	return nil
}

// View renders the picker
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	state := views.ViewState{
		Width:         m.width,
		Height:        m.height,
		TextInput:     m.input.View(),
		Rows:          m.currentRows(),
		SelectedIndex: m.search.GetCurrentMatchIndex(),
		ViewportStart: m.viewportStart,
		ListHeight:    m.listHeight(),
		MatchText:     m.query.Text,
		TotalIcons:    m.store.Len(),
		Query:         m.query,
		SortMode:      m.sortMode,
		ShowPreview:   m.config.UISettings.ShowPreview,
		Scanning:      m.scanning,
		Watching:      m.watching,
		StatusMessage: m.statusMessage,
		HelpView:      m.help.View(m.keys),
	}
	if p, ok := m.preview(); ok {
		state.Preview = &p
	}

	out := m.renderer.Render(state)
	if m.e2e {
		out += "\n" + readyMarker
	}
	return out
}

// rank is the search service ranker: it applies the parsed query filters,
// keyword lookup and the current sort mode
func (m *Model) rank(query string, names []string) []search.Match {
	icons := make([]domain.Icon, 0, len(names))
	for _, name := range names {
		if icon, ok := m.store.GetIcon(name); ok {
			icons = append(icons, icon)
		}
	}

	rows := logic.Rank(logic.ParseQuery(query), icons, m.config.Search.Keywords, m.sortMode)

	m.rows = make(map[string]logic.Row, len(rows))
	matches := make([]search.Match, len(rows))
	for i, row := range rows {
		m.rows[row.Icon.Name] = row
		matches[i] = search.Match{Item: row.Icon.Name, Score: row.Score}
	}
	return matches
}

func (m *Model) applyQuery() {
	m.query = logic.ParseQuery(m.input.Value())
	m.search.SetQuery(m.input.Value())
	m.syncViewport()
}

func (m *Model) currentRows() []logic.Row {
	matches := m.search.GetMatches()
	rows := make([]logic.Row, 0, len(matches))
	for _, match := range matches {
		if row, ok := m.rows[match.Item]; ok {
			rows = append(rows, row)
		}
	}
	return rows
}

func (m *Model) currentIcon() (domain.Icon, bool) {
	match, ok := m.search.GetCurrentMatch()
	if !ok {
		return domain.Icon{}, false
	}
	row, ok := m.rows[match.Item]
	return row.Icon, ok
}

// previewMotion is the motion the preview resolves: the user's pick or the
// selected icon's own family
func (m *Model) previewMotion() motion.MotionType {
	if m.pickedMotion != "" {
		return m.pickedMotion
	}
	if icon, ok := m.currentIcon(); ok && icon.Motion != "" {
		return icon.Motion
	}
	return m.config.Animation.DefaultMotion
}

// previewTrigger lets a trigger: filter in the query win over ctrl+t
func (m *Model) previewTrigger() motion.TriggerType {
	if m.query.Trigger != "" {
		return m.query.Trigger
	}
	return m.trigger
}

func (m *Model) preview() (views.Preview, bool) {
	icon, ok := m.currentIcon()
	if !ok {
		return views.Preview{}, false
	}
	return views.Preview{
		Icon:     icon,
		Override: m.override,
		Context:  m.ctx,
		Result:   animation.Resolve(m.override, m.ctx, m.previewMotion(), m.previewTrigger()),
	}, true
}

func (m *Model) currentSnippet() (string, bool) {
	icon, ok := m.currentIcon()
	if !ok {
		return "", false
	}
	return catalog.Snippet(icon, m.previewMotion(), m.previewTrigger(), m.override), true
}

// requestRescan asks discovery to scan the source directory again. Icons the
// new scan does not find are dropped when it completes.
func (m *Model) requestRescan() tea.Cmd {
	if m.bus == nil || m.scanDir == "" {
		return m.setStatus("Nothing to rescan: no icons dir")
	}
	if m.scanning {
		return m.setStatus("Scan already running")
	}
	m.rescanning = true
	m.bus.Publish(eventbus.ScanRequestedEvent{Paths: []string{m.scanDir}})
	return m.setStatus("Rescanning " + m.scanDir)
}

// cycleOverride steps unset -> animated -> static -> unset
func (m *Model) cycleOverride() {
	switch {
	case m.override == nil:
		m.override = animation.Bool(true)
	case *m.override:
		m.override = animation.Bool(false)
	default:
		m.override = nil
	}
}

func (m *Model) listHeight() int {
	h := m.height - chromeLines
	if h < 3 {
		h = 3
	}
	return h
}

func (m *Model) page(direction int) {
	count := m.search.GetMatchCount()
	if count == 0 {
		return
	}
	target := m.search.GetCurrentMatchIndex() + direction*m.listHeight()
	if target < 0 {
		target = 0
	}
	if target >= count {
		target = count - 1
	}
	for m.search.GetCurrentMatchIndex() != target {
		if direction < 0 {
			m.search.NavigatePrevious()
		} else {
			m.search.NavigateNext()
		}
	}
	m.syncViewport()
}

func (m *Model) syncViewport() {
	m.viewportStart = logic.ScrollOffset(
		m.search.GetCurrentMatchIndex(),
		m.viewportStart,
		m.listHeight(),
		m.search.GetMatchCount(),
	)
}

func (m *Model) setStatus(message string) tea.Cmd {
	m.statusMessage = message
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

// tick returns a command that sends a tick message after a delay
func tick() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
