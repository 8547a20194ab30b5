package ui

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"scrollhead/internal/config"
	"scrollhead/internal/domain"
	"scrollhead/internal/eventbus"
	"scrollhead/internal/header"
	"scrollhead/internal/history"
	"scrollhead/internal/ui/logic"
	"scrollhead/internal/ui/views"
)

// chromeRows is the space below the list: status line and help line
const chromeRows = 2

// Title is drawn in the middle of the header band
const Title = "scrollhead"

// Model represents the UI state
type Model struct {
	bus     eventbus.EventBus
	config  *config.Config
	history *history.Recorder

	width  int
	height int
	keys   keyMap
	help   help.Model

	controller   *header.Controller
	navigator    *logic.Navigator
	renderer     *views.Renderer
	helpRenderer *HelpRenderer

	visible       logic.Range
	lastDirection domain.Direction
	statusMessage string
	ticking       bool

	now     func() time.Time
	pager   *Pager
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, recorder *history.Recorder) *Model {
	m := &Model{
		bus:          bus,
		config:       cfg,
		history:      recorder,
		keys:         defaultKeyMap(),
		help:         help.New(),
		navigator:    logic.NewNavigator(cfg.Items),
		renderer:     views.NewRenderer(),
		helpRenderer: NewHelpRenderer(),
		now:          time.Now,
	}

	opts := cfg.HeaderOptions()
	opts.Now = func() time.Time { return m.now() }
	m.controller = header.NewController(opts)

	m.controller.Store().Subscribe(func(prev, next domain.HeaderState) {
		sample, _ := m.controller.LastSample()
		log.Printf("Header %s -> %s (%s, offset %.1f)", prev, next, m.controller.Strategy(), sample.Offset)
		if m.bus != nil {
			m.bus.Publish(eventbus.HeaderStateChangedEvent{
				From:     prev,
				To:       next,
				Strategy: m.controller.Strategy(),
				Offset:   sample.Offset,
			})
		}
	})

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager = NewPager(p)
}

// Controller exposes the header controller
func (m *Model) Controller() *header.Controller {
	return m.controller
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, m.relayout()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelDown:
			return m, m.scroll(m.navigator.ScrollBy(m.config.UISettings.WheelStep))
		case tea.MouseButtonWheelUp:
			return m, m.scroll(m.navigator.ScrollBy(-m.config.UISettings.WheelStep))
		}
		return m, nil

	case tickMsg:
		return m, m.handleFrame()

	case throttleMsg:
		m.flushThrottle(msg.gen)
		return m, m.ensureTicking()

	case pagerMsg:
		if msg.err != nil {
			log.Printf("%s pager failed: %v", msg.what, msg.err)
			m.statusMessage = fmt.Sprintf("pager failed: %v", msg.err)
			return m, clearStatusAfter(3 * time.Second)
		}
		return m, nil

	case clearStatusMsg:
		m.statusMessage = ""
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Down):
		return m, m.scroll(m.navigator.ScrollBy(m.config.UISettings.ScrollStep))
	case key.Matches(msg, m.keys.Up):
		return m, m.scroll(m.navigator.ScrollBy(-m.config.UISettings.ScrollStep))
	case key.Matches(msg, m.keys.PageDown):
		return m, m.scroll(m.navigator.PageDown())
	case key.Matches(msg, m.keys.PageUp):
		return m, m.scroll(m.navigator.PageUp())
	case key.Matches(msg, m.keys.Top):
		return m, m.scroll(m.navigator.GoToTop())
	case key.Matches(msg, m.keys.Bottom):
		return m, m.scroll(m.navigator.GoToBottom())
	case key.Matches(msg, m.keys.Strategy):
		return m, m.toggleStrategy()
	case key.Matches(msg, m.keys.History):
		return m, m.showInPager("history", m.historyContent())
	case key.Matches(msg, m.keys.Help):
		return m, m.showInPager("help", m.helpRenderer.renderHelpContent(m.keys))
	}
	return m, nil
}

// scroll runs a layout pass when the list moved
func (m *Model) scroll(moved bool) tea.Cmd {
	if !moved {
		return nil
	}
	return m.relayout()
}

// relayout is one layout pass: it sizes the list under the current header,
// hands both frames to the controller and reports newly visible rows.
func (m *Model) relayout() tea.Cmd {
	if m.height == 0 {
		return nil
	}
	now := m.now()
	headerRows := m.controller.Rows(now)
	m.navigator.SetViewportHeight(m.listHeight(headerRows))

	viewport, content := m.frames(headerRows)
	_, out := m.controller.Layout(viewport, content)
	if out.Dropped && m.bus != nil {
		sample, _ := m.controller.LastSample()
		m.bus.Publish(eventbus.SampleDroppedEvent{Offset: sample.Offset})
	}
	if m.controller.Strategy() == domain.StrategyOffset && !out.Dropped {
		m.lastDirection = out.Direction
	}

	cmds := m.trackVisibleRows()
	cmds = append(cmds, m.ensureTicking())
	return tea.Batch(cmds...)
}

// frames returns the viewport and content rectangles in terminal rows. The
// viewport sits right under the header; the content is shifted up by the
// scroll offset.
func (m *Model) frames(headerRows int) (domain.Rect, domain.Rect) {
	viewport := domain.Rect{
		Top:    float64(headerRows),
		Height: float64(m.navigator.GetViewportHeight()),
	}
	content := domain.Rect{
		Top:    float64(headerRows - m.navigator.GetViewportOffset()),
		Height: float64(m.navigator.ItemCount()),
	}
	return viewport, content
}

func (m *Model) listHeight(headerRows int) int {
	h := m.height - headerRows - chromeRows
	if h < 1 {
		return 1
	}
	return h
}

// trackVisibleRows offers every row that just scrolled into view to the
// controller and returns the throttle timers it asked for
func (m *Model) trackVisibleRows() []tea.Cmd {
	next := m.navigator.VisibleRange()
	rows := logic.NewlyVisible(m.visible, next)
	m.visible = next

	var cmds []tea.Cmd
	for _, row := range rows {
		arm, gen := m.controller.RowVisible(row)
		if !arm {
			continue
		}
		window := m.controller.ThrottleWindow()
		if window <= 0 {
			m.flushThrottle(gen)
			continue
		}
		cmds = append(cmds, tea.Tick(window, func(time.Time) tea.Msg {
			return throttleMsg{gen: gen}
		}))
	}
	return cmds
}

func (m *Model) flushThrottle(gen uint64) {
	out := m.controller.FlushThrottle(gen)
	if out.Suppressed && m.bus != nil {
		m.bus.Publish(eventbus.DecisionSuppressedEvent{Decision: out.Decision})
	}
}

// ensureTicking starts the frame loop when a transition is running
func (m *Model) ensureTicking() tea.Cmd {
	if m.ticking || !m.controller.Animating(m.now()) {
		return nil
	}
	m.ticking = true
	return m.frameTick()
}

func (m *Model) frameTick() tea.Cmd {
	return tea.Tick(m.config.UISettings.FrameInterval.Std(), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// handleFrame resizes the list to the animated header. Rows revealed by a
// shrinking header count as visible; the offset is only re-sampled when the
// resize had to move it.
func (m *Model) handleFrame() tea.Cmd {
	now := m.now()
	var cmds []tea.Cmd

	if m.height > 0 {
		headerRows := m.controller.Rows(now)
		if m.navigator.SetViewportHeight(m.listHeight(headerRows)) {
			cmds = append(cmds, m.relayout())
		} else {
			cmds = append(cmds, m.trackVisibleRows()...)
		}
	}

	if m.controller.Animating(now) {
		cmds = append(cmds, m.frameTick())
	} else {
		m.ticking = false
	}
	return tea.Batch(cmds...)
}

func (m *Model) toggleStrategy() tea.Cmd {
	from := m.controller.Strategy()
	to := from.Toggle()
	if !m.controller.SetStrategy(to) {
		return nil
	}
	log.Printf("Strategy %s -> %s", from, to)
	if m.bus != nil {
		m.bus.Publish(eventbus.StrategyChangedEvent{From: from, To: to})
	}
	m.lastDirection = domain.Direction{}
	m.visible = logic.Range{}
	m.statusMessage = fmt.Sprintf("strategy: %s", to)
	return tea.Batch(m.relayout(), clearStatusAfter(2*time.Second))
}

func (m *Model) historyContent() string {
	if m.history == nil {
		return "History is disabled.\n"
	}
	return m.history.Format()
}

// showInPager returns a command that shows content using the ov pager
func (m *Model) showInPager(what, content string) tea.Cmd {
	if m.pager == nil {
		return nil
	}
	pager := m.pager
	return func() tea.Msg {
		return pagerMsg{what: what, err: pager.Show(content)}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	now := m.now()
	headerRows := m.controller.Rows(now)
	sample, hasSample := m.controller.LastSample()

	return m.renderer.Render(views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Title:         Title,
		HeaderRows:    headerRows,
		ListHeight:    m.listHeight(headerRows),
		FirstRow:      m.navigator.GetViewportOffset(),
		ItemCount:     m.navigator.ItemCount(),
		State:         m.controller.State(),
		Strategy:      m.controller.Strategy(),
		Sample:        sample,
		HasSample:     hasSample,
		Direction:     m.lastDirection,
		StatusMessage: m.statusMessage,
		HelpView:      m.help.View(m.keys),
	})
}
