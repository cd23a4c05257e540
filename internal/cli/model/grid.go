// Package model holds the Bubble Tea models of the datagrid terminal UI.
package model

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/datagrid/internal/application/port"
	"github.com/bnema/datagrid/internal/application/usecase"
	"github.com/bnema/datagrid/internal/cli/styles"
	"github.com/bnema/datagrid/internal/domain/entity"
	"github.com/bnema/datagrid/internal/infrastructure/config"
	"github.com/bnema/datagrid/internal/logging"
	"github.com/bnema/datagrid/internal/ui/controller"
	"github.com/bnema/datagrid/internal/ui/layout"
)

const noticeTick = time.Second

// GridDeps are the collaborators of a GridModel.
type GridDeps struct {
	Controller *controller.Controller
	Surface    *Surface
	Exporter   *usecase.ExportFigureUseCase
	Plot       *usecase.PlotDatasetUseCase
	Theme      *styles.Theme
	Clock      port.Clock
}

// GridOptions tune the grid UI.
type GridOptions struct {
	Toolbar   bool
	// NoToolbar keeps the toolbar hidden across config reloads.
	NoToolbar bool
	NoticeTTL time.Duration
	ExportDir string
	Formats   []string
	Figure    port.FigureOptions
}

// ConfigReloadedMsg carries a configuration re-read by the file watcher.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// exportDoneMsg reports a finished background export.
type exportDoneMsg struct {
	out *usecase.ExportFigureOutput
	err error
}

type noticeTickMsg struct{}

// GridModel is the Bubble Tea model of the interactive plot grid. All
// tiling mutations happen in Update through the controller.
type GridModel struct {
	ctx      context.Context
	ctrl     *controller.Controller
	surface  *Surface
	exporter *usecase.ExportFigureUseCase
	plot     *usecase.PlotDatasetUseCase
	theme    *styles.Theme
	clock    port.Clock
	opts     GridOptions

	keys GridKeys
	help help.Model

	width, height int

	// popup state, rebuilt after every message
	popup       *popup
	helpBox     *popup
	toolbar     []hit
	toolbarLine string
	menuSeen    *controller.Menu
	kindIdx     int
	filter      textinput.Model
	hex         textinput.Model

	exporting bool
	quitting  bool
}

// GridKeys is the key map used by the grid.
type GridKeys = styles.GridKeyMap

// NewGridModel creates the grid model.
func NewGridModel(ctx context.Context, deps GridDeps, opts GridOptions) *GridModel {
	if opts.NoticeTTL <= 0 {
		opts.NoticeTTL = 4 * time.Second
	}
	if opts.NoToolbar {
		opts.Toolbar = false
	}
	return &GridModel{
		ctx:      logging.WithComponent(ctx, "grid"),
		ctrl:     deps.Controller,
		surface:  deps.Surface,
		exporter: deps.Exporter,
		plot:     deps.Plot,
		theme:    deps.Theme,
		clock:    deps.Clock,
		opts:     opts,
		keys:     styles.DefaultGridKeyMap(),
		help:     styles.NewStyledHelp(deps.Theme),
		filter:   styles.NewFilterInput(deps.Theme),
		hex:      styles.NewHexInput(deps.Theme),
		width:    80,
		height:   24,
	}
}

// Init implements tea.Model.
func (m *GridModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.tickNotice())
}

// Update implements tea.Model.
func (m *GridModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.surface.Reset()

	case tea.MouseMsg:
		cmds = append(cmds, m.handleMouse(msg))

	case tea.KeyMsg:
		cmds = append(cmds, m.handleKey(msg))

	case ConfigReloadedMsg:
		m.applyConfig(msg.Config)

	case exportDoneMsg:
		m.exporting = false
		if msg.err != nil {
			m.ctrl.Notify(fmt.Sprintf("export failed: %v", msg.err))
		} else {
			m.ctrl.Notify(fmt.Sprintf("saved %d file(s) to %s", len(msg.out.Paths), m.opts.ExportDir))
		}

	case noticeTickMsg:
		if n := m.ctrl.Notice(); n != nil && n.Expired(m.clock.Now(), m.opts.NoticeTTL) {
			m.ctrl.ClearNotice()
		}
		cmds = append(cmds, m.tickNotice())

	default:
		cmds = append(cmds, m.updateInputs(msg))
	}

	if m.quitting {
		return m, tea.Quit
	}
	m.syncMenuState()
	m.refreshOverlays()
	return m, tea.Batch(cmds...)
}

func (m *GridModel) tickNotice() tea.Cmd {
	return tea.Tick(noticeTick, func(time.Time) tea.Msg { return noticeTickMsg{} })
}

// gridArea is the screen area of the panels; the toolbar takes the last row.
func (m *GridModel) gridArea() layout.Box {
	h := m.height
	if m.opts.Toolbar {
		h--
	}
	return layout.Box{X: 0, Y: 0, W: m.width, H: max(h, 0)}
}

func (m *GridModel) grid() layout.Grid {
	t := m.ctrl.Tiling()
	return layout.New(t.Rows(), t.Cols(), m.gridArea())
}

func (m *GridModel) screen() layout.Box {
	return layout.Box{X: 0, Y: 0, W: m.width, H: m.height}
}

func (m *GridModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress {
		return nil
	}
	button := mouseButton(msg.Button)
	if button == controller.ButtonNone {
		return nil
	}
	ctx := m.ctx

	if run, inside := m.helpBox.at(msg.X, msg.Y); inside {
		if run != nil {
			run(ctx)
		}
		return nil
	}
	if run, inside := m.popup.at(msg.X, msg.Y); inside {
		if run != nil {
			run(ctx)
		}
		return nil
	}
	if m.opts.Toolbar && msg.Y == m.height-1 {
		for _, h := range m.toolbar {
			if msg.X >= h.x0 && msg.X < h.x1 {
				return m.runToolbar(h)
			}
		}
		m.ctrl.HandlePress(ctx, controller.ButtonPress{X: msg.X, Y: msg.Y, Button: button})
		return nil
	}

	press := controller.ButtonPress{X: msg.X, Y: msg.Y, Button: button}
	if p := m.grid().PanelAt(m.ctrl.Tiling(), msg.X, msg.Y); p != nil {
		press.Panel = p.ID
		if artist := m.pickAt(p, msg.X, msg.Y); artist != "" {
			m.ctrl.HandlePick(ctx, controller.Pick{X: msg.X, Y: msg.Y, Button: button, Panel: p.ID, Artist: artist})
		}
	}
	m.ctrl.HandlePress(ctx, press)
	return nil
}

// runToolbar triggers a toolbar button. The Save button returns the export
// command.
func (m *GridModel) runToolbar(h hit) tea.Cmd {
	switch h.row {
	case toolbarHelp:
		m.ctrl.OpenHelp()
	case toolbarSave:
		return m.save()
	case toolbarQuit:
		m.quitting = true
	}
	return nil
}

// pickAt returns the series drawn at (x, y) of panel p, if any.
func (m *GridModel) pickAt(p *entity.Panel, x, y int) entity.ArtistID {
	v := m.panelView(p, m.grid().Box(p.Rect))
	if !v.chart.Contains(x, y) {
		return ""
	}
	return v.canvas.Owner(x-v.chart.X, y-v.chart.Y)
}

func mouseButton(b tea.MouseButton) controller.Button {
	switch b {
	case tea.MouseButtonLeft:
		return controller.ButtonLeft
	case tea.MouseButtonMiddle:
		return controller.ButtonMiddle
	case tea.MouseButtonRight:
		return controller.ButtonRight
	}
	return controller.ButtonNone
}

func (m *GridModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	ctx := m.ctx
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return nil
	}

	if menu := m.ctrl.Menu(); menu != nil {
		switch menu.Kind {
		case controller.MenuData:
			switch {
			case key.Matches(msg, m.keys.Dismiss):
				m.ctrl.Dismiss(ctx)
			case key.Matches(msg, m.keys.NextKind):
				m.kindIdx = (m.kindIdx + 1) % max(len(menu.Kinds), 1)
			default:
				var cmd tea.Cmd
				m.filter, cmd = m.filter.Update(msg)
				return cmd
			}
			return nil
		case controller.MenuColor:
			switch {
			case key.Matches(msg, m.keys.Dismiss):
				m.ctrl.ApplyColor(ctx, "")
			case key.Matches(msg, m.keys.Confirm):
				m.ctrl.ApplyColor(ctx, hexInput(m.hex.Value()))
			default:
				var cmd tea.Cmd
				m.hex, cmd = m.hex.Update(msg)
				return cmd
			}
			return nil
		}
	}

	switch {
	case key.Matches(msg, m.keys.Dismiss):
		if m.ctrl.HelpOpen() {
			m.ctrl.CloseHelp()
		} else {
			m.ctrl.Dismiss(ctx)
		}
	case key.Matches(msg, m.keys.Help):
		m.ctrl.OpenHelp()
	case key.Matches(msg, m.keys.Save):
		return m.save()
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
	}
	return nil
}

// updateInputs forwards cursor blinks to the focused popup input.
func (m *GridModel) updateInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch {
	case m.filter.Focused():
		m.filter, cmd = m.filter.Update(msg)
	case m.hex.Focused():
		m.hex, cmd = m.hex.Update(msg)
	}
	return cmd
}

// syncMenuState resets popup inputs when a different menu opens.
func (m *GridModel) syncMenuState() {
	menu := m.ctrl.Menu()
	if menu == m.menuSeen {
		return
	}
	m.menuSeen = menu
	m.filter.Blur()
	m.hex.Blur()
	if menu == nil {
		return
	}
	switch menu.Kind {
	case controller.MenuData:
		m.kindIdx = 0
		m.filter.SetValue("")
		m.filter.Focus()
	case controller.MenuColor:
		m.hex.Focus()
	}
}

// save exports a snapshot of the figure in the background.
func (m *GridModel) save() tea.Cmd {
	if m.exporter == nil || m.exporting {
		return nil
	}
	m.exporting = true
	m.ctrl.Notify("saving figure…")
	ctx := m.ctx
	input := usecase.ExportFigureInput{
		Tiling:  m.ctrl.Tiling().Clone(),
		Dir:     m.opts.ExportDir,
		Formats: m.opts.Formats,
		Options: m.opts.Figure,
	}
	return func() tea.Msg {
		out, err := m.exporter.Export(ctx, input)
		return exportDoneMsg{out: out, err: err}
	}
}

// applyConfig re-applies the runtime settings of a reloaded config. The grid
// size is fixed for the session.
func (m *GridModel) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	m.theme = styles.NewTheme(cfg)
	m.help = styles.NewStyledHelp(m.theme)
	m.help.Width = m.width
	m.filter = styles.NewFilterInput(m.theme)
	m.hex = styles.NewHexInput(m.theme)
	m.menuSeen = nil

	m.ctrl.SetPickDebounce(cfg.Interaction.PickDebounce())
	if ttl := cfg.Interaction.NoticeTTL(); ttl > 0 {
		m.opts.NoticeTTL = ttl
	}
	m.opts.Toolbar = cfg.Toolbar.Enabled && !m.opts.NoToolbar
	if m.plot != nil {
		m.plot.SetColorCycle(cfg.Appearance.SeriesColors())
	}
	m.surface.Reset()

	t := m.ctrl.Tiling()
	if cfg.Grid.Rows != t.Rows() || cfg.Grid.Cols != t.Cols() {
		m.ctrl.Notify("grid size changes apply on next start")
	}
	logging.FromContext(m.ctx).Info().Msg("configuration reloaded")
}

// panelView returns the cached rendering of p, rendering it if needed.
func (m *GridModel) panelView(p *entity.Panel, box layout.Box) *panelView {
	if v, ok := m.surface.cached(p, box); ok {
		return v
	}
	v := renderPanel(m.theme, p, box, m.ctrl.Highlighted() == p.ID)
	m.surface.store(v)
	return v
}

// refreshOverlays rebuilds the popup and help window for the current state.
func (m *GridModel) refreshOverlays() {
	m.popup = nil
	if menu := m.ctrl.Menu(); menu != nil {
		m.popup = m.buildMenuPopup(menu, m.screen())
	}
	m.helpBox = nil
	if m.ctrl.HelpOpen() {
		m.helpBox = m.buildHelp()
	}
	if m.opts.Toolbar {
		m.toolbarLine, m.toolbar = m.buildToolbar()
	}
}

// View implements tea.Model.
func (m *GridModel) View() string {
	if m.quitting {
		return ""
	}
	if m.width <= 0 || m.height <= 0 {
		return "loading…"
	}

	lines := blankLines(m.width, m.height)
	g := m.grid()
	for _, p := range m.ctrl.Tiling().Panels() {
		box := g.Box(p.Rect)
		v := m.panelView(p, box)
		lines = placeOverlay(lines, strings.Join(v.rendered, "\n"), box.X, box.Y)
	}

	if m.opts.Toolbar {
		lines[m.height-1] = m.toolbarLine
	}
	if m.popup != nil {
		lines = placeOverlay(lines, m.popup.body, m.popup.box.X, m.popup.box.Y)
	}
	if m.helpBox != nil {
		lines = placeOverlay(lines, m.helpBox.body, m.helpBox.box.X, m.helpBox.box.Y)
	}
	return lipgloss.NewStyle().MaxWidth(m.width).Render(strings.Join(lines, "\n"))
}
