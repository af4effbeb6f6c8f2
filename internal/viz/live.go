package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/devang-m/graphlay/internal/config"
	"github.com/devang-m/graphlay/internal/graph"
	"github.com/devang-m/graphlay/internal/layout"
	"github.com/guptarohit/asciigraph"
)

const (
	canvasWidth     = 80
	canvasHeight    = 28
	historyCapacity = 600
	dragStep        = 15.0
)

var (
	canvasStyle  = lipgloss.NewStyle().Padding(1, 2)
	statsStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(42)
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	settledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("114")).Bold(true)
	pinnedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	graphStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type TickMsg time.Time

// Model drives the engine frame by frame and renders the layout with a
// stats sidebar. Arrow keys drag the selected node while it is pinned,
// which exercises the same pin and settle paths an embedding UI would.
type Model struct {
	engine       *layout.Engine
	model        *graph.Model
	cfg          config.Config
	canvas       *Canvas
	graphName    string
	frame        int
	running      bool
	selected     int
	dragging     bool
	alphaHistory []float64
	showHelp     bool
}

// NewModel wires a laid-out graph into the live view.
func NewModel(m *graph.Model, cfg config.Config, name string) Model {
	anchors := layout.Anchors(m.ComponentCount, cfg.AnchorSpacing)
	return Model{
		engine:       layout.NewEngine(m, anchors),
		model:        m,
		cfg:          cfg,
		canvas:       NewCanvas(canvasWidth, canvasHeight),
		graphName:    name,
		running:      true,
		selected:     0,
		alphaHistory: make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.cfg.FrameRate), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and steps the engine.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.engine.StartSettle(layout.SettleDataChange, 1)
		case "tab":
			if len(m.model.Nodes) > 0 {
				m.selected = (m.selected + 1) % len(m.model.Nodes)
			}
		case "p":
			m.togglePin()
		case "up", "k":
			m.drag(0, -dragStep)
		case "down", "j":
			m.drag(0, dragStep)
		case "left", "h":
			m.drag(-dragStep, 0)
		case "right", "l":
			m.drag(dragStep, 0)
		case "+", "=":
			m.adjustGap(1.05)
		case "-", "_":
			m.adjustGap(0.95)
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running && !m.engine.Sleeping() {
			m.engine.Step(m.cfg.Dt, m.cfg.Params, m.cfg.ViewWidth, m.cfg.ViewHeight)
			m.frame++
			m.alphaHistory = append(m.alphaHistory, m.engine.Alpha())
			if len(m.alphaHistory) > historyCapacity {
				m.alphaHistory = m.alphaHistory[1:]
			}
		}
		return m, m.tick()
	}
	return m, nil
}

// togglePin pins the selected node in place for dragging, or releases
// it with the gentle post-drag settle.
func (m *Model) togglePin() {
	if m.selected >= len(m.model.Nodes) {
		return
	}
	n := &m.model.Nodes[m.selected]
	if n.Pinned() {
		n.Unpin()
		m.dragging = false
		m.engine.StartSettle(layout.SettleDragEnd, 1)
		return
	}
	n.Pin(n.X, n.Y)
	m.dragging = true
	m.engine.Wake()
}

func (m *Model) drag(dx, dy float64) {
	if !m.dragging || m.selected >= len(m.model.Nodes) {
		return
	}
	n := &m.model.Nodes[m.selected]
	n.Pin(*n.FX+dx, *n.FY+dy)
	m.engine.Wake()
}

func (m *Model) adjustGap(factor float64) {
	m.cfg.Params.NodeGap *= factor
	m.engine.StartSettle(layout.SettleParamChange, 1)
}

// View renders the canvas beside the stats panel.
func (m Model) View() string {
	m.canvas.Clear()
	DrawModel(m.canvas, m.model, m.cfg.ViewWidth, m.cfg.ViewHeight, m.selected)
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.graphName)) + "\n")
	s.WriteString(m.status() + "\n\n")

	if len(m.alphaHistory) > 1 {
		chart := asciigraph.Plot(m.alphaHistory, asciigraph.Height(4), asciigraph.Width(28), asciigraph.Caption("Alpha"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Frame") + valueStyle.Render(fmt.Sprintf("%d", m.frame)) + "\n")
	s.WriteString(labelStyle.Render("Alpha") + valueStyle.Render(fmt.Sprintf("%.3f", m.engine.Alpha())) + "\n")
	s.WriteString(labelStyle.Render("Energy") + valueStyle.Render(fmt.Sprintf("%.2f", kineticEnergy(m.model))) + "\n")
	s.WriteString(labelStyle.Render("Nodes") + valueStyle.Render(fmt.Sprintf("%d", len(m.model.Nodes))) + "\n")
	s.WriteString(labelStyle.Render("Edges") + valueStyle.Render(fmt.Sprintf("%d", len(m.model.Edges))) + "\n")
	s.WriteString(labelStyle.Render("Components") + valueStyle.Render(fmt.Sprintf("%d", m.model.ComponentCount)) + "\n")
	s.WriteString(labelStyle.Render("NodeGap") + valueStyle.Render(fmt.Sprintf("%.0f", m.cfg.Params.NodeGap)) + "\n")

	if m.selected < len(m.model.Nodes) {
		n := &m.model.Nodes[m.selected]
		sel := n.Name
		if n.Pinned() {
			sel = pinnedStyle.Render(sel + " [pinned]")
		} else {
			sel = valueStyle.Render(sel)
		}
		s.WriteString(labelStyle.Render("Selected") + sel + "\n")
	}

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause R:Reheat Q:Quit\nTab:Select P:Pin ↑↓←→:Drag\n+/-:Node Gap ?:Help"))
	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)

	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume stepping    ║
║  R        - Reheat (full resettle)   ║
║  Q        - Quit                     ║
║  Tab      - Cycle selected node      ║
║  P        - Pin/release selection    ║
║  Arrows   - Drag the pinned node     ║
║  + / -    - Grow/shrink node gap     ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

func (m Model) status() string {
	switch {
	case m.engine.Sleeping():
		return settledStyle.Render("SETTLED")
	case !m.running:
		return "PAUSED"
	default:
		return "RUNNING"
	}
}

func kineticEnergy(m *graph.Model) float64 {
	total := 0.0
	for i := range m.Nodes {
		n := &m.Nodes[i]
		total += 0.5 * (n.VX*n.VX + n.VY*n.VY)
	}
	return total
}
