// Package tui is a plain ANSI fallback renderer for terminals where
// the full interactive view is unwanted, wired into a run as a frame
// observer.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/devang-m/graphlay/internal/graph"
)

const (
	width       = 70
	height      = 22
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer draws each frame as a character grid, throttled to the
// requested frame rate. It implements sim.Observer.
type LiveRenderer struct {
	graphName      string
	frameRate      int
	worldW, worldH float64
	lastFrame      time.Time
	canvas         [][]rune
}

func NewLiveRenderer(graphName string, frameRate int, worldW, worldH float64) *LiveRenderer {
	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
	}
	return &LiveRenderer{
		graphName: graphName,
		frameRate: frameRate,
		worldW:    worldW,
		worldH:    worldH,
		canvas:    canvas,
	}
}

func (r *LiveRenderer) OnFrame(m *graph.Model, alpha float64, frame int) {
	elapsed := time.Since(r.lastFrame)
	if elapsed < time.Second/time.Duration(r.frameRate) {
		return
	}
	r.lastFrame = time.Now()

	r.clear()
	r.drawModel(m)
	r.render(m, alpha, frame)
}

func (r *LiveRenderer) clear() {
	for y := range r.canvas {
		for x := range r.canvas[y] {
			r.canvas[y][x] = ' '
		}
	}
}

func (r *LiveRenderer) set(x, y int, c rune) {
	if x >= 0 && x < width && y >= 0 && y < height {
		r.canvas[y][x] = c
	}
}

func (r *LiveRenderer) line(x1, y1, x2, y2 int, c rune) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy
	for {
		r.set(x1, y1, c)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// project maps engine coordinates onto the character grid.
func (r *LiveRenderer) project(x, y float64) (int, int) {
	sx := float64(width) / r.worldW
	sy := float64(height) / r.worldH
	return width/2 + int(x*sx), height/2 + int(y*sy)
}

func (r *LiveRenderer) drawModel(m *graph.Model) {
	for _, e := range m.Edges {
		si, ti, ok := m.Endpoints(e)
		if !ok {
			continue
		}
		sx, sy := r.project(m.Nodes[si].X, m.Nodes[si].Y)
		tx, ty := r.project(m.Nodes[ti].X, m.Nodes[ti].Y)
		r.line(sx, sy, tx, ty, '.')
	}
	for i := range m.Nodes {
		n := &m.Nodes[i]
		px, py := r.project(n.X, n.Y)
		glyph := 'o'
		if n.Type == graph.TypeStrategy {
			glyph = 'O'
		}
		if n.Pinned() {
			glyph = '#'
		}
		r.set(px, py, glyph)
	}
}

func (r *LiveRenderer) render(m *graph.Model, alpha float64, frame int) {
	var b strings.Builder
	b.WriteString(clearScreen)
	b.WriteString(fmt.Sprintf("  %s  frame=%d  alpha=%.3f\n", r.graphName, frame, alpha))
	b.WriteString("  " + strings.Repeat("-", width) + "\n")

	for _, row := range r.canvas {
		b.WriteString("  ")
		b.WriteString(string(row))
		b.WriteString("\n")
	}

	b.WriteString("  " + strings.Repeat("-", width) + "\n")
	b.WriteString(fmt.Sprintf("  nodes=%d edges=%d components=%d\n",
		len(m.Nodes), len(m.Edges), m.ComponentCount))

	fmt.Print(b.String())
}

func (r *LiveRenderer) Start() { fmt.Print(hideCursor) }
func (r *LiveRenderer) Stop()  { fmt.Print(showCursor) }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
