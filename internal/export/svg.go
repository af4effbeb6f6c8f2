// Package export renders settled layouts to SVG.
package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/devang-m/graphlay/internal/graph"
)

const (
	backgroundColor = "#0a0a0a"
	edgeColor       = "#555555"
	indicatorColor  = "#4fa3ff"
	strategyColor   = "#ffb347"
	labelColor      = "#cccccc"
)

// LayoutSVG draws the model into a viewW x viewH SVG with the origin at
// the center, matching the engine's coordinate system. Edges carry
// arrowheads pointing at their dependency target.
func LayoutSVG(m *graph.Model, viewW, viewH float64) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="%.0f %.0f %.0f %.0f">
`, viewW, viewH, -viewW/2, -viewH/2, viewW, viewH)
	fmt.Fprintf(&sb, `<rect x="%.0f" y="%.0f" width="100%%" height="100%%" fill="%s"/>
`, -viewW/2, -viewH/2, backgroundColor)
	fmt.Fprintf(&sb, `<defs><marker id="arrow" viewBox="0 0 10 10" refX="9" refY="5" markerWidth="7" markerHeight="7" orient="auto-start-reverse"><path d="M 0 0 L 10 5 L 0 10 z" fill="%s"/></marker></defs>
`, edgeColor)

	sb.WriteString("<g stroke=\"" + edgeColor + "\" stroke-width=\"1.5\">\n")
	for _, e := range m.Edges {
		si, ti, ok := m.Endpoints(e)
		if !ok {
			continue
		}
		s, t := &m.Nodes[si], &m.Nodes[ti]
		sx, sy, tx, ty := trimToRadii(s, t)
		fmt.Fprintf(&sb, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" marker-end="url(#arrow)"/>
`, sx, sy, tx, ty)
	}
	sb.WriteString("</g>\n")

	for i := range m.Nodes {
		n := &m.Nodes[i]
		fill := indicatorColor
		if n.Type == graph.TypeStrategy {
			fill = strategyColor
		}
		fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, n.X, n.Y, n.Radius, fill)
		fmt.Fprintf(&sb, `<text x="%.1f" y="%.1f" fill="%s" font-size="11" text-anchor="middle" font-family="monospace">%s</text>
`, n.X, n.Y+n.Radius+13, labelColor, escape(n.Name))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// trimToRadii shortens an edge segment so arrowheads land on node rims
// instead of centers.
func trimToRadii(s, t *graph.Node) (sx, sy, tx, ty float64) {
	dx, dy := t.X-s.X, t.Y-s.Y
	d := math.Hypot(dx, dy)
	if d < 1 {
		return s.X, s.Y, t.X, t.Y
	}
	nx, ny := dx/d, dy/d
	return s.X + nx*s.Radius, s.Y + ny*s.Radius,
		t.X - nx*(t.Radius+2), t.Y - ny*(t.Radius+2)
}

func escape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
