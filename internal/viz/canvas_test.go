package viz

import (
	"strings"
	"testing"
)

func TestCanvasSetLightsDot(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Set(0, 0)
	if c.Grid[0][0] == 0x2800 {
		t.Error("dot (0,0) should light the first cell")
	}
	c.Set(3, 5)
	if c.Grid[1][1] == 0x2800 {
		t.Error("dot (3,5) should land in cell (1,1)")
	}
}

func TestCanvasIgnoresOutOfRange(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Set(-1, 0)
	c.Set(0, -3)
	c.Set(4, 0)
	c.Set(0, 8)
	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				t.Fatal("out of range Set must not touch the grid")
			}
		}
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(3, 3)
	c.DrawLine(0, 0, 5, 11)
	c.Clear()
	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				t.Fatal("Clear should reset every cell to the blank pattern")
			}
		}
	}
}

func TestDrawLineEndpoints(t *testing.T) {
	c := NewCanvas(8, 4)
	c.DrawLine(1, 1, 14, 14)
	if c.Grid[0][0] == 0x2800 {
		t.Error("line start missing")
	}
	if c.Grid[3][7] == 0x2800 {
		t.Error("line end missing")
	}
}

func TestStringShape(t *testing.T) {
	c := NewCanvas(5, 3)
	out := c.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(lines))
	}
	for _, line := range lines {
		if len([]rune(line)) != 5 {
			t.Errorf("expected 5 runes per row, got %d", len([]rune(line)))
		}
	}
}
