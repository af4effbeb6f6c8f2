package layout

import "math"

// Point is a 2D anchor coordinate.
type Point struct {
	X, Y float64
}

// Anchors places one rest point per connected component on a centered
// grid: cols = ceil(sqrt(count)), filled row-major.
func Anchors(count int, spacing float64) []Point {
	if count <= 0 {
		return nil
	}
	cols := int(math.Ceil(math.Sqrt(float64(count))))
	rows := int(math.Ceil(float64(count) / float64(cols)))

	pts := make([]Point, count)
	for i := 0; i < count; i++ {
		col := i % cols
		row := i / cols
		pts[i] = Point{
			X: (float64(col) - float64(cols-1)/2) * spacing,
			Y: (float64(row) - float64(rows-1)/2) * spacing,
		}
	}
	return pts
}
