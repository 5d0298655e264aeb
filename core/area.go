package core

// Area represents a rectangular target region
type Area struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions, zero or negative means empty
}

// Empty reports whether the area covers no tiles
func (a Area) Empty() bool {
	return a.Width <= 0 || a.Height <= 0
}

// Contains checks if point is within area
func (a Area) Contains(p Point) bool {
	return p.X >= a.X && p.X < a.X+a.Width && p.Y >= a.Y && p.Y < a.Y+a.Height
}

// Expand grows the area by n tiles on every side
func (a Area) Expand(n int) Area {
	if n <= 0 {
		return a
	}
	return Area{X: a.X - n, Y: a.Y - n, Width: a.Width + 2*n, Height: a.Height + 2*n}
}

// Intersect returns the overlap of two areas, empty if disjoint
func (a Area) Intersect(b Area) Area {
	x0, y0 := max(a.X, b.X), max(a.Y, b.Y)
	x1, y1 := min(a.X+a.Width, b.X+b.Width), min(a.Y+a.Height, b.Y+b.Height)
	if x1 <= x0 || y1 <= y0 {
		return Area{X: x0, Y: y0}
	}
	return Area{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Points returns every tile in the area in row-major order
func (a Area) Points() []Point {
	if a.Empty() {
		return nil
	}
	out := make([]Point, 0, a.Width*a.Height)
	for y := a.Y; y < a.Y+a.Height; y++ {
		for x := a.X; x < a.X+a.Width; x++ {
			out = append(out, Point{X: x, Y: y})
		}
	}
	return out
}

// SquareAround returns the (2r+1)-sided square centered on origin
func SquareAround(origin Point, radius int) Area {
	if radius < 0 {
		return Area{X: origin.X, Y: origin.Y}
	}
	return Area{X: origin.X - radius, Y: origin.Y - radius, Width: 2*radius + 1, Height: 2*radius + 1}
}
