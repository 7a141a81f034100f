package muon

import "golang.org/x/exp/constraints"

// Vec2 is an integer point or extent.
type Vec2 struct {
	X, Y int
}

// Rect is an integer rectangle. Width and height may go negative as
// intermediate results of intersection; they are clamped to zero before
// any command is emitted.
type Rect struct {
	X, Y, W, H int
}

// Color is straight (non-premultiplied) 8-bit RGBA.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color { return Color{r, g, b, 255} }

// RGBA returns a color with an explicit alpha.
func RGBA(r, g, b, a uint8) Color { return Color{r, g, b, a} }

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// expand grows r by n pixels on every side.
func (r Rect) expand(n int) Rect {
	return Rect{r.X - n, r.Y - n, r.W + n*2, r.H + n*2}
}

// intersect returns the overlap of two rectangles, clamped to zero extent.
func (r Rect) intersect(o Rect) Rect {
	x1 := max(r.X, o.X)
	y1 := max(r.Y, o.Y)
	x2 := min(r.X+r.W, o.X+o.W)
	y2 := min(r.Y+r.H, o.Y+o.H)
	if x2 < x1 {
		x2 = x1
	}
	if y2 < y1 {
		y2 = y1
	}
	return Rect{x1, y1, x2 - x1, y2 - y1}
}

// Clamp limits v to the closed range [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}
