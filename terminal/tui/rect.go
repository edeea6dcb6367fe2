package tui

import "fmt"

// Rect is an axis-aligned rectangle in cell coordinates
type Rect struct {
	X, Y int
	W, H int
}

// NewRect returns a rectangle at x,y with size w x h
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Valid reports whether the rectangle has positive area
func (r Rect) Valid() bool {
	return r.W > 0 && r.H > 0
}

// Right returns the first column past the rectangle
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the first row past the rectangle
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether the absolute point x,y lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Intersects is an open overlap test; rectangles sharing only an edge do not intersect
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X &&
		r.Y < o.Bottom() && r.Bottom() > o.Y
}

// Union returns the bounding rectangle of r and o
func (r Rect) Union(o Rect) Rect {
	u := Rect{X: o.X, Y: o.Y}
	if r.X < o.X {
		u.X = r.X
	}
	if r.Y < o.Y {
		u.Y = r.Y
	}
	u.W = max(r.Right(), o.Right()) - u.X
	u.H = max(r.Bottom(), o.Bottom()) - u.Y
	return u
}

// ClipPoint reports whether the rect-relative point x,y is visible
func (r Rect) ClipPoint(x, y int) bool {
	return x >= 0 && x < r.W && y >= 0 && y < r.H
}

// ClipHLine clips a rect-relative horizontal line of length w
func (r Rect) ClipHLine(x, y, w int) (int, int, int, bool) {
	if y < 0 || y >= r.H {
		return -1, -1, -1, false
	}
	if x < 0 {
		w += x
		x = 0
	}
	if x+w > r.W {
		w = r.W - x
	}
	if w <= 0 {
		return -1, -1, -1, false
	}
	return x, y, w, true
}

// ClipVLine clips a rect-relative vertical line of length h
func (r Rect) ClipVLine(x, y, h int) (int, int, int, bool) {
	if x < 0 || x >= r.W {
		return -1, -1, -1, false
	}
	if y < 0 {
		h += y
		y = 0
	}
	if y+h > r.H {
		h = r.H - y
	}
	if h <= 0 {
		return -1, -1, -1, false
	}
	return x, y, h, true
}

// ClipRect clips a rect-relative rectangle against r
func (r Rect) ClipRect(c Rect) (Rect, bool) {
	if c.Right() < 0 || c.X >= r.W || c.Bottom() < 0 || c.Y >= r.H {
		return Rect{}, false
	}
	if c.X < 0 {
		c.W += c.X
		c.X = 0
	}
	if c.Right() > r.W {
		c.W = r.W - c.X
	}
	if c.Y < 0 {
		c.H += c.Y
		c.Y = 0
	}
	if c.Bottom() > r.H {
		c.H = r.H - c.Y
	}
	if !c.Valid() {
		return Rect{}, false
	}
	return c, true
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.W, r.H)
}
