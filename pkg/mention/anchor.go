// ABOUTME: Anchor geometry: translates the caret box out of a nested rendering boundary
// ABOUTME: and clamps the suggestion panel inside the container; pure functions only

package mention

// DefaultMargin is the gap kept between a clamped panel and the container edge.
const DefaultMargin = 8

// Point is a position in container space.
type Point struct {
	X, Y float64
}

// Size is a width/height pair.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned box.
type Rect struct {
	Left, Top, Width, Height float64
}

// Right returns the right edge of r.
func (r Rect) Right() float64 { return r.Left + r.Width }

// Bottom returns the bottom edge of r.
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Contains reports whether p lies inside r (right and bottom edges excluded).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X < r.Right() && p.Y >= r.Top && p.Y < r.Bottom()
}

// Geometry is everything the resolver needs, read from the host on demand.
type Geometry struct {
	// Cursor is the caret box in the coordinate space of the surface that
	// rendered it.
	Cursor Rect
	// Boundary is the nested rendering boundary (an embedded editor frame)
	// in the same outer space as Container. Nil for flat hosts, whose Cursor
	// is already in outer space.
	Boundary *Rect
	// Container hosts the floating panel.
	Container Rect
	// Panel is the size of the panel to place.
	Panel Size
}

// Resolver computes the panel anchor for a session.
type Resolver interface {
	Resolve(g Geometry) Point
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(g Geometry) Point

// Resolve calls f(g).
func (f ResolverFunc) Resolve(g Geometry) Point { return f(g) }

// Translate maps the caret box into container-relative coordinates:
// cursor + boundary origin - container origin.
func Translate(cursor Rect, boundary *Rect, container Rect) Rect {
	var offX, offY float64
	if boundary != nil {
		offX, offY = boundary.Left, boundary.Top
	}
	return Rect{
		Left:   cursor.Left + offX - container.Left,
		Top:    cursor.Top + offY - container.Top,
		Width:  cursor.Width,
		Height: cursor.Height,
	}
}

// Clamp places the panel directly below the translated caret and pulls it
// back inside the container when it would overflow.
type Clamp struct {
	Margin float64
}

// Resolve implements Resolver.
func (c Clamp) Resolve(g Geometry) Point {
	t := Translate(g.Cursor, g.Boundary, g.Container)
	p := Point{X: t.Left, Y: t.Bottom()}

	if p.X+g.Panel.Width > g.Container.Width {
		p.X = g.Container.Width - g.Panel.Width - c.Margin
	}
	if p.Y+g.Panel.Height > g.Container.Height {
		p.Y = g.Container.Height - g.Panel.Height - c.Margin
	}
	p.X = max(p.X, 0)
	p.Y = max(p.Y, 0)
	return p
}

// ResolveAnchor resolves with DefaultMargin.
func ResolveAnchor(g Geometry) Point {
	return Clamp{Margin: DefaultMargin}.Resolve(g)
}
