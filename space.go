package roundui

import (
	"image"
)

// Space is the room reserved on each side of a rectangle, e.g. the insets of a Border.
type Space struct {
	Top, Right, Bottom, Left int
}

// Inset returns r with s removed from its sides.
func (s Space) Inset(r image.Rectangle) image.Rectangle {
	return image.Rect(r.Min.X+s.Left, r.Min.Y+s.Top, r.Max.X-s.Right, r.Max.Y-s.Bottom)
}

// SpacePt returns a Space with p.X left and right, and p.Y top and bottom.
func SpacePt(p image.Point) Space {
	return Space{p.Y, p.X, p.Y, p.X}
}
