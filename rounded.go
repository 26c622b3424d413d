package roundui

import (
	"image"

	"9fans.net/go/draw"
	"github.com/gogpu/gg"
)

// Painter paints the background of a widget. dc covers exactly the widget.
type Painter interface {
	Paint(dc *gg.Context, size image.Point) error
}

// Border paints the outline of a widget within r, and reserves Insets around the widget's content.
type Border interface {
	Paint(dc *gg.Context, r image.Rectangle) error
	Insets() Space
}

// RoundedFill fills the whole widget with a rounded rectangle.
type RoundedFill struct {
	Radius int
	Color  gg.RGBA
}

var _ Painter = RoundedFill{}

// Paint fills (0, 0, width, height). Radius is the geometric radius of the corner arcs,
// not the arc diameter that java.awt's fillRoundRect takes.
func (f RoundedFill) Paint(dc *gg.Context, size image.Point) error {
	dc.SetRGBA(f.Color.R, f.Color.G, f.Color.B, f.Color.A)
	dc.DrawRoundedRectangle(0, 0, float64(size.X), float64(size.Y), float64(f.Radius))
	return dc.Fill()
}

// RoundedBorder strokes a one pixel rounded rectangle, and reserves Radius pixels on every side.
type RoundedBorder struct {
	Radius int
	Color  gg.RGBA
}

var _ Border = RoundedBorder{}

// Paint strokes the outline spanning (x, y, width-1, height-1) of r.
// Coordinates are shifted to pixel centers so the line covers whole pixels.
func (b RoundedBorder) Paint(dc *gg.Context, r image.Rectangle) error {
	dc.SetRGBA(b.Color.R, b.Color.G, b.Color.B, b.Color.A)
	dc.SetLineWidth(1)
	x := float64(r.Min.X) + 0.5
	y := float64(r.Min.Y) + 0.5
	dc.DrawRoundedRectangle(x, y, float64(r.Dx()-1), float64(r.Dy()-1), float64(b.Radius))
	return dc.Stroke()
}

func (b RoundedBorder) Insets() Space {
	return SpacePt(pt(b.Radius))
}

// drawRoundedBorder draws a border with rounded corners of radius, on the inside of r, directly with devdraw.
// Without anti-aliasing. Used when a face could not be rendered.
func drawRoundedBorder(img *draw.Image, r image.Rectangle, radius int, color *draw.Image) {
	x0 := r.Min.X
	x1 := r.Max.X - 1
	y0 := r.Min.Y
	y1 := r.Max.Y - 1
	tl := image.Pt(x0+radius, y0+radius)
	bl := image.Pt(x0+radius, y1-radius)
	br := image.Pt(x1-radius, y1-radius)
	tr := image.Pt(x1-radius, y0+radius)
	img.Arc(tl, radius, radius, 0, color, image.ZP, 90, 90)
	img.Arc(bl, radius, radius, 0, color, image.ZP, 180, 90)
	img.Arc(br, radius, radius, 0, color, image.ZP, 270, 90)
	img.Arc(tr, radius, radius, 0, color, image.ZP, 0, 90)
	img.Line(image.Pt(x0, y0+radius), image.Pt(x0, y1-radius), 0, 0, 0, color, image.ZP)
	img.Line(image.Pt(x0+radius, y1), image.Pt(x1-radius, y1), 0, 0, 0, color, image.ZP)
	img.Line(image.Pt(x1, y1-radius), image.Pt(x1, y0+radius), 0, 0, 0, color, image.ZP)
	img.Line(image.Pt(x1-radius, y0), image.Pt(x0+radius, y0), 0, 0, 0, color, image.ZP)
}

// roundedShapes splits the rounded rectangle r into two overlapping rectangles forming a cross,
// and the centers of the four corner circles of radius, which is clamped to fit r.
// Centers match drawRoundedBorder.
func roundedShapes(r image.Rectangle, radius int) (rects [2]image.Rectangle, centers [4]image.Point, rad int) {
	rad = radius
	if m := (r.Dx() - 1) / 2; rad > m {
		rad = m
	}
	if m := (r.Dy() - 1) / 2; rad > m {
		rad = m
	}
	if rad < 0 {
		rad = 0
	}
	x0, y0 := r.Min.X, r.Min.Y
	x1, y1 := r.Max.X-1, r.Max.Y-1
	rects[0] = image.Rect(x0+rad, y0, x1-rad+1, y1+1)
	rects[1] = image.Rect(x0, y0+rad, x1+1, y1-rad+1)
	centers = [4]image.Point{
		{x0 + rad, y0 + rad},
		{x1 - rad, y0 + rad},
		{x0 + rad, y1 - rad},
		{x1 - rad, y1 - rad},
	}
	return
}

// fillRounded fills the inside of the rounded rectangle r directly with devdraw, without anti-aliasing.
func fillRounded(img *draw.Image, r image.Rectangle, radius int, color *draw.Image) {
	rects, centers, rad := roundedShapes(r, radius)
	for _, fr := range rects {
		img.Draw(fr, color, nil, image.ZP)
	}
	for _, c := range centers {
		img.FillEllipse(c, rad, rad, color, image.ZP)
	}
}
