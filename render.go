package roundui

import (
	"fmt"
	"image"
	imagedraw "image/draw"

	"9fans.net/go/draw"
	"github.com/gogpu/gg"
)

// RenderFace rasterizes the face of a widget of size: backdrop, then background, then border.
// The result is anti-aliased and opaque when backdrop is.
func RenderFace(size image.Point, backdrop gg.RGBA, background Painter, border Border) (*image.RGBA, error) {
	if size.X <= 0 || size.Y <= 0 {
		return nil, fmt.Errorf("render face: empty size %v", size)
	}
	dc := gg.NewContext(size.X, size.Y)
	defer dc.Close()

	dc.ClearWithColor(backdrop)
	if background != nil {
		if err := background.Paint(dc, size); err != nil {
			return nil, fmt.Errorf("paint background: %w", err)
		}
	}
	if border != nil {
		if err := border.Paint(dc, rect(size)); err != nil {
			return nil, fmt.Errorf("paint border: %w", err)
		}
	}

	rgba := image.NewRGBA(rect(size))
	imagedraw.Draw(rgba, rgba.Bounds(), dc.Image(), image.ZP, imagedraw.Src)
	return rgba, nil
}

// LoadImage copies m to a new image on display.
func LoadImage(display *draw.Display, m *image.RGBA) (*draw.Image, error) {
	b := m.Bounds()
	if b.Min != image.ZP || m.Stride != 4*b.Dx() {
		rgba := image.NewRGBA(rect(b.Size()))
		imagedraw.Draw(rgba, rgba.Bounds(), m, b.Min, imagedraw.Src)
		m = rgba
	}

	// image.RGBA stores bytes as r,g,b,a; devdraw's a8b8g8r8 is little-endian, so the same order.
	ni, err := display.AllocImage(m.Bounds(), draw.ABGR32, false, draw.Transparent)
	if err != nil {
		return nil, fmt.Errorf("allocimage: %w", err)
	}
	_, err = ni.Load(m.Bounds(), m.Pix)
	if err != nil {
		ni.Free()
		return nil, fmt.Errorf("load image: %w", err)
	}
	return ni, nil
}
