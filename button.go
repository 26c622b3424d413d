package roundui

import (
	"image"
	"log"

	"9fans.net/go/draw"
	"github.com/gogpu/gg"
)

// RoundedButton is a clickable button of fixed size. Its face is painted by Background and Border,
// its label is centered within the Border's insets. No focus indication is drawn.
//
// Keys:
//	space, \n, like button1 click, calls the Click function
type RoundedButton struct {
	Text       string           // Label.
	Size       image.Point      // Exact size of the button, in pixels.
	Foreground gg.RGBA          // Color of the label.
	Background Painter          `json:"-"` // Paints the face, below the label.
	Border     Border           `json:"-"` // Paints the outline, and reserves space around the label.
	Font       *draw.Font       `json:"-"` // Used for drawing text. Nil means the DUI font.
	Click      func() (e Event) `json:"-"` // Called on button1 release within the button, or key press.

	m        draw.Mouse
	face     *draw.Image
	faceSize image.Point
}

var _ UI = &RoundedButton{}

// NewRoundedButton returns a button of size whose face is a rounded rectangle of radius, filled and outlined with background.
func NewRoundedButton(text string, size image.Point, radius int, foreground, background gg.RGBA) *RoundedButton {
	return &RoundedButton{
		Text:       text,
		Size:       size,
		Foreground: foreground,
		Background: RoundedFill{Radius: radius, Color: background},
		Border:     RoundedBorder{Radius: radius, Color: background},
	}
}

func (ui *RoundedButton) insets() Space {
	if ui.Border == nil {
		return Space{}
	}
	return ui.Border.Insets()
}

// Content returns the area within r available for the label.
func (ui *RoundedButton) Content(r image.Rectangle) image.Rectangle {
	return ui.insets().Inset(r)
}

func (ui *RoundedButton) Layout(dui *DUI, self *Kid, sizeAvail image.Point, force bool) {
	dui.debugLayout("RoundedButton", self)
	self.R = rect(ui.Size)
}

// ensureFace returns the face image on the display, rendering and uploading it when the size changed.
func (ui *RoundedButton) ensureFace(dui *DUI) (*draw.Image, error) {
	if ui.face != nil && ui.faceSize == ui.Size {
		return ui.face, nil
	}
	if ui.face != nil {
		ui.face.Free()
		ui.face = nil
	}
	m, err := RenderFace(ui.Size, colorFromDraw(dui.BackgroundColor), ui.Background, ui.Border)
	if err != nil {
		return nil, err
	}
	face, err := LoadImage(dui.Display, m)
	if err != nil {
		return nil, err
	}
	ui.face = face
	ui.faceSize = ui.Size
	return face, nil
}

// drawFlat draws the face without anti-aliasing, directly with devdraw.
func (ui *RoundedButton) drawFlat(dui *DUI, img *draw.Image, r image.Rectangle) {
	fill, ok := ui.Background.(RoundedFill)
	if !ok {
		return
	}
	c, err := dui.Color(DrawColor(fill.Color))
	if err != nil {
		log.Printf("roundui: button %q: %s\n", ui.Text, err)
		return
	}
	fillRounded(img, r, fill.Radius, c)
	drawRoundedBorder(img, r, fill.Radius, c)
}

func (ui *RoundedButton) Draw(dui *DUI, self *Kid, img *draw.Image, orig image.Point, m draw.Mouse, force bool) {
	dui.debugDraw("RoundedButton", self)

	r := rect(ui.Size).Add(orig)
	face, err := ui.ensureFace(dui)
	if err != nil {
		log.Printf("roundui: button %q: %s, drawing flat\n", ui.Text, err)
		ui.drawFlat(dui, img, r)
	} else {
		img.Draw(r, face, nil, image.ZP)
	}

	text, err := dui.Color(DrawColor(ui.Foreground))
	if err != nil {
		log.Printf("roundui: button %q: %s\n", ui.Text, err)
		return
	}
	font := dui.Font(ui.Font)
	content := ui.Content(r)
	p := content.Min.Add(content.Size().Sub(font.StringSize(ui.Text)).Div(2))
	if m.In(rect(ui.Size)) && m.Buttons&Button1 == Button1 {
		p.Y++
	}
	img.String(p, text, image.ZP, font, ui.Text)
}

func (ui *RoundedButton) Mouse(dui *DUI, self *Kid, m draw.Mouse, origM draw.Mouse, orig image.Point) (r Result) {
	r.Hit = ui
	if ui.m.Buttons&Button1 != m.Buttons&Button1 {
		self.Draw = Dirty
	}
	if ui.m.Buttons&Button1 == Button1 && m.Buttons&Button1 == 0 && ui.Click != nil && m.Point.In(rect(ui.Size)) {
		e := ui.Click()
		propagateEvent(self, &r, e)
	}
	ui.m = m
	return
}

func (ui *RoundedButton) Key(dui *DUI, self *Kid, k rune, m draw.Mouse, orig image.Point) (r Result) {
	r.Hit = ui
	if k == ' ' || k == '\n' {
		r.Consumed = true
		if ui.Click != nil {
			e := ui.Click()
			propagateEvent(self, &r, e)
		}
	}
	return
}

func (ui *RoundedButton) Mark(self *Kid, o UI, forLayout bool) (marked bool) {
	return self.Mark(o, forLayout)
}

func (ui *RoundedButton) Print(self *Kid, indent int) {
	PrintUI("RoundedButton "+ui.Text, self, indent)
}
