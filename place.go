package roundui

import (
	"image"

	"9fans.net/go/draw"
)

// Place contains other UIs it can position absolutely, possibly overlapping.
// Kids are drawn in order, so later kids end up on top and receive mouse events first.
type Place struct {
	// Place is called during layout. It must lay out its kids, set their R,
	// and return the size it takes up.
	Place      func(sizeAvail image.Point) (sizeTaken image.Point) `json:"-"`
	Kids       []*Kid                                              // Kids to draw, set by the Place function.
	Background *draw.Image                                         `json:"-"` // For background color. Nil means the DUI background.

	kidsReversed []*Kid
	size         image.Point
}

var _ UI = &Place{}

func (ui *Place) ensure() {
	if len(ui.kidsReversed) == len(ui.Kids) {
		return
	}
	ui.kidsReversed = make([]*Kid, len(ui.Kids))
	for i, k := range ui.Kids {
		ui.kidsReversed[len(ui.Kids)-1-i] = k
	}
}

// Layout always places all kids when anything in the Place needs a layout: kids know their size, but not their position.
func (ui *Place) Layout(dui *DUI, self *Kid, sizeAvail image.Point, force bool) {
	dui.debugLayout("Place", self)
	ui.ensure()
	if !force && self.Layout == Clean {
		return
	}
	ui.size = ui.Place(sizeAvail)
	for _, k := range ui.Kids {
		k.Layout = Clean
		k.Draw = Dirty
	}
	self.R = rect(ui.size)
	self.Layout = Clean
	self.Draw = Dirty
}

func (ui *Place) Draw(dui *DUI, self *Kid, img *draw.Image, orig image.Point, m draw.Mouse, force bool) {
	kidsDraw(dui, self, ui.Kids, ui.size, ui.Background, img, orig, m, force)
}

func (ui *Place) Mouse(dui *DUI, self *Kid, m draw.Mouse, origM draw.Mouse, orig image.Point) (r Result) {
	ui.ensure()
	return kidsMouse(dui, self, ui.kidsReversed, m, origM, orig)
}

func (ui *Place) Key(dui *DUI, self *Kid, k rune, m draw.Mouse, orig image.Point) (r Result) {
	ui.ensure()
	return kidsKey(dui, self, ui, ui.kidsReversed, k, m, orig)
}

func (ui *Place) Mark(self *Kid, o UI, forLayout bool) (marked bool) {
	return kidsMark(self, ui.Kids, o, forLayout)
}

func (ui *Place) Print(self *Kid, indent int) {
	PrintUI("Place", self, indent)
	kidsPrint(ui.Kids, indent+1)
}
