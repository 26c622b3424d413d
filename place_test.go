package roundui

import (
	"image"
	"testing"

	"9fans.net/go/draw"
	"github.com/gogpu/gg"
)

// newTestPlace returns a Place holding buttons, each placed at the matching rectangle of bounds.
func newTestPlace(dui *DUI, bounds []image.Rectangle) (*Place, []*RoundedButton) {
	buttons := make([]*RoundedButton, len(bounds))
	uis := make([]UI, len(bounds))
	for i, r := range bounds {
		buttons[i] = NewRoundedButton("b", r.Size(), 8, gg.Black, gg.White)
		uis[i] = buttons[i]
	}
	var place *Place
	place = &Place{
		Place: func(sizeAvail image.Point) image.Point {
			for i, k := range place.Kids {
				k.UI.Layout(dui, k, sizeAvail, true)
				k.R = bounds[i]
			}
			return sizeAvail
		},
		Kids: NewKids(uis...),
	}
	return place, buttons
}

func TestPlace_Layout(t *testing.T) {
	dui := &DUI{}
	bounds := []image.Rectangle{
		image.Rect(20, 226, 130, 258),
		image.Rect(149, 226, 310, 258),
		image.Rect(500, 300, 600, 400), // beyond the window, taken as given
	}
	place, _ := newTestPlace(dui, bounds)
	self := &Kid{UI: place}

	place.Layout(dui, self, image.Pt(560, 315), true)

	if self.R != image.Rect(0, 0, 560, 315) {
		t.Errorf("place R = %v, want full size", self.R)
	}
	if self.Layout != Clean || self.Draw != Dirty {
		t.Errorf("place state layout=%d draw=%d, want Clean and Dirty", self.Layout, self.Draw)
	}
	for i, k := range place.Kids {
		if k.R != bounds[i] {
			t.Errorf("kid %d R = %v, want %v", i, k.R, bounds[i])
		}
		if k.Layout != Clean {
			t.Errorf("kid %d layout = %d, want Clean", i, k.Layout)
		}
	}
}

func TestPlace_LayoutClean(t *testing.T) {
	dui := &DUI{}
	calls := 0
	place := &Place{
		Place: func(sizeAvail image.Point) image.Point {
			calls++
			return sizeAvail
		},
	}
	self := &Kid{UI: place, Layout: Clean, Draw: Clean}
	place.Layout(dui, self, image.Pt(10, 10), false)
	if calls != 0 {
		t.Errorf("clean place was laid out %d times", calls)
	}
	self.Layout = DirtyKid
	place.Layout(dui, self, image.Pt(10, 10), false)
	if calls != 1 {
		t.Errorf("place with dirty kid laid out %d times, want 1", calls)
	}
}

func TestPlace_Mouse(t *testing.T) {
	dui := &DUI{}
	bounds := []image.Rectangle{
		image.Rect(20, 226, 130, 258),
		image.Rect(149, 226, 310, 258),
	}
	place, buttons := newTestPlace(dui, bounds)
	self := &Kid{UI: place}
	place.Layout(dui, self, image.Pt(560, 315), true)
	self.Draw = Clean
	for _, k := range place.Kids {
		k.Draw = Clean
	}

	clicks := 0
	buttons[1].Click = func() (e Event) {
		clicks++
		return
	}

	down := draw.Mouse{Point: image.Pt(150, 230), Buttons: Button1}
	r := place.Mouse(dui, self, down, down, image.ZP)
	if r.Hit != buttons[1] {
		t.Fatalf("hit %v, want second button", r.Hit)
	}
	if place.Kids[1].Draw != Dirty || self.Draw != DirtyKid {
		t.Errorf("after press, kid draw=%d place draw=%d, want Dirty and DirtyKid", place.Kids[1].Draw, self.Draw)
	}
	up := draw.Mouse{Point: image.Pt(151, 231)}
	place.Mouse(dui, self, up, down, image.ZP)
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}

	miss := draw.Mouse{Point: image.Pt(140, 230)}
	if r := place.Mouse(dui, self, miss, miss, image.ZP); r.Hit != nil {
		t.Errorf("mouse between buttons hit %v", r.Hit)
	}
}

func TestPlace_Mark(t *testing.T) {
	dui := &DUI{}
	place, buttons := newTestPlace(dui, []image.Rectangle{image.Rect(0, 0, 10, 10), image.Rect(20, 0, 30, 10)})
	self := &Kid{UI: place}
	place.Layout(dui, self, image.Pt(40, 10), true)
	self.Layout, self.Draw = Clean, Clean
	for _, k := range place.Kids {
		k.Layout, k.Draw = Clean, Clean
	}

	if !place.Mark(self, buttons[1], false) {
		t.Fatalf("Mark did not find button")
	}
	if place.Kids[0].Draw != Clean || place.Kids[1].Draw != Dirty {
		t.Errorf("kid draw states %d %d, want Clean Dirty", place.Kids[0].Draw, place.Kids[1].Draw)
	}
	if self.Draw != DirtyKid || self.Layout != Clean {
		t.Errorf("place state layout=%d draw=%d, want Clean DirtyKid", self.Layout, self.Draw)
	}

	if place.Mark(self, &RoundedButton{}, true) {
		t.Errorf("Mark found unknown UI")
	}
	if !place.Mark(self, place, true) || self.Layout != Dirty {
		t.Errorf("Mark of place itself did not mark it for layout")
	}
}
