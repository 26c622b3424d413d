package roundui

import (
	"image"

	"9fans.net/go/draw"
)

// State tracks whether a Kid needs a layout or draw.
type State byte

const (
	Dirty    = State(iota) // UI itself needs layout/draw;  kids will also get a layout/draw call, with force set.
	DirtyKid               // UI itself does not need layout/draw, but one of its children does, so pass the call on.
	Clean                  // UI does not need layout/draw.

	// order is important, Clean is highest and means least amount of work
)

// Kid holds a UI, its rectangle within its parent, and its layout/draw state.
type Kid struct {
	UI     UI              // UI this state is about.
	R      image.Rectangle // Location and size within this UI's parent.
	Draw   State           // Whether UI or its children need a draw.
	Layout State           // Whether UI or its children need a layout.
}

// Mark checks if o is its UI, and if so marks it as needing a layout or draw.
func (k *Kid) Mark(o UI, forLayout bool) (marked bool) {
	if o != k.UI {
		return false
	}
	if forLayout {
		k.Layout = Dirty
	}
	k.Draw = Dirty
	return true
}

// NewKids turns UIs into Kids containing those UIs.
func NewKids(uis ...UI) []*Kid {
	kids := make([]*Kid, len(uis))
	for i, ui := range uis {
		kids[i] = &Kid{UI: ui}
	}
	return kids
}

// propagateKid raises the state of self to DirtyKid for each state in which kid is not clean.
func propagateKid(self, kid *Kid) {
	if kid.Layout != Clean && self.Layout == Clean {
		self.Layout = DirtyKid
	}
	if kid.Draw != Clean && self.Draw == Clean {
		self.Draw = DirtyKid
	}
}

func propagateEvent(self *Kid, r *Result, e Event) {
	if e.NeedLayout {
		self.Layout = Dirty
	}
	if e.NeedDraw {
		self.Draw = Dirty
	}
	r.Consumed = e.Consumed || r.Consumed
}

// kidsDraw draws kids that need it. With force, or self being Dirty, the area of the UI is cleared with bg first and all kids are drawn.
func kidsDraw(dui *DUI, self *Kid, kids []*Kid, uiSize image.Point, bg, img *draw.Image, orig image.Point, m draw.Mouse, force bool) {
	dui.debugDraw("kids", self)
	if !force && self.Draw == Clean {
		return
	}
	force = force || self.Draw == Dirty
	if force {
		if bg == nil {
			bg = dui.Background
		}
		img.Draw(rect(uiSize).Add(orig), bg, nil, image.ZP)
	}
	for _, k := range kids {
		if !force && k.Draw == Clean {
			continue
		}
		mm := m
		mm.Point = mm.Point.Sub(k.R.Min)
		k.UI.Draw(dui, k, img, orig.Add(k.R.Min), mm, force)
		k.Draw = Clean
	}
	self.Draw = Clean
}

// kidsMouse passes the mouse event to the first kid under the mouse. Pass kids in reverse draw order, so the kid drawn on top gets it.
func kidsMouse(dui *DUI, self *Kid, kids []*Kid, m, origM draw.Mouse, orig image.Point) Result {
	for _, k := range kids {
		if !origM.Point.In(k.R) {
			continue
		}
		origM.Point = origM.Point.Sub(k.R.Min)
		m.Point = m.Point.Sub(k.R.Min)
		r := k.UI.Mouse(dui, k, m, origM, orig.Add(k.R.Min))
		propagateKid(self, k)
		return r
	}
	return Result{}
}

func kidsKey(dui *DUI, self *Kid, ui UI, kids []*Kid, key rune, m draw.Mouse, orig image.Point) Result {
	for _, k := range kids {
		if !m.Point.In(k.R) {
			continue
		}
		m.Point = m.Point.Sub(k.R.Min)
		r := k.UI.Key(dui, k, key, m, orig.Add(k.R.Min))
		propagateKid(self, k)
		return r
	}
	return Result{Hit: ui}
}

func kidsMark(self *Kid, kids []*Kid, o UI, forLayout bool) (marked bool) {
	if self.Mark(o, forLayout) {
		return true
	}
	for _, k := range kids {
		if !k.UI.Mark(k, o, forLayout) {
			continue
		}
		propagateKid(self, k)
		return true
	}
	return false
}

func kidsPrint(kids []*Kid, indent int) {
	for _, k := range kids {
		k.UI.Print(k, indent)
	}
}
