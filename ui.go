package roundui

import (
	"image"

	"9fans.net/go/draw"
)

// Event is returned by handlers, such as click handlers, to tell the UI tree what changed.
type Event struct {
	Consumed   bool // whether event was consumed, and should not be further handled by upper UI's
	NeedLayout bool // whether UI now needs a layout
	NeedDraw   bool // whether UI now needs a draw
}

// Result holds the effects of a mouse or key event on a UI.
type Result struct {
	Hit      UI   // the UI where the event ended up
	Consumed bool // whether event was consumed, and should not be further handled by upper UI's
}

// UI is implemented by all widgets and containers.
// All calls happen on the goroutine running DUI.Input.
type UI interface {
	// Layout sets self.R to the size the UI needs, relative to its own origin.
	// Containers also set the R of their kids. If force is set, the UI must lay out
	// even when self.Layout is Clean.
	Layout(dui *DUI, self *Kid, sizeAvail image.Point, force bool)

	// Draw paints the UI on img, with orig as its top-left corner.
	// m is the current mouse state, relative to the UI.
	Draw(dui *DUI, self *Kid, img *draw.Image, orig image.Point, m draw.Mouse, force bool)

	// Mouse handles a mouse event. origM is the mouse state when the first button went down.
	Mouse(dui *DUI, self *Kid, m draw.Mouse, origM draw.Mouse, orig image.Point) (r Result)

	// Key handles a key press while the mouse is over the UI.
	Key(dui *DUI, self *Kid, k rune, m draw.Mouse, orig image.Point) (r Result)

	// Mark looks for o in this UI and its kids, and marks it as needing a layout or draw.
	// Ancestors of o are marked DirtyKid.
	Mark(self *Kid, o UI, forLayout bool) (marked bool)

	// Print logs a line about the UI, prefixed with indent, followed by a Print on each kid.
	Print(self *Kid, indent int)
}
