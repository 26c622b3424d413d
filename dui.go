package roundui

import (
	"fmt"
	"image"
	"io"
	"log"
	"log/slog"
	"time"

	"9fans.net/go/draw"
	"github.com/gogpu/gg"
)

const (
	Button1 = 1 << iota
	Button2
	Button3
	Button4
	Button5
)

// DefaultBackground is the window background when DUIOpts.Background is not set.
const DefaultBackground = draw.Color(0xfcfcfcff)

type InputType byte

const (
	InputMouse = InputType(iota)
	InputKey
	InputFunc
	InputResize
)

// Input is an event from devdraw or a function from DUI.Call, to be handled by DUI.Input.
type Input struct {
	Type  InputType
	Mouse draw.Mouse
	Key   rune
	Func  func()
}

// DUIOpts are options for creating a new DUI.
// Zero values result in sane defaults.
type DUIOpts struct {
	FontName   string     // Font for text, in plan9 font format. Empty means $font or the devdraw default.
	Dimensions string     // Initial window size, as "WxH", e.g. "560x315".
	Background draw.Color // Window background, as 0xRRGGBBAA. Zero means DefaultBackground.
}

// DUI is a window and all its UI state.
type DUI struct {
	Inputs  chan Input    // Mouse, keyboard, resize events and functions from Call. Pass them to Input from your main loop.
	Top     Kid           // Root of the UI tree.
	Call    chan func()   // Functions sent here will go through DUI.Inputs and run by DUI.Input() in the main event loop. For code that changes UI state.
	Error   chan error    // Receives errors from devdraw. Closed when the window is closed.
	Display *draw.Display // Devdraw display the window lives on.

	BackgroundColor draw.Color
	Background      *draw.Image

	DebugDraw   int // if 1, UIs print each draw they do, if 2, UIs print all calls to their Draw function. Cycle through 0-2 with F7
	DebugLayout int // if 1, UIs print each Layout they do, if 2, UIs print all calls to their Layout function. Cycle through 0-2 with F8

	colors      map[draw.Color]*draw.Image
	stop        chan struct{}
	mousectl    *draw.Mousectl
	keyctl      *draw.Keyboardctl
	mouse       draw.Mouse
	origMouse   draw.Mouse
	lastMouseUI UI
	logInputs   bool
	logTiming   bool
	logRender   bool
}

func check(err error, msg string) {
	if err != nil {
		log.Printf("roundui: %s: %s\n", msg, err)
		panic(err)
	}
}

// NewDUI opens a window titled name and returns its DUI.
// Events are delivered on Inputs once it returns; the caller runs the main loop.
func NewDUI(name string, opts *DUIOpts) (dui *DUI, rerr error) {
	if opts == nil {
		opts = &DUIOpts{}
	}

	errch := make(chan error, 1)
	display, err := draw.Init(errch, opts.FontName, name, opts.Dimensions)
	if err != nil {
		return nil, fmt.Errorf("init display: %w", err)
	}

	check, handle := errorHandler(func(err error) {
		display.Close()
		dui = nil
		rerr = err
	})
	defer handle()

	bgColor := opts.Background
	if bgColor == 0 {
		bgColor = DefaultBackground
	}

	dui = &DUI{
		mousectl: display.InitMouse(),
		keyctl:   display.InitKeyboard(),
		stop:     make(chan struct{}, 1),
		Inputs:   make(chan Input, 1),
		Call:     make(chan func(), 1),
		Error:    make(chan error, 1),
		Display:  display,
		colors:   map[draw.Color]*draw.Image{},

		BackgroundColor: bgColor,
	}
	dui.Background, err = dui.Color(bgColor)
	check(err, "background")

	go func() {
		defer close(dui.Error)
		for {
			select {
			case m := <-dui.mousectl.C:
				dui.Inputs <- Input{Type: InputMouse, Mouse: m}
			case k := <-dui.keyctl.C:
				dui.Inputs <- Input{Type: InputKey, Key: k}
			case <-dui.mousectl.Resize:
				dui.Inputs <- Input{Type: InputResize}
			case fn := <-dui.Call:
				dui.Inputs <- Input{Type: InputFunc, Func: fn}
			case <-dui.stop:
				return
			case e := <-errch:
				if e == io.EOF {
					// devdraw disappeared, typically because window was closed (either by user, or by us)
					return
				}
				dui.Error <- e
			}
		}
	}()

	return dui, nil
}

// Color returns a replicated 1x1 image of color c, for use as source when drawing.
// Images are cached per DUI.
func (d *DUI) Color(c draw.Color) (*draw.Image, error) {
	if img, ok := d.colors[c]; ok {
		return img, nil
	}
	img, err := d.Display.AllocImage(image.Rect(0, 0, 1, 1), draw.ARGB32, true, c)
	if err != nil {
		return nil, fmt.Errorf("allocimage for color %#08x: %w", uint32(c), err)
	}
	d.colors[c] = img
	return img, nil
}

// Render calls Layout followed by Draw.
func (d *DUI) Render() {
	d.Layout()
	d.Draw()
}

func (d *DUI) Layout() {
	if d.Top.Layout == Clean {
		return
	}
	var t0 time.Time
	if d.logTiming {
		t0 = time.Now()
	}
	d.Top.UI.Layout(d, &d.Top, d.Display.ScreenImage.R.Size(), d.Top.Layout == Dirty)
	d.Top.Layout = Clean
	if d.logTiming {
		log.Printf("roundui: time layout: %d µs\n", time.Since(t0)/time.Microsecond)
	}
}

func (d *DUI) Draw() {
	if d.Top.Draw == Clean {
		return
	}
	var t0, t1 time.Time
	if d.logTiming {
		t0 = time.Now()
	}
	if d.Top.Draw == Dirty {
		d.Display.ScreenImage.Draw(d.Display.ScreenImage.R, d.Background, nil, image.ZP)
	}
	d.Top.UI.Draw(d, &d.Top, d.Display.ScreenImage, image.ZP, d.mouse, d.Top.Draw == Dirty)
	d.Top.Draw = Clean
	if d.logTiming {
		t1 = time.Now()
	}
	err := d.Display.Flush()
	if err != nil {
		log.Printf("roundui: flush: %s\n", err)
	}
	if d.logTiming {
		t2 := time.Now()
		log.Printf("roundui: time draw: draw %d µs flush %d µs\n", t1.Sub(t0)/time.Microsecond, t2.Sub(t1)/time.Microsecond)
	}
}

func (d *DUI) apply(r Result) {
	if r.Hit != d.lastMouseUI && d.lastMouseUI != nil {
		d.MarkDraw(d.lastMouseUI)
	}
	d.lastMouseUI = r.Hit
	d.Render()
}

func (d *DUI) Mouse(m draw.Mouse) {
	if d.logInputs {
		log.Printf("roundui: mouse %v, %b\n", m, m.Buttons)
	}
	if m.Buttons == 0 || d.origMouse.Buttons == 0 {
		d.origMouse = m
	}
	d.mouse = m
	r := d.Top.UI.Mouse(d, &d.Top, m, d.origMouse, image.ZP)
	d.apply(r)
}

func (d *DUI) Resize() {
	if d.logInputs {
		log.Printf("roundui: resize")
	}
	check(d.Display.Attach(draw.Refmesg), "attach after resize")
	d.Top.Layout = Dirty
	d.Top.Draw = Dirty
	d.Render()
}

func (d *DUI) Key(k rune) {
	switch k {
	case draw.KeyFn + 1:
		d.logInputs = !d.logInputs
		log.Printf("roundui: logInputs now %v\n", d.logInputs)
		return
	case draw.KeyFn + 2:
		d.logTiming = !d.logTiming
		log.Printf("roundui: logTiming now %v\n", d.logTiming)
		return
	case draw.KeyFn + 3:
		d.Top.UI.Print(&d.Top, 0)
		return
	case draw.KeyFn + 4:
		d.Display.SetDebug(true)
		log.Println("roundui: drawdebug now on")
		return
	case draw.KeyFn + 6:
		log.Println("roundui: rendering entire ui")
		d.Top.Layout = Dirty
		d.Top.Draw = Dirty
		d.Render()
		return
	case draw.KeyFn + 7:
		d.DebugDraw = (d.DebugDraw + 1) % 3
		log.Printf("roundui: DebugDraw now %d", d.DebugDraw)
		return
	case draw.KeyFn + 8:
		d.DebugLayout = (d.DebugLayout + 1) % 3
		log.Printf("roundui: DebugLayout now %d", d.DebugLayout)
		return
	case draw.KeyFn + 9:
		d.logRender = !d.logRender
		if d.logRender {
			gg.SetLogger(slog.Default())
		} else {
			gg.SetLogger(nil)
		}
		log.Printf("roundui: logRender now %v\n", d.logRender)
		return
	}
	if d.logInputs {
		log.Printf("roundui: key %c, %x\n", k, k)
	}
	r := d.Top.UI.Key(d, &d.Top, k, d.mouse, image.ZP)
	if !r.Consumed && k == draw.KeyCmd+'w' {
		d.Close()
		return
	}
	d.apply(r)
}

func (d *DUI) debugLayout(what string, self *Kid) {
	if d.DebugLayout > 1 || d.DebugLayout > 0 && self.Layout != Clean {
		log.Printf("roundui: Layout %s %s layout=%d draw=%d\n", what, self.R, self.Layout, self.Draw)
	}
}

func (d *DUI) debugDraw(what string, self *Kid) {
	if d.DebugDraw > 1 || d.DebugDraw > 0 && self.Draw != Clean {
		log.Printf("roundui: Draw %s %s layout=%d draw=%d\n", what, self.R, self.Layout, self.Draw)
	}
}

// PrintUI is a helper function UIs can use to implement UI.Print. "s" is typically the UI type, possibly with additional properties.
func PrintUI(s string, self *Kid, indent int) {
	indentStr := ""
	if indent > 0 {
		indentStr = fmt.Sprintf("%*s", indent*2, " ")
	}
	log.Printf("roundui: %s%s r %v layout=%d draw=%d\n", indentStr, s, self.R, self.Layout, self.Draw)
}

// Input handles an input, forwarding it to the UI tree, and doing a layout or draw where needed.
func (d *DUI) Input(e Input) {
	switch e.Type {
	case InputMouse:
		d.Mouse(e.Mouse)
	case InputKey:
		d.Key(e.Key)
	case InputResize:
		d.Resize()
	case InputFunc:
		e.Func()
		d.Render()
	}
}

// MarkLayout marks ui as needing a layout. If ui is nil, the entire tree is laid out and drawn.
func (d *DUI) MarkLayout(ui UI) {
	d.mark(ui, true)
}

// MarkDraw marks ui as needing a draw. If ui is nil, the entire tree is drawn.
func (d *DUI) MarkDraw(ui UI) {
	d.mark(ui, false)
}

func (d *DUI) mark(ui UI, forLayout bool) {
	if ui == nil {
		if forLayout {
			d.Top.Layout = Dirty
		}
		d.Top.Draw = Dirty
		return
	}
	d.Top.UI.Mark(&d.Top, ui, forLayout)
}

// Close stops the input goroutine and closes the window. The Error channel is closed once the goroutine is gone.
func (d *DUI) Close() {
	d.stop <- struct{}{}
	d.Display.Close()
}

// Font returns font if not nil, and the display's default font otherwise.
func (d *DUI) Font(font *draw.Font) *draw.Font {
	if font != nil {
		return font
	}
	return d.Display.DefaultFont
}
