// Command myapp shows a window with four rounded buttons for text editing actions.
// The process exits when the window is closed.
package main

import (
	"log"

	"github.com/mjl-/roundui"
)

func check(err error, msg string) {
	if err != nil {
		log.Fatalf("%s: %s\n", msg, err)
	}
}

func main() {
	log.SetFlags(0)

	cfg := defaultWindow()
	check(cfg.Validate(), "layout")
	bg, err := roundui.ParseColor(cfg.Background)
	check(err, "background")

	dui, err := roundui.NewDUI(cfg.Title, &roundui.DUIOpts{
		Dimensions: cfg.Dimensions(),
		Background: roundui.DrawColor(bg),
	})
	check(err, "new dui")

	place, err := buildUI(dui, cfg)
	check(err, "build ui")
	dui.Top.UI = place
	dui.Render()

	run(dui)
}

// run handles inputs until the window is closed, which closes dui.Error.
func run(dui *roundui.DUI) {
	for {
		select {
		case e := <-dui.Inputs:
			dui.Input(e)

		case warn, ok := <-dui.Error:
			if !ok {
				// window was closed
				return
			}
			log.Printf("roundui: %s\n", warn)
		}
	}
}
