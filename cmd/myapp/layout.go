package main

import (
	"fmt"
	"image"

	"github.com/mjl-/roundui"
)

// lightGray is the window background.
const lightGray = "#C0C0C0"

type buttonConfig struct {
	Text            string
	FontColor       string
	BackgroundColor string
	Width, Height   int
	CornerRadius    int
	X, Y            int
}

// Bounds is the rectangle of the button within the window.
func (c buttonConfig) Bounds() image.Rectangle {
	return image.Rect(c.X, c.Y, c.X+c.Width, c.Y+c.Height)
}

// Button returns a rounded button for c. The border has the background color too.
func (c buttonConfig) Button() (*roundui.RoundedButton, error) {
	fg, err := roundui.ParseColor(c.FontColor)
	if err != nil {
		return nil, fmt.Errorf("button %q: font color: %w", c.Text, err)
	}
	bg, err := roundui.ParseColor(c.BackgroundColor)
	if err != nil {
		return nil, fmt.Errorf("button %q: background color: %w", c.Text, err)
	}
	return roundui.NewRoundedButton(c.Text, image.Pt(c.Width, c.Height), c.CornerRadius, fg, bg), nil
}

type windowConfig struct {
	Title         string
	Width, Height int
	Background    string
	Buttons       []buttonConfig
}

// Dimensions returns the window size as devdraw wants it.
func (c windowConfig) Dimensions() string {
	return fmt.Sprintf("%dx%d", c.Width, c.Height)
}

// Validate returns the first problem with c. Geometry of buttons is taken as given.
func (c windowConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size %dx%d: must be positive", c.Width, c.Height)
	}
	if _, err := roundui.ParseColor(c.Background); err != nil {
		return fmt.Errorf("window background: %w", err)
	}
	for _, b := range c.Buttons {
		if _, err := b.Button(); err != nil {
			return err
		}
	}
	return nil
}

func defaultWindow() windowConfig {
	return windowConfig{
		Title:      "My App",
		Width:      560,
		Height:     315,
		Background: lightGray,
		Buttons: []buttonConfig{
			{"Fix mistakes", "#2C2C2C", "#F5F5F5", 110, 32, 8, 20, 226},
			{"Improve readability", "#2C2C2C", "#F5F5F5", 161, 32, 8, 149, 226},
			{"Write this better", "#2C2C2C", "#F5F5F5", 139, 32, 8, 329, 226},
			{"Save", "#14AE5C", "#F5F5F5", 53, 32, 8, 487, 226},
		},
	}
}

// buildUI returns a Place with a button for each configured button, at its configured bounds.
func buildUI(dui *roundui.DUI, cfg windowConfig) (*roundui.Place, error) {
	kids := make([]*roundui.Kid, len(cfg.Buttons))
	for i, bc := range cfg.Buttons {
		b, err := bc.Button()
		if err != nil {
			return nil, err
		}
		kids[i] = &roundui.Kid{UI: b}
	}

	var place *roundui.Place
	place = &roundui.Place{
		Place: func(sizeAvail image.Point) image.Point {
			for i, k := range place.Kids {
				k.UI.Layout(dui, k, sizeAvail, true)
				k.R = cfg.Buttons[i].Bounds()
			}
			return sizeAvail
		},
		Kids: kids,
	}
	return place, nil
}
