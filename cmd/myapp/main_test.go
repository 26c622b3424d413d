package main

import (
	"errors"
	"testing"
	"time"

	"github.com/mjl-/roundui"
)

func TestRun_WindowClosed(t *testing.T) {
	dui := &roundui.DUI{
		Inputs: make(chan roundui.Input),
		Error:  make(chan error, 1),
	}
	dui.Error <- errors.New("devdraw warning")
	close(dui.Error)

	done := make(chan struct{})
	go func() {
		run(dui)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("run did not return after window was closed")
	}
}
