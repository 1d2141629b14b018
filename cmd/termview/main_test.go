package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func TestPumpEventsLifecycle(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("simulation screen init failed: %v", err)
	}

	events := make(chan tcell.Event, 8)
	quit := make(chan struct{})
	done := make(chan struct{})
	go func() {
		pumpEvents(screen, events, quit)
		close(done)
	}()

	screen.InjectKey(tcell.KeyRune, 'm', tcell.ModNone)
	select {
	case <-events:
	case <-time.After(time.Second):
		t.Fatalf("injected key never forwarded")
	}

	//closing quit then finalizing the screen must end the goroutine, it
	//may be parked in either PollEvent or the channel send
	close(quit)
	screen.Fini()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("event pump never exited")
	}
}
