package main

import "testing"

func testScreen(t *testing.T) (*screen, *simTransport) {
	t.Helper()

	sim := newSimTransport(ssd1306)
	d, err := NewDisplay(ssd1306, sim)
	if err != nil {
		t.Fatal(err)
	}
	return newScreen(d), sim
}

func TestScreenRedraw(t *testing.T) {
	s, _ := testScreen(t)

	if err := s.Redraw(); err != nil {
		t.Fatal(err)
	}

	frame := s.Frame()
	if frame.Width != 128 || frame.Height != 64 || frame.Pages != 8 {
		t.Fatalf("unexpected frame geometry: %+v", frame)
	}

	nonzero := false
	for _, b := range frame.Data {
		if b != 0 {
			nonzero = true
			break
		}
	}
	if !nonzero {
		t.Error("status screen rendered nothing")
	}
}

func TestScreenEndstopIndicators(t *testing.T) {
	s, _ := testScreen(t)

	s.SetStatus(machineStatus{
		Axes: []axisStatus{
			{Label: "X:", Position: "12.345", Endstop: 1},
			{Label: "Y:", Position: "0.000", Endstop: 0},
			{Label: "Z:", Position: "0.000", Endstop: -1},
		},
	})
	if err := s.Redraw(); err != nil {
		t.Fatal(err)
	}

	c := s.display.Canvas
	fontHeight := smallFont.Height()
	rowY := func(i int) int { return 14 + i*fontHeight + (i+1)*6 }

	// Triggered endstop: filled box, interior set
	if !c.Pixel(112, rowY(0)+2) {
		t.Error("triggered endstop box not filled")
	}

	// Open endstop: outline only
	if !c.Pixel(110, rowY(1)) {
		t.Error("open endstop outline missing")
	}
	if c.Pixel(112, rowY(1)+2) {
		t.Error("open endstop box should be hollow")
	}

	// Not reported: no box at all
	for dy := 0; dy < fontHeight-1; dy++ {
		for dx := 0; dx < 5; dx++ {
			if c.Pixel(110+dx, rowY(2)+dy) {
				t.Fatal("unreported endstop drew an indicator")
			}
		}
	}
}

func TestScreenStateUpdates(t *testing.T) {
	s, _ := testScreen(t)

	if err := s.Redraw(); err != nil {
		t.Fatal(err)
	}
	idle := s.Frame()

	s.SetStatus(machineStatus{State: "ALARM"})
	if err := s.Redraw(); err != nil {
		t.Fatal(err)
	}
	alarm := s.Frame()

	same := true
	for i := range idle.Data {
		if idle.Data[i] != alarm.Data[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("state change did not alter the rendered screen")
	}
}

func TestScreenPartialStatusKeepsRest(t *testing.T) {
	s, _ := testScreen(t)

	s.SetStatus(machineStatus{State: "RUN"})

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status.IP != "0.0.0.0" {
		t.Errorf("partial update clobbered the IP: %q", s.status.IP)
	}
	if len(s.status.Axes) != 3 {
		t.Errorf("partial update clobbered the axes: %d", len(s.status.Axes))
	}
}

func TestScreenDrawMessage(t *testing.T) {
	s, sim := testScreen(t)

	if err := s.DrawMessage(0, 0, "HELLO", false); err != nil {
		t.Fatal(err)
	}

	page := sim.PageSnapshot(0)
	nonzero := false
	for _, b := range page {
		if b != 0 {
			nonzero = true
			break
		}
	}
	if !nonzero {
		t.Error("message never reached the simulated panel")
	}
}

func TestScreenClearPanel(t *testing.T) {
	s, sim := testScreen(t)

	if err := s.Redraw(); err != nil {
		t.Fatal(err)
	}
	if err := s.ClearPanel(); err != nil {
		t.Fatal(err)
	}

	for page := 0; page < 8; page++ {
		for _, b := range sim.PageSnapshot(page) {
			if b != 0 {
				t.Fatal("panel not blank after clear")
			}
		}
	}
}
