package main

import (
	"sync"
	"time"
)

// axisStatus is one row of the status screen. Endstop is tri-state:
// -1 not reported, 0 open, 1 triggered.
type axisStatus struct {
	Label    string
	Position string
	Endstop  int
}

type machineStatus struct {
	State string
	IP    string
	Axes  []axisStatus
}

// screen owns the status layout and the polling loop that keeps the panel
// current. All rendering and flushing happens under its mutex, so the
// canvas stays single-owner.
type screen struct {
	mu      sync.Mutex
	display *Display
	status  machineStatus
}

func newScreen(display *Display) *screen {
	s := &screen{
		display: display,
		status: machineStatus{
			State: "IDLE",
			IP:    "0.0.0.0",
		},
	}

	for _, label := range []string{"X:", "Y:", "Z:"} {
		s.status.Axes = append(s.status.Axes, axisStatus{
			Label:    label,
			Position: "0.000",
			Endstop:  -1,
		})
	}

	return s
}

func (s *screen) SetStatus(status machineStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if status.State != "" {
		s.status.State = status.State
	}
	if status.IP != "" {
		s.status.IP = status.IP
	}
	if len(status.Axes) > 0 {
		s.status.Axes = status.Axes
	}
}

// redraw composes the whole status screen into the working buffer. Callers
// hold mu.
func (s *screen) redraw() {
	c := s.display.Canvas
	c.Clear()
	c.SetColor(ColorWhite)

	// Machine state, top left
	c.DrawText(1, 1, s.status.State, bigFont)

	// IP address, top right
	ip := foldToDisplay(s.status.IP)
	c.DrawString(c.Width()-c.StringWidth(ip, smallFont)-1, 2, ip, smallFont)

	// One row per axis: label, right-aligned coordinate, endstop box
	const (
		rowStart       = 15
		endstopColumn  = 110
		rowSpacing     = 6
		endstopBoxW    = 5
		positionMargin = 5
	)
	fontHeight := smallFont.Height()

	for i, axis := range s.status.Axes {
		y := 14 + i*fontHeight + (i+1)*rowSpacing

		c.DrawText(rowStart, y, axis.Label, smallFont)

		pos := foldToDisplay(axis.Position)
		c.DrawString(endstopColumn-positionMargin-c.StringWidth(pos, smallFont), y, pos, smallFont)

		switch axis.Endstop {
		case 1:
			c.FillRect(endstopColumn, y, endstopBoxW, fontHeight-1)
		case 0:
			c.DrawRect(endstopColumn, y, endstopBoxW, fontHeight-1)
		}
	}
}

// Redraw repaints and pushes the dirty pages out.
func (s *screen) Redraw() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	s.redraw()
	err := s.display.Refresh()
	metricRenderSeconds.Observe(time.Since(start).Seconds())

	return err
}

// poll redraws on a fixed cadence. Transport failures are logged by the
// flush engine and retried naturally on the next tick, since the shadow
// buffer never advanced.
func (s *screen) poll(interval time.Duration) {
	for range time.Tick(interval) {
		s.Redraw()
	}
}

// DrawMessage paints ad-hoc text over the current screen and flushes. The
// next poll tick repaints the status layout over it.
func (s *screen) DrawMessage(x, y int, text string, big bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	font := smallFont
	if big {
		font = bigFont
	}

	s.display.SetColor(ColorWhite)
	s.display.DrawText(x, y, text, font)
	return s.display.Refresh()
}

// ClearPanel blanks both buffers and the hardware, bypassing the diff.
func (s *screen) ClearPanel() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.display.ClearAndSync()
}

type frameSnapshot struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Pages  int    `json:"pages"`
	Data   []byte `json:"data"`
}

func (s *screen) Frame() frameSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return frameSnapshot{
		Width:  s.display.Width(),
		Height: s.display.Height(),
		Pages:  s.display.Pages(),
		Data:   s.display.Snapshot(),
	}
}
