package main

import (
	"bytes"
	"fmt"
)

// Transport writes command and data bytes to a physical panel. Both calls
// are synchronous; a failed write must leave the canvas untouched.
type Transport interface {
	SendCommand(cmd byte) error
	SendData(data []byte) error
}

// Display binds a canvas to a panel profile and its transport, and owns the
// dirty-page synchronisation between the two.
type Display struct {
	*Canvas

	profile   Profile
	transport Transport
}

func NewDisplay(profile Profile, transport Transport) (*Display, error) {
	canvas, err := NewCanvas(profile.Width, profile.Height)
	if err != nil {
		return nil, fmt.Errorf("display %s: %w", profile.Name, err)
	}

	return &Display{
		Canvas:    canvas,
		profile:   profile,
		transport: transport,
	}, nil
}

func (d *Display) Profile() Profile {
	return d.profile
}

// Init pushes the controller init sequence, forces the panel to a known
// blank state and shows the welcome frame until the first real redraw.
func (d *Display) Init() error {
	for _, cmd := range d.profile.InitSequence {
		if err := d.transport.SendCommand(cmd); err != nil {
			metricTransportErrors.Inc()
			return fmt.Errorf("init sequence: %w", err)
		}
	}

	if err := d.ClearAndSync(); err != nil {
		return err
	}

	d.drawWelcome()
	return d.Refresh()
}

// drawWelcome frames the panel and centers the logo.
func (d *Display) drawWelcome() {
	d.SetColor(ColorWhite)
	d.DrawRect(0, 0, d.width, d.height)
	d.DrawBitmap((d.width-logoWidth)/2, (d.height-logoHeight)/2,
		logoWidth, logoHeight, logoBitmap)
}

// flushPage transmits one page of the working buffer: page select, column
// reset pair, then the page's row of bytes.
func (d *Display) flushPage(page int) error {
	if err := d.transport.SendCommand(d.profile.PageSelectBase | byte(page)); err != nil {
		return err
	}
	if err := d.transport.SendCommand(d.profile.ColumnLow); err != nil {
		return err
	}
	if err := d.transport.SendCommand(d.profile.ColumnHigh); err != nil {
		return err
	}

	return d.transport.SendData(d.working[page*d.width : (page+1)*d.width])
}

// Refresh transmits the pages whose working content differs from the shadow
// buffer. With no differences it returns immediately without touching the
// bus. The shadow only advances after a fully clean pass, so pages that
// failed mid-flight stay dirty and are retried on the next refresh.
func (d *Display) Refresh() error {
	dirty := make([]bool, d.pages)
	anyChange := false

	for page := 0; page < d.pages; page++ {
		if !bytes.Equal(d.working[page*d.width:(page+1)*d.width],
			d.shadow[page*d.width:(page+1)*d.width]) {
			dirty[page] = true
			anyChange = true
		}
	}

	if !anyChange {
		metricCleanRefreshes.Inc()
		return nil
	}

	metricRefreshes.Inc()

	var firstErr error
	for page := 0; page < d.pages; page++ {
		if !dirty[page] {
			continue
		}

		if err := d.flushPage(page); err != nil {
			metricTransportErrors.Inc()
			if firstErr == nil {
				firstErr = fmt.Errorf("page %d: %w", page, err)
			}
			continue
		}

		metricPagesTx.Inc()
	}

	if firstErr != nil {
		logger.Errorw("display refresh incomplete",
			"device", d.profile.Name,
			"err", firstErr)
		return firstErr
	}

	copy(d.shadow, d.working)
	return nil
}

// ClearAndSync zeroes the working buffer and transmits every page
// unconditionally, bypassing the diff. Used at startup and for recovery.
func (d *Display) ClearAndSync() error {
	d.Clear()

	var firstErr error
	for page := 0; page < d.pages; page++ {
		if err := d.flushPage(page); err != nil {
			metricTransportErrors.Inc()
			if firstErr == nil {
				firstErr = fmt.Errorf("page %d: %w", page, err)
			}
			continue
		}

		metricPagesTx.Inc()
	}

	if firstErr != nil {
		return firstErr
	}

	for i := range d.shadow {
		d.shadow[i] = 0
	}

	return nil
}
