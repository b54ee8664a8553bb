package main

import "fmt"

// Profile is the immutable description of a panel controller: geometry,
// I2C framing bytes and the init sequence. The flush engine never hard
// codes a controller beyond page-indexed column-addressed writes.
type Profile struct {
	Name   string
	Addr   uint16
	Width  int
	Height int

	CommandByte byte
	DataByte    byte

	PageSelectBase byte
	ColumnLow      byte
	ColumnHigh     byte

	InitSequence []byte
}

// oledInitSequence is shared by the SSD1306 and SH1106: both are 128x64
// 1/64 duty controllers and take the same power-up programming.
var oledInitSequence = []byte{
	0xAE,       // display off
	0xD5, 0x80, // clock divide ratio / oscillator frequency
	0xA8, 0x3F, // multiplex ratio, 1/64 duty
	0xD3, 0x00, // display offset
	0x40,       // start line
	0x8D, 0x14, // charge pump on
	0x20, 0x00, // horizontal addressing mode
	0xA1,       // segment remap
	0xC8,       // com scan direction
	0xDA, 0x12, // com pins hardware configuration
	0x81, 0xCF, // contrast
	0xD9, 0xF1, // pre-charge period
	0xDB, 0x40, // vcomh deselect level
	0xA4, // resume from ram
	0xA6, // normal display
	0x2E, // deactivate scroll
	0xAF, // display on
}

// sh1106ColumnShift skips the 2 unused ram columns on each side of the
// SH1106's 132 column frame.
const sh1106ColumnShift = 2

var ssd1306 = Profile{
	Name:           "ssd1306",
	Addr:           0x3C,
	Width:          128,
	Height:         64,
	CommandByte:    0x80,
	DataByte:       0x40,
	PageSelectBase: 0xB0,
	ColumnLow:      0x00,
	ColumnHigh:     0x10,
	InitSequence:   oledInitSequence,
}

var sh1106 = Profile{
	Name:           "sh1106",
	Addr:           0x3C,
	Width:          128,
	Height:         64,
	CommandByte:    0x80,
	DataByte:       0x40,
	PageSelectBase: 0xB0,
	ColumnLow:      0x00 | (sh1106ColumnShift & 0x0F),
	ColumnHigh:     0x10 | ((sh1106ColumnShift >> 4) & 0x0F),
	InitSequence:   oledInitSequence,
}

func profileByName(name string) (Profile, error) {
	switch name {
	case "ssd1306":
		return ssd1306, nil
	case "sh1106":
		return sh1106, nil
	}

	return Profile{}, fmt.Errorf("unknown device %q", name)
}
