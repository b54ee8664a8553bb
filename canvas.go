package main

import "errors"

// Color is the compositing mode applied when a pixel is set.
type Color int

const (
	ColorBlack   Color = iota // pixel off
	ColorWhite                // pixel on
	ColorInverse              // pixel toggled
)

// Canvas is a monochrome surface organised in 8 pixel tall pages, one bit
// per pixel. It owns two buffers: working receives all drawing, shadow
// mirrors whatever was last pushed to the device. Only the flush engine
// touches shadow.
type Canvas struct {
	width  int
	height int
	pages  int

	working []byte
	shadow  []byte

	color Color
}

func NewCanvas(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.New("canvas dimensions must be positive")
	}

	pages := (height + 7) / 8
	return &Canvas{
		width:   width,
		height:  height,
		pages:   pages,
		working: make([]byte, width*pages),
		shadow:  make([]byte, width*pages),
		color:   ColorWhite,
	}, nil
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }
func (c *Canvas) Pages() int  { return c.pages }

// SetColor sets the pen used by all subsequent pixel writes.
func (c *Canvas) SetColor(color Color) {
	c.color = color
}

func (c *Canvas) Color() Color {
	return c.color
}

// SetPixel applies the current pen at (x, y). Out of range coordinates are
// a no-op.
func (c *Canvas) SetPixel(x, y int) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}

	page := y / 8
	bit := byte(1 << (y % 8))
	idx := page*c.width + x

	switch c.color {
	case ColorWhite:
		c.working[idx] |= bit
	case ColorBlack:
		c.working[idx] &^= bit
	case ColorInverse:
		c.working[idx] ^= bit
	}
}

// Pixel reports whether the working buffer bit at (x, y) is set. Out of
// range coordinates read as unset.
func (c *Canvas) Pixel(x, y int) bool {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return false
	}

	return c.working[(y/8)*c.width+x]&(1<<(y%8)) != 0
}

// Clear zeroes the working buffer. The shadow buffer and the device are
// untouched until the next refresh.
func (c *Canvas) Clear() {
	for i := range c.working {
		c.working[i] = 0
	}
}

// Snapshot copies the working buffer.
func (c *Canvas) Snapshot() []byte {
	buf := make([]byte, len(c.working))
	copy(buf, c.working)
	return buf
}
