package main

// Integer-only rasterizers. Everything funnels through Canvas.SetPixel, so
// clipping is inherited from the pixel bounds check unless a routine can
// clip more cheaply up front.

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// DrawLine draws with Bresenham's algorithm. A degenerate line sets a
// single pixel.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := 1
	if x0 >= x1 {
		sx = -1
	}
	dy := -abs(y1 - y0)
	sy := 1
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy

	for {
		c.SetPixel(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			if x0 == x1 {
				break
			}
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			if y0 == y1 {
				break
			}
			err += dx
			y0 += sy
		}
	}
}

// DrawRect draws a rectangle outline.
func (c *Canvas) DrawRect(x, y, width, height int) {
	c.DrawLine(x, y, x+width-1, y)
	c.DrawLine(x+width-1, y, x+width-1, y+height-1)
	c.DrawLine(x+width-1, y+height-1, x, y+height-1)
	c.DrawLine(x, y+height-1, x, y)
}

// FillRect fills a rectangle, clipped to the canvas.
func (c *Canvas) FillRect(x, y, width, height int) {
	if x >= c.width || y >= c.height || width <= 0 || height <= 0 {
		return
	}

	if x < 0 {
		width += x
		x = 0
	}
	if y < 0 {
		height += y
		y = 0
	}
	if x+width > c.width {
		width = c.width - x
	}
	if y+height > c.height {
		height = c.height - y
	}

	for j := y; j < y+height; j++ {
		for i := x; i < x+width; i++ {
			c.SetPixel(i, j)
		}
	}
}

// DrawCircle draws a circle outline with the midpoint algorithm, one pixel
// per octant step.
func (c *Canvas) DrawCircle(x0, y0, radius int) {
	x := radius
	y := 0
	err := 0

	for x >= y {
		c.SetPixel(x0+x, y0+y)
		c.SetPixel(x0+y, y0+x)
		c.SetPixel(x0-y, y0+x)
		c.SetPixel(x0-x, y0+y)
		c.SetPixel(x0-x, y0-y)
		c.SetPixel(x0-y, y0-x)
		c.SetPixel(x0+y, y0-x)
		c.SetPixel(x0+x, y0-y)

		y++
		if err <= 0 {
			err += 2*y + 1
		}
		if err > 0 {
			x--
			err -= 2*x + 1
		}
	}
}

// FillCircle fills a circle by drawing a horizontal chord per octant step,
// which leaves no gaps between scan lines.
func (c *Canvas) FillCircle(x0, y0, radius int) {
	x := radius
	y := 0
	err := 0

	for x >= y {
		c.DrawLine(x0-x, y0+y, x0+x, y0+y)
		c.DrawLine(x0-y, y0+x, x0+y, y0+x)
		c.DrawLine(x0-x, y0-y, x0+x, y0-y)
		c.DrawLine(x0-y, y0-x, x0+y, y0-x)

		y++
		if err <= 0 {
			err += 2*y + 1
		}
		if err > 0 {
			x--
			err -= 2*x + 1
		}
	}
}

// DrawBitmap blits a row-major bitmap packed MSB first, ceil(width/8)
// bytes per row. Zero bits are transparent.
func (c *Canvas) DrawBitmap(x, y, width, height int, data []byte) {
	byteWidth := (width + 7) / 8

	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			idx := j*byteWidth + i/8
			if idx >= len(data) {
				return
			}
			if data[idx]&(0x80>>(i%8)) != 0 {
				c.SetPixel(x+i, y+j)
			}
		}
	}
}
