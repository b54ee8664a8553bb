package main

// DrawChar rasterizes a single glyph with its top-left corner at (x, y) and
// returns the cursor advance (glyph advance plus spacing). Undefined glyphs
// and glyphs without bitmap data advance the cursor without drawing.
func (c *Canvas) DrawChar(x, y int, ch byte, f *Font) int {
	if f == nil || !f.valid() {
		return 0
	}

	info := f.Info()
	ci := f.CharInfo(ch)
	if !ci.IsDefined || ci.Bytes == 0 {
		return ci.Advance + charSpacing
	}

	bytesPerColumn := f.bytesPerColumn()
	if bytesPerColumn == 0 {
		return ci.Advance + charSpacing
	}
	columns := ci.Bytes / bytesPerColumn

	for j := 0; j < columns; j++ {
		for k := 0; k < bytesPerColumn; k++ {
			columnByte := f.at(ci.BitmapOffset + j*bytesPerColumn + k)
			if columnByte == 0 {
				continue
			}

			for bit := 0; bit < 8; bit++ {
				// Padding bits past the font height are not pixels
				if k*8+bit >= info.Height {
					continue
				}
				if columnByte&(1<<bit) != 0 {
					c.SetPixel(x+j, y+k*8+bit)
				}
			}
		}
	}

	return ci.Advance + charSpacing
}

// DrawString lays out text starting at (x, y), wrapping to the start column
// when a glyph would run past the right edge and stopping once the cursor
// leaves the bottom of the canvas. '\n' forces a line break. Returns the net
// horizontal distance travelled from x.
func (c *Canvas) DrawString(x, y int, text string, f *Font) int {
	if text == "" || f == nil || !f.valid() {
		return 0
	}

	info := f.Info()
	cursorX := x
	cursorY := y

	for i := 0; i < len(text); i++ {
		ch := text[i]

		if ch == '\n' {
			cursorX = x
			cursorY += info.Height + charSpacing
			continue
		}

		ci := f.CharInfo(ch)

		if cursorX+ci.Advance > c.width {
			cursorX = x
			cursorY += info.Height + charSpacing

			if cursorY > c.height-info.Height {
				break
			}
		}

		// Fully off-canvas glyphs still advance the cursor
		if cursorX+ci.Advance < 0 || cursorY+info.Height < 0 || cursorY >= c.height {
			cursorX += ci.Advance + charSpacing
			continue
		}

		cursorX += c.DrawChar(cursorX, cursorY, ch, f)
	}

	return cursorX - x
}

// StringWidth measures the first line of text: the sum of advances plus
// inter-character spacing, without a trailing spacing unit.
func (c *Canvas) StringWidth(text string, f *Font) int {
	if text == "" || f == nil || !f.valid() {
		return 0
	}

	width := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			break
		}
		width += f.CharInfo(text[i]).Advance + charSpacing
	}

	if width > 0 {
		width -= charSpacing
	}

	return width
}

// DrawText folds UTF-8 input to the font's code range, blanks the covered
// area, then draws with the current pen. This is the call the status screen
// uses, so stale glyphs underneath are always erased.
func (c *Canvas) DrawText(x, y int, text string, f *Font) int {
	if f == nil || !f.valid() {
		return 0
	}

	folded := foldToDisplay(text)

	original := c.color
	c.SetColor(ColorBlack)
	c.FillRect(x, y, c.StringWidth(folded, f), f.Height())
	c.SetColor(original)

	return c.DrawString(x, y, folded, f)
}
