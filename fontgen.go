package main

// Font asset construction. Glyphs are described as row patterns (one byte
// per row, highest used bit = leftmost pixel) and packed into the
// column-major asset layout the decoder reads.

// buildFont assembles a font asset covering count codes starting at
// firstChar. Codes missing from glyphs get an undefined jump table entry
// with the half-width fallback advance.
func buildFont(width, height, firstChar byte, count int, glyphs map[byte][]byte) []byte {
	bytesPerColumn := (int(height) + 7) / 8

	jump := make([]byte, 0, count*jumpEntrySize)
	var bitmaps []byte

	for i := 0; i < count; i++ {
		code := byte(int(firstChar) + i)
		rows, ok := glyphs[code]
		if !ok {
			jump = append(jump, undefinedOffsetMarker, undefinedOffsetMarker, 0, width/2)
			continue
		}

		columns := packColumns(rows, int(width), int(height), bytesPerColumn)
		offset := len(bitmaps)
		jump = append(jump, byte(offset>>8), byte(offset), byte(len(columns)), width)
		bitmaps = append(bitmaps, columns...)
	}

	asset := make([]byte, 0, fontHeaderSize+len(jump)+len(bitmaps))
	asset = append(asset, width, height, firstChar, byte(count))
	asset = append(asset, jump...)
	return append(asset, bitmaps...)
}

// packColumns converts row patterns to column-major bytes and trims
// trailing blank columns, the same per-glyph trimming the shipped font
// assets use. An all-blank glyph (space) packs to zero bytes.
func packColumns(rows []byte, width, height, bytesPerColumn int) []byte {
	out := make([]byte, width*bytesPerColumn)

	for col := 0; col < width; col++ {
		for row := 0; row < height && row < len(rows); row++ {
			if rows[row]&(1<<(width-1-col)) != 0 {
				out[col*bytesPerColumn+row/8] |= 1 << (row % 8)
			}
		}
	}

	columns := width
trim:
	for columns > 0 {
		for k := 0; k < bytesPerColumn; k++ {
			if out[(columns-1)*bytesPerColumn+k] != 0 {
				break trim
			}
		}
		columns--
	}

	return out[:columns*bytesPerColumn]
}

// scaleFont2x produces a new asset with every glyph doubled in both
// directions, advances included.
func scaleFont2x(src []byte) []byte {
	f := NewFont(src)
	info := f.Info()

	srcBPC := f.bytesPerColumn()
	dstWidth := info.Width * 2
	dstHeight := info.Height * 2
	dstBPC := (dstHeight + 7) / 8

	jump := make([]byte, 0, info.CharCount*jumpEntrySize)
	var bitmaps []byte

	for i := 0; i < info.CharCount; i++ {
		ci := f.CharInfo(byte(info.FirstChar + i))
		if !ci.IsDefined {
			jump = append(jump, undefinedOffsetMarker, undefinedOffsetMarker, 0, byte(ci.Advance*2))
			continue
		}

		columns := 0
		if srcBPC > 0 {
			columns = ci.Bytes / srcBPC
		}

		scaled := make([]byte, columns*2*dstBPC)
		for j := 0; j < columns; j++ {
			for row := 0; row < info.Height; row++ {
				if f.at(ci.BitmapOffset+j*srcBPC+row/8)&(1<<(row%8)) == 0 {
					continue
				}

				for dr := row * 2; dr <= row*2+1; dr++ {
					for dc := j * 2; dc <= j*2+1; dc++ {
						scaled[dc*dstBPC+dr/8] |= 1 << (dr % 8)
					}
				}
			}
		}

		offset := len(bitmaps)
		jump = append(jump, byte(offset>>8), byte(offset), byte(len(scaled)), byte(ci.Advance*2))
		bitmaps = append(bitmaps, scaled...)
	}

	asset := make([]byte, 0, fontHeaderSize+len(jump)+len(bitmaps))
	asset = append(asset, byte(dstWidth), byte(dstHeight), byte(info.FirstChar), byte(info.CharCount))
	asset = append(asset, jump...)
	return append(asset, bitmaps...)
}
