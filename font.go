package main

// Packed font asset layout:
//   [max_width][height][first_char][char_count]
//   char_count jump table entries of [offset_msb, offset_lsb, byte_count, advance]
//   column-major glyph bitmaps, ceil(height/8) bytes per column
//
// An offset of 0xFFFF marks a character that is inside the font range but
// has no glyph.

const (
	charSpacing    = 1
	fontHeaderSize = 4
	jumpEntrySize  = 4

	undefinedOffsetMarker = 0xFF
)

type Font struct {
	data []byte
}

type FontInfo struct {
	Width     int
	Height    int
	FirstChar int
	CharCount int
}

type CharInfo struct {
	Advance      int
	Bytes        int
	BitmapOffset int
	IsDefined    bool
}

func NewFont(data []byte) *Font {
	return &Font{data: data}
}

// at reads a single byte of the asset, returning 0 for any offset outside
// the blob. Malformed fonts render garbage instead of crashing.
func (f *Font) at(i int) byte {
	if f == nil || i < 0 || i >= len(f.data) {
		return 0
	}
	return f.data[i]
}

func (f *Font) valid() bool {
	return f != nil && len(f.data) >= fontHeaderSize
}

func (f *Font) Info() FontInfo {
	if !f.valid() {
		return FontInfo{}
	}

	return FontInfo{
		Width:     int(f.data[0]),
		Height:    int(f.data[1]),
		FirstChar: int(f.data[2]),
		CharCount: int(f.data[3]),
	}
}

func (f *Font) Height() int {
	return f.Info().Height
}

// bytesPerColumn is the storage size of one glyph column.
func (f *Font) bytesPerColumn() int {
	return (f.Info().Height + 7) / 8
}

// CharInfo looks up the jump table entry for c. Characters outside the font
// range are undefined and get an advance of half the font width, so text
// layout keeps moving over them.
func (f *Font) CharInfo(c byte) CharInfo {
	if !f.valid() {
		return CharInfo{}
	}

	info := f.Info()
	code := int(c)
	if code < info.FirstChar || code >= info.FirstChar+info.CharCount {
		return CharInfo{Advance: info.Width / 2}
	}

	entry := fontHeaderSize + (code-info.FirstChar)*jumpEntrySize
	offsetMSB := f.at(entry)
	offsetLSB := f.at(entry + 1)
	ci := CharInfo{
		Bytes:   int(f.at(entry + 2)),
		Advance: int(f.at(entry + 3)),
	}

	if offsetMSB == undefinedOffsetMarker && offsetLSB == undefinedOffsetMarker {
		return ci
	}

	offset := int(offsetMSB)<<8 | int(offsetLSB)
	ci.BitmapOffset = fontHeaderSize + info.CharCount*jumpEntrySize + offset
	ci.IsDefined = true

	return ci
}
