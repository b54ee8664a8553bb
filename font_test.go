package main

import (
	"bytes"
	"testing"
)

// testFontAsset is a minimal font: 6 wide, 8 tall, one defined character
// (space, code 32) whose single bitmap byte fills the whole column.
func testFontAsset() []byte {
	return []byte{
		6, 8, 32, 1, // header
		0x00, 0x00, 0x01, 0x05, // jump table: offset 0, 1 byte, advance 5
		0xFF, // bitmap: column 0, all 8 rows set
	}
}

func TestFontInfo(t *testing.T) {
	f := NewFont(testFontAsset())
	info := f.Info()

	if info.Width != 6 || info.Height != 8 || info.FirstChar != 32 || info.CharCount != 1 {
		t.Fatalf("unexpected font info: %+v", info)
	}
}

func TestFontInfoDegenerate(t *testing.T) {
	var nilFont *Font
	if got := nilFont.Info(); got != (FontInfo{}) {
		t.Errorf("nil font info = %+v, want zero", got)
	}

	if got := NewFont([]byte{1, 2}).Info(); got != (FontInfo{}) {
		t.Errorf("short font info = %+v, want zero", got)
	}
}

func TestCharInfoDefined(t *testing.T) {
	f := NewFont(testFontAsset())
	ci := f.CharInfo(32)

	if !ci.IsDefined {
		t.Fatal("char 32 should be defined")
	}
	if ci.Advance != 5 {
		t.Errorf("advance = %d, want 5", ci.Advance)
	}
	if ci.Bytes != 1 {
		t.Errorf("bytes = %d, want 1", ci.Bytes)
	}
	// header + jump table + relative offset 0
	if ci.BitmapOffset != fontHeaderSize+jumpEntrySize {
		t.Errorf("bitmap offset = %d, want %d", ci.BitmapOffset, fontHeaderSize+jumpEntrySize)
	}
}

func TestCharInfoOutOfRange(t *testing.T) {
	f := NewFont(testFontAsset())

	for _, c := range []byte{0, 31, 33, 200} {
		ci := f.CharInfo(c)
		if ci.IsDefined {
			t.Errorf("char %d should be undefined", c)
		}
		if ci.Advance != 3 { // half the font width
			t.Errorf("char %d fallback advance = %d, want 3", c, ci.Advance)
		}
	}
}

func TestCharInfoUndefinedMarker(t *testing.T) {
	asset := []byte{
		6, 8, 32, 2,
		0x00, 0x00, 0x01, 0x05,
		0xFF, 0xFF, 0x00, 0x04, // in range but unmapped
		0xFF,
	}
	f := NewFont(asset)

	ci := f.CharInfo(33)
	if ci.IsDefined {
		t.Fatal("char with 0xFFFF offset marker should be undefined")
	}
	if ci.Advance != 4 {
		t.Errorf("advance = %d, want the jump table value 4", ci.Advance)
	}
}

func TestCharInfoBigEndianOffset(t *testing.T) {
	asset := []byte{
		6, 8, 32, 2,
		0x00, 0x00, 0x01, 0x05,
		0x01, 0x02, 0x01, 0x05, // offset 0x0102
		0xFF,
	}
	f := NewFont(asset)

	ci := f.CharInfo(33)
	want := fontHeaderSize + 2*jumpEntrySize + 0x0102
	if ci.BitmapOffset != want {
		t.Errorf("bitmap offset = %d, want %d", ci.BitmapOffset, want)
	}
}

func TestFontBoundsCheckedReads(t *testing.T) {
	// Jump table promises data far past the end of the blob
	asset := []byte{
		6, 8, 32, 1,
		0x7F, 0xFF, 0x40, 0x05,
	}
	f := NewFont(asset)

	c, err := NewCanvas(16, 16)
	if err != nil {
		t.Fatal(err)
	}

	// Must not panic; truncated data reads as zero
	c.DrawChar(0, 0, 32, f)
}

func TestBuildFontRoundTrip(t *testing.T) {
	f := smallFont
	info := f.Info()

	if info.Width != 5 || info.Height != 7 {
		t.Fatalf("unexpected builtin font geometry: %+v", info)
	}
	if info.FirstChar != int(builtinFirstChar) || info.CharCount != builtinCharCount {
		t.Fatalf("unexpected builtin font range: %+v", info)
	}

	// Every glyph in the table is defined, everything else in range is not
	for code := info.FirstChar; code < info.FirstChar+info.CharCount; code++ {
		_, inTable := builtinGlyphs[byte(code)]
		if got := f.CharInfo(byte(code)).IsDefined; got != inTable {
			t.Errorf("char %q: defined = %v, want %v", code, got, inTable)
		}
	}

	// Drawing a glyph reproduces its row pattern
	c, err := NewCanvas(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	c.DrawChar(0, 0, 'A', f)

	rows := builtinGlyphs['A']
	for y := 0; y < 7; y++ {
		for x := 0; x < 5; x++ {
			want := rows[y]&(1<<(4-x)) != 0
			if got := c.Pixel(x, y); got != want {
				t.Errorf("glyph A pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestScaleFont2x(t *testing.T) {
	small := smallFont
	big := bigFont

	info := big.Info()
	if info.Width != 10 || info.Height != 14 {
		t.Fatalf("unexpected scaled geometry: %+v", info)
	}

	if got, want := big.CharInfo('A').Advance, small.CharInfo('A').Advance*2; got != want {
		t.Errorf("scaled advance = %d, want %d", got, want)
	}

	// Each source pixel becomes a 2x2 block
	sc, err := NewCanvas(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	bc, err := NewCanvas(16, 16)
	if err != nil {
		t.Fatal(err)
	}
	sc.DrawChar(0, 0, 'E', small)
	bc.DrawChar(0, 0, 'E', big)

	for y := 0; y < 7; y++ {
		for x := 0; x < 5; x++ {
			want := sc.Pixel(x, y)
			for dy := 0; dy < 2; dy++ {
				for dx := 0; dx < 2; dx++ {
					if got := bc.Pixel(x*2+dx, y*2+dy); got != want {
						t.Fatalf("scaled pixel (%d,%d) = %v, want %v", x*2+dx, y*2+dy, got, want)
					}
				}
			}
		}
	}
}

func TestPackColumnsTrimsBlankColumns(t *testing.T) {
	// '-' only uses the middle three columns but is stored from column 0
	cols := packColumns(builtinGlyphs['-'], 5, 7, 1)
	if len(cols) != 4 {
		t.Errorf("packed %d column bytes, want 4", len(cols))
	}

	// Space packs to nothing
	if cols := packColumns(builtinGlyphs[' '], 5, 7, 1); len(cols) != 0 {
		t.Errorf("space packed %d column bytes, want 0", len(cols))
	}
}

func TestBuildFontUndefinedEntry(t *testing.T) {
	asset := buildFont(5, 7, 'A', 2, map[byte][]byte{'A': builtinGlyphs['A']})

	entry := asset[fontHeaderSize+jumpEntrySize : fontHeaderSize+2*jumpEntrySize]
	if !bytes.Equal(entry[:2], []byte{0xFF, 0xFF}) {
		t.Errorf("missing glyph entry = % X, want FF FF prefix", entry)
	}
	if entry[3] != 2 { // half width fallback
		t.Errorf("missing glyph advance = %d, want 2", entry[3])
	}
}
