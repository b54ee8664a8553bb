package main

import "strings"

// Transliterator folds two-byte UTF-8 sequences down to the single-byte
// Latin-1 style codes the font jump tables index by. It is not a UTF-8
// decoder: sequences outside the handled lead bytes are dropped. One byte
// of state, so each input stream needs its own value.
type Transliterator struct {
	lastChar byte
}

// Fold consumes one input byte and reports the folded output byte, if any.
func (t *Transliterator) Fold(c byte) (byte, bool) {
	if c < 128 {
		t.lastChar = 0
		return c, true
	}

	last := t.lastChar
	t.lastChar = c

	switch last {
	case 0xC2:
		return c, true
	case 0xC3:
		return c | 0xC0, true
	case 0x82:
		// Euro sign, the tail of 0xE2 0x82 0xAC
		if c == 0xAC {
			return 0x80, true
		}
	}

	return 0, false
}

// FoldString folds a whole string. The result is never longer than the
// input.
func (t *Transliterator) FoldString(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		if c, ok := t.Fold(s[i]); ok {
			b.WriteByte(c)
		}
	}

	return b.String()
}

func foldToDisplay(s string) string {
	var t Transliterator
	return t.FoldString(s)
}
