package grac

import (
	"unicode/utf8"
)

// glyph is one base character together with the combining marks that
// follow it. Offsets are byte offsets into the scanned string.
type glyph struct {
	start, end int
	class      Class
	base       rune      // bare letter, case preserved
	lower      rune      // lowercase bare letter, ς folded to σ
	diacritics Diacritic // precomposed and combining diacritics together
}

func (g glyph) isVowel() bool { return g.class == Vowel }

// scan classifies s into glyphs. Combining marks attach to the preceding
// glyph; a mark with nothing before it becomes an Other glyph. Invalid UTF-8
// bytes become Other glyphs of their own, so offsets always tile s.
func scan(s string) []glyph {
	glyphs := make([]glyph, 0, len(s)/2)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		c := Classify(r)
		if c.Class == Mark && len(glyphs) > 0 {
			last := &glyphs[len(glyphs)-1]
			last.end = i + size
			if last.class != Other {
				last.diacritics |= c.Diacritics
			}
			i += size
			continue
		}
		g := glyph{start: i, end: i + size, class: c.Class, base: c.Base, diacritics: c.Diacritics}
		switch c.Class {
		case Vowel, Consonant:
			g.lower = c.Lower()
		case Mark:
			g.class = Other
			g.diacritics = 0
		}
		glyphs = append(glyphs, g)
		i += size
	}
	return glyphs
}
