package grac

import (
	"slices"
	"strings"
)

// AddAcute places the acute on syllable pos of word, counted from the end
// (1 is the last syllable). Every other acute is removed first. Within the
// syllable the last vowel of the nucleus takes the mark, so a diphthong is
// stressed on its second vowel (παίζω, not πάιζω).
//
// The word is segmented with the default synizesis table; an out-of-range
// pos yields a *PositionError matching ErrPositionOutOfRange.
func AddAcute(word string, pos int) (string, error) {
	return std().AddAcute(word, pos)
}

// AddAcute is the package-level AddAcute using the table of s.
func (s *Syllabifier) AddAcute(word string, pos int) (string, error) {
	gs := scan(word)
	w := segment(word, gs, fusions(gs, MergeLookup, s.table.lookup(word, gs)))
	n := w.Len()
	// a vowelless word has no syllable that can carry stress
	if !slices.ContainsFunc(gs, glyph.isVowel) {
		n = 0
	}
	if pos < 1 || pos > n {
		return "", &PositionError{Word: word, Position: pos, Syllables: n}
	}
	syl := w.Syllables[n-pos]
	target := -1
	for i, g := range gs {
		if g.isVowel() && g.start >= syl.NucleusStart && g.end <= syl.NucleusEnd {
			target = i
		}
	}

	var b strings.Builder
	b.Grow(len(word) + 2)
	for i, g := range gs {
		d := g.diacritics &^ Acute
		if i == target {
			d |= Acute
		}
		writeGlyph(&b, word, g, d)
	}
	return b.String(), nil
}

// writeGlyph writes g with diacritics d. An unchanged glyph is copied
// byte-for-byte so non-Greek text and mark order survive.
func writeGlyph(b *strings.Builder, word string, g glyph, d Diacritic) {
	if d == g.diacritics || (g.class != Vowel && g.class != Consonant) {
		b.WriteString(word[g.start:g.end])
		return
	}
	writeLetter(b, g.base, d)
}

// RemoveDiacritics removes every diacritic in d from s.
func RemoveDiacritics(s string, d Diacritic) string {
	gs := scan(s)
	if !anyDiacritic(gs, d) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, g := range gs {
		writeGlyph(&b, s, g, g.diacritics&^d)
	}
	return b.String()
}

// RemoveAllDiacritics reduces every Greek letter of s to its bare form.
//
//	RemoveAllDiacritics("ἄνθρωπος") // ανθρωπος
func RemoveAllDiacritics(s string) string {
	return RemoveDiacritics(s, AllDiacritics)
}

// StripAcute removes every acute from s.
func StripAcute(s string) string {
	return RemoveDiacritics(s, Acute)
}

// RemoveDiacriticAt removes d from syllable pos of word, counted from the
// end as in AddAcute.
func RemoveDiacriticAt(word string, pos int, d Diacritic) (string, error) {
	w := Segment(word, MergeLookup)
	n := w.Len()
	if pos < 1 || pos > n {
		return "", &PositionError{Word: word, Position: pos, Syllables: n}
	}
	syl := w.Syllables[n-pos]
	return word[:syl.Start] + RemoveDiacritics(word[syl.Start:syl.End], d) + word[syl.End:], nil
}

// StressPosition returns the position, counted from the end, of the last
// syllable carrying an acute, or 0 when word is unstressed.
func StressPosition(word string) int {
	return Segment(word, MergeLookup).Stress()
}

// EndsWithDiphthong reports whether the last vowels of s are a stressed
// diphthong written with the accent on its first vowel (πλάι, Κάιν).
func EndsWithDiphthong(s string) bool {
	gs := scan(s)
	last := len(gs) - 1
	for last >= 0 && gs[last].class == Consonant {
		last--
	}
	if last < 1 || !gs[last].isVowel() || !gs[last-1].isVowel() {
		return false
	}
	a, b := gs[last-1], gs[last]
	if a.diacritics&Acute == 0 || b.diacritics&(Accents|Diaeresis) != 0 {
		return false
	}
	switch a.lower {
	case 'α', 'ε', 'ο':
		return b.lower == 'ι' || b.lower == 'υ'
	}
	return false
}

func anyDiacritic(gs []glyph, d Diacritic) bool {
	for _, g := range gs {
		if g.diacritics&d != 0 {
			return true
		}
	}
	return false
}
