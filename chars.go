package grac

import (
	"strings"
	"unicode"
)

// Class is the semantic class of a character.
type Class uint8

const (
	// Other covers every non-Greek character, Greek punctuation and the
	// archaic letters (digamma, koppa...) that take no part in syllables.
	Other Class = iota
	Vowel
	Consonant
	// Mark is a standalone combining diacritic (U+0300 and friends).
	Mark
)

func (c Class) String() string {
	switch c {
	case Vowel:
		return "vowel"
	case Consonant:
		return "consonant"
	case Mark:
		return "mark"
	default:
		return "other"
	}
}

// Diacritic is a set of Greek diacritics. Each single-bit constant is one
// diacritic kind; a character may carry several (ΐ is Diaeresis | Acute).
type Diacritic uint16

const (
	// Acute is the οξεία / τόνος, U+0301.
	Acute Diacritic = 1 << iota
	// Grave is the βαρεία, U+0300.
	Grave
	// Circumflex is the περισπωμένη, U+0342.
	Circumflex
	// Diaeresis is the διαλυτικά, U+0308.
	Diaeresis
	// Smooth is the ψιλή, U+0313.
	Smooth
	// Rough is the δασεία, U+0314.
	Rough
	// IotaSubscript is the υπογεγραμμένη (or προσγεγραμμένη), U+0345.
	IotaSubscript
	// Macron, U+0304. Archaic, dropped by the normalizer.
	Macron
	// Breve, U+0306. Archaic, dropped by the normalizer.
	Breve
)

// AllDiacritics is the union of every known diacritic.
const AllDiacritics = Acute | Grave | Circumflex | Diaeresis | Smooth | Rough | IotaSubscript | Macron | Breve

// Accents are the three polytonic stress marks.
const Accents = Acute | Grave | Circumflex

// Breathings are the two breathing marks.
const Breathings = Smooth | Rough

// combiningOrder lists the diacritics in the order their combining marks are
// written after a base letter: length, diaeresis, breathing, accent, iota.
var combiningOrder = [...]struct {
	d Diacritic
	r rune
}{
	{Macron, '\u0304'},
	{Breve, '\u0306'},
	{Diaeresis, '\u0308'},
	{Smooth, '\u0313'},
	{Rough, '\u0314'},
	{Acute, '\u0301'},
	{Grave, '\u0300'},
	{Circumflex, '\u0342'},
	{IotaSubscript, '\u0345'},
}

// Has reports whether every diacritic of x is present in d.
func (d Diacritic) Has(x Diacritic) bool {
	return x != 0 && d&x == x
}

// Combining returns the combining marks for d in canonical writing order.
func (d Diacritic) Combining() string {
	if d == 0 {
		return ""
	}
	var b strings.Builder
	for _, c := range combiningOrder {
		if d&c.d != 0 {
			b.WriteRune(c.r)
		}
	}
	return b.String()
}

func (d Diacritic) String() string {
	if d == 0 {
		return "none"
	}
	names := []struct {
		d    Diacritic
		name string
	}{
		{Acute, "acute"}, {Grave, "grave"}, {Circumflex, "circumflex"},
		{Diaeresis, "diaeresis"}, {Smooth, "smooth"}, {Rough, "rough"},
		{IotaSubscript, "iota-subscript"}, {Macron, "macron"}, {Breve, "breve"},
	}
	var parts []string
	for _, n := range names {
		if d&n.d != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "+")
}

// Char is a classified character. For vowels and consonants Base is the bare
// letter, case preserved; for a Mark, Diacritics holds the mark itself.
type Char struct {
	Rune       rune
	Class      Class
	Base       rune
	Diacritics Diacritic
}

// Lower returns the lowercase base letter, with final sigma folded to σ.
func (c Char) Lower() rune {
	l := unicode.ToLower(c.Base)
	if l == 'ς' {
		return 'σ'
	}
	return l
}

// entry is one row of the generated classification tables.
type entry struct {
	base       rune
	class      Class
	diacritics Diacritic
}

// markDiacritic maps standalone combining marks to their diacritic.
func markDiacritic(r rune) Diacritic {
	switch r {
	case '\u0301':
		return Acute
	case '\u0300':
		return Grave
	case '\u0342':
		return Circumflex
	case '\u0308':
		return Diaeresis
	case '\u0313', '\u0343': // psili, koronis
		return Smooth
	case '\u0314':
		return Rough
	case '\u0345':
		return IotaSubscript
	case '\u0304':
		return Macron
	case '\u0306':
		return Breve
	case '\u0344': // dialytika tonos
		return Diaeresis | Acute
	}
	return 0
}

// Classify returns the class of r and, for letters, its base letter and
// attached diacritics. Anything that is not Greek is Other.
func Classify(r rune) Char {
	var e entry
	switch {
	case r >= greekCopticFirst && r <= greekCopticLast:
		e = greekCoptic[r-greekCopticFirst]
	case r >= greekExtendedFirst && r <= greekExtendedLast:
		e = greekExtended[r-greekExtendedFirst]
	default:
		if d := markDiacritic(r); d != 0 {
			return Char{Rune: r, Class: Mark, Base: r, Diacritics: d}
		}
	}
	if e.class == Other {
		return Char{Rune: r, Class: Other, Base: r}
	}
	return Char{Rune: r, Class: e.class, Base: e.base, Diacritics: e.diacritics}
}

// IsVowel reports whether r is a Greek vowel, with or without diacritics.
func IsVowel(r rune) bool {
	return Classify(r).Class == Vowel
}

// IsConsonant reports whether r is a Greek consonant.
func IsConsonant(r rune) bool {
	return Classify(r).Class == Consonant
}

// BaseLower returns the lowercase bare letter of r. Non-letters are returned
// unchanged.
func BaseLower(r rune) rune {
	c := Classify(r)
	switch c.Class {
	case Vowel, Consonant:
		return unicode.ToLower(c.Base)
	}
	return r
}

type composeKey struct {
	base rune
	d    Diacritic
}

// composeTable is the inverse of the classification tables. The Greek and
// Coptic block is walked first so that the canonical (tonos) code points
// win over their Greek Extended (oxia) duplicates.
var composeTable = buildComposeTable()

func buildComposeTable() map[composeKey]rune {
	m := make(map[composeKey]rune, 512)
	add := func(first rune, table []entry) {
		for i, e := range table {
			if e.class == Other {
				continue
			}
			k := composeKey{e.base, e.diacritics}
			if _, ok := m[k]; !ok {
				m[k] = first + rune(i)
			}
		}
	}
	add(greekCopticFirst, greekCoptic[:])
	add(greekExtendedFirst, greekExtended[:])
	return m
}

// Compose returns the precomposed character for base carrying d.
// ok is false when Unicode has no such precomposed character.
func Compose(base rune, d Diacritic) (r rune, ok bool) {
	r, ok = composeTable[composeKey{base, d}]
	return r, ok
}

// writeLetter writes base with diacritics d, precomposed when possible and
// as base followed by combining marks otherwise.
func writeLetter(b *strings.Builder, base rune, d Diacritic) {
	if r, ok := Compose(base, d); ok {
		b.WriteRune(r)
		return
	}
	b.WriteRune(base)
	b.WriteString(d.Combining())
}

// HasDiacritic reports whether any character of s carries d.
func HasDiacritic(s string, d Diacritic) bool {
	for _, g := range scan(s) {
		if g.diacritics&d != 0 {
			return true
		}
	}
	return false
}

// IsGreekChar reports whether r is in the Greek and Coptic or the Greek
// Extended block, punctuation included.
func IsGreekChar(r rune) bool {
	return (r >= greekCopticFirst && r <= greekCopticLast) ||
		(r >= greekExtendedFirst && r <= greekExtendedLast)
}

// IsGreekLetter is IsGreekChar without the spacing marks and punctuation of
// both blocks.
func IsGreekLetter(r rune) bool {
	switch r {
	case '\u0375', '\u037E', '\u0384', '\u0385', '\u0387', '\u03F6',
		'\u1FBD', '\u1FBF', '\u1FC0', '\u1FC1', '\u1FCD', '\u1FCE', '\u1FCF',
		'\u1FDD', '\u1FDE', '\u1FDF', '\u1FED', '\u1FEE', '\u1FEF',
		'\u1FFD', '\u1FFE':
		return false
	}
	return IsGreekChar(r)
}

// IsGreekWord reports whether every alphabetic character of s is Greek.
// U+02BC MODIFIER LETTER APOSTROPHE is alphabetic and commonly used for
// elision, so it is accepted too.
func IsGreekWord(s string) bool {
	for _, r := range s {
		if IsGreekChar(r) || r == '\u02BC' || !unicode.IsLetter(r) {
			continue
		}
		return false
	}
	return true
}
