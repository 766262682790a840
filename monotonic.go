package grac

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DiaeresisPolicy decides what ToMonoWith does with diaereses.
type DiaeresisPolicy uint8

const (
	// DiaeresisLoadBearing keeps a diaeresis only where dropping it would
	// create a diphthong: on ι or υ after an unstressed α, ε, ο, υ or η
	// that pairs with it (φαΐ, προϋπόθεση). Elsewhere it is dropped
	// (γάϊδουρος → γάιδουρος).
	DiaeresisLoadBearing DiaeresisPolicy = iota
	// DiaeresisPreserve keeps every diaeresis.
	DiaeresisPreserve
	// DiaeresisStrip drops every diaeresis.
	DiaeresisStrip
)

func (p DiaeresisPolicy) String() string {
	switch p {
	case DiaeresisPreserve:
		return "preserve"
	case DiaeresisStrip:
		return "strip"
	default:
		return "load-bearing"
	}
}

// ParseDiaeresisPolicy parses the names returned by DiaeresisPolicy.String.
func ParseDiaeresisPolicy(s string) (DiaeresisPolicy, bool) {
	switch s {
	case "", "load-bearing":
		return DiaeresisLoadBearing, true
	case "preserve":
		return DiaeresisPreserve, true
	case "strip":
		return DiaeresisStrip, true
	}
	return DiaeresisLoadBearing, false
}

// monoDrop are the diacritics that have no monotonic counterpart.
const monoDrop = Breathings | IotaSubscript | Macron | Breve

// ToMono converts word to monotonic spelling: grave and circumflex become
// acute, breathings and iota subscripts are dropped and only load-bearing
// diaereses are kept. Greek letters are written precomposed; anything else
// is copied unchanged. ToMono(ToMono(w)) == ToMono(w).
func ToMono(word string) string {
	return ToMonoWith(word, DiaeresisLoadBearing)
}

// ToMonoWith is ToMono with an explicit diaeresis policy.
func ToMonoWith(word string, policy DiaeresisPolicy) string {
	gs := scan(word)
	var b strings.Builder
	b.Grow(len(word))
	for i, g := range gs {
		switch g.class {
		case Vowel:
			writeLetter(&b, g.base, monoVowel(gs, i, policy))
		case Consonant:
			writeLetter(&b, g.base, 0)
		default:
			b.WriteString(word[g.start:g.end])
		}
	}
	return b.String()
}

// monoVowel returns the monotonic diacritics of vowel gs[i].
func monoVowel(gs []glyph, i int, policy DiaeresisPolicy) Diacritic {
	d := gs[i].diacritics &^ monoDrop
	if d&(Grave|Circumflex) != 0 {
		d = d&^Accents | Acute
	}
	if d&Diaeresis == 0 {
		return d
	}
	switch policy {
	case DiaeresisStrip:
		d &^= Diaeresis
	case DiaeresisLoadBearing:
		if i == 0 || !gs[i-1].isVowel() || gs[i-1].diacritics&Accents != 0 ||
			!diphthongs[[2]rune{gs[i-1].lower, gs[i].lower}] {
			d &^= Diaeresis
		}
	}
	return d
}

// monosyllablesAccented keep their accent in monotonic text.
var monosyllablesAccented = []string{"ή", "πού", "πώς", "είς", "έν", "έξ"}

// monosyllablesUnaccented are words that the polytonic spelling accents,
// read as one syllable by synizesis, so they lose the accent in monotonic
// text even when the segmenter sees two syllables.
var monosyllablesUnaccented = []string{
	"πιό", "πιά", "μιά", "μιάς", "γιά", "γειά",
	"πιώ", "πίεις", "πίη", "πιή", "πίει", "πιεί", "πίης", "πιής", "πιούν", "πιές",
}

// lexical spellings that accent conversion alone gets wrong.
var specialCases = map[string]string{
	"ποὺ": "που", "Ποὺ": "Που",
	"πὼς": "πως", "Πὼς": "Πως",
	"ποιὸς": "ποιος", "Ποιὸς": "Ποιος",
	"ποιὰ": "ποια", "Ποιὰ": "Ποια",
}

// elision marks ending a truncated word (έτσ᾿, κάν᾽).
const apostrophes = "'\u2019\u02BC\u1FBD\u1FBF\u2018"

// ToMonotonic converts running polytonic text to monotonic. On top of ToMono
// it removes the accent from monosyllables (καὶ → και) except the few that
// keep it (ή, πού, πώς), elided words and words ending in a stressed
// diphthong (σόι), and drops the second of two accents on the last two
// syllables (εἶναί → είναι). Tokens with non-Greek letters are left alone.
// Syllables are counted with the default synizesis table.
func ToMonotonic(text string) string {
	return std().ToMonotonicWith(text, DiaeresisLoadBearing)
}

// ToMonotonicWith is ToMonotonic with an explicit diaeresis policy.
func ToMonotonicWith(text string, policy DiaeresisPolicy) string {
	return std().ToMonotonicWith(text, policy)
}

// ToMonotonic is the package-level ToMonotonic counting syllables with the
// table of s.
func (s *Syllabifier) ToMonotonic(text string) string {
	return s.ToMonotonicWith(text, DiaeresisLoadBearing)
}

// ToMonotonicWith is ToMonotonic with an explicit diaeresis policy.
func (s *Syllabifier) ToMonotonicWith(text string, policy DiaeresisPolicy) string {
	var b strings.Builder
	b.Grow(len(text))
	start := 0
	for i, r := range text {
		if isTokenSeparator(r) {
			b.WriteString(s.monotonicToken(text[start:i], policy))
			b.WriteRune(r)
			start = i + utf8.RuneLen(r)
		}
	}
	b.WriteString(s.monotonicToken(text[start:], policy))
	return b.String()
}

func isTokenSeparator(r rune) bool {
	return r == '-' || r == '—' || unicode.IsSpace(r)
}

func (s *Syllabifier) monotonicToken(tok string, policy DiaeresisPolicy) string {
	if tok == "" || !IsGreekWord(tok) {
		return tok
	}
	left, core, right := SplitPunctuation(tok)
	if core == "" {
		return tok
	}
	if sc, ok := specialCases[core]; ok {
		return left + sc + right
	}

	out := ToMonoWith(core, policy)
	w := s.Segment(out, MergeLookup)
	switch n := w.Len(); {
	case n == 1:
		r, _ := utf8.DecodeRuneInString(right)
		elided := right != "" && strings.ContainsRune(apostrophes, r)
		if !slices.Contains(monosyllablesAccented, strings.ToLower(out)) && !elided && !EndsWithDiphthong(out) {
			out = StripAcute(out)
		}
	case n >= 2:
		if slices.Contains(monosyllablesUnaccented, strings.ToLower(out)) {
			out = StripAcute(out)
		} else if HasDiacritic(w.At(n-2), Acute) && HasDiacritic(w.At(n-1), Acute) {
			last := w.Syllables[n-1]
			out = out[:last.Start] + StripAcute(out[last.Start:])
		}
	}
	return left + out + right
}

// SplitPunctuation splits s into leading punctuation, core and trailing
// punctuation. The core runs from the first to the last letter; anything
// between them, such as the comma of ό,τι, stays in the core. A string
// without letters is returned whole as left.
func SplitPunctuation(s string) (left, core, right string) {
	start := strings.IndexFunc(s, isCoreRune)
	if start < 0 {
		return s, "", ""
	}
	end := strings.LastIndexFunc(s, isCoreRune)
	_, size := utf8.DecodeRuneInString(s[end:])
	end += size
	// combining marks belong to the letter before them
	for end < len(s) {
		r, size := utf8.DecodeRuneInString(s[end:])
		if !unicode.Is(unicode.Mn, r) {
			break
		}
		end += size
	}
	return s[:start], s[start:end], s[end:]
}

func isCoreRune(r rune) bool {
	if IsGreekChar(r) {
		return IsGreekLetter(r)
	}
	return r != '\u02BC' && unicode.IsLetter(r)
}
