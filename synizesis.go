package grac

import (
	_ "embed"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

//go:embed data/synizesis.yaml
var defaultSynizesisData []byte

// SynizesisTable maps words to the vowel pairs that fuse into a single
// syllable. Positions are glyph indices of the first vowel of each pair.
// A table is immutable once built and safe for concurrent use.
type SynizesisTable struct {
	entries map[string][]int
}

// NewSynizesisTable builds a table from explicit positions. Keys are
// normalized, so casing and diacritics of the keys do not matter.
func NewSynizesisTable(entries map[string][]int) (*SynizesisTable, error) {
	t := &SynizesisTable{entries: make(map[string][]int, len(entries))}
	for word, ps := range entries {
		if err := t.addPositions(word, ps); err != nil {
			return nil, err
		}
	}
	return t, nil
}

var defaultTable = sync.OnceValue(func() *SynizesisTable {
	t, err := LoadSynizesisTable(strings.NewReader(string(defaultSynizesisData)))
	if err != nil {
		panic("grac: embedded synizesis data: " + err.Error())
	}
	return t
})

// DefaultSynizesisTable returns the table built from the embedded word list.
// It is parsed on first use.
func DefaultSynizesisTable() *SynizesisTable {
	return defaultTable()
}

type stemGroup struct {
	Stems   []string `yaml:"stems"`
	Endings []string `yaml:"endings"`
}

type synizesisFile struct {
	Words      []string         `yaml:"words"`
	Stems      []stemGroup      `yaml:"stems"`
	Hyphenated []string         `yaml:"hyphenated"`
	Positions  map[string][]int `yaml:"positions"`
}

// LoadSynizesisTable reads a YAML synizesis list:
//
//	words:      [πιο, χρόνια]            # every ι/υ/η + vowel pair fuses
//	stems:      [{stems: [ίσκι], endings: [ος, ου]}]
//	hyphenated: [βρά-δια]                # vowels within one part fuse
//	positions:  {καημένος: [1]}
func LoadSynizesisTable(r io.Reader) (*SynizesisTable, error) {
	var f synizesisFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return nil, ErrEmptyTable
		}
		return nil, fmt.Errorf("decode synizesis data: %w", err)
	}

	t := &SynizesisTable{entries: make(map[string][]int)}
	for _, w := range f.Words {
		if err := t.addWord(w); err != nil {
			return nil, err
		}
	}
	for _, g := range f.Stems {
		for _, stem := range g.Stems {
			for _, ending := range g.Endings {
				if err := t.addWord(stem + ending); err != nil {
					return nil, err
				}
			}
		}
	}
	for _, h := range f.Hyphenated {
		if err := t.addHyphenated(h); err != nil {
			return nil, err
		}
	}
	for w, ps := range f.Positions {
		if err := t.addPositions(w, ps); err != nil {
			return nil, err
		}
	}
	if len(t.entries) == 0 {
		return nil, ErrEmptyTable
	}
	return t, nil
}

// addWord registers every synizesis candidate of w.
func (t *SynizesisTable) addWord(w string) error {
	gs := scan(w)
	var ps []int
	for i := 0; i+1 < len(gs); i++ {
		if synizesisCandidate(gs, i) {
			ps = append(ps, i)
		}
	}
	if len(ps) == 0 {
		return fmt.Errorf("%w: %q has no vowel pair that can fuse", ErrInvalidEntry, w)
	}
	t.put(w, ps)
	return nil
}

// addHyphenated registers the vowel pairs that share a part of h.
func (t *SynizesisTable) addHyphenated(h string) error {
	var (
		word strings.Builder
		ps   []int
		prev glyph
		n    int
	)
	for _, g := range scan(h) {
		if g.class == Other && h[g.start:g.end] == "-" {
			prev = glyph{}
			continue
		}
		if prev.isVowel() && g.isVowel() {
			ps = append(ps, n-1)
		}
		word.WriteString(h[g.start:g.end])
		prev = g
		n++
	}
	if len(ps) == 0 {
		return fmt.Errorf("%w: %q fuses no vowels", ErrInvalidEntry, h)
	}
	t.put(word.String(), ps)
	return nil
}

func (t *SynizesisTable) addPositions(w string, ps []int) error {
	gs := scan(w)
	for _, p := range ps {
		if p < 0 || p+1 >= len(gs) || !gs[p].isVowel() || !gs[p+1].isVowel() {
			return fmt.Errorf("%w: %q has no vowel pair at %d", ErrInvalidEntry, w, p)
		}
	}
	t.put(w, ps)
	return nil
}

func (t *SynizesisTable) put(w string, ps []int) {
	k := synizesisKey(w)
	merged := append(slices.Clone(t.entries[k]), ps...)
	slices.Sort(merged)
	t.entries[k] = slices.Compact(merged)
}

// Lookup returns the fusion positions for word, or nil if word is not in
// the table. Punctuation around the word is ignored; the positions index
// the glyphs of word as given.
func (t *SynizesisTable) Lookup(word string) []int {
	if t == nil || len(t.entries) == 0 {
		return nil
	}
	return t.lookup(word, scan(word))
}

func (t *SynizesisTable) lookup(word string, gs []glyph) []int {
	if t == nil || len(t.entries) == 0 {
		return nil
	}
	lo, hi := letterSpan(gs)
	if lo > hi {
		return nil
	}
	ps, ok := t.entries[synizesisKey(word[gs[lo].start:gs[hi].end])]
	if !ok {
		return nil
	}
	out := make([]int, len(ps))
	for i, p := range ps {
		out[i] = p + lo
	}
	return out
}

// Len returns the number of distinct words in the table.
func (t *SynizesisTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Words returns the normalized keys of the table in sorted order.
func (t *SynizesisTable) Words() []string {
	if t == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(t.entries))
}

// With returns a new table holding the entries of t and other. Positions of
// words present in both are united.
func (t *SynizesisTable) With(other *SynizesisTable) *SynizesisTable {
	out := &SynizesisTable{entries: make(map[string][]int, t.Len()+other.Len())}
	for _, src := range []*SynizesisTable{t, other} {
		if src == nil {
			continue
		}
		for k, ps := range src.entries {
			merged := append(slices.Clone(out.entries[k]), ps...)
			slices.Sort(merged)
			out.entries[k] = slices.Compact(merged)
		}
	}
	return out
}

// letterSpan returns the first and last glyphs of gs that are letters.
// lo > hi when there is none.
func letterSpan(gs []glyph) (lo, hi int) {
	lo, hi = 0, len(gs)-1
	for lo <= hi && !isLetterGlyph(gs[lo]) {
		lo++
	}
	for hi >= lo && !isLetterGlyph(gs[hi]) {
		hi--
	}
	return lo, hi
}

func isLetterGlyph(g glyph) bool {
	return g.class == Vowel || g.class == Consonant || (unicode.IsLetter(g.base) && g.base != '\u02BC')
}

// synizesisKey folds w to its lowercase form without diacritics. Transformers
// and casers keep state, so a fresh chain is built for each call.
func synizesisKey(w string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s, _, err := transform.String(t, w)
	if err != nil {
		s = w
	}
	return cases.Lower(language.Greek).String(s)
}
