// Package grac splits Greek words into syllables, places the acute stress
// mark and converts polytonic spelling to monotonic.
//
// Both monotonic and polytonic input are accepted, precomposed or with
// combining marks. Syllables are returned as substrings of the input, so
// joining them always gives the word back.
//
// Adjacent vowels that are not a diphthong are split (hiatus) unless the
// pair undergoes synizesis, as in χρό-νια. Which pairs fuse is decided by a
// SynizesisTable; the package ships a default one.
package grac

import "sync"

// Syllabifier segments words against a synizesis table. It is safe for
// concurrent use.
type Syllabifier struct {
	table *SynizesisTable
}

// New returns a Syllabifier using table, or the default table when table
// is nil.
func New(table *SynizesisTable) *Syllabifier {
	if table == nil {
		table = DefaultSynizesisTable()
	}
	return &Syllabifier{table: table}
}

// Table returns the synizesis table used by s.
func (s *Syllabifier) Table() *SynizesisTable { return s.table }

// Segment splits word into syllables under merge.
func (s *Syllabifier) Segment(word string, merge Merge) Word {
	gs := scan(word)
	var ps []int
	if merge == MergeLookup {
		ps = s.table.lookup(word, gs)
	}
	return segment(word, gs, fusions(gs, merge, ps))
}

// SegmentAt splits word fusing exactly the vowel pairs starting at the
// given glyph positions. Positions that do not start a pair of vowels are
// ignored.
func (s *Syllabifier) SegmentAt(word string, positions []int) Word {
	gs := scan(word)
	return segment(word, gs, fusions(gs, MergeLookup, positions))
}

// Syllabify splits word into syllables, fusing the pairs listed in the
// synizesis table.
func (s *Syllabifier) Syllabify(word string) []string {
	return s.Segment(word, MergeLookup).Strings()
}

// SyllabifyWithMerge is Syllabify under an explicit merge policy.
func (s *Syllabifier) SyllabifyWithMerge(word string, merge Merge) []string {
	return s.Segment(word, merge).Strings()
}

// SyllabifyAt is Syllabify with caller supplied fusion positions in place
// of the table.
func (s *Syllabifier) SyllabifyAt(word string, positions []int) []string {
	return s.SegmentAt(word, positions).Strings()
}

var std = sync.OnceValue(func() *Syllabifier { return New(nil) })

// Default returns the Syllabifier backing the package-level functions.
func Default() *Syllabifier { return std() }

// Syllabify splits word into syllables using the default synizesis table.
//
//	Syllabify("αρρώστια") // [αρ ρώ στια]
//
// Diphthongs are recognized whatever the stress, so a diphthong accented on
// its first vowel stays one nucleus: πλάι, ρο-λόι, δρύι-νος, not πλά-ι.
// Only a diaeresis splits such a pair.
func Syllabify(word string) []string { return std().Syllabify(word) }

// SyllabifyMode splits word with synizesis lookup on or off. With
// useSynizesis false every hiatus is kept: [αρ ρώ στι α].
func SyllabifyMode(word string, useSynizesis bool) []string {
	if useSynizesis {
		return std().Syllabify(word)
	}
	return std().SyllabifyWithMerge(word, MergeNever)
}

// SyllabifyWithMerge splits word under merge using the default table.
func SyllabifyWithMerge(word string, merge Merge) []string {
	return std().SyllabifyWithMerge(word, merge)
}

// SyllabifyAt splits word fusing the vowel pairs that start at positions,
// zero-based glyph indices of the first vowel of each pair.
func SyllabifyAt(word string, positions []int) []string {
	return std().SyllabifyAt(word, positions)
}

// Segment is Syllabify returning syllable offsets instead of strings.
func Segment(word string, merge Merge) Word {
	return std().Segment(word, merge)
}
