package grac

// Merge selects how adjacent vowels that are phonotactically two nuclei
// (hiatus) are treated by the segmenter.
type Merge uint8

const (
	// MergeLookup fuses the vowel pairs listed in the synizesis table.
	MergeLookup Merge = iota
	// MergeNever treats every hiatus literally.
	MergeNever
	// MergeEvery fuses every pair that could undergo synizesis: an
	// unstressed ι, υ or η followed by another vowel.
	MergeEvery
)

func (m Merge) String() string {
	switch m {
	case MergeNever:
		return "never"
	case MergeEvery:
		return "every"
	default:
		return "lookup"
	}
}

// ParseMerge parses the names returned by Merge.String.
func ParseMerge(s string) (Merge, bool) {
	switch s {
	case "", "lookup", "default":
		return MergeLookup, true
	case "never":
		return MergeNever, true
	case "every":
		return MergeEvery, true
	}
	return MergeLookup, false
}

// Syllable is a view into Word.Text. All offsets are byte offsets; the
// nucleus is empty (NucleusStart == NucleusEnd) when the word has no vowel.
type Syllable struct {
	Start, End               int
	NucleusStart, NucleusEnd int
}

// Word is a segmented word. Concatenating its syllables yields Text.
type Word struct {
	Text      string
	Syllables []Syllable
}

// Len returns the number of syllables.
func (w Word) Len() int { return len(w.Syllables) }

// At returns the text of syllable i.
func (w Word) At(i int) string {
	s := w.Syllables[i]
	return w.Text[s.Start:s.End]
}

// Onset returns the material of syllable i before its nucleus.
func (w Word) Onset(i int) string {
	s := w.Syllables[i]
	return w.Text[s.Start:s.NucleusStart]
}

// Nucleus returns the vowels of syllable i.
func (w Word) Nucleus(i int) string {
	s := w.Syllables[i]
	return w.Text[s.NucleusStart:s.NucleusEnd]
}

// Coda returns the material of syllable i after its nucleus.
func (w Word) Coda(i int) string {
	s := w.Syllables[i]
	return w.Text[s.NucleusEnd:s.End]
}

// Strings returns the syllables as substrings of Text (no copies).
func (w Word) Strings() []string {
	out := make([]string, len(w.Syllables))
	for i := range w.Syllables {
		out[i] = w.At(i)
	}
	return out
}

// Stress returns the position, counted from the end, of the last syllable
// carrying an acute, or 0 when there is none.
func (w Word) Stress() int {
	for k := w.Len() - 1; k >= 0; k-- {
		if HasDiacritic(w.At(k), Acute) {
			return w.Len() - k
		}
	}
	return 0
}

// diphthongs are the vowel pairs that form a single nucleus in Modern Greek.
var diphthongs = map[[2]rune]bool{
	{'α', 'ι'}: true,
	{'ε', 'ι'}: true,
	{'ο', 'ι'}: true,
	{'υ', 'ι'}: true,
	{'α', 'υ'}: true,
	{'ε', 'υ'}: true,
	{'ο', 'υ'}: true,
	{'η', 'υ'}: true,
}

// onsetClusters are the consonant pairs never split across syllables.
// A consonant run belongs to the next onset from its longest suffix in
// which every adjacent pair is listed here.
var onsetClusters = buildClusters(
	// digraphs standing for a single sound
	"μπ", "ντ", "γκ", "γγ", "τσ", "τζ",
	// stop or fricative + liquid
	"βλ", "γλ", "δλ", "θλ", "κλ", "πλ", "τλ", "φλ", "χλ",
	"βρ", "γρ", "δρ", "θρ", "κρ", "πρ", "τρ", "φρ", "χρ",
	// s clusters
	"σβ", "σγ", "σθ", "σκ", "σμ", "σπ", "στ", "σφ", "σχ",
	// stop and fricative clusters
	"βγ", "βδ", "γν", "θν", "κν", "κτ", "μν", "πν", "πτ", "τμ",
	"φθ", "φτ", "χθ", "χν", "χτ",
)

func buildClusters(pairs ...string) map[[2]rune]bool {
	m := make(map[[2]rune]bool, len(pairs))
	for _, p := range pairs {
		r := []rune(p)
		m[[2]rune{r[0], r[1]}] = true
	}
	return m
}

func isDiphthong(a, b glyph) bool {
	return diphthongs[[2]rune{a.lower, b.lower}] && b.diacritics&Diaeresis == 0
}

func isCluster(a, b glyph) bool {
	return a.class == Consonant && b.class == Consonant && onsetClusters[[2]rune{a.lower, b.lower}]
}

// synizesisCandidate reports whether gs[i] may glide into gs[i+1].
func synizesisCandidate(gs []glyph, i int) bool {
	a, b := gs[i], gs[i+1]
	if !a.isVowel() || !b.isVowel() || b.diacritics&Diaeresis != 0 || a.diacritics&Accents != 0 {
		return false
	}
	switch a.lower {
	case 'ι', 'η':
		return true
	case 'υ':
		// υ closing αυ, ευ, ηυ is consonantal
		if i > 0 && gs[i-1].isVowel() && a.diacritics&Diaeresis == 0 {
			switch gs[i-1].lower {
			case 'α', 'ε', 'η':
				return false
			}
		}
		return true
	}
	return false
}

// nuclei groups the vowels of gs into nuclei, returned as inclusive glyph
// index ranges. fuse[i] marks glyphs i and i+1 as sharing a nucleus.
func nuclei(gs []glyph, fuse []bool) [][2]int {
	var out [][2]int
	for i := 0; i < len(gs); i++ {
		if !gs[i].isVowel() {
			continue
		}
		first := i
		closedDiphthong := false
		for i+1 < len(gs) && gs[i+1].isVowel() {
			switch {
			case gs[i+1].diacritics&Diaeresis != 0:
			case fuse[i]:
				closedDiphthong = false
				i++
				continue
			case !closedDiphthong && isDiphthong(gs[i], gs[i+1]):
				closedDiphthong = true
				i++
				continue
			}
			break
		}
		out = append(out, [2]int{first, i})
	}
	return out
}

// onsetStart returns the first glyph of the onset preceding the nucleus
// starting at glyph next, given that the consonant run begins at glyph from.
func onsetStart(gs []glyph, from, next int) int {
	if from >= next {
		return next
	}
	j := next - 1
	for j > from && isCluster(gs[j-1], gs[j]) {
		j--
	}
	return j
}

// segment splits word into syllables, fusing the vowel pairs marked in fuse.
func segment(word string, gs []glyph, fuse []bool) Word {
	w := Word{Text: word}
	if word == "" {
		return w
	}
	ns := nuclei(gs, fuse)
	if len(ns) == 0 {
		w.Syllables = []Syllable{{Start: 0, End: len(word)}}
		return w
	}
	w.Syllables = make([]Syllable, len(ns))
	for k, n := range ns {
		syl := Syllable{
			NucleusStart: gs[n[0]].start,
			NucleusEnd:   gs[n[1]].end,
		}
		if k > 0 {
			prev := ns[k-1][1]
			syl.Start = gs[onsetStart(gs, prev+1, n[0])].start
			w.Syllables[k-1].End = syl.Start
		}
		w.Syllables[k] = syl
	}
	w.Syllables[len(ns)-1].End = len(word)
	return w
}

// fusions builds the fuse vector for gs under merge. positions are glyph
// indices of the first vowel of each pair to fuse.
func fusions(gs []glyph, merge Merge, positions []int) []bool {
	fuse := make([]bool, len(gs))
	switch merge {
	case MergeNever:
	case MergeEvery:
		for i := 0; i+1 < len(gs); i++ {
			fuse[i] = synizesisCandidate(gs, i)
		}
	default:
		for _, p := range positions {
			if p >= 0 && p+1 < len(gs) && gs[p].isVowel() && gs[p+1].isVowel() {
				fuse[p] = true
			}
		}
	}
	return fuse
}
