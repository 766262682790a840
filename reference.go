package grac

// SyllabifyReference is the baseline segmenter: a right-to-left state
// machine with no synizesis. It is kept to cross-check Syllabify and may
// disagree with it on ambiguous words.
func SyllabifyReference(word string) []string {
	const (
		coda = iota
		nucleus
		onset
	)

	gs := scan(word)
	var out []string
	to := len(gs)
	emit := func(fr int) {
		if fr < to {
			out = append(out, word[gs[fr].start:end(word, gs, to)])
			to = fr
		}
	}

	state := coda
	for fr := len(gs) - 1; fr >= 0; fr-- {
		g := gs[fr]
		switch state {
		case coda:
			if g.isVowel() {
				state = nucleus
			}
		case nucleus:
			switch {
			case !g.isVowel():
				state = onset
			case isDiphthong(g, gs[fr+1]):
				// αυι, ουι...: the trailing ι cannot belong to both pairs
				if fr+2 < to && gs[fr+2].isVowel() && gs[fr+2].lower == 'ι' {
					emit(fr + 2)
				}
			default:
				emit(fr + 1)
			}
		case onset:
			if g.isVowel() {
				emit(fr + 1)
				state = nucleus
			} else if !isCluster(g, gs[fr+1]) {
				emit(fr + 1)
				state = coda
			}
		}
	}
	if to > 0 {
		out = append(out, word[:end(word, gs, to)])
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// end returns the byte offset where glyph index to begins, or len(word).
func end(word string, gs []glyph, to int) int {
	if to >= len(gs) {
		return len(word)
	}
	return gs[to].start
}
