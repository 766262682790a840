package grac

import (
	"regexp"
	"strings"
)

// reWord matches a run of Greek script, combining marks included.
var reWord = regexp.MustCompile(`[\p{Greek}\p{Mn}\x{02BC}]+`)

// TokenResult holds the segmentation of one word of a text.
type TokenResult struct {
	// Token is the word as it appears in the text.
	Token string
	// Offset is the byte offset of Token in the text.
	Offset int
	// Syllables are substrings of Token.
	Syllables []string
	// Stress is the stressed syllable counted from the end, 0 if none.
	Stress int
}

// SyllabifyText finds the Greek words of text and syllabifies each one.
func (s *Syllabifier) SyllabifyText(text string) []TokenResult {
	var results []TokenResult
	for _, loc := range reWord.FindAllStringIndex(text, -1) {
		token := text[loc[0]:loc[1]]
		if !strings.ContainsFunc(token, isCoreRune) {
			continue
		}
		w := s.Segment(token, MergeLookup)
		results = append(results, TokenResult{
			Token:     token,
			Offset:    loc[0],
			Syllables: w.Strings(),
			Stress:    w.Stress(),
		})
	}
	return results
}

// SyllabifyText syllabifies every Greek word of text with the default table.
func SyllabifyText(text string) []TokenResult {
	return std().SyllabifyText(text)
}
