package grac

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSynizesisTable(t *testing.T) {
	table := DefaultSynizesisTable()
	require.NotNil(t, table)
	assert.Greater(t, table.Len(), 100)
	assert.Same(t, table, DefaultSynizesisTable())

	tests := []struct {
		word string
		want []int
	}{
		{"ποια", []int{2}},
		{"ΠΟΙΑ", []int{2}},
		{"ποιά", []int{2}},
		{"«ποια»", []int{3}},
		{"Ποιος;", []int{2}},
		{"χρόνια", []int{4}},
		{"βράδια", []int{4}},
		{"καημένος", []int{1}},
		{"ανθρωπος", nil},
		{"", nil},
		{"...", nil},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, table.Lookup(tt.word), "Lookup(%q)", tt.word)
	}
}

func TestLoadSynizesisTable(t *testing.T) {
	const data = `
words: [χρόνια]
stems:
  - stems: [ίσκι]
    endings: [ος, ου]
hyphenated: [βρά-δια]
positions:
  καημένος: [1]
`
	table, err := LoadSynizesisTable(strings.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, []string{"βραδια", "ισκιος", "ισκιου", "καημενος", "χρονια"}, table.Words())
	assert.Equal(t, []int{3}, table.Lookup("ίσκιος"))

	s := New(table)
	assert.Equal(t, []string{"ί", "σκιος"}, s.Syllabify("ίσκιος"))
	assert.Equal(t, []string{"καη", "μέ", "νος"}, s.Syllabify("καημένος"))
	// not in this table
	assert.Equal(t, []string{"ποι", "α"}, s.Syllabify("ποια"))
}

func TestLoadSynizesisTableErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"empty", "", ErrEmptyTable},
		{"no entries", "words: []\n", ErrEmptyTable},
		{"word without candidate", "words: [ανθρωπος]\n", ErrInvalidEntry},
		{"stressed glide", "words: [μία]\n", ErrInvalidEntry},
		{"hyphenation without fusion", "hyphenated: [αν-θρω-πος]\n", ErrInvalidEntry},
		{"position on consonant", "positions: {ποια: [0]}\n", ErrInvalidEntry},
		{"position past the end", "positions: {ποια: [3]}\n", ErrInvalidEntry},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSynizesisTable(strings.NewReader(tt.data))
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := LoadSynizesisTable(strings.NewReader("words: [\n"))
	assert.Error(t, err)
	_, err = LoadSynizesisTable(strings.NewReader("lemmas: [πιο]\n"))
	assert.Error(t, err)
}

func TestSynizesisTableWith(t *testing.T) {
	a, err := NewSynizesisTable(map[string][]int{"ποια": {2}})
	require.NoError(t, err)
	b, err := NewSynizesisTable(map[string][]int{"Ποιος": {2}, "ΜΥΑΛΟ": {1}})
	require.NoError(t, err)

	c := a.With(b)
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, []int{1}, c.Lookup("μυαλό"))
	assert.Equal(t, []int{2}, c.Lookup("ποιος"))

	var nilTable *SynizesisTable
	assert.Nil(t, nilTable.Lookup("ποια"))
	assert.Equal(t, 0, nilTable.Len())
	assert.Equal(t, 1, nilTable.With(a).Len())

	_, err = NewSynizesisTable(map[string][]int{"ποια": {0}})
	assert.ErrorIs(t, err, ErrInvalidEntry)
}

func TestSyllabifierConcurrent(t *testing.T) {
	words := []string{"χρόνια", "ποια", "ανθρωπος", "αρρώστια", "μυαλό"}
	want := make([][]string, len(words))
	for i, w := range words {
		want[i] = Syllabify(w)
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, w := range words {
				assert.Equal(t, want[i], Syllabify(w))
			}
		}()
	}
	wg.Wait()
}
