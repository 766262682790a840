package grac

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LoadWordList reads a plain-text synizesis list, one entry per line.
// Lines starting with "!" or "#" are comments. An entry containing a
// hyphen is read as a hyphenation ("βρά-δια"); any other entry fuses
// every candidate pair, like the words section of the YAML format.
func LoadWordList(r io.Reader) (*SynizesisTable, error) {
	t := &SynizesisTable{entries: make(map[string][]int)}
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "!") || strings.HasPrefix(line, "#") {
			continue
		}
		var err error
		if strings.Contains(line, "-") {
			err = t.addHyphenated(line)
		} else {
			err = t.addWord(line)
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	if len(t.entries) == 0 {
		return nil, ErrEmptyTable
	}
	return t, nil
}

// LoadSynizesisFile reads synizesis data from path. Files ending in .yaml
// or .yml use the LoadSynizesisTable format; anything else is a word list.
func LoadSynizesisFile(path string) (*SynizesisTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var t *SynizesisTable
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		t, err = LoadSynizesisTable(f)
	default:
		t, err = LoadWordList(f)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", filepath.Base(path), err)
	}
	return t, nil
}
