//go:build generate

// This program generates tables.go, the classification of every precomposed
// Greek letter into base letter and diacritics, from the canonical
// decompositions in golang.org/x/text/unicode/norm.
//
//go:generate go run gen_tables.go

package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/unicode/runenames"
)

const (
	vowels     = "αεηιουω"
	consonants = "βγδζθκλμνξπρσςτφχψ"
)

// marks maps combining marks to the names of the diacritic constants.
var marks = map[rune]string{
	'\u0301': "Acute",
	'\u0300': "Grave",
	'\u0342': "Circumflex",
	'\u0308': "Diaeresis",
	'\u0313': "Smooth",
	'\u0314': "Rough",
	'\u0345': "IotaSubscript",
	'\u0304': "Macron",
	'\u0306': "Breve",
}

func main() {
	log.SetPrefix("gen_tables: ")
	log.SetFlags(0)

	var buf bytes.Buffer
	buf.WriteString(`// Code generated by gen_tables.go; DO NOT EDIT.

package grac

const (
	greekCopticFirst   = 0x0370
	greekCopticLast    = 0x03FF
	greekExtendedFirst = 0x1F00
	greekExtendedLast  = 0x1FFF
)

`)
	if err := table(&buf, "greekCoptic", 0x0370, 0x03FF); err != nil {
		log.Fatal(err)
	}
	buf.WriteString("\n")
	if err := table(&buf, "greekExtended", 0x1F00, 0x1FFF); err != nil {
		log.Fatal(err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatal("gofmt:", err)
	}

	log.Print("Writing to tables.go")
	if err := os.WriteFile("tables.go", formatted, 0644); err != nil {
		log.Fatal(err)
	}
}

func table(buf *bytes.Buffer, name string, first, last rune) error {
	fmt.Fprintf(buf, "// %s holds the classification of U+%04X..U+%04X, indexed by\n", name, first, last)
	fmt.Fprintf(buf, "// rune - %sFirst. The zero entry means Other.\n", name)
	fmt.Fprintf(buf, "var %s = [0x%x]entry{\n", name, last-first+1)
	for r := first; r <= last; r++ {
		base, diacritics, ok, err := decompose(r)
		if err != nil {
			return fmt.Errorf("U+%04X: %v", r, err)
		}
		if !ok {
			continue
		}
		class := "Consonant"
		if strings.ContainsRune(vowels, unicode.ToLower(base)) {
			class = "Vowel"
		}
		fmt.Fprintf(buf, "\t0x%02x: {%q, %s, %s}, // %c %s\n", r-first, base, class, diacritics, r, runenames.Name(r))
	}
	buf.WriteString("}\n")
	return nil
}

// decompose splits r into its base letter and diacritic expression. ok is
// false for anything that is not a Greek vowel or consonant.
func decompose(r rune) (base rune, diacritics string, ok bool, err error) {
	d := []rune(norm.NFD.String(string(r)))
	base = d[0]
	l := unicode.ToLower(base)
	if !strings.ContainsRune(vowels, l) && !strings.ContainsRune(consonants, l) {
		return 0, "", false, nil
	}
	var names []string
	for _, x := range d[1:] {
		name, known := marks[x]
		if !known {
			return 0, "", false, fmt.Errorf("unknown mark U+%04X", x)
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		return base, "0", true, nil
	}
	return base, strings.Join(names, " | "), true, nil
}
