// Command grac syllabifies, accents and monotonizes Greek text from the
// command line.
//
//	grac syllabify [--mode lookup|never|every] WORD...
//	grac mono [--diaeresis load-bearing|preserve|strip] [TEXT | -]
//	grac accent WORD POSITION
//	grac bench FILE
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
