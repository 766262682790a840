package grac

import (
	"errors"
	"fmt"
)

var (
	// ErrPositionOutOfRange is returned by AddAcute when the requested
	// syllable does not exist.
	ErrPositionOutOfRange = errors.New("grac: syllable position out of range")

	// ErrInvalidEntry reports a synizesis table entry that cannot be
	// turned into fusion positions.
	ErrInvalidEntry = errors.New("grac: invalid synizesis entry")

	// ErrEmptyTable is returned when synizesis data holds no entry.
	ErrEmptyTable = errors.New("grac: empty synizesis table")
)

// PositionError describes an out-of-range stress position.
type PositionError struct {
	Word      string
	Position  int // requested, counted from the end
	Syllables int // syllables in Word
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("grac: position %d out of range for %q (%d syllables)", e.Position, e.Word, e.Syllables)
}

func (e *PositionError) Unwrap() error { return ErrPositionOutOfRange }
