package models

import "fmt"

// Exercise is one normalized exercise row from the program sheet.
// Built once during extraction and never mutated afterwards.
type Exercise struct {
	Name        string
	WarmupCount int
	WorkingSets int
	RepLower    *int // lower bound of the rep range; nil when unparseable

	RIR1 string
	RIR2 string
	Rest string
	Sub1 string
	Sub2 string

	// VideoLink is the hyperlink attached to the exercise-name cell, if any.
	VideoLink string

	// Notes is the assembled free-text block carried into the Hevy payload.
	Notes string
}

// Routine is one trainable session: a day within a week, submitted as a
// single unit to Hevy.
type Routine struct {
	Week      int
	Day       string
	Exercises []Exercise
}

// Title returns the routine title as it appears in Hevy.
func (r Routine) Title() string {
	return fmt.Sprintf("Week %d - %s", r.Week, r.Day)
}
