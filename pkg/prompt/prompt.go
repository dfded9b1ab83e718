// Package prompt provides interactive selection for the soarm CLI.
//
// The resolver logic never talks to a terminal directly; it takes a
// Prompter so tests can script the answers.
package prompt

import "errors"

// ErrInvalidSelection is returned when a typed menu answer is not a
// number or falls outside the menu range. There is no retry: the caller
// reports it and the user re-runs the command.
var ErrInvalidSelection = errors.New("invalid selection")

// Prompter collects user choices. SelectIndex and MultiSelect return
// zero-based indexes into the options slice.
type Prompter interface {
	SelectIndex(title string, options []string) (int, error)
	MultiSelect(title string, options []string) ([]int, error)
	Input(title, placeholder string) (string, error)
	Confirm(title string) (bool, error)
}
