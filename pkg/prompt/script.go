package prompt

import (
	"fmt"
	"io"
)

// Script implements Prompter with pre-recorded answers, in the order
// the prompts arrive. Tests use it to drive selection flows without a
// terminal.
type Script struct {
	answers []any
	next    int
	Calls   []string
}

// NewScript creates a scripted prompter. Answers are consumed in order:
// int for SelectIndex, []int for MultiSelect, string for Input, bool
// for Confirm.
func NewScript(answers ...any) *Script {
	return &Script{answers: answers}
}

func (s *Script) take(call string) (any, error) {
	s.Calls = append(s.Calls, call)
	if s.next >= len(s.answers) {
		return nil, io.EOF
	}
	a := s.answers[s.next]
	s.next++
	return a, nil
}

func (s *Script) SelectIndex(title string, options []string) (int, error) {
	a, err := s.take("SelectIndex: " + title)
	if err != nil {
		return 0, err
	}
	idx, ok := a.(int)
	if !ok {
		return 0, fmt.Errorf("scripted answer for %q is %T, want int", title, a)
	}
	if idx < 0 || idx >= len(options) {
		return 0, fmt.Errorf("%w: scripted index %d, have %d options", ErrInvalidSelection, idx, len(options))
	}
	return idx, nil
}

func (s *Script) MultiSelect(title string, options []string) ([]int, error) {
	a, err := s.take("MultiSelect: " + title)
	if err != nil {
		return nil, err
	}
	idxs, ok := a.([]int)
	if !ok {
		return nil, fmt.Errorf("scripted answer for %q is %T, want []int", title, a)
	}
	return idxs, nil
}

func (s *Script) Input(title, placeholder string) (string, error) {
	a, err := s.take("Input: " + title)
	if err != nil {
		return "", err
	}
	str, ok := a.(string)
	if !ok {
		return "", fmt.Errorf("scripted answer for %q is %T, want string", title, a)
	}
	return str, nil
}

func (s *Script) Confirm(title string) (bool, error) {
	a, err := s.take("Confirm: " + title)
	if err != nil {
		return false, err
	}
	b, ok := a.(bool)
	if !ok {
		return false, fmt.Errorf("scripted answer for %q is %T, want bool", title, a)
	}
	return b, nil
}
