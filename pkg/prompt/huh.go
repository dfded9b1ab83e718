package prompt

import "github.com/charmbracelet/huh"

// Huh implements Prompter with charmbracelet/huh forms.
type Huh struct{}

// New returns the interactive prompter used by the CLI.
func New() *Huh {
	return &Huh{}
}

func (h *Huh) SelectIndex(title string, options []string) (int, error) {
	opts := make([]huh.Option[int], 0, len(options))
	for i, o := range options {
		opts = append(opts, huh.NewOption(o, i))
	}

	var idx int
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title(title).
				Options(opts...).
				Value(&idx),
		),
	)
	if err := form.Run(); err != nil {
		return 0, err
	}
	return idx, nil
}

func (h *Huh) MultiSelect(title string, options []string) ([]int, error) {
	opts := make([]huh.Option[int], 0, len(options))
	for i, o := range options {
		opts = append(opts, huh.NewOption(o, i))
	}

	var idxs []int
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[int]().
				Title(title).
				Options(opts...).
				Value(&idxs),
		),
	)
	if err := form.Run(); err != nil {
		return nil, err
	}
	return idxs, nil
}

func (h *Huh) Input(title, placeholder string) (string, error) {
	var s string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Placeholder(placeholder).
				Value(&s),
		),
	)
	if err := form.Run(); err != nil {
		return "", err
	}
	return s, nil
}

func (h *Huh) Confirm(title string) (bool, error) {
	var ok bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(&ok),
		),
	)
	if err := form.Run(); err != nil {
		return false, err
	}
	return ok, nil
}
