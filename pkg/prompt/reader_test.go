package prompt

import (
	"errors"
	"strings"
	"testing"
)

func TestReader_SelectIndex(t *testing.T) {
	options := []string{"a", "b", "c"}

	tests := []struct {
		input   string
		want    int
		invalid bool
	}{
		{"1\n", 0, false},
		{"2\n", 1, false},
		{"3\n", 2, false},
		{" 2 \n", 1, false},
		{"0\n", 0, true},
		{"-1\n", 0, true},
		{"4\n", 0, true},
		{"99\n", 0, true},
		{"abc\n", 0, true},
		{"\n", 0, true},
	}

	for _, tt := range tests {
		r := NewReader(strings.NewReader(tt.input), &strings.Builder{})
		got, err := r.SelectIndex("pick", options)
		if tt.invalid {
			if !errors.Is(err, ErrInvalidSelection) {
				t.Errorf("SelectIndex(%q) error = %v, want ErrInvalidSelection", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("SelectIndex(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("SelectIndex(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestReader_SelectIndexRendersMenu(t *testing.T) {
	var out strings.Builder
	r := NewReader(strings.NewReader("2\n"), &out)
	if _, err := r.SelectIndex("Training run", []string{"run_a", "run_b"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	menu := out.String()
	for _, want := range []string{"Training run", "1) run_a", "2) run_b", "[1-2]"} {
		if !strings.Contains(menu, want) {
			t.Errorf("menu output missing %q:\n%s", want, menu)
		}
	}
}

func TestReader_MultiSelect(t *testing.T) {
	r := NewReader(strings.NewReader("1, 3\n"), &strings.Builder{})
	got, err := r.MultiSelect("pick", []string{"a", "b", "c"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0] != 0 || got[1] != 2 {
		t.Errorf("MultiSelect = %v, want [0 2]", got)
	}
}

func TestReader_MultiSelectInvalidEntry(t *testing.T) {
	r := NewReader(strings.NewReader("1,x\n"), &strings.Builder{})
	if _, err := r.MultiSelect("pick", []string{"a", "b"}); !errors.Is(err, ErrInvalidSelection) {
		t.Errorf("error = %v, want ErrInvalidSelection", err)
	}
}

func TestReader_Confirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"yes\n", true},
		{"Y\n", true},
		{"n\n", false},
		{"no\n", false},
		{"\n", false},
		{"whatever\n", false},
	}

	for _, tt := range tests {
		r := NewReader(strings.NewReader(tt.input), &strings.Builder{})
		got, err := r.Confirm("sure?")
		if err != nil {
			t.Errorf("Confirm(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestReader_Input(t *testing.T) {
	r := NewReader(strings.NewReader("  pick_place  \n"), &strings.Builder{})
	got, err := r.Input("Dataset", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "pick_place" {
		t.Errorf("Input = %q, want %q", got, "pick_place")
	}
}

func TestScript_ConsumesAnswersInOrder(t *testing.T) {
	s := NewScript(1, "foo", true)

	idx, err := s.SelectIndex("run", []string{"a", "b"})
	if err != nil || idx != 1 {
		t.Fatalf("SelectIndex = %d, %v", idx, err)
	}
	text, err := s.Input("name", "")
	if err != nil || text != "foo" {
		t.Fatalf("Input = %q, %v", text, err)
	}
	ok, err := s.Confirm("sure?")
	if err != nil || !ok {
		t.Fatalf("Confirm = %v, %v", ok, err)
	}
	if len(s.Calls) != 3 {
		t.Errorf("Calls = %v, want 3 entries", s.Calls)
	}
}

func TestScript_OutOfRangeIndex(t *testing.T) {
	s := NewScript(5)
	if _, err := s.SelectIndex("run", []string{"a", "b"}); !errors.Is(err, ErrInvalidSelection) {
		t.Errorf("error = %v, want ErrInvalidSelection", err)
	}
}
