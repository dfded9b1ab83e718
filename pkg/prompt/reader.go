package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Reader implements Prompter over plain line-based I/O: it prints a
// numbered menu and reads a 1-based answer. Used when stdout is not a
// terminal, and in tests. A non-numeric or out-of-range answer is
// terminal (ErrInvalidSelection); the user re-runs the command.
type Reader struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewReader creates a line-based prompter reading from in and writing
// menus to out.
func NewReader(in io.Reader, out io.Writer) *Reader {
	return &Reader{in: bufio.NewScanner(in), out: out}
}

func (r *Reader) SelectIndex(title string, options []string) (int, error) {
	fmt.Fprintln(r.out, title)
	for i, o := range options {
		fmt.Fprintf(r.out, "  %d) %s\n", i+1, o)
	}
	fmt.Fprintf(r.out, "Select [1-%d]: ", len(options))

	line, err := r.readLine()
	if err != nil {
		return 0, err
	}
	return parseIndex(line, len(options))
}

func (r *Reader) MultiSelect(title string, options []string) ([]int, error) {
	fmt.Fprintln(r.out, title)
	for i, o := range options {
		fmt.Fprintf(r.out, "  %d) %s\n", i+1, o)
	}
	fmt.Fprintf(r.out, "Select one or more, comma separated [1-%d]: ", len(options))

	line, err := r.readLine()
	if err != nil {
		return nil, err
	}

	var idxs []int
	for _, field := range strings.Split(line, ",") {
		idx, err := parseIndex(field, len(options))
		if err != nil {
			return nil, err
		}
		idxs = append(idxs, idx)
	}
	return idxs, nil
}

func (r *Reader) Input(title, placeholder string) (string, error) {
	if placeholder != "" {
		fmt.Fprintf(r.out, "%s [%s]: ", title, placeholder)
	} else {
		fmt.Fprintf(r.out, "%s: ", title)
	}
	return r.readLine()
}

func (r *Reader) Confirm(title string) (bool, error) {
	fmt.Fprintf(r.out, "%s [y/N]: ", title)
	line, err := r.readLine()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func (r *Reader) readLine() (string, error) {
	if !r.in.Scan() {
		if err := r.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(r.in.Text()), nil
}

// parseIndex validates a typed 1-based menu answer against the option
// count and converts it to a zero-based index.
func parseIndex(input string, count int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidSelection, input)
	}
	if n < 1 || n > count {
		return 0, fmt.Errorf("%w: %d is outside 1-%d", ErrInvalidSelection, n, count)
	}
	return n - 1, nil
}
