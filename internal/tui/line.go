package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// LinePrompter reads answers line by line. It is used for pipes, files and
// terminals where the full-screen input is unwanted.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter constructs a [LinePrompter] reading from in and writing
// labels to out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// Prompt implements [Prompter]. The label is printed again after every blank
// line. A final line without a trailing newline is accepted.
func (p *LinePrompter) Prompt(ctx context.Context, label string) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		if _, err := fmt.Fprint(p.out, label); err != nil {
			return "", err
		}

		line, err := p.in.ReadString('\n')
		if answer := strings.TrimSpace(line); answer != "" {
			return answer, nil
		}

		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		if err != nil {
			return "", fmt.Errorf("read answer: %w", err)
		}
	}
}
