package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// ErrInputClosed means the input stream ended; no further choices can be
// collected and the session should wind down.
var ErrInputClosed = errors.New("input stream closed")

// Prompter collects validated free-text answers. All blocking on human
// input happens here.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// ReadLine prints the message and returns the next input line.
func (p *Prompter) ReadLine(message string) (string, error) {
	fmt.Fprint(p.out, message)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", ErrInputClosed
	}
	return p.scanner.Text(), nil
}

// PromptYesNo asks a binary question, re-prompting until the answer parses.
func (p *Prompter) PromptYesNo(message string) (bool, error) {
	for {
		input, err := p.ReadLine(message)
		if err != nil {
			return false, err
		}
		answer, parseErr := ParseYesNo(input)
		if parseErr != nil {
			fmt.Fprintln(p.out, parseErr)
			continue
		}
		return answer, nil
	}
}
