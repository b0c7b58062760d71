// Package prompt asks questions on an interactive terminal or any
// reader/writer pair.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrNoInput is returned when input ends before an answer is read.
var ErrNoInput = errors.New("no input")

// Prompter writes questions to Out and reads answers from In.
type Prompter struct {
	in     io.Reader
	out    io.Writer
	reader *bufio.Reader
}

// New creates a Prompter. A nil in or out defaults to os.Stdin or os.Stdout.
func New(in io.Reader, out io.Writer) *Prompter {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Prompter{
		in:     in,
		out:    out,
		reader: bufio.NewReader(in),
	}
}

// Confirm asks a yes/no question. Only "y" (any case, surrounding
// whitespace ignored) counts as yes.
func (p *Prompter) Confirm(question string) (bool, error) {
	answer, err := p.ask(question + " (y/N) ")
	if err != nil {
		return false, err
	}
	return strings.ToLower(answer) == "y", nil
}

// Ask asks a free-form question and returns the trimmed answer.
func (p *Prompter) Ask(question string) (string, error) {
	return p.ask(question + " ")
}

// Secret asks a question without echoing the answer when In is a terminal.
// Other readers fall back to reading a plain line.
func (p *Prompter) Secret(question string) (string, error) {
	f, ok := p.in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return p.ask(question + " ")
	}

	if _, err := fmt.Fprint(p.out, question+" "); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}
	secret, err := term.ReadPassword(int(f.Fd()))
	fmt.Fprintln(p.out)
	if err != nil {
		return "", fmt.Errorf("failed to read secret: %w", err)
	}
	return strings.TrimSpace(string(secret)), nil
}

func (p *Prompter) ask(prompt string) (string, error) {
	if _, err := fmt.Fprint(p.out, prompt); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	line, err := p.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read answer: %w", err)
		}
		if line == "" {
			return "", ErrNoInput
		}
	}
	return strings.TrimSpace(line), nil
}
