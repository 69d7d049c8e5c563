package review

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// Prompter is the interaction surface the review flows need from whatever UI
// hosts them. It replaces blocking confirm/prompt/alert dialogs so the
// workflow logic stays headless and testable.
type Prompter interface {
	// Confirm asks a yes/no question and reports the reviewer's answer
	Confirm(ctx context.Context, message string) (bool, error)
	// Prompt asks for a line of free text; empty means the reviewer declined
	Prompt(ctx context.Context, message string) (string, error)
	// Alert surfaces a message the reviewer must see
	Alert(ctx context.Context, message string)
}

// StdinPrompter implements Prompter over a terminal
type StdinPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewStdinPrompter(in io.Reader, out io.Writer) *StdinPrompter {
	return &StdinPrompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (p *StdinPrompter) Confirm(ctx context.Context, message string) (bool, error) {
	fmt.Fprintf(p.out, "%s [y/N]: ", message)
	line, err := p.in.ReadString('\n')
	if err != nil {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

func (p *StdinPrompter) Prompt(ctx context.Context, message string) (string, error) {
	fmt.Fprintf(p.out, "%s ", message)
	line, err := p.in.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (p *StdinPrompter) Alert(ctx context.Context, message string) {
	fmt.Fprintf(p.out, "!! %s\n", message)
}
