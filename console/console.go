// Package console provides line-oriented prompt helpers.
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Console reads answers from in and writes prompts to out.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
}

var std = New(os.Stdin, os.Stdout)

// Prompt writes label and returns the trimmed answer line.
func (c *Console) Prompt(label string) (string, error) {
	if _, err := fmt.Fprintf(c.out, "%s: ", label); err != nil {
		return "", errors.Wrap(err, "cannot write prompt")
	}

	line, err := c.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", errors.Wrap(err, "cannot read answer")
	}
	return strings.TrimSpace(line), nil
}

// PromptDefault is like Prompt but substitutes def for a blank answer.
func (c *Console) PromptDefault(label, def string) (string, error) {
	answer, err := c.Prompt(fmt.Sprintf("%s [%s]", label, def))
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// Confirm asks a yes/no question; a blank answer yields def, anything
// starting with y or Y counts as yes.
func (c *Console) Confirm(label string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}

	answer, err := c.Prompt(fmt.Sprintf("%s (%s)", label, hint))
	if err != nil {
		return false, err
	}
	if answer == "" {
		return def, nil
	}
	return strings.HasPrefix(strings.ToLower(answer), "y"), nil
}

// Prompt asks on the process stdin/stdout.
func Prompt(label string) (string, error) {
	return std.Prompt(label)
}

// PromptDefault asks on the process stdin/stdout.
func PromptDefault(label, def string) (string, error) {
	return std.PromptDefault(label, def)
}

// Confirm asks on the process stdin/stdout.
func Confirm(label string, def bool) (bool, error) {
	return std.Confirm(label, def)
}
