// Package cli holds the interactive prompts used by amp-lookup commands.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

var errEmptyInput = errors.New("you must enter something")

// Prompter asks questions on a terminal. The zero value uses stdin and
// stdout.
type Prompter struct {
	In  io.ReadCloser
	Out io.WriteCloser
}

func (p Prompter) streams() (io.ReadCloser, io.WriteCloser) {
	in, out := p.In, p.Out
	if in == nil {
		in = os.Stdin
	}

	if out == nil {
		out = os.Stdout
	}

	return in, out
}

// Int64 prompts until the user enters a base-10 integer.
func (p Prompter) Int64(label string) (int64, error) {
	in, out := p.streams()

	prompt := promptui.Prompt{
		Label: label,
		Validate: func(s string) error {
			_, err := ParseInt64(s)

			return err
		},
		Stdin:  in,
		Stdout: out,
	}

	txt, err := prompt.Run()
	if err != nil {
		return 0, err
	}

	return ParseInt64(txt)
}

// Confirm asks a yes/no question. An abort (answering no) is false, nil.
func (p Prompter) Confirm(label string) (bool, error) {
	in, out := p.streams()

	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Stdin:     in,
		Stdout:    out,
	}

	if _, err := prompt.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

// ParseInt64 parses a trimmed base-10 integer, with prompt-friendly errors.
func ParseInt64(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errEmptyInput
	}

	val, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer: %w", err)
	}

	return val, nil
}
