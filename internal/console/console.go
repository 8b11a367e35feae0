// Package console handles the interactive prompts for input file paths.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// PathPrompt is printed before each path is read.
const PathPrompt = "Enter the path to the CSV file:"

// ErrNoInput is returned when the input ends or a blank line is entered
// where a path was expected.
var ErrNoInput = errors.New("no file path entered")

// Console reads answers from in and writes prompts to out.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Console over the given streams.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// PromptPath asks for one file path and returns it with surrounding
// whitespace removed.
func (c *Console) PromptPath() (string, error) {
	if _, err := fmt.Fprintln(c.out, PathPrompt); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	line, err := c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input path: %w", err)
	}

	path := strings.TrimSpace(line)
	if path == "" {
		return "", ErrNoInput
	}
	return path, nil
}

// PromptPaths asks for the left and right file paths in order.
func (c *Console) PromptPaths() (left, right string, err error) {
	if left, err = c.PromptPath(); err != nil {
		return "", "", err
	}
	if right, err = c.PromptPath(); err != nil {
		return "", "", err
	}
	return left, right, nil
}
