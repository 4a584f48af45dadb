package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	promptInput  = "Please enter the name of your file:"
	promptCount  = "Please enter the number of words you want:"
	promptOutput = "What do you want the name of your output file to be?"
)

// prompter asks one question per line. A single buffered reader is shared
// across questions so piped answers are not lost between prompts.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

func (p *prompter) ask(question string) (string, error) {
	fmt.Fprintln(p.out, question)
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read answer: %w", err)
	}
	answer := strings.TrimSpace(line)
	if answer == "" && errors.Is(err, io.EOF) {
		return "", fmt.Errorf("no answer to %q: input closed", question)
	}
	return answer, nil
}
