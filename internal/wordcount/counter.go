package wordcount

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"tagcloud/internal/tokenizer"
)

// ctxCheckInterval is how many lines Count reads between context checks.
const ctxCheckInterval = 1024

// Counter builds Frequencies one line at a time. It has a single writer and
// a single phase: after Finish it rejects further input.
type Counter struct {
	seps     tokenizer.Separators
	freq     *Frequencies
	finished bool
}

// NewCounter returns an empty counter using seps to classify tokens.
func NewCounter(seps tokenizer.Separators) *Counter {
	return &Counter{
		seps: seps,
		freq: &Frequencies{counts: make(map[string]int)},
	}
}

// AddLine tokenizes line (without its terminator) and counts its words.
// Calling AddLine after Finish panics.
func (c *Counter) AddLine(line string) {
	if c.finished {
		panic("wordcount: AddLine called after Finish")
	}
	f := c.freq
	f.lines++
	for pos := 0; pos < len(line); {
		tok, n := tokenizer.NextToken(line, pos, c.seps)
		pos += n
		if _, ok := f.counts[tok]; ok {
			f.counts[tok]++
			f.total++
			continue
		}
		if c.seps.IsSeparatorToken(tok) {
			continue
		}
		f.counts[tok] = 1
		f.order = append(f.order, tok)
		f.total++
	}
}

// Finish freezes the counter and returns the accumulated frequencies.
func (c *Counter) Finish() *Frequencies {
	c.finished = true
	return c.freq
}

// Count drains r line by line and returns the frozen frequencies. A line ends
// at '\n', at '\r', or at the pair "\r\n". A final line without a terminator
// is counted when it is not empty. Lines have no length limit.
func Count(ctx context.Context, r io.Reader, seps tokenizer.Separators) (*Frequencies, error) {
	counter := NewCounter(seps)
	reader := bufio.NewReader(r)
	for n := 0; ; n++ {
		if n%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		chunk, err := reader.ReadString('\n')
		for _, line := range splitLines(chunk) {
			counter.AddLine(line)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read line %d: %w", counter.freq.lines+1, err)
		}
	}
	return counter.Finish(), nil
}

// CountLines counts words across already-split lines.
func CountLines(lines []string, seps tokenizer.Separators) *Frequencies {
	counter := NewCounter(seps)
	for _, line := range lines {
		counter.AddLine(line)
	}
	return counter.Finish()
}

// splitLines breaks a chunk read up to '\n' (or EOF) into lines, treating a
// lone '\r' as a terminator as well.
func splitLines(chunk string) []string {
	if chunk == "" {
		return nil
	}
	body := strings.TrimSuffix(chunk, "\n")
	lines := strings.Split(body, "\r")
	if strings.HasSuffix(body, "\r") {
		// "\r\n" or a trailing lone '\r' ends the previous line.
		lines = lines[:len(lines)-1]
	}
	return lines
}
