package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"tagcloud/internal/cloud"
)

const ansiReset = "\x1b[0m"

// mark tags one summary line; color is applied to the whole line on a terminal.
type mark struct {
	tag   string
	color string
}

var (
	markDone  = mark{tag: "OK", color: "\x1b[32m"}
	markShort = mark{tag: "WARN", color: "\x1b[33m"}
	markNote  = mark{tag: "INFO", color: "\x1b[34m"}
)

const summaryLabelWidth = 12

func summaryLine(label string, m mark, detail string, colorize bool) string {
	line := fmt.Sprintf("  %-*s [%s] %s", summaryLabelWidth, label+":", m.tag, detail)
	if colorize {
		return m.color + line + ansiReset
	}
	return line
}

// writeGenerateSummary reports how many words made it into the cloud, where
// the document went, and what the input contained. A cloud with fewer words
// than requested is flagged.
func writeGenerateSummary(out io.Writer, result *cloud.Result, colorize bool) {
	shown := len(result.Entries)
	status, detail := markDone, fmt.Sprintf("%d of %d words", shown, result.Requested)
	switch {
	case shown == 0:
		status, detail = markShort, "no words found"
	case shown < result.Requested:
		status = markShort
	}
	fmt.Fprintln(out, summaryLine("Tag cloud", status, detail, colorize))
	fmt.Fprintln(out, summaryLine("Output", markNote,
		fmt.Sprintf("%s (%s)", result.OutputPath, humanize.Bytes(uint64(result.OutputBytes))), colorize))
	fmt.Fprintln(out, summaryLine("Input", markNote,
		fmt.Sprintf("%s lines, %s words, %s distinct",
			humanize.Comma(int64(result.Lines)),
			humanize.Comma(int64(result.Words)),
			humanize.Comma(int64(result.Distinct))), colorize))
}

// isTerminal reports whether out is an interactive terminal.
func isTerminal(out io.Writer) bool {
	file, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
