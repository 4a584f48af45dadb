package ranking

import (
	"cmp"
	"slices"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"tagcloud/internal/wordcount"
)

const (
	// MaxSizePx is the font-size span added on top of MinSizePx for the
	// most frequent word.
	MaxSizePx = 48
	// MinSizePx is the smallest font size handed out.
	MinSizePx = 10
)

// Entry is a ranked word.
type Entry struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Sized is a ranked word with its computed font size in pixels.
type Sized struct {
	Entry
	FontSize int `json:"font_size"`
}

// Source supplies word counts in a stable collection order.
type Source interface {
	Entries() []wordcount.WordCount
}

// ByCountDesc orders entries by count, highest first.
func ByCountDesc(a, b Entry) int {
	return cmp.Compare(b.Count, a.Count)
}

// ByWordFold orders entries alphabetically by their lowercase form. It
// builds a caser per call; Top folds each word once instead.
func ByWordFold(a, b Entry) int {
	lower := cases.Lower(language.Und)
	return cmp.Compare(lower.String(a.Word), lower.String(b.Word))
}

// Top returns the n most frequent words of src in alphabetical order.
// Words tied at the cutoff are kept in collection order, so the earliest
// ones win. n <= 0 yields an empty result.
func Top(src Source, n int) []Entry {
	if src == nil || n <= 0 {
		return []Entry{}
	}
	counts := src.Entries()
	entries := make([]Entry, 0, len(counts))
	for _, wc := range counts {
		entries = append(entries, Entry{Word: wc.Word, Count: wc.Count})
	}

	slices.SortStableFunc(entries, ByCountDesc)
	if n > len(entries) {
		n = len(entries)
	}
	entries = slices.Clip(entries[:n])
	sortByWordFold(entries)
	return entries
}

type foldedEntry struct {
	key string
	Entry
}

// sortByWordFold is a stable sort equivalent to ByWordFold that lowercases
// every word exactly once.
func sortByWordFold(entries []Entry) {
	lower := cases.Lower(language.Und)
	folded := make([]foldedEntry, len(entries))
	for i, e := range entries {
		folded[i] = foldedEntry{key: lower.String(e.Word), Entry: e}
	}
	slices.SortStableFunc(folded, func(a, b foldedEntry) int {
		return cmp.Compare(a.key, b.key)
	})
	for i := range folded {
		entries[i] = folded[i].Entry
	}
}

// MaxCount returns the largest count in entries, or 0 when empty.
func MaxCount(entries []Entry) int {
	peak := 0
	for _, e := range entries {
		if e.Count > peak {
			peak = e.Count
		}
	}
	return peak
}

// FontSize scales count against peak into [MinSizePx, MinSizePx+MaxSizePx].
// peak must be positive.
func FontSize(count, peak int) int {
	return MaxSizePx*count/peak + MinSizePx
}

// Scale attaches a font size to every entry, preserving order.
func Scale(entries []Entry) []Sized {
	if len(entries) == 0 {
		return []Sized{}
	}
	peak := MaxCount(entries)
	out := make([]Sized, 0, len(entries))
	for _, e := range entries {
		out = append(out, Sized{Entry: e, FontSize: FontSize(e.Count, peak)})
	}
	return out
}
