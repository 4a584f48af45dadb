// Package ranking selects the most frequent words and scales their font sizes.
//
// Ranking is a two-pass sort. The first pass orders by count so truncation
// keeps the highest counts; the second pass orders the survivors
// alphabetically, ignoring case, for display. Both orderings are plain
// comparison functions usable with slices.SortStableFunc.
package ranking
