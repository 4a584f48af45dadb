package wordcount

// WordCount pairs a word with its number of occurrences.
type WordCount struct {
	Word  string
	Count int
}

// Frequencies is a frozen word-to-count mapping. The zero value is empty.
type Frequencies struct {
	counts map[string]int
	order  []string
	total  int
	lines  int
}

// Len returns the number of distinct words.
func (f *Frequencies) Len() int {
	if f == nil {
		return 0
	}
	return len(f.order)
}

// Total returns the sum of all counts.
func (f *Frequencies) Total() int {
	if f == nil {
		return 0
	}
	return f.total
}

// Lines returns how many lines were consumed while counting.
func (f *Frequencies) Lines() int {
	if f == nil {
		return 0
	}
	return f.lines
}

// Count returns the occurrences of word and whether it was seen at all.
func (f *Frequencies) Count(word string) (int, bool) {
	if f == nil {
		return 0, false
	}
	n, ok := f.counts[word]
	return n, ok
}

// Entries returns a copy of every word and its count, ordered by the
// position of each word's first appearance in the input.
func (f *Frequencies) Entries() []WordCount {
	if f == nil {
		return nil
	}
	out := make([]WordCount, 0, len(f.order))
	for _, word := range f.order {
		out = append(out, WordCount{Word: word, Count: f.counts[word]})
	}
	return out
}
