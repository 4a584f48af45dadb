package tokenizer

import "fmt"

// NextToken returns the maximal single-class run of text beginning at start,
// along with its length in bytes. start must satisfy 0 <= start < len(text).
func NextToken(text string, start int, seps Separators) (string, int) {
	if start < 0 || start >= len(text) {
		panic(fmt.Sprintf("tokenizer: start %d out of range [0,%d)", start, len(text)))
	}
	separator := seps.Contains(text[start])
	end := start + 1
	for end < len(text) && seps.Contains(text[end]) == separator {
		end++
	}
	return text[start:end], end - start
}

// Split partitions text into consecutive tokens.
func Split(text string, seps Separators) []string {
	var tokens []string
	for pos := 0; pos < len(text); {
		tok, n := NextToken(text, pos, seps)
		tokens = append(tokens, tok)
		pos += n
	}
	return tokens
}

// Words returns only the word tokens of text, in order.
func Words(text string, seps Separators) []string {
	var words []string
	for pos := 0; pos < len(text); {
		tok, n := NextToken(text, pos, seps)
		if !seps.IsSeparatorToken(tok) {
			words = append(words, tok)
		}
		pos += n
	}
	return words
}
