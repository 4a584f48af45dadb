// Package tokenizer splits lines of text into words and separator runs.
//
// The tokenizer knows exactly two character classes: bytes that belong to a
// fixed separator set and bytes that do not. A token is a maximal run of one
// class, so repeatedly taking the next token from where the previous one ended
// partitions a line with nothing lost or duplicated. Every separator is ASCII,
// which keeps multi-byte UTF-8 sequences inside word tokens intact; positions
// and lengths are byte offsets.
//
// There is no notion of apostrophes, digits, or Unicode word boundaries here.
// Callers that need those belong elsewhere.
package tokenizer
