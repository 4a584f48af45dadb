// Package wordcount accumulates word frequencies from tokenized text.
//
// A Counter is fed lines (or a whole reader) and, once Finish is called,
// hands back a Frequencies value that can only be read. Keys are the exact
// surface form of each word; "The" and "the" are counted separately.
package wordcount
