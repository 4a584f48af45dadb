package tokenizer

// Separators is an immutable set of single-byte separator characters.
type Separators struct {
	set [256]bool
}

// DefaultChars lists the separator characters of the default set.
const DefaultChars = " ,;.:)(-[]"

// Default is the separator set used for tag clouds.
var Default = NewSeparators(DefaultChars)

// NewSeparators builds a set from the bytes of chars.
func NewSeparators(chars string) Separators {
	var s Separators
	for i := 0; i < len(chars); i++ {
		s.set[chars[i]] = true
	}
	return s
}

// Contains reports whether b is a separator.
func (s Separators) Contains(b byte) bool {
	return s.set[b]
}

// IsSeparatorToken reports whether tok is a separator run. Tokens are
// single-class, so checking the first byte is enough.
func (s Separators) IsSeparatorToken(tok string) bool {
	return tok != "" && s.set[tok[0]]
}
