package cloud

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInputUnreadable  = errors.New("input unreadable")
	ErrInvalidCount     = errors.New("invalid word count")
	ErrOutputUnwritable = errors.New("output unwritable")
	ErrOutputLocked     = errors.New("output locked")
	ErrRelease          = errors.New("release failed")
)

// Wrap builds an error message that includes operation context while tagging
// it with marker for later classification. The marker should be one of the
// exported sentinel errors above.
func Wrap(marker error, operation, subject string, err error) error {
	detail := buildDetail(operation, subject)
	if marker == nil {
		marker = ErrInputUnreadable
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Hint returns a short operator-facing next step for err.
func Hint(err error) string {
	switch {
	case errors.Is(err, ErrInvalidCount):
		return "pass a positive whole number of words"
	case errors.Is(err, ErrInputUnreadable):
		return "check that the input file exists and is readable"
	case errors.Is(err, ErrOutputLocked):
		return "another run is writing the same document; wait for it or pick another output name"
	case errors.Is(err, ErrOutputUnwritable):
		return "check that the output directory exists and is writable"
	case errors.Is(err, ErrRelease):
		return "the file system reported an error while closing a file; verify the output"
	default:
		return "check logs for details"
	}
}

// ParseCount converts operator input into a positive word count.
func ParseCount(text string) (int, error) {
	trimmed := strings.TrimSpace(text)
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, Wrap(ErrInvalidCount, "parse count", strconv.Quote(trimmed), err)
	}
	if n <= 0 {
		return 0, Wrap(ErrInvalidCount, "parse count", fmt.Sprintf("%d is not positive", n), nil)
	}
	return n, nil
}

// joinRelease appends a close failure to the primary error, if any.
func joinRelease(primary, release error) error {
	if release == nil {
		return primary
	}
	if primary == nil {
		return release
	}
	return errors.Join(primary, release)
}

func buildDetail(operation, subject string) string {
	parts := make([]string, 0, 2)
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if subject = strings.TrimSpace(subject); subject != "" {
		parts = append(parts, subject)
	}
	if len(parts) == 0 {
		return "tag cloud failure"
	}
	return strings.Join(parts, ": ")
}
