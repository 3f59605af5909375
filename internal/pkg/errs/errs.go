package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

// New returns an error carrying a captured stack trace.
func New(msg string) error {
	return cr.New(msg)
}

// Wrap annotates err with msg. Returns nil when err is nil so call
// sites can wrap unconditionally.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark attaches markErr to err so errors.Is(err, markErr) holds while
// the original message and stack stay intact.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// ExtractStackLines renders err verbosely and returns at most maxLines
// lines, for structured log fields where a full dump is too noisy.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	lines := strings.Split(fmt.Sprintf("%+v", err), "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
