package csvline

import (
	"iter"
	"strings"
)

// Split parses line as a single CSV record and returns its fields.
//
// The whole input is one record: a raw CR or LF is only legal inside a quoted field,
// anywhere else Split stops and returns a *ParseError wrapping ErrInvalidInput with
// no partial result. The result always holds one more field than there are commas
// outside quotes, so Split("") is [""] and Split(",") is ["", ""].
func Split(line string) ([]string, error) {
	fields := make([]string, 0, strings.Count(line, ",")+1)
	for field, err := range Fields(line) {
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
	return fields, nil
}

// Fields returns a lazy sequence over the fields of line using the same rules as Split.
// On a raw newline outside quotes it yields the fields decoded so far, then a single
// non-nil error, and stops. Each range over the sequence parses line from the start.
func Fields(line string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		var p fieldParser
		lineNo, column := 1, 0
		prevCR := false

		for i := 0; i < len(line); i++ {
			b := line[i]
			column++

			if isNewline(b) {
				if !p.quoted() {
					yield("", &ParseError{Line: lineNo, Column: column, Err: ErrInvalidInput})
					return
				}
				// Quoted newlines are content; CRLF counts as one line break.
				if b == '\r' || !prevCR {
					lineNo++
				}
				column = 0
			}
			prevCR = b == '\r'

			if field, done := p.step(b); done {
				if !yield(field, nil) {
					return
				}
			}
		}
		yield(p.take(), nil)
	}
}
