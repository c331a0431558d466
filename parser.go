package csvline

import (
	"errors"
	"fmt"
	"strings"
)

const (
	comma = ','
	quote = '"'
)

var (
	// ErrInvalidArgument is returned when Join receives a nil field slice or a stream decoder has no source.
	ErrInvalidArgument = errors.New("csvline: invalid argument")
	// ErrInvalidInput is returned when Split finds a raw CR or LF outside a quoted field.
	ErrInvalidInput = errors.New("csvline: newline outside quoted field")
)

// ParseError contains location information for CSV parsing errors.
type ParseError struct {
	Line   int
	Column int
	Err    error
}

// Error formats the parse error message with the stored line, column, and Err values.
func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("csvline: parse error on line %d, column %d: %v", e.Line, e.Column, e.Err)
}

// Unwrap returns the underlying Err so ParseError participates in errors.Unwrap.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// state is the position of the field parser within the current field.
type state uint8

const (
	stateStart state = iota
	stateInQuotes
	stateClosingOrEscapingQuote
	stateUnquoted
)

func (s state) String() string {
	switch s {
	case stateStart:
		return "Start"
	case stateInQuotes:
		return "InQuotes"
	case stateClosingOrEscapingQuote:
		return "ClosingOrEscapingQuote"
	case stateUnquoted:
		return "Unquoted"
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// fieldParser is the automaton shared by Split and Reader. Raw CR and LF outside
// quotes never reach step: the caller decides whether they are an error or a record end.
type fieldParser struct {
	st  state
	buf strings.Builder
}

// quoted reports whether the parser is inside an open quoted region.
func (p *fieldParser) quoted() bool {
	return p.st == stateInQuotes
}

// step consumes b and returns the completed field when b is a separating comma.
func (p *fieldParser) step(b byte) (field string, done bool) {
	switch p.st {
	case stateStart:
		switch b {
		case comma:
			return "", true
		case quote:
			p.st = stateInQuotes
		default:
			p.buf.WriteByte(b)
			p.st = stateUnquoted
		}
	case stateInQuotes:
		if b == quote {
			p.st = stateClosingOrEscapingQuote
			return "", false
		}
		p.buf.WriteByte(b)
	case stateClosingOrEscapingQuote:
		switch b {
		case quote:
			// Doubled quote: keep one and reopen the quoted run.
			p.buf.WriteByte(quote)
			p.st = stateInQuotes
		case comma:
			return p.take(), true
		default:
			// Content after a closing quote is literal for the rest of the field.
			p.buf.WriteByte(b)
			p.st = stateUnquoted
		}
	case stateUnquoted:
		if b == comma {
			return p.take(), true
		}
		p.buf.WriteByte(b)
	}
	return "", false
}

// take returns the buffered field and rearms the parser for the next one.
func (p *fieldParser) take() string {
	field := p.buf.String()
	p.buf.Reset()
	p.st = stateStart
	return field
}

func isNewline(b byte) bool {
	return b == '\r' || b == '\n'
}
