package csvline

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"reflect"
)

const defaultBufferSize = 1 << 10 // 1024 bytes

// Reader decodes successive CSV records from a byte stream, one logical record per Read.
//
// A record ends at LF, CR or CRLF outside quotes; the terminator is consumed but not
// returned. Newlines inside quotes are field content, so one record may span several
// physical lines. Reader is not safe for concurrent use.
type Reader struct {
	src io.ByteScanner

	line     int
	records  int
	finished bool
	err      error
}

// NewReader creates a Reader that consumes CSV data from r. Sources that already implement
// io.ByteScanner (such as *bufio.Reader, *strings.Reader or *bytes.Reader) are used directly
// so that the caller's read cursor stays exact; anything else is wrapped in a bufio.Reader.
// A nil r, including a typed nil pointer, yields a Reader whose Read returns ErrInvalidArgument.
func NewReader(r io.Reader) *Reader {
	rd := &Reader{line: 1}
	if isNil(r) {
		return rd
	}
	switch src := r.(type) {
	case io.ByteScanner:
		rd.src = src
	default:
		rd.src = bufio.NewReaderSize(r, defaultBufferSize)
	}
	return rd
}

// ReadRecord reads exactly one record from src, leaving src positioned at the start of
// the next one. It returns ErrInvalidArgument when src is nil and io.EOF once src is exhausted.
func ReadRecord(src io.ByteScanner) ([]string, error) {
	if isNil(src) {
		return nil, ErrInvalidArgument
	}
	r := Reader{src: src, line: 1}
	return r.Read()
}

// Read parses the next CSV record. io.EOF signals that no more records remain; a final
// record without a terminator is returned once before io.EOF. After a source error the
// partially read record is lost, so Read keeps returning that error.
func (r *Reader) Read() ([]string, error) {
	if r == nil || r.src == nil {
		return nil, ErrInvalidArgument
	}
	if r.err != nil {
		return nil, r.err
	}
	if r.finished {
		return nil, io.EOF
	}

	var (
		p      fieldParser
		record []string
	)
	consumed := false
	prevCR := false

	for {
		b, err := r.src.ReadByte()
		if err != nil {
			if err != io.EOF {
				r.err = r.wrapError(err)
				return nil, r.err
			}
			r.finished = true
			if !consumed {
				return nil, io.EOF
			}
			// An unterminated trailing record is still a record.
			return r.finish(&p, record), nil
		}
		consumed = true

		if isNewline(b) {
			if !p.quoted() {
				if b == '\r' {
					if err := r.skipLF(); err != nil {
						r.err = r.wrapError(err)
						return nil, r.err
					}
				}
				r.line++
				return r.finish(&p, record), nil
			}
			if b == '\r' || !prevCR {
				r.line++
			}
		}
		prevCR = b == '\r'

		if field, done := p.step(b); done {
			record = append(record, field)
		}
	}
}

// ReadAll exhausts the reader, repeatedly calling Read to collect records until io.EOF
// and returning the accumulated records slice plus the first non-EOF error encountered.
func (r *Reader) ReadAll() ([][]string, error) {
	var records [][]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
}

// Records returns an iterator over the remaining records. Iteration stops at io.EOF, or
// after yielding the first other error.
func (r *Reader) Records() iter.Seq2[[]string, error] {
	return func(yield func([]string, error) bool) {
		for {
			record, err := r.Read()
			if err == io.EOF {
				return
			}
			if !yield(record, err) || err != nil {
				return
			}
		}
	}
}

// Line reports the physical line the reader is positioned on, counting newlines inside
// quoted fields.
func (r *Reader) Line() int {
	return r.line
}

// RecordCount reports how many records Read has returned so far.
func (r *Reader) RecordCount() int {
	return r.records
}

func (r *Reader) finish(p *fieldParser, record []string) []string {
	r.records++
	return append(record, p.take())
}

// skipLF consumes the byte after a CR when it is LF so CRLF ends the record once.
func (r *Reader) skipLF() error {
	b, err := r.src.ReadByte()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return err
	}
	if b != '\n' {
		return r.src.UnreadByte()
	}
	return nil
}

// isNil reports whether v is nil or an interface holding a nil pointer.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// wrapError attaches the current line and record number to a source error.
func (r *Reader) wrapError(err error) error {
	return fmt.Errorf("csvline: read record %d at line %d: %w", r.records+1, r.line, err)
}
