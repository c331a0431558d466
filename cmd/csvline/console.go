package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/oleg578/csvline"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
	"gopkg.in/yaml.v3"
)

// console carries the input and output streams plus their configured encodings.
type console struct {
	in     io.Reader
	out    io.Writer
	format string
	enc    encoding.Encoding // nil when input is already UTF-8
}

func newConsole(in io.Reader, out io.Writer, format, encodingName string) (*console, error) {
	c := &console{in: in, out: out, format: format}

	switch strings.ToLower(encodingName) {
	case "", "utf-8", "utf8":
		// Leave bytes untouched so invalid UTF-8 survives a round trip.
	default:
		enc, err := htmlindex.Get(encodingName)
		if err != nil {
			return nil, fmt.Errorf("unknown encoding %q: %w", encodingName, err)
		}
		c.enc = enc
	}
	return c, nil
}

// reader returns r decoding the configured input encoding to UTF-8.
func (c *console) reader(r io.Reader) io.Reader {
	if c.enc == nil {
		return r
	}
	return transform.NewReader(r, c.enc.NewDecoder())
}

// decodeString converts a command-line argument from the input encoding to UTF-8.
func (c *console) decodeString(s string) (string, error) {
	if c.enc == nil {
		return s, nil
	}
	out, err := c.enc.NewDecoder().String(s)
	if err != nil {
		return "", fmt.Errorf("decode argument: %w", err)
	}
	return out, nil
}

// recordWriter prints decoded records in one of the supported formats.
type recordWriter interface {
	Write(record []string) error
	Close() error
}

func (c *console) recordWriter() recordWriter {
	switch c.format {
	case "json":
		return jsonWriter{enc: json.NewEncoder(c.out)}
	case "yaml":
		return yamlWriter{enc: yaml.NewEncoder(c.out)}
	case "lines":
		return &linesWriter{w: c.out}
	case "csv":
		return &csvWriter{w: c.out}
	default:
		return textWriter{w: c.out}
	}
}

// textWriter prints each record as a Go-quoted list, one record per line.
type textWriter struct {
	w io.Writer
}

func (t textWriter) Write(record []string) error {
	_, err := fmt.Fprintf(t.w, "%q\n", record)
	return err
}

func (textWriter) Close() error { return nil }

// linesWriter prints one field per line and separates records with a blank line.
type linesWriter struct {
	w       io.Writer
	started bool
}

func (l *linesWriter) Write(record []string) error {
	if l.started {
		if _, err := io.WriteString(l.w, "\n"); err != nil {
			return err
		}
	}
	l.started = true
	for _, field := range record {
		if _, err := io.WriteString(l.w, field+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func (*linesWriter) Close() error { return nil }

// csvWriter re-encodes each record as one normalized CSV line, reusing its buffer.
type csvWriter struct {
	w   io.Writer
	buf []byte
}

func (c *csvWriter) Write(record []string) error {
	c.buf = csvline.AppendJoin(c.buf[:0], record)
	c.buf = append(c.buf, '\n')
	_, err := c.w.Write(c.buf)
	return err
}

func (*csvWriter) Close() error { return nil }

// jsonWriter prints one JSON array per line.
type jsonWriter struct {
	enc *json.Encoder
}

func (j jsonWriter) Write(record []string) error {
	return j.enc.Encode(record)
}

func (jsonWriter) Close() error { return nil }

// yamlWriter prints each record as its own YAML document.
type yamlWriter struct {
	enc *yaml.Encoder
}

func (y yamlWriter) Write(record []string) error {
	return y.enc.Encode(record)
}

func (y yamlWriter) Close() error {
	return y.enc.Close()
}
