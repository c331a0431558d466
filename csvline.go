// # csvline: Single-Record CSV Field Codec for Go
//
// csvline joins a sequence of fields into one escaped CSV record line and splits a record
// line back into its fields, either from a string or incrementally from a byte stream.
// The dialect is fixed: comma separator, double-quote quoting, doubled quotes as escapes.
//
// # Features
//
// - `Join` quotes a field only when it contains a quote, comma, CR or LF, and doubles embedded quotes.
// - `Split` and `Fields` decode one line held in memory and reject raw newlines outside quotes via `ParseError`.
// - `Reader` and `ReadRecord` decode one logical record per call from an `io.ByteScanner`; LF, CR and CRLF end a record unless they sit inside quotes.
// - Text after a closing quote is kept literally and an unterminated quote simply ends the field, so malformed input still decodes.
//
// # Round Trip
//
// For any non-empty record, `Split(Join(record))` returns the record as long as no field contains
// a raw newline; reading the joined line back through a `Reader` has no such restriction.
//
// # Getting Started
//
// The module path is `github.com/oleg578/csvline`. The `cmd/csvline` command exposes the same
// operations on the command line.
package csvline
