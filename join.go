package csvline

// Join encodes fields as one CSV record line without a trailing line terminator.
//
// A nil slice is a caller error and returns ErrInvalidArgument. An empty, non-nil slice
// has no record to encode: Join returns ok == false, which keeps it distinct from
// []string{""} whose encoding is the empty line.
func Join(fields []string) (line string, ok bool, err error) {
	if fields == nil {
		return "", false, ErrInvalidArgument
	}
	if len(fields) == 0 {
		return "", false, nil
	}
	return string(AppendJoin(make([]byte, 0, joinedLen(fields)), fields)), true, nil
}

// AppendJoin appends the encoding of fields to dst and returns the extended buffer.
// Fields are separated by a single comma; nothing is appended for an empty slice.
func AppendJoin(dst []byte, fields []string) []byte {
	for i := range fields {
		if i > 0 {
			dst = append(dst, comma)
		}
		dst = appendField(dst, fields[i])
	}
	return dst
}

func appendField(dst []byte, field string) []byte {
	if !fieldNeedsQuote(field) {
		return append(dst, field...)
	}
	dst = append(dst, quote)

	start := 0
	for i := 0; i < len(field); i++ {
		if field[i] == quote {
			// Copy through the quote, then double it.
			dst = append(dst, field[start:i+1]...)
			dst = append(dst, quote)
			start = i + 1
		}
	}
	dst = append(dst, field[start:]...)
	return append(dst, quote)
}

func fieldNeedsQuote(field string) bool {
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case quote, comma, '\n', '\r':
			return true
		}
	}
	return false
}

// joinedLen estimates the encoded size of fields assuming no escaping is needed.
func joinedLen(fields []string) int {
	n := len(fields) - 1
	for _, f := range fields {
		n += len(f)
	}
	return n
}
