package linelang

// DefaultMaxToken is the cap on a single key or raw value token. A token of
// exactly this many bytes is already too long; the valid range is
// [1, DefaultMaxToken).
const DefaultMaxToken = 1024

// Parser parses one line of space-separated key:value pairs into a Record.
//
// Any violation discards the whole line: a non-nil error means zero pairs,
// no matter how many parsed cleanly before the bad one. A nil Record with a
// nil error means the line was blank.
type Parser struct {
	// MaxToken overrides DefaultMaxToken when positive.
	MaxToken int
}

// ParseLine parses line with the default token cap.
func ParseLine(line string) (Record, error) {
	return Parser{}.Parse(line)
}

func (p Parser) Parse(line string) (Record, error) {
	maxToken := p.MaxToken
	if maxToken <= 0 {
		maxToken = DefaultMaxToken
	}

	var record Record
	i := 0
	n := len(line)

	for {
		// whitespace between pairs
		for i < n && line[i] != '\n' && isSpace(line[i]) {
			i++
		}
		if i >= n || line[i] == '\n' {
			break
		}

		// key
		keyStart := i
		for {
			if i >= n || line[i] == '\n' {
				return nil, &ParseError{Offset: i, Err: ErrMissingColon}
			}
			c := line[i]
			if c == ':' {
				break
			}
			switch {
			case isSpace(c):
				return nil, &ParseError{Offset: i, Err: ErrWhitespaceInKey}
			case c == '"':
				return nil, &ParseError{Offset: i, Err: ErrQuoteInKey}
			case c == '\\':
				return nil, &ParseError{Offset: i, Err: ErrBackslashInKey}
			}
			i++
			if i-keyStart >= maxToken {
				return nil, &ParseError{Offset: keyStart, Err: ErrKeyTooLong}
			}
		}
		if i == keyStart {
			return nil, &ParseError{Offset: i, Err: ErrEmptyKey}
		}
		key := line[keyStart:i]
		i++ // ':'

		// no whitespace after the colon, for quoted and unquoted alike
		if i < n && isSpace(line[i]) {
			return nil, &ParseError{Offset: i, Err: ErrWhitespaceAfterColon}
		}

		var raw string
		var quoted bool
		if i < n && line[i] == '"' {
			var err error
			raw, i, err = scanQuoted(line, i, maxToken)
			if err != nil {
				return nil, err
			}
			quoted = true
		} else {
			var err error
			raw, i, err = scanUnquoted(line, i, maxToken)
			if err != nil {
				return nil, err
			}
		}

		record = append(record, Pair{
			Key:   key,
			Value: Classify(raw, quoted),
		})
	}

	if len(record) == 0 {
		return nil, nil
	}
	return record, nil
}

// scanQuoted scans a double-quoted value starting at the opening quote.
// Escapes are resolved, then the result keeps the surrounding quote
// characters as literal payload, so the stored text is the unescaped body
// re-wrapped in quotes, not valid JSON-quoted text.
func scanQuoted(line string, i int, maxToken int) (string, int, error) {
	n := len(line)
	start := i
	buf := make([]byte, 0, 64)
	buf = append(buf, '"')
	i++

	for {
		if i >= n || line[i] == '\n' {
			return "", i, &ParseError{Offset: i, Err: ErrUnclosedQuote}
		}
		c := line[i]

		switch c {

		case '"':
			buf = append(buf, '"')
			i++
			if len(buf) >= maxToken {
				return "", i, &ParseError{Offset: start, Err: ErrValueTooLong}
			}
			return string(buf), i, nil

		case '\\':
			i++
			if i >= n || line[i] == '\n' {
				return "", i, &ParseError{Offset: i - 1, Err: ErrTrailingBackslash}
			}
			switch line[i] {
			case '"':
				buf = append(buf, '"')
			case '\\':
				buf = append(buf, '\\')
			case 'n':
				buf = append(buf, '\n')
			case 't':
				buf = append(buf, '\t')
			case 'r':
				buf = append(buf, '\r')
			default:
				return "", i, &ParseError{Offset: i, Err: ErrUnknownEscape}
			}
			i++

		default:
			buf = append(buf, c)
			i++
		}

		if len(buf) >= maxToken {
			return "", i, &ParseError{Offset: start, Err: ErrValueTooLong}
		}
	}
}

func scanUnquoted(line string, i int, maxToken int) (string, int, error) {
	n := len(line)
	start := i
	for i < n && !isSpace(line[i]) {
		if line[i] == '\\' {
			return "", i, &ParseError{Offset: i, Err: ErrBackslashInValue}
		}
		i++
		if i-start >= maxToken {
			return "", i, &ParseError{Offset: start, Err: ErrValueTooLong}
		}
	}
	if i == start {
		return "", i, &ParseError{Offset: i, Err: ErrEmptyValue}
	}
	return line[start:i], i, nil
}

// isSpace is the ASCII is-space classification, '\n' included.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
