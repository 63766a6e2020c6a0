// Package wires encodes records as single-line JSON objects for UDP
// transmission, and decodes them back preserving member order.
package wires

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/reusee/linecast/linelang"
)

var (
	ErrNotObject    = errors.New("not a JSON object")
	ErrTrailingData = errors.New("trailing data after object")
)

// Encode serializes a record as one JSON object. Members appear in pair
// order; duplicate keys become duplicate members. String values carry
// whatever literal quote characters the tokenizer stored, re-escaped here
// for the wire.
func Encode(record linelang.Record) []byte {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, pair := range record {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeString(&buf, pair.Key)
		buf.WriteByte(':')
		value := pair.Value
		switch value.Kind() {
		case linelang.KindString:
			writeString(&buf, value.Text())
		case linelang.KindBool:
			buf.WriteString(strconv.FormatBool(value.Bool()))
		case linelang.KindNumber:
			buf.WriteString(strconv.FormatFloat(value.Num(), 'g', -1, 64))
		}
	}
	buf.WriteByte('}')
	return buf.Bytes()
}

func writeString(buf *bytes.Buffer, s string) {
	// marshaling a string cannot fail
	encoded, _ := json.Marshal(s)
	buf.Write(encoded)
}

// Decode parses a datagram holding exactly one JSON object of scalar
// members, preserving member order. Null, array and object members are
// skipped. Anything else malformed is an error, so the receiver can report
// the datagram and move on.
func Decode(data []byte) (linelang.Record, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))

	token, err := decoder.Token()
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return nil, ErrNotObject
	}

	var record linelang.Record
	for decoder.More() {
		keyToken, err := decoder.Token()
		if err != nil {
			return nil, fmt.Errorf("decode key: %w", err)
		}
		key, ok := keyToken.(string)
		if !ok {
			return nil, fmt.Errorf("decode key: got %v", keyToken)
		}

		valueToken, err := decoder.Token()
		if err != nil {
			return nil, fmt.Errorf("decode value: %w", err)
		}
		switch value := valueToken.(type) {
		case string:
			record = append(record, linelang.Pair{Key: key, Value: linelang.Str(value)})
		case bool:
			record = append(record, linelang.Pair{Key: key, Value: linelang.Bool(value)})
		case float64:
			record = append(record, linelang.Pair{Key: key, Value: linelang.Num(value)})
		case nil:
			// null member, skip
		case json.Delim:
			// nested array or object, skip it whole
			if err := skipNested(decoder); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("decode value: got %T", valueToken)
		}
	}

	if _, err := decoder.Token(); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if _, err := decoder.Token(); err != io.EOF {
		return nil, ErrTrailingData
	}

	return record, nil
}

// skipNested consumes tokens until the nested value whose opening delimiter
// was just read is fully closed.
func skipNested(decoder *json.Decoder) error {
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return fmt.Errorf("decode nested: %w", err)
		}
		if delim, ok := token.(json.Delim); ok {
			switch delim {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
	}
	return nil
}

// Indent re-indents an encoded datagram for the debug display mode.
func Indent(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "\t"); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
