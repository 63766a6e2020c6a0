// Package displays renders records for the terminal, matching the client
// and server output formats of the wire peers.
package displays

import (
	"fmt"
	"io"
	"strconv"

	"github.com/reusee/linecast/linelang"
	"github.com/reusee/linecast/wires"
)

type Format uint8

const (
	FormatClient Format = iota
	FormatServer
)

const separator = "====================================================="

// Render prints one pair per line. The client format is left-aligned after
// a header line; the server format right-aligns keys and values in
// 20-character columns.
func Render(w io.Writer, record linelang.Record, format Format) {
	if format == FormatClient {
		fmt.Fprintln(w, "Parsed JSON data:")
	}
	for _, pair := range record {
		switch format {
		case FormatClient:
			fmt.Fprintf(w, "%s: %s\n", pair.Key, FormatValue(pair.Value))
		case FormatServer:
			fmt.Fprintf(w, "%20s: %20s\n", pair.Key, FormatValue(pair.Value))
		}
	}
}

// RenderDebug prints the indented JSON of an encoded record.
func RenderDebug(w io.Writer, encoded []byte) error {
	indented, err := wires.Indent(encoded)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "DEBUG MODE:")
	fmt.Fprintln(w, string(indented))
	return nil
}

// Banner wraps the per-datagram server output.
func Banner(w io.Writer, from string) {
	fmt.Fprintf(w, "Received from %s\n", from)
	fmt.Fprintln(w, separator)
}

func BannerEnd(w io.Writer) {
	fmt.Fprintln(w, separator)
	fmt.Fprintln(w)
}

// FormatValue renders a value the way the display formats want it: string
// text verbatim, quotes and all, booleans as true/false, numbers in
// shortest round-trip form.
func FormatValue(value linelang.Value) string {
	switch value.Kind() {
	case linelang.KindString:
		return value.Text()
	case linelang.KindBool:
		return strconv.FormatBool(value.Bool())
	case linelang.KindNumber:
		return strconv.FormatFloat(value.Num(), 'g', -1, 64)
	}
	return ""
}
