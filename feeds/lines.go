package feeds

import (
	"bufio"
	"io"
	"iter"
	"strings"
)

// MaxLineBytes caps a single input line.
const MaxLineBytes = 1 << 20

// Lines yields (1-based line number, line) with the terminator and any
// trailing ASCII whitespace trimmed. Blank lines are yielded too, the
// parser turns them into nothing.
func Lines(r io.Reader) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 64*1024), MaxLineBytes)
		num := 0
		for scanner.Scan() {
			num++
			if !yield(num, rtrim(scanner.Text())) {
				return
			}
		}
	}
}

func rtrim(s string) string {
	return strings.TrimRight(s, " \t\n\v\f\r")
}
