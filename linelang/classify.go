package linelang

import (
	"strconv"
	"strings"
)

// Classify determines the typed value for a raw token. It never fails:
// quoting forces string, then boolean literals, then numbers, then the
// bare-string fallback, in that order.
func Classify(raw string, quoted bool) Value {
	if quoted {
		return Str(raw)
	}
	if strings.EqualFold(raw, "true") {
		return Bool(true)
	}
	if strings.EqualFold(raw, "false") {
		return Bool(false)
	}
	if isNumber(raw) {
		num, err := strconv.ParseFloat(raw, 64)
		if err == nil {
			return Num(num)
		}
		// overflow falls through to string
	}
	return Str(raw)
}

// isNumber accepts exactly: optional sign, digits, optional fractional
// part, optional exponent, with the whole token consumed. Stricter than
// strconv.ParseFloat, which would also take "inf", "nan", hex floats,
// digit underscores, ".5" and "5.".
func isNumber(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == start {
		return false
	}

	if i < len(s) && s[i] == '.' {
		i++
		start = i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		if i == start {
			return false
		}
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		start = i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		if i == start {
			return false
		}
	}

	return i == len(s)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
