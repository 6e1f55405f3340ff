// Package codec converts grids to and from the plain-text, pictographic and URI-safe
// puzzle strings used for archiving and sharing.
package codec

import (
	"strconv"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/samdwyer/dungeonpuzzle/internal/world"
)

const (
	keycap    = "\u20E3"
	keycapTen = "🔟"
)

// graphemes splits s into user-perceived characters.
func graphemes(s string) []string {
	var out []string
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		out = append(out, gr.Str())
	}
	return out
}

// isDelimiter reports whether a grapheme ends a line. "\r\n" is a single grapheme.
func isDelimiter(g string) bool {
	switch g {
	case "\n", "\r", "\r\n", ",", "!":
		return true
	}
	return false
}

func isASCIIDigit(g string) bool {
	return len(g) == 1 && g[0] >= '0' && g[0] <= '9'
}

// usesEscapes reports whether text is in the pictographic alphabet, where every
// count of 10 or more is written as the "n," escape.
func usesEscapes(text string) bool {
	return strings.Contains(text, keycap) || strings.Contains(text, keycapTen) || strings.Contains(text, "⬜")
}

// lexer walks the graphemes of a puzzle string.
//
// A "," that closes a run of two or more ASCII digits is part of an "n," number
// rather than a line break, but only where a count is expected: after the column
// line's placeholder, and in pictographic text also at the start of a row. Plain
// text that breaks lines with "," alone has no column escapes.
type lexer struct {
	input   []string
	pos     int
	escapes bool // Pictographic: row and column counts may be escaped
	columns bool // Column counts may be escaped
}

func newLexer(text string) *lexer {
	escapes := usesEscapes(text)
	return &lexer{
		input:   graphemes(text),
		escapes: escapes,
		columns: escapes || strings.ContainsAny(text, "\n\r!"),
	}
}

func (l *lexer) done() bool {
	return l.pos >= len(l.input)
}

func (l *lexer) peek() string {
	if l.done() {
		return ""
	}
	return l.input[l.pos]
}

func (l *lexer) advance() string {
	g := l.peek()
	l.pos++
	return g
}

// lines splits the input on the delimiter set and trims each line.
// Empty lines are kept so positional formats line up.
func (l *lexer) lines() [][]string {
	var (
		out     [][]string
		current []string
		index   int // Non-empty lines seen so far
	)
	for !l.done() {
		g := l.advance()
		if g == "," && l.closesNumber(index, trim(current)) {
			current = append(current, g)
			continue
		}
		if isDelimiter(g) {
			line := trim(current)
			if len(line) > 0 {
				index++
			}
			out = append(out, line)
			current = nil
			continue
		}
		current = append(current, g)
	}
	return append(out, trim(current))
}

// closesNumber reports whether a "," after line ends an "n," number. index counts
// the non-empty lines before it: the name, if any, is line 0 and the column line
// is line 0 or 1.
func (l *lexer) closesNumber(index int, line []string) bool {
	digits := trailingDigits(line)
	if digits < 2 {
		return false
	}
	if index <= 1 && isColumnPrefix(line) {
		return l.columns
	}
	return l.escapes && index >= 1 && digits == len(line)
}

// isColumnPrefix reports whether line reads as the start of a column line: a floor
// placeholder followed only by counts.
func isColumnPrefix(line []string) bool {
	if len(line) < 2 || world.Classify(line[0]) != world.KindFloor {
		return false
	}
	for _, g := range line[1:] {
		if !isCountGlyph(g) {
			return false
		}
	}
	return true
}

func trailingDigits(line []string) int {
	n := 0
	for i := len(line) - 1; i >= 0 && isASCIIDigit(line[i]); i-- {
		n++
	}
	return n
}

func isSpace(g string) bool {
	return strings.TrimSpace(g) == ""
}

func trim(line []string) []string {
	start, end := 0, len(line)
	for start < end && isSpace(line[start]) {
		start++
	}
	for end > start && isSpace(line[end-1]) {
		end--
	}
	return line[start:end]
}

// readCount decodes the number at line[i] and returns it with the index after it.
// The lexer only leaves a "," inside a line when it closes an "n," number. With
// whole set, a bare run of ASCII digits is also read as one number.
func readCount(line []string, i int, whole bool) (int, int) {
	if i >= len(line) {
		return 0, i
	}
	if !isASCIIDigit(line[i]) {
		return glyphValue(line[i]), i + 1
	}
	j := i
	for j < len(line) && isASCIIDigit(line[j]) {
		j++
	}
	digits := strings.Join(line[i:j], "")
	switch {
	case j-i >= 2 && j < len(line) && line[j] == ",":
		return atoi(digits), j + 1
	case whole:
		return atoi(digits), j
	default:
		return atoi(line[i]), i + 1
	}
}

// glyphValue decodes a single-glyph number: an ASCII digit, a keycap digit or the
// keycap ten. Anything else is 0.
func glyphValue(g string) int {
	if g == keycapTen {
		return 10
	}
	bare := strings.NewReplacer("\uFE0F", "", "\uFE0E", "", keycap, "").Replace(g)
	if isASCIIDigit(bare) {
		return atoi(bare)
	}
	return 0
}

// isCountGlyph reports whether g can appear in a target line after its placeholder.
func isCountGlyph(g string) bool {
	return g == "," || isASCIIDigit(g) || g == keycapTen || strings.HasSuffix(g, keycap)
}

// looksLikeTargets reports whether a line could be a column-target line.
func looksLikeTargets(line []string) bool {
	if len(line) < 2 {
		return false
	}
	for _, g := range line[1:] {
		if !isCountGlyph(g) {
			return false
		}
	}
	return true
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
