package gocube

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/width"
)

// primeReplacer folds the prime-like characters people paste from documents
// and keyboards into an ASCII apostrophe.
var primeReplacer = strings.NewReplacer(
	"’", "'", // RIGHT SINGLE QUOTATION MARK
	"‘", "'", // LEFT SINGLE QUOTATION MARK
	"′", "'", // PRIME
	"‵", "'", // REVERSED PRIME
	"ʹ", "'", // MODIFIER LETTER PRIME
	"ʼ", "'", // MODIFIER LETTER APOSTROPHE
	"´", "'", // ACUTE ACCENT
	"❛", "'", // HEAVY SINGLE TURNED COMMA QUOTATION MARK ORNAMENT
	"`", "'",
)

// isSeparator reports whether r separates tokens.
func isSeparator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}

// normalizer uppercases and width-folds raw tokens. A cases.Caser keeps
// state, so each Tokenize call gets its own.
type normalizer struct {
	upper cases.Caser
}

func newNormalizer() *normalizer {
	return &normalizer{upper: cases.Upper(language.Und)}
}

func (n *normalizer) normalize(raw string) string {
	s := width.Fold.String(raw)
	s = n.upper.String(s)
	return primeReplacer.Replace(s)
}

// Tokenize parses free-form notation into moves. Tokens are separated by any
// run of whitespace and/or commas; an empty or blank input yields an empty
// sequence. Each token is a face letter (any case, half- or full-width)
// optionally followed by a prime or a 2.
//
// On the first malformed token Tokenize returns a *ParseError naming the
// token as written, and no moves.
func Tokenize(text string) ([]Move, error) {
	parts := strings.FieldsFunc(text, isSeparator)
	moves := make([]Move, 0, len(parts))
	n := newNormalizer()
	for i, raw := range parts {
		m, ok := parseNormalized(n.normalize(raw))
		if !ok {
			return nil, &ParseError{Token: raw, Position: i}
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// ParseMove parses a single token such as "R", "u'" or "F2".
func ParseMove(s string) (Move, error) {
	trimmed := strings.TrimSpace(s)
	m, ok := parseNormalized(newNormalizer().normalize(trimmed))
	if !ok {
		return Move{}, &ParseError{Token: s, Position: 0}
	}
	return m, nil
}

// parseNormalized matches FACE [ "'" | "2" ] against an already normalized
// token.
func parseNormalized(t string) (Move, bool) {
	r, size := utf8.DecodeRuneInString(t)
	if size == 0 {
		return Move{}, false
	}
	face, ok := ParseFace(r)
	if !ok {
		return Move{}, false
	}
	switch t[size:] {
	case "":
		return Move{Face: face, Turn: CW}, true
	case "'":
		return Move{Face: face, Turn: CCW}, true
	case "2":
		return Move{Face: face, Turn: Double}, true
	default:
		return Move{}, false
	}
}

// MustTokenize is like Tokenize but panics on malformed input. It is meant
// for constant sequences in tests and examples.
func MustTokenize(text string) []Move {
	moves, err := Tokenize(text)
	if err != nil {
		panic(err)
	}
	return moves
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// InvertSequence returns the group inverse of seq: the moves in reverse order,
// each one inverted.
func InvertSequence(seq []Move) []Move {
	out := make([]Move, len(seq))
	for i, m := range seq {
		out[len(seq)-1-i] = m.Inverse()
	}
	return out
}

// ExpandDoubles replaces every half turn with two clockwise quarter turns of
// the same face. The net permutation is unchanged.
func ExpandDoubles(seq []Move) []Move {
	out := make([]Move, 0, len(seq))
	for _, m := range seq {
		if m.Turn == Double {
			q := Move{Face: m.Face, Turn: CW}
			out = append(out, q, q)
			continue
		}
		out = append(out, m)
	}
	return out
}

// MergeMoves merges adjacent same-face moves.
// For example: R R becomes R2, R R R becomes R', R R' cancels out.
func MergeMoves(moves []Move) []Move {
	result := make([]Move, 0, len(moves))

	for _, move := range moves {
		if len(result) == 0 {
			result = append(result, move)
			continue
		}

		last := &result[len(result)-1]
		if last.Face != move.Face {
			result = append(result, move)
			continue
		}

		merged, ok := merge(*last, move)
		if !ok {
			// Moves cancelled out - remove the last move
			result = result[:len(result)-1]
		} else {
			*last = merged
		}
	}

	return result
}

// merge combines two moves on the same face. It reports false when they
// cancel out completely.
func merge(a, b Move) (Move, bool) {
	quarters := (clockwiseQuarters(a.Turn) + clockwiseQuarters(b.Turn)) % 4
	switch quarters {
	case 1:
		return Move{Face: a.Face, Turn: CW}, true
	case 2:
		return Move{Face: a.Face, Turn: Double}, true
	case 3:
		return Move{Face: a.Face, Turn: CCW}, true
	default:
		return Move{}, false
	}
}

// clockwiseQuarters returns the turn as a number of clockwise quarter turns
// modulo 4.
func clockwiseQuarters(t Turn) int {
	switch t {
	case CCW:
		return 3
	case Double:
		return 2
	default:
		return 1
	}
}
