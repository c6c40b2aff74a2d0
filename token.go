package svg2lottie

import (
	"github.com/tdewolff/parse/v2/strconv"
)

// TokenType distinguishes the two kinds of path-data tokens.
type TokenType int

// Token types produced by Tokenize.
const (
	TokenCommand TokenType = iota
	TokenNumber
)

// Token is a single lexical unit of a path description: either one of
// the path command letters or a numeric literal.
type Token struct {
	Type   TokenType
	Cmd    byte    // command letter, set for TokenCommand
	Value  float64 // numeric value, set for TokenNumber
	offset int     // byte offset in the input, for strict-mode errors
}

// isCommandLetter reports whether b is one of the path command letters
// recognized by the grammar.
func isCommandLetter(b byte) bool {
	switch b {
	case 'M', 'm', 'C', 'c', 'S', 's', 'L', 'l', 'H', 'h', 'V', 'v',
		'Q', 'q', 'T', 't', 'A', 'a', 'Z', 'z':
		return true
	}
	return false
}

func skipCommaWhitespace(d []byte, i int) int {
	for i < len(d) && (d[i] == ' ' || d[i] == ',' || d[i] == '\n' || d[i] == '\r' || d[i] == '\t') {
		i++
	}
	return i
}

// Tokenize lexes a path description into command and number tokens.
// Characters matching neither pattern are dropped, so Tokenize never
// fails; malformed input simply yields fewer tokens.
func Tokenize(d string) []Token {
	tokens, _ := tokenize(d, false)
	return tokens
}

func tokenize(d string, strict bool) ([]Token, error) {
	data := []byte(d)
	var tokens []Token

	i := 0
	for i < len(data) {
		i = skipCommaWhitespace(data, i)
		if i >= len(data) {
			break
		}
		if isCommandLetter(data[i]) {
			tokens = append(tokens, Token{Type: TokenCommand, Cmd: data[i], offset: i})
			i++
			continue
		}
		f, n := strconv.ParseFloat(data[i:])
		if n == 0 {
			if strict {
				return tokens, &MalformedPathError{
					Offset: i,
					Reason: "unexpected character " + string(data[i]),
				}
			}
			i++
			continue
		}
		tokens = append(tokens, Token{Type: TokenNumber, Value: f, offset: i})
		i += n
	}
	return tokens, nil
}
