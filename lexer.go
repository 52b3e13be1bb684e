package easycalc

import "fmt"

// tokenize splits the source into tokens in one left-to-right scan.
// Space, tab and comma are separators and are never emitted: commas only
// separate function arguments visually, grouping is enforced by parentheses.
// No syntax is validated here beyond character legality; in particular a
// number literal is a maximal run of digits and dots, '1.2.3' is handed to
// the compiler as one (malformed) literal.
func tokenize(source string) ([]token, error) {
	ret := make([]token, 0)
	for pos := 0; pos < len(source); {
		c := source[pos]
		switch {
		case c == ' ' || c == '\t' || c == ',':
			pos++
		case c == '(':
			ret = append(ret, token{kind: tokenOpen, text: "(", pos: pos})
			pos++
		case c == ')':
			ret = append(ret, token{kind: tokenClose, text: ")", pos: pos})
			pos++
		case c == '+' || c == '-' || c == '*' || c == '/':
			ret = append(ret, token{kind: tokenOperator, text: source[pos : pos+1], pos: pos})
			pos++
		case isDigit(c):
			start := pos
			for pos < len(source) && (isDigit(source[pos]) || source[pos] == '.') {
				pos++
			}
			ret = append(ret, token{kind: tokenNumber, text: source[start:pos], pos: start})
		case isLetter(c):
			start := pos
			for pos < len(source) && (isLetter(source[pos]) || isDigit(source[pos])) {
				pos++
			}
			ret = append(ret, token{kind: tokenIdent, text: source[start:pos], pos: start})
		default:
			return nil, fmt.Errorf("%w: '%c' @ position %d", ErrInvalidCharacter, c, pos)
		}
	}
	return ret, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
