package syntax

// Parse splits a glob pattern into tokens, left to right. A bracket
// expression is consumed whole and yields a single token.
//
// Parse fails with a *ParseError when the pattern ends with an unescaped
// backslash or inside a bracket expression.
func Parse(pattern string) ([]Token, error) {
	tokens := make([]Token, 0, len(pattern))
	for i := 0; i < len(pattern); {
		tok, next, err := parseOne(pattern, i)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		i = next
	}
	return tokens, nil
}

// MustParse is like Parse but panics on error.
func MustParse(pattern string) []Token {
	tokens, err := Parse(pattern)
	if err != nil {
		panic("syntax: Parse(" + quote(pattern) + "): " + err.Error())
	}
	return tokens
}

// parseOne parses the token starting at pattern[i] and returns it together
// with the index just past it.
func parseOne(pattern string, i int) (Token, int, error) {
	switch c := pattern[i]; c {
	case '\\':
		if i+1 >= len(pattern) {
			return Token{}, 0, &ParseError{Kind: UnterminatedEscape, Pattern: pattern, Offset: i}
		}
		return Literal(pattern[i+1]), i + 2, nil
	case '?':
		return AnySingle(), i + 1, nil
	case '*':
		return AnyMultiple(), i + 1, nil
	case '[':
		return parseClass(pattern, i)
	default:
		return Literal(c), i + 1, nil
	}
}

// parseClass parses the bracket expression opened at pattern[start].
func parseClass(pattern string, start int) (Token, int, error) {
	tok := Token{Kind: TokenClass}
	i := start + 1
	if i < len(pattern) && pattern[i] == '!' {
		tok.Negated = true
		i++
	}

	for first := true; i < len(pattern); first = false {
		if pattern[i] == ']' && !first {
			return tok, i + 1, nil
		}

		lo, next, ok := classByte(pattern, i)
		if !ok {
			break
		}
		i = next

		// A '-' followed by anything but the closing bracket makes a range.
		if i+1 < len(pattern) && pattern[i] == '-' && pattern[i+1] != ']' {
			hi, next, ok := classByte(pattern, i+1)
			if !ok {
				break
			}
			tok.Items = append(tok.Items, ClassItem{Lo: lo, Hi: hi})
			i = next
			continue
		}
		tok.Items = append(tok.Items, ClassItem{Lo: lo, Hi: lo})
	}

	return Token{}, 0, &ParseError{Kind: UnterminatedClass, Pattern: pattern, Offset: start}
}

// classByte reads one member byte, resolving a backslash escape. ok is false
// when the pattern ends right after the backslash.
func classByte(pattern string, i int) (c byte, next int, ok bool) {
	if pattern[i] != '\\' {
		return pattern[i], i + 1, true
	}
	if i+1 >= len(pattern) {
		return 0, 0, false
	}
	return pattern[i+1], i + 2, true
}
