package mapping

import (
	"fmt"
	"strings"
)

// parseTechniqueList parses a bracketed list of quoted technique IDs as
// found in "MITRE Mapping" export cells, e.g. `["T1059", 'T1059.001']`.
// It accepts only that shape: an optional amount of whitespace is removed
// up front, then the text must be `[`, zero or more single- or
// double-quoted tokens separated by commas, `]`. Anything else is an
// error. This is deliberately narrower than a general literal evaluator.
func parseTechniqueList(raw string) ([]string, error) {
	s := removeSpaces(raw)
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return nil, fmt.Errorf("not a bracketed list: %q", raw)
	}

	body := s[1 : len(s)-1]
	if body == "" {
		return []string{}, nil
	}

	var techniques []string
	for len(body) > 0 {
		quote := body[0]
		if quote != '"' && quote != '\'' {
			return nil, fmt.Errorf("expected quoted token at %q", body)
		}
		end := strings.IndexByte(body[1:], quote)
		if end < 0 {
			return nil, fmt.Errorf("unterminated quote in %q", raw)
		}
		token := body[1 : 1+end]
		if token != "" {
			techniques = append(techniques, token)
		}
		body = body[2+end:]

		if body == "" {
			break
		}
		if body[0] != ',' {
			return nil, fmt.Errorf("expected comma between tokens in %q", raw)
		}
		body = body[1:]
		if body == "" {
			return nil, fmt.Errorf("trailing comma in %q", raw)
		}
	}

	return techniques, nil
}

func removeSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, s)
}
