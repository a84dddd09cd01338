package parse

import (
	"regexp"
	"strings"
)

type tokenRegexps struct {
	name    tokenType
	regexps []*regexp.Regexp
}

// Order matters: multi-rune operators come before their prefixes, word
// operators and keywords before identifiers, and the catch-all last.
var regexps = []*tokenRegexps{
	{
		name:    whitespace,
		regexps: []*regexp.Regexp{regexp.MustCompile(`^\s+`)},
	},
	{
		name:    comma,
		regexps: []*regexp.Regexp{regexp.MustCompile(`^,`)},
	},
	{
		name:    leftParenthesis,
		regexps: []*regexp.Regexp{regexp.MustCompile(`^\(`)},
	},
	{
		name:    rightParenthesis,
		regexps: []*regexp.Regexp{regexp.MustCompile(`^\)`)},
	},
	{
		name:    numberLiteral,
		regexps: []*regexp.Regexp{regexp.MustCompile(`^-?\d+(\.\d+)?([eE][+-]?\d+)?`)},
	},
	{
		name: stringLiteral,
		regexps: []*regexp.Regexp{
			regexp.MustCompile(`^"[^"]*"`),
			regexp.MustCompile(`^'[^']*'`),
		},
	},
	{
		name:    booleanLiteral,
		regexps: []*regexp.Regexp{regexp.MustCompile(`^(true|false)\b`)},
	},
	{
		name:    noneLiteral,
		regexps: []*regexp.Regexp{regexp.MustCompile(`(?i)^none\b`)},
	},
	{
		name:    and,
		regexps: []*regexp.Regexp{regexp.MustCompile(`(?i)^and\b`)},
	},
	{
		name:    or,
		regexps: []*regexp.Regexp{regexp.MustCompile(`(?i)^or\b`)},
	},
	{
		name: notIn,
		regexps: []*regexp.Regexp{
			regexp.MustCompile(`^not\s+in\b`),
			regexp.MustCompile(`^notin\b`),
			regexp.MustCompile(`^∉`),
		},
	},
	{
		name:    notIntersects,
		regexps: []*regexp.Regexp{regexp.MustCompile(`^not\s*∩`)},
	},
	{
		name: isNot,
		regexps: []*regexp.Regexp{
			regexp.MustCompile(`^is\s+not\b`),
			regexp.MustCompile(`^isnot\b`),
		},
	},
	{
		name: in,
		regexps: []*regexp.Regexp{
			regexp.MustCompile(`^in\b`),
			regexp.MustCompile(`^∈`),
		},
	},
	{
		name:    is,
		regexps: []*regexp.Regexp{regexp.MustCompile(`^is\b`)},
	},
	{
		name: equal,
		regexps: []*regexp.Regexp{
			regexp.MustCompile(`^==`),
			regexp.MustCompile(`^=`),
			regexp.MustCompile(`^eq\b`),
		},
	},
	{
		name: notEqual,
		regexps: []*regexp.Regexp{
			regexp.MustCompile(`^!=`),
			regexp.MustCompile(`^≠`),
			regexp.MustCompile(`^ne\b`),
		},
	},
	{
		name: greaterEqual,
		regexps: []*regexp.Regexp{
			regexp.MustCompile(`^>=`),
			regexp.MustCompile(`^≥`),
			regexp.MustCompile(`^ge\b`),
		},
	},
	{
		name: greater,
		regexps: []*regexp.Regexp{
			regexp.MustCompile(`^>`),
			regexp.MustCompile(`^gt\b`),
		},
	},
	{
		name: lessEqual,
		regexps: []*regexp.Regexp{
			regexp.MustCompile(`^<=`),
			regexp.MustCompile(`^≤`),
			regexp.MustCompile(`^le\b`),
		},
	},
	{
		name: less,
		regexps: []*regexp.Regexp{
			regexp.MustCompile(`^<`),
			regexp.MustCompile(`^lt\b`),
		},
	},
	{
		name:    subsetOf,
		regexps: []*regexp.Regexp{regexp.MustCompile(`^⊆`)},
	},
	{
		name:    supersetOf,
		regexps: []*regexp.Regexp{regexp.MustCompile(`^⊇`)},
	},
	{
		name:    intersects,
		regexps: []*regexp.Regexp{regexp.MustCompile(`^∩`)},
	},
	{
		name:    identifier,
		regexps: []*regexp.Regexp{regexp.MustCompile(`^[A-Za-z_]+(\.[A-Za-z_]+)*`)},
	},
	{
		name:    invalid,
		regexps: []*regexp.Regexp{regexp.MustCompile(`^.`)},
	},
}

type tokenizer struct {
	input  string
	cursor int
	line   int
	column int
}

func newTokenizer(input string) *tokenizer {
	return &tokenizer{input: input, line: 1, column: 1}
}

func (t *tokenizer) getNextToken() (*token, error) {
	if t.cursor >= len(t.input) {
		return &token{}, nil
	}

	s := t.input[t.cursor:]
	match := ""
	var tk *token

	line, column := t.getLineColumn(0)

	for _, tr := range regexps {
		for _, r := range tr.regexps {
			match = r.FindString(s)
			if match != "" {
				tk = &token{
					_type:    tr.name,
					strValue: match,

					line:   line,
					column: column,
				}
				break
			}
		}
		if match != "" {
			break
		}
	}

	if tk == nil {
		return nil, syntaxErrorf(line, column, "couldn't decipher token")
	}

	t.cursor += len(match)
	t.line, t.column = t.getLineColumn(len(match))

	switch tk._type {
	case whitespace:
		return t.getNextToken()
	case stringLiteral:
		tk.strValue = tk.strValue[1 : len(tk.strValue)-1]
	case and, or, noneLiteral:
		tk.strValue = strings.ToLower(tk.strValue)
	case notIn, isNot, notIntersects:
		// normalize the optional whitespace of two-word forms
		tk.strValue = strings.Join(strings.Fields(tk.strValue), " ")
	case invalid:
		if strings.HasPrefix(tk.strValue, `"`) || strings.HasPrefix(tk.strValue, `'`) {
			return nil, syntaxErrorf(line, column, "unterminated string literal")
		}

		return nil, syntaxErrorf(line, column, "unexpected character '%s'", tk.strValue)
	}

	if err := tk.convertToValue(); err != nil {
		return nil, syntaxErrorf(tk.line, tk.column, "invalid literal '%s' of type '%s'", tk.strValue, tk._type)
	}

	return tk, nil
}

func (t *tokenizer) getLineColumn(skip int) (int, int) {
	skipTotal := t.cursor + skip

	if skipTotal > len(t.input) {
		skipTotal = len(t.input)
	}

	firstHalf := t.input[:skipTotal]

	column := strings.LastIndex(firstHalf, "\n") - len(firstHalf)
	if column > 0 {
		column = 1
	} else {
		column = column * -1
	}

	line := strings.Count(firstHalf, "\n") + 1

	return line, column
}
