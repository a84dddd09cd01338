package parse

import "fmt"

// SyntaxError reports why rule text failed to parse, with the 1-based
// line and column of the offending fragment.
type SyntaxError struct {
	Line    int
	Column  int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at %d:%d", e.Message, e.Line, e.Column)
}

func syntaxErrorf(line, column int, format string, args ...any) *SyntaxError {
	return &SyntaxError{
		Line:    line,
		Column:  column,
		Message: fmt.Sprintf(format, args...),
	}
}
