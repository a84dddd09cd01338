package eval

import (
	"fmt"
	"strings"
)

// UnresolvedVariableError indicates a rule referenced a variable path that
// the supplied context does not provide (or no context was supplied).
type UnresolvedVariableError struct {
	Path []string
}

func (e *UnresolvedVariableError) Error() string {
	return fmt.Sprintf("%s missing from context", strings.Join(e.Path, "."))
}

// TypeMismatchError indicates an operator was applied to value kinds it is
// not defined for, e.g. ordering booleans or membership against a
// non-array. Right is empty when only one side is at fault, and Op is
// empty when a whole rule failed to produce a boolean.
type TypeMismatchError struct {
	Op    OperatorType
	Left  Kind
	Right Kind
}

func (e *TypeMismatchError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("expression evaluated to %s, not a boolean", e.Left)
	}

	if e.Right == "" {
		return fmt.Sprintf("cannot apply '%s' to %s", e.Op, e.Left)
	}

	return fmt.Sprintf("cannot apply '%s' to %s and %s", e.Op, e.Left, e.Right)
}
