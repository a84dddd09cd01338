// Package eval holds the expression tree produced by parsing a rule and
// evaluates it to a single boolean against an optional context.
package eval

import (
	"errors"
	"slices"
	"strings"
)

type OperatorType string
type ExpressionType string

const (
	And              OperatorType = "and"
	Or               OperatorType = "or"
	Equal            OperatorType = "equal"
	NotEqual         OperatorType = "not_equal"
	GreaterThan      OperatorType = "greater"
	GreaterEqualThan OperatorType = "greater_equal"
	LessThan         OperatorType = "less"
	LessEqualThan    OperatorType = "less_equal"
	In               OperatorType = "in"
	NotIn            OperatorType = "not_in"
	Is               OperatorType = "is"
	IsNot            OperatorType = "is_not"
	SubsetOf         OperatorType = "subset_of"
	SupersetOf       OperatorType = "superset_of"
	Intersects       OperatorType = "intersects"
	NotIntersects    OperatorType = "not_intersects"
)

var operators = []OperatorType{
	And, Or,
	Equal, NotEqual,
	GreaterThan, GreaterEqualThan, LessThan, LessEqualThan,
	In, NotIn,
	Is, IsNot,
	SubsetOf, SupersetOf, Intersects, NotIntersects,
}

func IsOperator(operator string) bool {
	return slices.Contains(operators, OperatorType(operator))
}

const (
	Operator ExpressionType = "operator"
	Operand  ExpressionType = "operand"
	Group    ExpressionType = "group"
)

// Expression is one node of a parsed rule. Operator nodes hold Left/Right
// children; operand nodes hold either a literal Value or a variable Path;
// group nodes hold the operand Items of a list literal like (1, 2, 3).
type Expression struct {
	Type     ExpressionType
	Operator OperatorType

	Path  []string
	Value Value
	Items []*Expression

	Left  *Expression
	Right *Expression
}

// Context maps dotted variable paths ("foo.bar") to the Value the variable
// resolves to. It is read, never written, during evaluation.
type Context map[string]Value

// Test evaluates the expression against the given context (which may be
// nil) and requires the result to be a boolean.
func Test(expr *Expression, context Context) (bool, error) {
	v, err := Evaluate(expr, context)
	if err != nil {
		return false, err
	}

	if v.Kind != KindBool {
		return false, &TypeMismatchError{Left: v.Kind}
	}

	return v.Bool, nil
}

// Evaluate walks the expression tree and produces the Value it resolves
// to. Operator nodes produce booleans; bare operands resolve to their
// literal or context value.
func Evaluate(expr *Expression, context Context) (Value, error) {
	switch expr.Type {
	case Operand, Group:
		return resolve(expr, context)
	case Operator:
		switch expr.Operator {
		case And:
			return expr.evaluateAnd(context)
		case Or:
			return expr.evaluateOr(context)
		default:
			return expr.evaluateComparison(context)
		}
	}

	return Value{}, errors.New("unknown expression type")
}

func resolve(expr *Expression, context Context) (Value, error) {
	// chained comparators, e.g. `5 > 3 == true`, nest an operator as an
	// operand; its boolean result is the resolved value
	if expr.Type == Operator {
		return Evaluate(expr, context)
	}

	if expr.Type == Group {
		elems := make([]Value, 0, len(expr.Items))
		for _, item := range expr.Items {
			v, err := resolve(item, context)
			if err != nil {
				return Value{}, err
			}

			elems = append(elems, v)
		}

		return Array(elems), nil
	}

	if len(expr.Path) > 0 {
		if context == nil {
			return Value{}, &UnresolvedVariableError{Path: expr.Path}
		}

		v, ok := context[strings.Join(expr.Path, ".")]
		if !ok {
			return Value{}, &UnresolvedVariableError{Path: expr.Path}
		}

		return v, nil
	}

	return expr.Value, nil
}
