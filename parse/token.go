package parse

import (
	"slices"
	"strconv"

	"github.com/healeycodes/coolrule/eval"
)

// Operator token types share their string values with eval.OperatorType
// so a token converts to its operator with a plain type conversion.
type tokenType string

const (
	numberLiteral    tokenType = "number_literal"
	stringLiteral    tokenType = "string_literal"
	booleanLiteral   tokenType = "boolean_literal"
	noneLiteral      tokenType = "none_literal"
	identifier       tokenType = "identifier"
	groupLiteral     tokenType = "group_literal"
	comma            tokenType = "comma"
	leftParenthesis  tokenType = "left_parenthesis"
	rightParenthesis tokenType = "right_parenthesis"
	and              tokenType = "and"
	or               tokenType = "or"
	equal            tokenType = "equal"
	notEqual         tokenType = "not_equal"
	greaterEqual     tokenType = "greater_equal"
	greater          tokenType = "greater"
	lessEqual        tokenType = "less_equal"
	less             tokenType = "less"
	in               tokenType = "in"
	notIn            tokenType = "not_in"
	is               tokenType = "is"
	isNot            tokenType = "is_not"
	subsetOf         tokenType = "subset_of"
	supersetOf       tokenType = "superset_of"
	intersects       tokenType = "intersects"
	notIntersects    tokenType = "not_intersects"
	whitespace       tokenType = "whitespace"
	invalid          tokenType = "invalid"
)

type token struct {
	_type    tokenType
	strValue string
	value    eval.Value

	// group literal elements, set only for groupLiteral tokens
	elems []token

	line   int
	column int
}

func (tk *token) isNothing() bool {
	return tk._type == ""
}

func (tk *token) isParenthesis() bool {
	return tk.isLeftParenthesis() || tk.isRightParenthesis()
}

func (tk *token) isLeftParenthesis() bool {
	return tk._type == leftParenthesis
}

func (tk *token) isRightParenthesis() bool {
	return tk._type == rightParenthesis
}

var (
	logicalOperators    = []tokenType{and, or}
	comparisonOperators = []tokenType{
		equal, notEqual, greaterEqual, greater, less, lessEqual,
		in, notIn, is, isNot, subsetOf, supersetOf, intersects, notIntersects,
	}
	literalTypes = []tokenType{numberLiteral, stringLiteral, booleanLiteral, noneLiteral}
)

var precedence = map[tokenType]int{
	equal:         1,
	notEqual:      1,
	greaterEqual:  1,
	greater:       1,
	less:          1,
	lessEqual:     1,
	in:            1,
	notIn:         1,
	is:            1,
	isNot:         1,
	subsetOf:      1,
	supersetOf:    1,
	intersects:    1,
	notIntersects: 1,
	and:           2,
	or:            3,
}

func (tk *token) hasLowerOrSamePrecedenceThan(tk1 token) bool {
	l, lok := precedence[tk._type]
	r, rok := precedence[tk1._type]

	if !lok || !rok {
		return false
	}

	return l >= r
}

func (tk *token) isPredicateToken() bool {
	return tk.isOperator() || tk.isOperand() || tk.isParenthesis()
}

func (tk *token) isLogicalOperator() bool {
	return slices.Contains(logicalOperators, tk._type)
}

func (tk *token) isComparisonOperator() bool {
	return slices.Contains(comparisonOperators, tk._type)
}

func (tk *token) isOperand() bool {
	return tk.isLiteral() || tk._type == identifier || tk._type == groupLiteral
}

func (tk *token) isOperator() bool {
	return tk.isComparisonOperator() || tk.isLogicalOperator()
}

func (tk *token) isLiteral() bool {
	return slices.Contains(literalTypes, tk._type)
}

// isScalarOperand reports whether the token can appear as an element of a
// group literal (no nested groups).
func (tk *token) isScalarOperand() bool {
	return tk.isLiteral() || tk._type == identifier
}

func (tk *token) convertToValue() error {
	switch tk._type {
	case numberLiteral:
		n, err := strconv.ParseFloat(tk.strValue, 64)
		if err != nil {
			return err
		}

		tk.value = eval.Number(n)
	case booleanLiteral:
		b, err := strconv.ParseBool(tk.strValue)
		if err != nil {
			return err
		}

		tk.value = eval.Boolean(b)
	case stringLiteral:
		tk.value = eval.String(tk.strValue)
	case noneLiteral:
		tk.value = eval.Null()
	}

	return nil
}
