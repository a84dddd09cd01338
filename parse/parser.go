// Package parse turns rule text like `x in (5, 6, 7) or y.z > 10` into an
// eval.Expression tree.
//
// The pipeline tokenizes the whole input, checks parenthesis balance and
// operand/operator alternation, folds list literals such as (1, 2, 3)
// into single group tokens, then converts the infix token stream to a
// tree via postfix notation. `and` binds tighter than `or`, both are
// left-associative, and comparators bind tightest.
package parse

import (
	"strings"

	"github.com/healeycodes/coolrule/eval"
)

// Parse converts rule text into an expression tree. It either consumes
// the whole input or fails with a *SyntaxError.
func Parse(input string) (*eval.Expression, error) {
	tokens, err := tokenize(input)
	if err != nil {
		return nil, err
	}

	if len(tokens) == 0 {
		return nil, syntaxErrorf(1, 1, "empty expression")
	}

	if err := checkParenthesesBalance(tokens); err != nil {
		return nil, err
	}

	tokens = foldGroups(tokens)

	if err := checkExpressionSyntax(tokens); err != nil {
		return nil, err
	}

	return infixToExpressionTree(tokens)
}

func tokenize(input string) ([]token, error) {
	t := newTokenizer(input)
	tokens := make([]token, 0)

	for {
		tk, err := t.getNextToken()
		if err != nil {
			return nil, err
		}

		if tk.isNothing() {
			break
		}

		tokens = append(tokens, *tk)
	}

	return tokens, nil
}

// foldGroups replaces each list literal span `( operand , ... )` with a
// single group token. A parenthesized single operand only counts as a
// list when it sits beside a comparator, e.g. `(4) ∩ (3, 4, 5)` or
// `x in (5)`; otherwise the parentheses are left for grouping.
func foldGroups(tokens []token) []token {
	out := make([]token, 0, len(tokens))

	for i := 0; i < len(tokens); {
		tk := tokens[i]
		if !tk.isLeftParenthesis() {
			out = append(out, tk)
			i++
			continue
		}

		elems, end, ok := scanGroup(tokens, i)
		if !ok || (len(elems) == 1 && !besideComparator(tokens, i, end)) {
			out = append(out, tk)
			i++
			continue
		}

		out = append(out, token{
			_type:    groupLiteral,
			strValue: tk.strValue,
			elems:    elems,
			line:     tk.line,
			column:   tk.column,
		})
		i = end + 1
	}

	return out
}

// scanGroup reports whether a list literal starts at the opening
// parenthesis at `start`, returning its elements and the index of the
// closing parenthesis.
func scanGroup(tokens []token, start int) ([]token, int, bool) {
	elems := make([]token, 0)

	j := start + 1
	for {
		if j >= len(tokens) || !tokens[j].isScalarOperand() {
			return nil, 0, false
		}

		elems = append(elems, tokens[j])
		j++

		if j >= len(tokens) {
			return nil, 0, false
		}

		if tokens[j].isRightParenthesis() {
			return elems, j, true
		}

		if tokens[j]._type != comma {
			return nil, 0, false
		}

		j++
	}
}

func besideComparator(tokens []token, start, end int) bool {
	if start > 0 && tokens[start-1].isComparisonOperator() {
		return true
	}

	return end+1 < len(tokens) && tokens[end+1].isComparisonOperator()
}

func checkParenthesesBalance(tokens []token) error {
	unclosedParentheses := stack[token]{}
	for _, t := range tokens {
		if t.isLeftParenthesis() {
			unclosedParentheses.push(t)
		} else if t.isRightParenthesis() {
			tk := unclosedParentheses.pop()
			if tk.isNothing() {
				return syntaxErrorf(t.line, t.column, "unexpected closing parenthesis")
			}
		}
	}

	if !unclosedParentheses.empty() {
		tk := unclosedParentheses.pop()
		return syntaxErrorf(tk.line, tk.column, "opening parenthesis is missing its closing parenthesis")
	}

	return nil
}

func checkExpressionSyntax(tokens []token) error {
	if err := checkParenthesesSyntax(tokens); err != nil {
		return err
	}

	var previousToken token
	isPreviousOperand := false
	isPreviousOperator := false

	for i, t := range tokens {
		if t.isParenthesis() {
			continue
		}

		if !t.isPredicateToken() {
			return syntaxErrorf(t.line, t.column, "'%s' is not valid as part of an expression", t.strValue)
		}

		if i == 0 && t.isOperator() {
			return syntaxErrorf(t.line, t.column, "can't start an expression with operator '%s'", t.strValue)
		}

		if i == len(tokens)-1 && t.isOperator() {
			return syntaxErrorf(t.line, t.column, "can't end an expression with operator '%s'", t.strValue)
		}

		if isPreviousOperand && t.isOperand() {
			return syntaxErrorf(t.line, t.column, "expected operator after '%s'", previousToken.strValue)
		}

		if isPreviousOperator && t.isOperator() {
			return syntaxErrorf(t.line, t.column, "expected operand after '%s'", previousToken.strValue)
		}

		previousToken = t
		isPreviousOperand = t.isOperand()
		isPreviousOperator = t.isOperator()
	}

	return nil
}

func checkParenthesesSyntax(tokens []token) error {
	var previous token

	for i, t := range tokens {
		if i > 0 {
			if previous.isLeftParenthesis() && t.isOperator() {
				return syntaxErrorf(t.line, t.column, "an operator is not allowed right after an opening parenthesis")
			}

			if previous.isLeftParenthesis() && t.isRightParenthesis() {
				return syntaxErrorf(t.line, t.column, "empty parentheses")
			}

			if previous.isOperator() && t.isRightParenthesis() {
				return syntaxErrorf(t.line, t.column, "an operator is not allowed right before a closing parenthesis")
			}

			if previous.isRightParenthesis() && t.isOperand() {
				return syntaxErrorf(t.line, t.column, "an operand is not allowed right after a closing parenthesis")
			}

			if previous.isOperand() && t.isLeftParenthesis() {
				return syntaxErrorf(t.line, t.column, "expected an operator before the opening parenthesis")
			}

			if previous.isRightParenthesis() && t.isLeftParenthesis() {
				return syntaxErrorf(t.line, t.column, "expected an operator between parenthesized expressions")
			}
		}

		previous = t
	}

	return nil
}

func infixToExpressionTree(tokens []token) (*eval.Expression, error) {
	t, err := infixToPostfix(tokens)
	if err != nil {
		return nil, err
	}

	return postfixToExpressionTree(t)
}

func infixToPostfix(tokens []token) ([]token, error) {
	s := stack[token]{}
	postfix := make([]token, 0, len(tokens))

	for _, tk := range tokens {
		if tk.isLeftParenthesis() {
			s.push(tk)
		} else if tk.isRightParenthesis() {
			for tki := s.pop(); !tki.isNothing(); tki = s.pop() {
				if tki.isLeftParenthesis() {
					break
				}
				postfix = append(postfix, tki)
			}
		} else if tk.isOperand() {
			postfix = append(postfix, tk)
		} else if tk.isOperator() {
			for tki := s.pop(); !tki.isNothing(); tki = s.pop() {
				if tk.hasLowerOrSamePrecedenceThan(tki) && !tki.isLeftParenthesis() {
					postfix = append(postfix, tki)
					continue
				}
				s.push(tki)
				break
			}
			s.push(tk)
		} else {
			return nil, syntaxErrorf(tk.line, tk.column, "token '%s' is invalid as part of an expression", tk.strValue)
		}
	}

	for tki := s.pop(); !tki.isNothing(); tki = s.pop() {
		if !tki.isParenthesis() {
			postfix = append(postfix, tki)
		}
	}

	return postfix, nil
}

func postfixToExpressionTree(tokens []token) (*eval.Expression, error) {
	s := stack[*eval.Expression]{}

	for _, tk := range tokens {
		if tk.isOperand() {
			s.push(operandExpression(tk))
		} else if tk.isOperator() {
			right := s.pop()
			left := s.pop()

			if left == nil || right == nil || !eval.IsOperator(string(tk._type)) {
				return nil, syntaxErrorf(tk.line, tk.column, "operator '%s' is missing an operand", tk.strValue)
			}

			s.push(&eval.Expression{
				Type:     eval.Operator,
				Operator: eval.OperatorType(tk._type),
				Left:     left,
				Right:    right,
			})
		}
	}

	root := s.pop()
	if root == nil || !s.empty() {
		return nil, syntaxErrorf(tokens[0].line, tokens[0].column, "malformed expression")
	}

	return root, nil
}

func operandExpression(tk token) *eval.Expression {
	switch tk._type {
	case identifier:
		return &eval.Expression{Type: eval.Operand, Path: strings.Split(tk.strValue, ".")}
	case groupLiteral:
		items := make([]*eval.Expression, 0, len(tk.elems))
		for _, e := range tk.elems {
			items = append(items, operandExpression(e))
		}

		return &eval.Expression{Type: eval.Group, Items: items}
	default:
		return &eval.Expression{Type: eval.Operand, Value: tk.value}
	}
}
