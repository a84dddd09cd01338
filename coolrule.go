// Package coolrule evaluates boolean rule expressions such as
// `1 in (1, 2, 3) or 2 > 3` and `x ∉ (5, 6, 7)`.
//
// A rule is parsed once with New and can then be tested any number of
// times, optionally against a Context supplying values for the variable
// paths the rule references:
//
//	rule, err := coolrule.New(`foo.bar = "bar" and baz > 10`)
//	if err != nil {
//		// malformed rule text
//	}
//
//	ok, err := rule.TestWithContext(coolrule.Context{
//		"foo.bar": coolrule.StringValue("bar"),
//		"baz":     coolrule.NumberValue(20),
//	})
//
// A parsed Rule is immutable and safe for concurrent use; evaluation is a
// pure function over the rule tree and the supplied context.
package coolrule

import (
	"github.com/healeycodes/coolrule/eval"
	"github.com/healeycodes/coolrule/parse"
)

// Value is a literal or context value: a number, string, boolean, null,
// or array of scalar values.
type Value = eval.Value

// Context maps dotted variable paths (e.g. "foo.bar") to values. It is
// supplied per evaluation call and only ever read.
type Context = eval.Context

func NumberValue(n float64) Value {
	return eval.Number(n)
}

func StringValue(s string) Value {
	return eval.String(s)
}

func BooleanValue(b bool) Value {
	return eval.Boolean(b)
}

func NullValue() Value {
	return eval.Null()
}

// Rule is a parsed boolean expression, reusable across evaluations.
type Rule struct {
	expr *eval.Expression
}

// New parses rule text into a Rule. Malformed text fails with a
// *parse.SyntaxError describing the offending position.
func New(input string) (*Rule, error) {
	expr, err := parse.Parse(input)
	if err != nil {
		return nil, err
	}

	return &Rule{expr: expr}, nil
}

// Test evaluates the rule without a context; any variable reference fails
// with an *eval.UnresolvedVariableError.
func (r *Rule) Test() (bool, error) {
	return eval.Test(r.expr, nil)
}

// TestWithContext evaluates the rule, resolving variable paths against
// the given context.
func (r *Rule) TestWithContext(context Context) (bool, error) {
	return eval.Test(r.expr, context)
}
