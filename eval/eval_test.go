package eval

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func operand(v Value) *Expression {
	return &Expression{Type: Operand, Value: v}
}

func variable(path ...string) *Expression {
	return &Expression{Type: Operand, Path: path}
}

func group(values ...Value) *Expression {
	items := make([]*Expression, 0, len(values))
	for _, v := range values {
		items = append(items, operand(v))
	}

	return &Expression{Type: Group, Items: items}
}

func comparison(op OperatorType, left, right *Expression) *Expression {
	return &Expression{Type: Operator, Operator: op, Left: left, Right: right}
}

func TestComparisons(t *testing.T) {
	tests := []struct {
		name string
		expr *Expression
		want bool
	}{
		{"greater", comparison(GreaterThan, operand(Number(5)), operand(Number(3))), true},
		{"greater or equal on equal numbers", comparison(GreaterEqualThan, operand(Number(5)), operand(Number(5))), true},
		{"less", comparison(LessThan, operand(Number(5)), operand(Number(3))), false},
		{"string ordering", comparison(LessThan, operand(String("a")), operand(String("b"))), true},
		{"cross-kind equality is false", comparison(Equal, operand(Number(1)), operand(String("1"))), false},
		{"cross-kind inequality is true", comparison(NotEqual, operand(Number(1)), operand(String("1"))), true},
		{"is behaves like equality", comparison(Is, operand(Null()), operand(Null())), true},
		{"is not", comparison(IsNot, operand(Number(4)), operand(Null())), true},
		{"membership hit", comparison(In, operand(Number(2)), group(Number(1), Number(2))), true},
		{"membership miss", comparison(In, operand(Number(3)), group(Number(1), Number(2))), false},
		{"negated membership", comparison(NotIn, operand(Number(3)), group(Number(1), Number(2))), true},
		{"array on the left of in is never a member", comparison(In, group(Number(1)), group(Number(1), Number(2))), false},
		{"subset", comparison(SubsetOf, group(Number(1), Number(2)), group(Number(1), Number(2), Number(3))), true},
		{"not a subset", comparison(SubsetOf, group(Number(1), Number(4)), group(Number(1), Number(2), Number(3))), false},
		{"superset", comparison(SupersetOf, group(Number(1), Number(2), Number(3)), group(Number(1), Number(2))), true},
		{"intersection", comparison(Intersects, group(Number(4)), group(Number(3), Number(4), Number(5))), true},
		{"empty intersection", comparison(NotIntersects, group(Number(1)), group(Number(3), Number(4))), true},
		{"array equality", comparison(Equal, group(Number(1), Number(2)), group(Number(1), Number(2))), true},
		{"array ordering with null elements", comparison(GreaterEqualThan, group(Number(4), Null()), group(Number(1), Null())), true},
		{"strict array ordering fails on equal elements", comparison(GreaterThan, group(Number(4), Null()), group(Number(1), Null())), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Test(tt.expr, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLogicalShortCircuit(t *testing.T) {
	missing := comparison(GreaterThan, variable("missing"), operand(Number(10)))

	// the right subtree references a variable that no context provides,
	// so a result proves it was never evaluated
	or := comparison(Or, comparison(Equal, operand(Number(1)), operand(Number(1))), missing)
	got, err := Test(or, nil)
	require.NoError(t, err)
	assert.True(t, got)

	and := comparison(And, comparison(Equal, operand(Number(1)), operand(Number(2))), missing)
	got, err = Test(and, nil)
	require.NoError(t, err)
	assert.False(t, got)
}

func TestUnresolvedVariable(t *testing.T) {
	expr := comparison(GreaterThan, variable("x"), operand(Number(10)))

	_, err := Test(expr, nil)
	var unresolvedErr *UnresolvedVariableError
	require.ErrorAs(t, err, &unresolvedErr)
	assert.Equal(t, []string{"x"}, unresolvedErr.Path)

	_, err = Test(expr, Context{"y": Number(1)})
	require.ErrorAs(t, err, &unresolvedErr)

	got, err := Test(expr, Context{"x": Number(11)})
	require.NoError(t, err)
	assert.True(t, got)
}

func TestDottedPathResolution(t *testing.T) {
	expr := comparison(Equal, variable("foo", "bar"), operand(String("bar")))

	got, err := Test(expr, Context{"foo.bar": String("bar")})
	require.NoError(t, err)
	assert.True(t, got)
}

func TestTypeMismatches(t *testing.T) {
	tests := []struct {
		name string
		expr *Expression
	}{
		{"ordering booleans", comparison(GreaterThan, operand(Boolean(true)), operand(Boolean(false)))},
		{"ordering across kinds", comparison(LessThan, operand(Number(1)), operand(String("a")))},
		{"ordering array against scalar", comparison(GreaterThan, group(Number(1)), operand(Number(1)))},
		{"membership against a scalar", comparison(In, operand(Number(1)), operand(Number(2)))},
		{"subset of a scalar", comparison(SubsetOf, group(Number(1)), operand(Number(1)))},
		{"logical operand is not boolean", comparison(And, operand(Number(1)), operand(Boolean(true)))},
		{"array ordering with unordered elements", comparison(GreaterThan, group(Number(1)), group(String("a")))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Test(tt.expr, nil)
			var mismatchErr *TypeMismatchError
			assert.ErrorAs(t, err, &mismatchErr)
		})
	}
}

func TestResultMustBeBoolean(t *testing.T) {
	_, err := Test(operand(Number(5)), nil)
	var mismatchErr *TypeMismatchError
	require.ErrorAs(t, err, &mismatchErr)
	assert.Equal(t, KindNumber, mismatchErr.Left)

	got, err := Test(operand(Boolean(true)), nil)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestEvaluationIsDeterministic(t *testing.T) {
	expr := comparison(Or,
		comparison(In, variable("x"), group(Number(5), Number(6), Number(7))),
		comparison(GreaterThan, variable("x"), operand(Number(100))),
	)
	context := Context{"x": Number(6)}

	for i := 0; i < 10; i++ {
		got, err := Test(expr, context)
		require.NoError(t, err)
		assert.True(t, got)
	}
}

func TestUnknownOperator(t *testing.T) {
	_, err := Test(comparison(OperatorType("mystery"), operand(Number(1)), operand(Number(2))), nil)
	assert.Error(t, err)
}

func TestIsOperator(t *testing.T) {
	assert.True(t, IsOperator("and"))
	assert.True(t, IsOperator("not_in"))
	assert.False(t, IsOperator("xor"))
}

func TestErrorMessages(t *testing.T) {
	unresolved := &UnresolvedVariableError{Path: []string{"foo", "bar"}}
	assert.Equal(t, "foo.bar missing from context", unresolved.Error())

	mismatch := &TypeMismatchError{Op: GreaterThan, Left: KindNumber, Right: KindString}
	assert.Equal(t, "cannot apply 'greater' to number and string", mismatch.Error())

	var err error = errors.Join(mismatch)
	var target *TypeMismatchError
	assert.True(t, errors.As(err, &target))
}
