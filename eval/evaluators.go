package eval

func (expr *Expression) evaluateAnd(context Context) (Value, error) {
	left, err := Evaluate(expr.Left, context)
	if err != nil {
		return Value{}, err
	}

	if left.Kind != KindBool {
		return Value{}, &TypeMismatchError{Op: And, Left: left.Kind}
	}

	if !left.Bool {
		return Boolean(false), nil
	}

	right, err := Evaluate(expr.Right, context)
	if err != nil {
		return Value{}, err
	}

	if right.Kind != KindBool {
		return Value{}, &TypeMismatchError{Op: And, Left: right.Kind}
	}

	return Boolean(right.Bool), nil
}

func (expr *Expression) evaluateOr(context Context) (Value, error) {
	left, err := Evaluate(expr.Left, context)
	if err != nil {
		return Value{}, err
	}

	if left.Kind != KindBool {
		return Value{}, &TypeMismatchError{Op: Or, Left: left.Kind}
	}

	if left.Bool {
		return Boolean(true), nil
	}

	right, err := Evaluate(expr.Right, context)
	if err != nil {
		return Value{}, err
	}

	if right.Kind != KindBool {
		return Value{}, &TypeMismatchError{Op: Or, Left: right.Kind}
	}

	return Boolean(right.Bool), nil
}

func (expr *Expression) evaluateComparison(context Context) (Value, error) {
	left, err := resolve(expr.Left, context)
	if err != nil {
		return Value{}, err
	}

	right, err := resolve(expr.Right, context)
	if err != nil {
		return Value{}, err
	}

	switch expr.Operator {
	case Equal, Is:
		return Boolean(equal(left, right)), nil
	case NotEqual, IsNot:
		return Boolean(!equal(left, right)), nil
	case GreaterThan, GreaterEqualThan, LessThan, LessEqualThan:
		return order(expr.Operator, left, right)
	case In:
		if right.Kind != KindArray {
			return Value{}, &TypeMismatchError{Op: In, Left: left.Kind, Right: right.Kind}
		}

		return Boolean(contains(right.Elems, left)), nil
	case NotIn:
		if right.Kind != KindArray {
			return Value{}, &TypeMismatchError{Op: NotIn, Left: left.Kind, Right: right.Kind}
		}

		return Boolean(!contains(right.Elems, left)), nil
	case SubsetOf:
		if left.Kind != KindArray || right.Kind != KindArray {
			return Value{}, &TypeMismatchError{Op: SubsetOf, Left: left.Kind, Right: right.Kind}
		}

		return Boolean(subsetOf(left.Elems, right.Elems)), nil
	case SupersetOf:
		if left.Kind != KindArray || right.Kind != KindArray {
			return Value{}, &TypeMismatchError{Op: SupersetOf, Left: left.Kind, Right: right.Kind}
		}

		return Boolean(subsetOf(right.Elems, left.Elems)), nil
	case Intersects:
		if left.Kind != KindArray || right.Kind != KindArray {
			return Value{}, &TypeMismatchError{Op: Intersects, Left: left.Kind, Right: right.Kind}
		}

		return Boolean(intersects(left.Elems, right.Elems)), nil
	case NotIntersects:
		if left.Kind != KindArray || right.Kind != KindArray {
			return Value{}, &TypeMismatchError{Op: NotIntersects, Left: left.Kind, Right: right.Kind}
		}

		return Boolean(!intersects(left.Elems, right.Elems)), nil
	}

	return Value{}, &TypeMismatchError{Op: expr.Operator, Left: left.Kind, Right: right.Kind}
}

// order applies one of the four ordering comparators. Two arrays compare
// element-wise over the shorter length; anything else defers to the
// scalar ordering rule.
func order(op OperatorType, left, right Value) (Value, error) {
	if left.Kind == KindArray && right.Kind == KindArray {
		n := min(len(left.Elems), len(right.Elems))
		for i := 0; i < n; i++ {
			ok, err := orderScalar(op, left.Elems[i], right.Elems[i])
			if err != nil {
				return Value{}, err
			}

			if !ok {
				return Boolean(false), nil
			}
		}

		return Boolean(true), nil
	}

	if left.Kind == KindArray || right.Kind == KindArray {
		return Value{}, &TypeMismatchError{Op: op, Left: left.Kind, Right: right.Kind}
	}

	ok, err := orderScalar(op, left, right)
	if err != nil {
		return Value{}, err
	}

	return Boolean(ok), nil
}

func orderScalar(op OperatorType, left, right Value) (bool, error) {
	c, ok := compareScalar(left, right)
	if !ok {
		return false, &TypeMismatchError{Op: op, Left: left.Kind, Right: right.Kind}
	}

	switch op {
	case GreaterThan:
		return c > 0, nil
	case GreaterEqualThan:
		return c >= 0, nil
	case LessThan:
		return c < 0, nil
	case LessEqualThan:
		return c <= 0, nil
	}

	return false, &TypeMismatchError{Op: op, Left: left.Kind, Right: right.Kind}
}
