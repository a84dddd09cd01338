package eval

// Kind identifies which variant of Value is populated. The set is closed;
// every comparator switches over it exhaustively.
type Kind string

const (
	KindNumber Kind = "number"
	KindString Kind = "string"
	KindBool   Kind = "bool"
	KindNull   Kind = "null"
	KindArray  Kind = "array"
)

// Value is a tagged union over the kinds a rule operand can resolve to.
// Only the field matching Kind is meaningful. Arrays hold scalar values;
// the grammar cannot produce nested arrays.
type Value struct {
	Kind Kind

	Num   float64
	Str   string
	Bool  bool
	Elems []Value
}

func Number(n float64) Value {
	return Value{Kind: KindNumber, Num: n}
}

func String(s string) Value {
	return Value{Kind: KindString, Str: s}
}

func Boolean(b bool) Value {
	return Value{Kind: KindBool, Bool: b}
}

func Null() Value {
	return Value{Kind: KindNull}
}

func Array(elems []Value) Value {
	return Value{Kind: KindArray, Elems: elems}
}

// equal implements the permissive equality rule: same-kind values compare
// by content, null equals null, arrays compare element-wise with length,
// and any cross-kind pair is unequal rather than an error.
func equal(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}

	switch a.Kind {
	case KindNumber:
		return a.Num == b.Num
	case KindString:
		return a.Str == b.Str
	case KindBool:
		return a.Bool == b.Bool
	case KindNull:
		return true
	case KindArray:
		if len(a.Elems) != len(b.Elems) {
			return false
		}
		for i := range a.Elems {
			if !equal(a.Elems[i], b.Elems[i]) {
				return false
			}
		}
		return true
	}

	return false
}

// compareScalar orders two scalar values, returning a negative, zero or
// positive result. Ordering is defined for number pairs, string pairs
// (lexicographic) and null pairs (always equal); everything else,
// booleans included, reports false.
func compareScalar(a, b Value) (int, bool) {
	if a.Kind != b.Kind {
		return 0, false
	}

	switch a.Kind {
	case KindNumber:
		switch {
		case a.Num < b.Num:
			return -1, true
		case a.Num > b.Num:
			return 1, true
		}
		return 0, true
	case KindString:
		switch {
		case a.Str < b.Str:
			return -1, true
		case a.Str > b.Str:
			return 1, true
		}
		return 0, true
	case KindNull:
		return 0, true
	}

	return 0, false
}

func contains(elems []Value, v Value) bool {
	for _, e := range elems {
		if equal(e, v) {
			return true
		}
	}

	return false
}

func subsetOf(sub, super []Value) bool {
	for _, e := range sub {
		if !contains(super, e) {
			return false
		}
	}

	return true
}

func intersects(a, b []Value) bool {
	for _, e := range a {
		if contains(b, e) {
			return true
		}
	}

	return false
}
