package minipy

// Comparator compares two values within a context, as used by the
// Comparison node.
type Comparator func(lhs, rhs Value, ctx Context) (bool, error)

// Equal reports lhs == rhs. Numbers, strings and bools compare by
// value; two Nones are equal; an instance whose class has __eq__
// taking one argument dispatches to it, and the result must be a
// bool. Every other pairing is a runtime fault.
func Equal(lhs, rhs Value, ctx Context) (bool, error) {
	switch {
	case lhs.Kind() == KindNumber && rhs.Kind() == KindNumber:
		return lhs.Num() == rhs.Num(), nil
	case lhs.Kind() == KindString && rhs.Kind() == KindString:
		return lhs.Str() == rhs.Str(), nil
	case lhs.Kind() == KindBool && rhs.Kind() == KindBool:
		return lhs.Bool() == rhs.Bool(), nil
	case lhs.IsNone() && rhs.IsNone():
		return true, nil
	}
	if inst := lhs.Instance(); inst != nil && inst.HasMethod(eqMethod, 1) {
		return dispatchComparison(inst, eqMethod, rhs, ctx)
	}
	return false, runtimeErrorf("cannot compare %s and %s for equality", lhs.Kind(), rhs.Kind())
}

// Less reports lhs < rhs: numeric for numbers, lexicographic for
// strings, False < True for bools, __lt__ dispatch for instances.
func Less(lhs, rhs Value, ctx Context) (bool, error) {
	switch {
	case lhs.Kind() == KindNumber && rhs.Kind() == KindNumber:
		return lhs.Num() < rhs.Num(), nil
	case lhs.Kind() == KindString && rhs.Kind() == KindString:
		return lhs.Str() < rhs.Str(), nil
	case lhs.Kind() == KindBool && rhs.Kind() == KindBool:
		return !lhs.Bool() && rhs.Bool(), nil
	}
	if inst := lhs.Instance(); inst != nil && inst.HasMethod(ltMethod, 1) {
		return dispatchComparison(inst, ltMethod, rhs, ctx)
	}
	return false, runtimeErrorf("cannot order %s and %s", lhs.Kind(), rhs.Kind())
}

func dispatchComparison(inst *Instance, method string, rhs Value, ctx Context) (bool, error) {
	res, err := inst.Call(method, []Value{rhs}, ctx)
	if err != nil {
		return false, err
	}
	if res.Kind() != KindBool {
		return false, runtimeErrorf("%s must return a bool, got %s", method, res.Kind())
	}
	return res.Bool(), nil
}

// NotEqual is the negation of Equal.
func NotEqual(lhs, rhs Value, ctx Context) (bool, error) {
	eq, err := Equal(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	return !eq, nil
}

// Greater reports lhs > rhs, derived from Less and Equal.
func Greater(lhs, rhs Value, ctx Context) (bool, error) {
	less, err := Less(lhs, rhs, ctx)
	if err != nil || less {
		return false, err
	}
	eq, err := Equal(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	return !eq, nil
}

// LessOrEqual reports lhs <= rhs, the negation of Greater.
func LessOrEqual(lhs, rhs Value, ctx Context) (bool, error) {
	greater, err := Greater(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	return !greater, nil
}

// GreaterOrEqual reports lhs >= rhs, the negation of Less.
func GreaterOrEqual(lhs, rhs Value, ctx Context) (bool, error) {
	less, err := Less(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	return !less, nil
}
