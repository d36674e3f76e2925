package minipy

import (
	"errors"
	"fmt"
	"io"
)

// RuntimeError is a fatal evaluation fault: a type mismatch, an
// unknown method or field, a zero divisor. It propagates out of
// Execute unchanged; MethodBody does not intercept it.
type RuntimeError struct {
	Message string
}

func (e *RuntimeError) Error() string { return "runtime error: " + e.Message }

func runtimeErrorf(format string, args ...any) error {
	return &RuntimeError{Message: fmt.Sprintf(format, args...)}
}

// returnSignal carries a return value out of nested statements up to
// the nearest MethodBody. It travels the error path but is control
// flow, not a fault; only MethodBody unwraps it.
type returnSignal struct {
	value Value
}

func (s *returnSignal) Error() string { return "return outside of a method body" }

func (s *NumericConst) Execute(closure Closure, ctx Context) (Value, error) {
	return NewNumber(s.Value), nil
}

func (s *StringConst) Execute(closure Closure, ctx Context) (Value, error) {
	return NewString(s.Value), nil
}

func (s *BoolConst) Execute(closure Closure, ctx Context) (Value, error) {
	return NewBool(s.Value), nil
}

func (s *NoneConst) Execute(closure Closure, ctx Context) (Value, error) {
	return NewNone(), nil
}

func (s *VariableValue) Execute(closure Closure, ctx Context) (Value, error) {
	cur, ok := closure[s.Names[0]]
	if !ok {
		return NewNone(), runtimeErrorf("undefined variable %s", s.Names[0])
	}
	for _, name := range s.Names[1:] {
		inst := cur.Instance()
		if inst == nil {
			return NewNone(), runtimeErrorf("%s value has no field %s", cur.Kind(), name)
		}
		cur, ok = inst.Fields()[name]
		if !ok {
			return NewNone(), runtimeErrorf("instance of %s has no field %s", inst.Class().Name(), name)
		}
	}
	return cur, nil
}

func (s *Assignment) Execute(closure Closure, ctx Context) (Value, error) {
	val, err := s.RHS.Execute(closure, ctx)
	if err != nil {
		return NewNone(), err
	}
	closure[s.Var] = val
	return val, nil
}

func (s *FieldAssignment) Execute(closure Closure, ctx Context) (Value, error) {
	obj, err := s.Object.Execute(closure, ctx)
	if err != nil {
		return NewNone(), err
	}
	inst := obj.Instance()
	if inst == nil {
		return NewNone(), runtimeErrorf("cannot assign field %s on %s value", s.Field, obj.Kind())
	}
	val, err := s.RHS.Execute(closure, ctx)
	if err != nil {
		return NewNone(), err
	}
	inst.Fields()[s.Field] = val
	return val, nil
}

func (s *Print) Execute(closure Closure, ctx Context) (Value, error) {
	out := ctx.Output()
	last := NewNone()
	for i, arg := range s.Args {
		if i > 0 {
			if _, err := io.WriteString(out, " "); err != nil {
				return NewNone(), err
			}
		}
		val, err := arg.Execute(closure, ctx)
		if err != nil {
			return NewNone(), err
		}
		if err := WriteValue(out, val, ctx); err != nil {
			return NewNone(), err
		}
		last = val
	}
	if _, err := io.WriteString(out, "\n"); err != nil {
		return NewNone(), err
	}
	return last, nil
}

func (s *MethodCall) Execute(closure Closure, ctx Context) (Value, error) {
	obj, err := s.Object.Execute(closure, ctx)
	if err != nil {
		return NewNone(), err
	}
	inst := obj.Instance()
	if inst == nil {
		return NewNone(), runtimeErrorf("cannot call method %s on %s value", s.Method, obj.Kind())
	}
	args, err := executeArgs(s.Args, closure, ctx)
	if err != nil {
		return NewNone(), err
	}
	return inst.Call(s.Method, args, ctx)
}

func (s *NewInstance) Execute(closure Closure, ctx Context) (Value, error) {
	inst := NewInstanceOf(s.Class)
	if inst.HasMethod(initMethod, len(s.Args)) {
		args, err := executeArgs(s.Args, closure, ctx)
		if err != nil {
			return NewNone(), err
		}
		if _, err := inst.Call(initMethod, args, ctx); err != nil {
			return NewNone(), err
		}
	}
	return NewInstanceValue(inst), nil
}

func (s *Stringify) Execute(closure Closure, ctx Context) (Value, error) {
	val, err := s.Arg.Execute(closure, ctx)
	if err != nil {
		return NewNone(), err
	}
	text, err := FormatValue(val, ctx)
	if err != nil {
		return NewNone(), err
	}
	return NewString(text), nil
}

func (s *Add) Execute(closure Closure, ctx Context) (Value, error) {
	lhs, rhs, err := executePair(s.LHS, s.RHS, closure, ctx)
	if err != nil {
		return NewNone(), err
	}
	switch {
	case lhs.Kind() == KindNumber && rhs.Kind() == KindNumber:
		return NewNumber(lhs.Num() + rhs.Num()), nil
	case lhs.Kind() == KindString && rhs.Kind() == KindString:
		return NewString(lhs.Str() + rhs.Str()), nil
	}
	if inst := lhs.Instance(); inst != nil && inst.HasMethod(addMethod, 1) {
		return inst.Call(addMethod, []Value{rhs}, ctx)
	}
	return NewNone(), runtimeErrorf("cannot add %s and %s", lhs.Kind(), rhs.Kind())
}

func (s *Sub) Execute(closure Closure, ctx Context) (Value, error) {
	lhs, rhs, err := executeNumericPair(s.LHS, s.RHS, closure, ctx, "subtract")
	if err != nil {
		return NewNone(), err
	}
	return NewNumber(lhs - rhs), nil
}

func (s *Mult) Execute(closure Closure, ctx Context) (Value, error) {
	lhs, rhs, err := executeNumericPair(s.LHS, s.RHS, closure, ctx, "multiply")
	if err != nil {
		return NewNone(), err
	}
	return NewNumber(lhs * rhs), nil
}

func (s *Div) Execute(closure Closure, ctx Context) (Value, error) {
	lhs, rhs, err := executeNumericPair(s.LHS, s.RHS, closure, ctx, "divide")
	if err != nil {
		return NewNone(), err
	}
	if rhs == 0 {
		return NewNone(), runtimeErrorf("division by zero")
	}
	return NewNumber(lhs / rhs), nil
}

func (s *And) Execute(closure Closure, ctx Context) (Value, error) {
	lhs, err := s.LHS.Execute(closure, ctx)
	if err != nil {
		return NewNone(), err
	}
	if !lhs.Truthy() {
		return NewBool(false), nil
	}
	rhs, err := s.RHS.Execute(closure, ctx)
	if err != nil {
		return NewNone(), err
	}
	return NewBool(rhs.Truthy()), nil
}

func (s *Or) Execute(closure Closure, ctx Context) (Value, error) {
	lhs, err := s.LHS.Execute(closure, ctx)
	if err != nil {
		return NewNone(), err
	}
	if lhs.Truthy() {
		return NewBool(true), nil
	}
	rhs, err := s.RHS.Execute(closure, ctx)
	if err != nil {
		return NewNone(), err
	}
	return NewBool(rhs.Truthy()), nil
}

func (s *Not) Execute(closure Closure, ctx Context) (Value, error) {
	val, err := s.Arg.Execute(closure, ctx)
	if err != nil {
		return NewNone(), err
	}
	return NewBool(!val.Truthy()), nil
}

func (s *Comparison) Execute(closure Closure, ctx Context) (Value, error) {
	lhs, rhs, err := executePair(s.LHS, s.RHS, closure, ctx)
	if err != nil {
		return NewNone(), err
	}
	res, err := s.Cmp(lhs, rhs, ctx)
	if err != nil {
		return NewNone(), err
	}
	return NewBool(res), nil
}

func (s *Compound) Execute(closure Closure, ctx Context) (Value, error) {
	for _, stmt := range s.Statements {
		if _, err := stmt.Execute(closure, ctx); err != nil {
			return NewNone(), err
		}
	}
	return NewNone(), nil
}

func (s *MethodBody) Execute(closure Closure, ctx Context) (Value, error) {
	if _, err := s.Body.Execute(closure, ctx); err != nil {
		var ret *returnSignal
		if errors.As(err, &ret) {
			return ret.value, nil
		}
		return NewNone(), err
	}
	return NewNone(), nil
}

func (s *Return) Execute(closure Closure, ctx Context) (Value, error) {
	val, err := s.Value.Execute(closure, ctx)
	if err != nil {
		return NewNone(), err
	}
	return NewNone(), &returnSignal{value: val}
}

func (s *ClassDefinition) Execute(closure Closure, ctx Context) (Value, error) {
	cls := s.Cls.Class()
	if cls == nil {
		return NewNone(), runtimeErrorf("class definition does not hold a class")
	}
	closure[cls.Name()] = s.Cls
	return s.Cls, nil
}

func (s *IfElse) Execute(closure Closure, ctx Context) (Value, error) {
	cond, err := s.Cond.Execute(closure, ctx)
	if err != nil {
		return NewNone(), err
	}
	if cond.Truthy() {
		return s.Then.Execute(closure, ctx)
	}
	if s.Else != nil {
		return s.Else.Execute(closure, ctx)
	}
	return NewNone(), nil
}

func executeArgs(args []Statement, closure Closure, ctx Context) ([]Value, error) {
	vals := make([]Value, len(args))
	for i, arg := range args {
		val, err := arg.Execute(closure, ctx)
		if err != nil {
			return nil, err
		}
		vals[i] = val
	}
	return vals, nil
}

func executePair(lhs, rhs Statement, closure Closure, ctx Context) (Value, Value, error) {
	l, err := lhs.Execute(closure, ctx)
	if err != nil {
		return NewNone(), NewNone(), err
	}
	r, err := rhs.Execute(closure, ctx)
	if err != nil {
		return NewNone(), NewNone(), err
	}
	return l, r, nil
}

func executeNumericPair(lhs, rhs Statement, closure Closure, ctx Context, verb string) (int, int, error) {
	l, r, err := executePair(lhs, rhs, closure, ctx)
	if err != nil {
		return 0, 0, err
	}
	if l.Kind() != KindNumber || r.Kind() != KindNumber {
		return 0, 0, runtimeErrorf("cannot %s %s and %s", verb, l.Kind(), r.Kind())
	}
	return l.Num(), r.Num(), nil
}
