package minipy

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ValueKind identifies the runtime type of a Value.
type ValueKind int

const (
	KindNone ValueKind = iota
	KindNumber
	KindString
	KindBool
	KindClass
	KindInstance
)

func (k ValueKind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindClass:
		return "class"
	case KindInstance:
		return "instance"
	default:
		return "unknown"
	}
}

// Value is a dynamically typed runtime value. Copies of a Value share
// the referent: class and instance payloads are pointers, so a value
// stays alive while any copy still references it. The zero Value is
// None.
type Value struct {
	kind ValueKind
	data any
}

func NewNone() Value { return Value{} }

func NewNumber(n int) Value { return Value{kind: KindNumber, data: n} }

func NewString(s string) Value { return Value{kind: KindString, data: s} }

func NewBool(b bool) Value { return Value{kind: KindBool, data: b} }

func NewClassValue(c *Class) Value { return Value{kind: KindClass, data: c} }

func NewInstanceValue(inst *Instance) Value { return Value{kind: KindInstance, data: inst} }

// Truthy reduces the value to a boolean: numbers are true when
// non-zero, strings when non-empty, bools by value. Everything else,
// None included, is false.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindNumber:
		return v.data.(int) != 0
	case KindString:
		return v.data.(string) != ""
	case KindBool:
		return v.data.(bool)
	default:
		return false
	}
}

const (
	initMethod = "__init__"
	strMethod  = "__str__"
	eqMethod   = "__eq__"
	ltMethod   = "__lt__"
	addMethod  = "__add__"
)

// WriteValue writes the printed form of v: numbers and strings in
// literal form, bools as True/False, classes as "Class <name>", None
// as the word None. An instance with a zero-argument __str__ prints
// the result of that call, any other instance an address token.
func WriteValue(w io.Writer, v Value, ctx Context) error {
	switch v.kind {
	case KindNone:
		_, err := io.WriteString(w, "None")
		return err
	case KindNumber:
		_, err := io.WriteString(w, strconv.Itoa(v.Num()))
		return err
	case KindString:
		_, err := io.WriteString(w, v.Str())
		return err
	case KindBool:
		s := "False"
		if v.Bool() {
			s = "True"
		}
		_, err := io.WriteString(w, s)
		return err
	case KindClass:
		_, err := io.WriteString(w, "Class "+v.Class().Name())
		return err
	case KindInstance:
		inst := v.Instance()
		if inst.HasMethod(strMethod, 0) {
			res, err := inst.Call(strMethod, nil, ctx)
			if err != nil {
				return err
			}
			return WriteValue(w, res, ctx)
		}
		_, err := fmt.Fprintf(w, "%p", inst)
		return err
	default:
		return runtimeErrorf("cannot print %s value", v.kind)
	}
}

// FormatValue renders v to a string the way print would.
func FormatValue(v Value, ctx Context) (string, error) {
	var sb strings.Builder
	if err := WriteValue(&sb, v, ctx); err != nil {
		return "", err
	}
	return sb.String(), nil
}
