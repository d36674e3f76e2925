package minipy

import (
	"strings"
	"testing"
)

func TestTruthy(t *testing.T) {
	cases := []struct {
		val  Value
		want bool
	}{
		{NewNumber(0), false},
		{NewNumber(1), true},
		{NewNumber(-5), true},
		{NewString(""), false},
		{NewString("x"), true},
		{NewBool(true), true},
		{NewBool(false), false},
		{NewNone(), false},
		{NewClassValue(NewClass("C", nil, nil)), false},
		{NewInstanceValue(NewInstanceOf(NewClass("C", nil, nil))), false},
	}
	for _, c := range cases {
		if got := c.val.Truthy(); got != c.want {
			t.Fatalf("Truthy(%v %v) = %t, want %t", c.val.Kind(), c.val.data, got, c.want)
		}
	}
}

func TestFormatPrimitives(t *testing.T) {
	ctx := &BufferedContext{}
	cases := []struct {
		val  Value
		want string
	}{
		{NewNumber(42), "42"},
		{NewNumber(-7), "-7"},
		{NewString("hello"), "hello"},
		{NewBool(true), "True"},
		{NewBool(false), "False"},
		{NewNone(), "None"},
		{NewClassValue(NewClass("Cat", nil, nil)), "Class Cat"},
	}
	for _, c := range cases {
		got, err := FormatValue(c.val, ctx)
		if err != nil {
			t.Fatalf("format %v: %v", c.val, err)
		}
		if got != c.want {
			t.Fatalf("format = %q, want %q", got, c.want)
		}
	}
}

func TestInstancePrintsViaStrMethod(t *testing.T) {
	cls := NewClass("Box", []Method{{
		Name: strMethod,
		Body: &MethodBody{Body: &Return{Value: &StringConst{Value: "box!"}}},
	}}, nil)
	got, err := FormatValue(NewInstanceValue(NewInstanceOf(cls)), &BufferedContext{})
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if got != "box!" {
		t.Fatalf("format = %q, want %q", got, "box!")
	}
}

func TestInstanceWithoutStrPrintsAddress(t *testing.T) {
	cls := NewClass("Plain", nil, nil)
	got, err := FormatValue(NewInstanceValue(NewInstanceOf(cls)), &BufferedContext{})
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if !strings.HasPrefix(got, "0x") {
		t.Fatalf("format = %q, want an address token", got)
	}
}

func TestInstanceWithWrongArityStrPrintsAddress(t *testing.T) {
	cls := NewClass("Odd", []Method{{
		Name:   strMethod,
		Params: []string{"extra"},
		Body:   &MethodBody{Body: &Return{Value: &StringConst{Value: "never"}}},
	}}, nil)
	got, err := FormatValue(NewInstanceValue(NewInstanceOf(cls)), &BufferedContext{})
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if !strings.HasPrefix(got, "0x") {
		t.Fatalf("format = %q, want an address token", got)
	}
}

func TestValueCopiesShareInstanceFields(t *testing.T) {
	inst := NewInstanceOf(NewClass("P", nil, nil))
	a := NewInstanceValue(inst)
	b := a
	a.Instance().Fields()["x"] = NewNumber(1)
	if got, ok := b.Instance().Fields()["x"]; !ok || got.Num() != 1 {
		t.Fatalf("field write not visible through copied value: %v %v", got, ok)
	}
}
