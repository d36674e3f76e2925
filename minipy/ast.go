package minipy

// Statement is the single contract every AST node implements:
// execute the node against a symbol table and a context, producing a
// value or a runtime fault.
type Statement interface {
	Execute(closure Closure, ctx Context) (Value, error)
}

// NumericConst yields an integer literal.
type NumericConst struct {
	Value int
}

// StringConst yields a string literal.
type StringConst struct {
	Value string
}

// BoolConst yields True or False.
type BoolConst struct {
	Value bool
}

// NoneConst yields None.
type NoneConst struct{}

// VariableValue reads a dotted chain a.b.c: the head is looked up in
// the closure, every later segment in the fields of the instance the
// chain has reached so far.
type VariableValue struct {
	Names []string
}

// Assignment evaluates RHS and stores it in the closure under Var.
type Assignment struct {
	Var string
	RHS Statement
}

// FieldAssignment evaluates the object chain, which must yield an
// instance, and stores RHS in its fields under Field.
type FieldAssignment struct {
	Object VariableValue
	Field  string
	RHS    Statement
}

// Print evaluates its arguments left to right and writes them to the
// context's output stream, space-separated and newline-terminated.
type Print struct {
	Args []Statement
}

// MethodCall evaluates Object, which must yield an instance, then the
// arguments left to right, and dispatches Method.
type MethodCall struct {
	Object Statement
	Method string
	Args   []Statement
}

// NewInstance materialises a fresh instance of the bound class,
// invoking __init__ when one of matching arity exists.
type NewInstance struct {
	Class *Class
	Args  []Statement
}

// Stringify yields the printed form of its argument as a string.
type Stringify struct {
	Arg Statement
}

// Add computes number+number, string concatenation, or dispatches a
// one-argument __add__ on a left-hand instance.
type Add struct {
	LHS, RHS Statement
}

// Sub computes integer subtraction.
type Sub struct {
	LHS, RHS Statement
}

// Mult computes integer multiplication.
type Mult struct {
	LHS, RHS Statement
}

// Div computes truncating integer division; a zero divisor is a
// runtime fault.
type Div struct {
	LHS, RHS Statement
}

// And is logical conjunction over truthiness. The right operand is
// not evaluated when the left already decides the result.
type And struct {
	LHS, RHS Statement
}

// Or is logical disjunction over truthiness. The right operand is
// not evaluated when the left already decides the result.
type Or struct {
	LHS, RHS Statement
}

// Not negates the truthiness of its argument.
type Not struct {
	Arg Statement
}

// Comparison runs the bound comparator over its evaluated operands
// and wraps the boolean result.
type Comparison struct {
	Cmp      Comparator
	LHS, RHS Statement
}

// Compound executes its children in order, ignoring their results.
type Compound struct {
	Statements []Statement
}

// Add appends a statement to the compound.
func (s *Compound) Add(stmt Statement) {
	s.Statements = append(s.Statements, stmt)
}

// MethodBody wraps a method's body and is the only node that catches
// a return performed inside it.
type MethodBody struct {
	Body Statement
}

// Return aborts the enclosing method body, delivering the evaluated
// value to the nearest MethodBody.
type Return struct {
	Value Statement
}

// ClassDefinition binds a pre-built class value into the closure
// under the class's name.
type ClassDefinition struct {
	Cls Value
}

// IfElse runs Then when the condition is truthy, otherwise Else when
// present. Else may be nil.
type IfElse struct {
	Cond Statement
	Then Statement
	Else Statement
}
