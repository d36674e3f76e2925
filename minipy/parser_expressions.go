package minipy

// Expression grammar, loosest binding first:
//
//	expr           := andExpr { "or" andExpr }
//	andExpr        := notExpr { "and" notExpr }
//	notExpr        := "not" notExpr | comparison
//	comparison     := additive [ compOp additive ]
//	additive       := multiplicative { ("+" | "-") multiplicative }
//	multiplicative := unary { ("*" | "/") unary }
//	unary          := "-" unary | postfix
func (p *parser) parseExpr() (Statement, error) {
	lhs, err := p.parseAndExpr()
	if err != nil {
		return nil, err
	}
	for p.cur().Is(TokenOr) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseAndExpr()
		if err != nil {
			return nil, err
		}
		lhs = &Or{LHS: lhs, RHS: rhs}
	}
	return lhs, nil
}

func (p *parser) parseAndExpr() (Statement, error) {
	lhs, err := p.parseNotExpr()
	if err != nil {
		return nil, err
	}
	for p.cur().Is(TokenAnd) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseNotExpr()
		if err != nil {
			return nil, err
		}
		lhs = &And{LHS: lhs, RHS: rhs}
	}
	return lhs, nil
}

func (p *parser) parseNotExpr() (Statement, error) {
	if p.cur().Is(TokenNot) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		arg, err := p.parseNotExpr()
		if err != nil {
			return nil, err
		}
		return &Not{Arg: arg}, nil
	}
	return p.parseComparison()
}

func (p *parser) parseComparison() (Statement, error) {
	lhs, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	cmp := p.comparatorFor(p.cur())
	if cmp == nil {
		return lhs, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	rhs, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	return &Comparison{Cmp: cmp, LHS: lhs, RHS: rhs}, nil
}

func (p *parser) comparatorFor(tok Token) Comparator {
	switch {
	case tok.Is(TokenEq):
		return Equal
	case tok.Is(TokenNotEq):
		return NotEqual
	case tok.Is(TokenLessOrEq):
		return LessOrEqual
	case tok.Is(TokenGreaterOrEq):
		return GreaterOrEqual
	case tok.IsChar('<'):
		return Less
	case tok.IsChar('>'):
		return Greater
	default:
		return nil
	}
}

func (p *parser) parseAdditive() (Statement, error) {
	lhs, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for {
		var add bool
		switch {
		case p.cur().IsChar('+'):
			add = true
		case p.cur().IsChar('-'):
			add = false
		default:
			return lhs, nil
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		if add {
			lhs = &Add{LHS: lhs, RHS: rhs}
		} else {
			lhs = &Sub{LHS: lhs, RHS: rhs}
		}
	}
}

func (p *parser) parseMultiplicative() (Statement, error) {
	lhs, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		var mult bool
		switch {
		case p.cur().IsChar('*'):
			mult = true
		case p.cur().IsChar('/'):
			mult = false
		default:
			return lhs, nil
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if mult {
			lhs = &Mult{LHS: lhs, RHS: rhs}
		} else {
			lhs = &Div{LHS: lhs, RHS: rhs}
		}
	}
}

func (p *parser) parseUnary() (Statement, error) {
	if p.cur().IsChar('-') {
		if err := p.advance(); err != nil {
			return nil, err
		}
		arg, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &Sub{LHS: &NumericConst{Value: 0}, RHS: arg}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (Statement, error) {
	tok := p.cur()
	switch {
	case tok.Is(TokenNumber):
		return &NumericConst{Value: tok.Num}, p.advance()
	case tok.Is(TokenString):
		return &StringConst{Value: tok.Text}, p.advance()
	case tok.Is(TokenTrue):
		return &BoolConst{Value: true}, p.advance()
	case tok.Is(TokenFalse):
		return &BoolConst{Value: false}, p.advance()
	case tok.Is(TokenNone):
		return &NoneConst{}, p.advance()
	case tok.IsChar('('):
		if err := p.advance(); err != nil {
			return nil, err
		}
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return expr, p.expectChar(')')
	case tok.Is(TokenID):
		return p.parsePostfix(tok.Text)
	default:
		return nil, p.errorf("unexpected token %s in expression", tok)
	}
}

// parsePostfix parses what follows a leading identifier: the str()
// conversion, a class instantiation, or a dotted chain with method
// calls. Field reads are only valid on closure-rooted chains; a call
// result supports further method calls but not field access.
func (p *parser) parsePostfix(first string) (Statement, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}

	var names []string
	var called Statement

	if p.cur().IsChar('(') {
		if first == "str" {
			if err := p.advance(); err != nil {
				return nil, err
			}
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			return &Stringify{Arg: arg}, p.expectChar(')')
		}
		cls := p.classes[first]
		if cls == nil {
			return nil, p.errorf("unknown class %s", first)
		}
		args, err := p.parseCallArgs()
		if err != nil {
			return nil, err
		}
		called = &NewInstance{Class: cls, Args: args}
	} else {
		names = []string{first}
	}
	for p.cur().IsChar('.') {
		if err := p.advance(); err != nil {
			return nil, err
		}
		segTok, err := p.expect(TokenID)
		if err != nil {
			return nil, err
		}
		if p.cur().IsChar('(') {
			object := called
			if object == nil {
				object = &VariableValue{Names: names}
			}
			args, err := p.parseCallArgs()
			if err != nil {
				return nil, err
			}
			called = &MethodCall{Object: object, Method: segTok.Text, Args: args}
			names = nil
			continue
		}
		if called != nil {
			return nil, p.errorf("cannot read field %s of a call result", segTok.Text)
		}
		names = append(names, segTok.Text)
	}
	if called != nil {
		return called, nil
	}
	return &VariableValue{Names: names}, nil
}

// parseCallArgs parses a parenthesised, comma-separated argument list.
func (p *parser) parseCallArgs() ([]Statement, error) {
	if err := p.expectChar('('); err != nil {
		return nil, err
	}
	if p.cur().IsChar(')') {
		return nil, p.advance()
	}
	var args []Statement
	for {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if !p.cur().IsChar(',') {
			return args, p.expectChar(')')
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
}
