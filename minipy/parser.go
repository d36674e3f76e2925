package minipy

import "fmt"

// ParseError reports a program that does not match the grammar.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string { return "parse error: " + e.Msg }

// parser is a recursive-descent parser over the token stream. It owns
// the construction of class descriptors: a class must be declared
// before it is named as a parent or instantiated, so NewInstance
// nodes bind their descriptor at parse time.
type parser struct {
	lx      *Lexer
	classes map[string]*Class
}

func newParser(lx *Lexer) *parser {
	return &parser{lx: lx, classes: make(map[string]*Class)}
}

func (p *parser) cur() Token { return p.lx.Current() }

func (p *parser) advance() error {
	_, err := p.lx.Next()
	return err
}

func (p *parser) errorf(format string, args ...any) error {
	return &ParseError{Msg: fmt.Sprintf(format, args...)}
}

// expect checks the current token type and advances past it.
func (p *parser) expect(tt TokenType) (Token, error) {
	tok := p.cur()
	if !tok.Is(tt) {
		return Token{}, p.errorf("expected %s, found %s", tt, tok)
	}
	return tok, p.advance()
}

// expectChar checks the current punctuation character and advances past it.
func (p *parser) expectChar(c byte) error {
	if !p.cur().IsChar(c) {
		return p.errorf("expected %q, found %s", c, p.cur())
	}
	return p.advance()
}

func (p *parser) parseProgram() (*Compound, error) {
	body := &Compound{}
	for {
		tok := p.cur()
		switch {
		case tok.Is(TokenEOF):
			return body, nil
		case tok.Is(TokenNewline):
			if err := p.advance(); err != nil {
				return nil, err
			}
		default:
			stmt, err := p.parseStatement()
			if err != nil {
				return nil, err
			}
			body.Add(stmt)
		}
	}
}

func (p *parser) parseStatement() (Statement, error) {
	switch p.cur().Type {
	case TokenClass:
		return p.parseClassDefinition()
	case TokenIf:
		return p.parseIfElse()
	default:
		return p.parseSimpleLine()
	}
}

// parseSimpleLine parses one or more simple statements separated by
// ';' and consumes the terminating Newline.
func (p *parser) parseSimpleLine() (Statement, error) {
	var stmts []Statement
	for {
		stmt, err := p.parseSimpleStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		if p.cur().IsChar(';') {
			if err := p.advance(); err != nil {
				return nil, err
			}
			if !p.cur().Is(TokenNewline) {
				continue
			}
		}
		break
	}
	if p.cur().Is(TokenNewline) {
		if err := p.advance(); err != nil {
			return nil, err
		}
	} else if !p.cur().Is(TokenEOF) {
		return nil, p.errorf("expected end of line, found %s", p.cur())
	}
	if len(stmts) == 1 {
		return stmts[0], nil
	}
	return &Compound{Statements: stmts}, nil
}

func (p *parser) parseSimpleStatement() (Statement, error) {
	switch p.cur().Type {
	case TokenReturn:
		if err := p.advance(); err != nil {
			return nil, err
		}
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &Return{Value: expr}, nil
	case TokenPrint:
		return p.parsePrint()
	default:
		return p.parseAssignmentOrExpr()
	}
}

func (p *parser) parsePrint() (Statement, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	stmt := &Print{}
	if p.cur().Is(TokenNewline) || p.cur().Is(TokenEOF) || p.cur().IsChar(';') {
		return stmt, nil
	}
	for {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		stmt.Args = append(stmt.Args, arg)
		if !p.cur().IsChar(',') {
			return stmt, nil
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
}

// parseAssignmentOrExpr parses an expression statement; when the
// expression turns out to be a plain dotted chain followed by '=',
// the line is an assignment instead.
func (p *parser) parseAssignmentOrExpr() (Statement, error) {
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if !p.cur().IsChar('=') {
		return expr, nil
	}
	chain, ok := expr.(*VariableValue)
	if !ok {
		return nil, p.errorf("left side of assignment is not a variable or field")
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	rhs, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if len(chain.Names) == 1 {
		return &Assignment{Var: chain.Names[0], RHS: rhs}, nil
	}
	object := VariableValue{Names: chain.Names[:len(chain.Names)-1]}
	field := chain.Names[len(chain.Names)-1]
	return &FieldAssignment{Object: object, Field: field, RHS: rhs}, nil
}

func (p *parser) parseClassDefinition() (Statement, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(TokenID)
	if err != nil {
		return nil, err
	}
	name := nameTok.Text

	var parent *Class
	if p.cur().IsChar('(') {
		if err := p.advance(); err != nil {
			return nil, err
		}
		parentTok, err := p.expect(TokenID)
		if err != nil {
			return nil, err
		}
		parent = p.classes[parentTok.Text]
		if parent == nil {
			return nil, p.errorf("unknown parent class %s", parentTok.Text)
		}
		if err := p.expectChar(')'); err != nil {
			return nil, err
		}
	}

	if err := p.expectChar(':'); err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenNewline); err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenIndent); err != nil {
		return nil, err
	}

	var methods []Method
	for p.cur().Is(TokenDef) {
		m, err := p.parseMethod()
		if err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}
	if len(methods) == 0 {
		return nil, p.errorf("class %s has no methods", name)
	}
	if _, err := p.expect(TokenDedent); err != nil {
		return nil, err
	}

	cls := NewClass(name, methods, parent)
	p.classes[name] = cls
	return &ClassDefinition{Cls: NewClassValue(cls)}, nil
}

func (p *parser) parseMethod() (Method, error) {
	if err := p.advance(); err != nil {
		return Method{}, err
	}
	nameTok, err := p.expect(TokenID)
	if err != nil {
		return Method{}, err
	}
	if err := p.expectChar('('); err != nil {
		return Method{}, err
	}

	var params []string
	if p.cur().Is(TokenID) {
		for {
			paramTok, err := p.expect(TokenID)
			if err != nil {
				return Method{}, err
			}
			params = append(params, paramTok.Text)
			if !p.cur().IsChar(',') {
				break
			}
			if err := p.advance(); err != nil {
				return Method{}, err
			}
		}
	}
	if err := p.expectChar(')'); err != nil {
		return Method{}, err
	}
	if err := p.expectChar(':'); err != nil {
		return Method{}, err
	}

	body, err := p.parseSuite()
	if err != nil {
		return Method{}, err
	}
	return Method{Name: nameTok.Text, Params: params, Body: &MethodBody{Body: body}}, nil
}

// parseSuite parses the body of a method or an if/else branch: either
// an indented block, or simple statements on the same line.
func (p *parser) parseSuite() (Statement, error) {
	if !p.cur().Is(TokenNewline) {
		return p.parseSimpleLine()
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenIndent); err != nil {
		return nil, err
	}
	block := &Compound{}
	for !p.cur().Is(TokenDedent) {
		if p.cur().Is(TokenNewline) {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Add(stmt)
	}
	if _, err := p.expect(TokenDedent); err != nil {
		return nil, err
	}
	return block, nil
}

func (p *parser) parseIfElse() (Statement, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectChar(':'); err != nil {
		return nil, err
	}
	then, err := p.parseSuite()
	if err != nil {
		return nil, err
	}

	stmt := &IfElse{Cond: cond, Then: then}
	if p.cur().Is(TokenElse) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expectChar(':'); err != nil {
			return nil, err
		}
		stmt.Else, err = p.parseSuite()
		if err != nil {
			return nil, err
		}
	}
	return stmt, nil
}
