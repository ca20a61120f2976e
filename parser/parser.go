// ==============================================================================================
// FILE: parser/parser.go
// ==============================================================================================
// PACKAGE: parser
// PURPOSE: Recursive descent parser. Statements are parsed top-down with
//          indentation-bracketed blocks; expressions follow the precedence
//          ladder assignment > or > and > membership > equality >
//          comparison > term > factor > unary > alteration > call/index.
//          On a bad declaration the parser synchronizes to the next
//          statement boundary and keeps going, reporting at most one error
//          per synchronisation region.
// ==============================================================================================

package parser

import (
	"github.com/spf13/cast"

	"github.com/justfreddev/pyru/ast"
	"github.com/justfreddev/pyru/token"
)

// maxArity bounds both call arguments and function parameters.
const maxArity = 255

// Parser holds the token stream and the read position.
type Parser struct {
	tokens  []token.Token
	current int
	errors  []*Error
}

// New initialises a Parser over a lexed token stream.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse consumes the stream and returns the statement list. Any recorded
// error fails the parse; the first one is returned.
func (p *Parser) Parse() ([]ast.Stmt, error) {
	var statements []ast.Stmt
	for !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			p.errors = append(p.errors, asParseError(err, p.peek()))
			p.synchronize()
			continue
		}
		statements = append(statements, stmt)
	}
	if len(p.errors) > 0 {
		return nil, p.errors[0]
	}
	return statements, nil
}

// Errors exposes every error recorded during the parse.
func (p *Parser) Errors() []*Error { return p.errors }

func asParseError(err error, at token.Token) *Error {
	if pe, ok := err.(*Error); ok {
		return pe
	}
	return &Error{Kind: ExpectedExpression, Token: at}
}

// ----------------------------------------------------------------------------------------------
// STATEMENTS
// ----------------------------------------------------------------------------------------------

func (p *Parser) declaration() (ast.Stmt, error) {
	if p.match(token.Let) {
		return p.varDeclaration()
	}
	if p.match(token.Def) {
		return p.function()
	}
	return p.statement()
}

func (p *Parser) statement() (ast.Stmt, error) {
	switch {
	case p.match(token.For):
		return p.forStatement()
	case p.match(token.If):
		return p.ifStatement()
	case p.match(token.Print):
		return p.printStatement()
	case p.match(token.Return):
		return p.returnStatement()
	case p.match(token.While):
		return p.whileStatement()
	}
	return p.expressionStatement()
}

func (p *Parser) varDeclaration() (ast.Stmt, error) {
	name, err := p.consume(token.Identifier, ExpectedVariableName)
	if err != nil {
		return nil, err
	}

	var initializer ast.Expr
	if p.match(token.Equal) {
		if initializer, err = p.expression(); err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(token.Semicolon, ExpectedSemicolonAfterVariableDeclaration); err != nil {
		return nil, err
	}
	return &ast.Let{Name: name, Initializer: initializer}, nil
}

func (p *Parser) function() (ast.Stmt, error) {
	name, err := p.consume(token.Identifier, ExpectedFunctionName)
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.LParen, ExpectedLParenAfterFunctionName); err != nil {
		return nil, err
	}

	var params []token.Token
	if !p.check(token.RParen) {
		for {
			if len(params) >= maxArity {
				return nil, &Error{Kind: TooManyParameters, Token: p.peek()}
			}
			param, err := p.consume(token.Identifier, ExpectedParameterName)
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if !p.match(token.Comma) {
				break
			}
		}
	}
	if _, err := p.consume(token.RParen, ExpectedRParenAfterParameters); err != nil {
		return nil, err
	}

	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &ast.Function{Name: name, Params: params, Body: body}, nil
}

func (p *Parser) forStatement() (ast.Stmt, error) {
	name, err := p.consume(token.Identifier, ExpectedLoopVariableName)
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.In, ExpectedInAfterLoopVariable); err != nil {
		return nil, err
	}

	start, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.DotDot, ExpectedRangeInForLoop); err != nil {
		return nil, err
	}
	end, err := p.expression()
	if err != nil {
		return nil, err
	}

	// The loop desugars to initializer/condition/step over the loop
	// variable; the synthesized operator tokens borrow the variable's
	// position so runtime errors still point somewhere sensible.
	step := ast.Expr(&ast.Alteration{Name: name, AlterationType: token.Incr})
	if p.match(token.Step) {
		amount, err := p.expression()
		if err != nil {
			return nil, err
		}
		plus := token.Token{Type: token.Plus, Lexeme: "+", Line: name.Line, Start: name.Start, End: name.End}
		step = &ast.Assign{Name: name, Value: &ast.Binary{
			Left:     &ast.Var{Name: name},
			Operator: plus,
			Right:    amount,
		}}
	}

	less := token.Token{Type: token.Less, Lexeme: "<", Line: name.Line, Start: name.Start, End: name.End}
	condition := &ast.Binary{Left: &ast.Var{Name: name}, Operator: less, Right: end}

	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &ast.For{
		Initializer: &ast.Let{Name: name, Initializer: start},
		Condition:   condition,
		Step:        step,
		Body:        body,
	}, nil
}

func (p *Parser) ifStatement() (ast.Stmt, error) {
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	thenBranch, err := p.block()
	if err != nil {
		return nil, err
	}

	var elseBranch []ast.Stmt
	if p.match(token.Else) {
		if p.match(token.If) {
			// An `else if` chain nests as an else branch holding one If.
			nested, err := p.ifStatement()
			if err != nil {
				return nil, err
			}
			elseBranch = []ast.Stmt{nested}
		} else {
			if elseBranch, err = p.block(); err != nil {
				return nil, err
			}
		}
	}
	return &ast.If{Condition: condition, ThenBranch: thenBranch, ElseBranch: elseBranch}, nil
}

func (p *Parser) whileStatement() (ast.Stmt, error) {
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &ast.While{Condition: condition, Body: body}, nil
}

func (p *Parser) printStatement() (ast.Stmt, error) {
	if _, err := p.consume(token.LParen, ExpectedLParenAfterPrint); err != nil {
		return nil, err
	}
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RParen, ExpectedRParenAfterPrintValue); err != nil {
		return nil, err
	}
	if _, err := p.consume(token.Semicolon, ExpectedSemicolonAfterPrintValue); err != nil {
		return nil, err
	}
	return &ast.Print{Expression: value}, nil
}

func (p *Parser) returnStatement() (ast.Stmt, error) {
	keyword := p.previous()

	var value ast.Expr
	var err error
	if !p.check(token.Semicolon) {
		if value, err = p.expression(); err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.Semicolon, ExpectedSemicolonAfterReturnValue); err != nil {
		return nil, err
	}
	return &ast.Return{Keyword: keyword, Value: value}, nil
}

func (p *Parser) expressionStatement() (ast.Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.Semicolon, ExpectedSemicolonAfterExpression); err != nil {
		return nil, err
	}
	return &ast.Expression{Expression: expr}, nil
}

// block parses `":" Indent declaration* Dedent`, the body of every
// control structure and function.
func (p *Parser) block() ([]ast.Stmt, error) {
	if _, err := p.consume(token.Colon, ExpectedColonBeforeBlock); err != nil {
		return nil, err
	}
	if _, err := p.consume(token.Indent, ExpectedIndentedBlock); err != nil {
		return nil, err
	}

	var statements []ast.Stmt
	for !p.check(token.Dedent) && !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}

	if _, err := p.consume(token.Dedent, ExpectedDedentAfterBlock); err != nil {
		return nil, err
	}
	return statements, nil
}

// ----------------------------------------------------------------------------------------------
// EXPRESSIONS
// ----------------------------------------------------------------------------------------------

func (p *Parser) expression() (ast.Expr, error) {
	return p.assignment()
}

func (p *Parser) assignment() (ast.Expr, error) {
	expr, err := p.or()
	if err != nil {
		return nil, err
	}

	if p.match(token.Equal) {
		equals := p.previous()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}
		if v, ok := expr.(*ast.Var); ok {
			return &ast.Assign{Name: v.Name, Value: value}, nil
		}
		return nil, &Error{Kind: InvalidAssignmentTarget, Token: equals}
	}
	return expr, nil
}

func (p *Parser) or() (ast.Expr, error) {
	expr, err := p.and()
	if err != nil {
		return nil, err
	}
	for p.match(token.Or) {
		operator := p.previous()
		right, err := p.and()
		if err != nil {
			return nil, err
		}
		expr = &ast.Logical{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

func (p *Parser) and() (ast.Expr, error) {
	expr, err := p.membership()
	if err != nil {
		return nil, err
	}
	for p.match(token.And) {
		operator := p.previous()
		right, err := p.membership()
		if err != nil {
			return nil, err
		}
		expr = &ast.Logical{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

func (p *Parser) membership() (ast.Expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}

	if p.match(token.In) {
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		return &ast.Membership{Left: expr, Right: right}, nil
	}
	if p.match(token.Not) {
		if _, err := p.consume(token.In, ExpectedInAfterNot); err != nil {
			return nil, err
		}
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		return &ast.Membership{Left: expr, Negated: true, Right: right}, nil
	}
	return expr, nil
}

func (p *Parser) equality() (ast.Expr, error) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for p.match(token.BangEqual, token.EqualEqual) {
		operator := p.previous()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

func (p *Parser) comparison() (ast.Expr, error) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.match(token.Greater, token.GreaterEqual, token.Less, token.LessEqual) {
		operator := p.previous()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

func (p *Parser) term() (ast.Expr, error) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.match(token.Minus, token.Plus) {
		operator := p.previous()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

func (p *Parser) factor() (ast.Expr, error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.match(token.FSlash, token.Asterisk) {
		operator := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

func (p *Parser) unary() (ast.Expr, error) {
	if p.match(token.Bang, token.Minus) {
		operator := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Operator: operator, Right: right}, nil
	}
	return p.alteration()
}

func (p *Parser) alteration() (ast.Expr, error) {
	expr, err := p.call()
	if err != nil {
		return nil, err
	}

	if p.match(token.Incr, token.Decr) {
		operator := p.previous()
		if v, ok := expr.(*ast.Var); ok {
			return &ast.Alteration{Name: v.Name, AlterationType: operator.Type}, nil
		}
		return nil, &Error{Kind: InvalidAlterationTarget, Token: operator}
	}
	return expr, nil
}

// call parses the postfix chain of calls, index/slice brackets and list
// method invocations.
func (p *Parser) call() (ast.Expr, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}

	for {
		switch {
		case p.match(token.LParen):
			if expr, err = p.finishCall(expr); err != nil {
				return nil, err
			}
		case p.check(token.LBrack):
			v, ok := expr.(*ast.Var)
			if !ok {
				return nil, &Error{Kind: ExpectedExpression, Token: p.peek()}
			}
			p.advance()
			if expr, err = p.splice(v.Name); err != nil {
				return nil, err
			}
		case p.check(token.Dot) && p.checkNext(token.Identifier):
			v, ok := expr.(*ast.Var)
			if !ok {
				return nil, &Error{Kind: ExpectedExpression, Token: p.peek()}
			}
			p.advance()
			method := p.advance()
			if _, err := p.consume(token.LParen, ExpectedLParenAfterFunctionName); err != nil {
				return nil, err
			}
			call, err := p.finishCall(&ast.Var{Name: method})
			if err != nil {
				return nil, err
			}
			expr = &ast.ListMethodCall{Object: v.Name, Call: call}
		default:
			return expr, nil
		}
	}
}

// splice parses the bracketed part of `name[...]`, the opening bracket
// already consumed.
func (p *Parser) splice(name token.Token) (ast.Expr, error) {
	if p.match(token.Colon) {
		end, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RBrack, ExpectedRBrackAfterItems); err != nil {
			return nil, err
		}
		return &ast.Splice{List: name, IsSplice: true, End: end}, nil
	}

	start, err := p.expression()
	if err != nil {
		return nil, err
	}

	isSplice := false
	var end ast.Expr
	if p.match(token.Colon) {
		isSplice = true
		if !p.check(token.RBrack) {
			if end, err = p.expression(); err != nil {
				return nil, err
			}
		}
	}
	if _, err := p.consume(token.RBrack, ExpectedRBrackAfterItems); err != nil {
		return nil, err
	}
	return &ast.Splice{List: name, IsSplice: isSplice, Start: start, End: end}, nil
}

func (p *Parser) finishCall(callee ast.Expr) (ast.Expr, error) {
	var arguments []ast.Expr
	if !p.check(token.RParen) {
		for {
			if len(arguments) >= maxArity {
				return nil, &Error{Kind: TooManyArguments, Token: p.peek()}
			}
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			arguments = append(arguments, arg)
			if !p.match(token.Comma) {
				break
			}
		}
	}
	if _, err := p.consume(token.RParen, ExpectedRParenAfterArguments); err != nil {
		return nil, err
	}
	return &ast.Call{Callee: callee, Arguments: arguments}, nil
}

func (p *Parser) primary() (ast.Expr, error) {
	switch {
	case p.match(token.False):
		return &ast.Literal{Value: token.FalseLiteral}, nil
	case p.match(token.True):
		return &ast.Literal{Value: token.TrueLiteral}, nil
	case p.match(token.Null):
		return &ast.Literal{Value: token.NullLiteral}, nil
	case p.match(token.Num):
		n, err := cast.ToFloat64E(p.previous().Literal)
		if err != nil {
			return nil, &Error{Kind: UnableToParseLiteralToFloat, Token: p.previous()}
		}
		return &ast.Literal{Value: token.NumLiteral(n)}, nil
	case p.match(token.String):
		return &ast.Literal{Value: token.StrLiteral(p.previous().Literal)}, nil
	case p.match(token.Identifier):
		return &ast.Var{Name: p.previous()}, nil
	case p.match(token.LParen):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RParen, ExpectedRParenAfterExpression); err != nil {
			return nil, err
		}
		return &ast.Grouping{Expression: expr}, nil
	case p.match(token.LBrack):
		var items []ast.Expr
		if !p.check(token.RBrack) {
			for {
				item, err := p.expression()
				if err != nil {
					return nil, err
				}
				items = append(items, item)
				if !p.match(token.Comma) {
					break
				}
			}
		}
		if _, err := p.consume(token.RBrack, ExpectedRBrackAfterItems); err != nil {
			return nil, err
		}
		return &ast.List{Items: items}, nil
	}
	return nil, &Error{Kind: ExpectedExpression, Token: p.peek()}
}

// ----------------------------------------------------------------------------------------------
// PARSER PRIMITIVES
// ----------------------------------------------------------------------------------------------

func (p *Parser) match(types ...token.Type) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(t token.Type) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == t
}

func (p *Parser) checkNext(t token.Type) bool {
	if p.current+1 >= len(p.tokens) {
		return false
	}
	return p.tokens[p.current+1].Type == t
}

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == token.Eof
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) consume(t token.Type, kind ErrorKind) (token.Token, error) {
	if p.check(t) {
		return p.advance(), nil
	}
	return token.Token{}, &Error{Kind: kind, Token: p.peek()}
}

// synchronize discards tokens until just after a semicolon or just before
// a statement-starting keyword, so one bad declaration reports one error.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Type == token.Semicolon {
			return
		}
		switch p.peek().Type {
		case token.Def, token.For, token.If, token.Let,
			token.Print, token.Return, token.While:
			return
		}
		p.advance()
	}
}
