package parser

import (
	"jackfront/internal/cst"
	"jackfront/internal/diag"
	"jackfront/internal/token"
)

// expression := term (op term)*
//
// Operators are left-associative with no precedence; the tree is flat.
func (p *Parser) parseExpression() error {
	p.open(cst.Expression)
	if err := p.parseTerm(); err != nil {
		return err
	}
	for cur := p.cur(); cur.IsSymbol() && token.IsBinaryOp(cur.Text); cur = p.cur() {
		if err := p.consume(); err != nil {
			return err
		}
		if err := p.parseTerm(); err != nil {
			return err
		}
	}
	p.close(cst.Expression)
	return nil
}

// term := integerConstant | stringConstant | keywordConstant
//
//	| varName | varName '[' expression ']' | subroutineCall
//	| '(' expression ')' | unaryOp term
func (p *Parser) parseTerm() error {
	p.open(cst.Term)
	cur := p.cur()
	var err error
	switch {
	case cur.IsLiteral():
		err = p.consume()
	case cur.IsKeyword() && token.IsKeywordConstant(cur.Text):
		err = p.consume()
	case cur.IsSymbol("("):
		if err = p.consume(); err == nil {
			if err = p.parseExpression(); err == nil {
				err = p.expectSymbol(")")
			}
		}
	case cur.IsSymbol() && token.IsUnaryOp(cur.Text):
		if err = p.consume(); err == nil {
			err = p.parseTerm()
		}
	case cur.IsIdent():
		err = p.parseIdentTerm()
	default:
		err = p.unexpected(diag.SynExpectExpression, "expression")
	}
	if err != nil {
		return err
	}
	p.close(cst.Term)
	return nil
}

// parseIdentTerm looks one token past the identifier: '[' is indexing,
// '(' or '.' a call, anything else a plain variable.
func (p *Parser) parseIdentTerm() error {
	next, err := p.ts.PeekNext()
	if err != nil {
		return err
	}
	switch {
	case next.IsSymbol("["):
		if err := p.consume(); err != nil {
			return err
		}
		if err := p.consume(); err != nil {
			return err
		}
		if err := p.parseExpression(); err != nil {
			return err
		}
		return p.expectSymbol("]")
	case next.IsSymbol("(", "."):
		return p.parseSubroutineCall()
	default:
		return p.consume()
	}
}

// subroutineCall := subroutineName '(' expressionList ')'
//
//	| (className|varName) '.' subroutineName '(' expressionList ')'
func (p *Parser) parseSubroutineCall() error {
	if err := p.expectIdent("subroutine, class or variable name"); err != nil {
		return err
	}
	if p.cur().IsSymbol(".") {
		if err := p.consume(); err != nil {
			return err
		}
		if err := p.expectIdent("subroutine name"); err != nil {
			return err
		}
	}
	if err := p.expectSymbol("("); err != nil {
		return err
	}
	if err := p.parseExpressionList(); err != nil {
		return err
	}
	return p.expectSymbol(")")
}

// expressionList := (expression (',' expression)*)?
func (p *Parser) parseExpressionList() error {
	p.open(cst.ExpressionList)
	if !p.cur().IsSymbol(")") {
		if err := p.parseExpression(); err != nil {
			return err
		}
		for p.cur().IsSymbol(",") {
			if err := p.consume(); err != nil {
				return err
			}
			if err := p.parseExpression(); err != nil {
				return err
			}
		}
	}
	p.close(cst.ExpressionList)
	return nil
}
