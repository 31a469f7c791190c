package parser

import (
	"jackfront/internal/cst"
)

// statements := statement*
func (p *Parser) parseStatements() error {
	p.open(cst.Statements)
	for p.cur().IsKeyword("let", "if", "while", "do", "return") {
		if err := p.parseStatement(); err != nil {
			return err
		}
	}
	p.close(cst.Statements)
	return nil
}

// statement dispatches on the introducing keyword; it has no node of its own.
func (p *Parser) parseStatement() error {
	switch p.cur().Text {
	case "let":
		return p.parseLet()
	case "if":
		return p.parseIf()
	case "while":
		return p.parseWhile()
	case "do":
		return p.parseDo()
	default:
		return p.parseReturn()
	}
}

// letStatement := 'let' varName ('[' expression ']')? '=' expression ';'
func (p *Parser) parseLet() error {
	p.open(cst.LetStatement)
	if err := p.expectKeyword("let"); err != nil {
		return err
	}
	if err := p.expectIdent("variable name"); err != nil {
		return err
	}
	if p.cur().IsSymbol("[") {
		if err := p.consume(); err != nil {
			return err
		}
		if err := p.parseExpression(); err != nil {
			return err
		}
		if err := p.expectSymbol("]"); err != nil {
			return err
		}
	}
	if err := p.expectSymbol("="); err != nil {
		return err
	}
	if err := p.parseExpression(); err != nil {
		return err
	}
	if err := p.expectSymbol(";"); err != nil {
		return err
	}
	p.close(cst.LetStatement)
	return nil
}

// ifStatement := 'if' '(' expression ')' '{' statements '}' ('else' '{' statements '}')?
func (p *Parser) parseIf() error {
	p.open(cst.IfStatement)
	if err := p.expectKeyword("if"); err != nil {
		return err
	}
	if err := p.parseCondition(); err != nil {
		return err
	}
	if err := p.parseBlock(); err != nil {
		return err
	}
	if p.cur().IsKeyword("else") {
		if err := p.consume(); err != nil {
			return err
		}
		if err := p.parseBlock(); err != nil {
			return err
		}
	}
	p.close(cst.IfStatement)
	return nil
}

// whileStatement := 'while' '(' expression ')' '{' statements '}'
func (p *Parser) parseWhile() error {
	p.open(cst.WhileStatement)
	if err := p.expectKeyword("while"); err != nil {
		return err
	}
	if err := p.parseCondition(); err != nil {
		return err
	}
	if err := p.parseBlock(); err != nil {
		return err
	}
	p.close(cst.WhileStatement)
	return nil
}

// doStatement := 'do' subroutineCall ';'
func (p *Parser) parseDo() error {
	p.open(cst.DoStatement)
	if err := p.expectKeyword("do"); err != nil {
		return err
	}
	if err := p.parseSubroutineCall(); err != nil {
		return err
	}
	if err := p.expectSymbol(";"); err != nil {
		return err
	}
	p.close(cst.DoStatement)
	return nil
}

// returnStatement := 'return' expression? ';'
func (p *Parser) parseReturn() error {
	p.open(cst.ReturnStatement)
	if err := p.expectKeyword("return"); err != nil {
		return err
	}
	if !p.cur().IsSymbol(";") {
		if err := p.parseExpression(); err != nil {
			return err
		}
	}
	if err := p.expectSymbol(";"); err != nil {
		return err
	}
	p.close(cst.ReturnStatement)
	return nil
}

// '(' expression ')'
func (p *Parser) parseCondition() error {
	if err := p.expectSymbol("("); err != nil {
		return err
	}
	if err := p.parseExpression(); err != nil {
		return err
	}
	return p.expectSymbol(")")
}

// '{' statements '}'
func (p *Parser) parseBlock() error {
	if err := p.expectSymbol("{"); err != nil {
		return err
	}
	if err := p.parseStatements(); err != nil {
		return err
	}
	return p.expectSymbol("}")
}
