package parser

import (
	"jackfront/internal/cst"
)

// class := 'class' className '{' classVarDec* subroutineDec* '}'
func (p *Parser) parseClass() error {
	p.open(cst.Class)
	if err := p.expectKeyword("class"); err != nil {
		return err
	}
	if err := p.expectIdent("class name"); err != nil {
		return err
	}
	if err := p.expectSymbol("{"); err != nil {
		return err
	}
	p.classBody = p.lastSpan
	for p.cur().IsKeyword("static", "field") {
		if err := p.parseClassVarDec(); err != nil {
			return err
		}
	}
	for p.cur().IsKeyword("constructor", "function", "method") {
		if err := p.ctx.Err(); err != nil {
			return err
		}
		if err := p.parseSubroutineDec(); err != nil {
			return err
		}
	}
	if err := p.expectSymbol("}"); err != nil {
		return err
	}
	p.close(cst.Class)
	return nil
}

// classVarDec := ('static'|'field') type varName (',' varName)* ';'
func (p *Parser) parseClassVarDec() error {
	p.open(cst.ClassVarDec)
	if err := p.expectKeyword("static", "field"); err != nil {
		return err
	}
	if err := p.parseVarList(); err != nil {
		return err
	}
	p.close(cst.ClassVarDec)
	return nil
}

// varDec := 'var' type varName (',' varName)* ';'
func (p *Parser) parseVarDec() error {
	p.open(cst.VarDec)
	if err := p.expectKeyword("var"); err != nil {
		return err
	}
	if err := p.parseVarList(); err != nil {
		return err
	}
	p.close(cst.VarDec)
	return nil
}

// type varName (',' varName)* ';'
func (p *Parser) parseVarList() error {
	if err := p.expectType(false); err != nil {
		return err
	}
	if err := p.expectIdent("variable name"); err != nil {
		return err
	}
	for p.cur().IsSymbol(",") {
		if err := p.consume(); err != nil {
			return err
		}
		if err := p.expectIdent("variable name"); err != nil {
			return err
		}
	}
	return p.expectSymbol(";")
}

// subroutineDec := ('constructor'|'function'|'method') ('void'|type)
//
//	subroutineName '(' parameterList ')' subroutineBody
func (p *Parser) parseSubroutineDec() error {
	p.open(cst.SubroutineDec)
	if err := p.expectKeyword("constructor", "function", "method"); err != nil {
		return err
	}
	if err := p.expectType(true); err != nil {
		return err
	}
	if err := p.expectIdent("subroutine name"); err != nil {
		return err
	}
	if err := p.expectSymbol("("); err != nil {
		return err
	}
	if err := p.parseParameterList(); err != nil {
		return err
	}
	if err := p.expectSymbol(")"); err != nil {
		return err
	}
	if err := p.parseSubroutineBody(); err != nil {
		return err
	}
	p.close(cst.SubroutineDec)
	return nil
}

// parameterList := (type varName (',' type varName)*)?
func (p *Parser) parseParameterList() error {
	p.open(cst.ParameterList)
	if !p.cur().IsSymbol(")") {
		if err := p.parseParameter(); err != nil {
			return err
		}
		for p.cur().IsSymbol(",") {
			if err := p.consume(); err != nil {
				return err
			}
			if err := p.parseParameter(); err != nil {
				return err
			}
		}
	}
	p.close(cst.ParameterList)
	return nil
}

func (p *Parser) parseParameter() error {
	if err := p.expectType(false); err != nil {
		return err
	}
	return p.expectIdent("parameter name")
}

// subroutineBody := '{' varDec* statements '}'
func (p *Parser) parseSubroutineBody() error {
	p.open(cst.SubroutineBody)
	if err := p.expectSymbol("{"); err != nil {
		return err
	}
	for p.cur().IsKeyword("var") {
		if err := p.parseVarDec(); err != nil {
			return err
		}
	}
	if err := p.parseStatements(); err != nil {
		return err
	}
	if err := p.expectSymbol("}"); err != nil {
		return err
	}
	p.close(cst.SubroutineBody)
	return nil
}
