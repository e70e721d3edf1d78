package parser

import (
	"strings"

	"github.com/oarkflow/searchql/apperrors"
	"github.com/oarkflow/searchql/ast"
	"github.com/oarkflow/searchql/token"
)

// RecDecName is the registered name of the secondary recursive-descent
// parser. SPEC_FULL.md §6 requires it to produce equivalent trees to the
// shift-reduce parser on supported inputs; it follows the EBNF grammar given
// there directly instead of driving an explicit stack machine.
const RecDecName = "recdec"

// recDecParser is a conventional one-token-lookahead descent parser. Unlike
// shiftReduceParser it does recurse with the grammar's nesting, so very deep
// parenthesis runs cost Go stack frames; SPEC_FULL.md documents this parser
// as the non-default alternative for that reason (see DESIGN.md).
type recDecParser struct {
	tokens []token.TokenSpan
	pos    int
}

// ParseRecDec runs the recursive-descent parser over a ROOT-prefixed,
// EOI-terminated token stream.
func ParseRecDec(tokens []token.TokenSpan) (ast.Expr, error) {
	if len(tokens) == 0 || tokens[0].Kind != token.ROOT {
		return nil, apperrors.NewUnexpectedToken(token.TokenSpan{}, token.ROOT)
	}
	p := &recDecParser{tokens: tokens, pos: 1}
	if p.cur().Kind == token.EOI {
		return ast.Empty{}, nil
	}
	expr, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.cur().Kind != token.EOI {
		return nil, apperrors.NewUnexpectedToken(p.cur(), token.EOI)
	}
	return expr, nil
}

func (p *recDecParser) cur() token.TokenSpan {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return token.TokenSpan{Kind: token.EOI}
}

func (p *recDecParser) advance() token.TokenSpan {
	t := p.cur()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return t
}

// parseOr implements: or_expr := and_expr ( OR and_expr )*
func (p *recDecParser) parseOr() (ast.Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == token.OR {
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = combineFold(ast.Or, left, right)
	}
	return left, nil
}

// parseAnd implements: and_expr := unary ( AND unary )*
func (p *recDecParser) parseAnd() (ast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == token.AND {
		p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = combineFold(ast.And, left, right)
	}
	return left, nil
}

// combineFold applies the same idempotence collapse the shift-reduce parser
// applies at reduction time, so both parsers agree on equal inputs.
func combineFold(op ast.CombineOp, left, right ast.Expr) ast.Expr {
	if ast.Equal(left, right) {
		return left
	}
	return ast.Combine{Op: op, Children: []ast.Expr{left, right}}
}

// parseUnary implements: unary := ("NOT" | "!" | "-" | "^" | "~") unary | atom
func (p *recDecParser) parseUnary() (ast.Expr, error) {
	op, ok := applyOpFromKind(p.cur().Kind)
	if !ok {
		return p.parseAtom()
	}
	p.advance()
	child, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return ast.Apply{Op: op, Child: child}, nil
}

// parseAtom implements: atom := group | comparison | tag
func (p *recDecParser) parseAtom() (ast.Expr, error) {
	switch p.cur().Kind {
	case token.LPAREN:
		return p.parseGroup()
	case token.FIELD:
		return p.parseComparison()
	case token.TAG:
		t := p.advance()
		return ast.Tag{Name: t.Raw()}, nil
	default:
		return nil, apperrors.NewUnexpectedToken(p.cur(), token.LPAREN, token.FIELD, token.TAG)
	}
}

// parseGroup implements: group := "(" query ")", folding the result per
// reduction rules 1-3 (empty, singleton-unwrap, n-ary Group).
func (p *recDecParser) parseGroup() (ast.Expr, error) {
	p.advance() // consume "("
	var children []ast.Expr
	for p.cur().Kind != token.RPAREN {
		if p.cur().Kind == token.EOI {
			return nil, apperrors.NewUnexpectedToken(p.cur(), token.RPAREN)
		}
		child, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	p.advance() // consume ")"
	switch len(children) {
	case 0:
		return ast.Empty{}, nil
	case 1:
		return children[0], nil
	default:
		return ast.Group{Children: children}, nil
	}
}

// parseComparison implements: comparison := field range literal
func (p *recDecParser) parseComparison() (ast.Expr, error) {
	fieldTok := p.advance()
	fieldName := strings.TrimSuffix(fieldTok.Raw(), ".")
	if p.cur().Kind != token.RANGE {
		return nil, apperrors.NewUnexpectedToken(p.cur(), token.RANGE)
	}
	rangeTok := p.advance()
	op, err := compareOpFromRaw(rangeTok.Raw())
	if err != nil {
		return nil, apperrors.NewUnexpectedToken(rangeTok, token.RANGE)
	}

	valueTok := p.cur()
	var value ast.Value
	if valueTok.Kind == token.TAG {
		p.advance()
		value = ast.Value{Kind: ast.Undefined, Raw: valueTok.Raw()}
	} else if valueTok.Kind.IsDataValue() {
		p.advance()
		v, err := ast.ValueFromToken(valueTok)
		if err != nil {
			return nil, err
		}
		value = v
	} else {
		return nil, apperrors.NewUnexpectedToken(valueTok, token.FLOAT, token.INTEGER, token.BOOLEAN, token.IP_CIDR, token.ABSOLUTE_DATE, token.RELATIVE_DATE, token.TAG)
	}

	return ast.Comparison{Field: fieldName, Op: op, Value: value}, nil
}
