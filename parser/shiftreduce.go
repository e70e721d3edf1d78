// Package parser turns a tokenizer's token stream into an ast.Expr. It ships
// two implementations with equivalent semantics on well-formed input: the
// core shift-reduce parser (this file) and a secondary recursive-descent
// parser (recdec.go), selectable by name through the façade.
package parser

import (
	"strings"

	"github.com/oarkflow/searchql/ast"
	"github.com/oarkflow/searchql/apperrors"
	"github.com/oarkflow/searchql/token"
)

// ShiftReduceName is the registered name of the core parser.
const ShiftReduceName = "shift_reduce"

// stackItem is either a reduced ast.Expr or a raw token.TokenSpan awaiting a
// reduction rule that can make sense of it (an operator, a paren, a RANGE
// comparator, or a comparator's literal value).
type stackItem struct {
	expr ast.Expr
	tok  token.TokenSpan
}

func exprItem(e ast.Expr) stackItem { return stackItem{expr: e} }
func tokItem(t token.TokenSpan) stackItem { return stackItem{tok: t} }

func (it stackItem) isExpr() bool { return it.expr != nil }

// shiftReduceParser holds an explicit stack rather than recursing, per
// SPEC_FULL.md's nested-group-recursion design note: deeply nested
// parenthesised input must not grow the Go call stack.
type shiftReduceParser struct {
	tokens []token.TokenSpan
	pos    int
	stack  []stackItem
	err    error
	arena  arena
}

// Parse runs the shift-reduce parser over a ROOT-prefixed, EOI-terminated
// token stream produced by a tokenizer.
func Parse(tokens []token.TokenSpan) (ast.Expr, error) {
	p := &shiftReduceParser{tokens: tokens}
	return p.run()
}

// Reusable wraps a shiftReduceParser so repeated Parse calls reuse the same
// stack arena instead of growing a fresh slice every time (the same amortised
// reuse the teacher's Parser.Reset gives its own arena, see DESIGN.md).
type Reusable struct {
	p shiftReduceParser
}

// NewReusable returns a parser ready for repeated Parse calls.
func NewReusable() *Reusable {
	r := &Reusable{}
	r.p.arena.init()
	return r
}

// MemoryStats reports the arena's current slab count and bytes used out of
// the active slab, for the CLI's --debug-memory flag.
type MemoryStats struct {
	Slabs     int
	BytesUsed int
}

// Stats reports this Reusable's arena memory footprint.
func (r *Reusable) Stats() MemoryStats {
	return MemoryStats{Slabs: r.p.arena.slabCount(), BytesUsed: r.p.arena.bytesUsed()}
}

// Parse runs the shift-reduce parser over tokens, reusing this Reusable's
// arena across calls.
func (r *Reusable) Parse(tokens []token.TokenSpan) (ast.Expr, error) {
	r.p.arena.reset()
	r.p.tokens = tokens
	r.p.pos = 0
	r.p.stack = r.p.stack[:0]
	r.p.err = nil
	return r.p.run()
}

func (p *shiftReduceParser) run() (ast.Expr, error) {
	if len(p.tokens) == 0 || p.tokens[0].Kind != token.ROOT {
		return nil, apperrors.NewUnexpectedToken(token.TokenSpan{}, token.ROOT)
	}
	p.pos = 1
	for {
		if !p.drainReductions() {
			return nil, p.err
		}
		if p.pos >= len(p.tokens) {
			return nil, apperrors.NewUnexpectedToken(token.TokenSpan{}, token.EOI)
		}
		cur := p.tokens[p.pos]
		if cur.Kind == token.EOI {
			return p.finish(cur)
		}
		p.shift(cur)
		p.pos++
	}
}

// drainReductions applies reduce rules until none fire. It returns false if a
// reduction rule hit a fatal error (recorded in p.err).
func (p *shiftReduceParser) drainReductions() bool {
	for p.reduceStep() {
		if p.err != nil {
			return false
		}
	}
	return p.err == nil
}

// reduceStep tries each reduction rule once, in priority order, and applies
// the first one that matches the top of the stack.
func (p *shiftReduceParser) reduceStep() bool {
	if p.reduceParen() {
		return true
	}
	if p.reduceComparison() {
		return true
	}
	if p.reduceApply() {
		return true
	}
	if p.reduceCombine() {
		return true
	}
	return false
}

// shift pushes the current lookahead. Per SPEC_FULL.md §4.3's shift
// transforms, TAG and FIELD are wrapped into Expr immediately; every other
// token kind is pushed raw so later reductions can pattern-match on it.
func (p *shiftReduceParser) shift(tok token.TokenSpan) {
	switch tok.Kind {
	case token.TAG:
		p.stack = arenaAppend(&p.arena, p.stack, exprItem(ast.Tag{Name: tok.Raw()}))
	case token.FIELD:
		name := strings.TrimSuffix(tok.Raw(), ".")
		p.stack = arenaAppend(&p.arena, p.stack, exprItem(ast.Field{Name: name}))
	default:
		p.stack = arenaAppend(&p.arena, p.stack, tokItem(tok))
	}
}

// reduceParen implements rules 1-3: "( )" -> Empty, "( Expr )" -> Expr,
// "( Expr1 ... Exprk )" (k>=2) -> Group.
func (p *shiftReduceParser) reduceParen() bool {
	n := len(p.stack)
	if n == 0 {
		return false
	}
	top := p.stack[n-1]
	if top.isExpr() || top.tok.Kind != token.RPAREN {
		return false
	}
	i := n - 2
	var children []ast.Expr
	for i >= 0 && p.stack[i].isExpr() {
		children = append(children, p.stack[i].expr)
		i--
	}
	if i < 0 || p.stack[i].isExpr() || p.stack[i].tok.Kind != token.LPAREN {
		return false
	}
	for l, r := 0, len(children)-1; l < r; l, r = l+1, r-1 {
		children[l], children[r] = children[r], children[l]
	}
	var result ast.Expr
	switch len(children) {
	case 0:
		result = ast.Empty{}
	case 1:
		result = children[0]
	default:
		result = ast.Group{Children: children}
	}
	p.stack = arenaAppend(&p.arena, p.stack[:i], exprItem(result))
	return true
}

// reduceComparison implements rule 7: "FIELD RANGE VALUE -> Comparison". The
// value slot is either a raw literal token or, for Comp(has), a TAG already
// wrapped into Expr::Tag by shift — carried as an opaque Undefined value.
func (p *shiftReduceParser) reduceComparison() bool {
	n := len(p.stack)
	if n < 3 {
		return false
	}
	valueItem := p.stack[n-1]
	rangeItem := p.stack[n-2]
	fieldItem := p.stack[n-3]
	if rangeItem.isExpr() || rangeItem.tok.Kind != token.RANGE {
		return false
	}
	if !fieldItem.isExpr() {
		return false
	}
	field, ok := fieldItem.expr.(ast.Field)
	if !ok {
		return false
	}

	var value ast.Value
	if valueItem.isExpr() {
		tag, ok := valueItem.expr.(ast.Tag)
		if !ok {
			return false
		}
		value = ast.Value{Kind: ast.Undefined, Raw: tag.Name}
	} else {
		if !valueItem.tok.Kind.IsDataValue() {
			return false
		}
		v, err := ast.ValueFromToken(valueItem.tok)
		if err != nil {
			p.err = err
			return true
		}
		value = v
	}

	op, err := compareOpFromRaw(rangeItem.tok.Raw())
	if err != nil {
		p.err = apperrors.NewUnexpectedToken(rangeItem.tok, token.RANGE)
		return true
	}
	p.stack = arenaAppend(&p.arena, p.stack[:n-3], exprItem(ast.Comparison{Field: field.Name, Op: op, Value: value}))
	return true
}

// reduceApply implements rule 6, generalised to all three prefix operators
// the tokenizer admits (Not, Boost, Fuzz share the same shift-reduce shape).
func (p *shiftReduceParser) reduceApply() bool {
	n := len(p.stack)
	if n < 2 {
		return false
	}
	top := p.stack[n-1]
	below := p.stack[n-2]
	if !top.isExpr() || below.isExpr() {
		return false
	}
	if _, isField := top.expr.(ast.Field); isField {
		return false // the Field still awaits its RANGE and value
	}
	op, ok := applyOpFromKind(below.tok.Kind)
	if !ok {
		return false
	}
	p.stack = arenaAppend(&p.arena, p.stack[:n-2], exprItem(ast.Apply{Op: op, Child: top.expr}))
	return true
}

// reduceCombine implements rules 4 and 5, including the idempotence
// collapse: Combine(op, [x, x]) with x == x structurally reduces to x. An OR
// is left unreduced while the lookahead is an AND, so AND binds tighter than
// OR, matching the recdec grammar.
func (p *shiftReduceParser) reduceCombine() bool {
	n := len(p.stack)
	if n < 3 {
		return false
	}
	left := p.stack[n-3]
	op := p.stack[n-2]
	right := p.stack[n-1]
	if !left.isExpr() || op.isExpr() || !right.isExpr() {
		return false
	}
	if _, isField := right.expr.(ast.Field); isField {
		return false // the Field still awaits its RANGE and value
	}
	var combineOp ast.CombineOp
	switch op.tok.Kind {
	case token.AND:
		combineOp = ast.And
	case token.OR:
		if p.pos < len(p.tokens) && p.tokens[p.pos].Kind == token.AND {
			return false
		}
		combineOp = ast.Or
	default:
		return false
	}
	var result ast.Expr
	if ast.Equal(left.expr, right.expr) {
		result = left.expr
	} else {
		result = ast.Combine{Op: combineOp, Children: []ast.Expr{left.expr, right.expr}}
	}
	p.stack = arenaAppend(&p.arena, p.stack[:n-3], exprItem(result))
	return true
}

// finish implements rule 8: at EOI, a single surviving item unwraps as the
// result; multiple surviving items wrap in a Group for later optimisation.
func (p *shiftReduceParser) finish(eoi token.TokenSpan) (ast.Expr, error) {
	if !p.drainReductions() {
		return nil, p.err
	}
	switch len(p.stack) {
	case 0:
		return ast.Empty{}, nil
	case 1:
		item := p.stack[0]
		if !item.isExpr() {
			return nil, apperrors.NewUnexpectedToken(item.tok, token.RPAREN)
		}
		return item.expr, nil
	default:
		children := make([]ast.Expr, 0, len(p.stack))
		for _, it := range p.stack {
			if !it.isExpr() {
				return nil, apperrors.NewUnexpectedToken(eoi, token.RPAREN)
			}
			children = append(children, it.expr)
		}
		return ast.Group{Children: children}, nil
	}
}

func applyOpFromKind(k token.Kind) (ast.ApplyOp, bool) {
	switch k {
	case token.NOT:
		return ast.Not, true
	case token.BOOST:
		return ast.Boost, true
	case token.FUZZ:
		return ast.Fuzz, true
	default:
		return 0, false
	}
}

func compareOpFromRaw(raw string) (ast.CompareOp, error) {
	switch strings.ToLower(raw) {
	case "gte:":
		return ast.GreaterThanOrEqual, nil
	case "gt:":
		return ast.GreaterThan, nil
	case "lte:":
		return ast.LessThanOrEqual, nil
	case "lt:":
		return ast.LessThan, nil
	case "eq:":
		return ast.EqualTo, nil
	case "neq:":
		return ast.NotEqual, nil
	case "has:":
		return ast.Contains, nil
	default:
		return 0, apperrors.ErrUnexpectedToken
	}
}
