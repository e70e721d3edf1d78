// Package diagnostics collects advisory findings about a parsed query, in
// the spirit of the teacher's AnalysisReport/AnalysisFinding pair (see
// analyze.go in the reference pack) but scoped to this module's domain: a
// search-query expression tree rather than a SQL statement. Collection is
// opt-in — nothing in the tokenizer or parser calls into this package, so a
// caller that never asks for a report pays nothing for it.
package diagnostics

import (
	"fmt"

	"github.com/oarkflow/searchql/ast"
)

// Severity follows the teacher's FindingSeverity scale; only the info and
// warning levels are defined here.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

// Finding is one advisory observation about a parsed tree.
type Finding struct {
	Severity Severity
	Code     string
	Message  string
}

// Report bundles every Finding produced for one tree.
type Report struct {
	Findings []Finding
}

func (r *Report) add(sev Severity, code, format string, args ...any) {
	r.Findings = append(r.Findings, Finding{Severity: sev, Code: code, Message: fmt.Sprintf(format, args...)})
}

// Analyze walks e and returns advisory findings: redundant nesting the
// EOI-fold optimiser would remove, wide Combine fan-out, and comparisons the
// optimiser can't simplify further. It never errors — a malformed or
// already-folded tree just produces an empty or shorter report.
func Analyze(e ast.Expr) Report {
	var r Report
	walk(e, 0, &r)
	return r
}

const wideCombineThreshold = 32
const deepNestingThreshold = 16

func walk(e ast.Expr, depth int, r *Report) {
	if depth > deepNestingThreshold {
		r.add(SeverityWarning, "DEEP_NESTING", "expression nests more than %d groups deep; consider flattening the query", deepNestingThreshold)
	}
	switch v := e.(type) {
	case ast.Group:
		if len(v.Children) == 1 {
			r.add(SeverityInfo, "REDUNDANT_GROUP", "parenthesised group wraps a single term; Fold would unwrap it")
		}
		if len(v.Children) == 0 {
			r.add(SeverityInfo, "EMPTY_GROUP", "empty parenthesised group contributes nothing; Fold would drop it")
		}
		for _, c := range v.Children {
			walk(c, depth+1, r)
		}
	case ast.Combine:
		if len(v.Children) > wideCombineThreshold {
			r.add(SeverityWarning, "WIDE_COMBINE", "%s combines %d terms; evaluation cost grows linearly with fan-out", v.Op, len(v.Children))
		}
		for _, c := range v.Children {
			if nested, ok := c.(ast.Combine); ok && nested.Op == v.Op {
				r.add(SeverityInfo, "UNFLATTENED_COMBINE", "nested %s under the same operator; Fold would splice it into the parent", v.Op)
			}
			walk(c, depth, r)
		}
	case ast.Apply:
		if nested, ok := v.Child.(ast.Apply); ok && v.Op == ast.Not && nested.Op == ast.Not {
			r.add(SeverityInfo, "DOUBLE_NEGATION", "double NOT cancels out but is not simplified by Fold")
		}
		walk(v.Child, depth, r)
	case ast.Comparison:
		if v.Op == ast.Contains && v.Value.Kind != ast.Undefined {
			r.add(SeverityWarning, "HAS_WITH_TYPED_VALUE", "field %q uses has: with a typed literal instead of a bareword", v.Field)
		}
	}
}

// String renders a Report as one line per finding, "[severity] CODE: message".
func (r Report) String() string {
	var out string
	for i, f := range r.Findings {
		if i > 0 {
			out += "\n"
		}
		out += fmt.Sprintf("[%s] %s: %s", f.Severity, f.Code, f.Message)
	}
	return out
}
