// Package cql implements a small text query language over component filters:
//
//	CONTAINS(Position) & !CONTAINS(Frozen)
//	EXACT(Position, Velocity) | ALL()
//
// Terms are component-filter primitives (CONTAINS, EXACT, ALL), negated with
// ! and combined with & and |; parentheses group subexpressions.
package cql

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/rotisserie/eris"

	"github.com/emberworks/loom/search/filter"
	"github.com/emberworks/loom/types"
)

// ResolveFn turns a component name from a query string into its registered
// metadata.
type ResolveFn func(name string) (types.ComponentMetadata, error)

type cqlOperator int

const (
	opAnd cqlOperator = iota
	opOr
)

var operatorMap = map[string]cqlOperator{"&": opAnd, "|": opOr}

// Capture tells the parser library how to transform a parsed string token
// into the operator type.
func (o *cqlOperator) Capture(s []string) error {
	if len(s) == 0 {
		return eris.New("invalid operator")
	}
	operator, ok := operatorMap[s[0]]
	if !ok {
		return eris.New("invalid operator")
	}
	*o = operator
	return nil
}

type cqlComponent struct {
	Name string `@Ident`
}

type cqlAll struct{}

func (a *cqlAll) Capture(values []string) error {
	if values[0] == "ALL" && values[1] == "(" && values[2] == ")" {
		*a = cqlAll{}
	}
	return nil
}

type cqlNot struct {
	SubExpression *cqlValue `"!" @@`
}

type cqlExact struct {
	Components []*cqlComponent `"EXACT" "(" (@@ ",")* @@ ")"`
}

type cqlContains struct {
	Components []*cqlComponent `"CONTAINS" "(" (@@ ",")* @@ ")"`
}

type cqlValue struct {
	All           *cqlAll      `@("ALL" "(" ")")`
	Exact         *cqlExact    `| @@`
	Contains      *cqlContains `| @@`
	Not           *cqlNot      `| @@`
	Subexpression *cqlTerm     `| "(" @@ ")"`
}

type cqlFactor struct {
	Base *cqlValue `@@`
}

type cqlOpFactor struct {
	Operator cqlOperator `@("&" | "|")`
	Factor   *cqlFactor  `@@`
}

type cqlTerm struct {
	Left  *cqlFactor     `@@`
	Right []*cqlOpFactor `@@*`
}

var internalCQLParser = participle.MustBuild[cqlTerm]()

func resolveComponents(names []*cqlComponent, resolve ResolveFn) ([]types.ComponentID, error) {
	ids := make([]types.ComponentID, 0, len(names))
	for _, componentName := range names {
		comp, err := resolve(componentName.Name)
		if err != nil {
			return nil, eris.Wrap(err, "")
		}
		ids = append(ids, comp.ID())
	}
	return ids, nil
}

func valueToComponentFilter(value *cqlValue, resolve ResolveFn) (filter.ComponentFilter, error) {
	switch {
	case value.Not != nil:
		resultFilter, err := valueToComponentFilter(value.Not.SubExpression, resolve)
		if err != nil {
			return nil, err
		}
		return filter.Not(resultFilter), nil
	case value.Exact != nil:
		if len(value.Exact.Components) == 0 {
			return nil, eris.New("EXACT cannot have zero parameters")
		}
		ids, err := resolveComponents(value.Exact.Components, resolve)
		if err != nil {
			return nil, err
		}
		return filter.Exact(ids...), nil
	case value.All != nil:
		return filter.All(), nil
	case value.Contains != nil:
		if len(value.Contains.Components) == 0 {
			return nil, eris.New("CONTAINS cannot have zero parameters")
		}
		ids, err := resolveComponents(value.Contains.Components, resolve)
		if err != nil {
			return nil, err
		}
		return filter.Contains(ids...), nil
	case value.Subexpression != nil:
		return termToComponentFilter(value.Subexpression, resolve)
	default:
		return nil, eris.New("unknown expression type")
	}
}

func factorToComponentFilter(factor *cqlFactor, resolve ResolveFn) (filter.ComponentFilter, error) {
	return valueToComponentFilter(factor.Base, resolve)
}

func opFactorToComponentFilter(opFactor *cqlOpFactor, resolve ResolveFn) (
	cqlOperator, filter.ComponentFilter, error,
) {
	resultFilter, err := factorToComponentFilter(opFactor.Factor, resolve)
	return opFactor.Operator, resultFilter, err
}

func termToComponentFilter(term *cqlTerm, resolve ResolveFn) (filter.ComponentFilter, error) {
	if term.Left == nil {
		return nil, eris.New("query has no left value")
	}
	acc, err := factorToComponentFilter(term.Left, resolve)
	if err != nil {
		return nil, err
	}
	for _, opFactor := range term.Right {
		operator, resultFilter, err := opFactorToComponentFilter(opFactor, resolve)
		if err != nil {
			return nil, err
		}
		switch operator {
		case opAnd:
			acc = filter.And(acc, resultFilter)
		case opOr:
			acc = filter.Or(acc, resultFilter)
		default:
			return nil, eris.New("invalid operator")
		}
	}
	return acc, nil
}

// Parse compiles a query string into a component filter, resolving component
// names through the provided callback.
func Parse(cqlText string, resolve ResolveFn) (filter.ComponentFilter, error) {
	term, err := internalCQLParser.ParseString("", cqlText)
	if err != nil {
		return nil, eris.Wrap(err, fmt.Sprintf("failed to parse query %q", strings.TrimSpace(cqlText)))
	}
	resultFilter, err := termToComponentFilter(term, resolve)
	if err != nil {
		return nil, err
	}
	return resultFilter, nil
}
