// Package calc evaluates reverse Polish notation expressions over bignum.BigInt.
//
// Tokens are separated by whitespace. A token that parses as an integer is
// pushed; anything else is looked up as an operator:
//
//	2 100 ^ 3 %     // (2**100) mod 3
//	20 !            // factorial
//	1 2 swap -      // 1
package calc

import (
	"cmp"
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"

	"bigcalc/internal/bignum"
	"bigcalc/internal/trace"
)

// DefaultMaxArgument bounds factorial, Fibonacci, Catalan indexes and
// exponents so a typo cannot pin a CPU for hours.
const DefaultMaxArgument = 100_000

// Machine is an RPN stack machine. The zero value is ready to use with no
// argument bound; NewMachine applies DefaultMaxArgument.
type Machine struct {
	MaxArgument int // 0 disables the bound

	stack []bignum.BigInt
}

// ResolveMaxArgument maps a user-supplied bound to a MaxArgument value:
// 0 selects DefaultMaxArgument and a negative value disables the bound.
func ResolveMaxArgument(n int) int {
	switch {
	case n == 0:
		return DefaultMaxArgument
	case n < 0:
		return 0
	default:
		return n
	}
}

// NewMachine returns an empty Machine.
func NewMachine() *Machine {
	return &Machine{MaxArgument: DefaultMaxArgument}
}

// Eval evaluates expr on an empty stack and returns the single value it leaves.
func (m *Machine) Eval(ctx context.Context, expr string) (bignum.BigInt, error) {
	ctx, span := trace.Start(ctx, trace.ScopeExpr, "eval")
	m.Reset()
	n, err := m.Exec(ctx, expr)
	switch {
	case err != nil:
	case n == 0:
		err = &Error{Err: ErrEmptyExpression}
	case len(m.stack) == 0:
		err = &Error{Err: fmt.Errorf("%w: expression left no value", ErrStackUnderflow)}
	case len(m.stack) > 1:
		err = &Error{Err: fmt.Errorf("%w: %d values", ErrLeftover, len(m.stack))}
	}
	if err != nil {
		span.WithExtra("error", err.Error()).End(expr)
		return bignum.BigInt{}, err
	}
	result := m.stack[0]
	span.WithExtra("digits", fmt.Sprint(len(result.String()))).End(expr)
	return result, nil
}

// Exec runs the tokens of expr against the current stack and reports how many
// tokens it consumed. On error the stack holds the values it had before the
// failing token.
func (m *Machine) Exec(ctx context.Context, expr string) (int, error) {
	r := bignum.NewReader(strings.NewReader(norm.NFKC.String(expr)))
	tracer := trace.FromContext(ctx)
	pos := 0
	for {
		if err := ctx.Err(); err != nil {
			return pos, err
		}
		var v bignum.BigInt
		if r.Read(&v) {
			pos++
			m.stack = append(m.stack, v)
			trace.Point(tracer, trace.ScopeOp, "push", r.Token(), trace.CurrentSpan(ctx))
			continue
		}
		if !r.Fail() {
			break
		}
		pos++
		tok := r.Token()
		r.Clear()
		if err := m.apply(ctx, tok); err != nil {
			return pos, &Error{Pos: pos, Token: tok, Err: err}
		}
	}
	if err := r.Err(); err != nil {
		return pos, fmt.Errorf("calc: read expression: %w", err)
	}
	return pos, nil
}

func (m *Machine) apply(ctx context.Context, tok string) error {
	op, ok := operators[strings.ToLower(tok)]
	if !ok {
		return ErrUnknownOperator
	}
	if len(m.stack) < op.arity {
		return fmt.Errorf("%w: needs %d, have %d", ErrStackUnderflow, op.arity, len(m.stack))
	}
	_, span := trace.Start(ctx, trace.ScopeOp, "op:"+tok)
	base := len(m.stack) - op.arity
	out, err := op.fn(m, m.stack[base:])
	if err != nil {
		span.WithExtra("error", err.Error()).End("")
		return err
	}
	m.stack = append(m.stack[:base], out...)
	span.End("")
	return nil
}

// Stack returns a copy of the stack, bottom first.
func (m *Machine) Stack() []bignum.BigInt {
	return slices.Clone(m.stack)
}

// Depth returns the number of values on the stack.
func (m *Machine) Depth() int { return len(m.stack) }

// Reset empties the stack.
func (m *Machine) Reset() { m.stack = m.stack[:0] }

// Operators lists the supported operators, binary ones first, each group by name.
func Operators() []Operator {
	out := make([]Operator, 0, len(operators))
	for _, name := range slices.Sorted(maps.Keys(operators)) {
		op := operators[name]
		out = append(out, Operator{Name: name, Arity: op.arity, Help: op.help})
	}
	slices.SortStableFunc(out, func(a, b Operator) int { return cmp.Compare(b.Arity, a.Arity) })
	return out
}
