package calc

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"bigcalc/internal/bignum"
	"bigcalc/internal/trace"
)

func TestEval(t *testing.T) {
	cases := []struct {
		expr string
		want string
	}{
		{"42", "42"},
		{"-42", "-42"},
		{"1234567890 9876543210 +", "11111111100"},
		{"100 200 -", "-100"},
		{"12345 6789 *", "83810205"},
		{"83810205 12345 /", "6789"},
		{"-7 2 /", "-3"},
		{"-7 2 %", "-1"},
		{"2 100 ^", "1267650600228229401496703205376"},
		{"0 0 ^", "1"},
		{"3 9 max", "9"},
		{"3 9 min", "3"},
		{"3 9 cmp", "-1"},
		{"9 9 cmp", "0"},
		{"5 neg", "-5"},
		{"-5 abs", "5"},
		{"1000000000001 sqrt", "1000000"},
		{"20 !", "2432902008176640000"},
		{"20 FACT", "2432902008176640000"},
		{"100 fib", "354224848179261915075"},
		{"10 catalan", "16796"},
		{"999999999 inc", "1000000000"},
		{"0 dec", "-1"},
		{"7 dup *", "49"},
		{"1 2 swap -", "1"},
		{"1 2 drop", "1"},
		{"  2\t3\n+ ", "5"},
		{"００１２ ３ +", "15"},
		{"-0", "0"},
	}
	m := NewMachine()
	for _, tc := range cases {
		got, err := m.Eval(context.Background(), tc.expr)
		if err != nil {
			t.Errorf("Eval(%q): %v", tc.expr, err)
			continue
		}
		if got.String() != tc.want {
			t.Errorf("Eval(%q) = %s, want %s", tc.expr, got, tc.want)
		}
	}
}

func TestEvalErrors(t *testing.T) {
	cases := []struct {
		expr string
		want error
		msg  string
	}{
		{"", ErrEmptyExpression, "calc: empty expression"},
		{"   ", ErrEmptyExpression, "calc: empty expression"},
		{"1 +", ErrStackUnderflow, `calc: token 2 "+": stack underflow: needs 2, have 1`},
		{"1 2", ErrLeftover, "calc: leftover values on stack: 2 values"},
		{"1 drop", ErrStackUnderflow, ""},
		{"1 2 frob", ErrUnknownOperator, `calc: token 3 "frob": unknown operator`},
		{"+5", ErrUnknownOperator, ""},
		{"1 0 /", bignum.ErrDivisionByZero, `calc: token 3 "/": division by zero`},
		{"1 0 %", bignum.ErrDivisionByZero, ""},
		{"-4 sqrt", bignum.ErrNegativeArgument, ""},
		{"-1 !", bignum.ErrNegativeArgument, ""},
		{"2 -1 ^", bignum.ErrNegativeArgument, ""},
		{"1000001 !", ErrArgumentTooLarge, ""},
		{"2 99999999999999999999999 ^", ErrArgumentTooLarge, ""},
	}
	m := NewMachine()
	for _, tc := range cases {
		_, err := m.Eval(context.Background(), tc.expr)
		if !errors.Is(err, tc.want) {
			t.Errorf("Eval(%q) error = %v, want %v", tc.expr, err, tc.want)
			continue
		}
		if tc.msg != "" && err.Error() != tc.msg {
			t.Errorf("Eval(%q) error = %q, want %q", tc.expr, err.Error(), tc.msg)
		}
	}
}

func TestExecKeepsStackOnError(t *testing.T) {
	m := NewMachine()
	if _, err := m.Exec(context.Background(), "10 3"); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Exec(context.Background(), "0 /"); err == nil {
		t.Fatal("division by zero succeeded")
	}
	var got []string
	for _, v := range m.Stack() {
		got = append(got, v.String())
	}
	if strings.Join(got, " ") != "10 3 0" {
		t.Errorf("stack after failure = %v, want [10 3 0]", got)
	}
	if _, err := m.Exec(context.Background(), "drop +"); err != nil {
		t.Fatal(err)
	}
	if m.Depth() != 1 || m.Stack()[0].String() != "13" {
		t.Errorf("stack = %v", m.Stack())
	}
}

func TestZeroMachineHasNoBound(t *testing.T) {
	var m Machine
	got, err := m.Eval(context.Background(), "25 !")
	if err != nil || got.String() != "15511210043330985984000000" {
		t.Errorf("Eval(25 !) = %s, %v", got, err)
	}
}

func TestEvalCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewMachine().Eval(ctx, "1 2 +"); !errors.Is(err, context.Canceled) {
		t.Errorf("Eval on canceled context = %v", err)
	}
}

func TestEvalTracesOperators(t *testing.T) {
	var buf bytes.Buffer
	ctx := trace.WithTracer(context.Background(), trace.NewStreamTracer(&buf, trace.LevelDebug, trace.FormatText))
	if _, err := NewMachine().Eval(ctx, "6 7 *"); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"→ eval", "• push (6)", "→ op:*", "← eval (6 7 *) {digits=2}"} {
		if !strings.Contains(out, want) {
			t.Errorf("trace missing %q:\n%s", want, out)
		}
	}
}

func TestOperators(t *testing.T) {
	ops := Operators()
	if len(ops) == 0 || ops[0].Arity != 2 || ops[len(ops)-1].Arity != 1 {
		t.Fatalf("Operators() = %v", ops)
	}
	seen := map[string]bool{}
	for _, op := range ops {
		seen[op.Name] = true
	}
	for _, name := range []string{"+", "-", "*", "/", "%", "^", "!", "fib", "catalan", "sqrt", "dup", "swap"} {
		if !seen[name] {
			t.Errorf("operator %q missing", name)
		}
	}
}

func TestResolveMaxArgument(t *testing.T) {
	cases := map[int]int{0: DefaultMaxArgument, -1: 0, -500: 0, 7: 7}
	for in, want := range cases {
		if got := ResolveMaxArgument(in); got != want {
			t.Errorf("ResolveMaxArgument(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestArgument(t *testing.T) {
	if n, err := Argument(bignum.New(10), 10); err != nil || n != 10 {
		t.Errorf("Argument(10, 10) = %d, %v", n, err)
	}
	if _, err := Argument(bignum.New(11), 10); !errors.Is(err, ErrArgumentTooLarge) {
		t.Errorf("Argument(11, 10) error = %v", err)
	}
	if n, err := Argument(bignum.New(1_000_000), 0); err != nil || n != 1_000_000 {
		t.Errorf("unbounded Argument = %d, %v", n, err)
	}
	if n, err := Argument(bignum.New(-3), 10); err != nil || n != -3 {
		t.Errorf("Argument(-3, 10) = %d, %v", n, err)
	}
	if _, err := Argument(bignum.MustParse("1000000000000000000000"), 0); !errors.Is(err, ErrArgumentTooLarge) {
		t.Errorf("Argument beyond int64 error = %v", err)
	}
}
