package bignum_test

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"bigcalc/internal/bignum"
)

func TestReaderReadsValues(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"1234567890", "1234567890"},
		{"-987654321", "-987654321"},
		{"0", "0"},
		{"00001234", "1234"},
		{"-0", "0"},
		{"  \n\t 42  ", "42"},
	}
	for _, tc := range cases {
		r := bignum.NewReader(strings.NewReader(tc.input))
		var v bignum.BigInt
		if !r.Read(&v) {
			t.Errorf("Read(%q) failed (fail=%v eof=%v)", tc.input, r.Fail(), r.EOF())
			continue
		}
		if v.String() != tc.want {
			t.Errorf("Read(%q) = %s, want %s", tc.input, v, tc.want)
		}
		if v.IsZero() && v.IsNeg() {
			t.Errorf("Read(%q) produced negative zero", tc.input)
		}
	}
}

func TestReaderInvalidTokenLeavesDestination(t *testing.T) {
	for _, input := range []string{"abc123", "-", "12a3", "+5"} {
		r := bignum.NewReader(strings.NewReader(input))
		v := bignum.New(77)
		if r.Read(&v) {
			t.Errorf("Read(%q) succeeded with %s", input, v)
		}
		if !r.Fail() {
			t.Errorf("Read(%q) did not raise the failure flag", input)
		}
		if v.String() != "77" {
			t.Errorf("Read(%q) modified destination to %s", input, v)
		}
		if r.Token() != input {
			t.Errorf("Token() = %q, want %q", r.Token(), input)
		}
	}
}

func TestReaderFailureIsStickyUntilCleared(t *testing.T) {
	r := bignum.NewReader(strings.NewReader("1 oops 2 3"))
	var v bignum.BigInt
	if !r.Read(&v) || v.String() != "1" {
		t.Fatalf("first Read = %s", v)
	}
	if r.Read(&v) {
		t.Fatalf("Read accepted %q", r.Token())
	}
	// sticky: no further input is consumed while failed
	for range 3 {
		if r.Read(&v) {
			t.Fatalf("Read succeeded while failed")
		}
	}
	if v.String() != "1" {
		t.Errorf("destination = %s, want 1", v)
	}
	r.Clear()
	if r.Fail() {
		t.Fatalf("Clear did not reset the failure flag")
	}
	var got []string
	for r.Read(&v) {
		got = append(got, v.String())
	}
	if strings.Join(got, ",") != "2,3" {
		t.Errorf("resumed values = %v, want [2 3]", got)
	}
	if !r.EOF() || r.Fail() {
		t.Errorf("after exhaustion eof=%v fail=%v", r.EOF(), r.Fail())
	}
	if r.Err() != nil {
		t.Errorf("Err() = %v", r.Err())
	}
}

func TestReaderEmptyStream(t *testing.T) {
	r := bignum.NewReader(strings.NewReader("   "))
	v := bignum.New(5)
	if r.Read(&v) {
		t.Fatalf("Read on blank stream succeeded")
	}
	if !r.EOF() || r.Fail() {
		t.Errorf("blank stream eof=%v fail=%v", r.EOF(), r.Fail())
	}
	if v.String() != "5" {
		t.Errorf("destination = %s, want 5", v)
	}
}

func TestReaderIOError(t *testing.T) {
	boom := errors.New("boom")
	r := bignum.NewReader(iotest.ErrReader(boom))
	var v bignum.BigInt
	if r.Read(&v) {
		t.Fatalf("Read succeeded on failing stream")
	}
	if !errors.Is(r.Err(), boom) {
		t.Errorf("Err() = %v, want %v", r.Err(), boom)
	}
}
