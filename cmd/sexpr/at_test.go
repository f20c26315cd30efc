package main

import (
	"testing"

	"github.com/signadot/sexpr/token"
)

func TestParseRange(t *testing.T) {
	cases := []struct {
		in  string
		out token.Span
		bad bool
	}{
		{in: "3", out: token.Span{Start: 3, End: 3}},
		{in: "3:7", out: token.Span{Start: 3, End: 7}},
		{in: "0:0", out: token.Span{}},
		{in: "7:3", bad: true},
		{in: "-1", bad: true},
		{in: "a:3", bad: true},
		{in: "3:", bad: true},
	}
	for _, c := range cases {
		got, err := parseRange(c.in)
		if c.bad {
			if err == nil {
				t.Errorf("%q: expected error", c.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", c.in, err)
			continue
		}
		if got != c.out {
			t.Errorf("%q: got %s want %s", c.in, got, c.out)
		}
	}
}
