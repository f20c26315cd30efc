package libdiff

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/sexpr/encode"
	"github.com/signadot/sexpr/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

func (o Op) String() string {
	switch o {
	case Equal:
		return " "
	case Insert:
		return "+"
	case Delete:
		return "-"
	default:
		return "?"
	}
}

type Line struct {
	Op   Op
	Text string
}

type Diff struct {
	Lines []Line
}

// Equal reports whether the compared forests render identically.
func (d *Diff) Equal() bool {
	for i := range d.Lines {
		if d.Lines[i].Op != Equal {
			return false
		}
	}
	return true
}

// Changes counts inserted and deleted lines.
func (d *Diff) Changes() (ins, del int) {
	for i := range d.Lines {
		switch d.Lines[i].Op {
		case Insert:
			ins++
		case Delete:
			del++
		}
	}
	return
}

type diffOpts struct {
	spans bool
}

type DiffOption func(*diffOpts)

// WithSpans includes source spans in the compared renderings, so that
// trees differing only in layout are reported as different.
func WithSpans(v bool) DiffOption {
	return func(o *diffOpts) { o.spans = v }
}

// Trees diffs the tree renderings of from and to.
func Trees(from, to []*ir.Node, opts ...DiffOption) (*Diff, error) {
	o := &diffOpts{}
	for _, opt := range opts {
		opt(o)
	}
	a, err := render(from, o)
	if err != nil {
		return nil, err
	}
	b, err := render(to, o)
	if err != nil {
		return nil, err
	}
	return Text(a, b), nil
}

func render(nodes []*ir.Node, o *diffOpts) (string, error) {
	buf := bytes.NewBuffer(nil)
	err := encode.EncodeAll(nodes, buf,
		encode.EncodeFormat(encode.TreeFormat),
		encode.EncodeSpans(o.spans))
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Text diffs a and b by lines.
func Text(a, b string) *Diff {
	diffCfg := diffpatch.New()
	ac, bc, lines := diffCfg.DiffLinesToChars(a, b)
	diffs := diffCfg.DiffMain(ac, bc, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)
	res := &Diff{}
	for i := range diffs {
		diff := &diffs[i]
		var op Op
		switch diff.Type {
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffDelete:
			op = Delete
		case diffpatch.DiffEqual:
			op = Equal
		}
		for _, ln := range splitLines(diff.Text) {
			res.Lines = append(res.Lines, Line{Op: op, Text: ln})
		}
	}
	return res
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

type Colors struct {
	Insert, Delete func(string, ...any) string
}

// Write writes d to w, one line per rendered line prefixed by its op.  If
// c is not nil, changed lines are colored.
func (d *Diff) Write(w io.Writer, c *Colors) error {
	for i := range d.Lines {
		ln := &d.Lines[i]
		s := ln.Op.String() + " " + ln.Text
		if c != nil {
			switch ln.Op {
			case Insert:
				s = c.Insert("%s", s)
			case Delete:
				s = c.Delete("%s", s)
			}
		}
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}
