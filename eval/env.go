package eval

import (
	"github.com/signadot/sexpr/document"
	"github.com/signadot/sexpr/ir"
	"github.com/signadot/sexpr/token"
)

// Env is the environment of a query evaluated at one node.
type Env struct {
	Tag      string `expr:"tag"`
	Kind     string `expr:"kind"`
	Text     string `expr:"text"`
	Token    string `expr:"token"`
	Depth    int    `expr:"depth"`
	Start    int    `expr:"start"`
	End      int    `expr:"end"`
	Children int    `expr:"children"`
	Leaf     bool   `expr:"leaf"`
	Path     string `expr:"path"`
	Parent   string `expr:"parent"`

	HasChild func(string) bool   `expr:"hasChild"`
	Within   func(int, int) bool `expr:"within"`
}

// NewEnv describes node, found at path.
func NewEnv(path document.Path, node *ir.Node) *Env {
	env := &Env{
		Tag:      string(node.Tag),
		Kind:     node.Type.String(),
		Token:    node.Token(),
		Depth:    len(path) - 1,
		Start:    node.Span.Start,
		End:      node.Span.End,
		Children: len(node.Values),
		Leaf:     node.IsLeaf(),
		Path:     path.String(),
	}
	if node.IsLeaf() {
		env.Text = node.String
	}
	if node.Parent != nil {
		env.Parent = string(node.Parent.Tag)
	}
	env.HasChild = func(tag string) bool {
		for _, c := range node.Values {
			if !c.IsLeaf() && string(c.Tag) == tag {
				return true
			}
		}
		return false
	}
	env.Within = func(start, end int) bool {
		return token.Span{Start: start, End: end}.Contains(node.Span)
	}
	return env
}
