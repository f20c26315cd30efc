package ir

// Equal reports whether a and b have the same structure, tags, text and
// spans.
func Equal(a, b *Node) bool {
	return equal(a, b, true)
}

// EqualRaw is Equal ignoring spans.
func EqualRaw(a, b *Node) bool {
	return equal(a, b, false)
}

func equal(a, b *Node, spans bool) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type || a.Tag != b.Tag || a.String != b.String {
		return false
	}
	if spans && a.Span != b.Span {
		return false
	}
	if len(a.Values) != len(b.Values) {
		return false
	}
	for i := range a.Values {
		if !equal(a.Values[i], b.Values[i], spans) {
			return false
		}
	}
	return true
}
