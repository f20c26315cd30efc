package token

import "fmt"

// Span is the half open byte interval [Start, End).
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (s Span) Len() int {
	return s.End - s.Start
}

// Contains reports whether r lies within s, bounds included, so that an
// empty span at either edge of s is contained.
func (s Span) Contains(r Span) bool {
	return s.Start <= r.Start && r.End <= s.End
}

// Before reports whether s ends at or before r starts.
func (s Span) Before(r Span) bool {
	return s.End <= r.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}
