package document

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrBadPath = errors.New("bad path")

// Path is a sequence of child indices from the forest root.
type Path []int

func (p Path) String() string {
	buf := &strings.Builder{}
	for _, i := range p {
		buf.WriteByte('[')
		buf.WriteString(strconv.Itoa(i))
		buf.WriteByte(']')
	}
	return buf.String()
}

func (p Path) Parent() Path {
	if len(p) == 0 {
		return nil
	}
	return p[:len(p)-1]
}

// HasPrefix reports whether q is an ancestor of, or equal to, p.
func (p Path) HasPrefix(q Path) bool {
	if len(q) > len(p) {
		return false
	}
	for i := range q {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// ParsePath parses "[0][1][2]" or the dotted form "0.1.2".  The empty
// string is the empty path.
func ParsePath(s string) (Path, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Path{}, nil
	}
	var parts []string
	if strings.HasPrefix(s, "[") {
		if !strings.HasSuffix(s, "]") {
			return nil, fmt.Errorf("%w: unterminated %q", ErrBadPath, s)
		}
		parts = strings.Split(s[1:len(s)-1], "][")
	} else {
		parts = strings.Split(s, ".")
	}
	res := make(Path, 0, len(parts))
	for _, part := range parts {
		i, err := strconv.Atoi(part)
		if err != nil || i < 0 {
			return nil, fmt.Errorf("%w: invalid index %q in %q", ErrBadPath, part, s)
		}
		res = append(res, i)
	}
	return res, nil
}
