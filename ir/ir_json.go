package ir

import (
	"encoding/json"

	"github.com/signadot/sexpr/token"
)

type irBase struct {
	Type   Type       `json:"type"`
	Span   token.Span `json:"span"`
	Values []*Node    `json:"values,omitempty"`
}

func (y *Node) MarshalJSON() ([]byte, error) {
	base := irBase{
		Type:   y.Type,
		Span:   y.Span,
		Values: y.Values,
	}
	if y.IsLeaf() {
		type C struct {
			irBase
			String string `json:"string"`
		}
		return json.Marshal(C{irBase: base, String: y.String})
	}
	type C struct {
		irBase
		Tag   string `json:"tag"`
		Token string `json:"token,omitempty"`
	}
	return json.Marshal(C{irBase: base, Tag: string(y.Tag), Token: y.Token()})
}
