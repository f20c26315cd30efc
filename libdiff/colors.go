package libdiff

import "github.com/fatih/color"

func NewColors() *Colors {
	return &Colors{
		Insert: color.GreenString,
		Delete: color.RedString,
	}
}
