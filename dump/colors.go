package dump

import (
	"fmt"

	"github.com/fatih/color"
)

// Colorable identifies a class of output colored by Dump.
type Colorable int

const (
	TagColor Colorable = iota
	ValueColor
	OpaqueColor
	PageColor
)

// Colors maps output classes to sprint functions.
type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Default: colorDefault,
		Map: map[Colorable]func(string, ...any) string{
			TagColor:    color.RGB(128, 168, 196).SprintfFunc(),
			ValueColor:  color.RGB(128, 216, 236).SprintfFunc(),
			OpaqueColor: color.RGB(196, 168, 128).SprintfFunc(),
			PageColor:   color.RGB(168, 0, 196).SprintfFunc(),
		},
	}
}

func noColors() *Colors {
	return &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
}

func colorDefault(f string, args ...any) string {
	return fmt.Sprintf(f, args...)
}

func (c *Colors) sprintf(able Colorable, f string, args ...any) string {
	if fn, ok := c.Map[able]; ok {
		return fn(f, args...)
	}
	return c.Default(f, args...)
}
