package token

import (
	"fmt"
	"strconv"
)

type Type int

const (
	Start Type = iota
	End
	Text
	Opaque
	EndOfStream
)

func (t Type) String() string {
	return map[Type]string{
		Start:       "Start",
		End:         "End",
		Text:        "Text",
		Opaque:      "Opaque",
		EndOfStream: "EndOfStream",
	}[t]
}

// Token is one decoded unit from a tag stream. The payload fields are
// populated according to Type: Tag, Name and HasContent for Start, Tag and
// Name for End, Text for Text, Bytes for Opaque. Text and Opaque payloads
// are mutually exclusive.
type Token struct {
	Type       Type
	Tag        TagID
	Name       string
	HasContent bool
	Text       string
	Bytes      []byte
}

func (t Token) String() string {
	switch t.Type {
	case Start:
		if t.HasContent {
			return "<" + t.Name + ">"
		}
		return "<" + t.Name + "/>"
	case End:
		return "</" + t.Name + ">"
	case Text:
		return strconv.Quote(t.Text)
	case Opaque:
		return fmt.Sprintf("(opaque:%d)", len(t.Bytes))
	case EndOfStream:
		return "EndOfStream"
	}
	return "Unknown"
}
