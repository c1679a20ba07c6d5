// Package dump renders decoded tag streams as indented, pseudo-XML text
// for fixture inspection and the wbx tool.
package dump

import (
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/openairsync/wbxml/codepages"
	"github.com/openairsync/wbxml/stream"
	"github.com/openairsync/wbxml/token"
)

// Option configures Dump output.
type Option func(*dumpOpts)

type dumpOpts struct {
	color    bool
	registry *codepages.Registry
}

// WithColor enables colored output.
func WithColor(on bool) Option {
	return func(o *dumpOpts) {
		o.color = on
	}
}

// WithRegistry sets the tag table registry used to resolve names. The
// default is the builtin Exchange ActiveSync page set.
func WithRegistry(r *codepages.Registry) Option {
	return func(o *dumpOpts) {
		o.registry = r
	}
}

// opaque bodies are previewed up to this many bytes
const opaquePreview = 8

// Dump decodes one tag stream from r and writes an indented tree rendering
// to w. Tags without content render self-closed; text bodies are quoted,
// opaque bodies summarized with a short hex preview, and page switches
// marked with the page's namespace name.
func Dump(r io.Reader, w io.Writer, opts ...Option) error {
	o := &dumpOpts{}
	for _, opt := range opts {
		opt(o)
	}
	reg := o.registry
	if reg == nil {
		reg = codepages.Builtin()
	}
	d, err := stream.NewDecoder(r, stream.WithRegistry(reg))
	if err != nil {
		return err
	}
	colors := noColors()
	if o.color {
		colors = NewColors()
	}

	// per-frame content flags, to render <Tag/> without a closing line
	var open []bool
	page := 0
	for {
		tok, err := d.ReadToken()
		if err != nil {
			return err
		}
		switch tok.Type {
		case token.EndOfStream:
			if len(open) != 0 {
				return fmt.Errorf("dump: stream ended with %d open tags", len(open))
			}
			return nil

		case token.Start:
			// page switches are resolved before the tag byte
			if p := d.Page(); p != page {
				page = p
				line := colors.sprintf(PageColor, "[page %d: %s]", p, reg.PageName(p))
				if err := writeLine(w, len(open), line); err != nil {
					return err
				}
			}
			line := colors.sprintf(TagColor, "<%s>", tok.Name)
			if !tok.HasContent {
				line = colors.sprintf(TagColor, "<%s/>", tok.Name)
			}
			if err := writeLine(w, len(open), line); err != nil {
				return err
			}
			open = append(open, tok.HasContent)

		case token.End:
			if len(open) == 0 {
				return fmt.Errorf("dump: end tag %s with no open tag", tok.Name)
			}
			hadContent := open[len(open)-1]
			open = open[:len(open)-1]
			if !hadContent {
				continue
			}
			line := colors.sprintf(TagColor, "</%s>", tok.Name)
			if err := writeLine(w, len(open), line); err != nil {
				return err
			}

		case token.Text:
			line := colors.sprintf(ValueColor, "%s", strconv.Quote(tok.Text))
			if err := writeLine(w, len(open), line); err != nil {
				return err
			}

		case token.Opaque:
			line := colors.sprintf(OpaqueColor, "%s", opaqueSummary(tok.Bytes))
			if err := writeLine(w, len(open), line); err != nil {
				return err
			}
		}
	}
}

func writeLine(w io.Writer, depth int, line string) error {
	_, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), line)
	return err
}

func opaqueSummary(data []byte) string {
	preview := data
	suffix := ""
	if len(preview) > opaquePreview {
		preview = preview[:opaquePreview]
		suffix = "…"
	}
	return fmt.Sprintf("(opaque:%d %s%s)", len(data), hex.EncodeToString(preview), suffix)
}
