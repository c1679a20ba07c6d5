// Package codepages provides the read-only registry mapping code page
// numbers to ordered tag name tables. Name resolution is diagnostic only
// and never fails; only page bounds are load-bearing, checked by the
// decoder through [Registry.Valid].
package codepages

import (
	_ "embed"
	"fmt"
	"slices"
	"sync"

	"github.com/goccy/go-yaml"

	"github.com/openairsync/wbxml/token"
)

//go:embed eas.yaml
var easDefinition []byte

const (
	unsupportedName = "unsupported-WBXML"
	unknownName     = "unknown"
)

type definition struct {
	Pages []pageDefinition `yaml:"pages"`
}

type pageDefinition struct {
	Page int      `yaml:"page"`
	Name string   `yaml:"name"`
	Tags []string `yaml:"tags"`
}

// Registry is a fixed mapping from code page numbers to tag name tables.
// Pages run from 0 to Pages()-1; pages declared without tags resolve all
// names as unknown but are still valid switch targets.
type Registry struct {
	titles []string
	names  [][]string
}

// FromDefinition builds a Registry from a YAML page definition of the form
//
//	pages:
//	  - page: 0
//	    name: AirSync
//	    tags: [Sync, Responses, Add]
//
// The tag listed at position i has in-page index TagBase+i.
func FromDefinition(def []byte) (*Registry, error) {
	d := &definition{}
	if err := yaml.Unmarshal(def, d); err != nil {
		return nil, fmt.Errorf("code page definition: %w", err)
	}
	if len(d.Pages) == 0 {
		return nil, fmt.Errorf("code page definition: no pages")
	}
	maxPage := 0
	for _, p := range d.Pages {
		if p.Page < 0 {
			return nil, fmt.Errorf("code page definition: negative page %d", p.Page)
		}
		if p.Page > maxPage {
			maxPage = p.Page
		}
	}
	r := &Registry{
		titles: make([]string, maxPage+1),
		names:  make([][]string, maxPage+1),
	}
	for _, p := range d.Pages {
		if r.names[p.Page] != nil {
			return nil, fmt.Errorf("code page definition: duplicate page %d", p.Page)
		}
		tags := p.Tags
		if tags == nil {
			tags = []string{}
		}
		r.titles[p.Page] = p.Name
		r.names[p.Page] = tags
	}
	for i := range r.names {
		if r.names[i] == nil {
			r.names[i] = []string{}
		}
	}
	return r, nil
}

var (
	builtinOnce sync.Once
	builtin     *Registry
)

// Builtin returns the registry for the Exchange ActiveSync page set.
func Builtin() *Registry {
	builtinOnce.Do(func() {
		r, err := FromDefinition(easDefinition)
		if err != nil {
			panic("codepages: bad embedded definition: " + err.Error())
		}
		builtin = r
	})
	return builtin
}

// Pages returns the number of addressable pages.
func (r *Registry) Pages() int {
	return len(r.names)
}

// Valid reports whether page is a legal switch target.
func (r *Registry) Valid(page int) bool {
	return page >= 0 && page < len(r.names)
}

// PageName returns the page's namespace name, or "" out of bounds.
func (r *Registry) PageName(page int) string {
	if page < 0 || page >= len(r.titles) {
		return ""
	}
	return r.titles[page]
}

// Name resolves a tag name for diagnostics. Indices below the reserved tag
// base resolve to a placeholder, indices beyond the page's table to
// "unknown"; resolution never fails.
func (r *Registry) Name(page, index int) string {
	if index < token.TagBase {
		return unsupportedName
	}
	if page < 0 || page >= len(r.names) {
		return unknownName
	}
	t := r.names[page]
	if index-token.TagBase >= len(t) {
		return unknownName
	}
	return t[index-token.TagBase]
}

// Tags returns a copy of the page's tag names in index order.
func (r *Registry) Tags(page int) []string {
	if page < 0 || page >= len(r.names) {
		return nil
	}
	return slices.Clone(r.names[page])
}
