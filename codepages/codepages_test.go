package codepages

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

const testDef = `
pages:
  - page: 0
    name: Greetings
    tags: [Greeting, Count]
  - page: 2
    name: Sparse
`

func TestFromDefinition(t *testing.T) {
	r, err := FromDefinition([]byte(testDef))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Pages() != 3 {
		t.Errorf("Pages() = %d, want 3", r.Pages())
	}
	// page 1 is undeclared but still a valid switch target
	for p := 0; p < 3; p++ {
		if !r.Valid(p) {
			t.Errorf("Valid(%d) = false", p)
		}
	}
	if r.Valid(3) || r.Valid(-1) {
		t.Error("out-of-range pages must be invalid")
	}
	if got := r.PageName(0); got != "Greetings" {
		t.Errorf("PageName(0) = %q", got)
	}
	if diff := cmp.Diff([]string{"Greeting", "Count"}, r.Tags(0)); diff != "" {
		t.Errorf("Tags(0) mismatch (-want +got):\n%s", diff)
	}
}

func TestNameResolution(t *testing.T) {
	r, err := FromDefinition([]byte(testDef))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tests := []struct {
		name        string
		page, index int
		want        string
	}{
		{name: "first tag", page: 0, index: 5, want: "Greeting"},
		{name: "second tag", page: 0, index: 6, want: "Count"},
		{name: "reserved index", page: 0, index: 4, want: "unsupported-WBXML"},
		{name: "beyond table", page: 0, index: 7, want: "unknown"},
		{name: "undeclared page", page: 1, index: 5, want: "unknown"},
		{name: "out-of-range page", page: 9, index: 5, want: "unknown"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Name(tc.page, tc.index); got != tc.want {
				t.Errorf("Name(%d, %d) = %q, want %q", tc.page, tc.index, got, tc.want)
			}
		})
	}
}

func TestFromDefinitionErrors(t *testing.T) {
	tests := []struct {
		name string
		def  string
	}{
		{name: "empty", def: "pages: []"},
		{name: "negative page", def: "pages: [{page: -1, name: X}]"},
		{name: "duplicate page", def: "pages: [{page: 0, name: A}, {page: 0, name: B}]"},
		{name: "not yaml", def: "{"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := FromDefinition([]byte(tc.def)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestBuiltin(t *testing.T) {
	r := Builtin()
	if r != Builtin() {
		t.Error("Builtin must return the same registry")
	}
	if r.Pages() != 25 {
		t.Errorf("Pages() = %d, want 25", r.Pages())
	}
	if got := r.PageName(0); got != "AirSync" {
		t.Errorf("PageName(0) = %q", got)
	}
	if got := r.Name(0, 5); got != "Sync" {
		t.Errorf("Name(0, 5) = %q, want Sync", got)
	}
	if got := r.Name(13, 5); got != "Ping" {
		t.Errorf("Name(13, 5) = %q, want Ping", got)
	}
	if got := r.Name(3, 5); got != "unknown" {
		t.Errorf("Name(3, 5) = %q, want unknown", got)
	}
}
