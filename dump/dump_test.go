package dump

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/openairsync/wbxml/codepages"
	"github.com/openairsync/wbxml/token"
)

const testDef = `
pages:
  - page: 0
    name: Greetings
    tags:
      - Greeting
      - Count
      - Blob
  - page: 1
    name: Remote
    tags:
      - Envelope
`

func testRegistry(t *testing.T) *codepages.Registry {
	t.Helper()
	reg, err := codepages.FromDefinition([]byte(testDef))
	if err != nil {
		t.Fatalf("FromDefinition: %v", err)
	}
	return reg
}

// doc assembles a header plus body bytes.
func doc(body ...[]byte) []byte {
	out := []byte{0x03, 0x01, 0x6A, 0x00}
	for _, b := range body {
		out = append(out, b...)
	}
	return out
}

const (
	greetingIdx = token.TagBase + iota
	countIdx
	blobIdx
)

func TestDumpTree(t *testing.T) {
	in := doc(
		[]byte{greetingIdx | token.ContentFlag},
		[]byte{countIdx | token.ContentFlag},
		append(append([]byte{token.InlineString}, "42"...), 0x00),
		[]byte{token.EndToken},
		[]byte{blobIdx},
		[]byte{token.EndToken},
	)
	var out bytes.Buffer
	if err := Dump(bytes.NewReader(in), &out, WithRegistry(testRegistry(t))); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	want := strings.Join([]string{
		"<Greeting>",
		"  <Count>",
		`    "42"`,
		"  </Count>",
		"  <Blob/>",
		"</Greeting>",
		"",
	}, "\n")
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("dump mismatch (-want +got):\n%s", diff)
	}
}

func TestDumpOpaqueSummary(t *testing.T) {
	payload := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0x11, 0x22, 0x33, 0x44, 0x55}
	in := doc(
		[]byte{blobIdx | token.ContentFlag},
		append([]byte{token.OpaqueData, byte(len(payload))}, payload...),
		[]byte{token.EndToken},
	)
	var out bytes.Buffer
	if err := Dump(bytes.NewReader(in), &out, WithRegistry(testRegistry(t))); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	want := strings.Join([]string{
		"<Blob>",
		"  (opaque:10 deadbeef00112233…)",
		"</Blob>",
		"",
	}, "\n")
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("dump mismatch (-want +got):\n%s", diff)
	}
}

func TestDumpPageSwitch(t *testing.T) {
	envelopeIdx := byte(token.TagBase)
	in := doc(
		[]byte{greetingIdx | token.ContentFlag},
		[]byte{token.SwitchPage, 0x01},
		[]byte{envelopeIdx},
		[]byte{token.SwitchPage, 0x00},
		[]byte{token.EndToken},
	)
	var out bytes.Buffer
	if err := Dump(bytes.NewReader(in), &out, WithRegistry(testRegistry(t))); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	want := strings.Join([]string{
		"<Greeting>",
		"  [page 1: Remote]",
		"  <Envelope/>",
		"</Greeting>",
		"",
	}, "\n")
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("dump mismatch (-want +got):\n%s", diff)
	}
}

func TestDumpTruncatedStream(t *testing.T) {
	in := doc([]byte{greetingIdx | token.ContentFlag})
	var out bytes.Buffer
	if err := Dump(bytes.NewReader(in), &out, WithRegistry(testRegistry(t))); err == nil {
		t.Error("expected error for stream ending with an open tag")
	}
}
