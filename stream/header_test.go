package stream

import (
	"bytes"
	"errors"
	"testing"
)

func TestHeaderEmptyStream(t *testing.T) {
	_, err := NewDecoder(bytes.NewReader(nil), WithRegistry(testRegistry(t)))
	if !errors.Is(err, ErrEmptyStream) {
		t.Errorf("expected ErrEmptyStream, got %v", err)
	}
}

func TestHeaderTruncated(t *testing.T) {
	// one header byte present: truncation, not emptiness
	_, err := NewDecoder(bytes.NewReader([]byte{0x03}), WithRegistry(testRegistry(t)))
	if !errors.Is(err, ErrUnexpectedEOF) {
		t.Errorf("expected ErrUnexpectedEOF, got %v", err)
	}
	if errors.Is(err, ErrEmptyStream) {
		t.Error("truncated header must not report ErrEmptyStream")
	}
}

func TestHeaderStringTableUnsupported(t *testing.T) {
	in := []byte{0x03, 0x01, 0x6A, 0x05, 'a', 'b', 'c', 'd', 'e'}
	_, err := NewDecoder(bytes.NewReader(in), WithRegistry(testRegistry(t)))
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
}

func TestHeaderFields(t *testing.T) {
	// multi-byte public identifier (0xA0)
	in := []byte{0x03, 0x81, 0x20, 0x6A, 0x00}
	d, err := NewDecoder(bytes.NewReader(in), WithRegistry(testRegistry(t)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h := d.Header()
	if h.Version != 3 {
		t.Errorf("Version = %d, want 3", h.Version)
	}
	if h.PublicID != 0xA0 {
		t.Errorf("PublicID = %#x, want 0xa0", h.PublicID)
	}
	if h.Charset != 0x6A {
		t.Errorf("Charset = %#x, want 0x6a", h.Charset)
	}
}

func TestHeaderNewerVersionAccepted(t *testing.T) {
	in := doc(start(greetingIdx), inline("Hi"), endTag())
	in[0] = 0x04
	var lines []string
	d, err := NewDecoder(bytes.NewReader(in),
		WithRegistry(testRegistry(t)),
		WithTrace(func(s string) { lines = append(lines, s) }))
	if err != nil {
		t.Fatalf("newer version must not be fatal: %v", err)
	}
	if len(lines) == 0 {
		t.Error("expected a compatibility warning trace line")
	}
	if _, err := d.NextTag(0); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
