package report

import (
	"bytes"
	"testing"

	"github.com/jkorri/pagelens/internal/freq"
)

func TestWritePDF_ProducesDocument(t *testing.T) {
	var buf bytes.Buffer
	entries := []freq.Entry{{Word: "alpha", Count: 5}, {Word: "beta", Count: 3}}

	if err := WritePDF(&buf, "Example Page", "https://example.com", entries, 8); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatalf("expected PDF header, got %q", buf.Bytes()[:8])
	}
}

func TestWritePDF_EmptyTable(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePDF(&buf, "", "https://example.com", nil, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected a document even with no entries")
	}
}
