package render

import (
	"bytes"
	"testing"

	"advancedtech_backoffice/internal/domain/receipt"
)

func TestPDFReceipt(t *testing.T) {
	doc := receipt.Compose(testOrder(), receipt.DefaultIdentity)

	out, err := PDFReceipt(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("output is not a PDF")
	}
}

func TestColumnWidthsFillTheGrid(t *testing.T) {
	for _, n := range []int{2, 3} {
		widths := columnWidths(n)
		if len(widths) != n {
			t.Fatalf("columnWidths(%d) returned %d widths", n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != 12 {
			t.Fatalf("columnWidths(%d) sums to %d, want 12", n, sum)
		}
	}
}
