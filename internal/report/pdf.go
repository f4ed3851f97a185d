// Package report renders a frequency analysis as a downloadable PDF.
package report

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/jkorri/pagelens/internal/freq"
)

// WritePDF renders the top entries as a ranked table: a header with the
// page title and URL, then one row per word with its count and share of
// the counted total. The built-in PDF fonts are Latin-only, so words
// outside cp1252 degrade to replacement characters.
func WritePDF(w io.Writer, title, pageURL string, entries []freq.Entry, total int) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	heading := "Word frequency report"
	if title != "" {
		heading = title
	}
	pdf.CellFormat(0, 8, heading, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, pageURL, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(15, 7, "#", "1", 0, "C", false, 0, "")
	pdf.CellFormat(95, 7, "Word", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 7, "Count", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 7, "Share", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	for i, e := range entries {
		share := "-"
		if total > 0 {
			share = fmt.Sprintf("%.2f%%", float64(e.Count)/float64(total)*100)
		}
		pdf.CellFormat(15, 7, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(95, 7, tr(e.Word), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%d", e.Count), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, share, "1", 1, "R", false, 0, "")
	}
	if len(entries) == 0 {
		pdf.CellFormat(0, 7, "No countable words on this page.", "", 1, "L", false, 0, "")
	}

	return pdf.Output(w)
}
