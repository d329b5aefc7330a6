package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// Document is a tabular PDF: a title, optional key/value parameters above
// the table, then one styled table.
type Document struct {
	Title   string
	Params  [][2]string
	Headers []string
	// Widths are relative; they are scaled to the printable page width.
	Widths []float64
	Rows   [][]string
}

const (
	headerR, headerG, headerB = 4, 170, 109
	rowHeight                 = 8.0
)

// RenderPDF lays the document out on A4 portrait and returns the PDF bytes.
func RenderPDF(doc *Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFillColor(headerR, headerG, headerB)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 12, doc.Title, "", 1, "L", true, 0, "")
	pdf.Ln(4)

	pdf.SetTextColor(0, 0, 0)
	if len(doc.Params) > 0 {
		pdf.SetFont("Helvetica", "", 10)
		for _, kv := range doc.Params {
			pdf.CellFormat(40, 6, kv[0], "", 0, "L", false, 0, "")
			pdf.CellFormat(0, 6, kv[1], "", 1, "L", false, 0, "")
		}
		pdf.Ln(4)
	}

	widths := scaleWidths(pdf, doc)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(headerR, headerG, headerB)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range doc.Headers {
		pdf.CellFormat(widths[i], rowHeight, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	fill := false
	pdf.SetFillColor(240, 240, 240)
	for _, row := range doc.Rows {
		for i := range doc.Headers {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			pdf.CellFormat(widths[i], rowHeight, cell, "1", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)
		fill = !fill
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func scaleWidths(pdf *gofpdf.Fpdf, doc *Document) []float64 {
	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	printable := pageW - left - right

	widths := make([]float64, len(doc.Headers))
	var total float64
	for i := range doc.Headers {
		w := 1.0
		if i < len(doc.Widths) && doc.Widths[i] > 0 {
			w = doc.Widths[i]
		}
		widths[i] = w
		total += w
	}
	for i := range widths {
		widths[i] = widths[i] / total * printable
	}
	return widths
}

func money(v float64) string { return fmt.Sprintf("%.2f", v) }
func integer(v int64) string { return fmt.Sprintf("%d", v) }
func whole(v int) string     { return fmt.Sprintf("%d", v) }
