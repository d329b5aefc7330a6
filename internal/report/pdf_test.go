package report

import (
	"bytes"
	"context"
	"testing"
)

func TestRenderPDFProducesDocument(t *testing.T) {
	doc := &Document{
		Title: "Ventes par vendeur",
		Params: [][2]string{
			{"Du", "2026-01-01"},
			{"Au", "2026-01-31"},
		},
		Headers: []string{"Boutique", "Commandes", "Ventes"},
		Widths:  []float64{3, 1, 1},
		Rows: [][]string{
			{"Boutique A", "12", "1499.00"},
			{"Boutique B", "3", "250.50"},
		},
	}
	out, err := RenderPDF(doc)
	if err != nil {
		t.Fatalf("RenderPDF: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Fatalf("output does not start with a PDF header: %q", out[:8])
	}
	if len(out) < 500 {
		t.Fatalf("suspiciously small PDF: %d bytes", len(out))
	}
}

func TestRenderPDFWithoutRows(t *testing.T) {
	doc := &Document{
		Title:   "Alerte de stock",
		Headers: []string{"Produit", "Stock restant", "Statut"},
	}
	out, err := RenderPDF(doc)
	if err != nil {
		t.Fatalf("RenderPDF: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Fatal("output is not a PDF")
	}
}

type stubStore struct {
	Store
	invoiceFn func(ctx context.Context, orderID int64) (*Invoice, error)
}

func (s *stubStore) Invoice(ctx context.Context, orderID int64) (*Invoice, error) {
	return s.invoiceFn(ctx, orderID)
}

func TestInvoiceReportName(t *testing.T) {
	svc := NewService(&stubStore{invoiceFn: func(ctx context.Context, orderID int64) (*Invoice, error) {
		return &Invoice{
			OrderID: orderID, Street: "12 rue Verte", City: "Lyon", State: "Rhône",
			SubTotal: 100, OrderTotal: 110,
			Items: []InvoiceRow{{ProductName: "Clavier", Quantity: 2, UnitPrice: 50, SubTotal: 100}},
		}, nil
	}})
	out, name, err := svc.Invoice(context.Background(), 42)
	if err != nil {
		t.Fatalf("Invoice: %v", err)
	}
	if name != "invoice-report" {
		t.Fatalf("file name = %q", name)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Fatal("output is not a PDF")
	}
}
