package report

import (
	"context"
	"fmt"
)

// Service turns store aggregates into rendered PDF reports. Every method
// returns the PDF bytes plus the download file name (without extension).
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) VendorSales(ctx context.Context, startDate, endDate string) ([]byte, string, error) {
	data, err := s.store.VendorSales(ctx, startDate, endDate)
	if err != nil {
		return nil, "", err
	}
	doc := &Document{
		Title: "Ventes par vendeur",
		Params: [][2]string{
			{"Du", startDate},
			{"Au", endDate},
		},
		Headers: []string{"Boutique", "Commandes", "Ventes"},
		Widths:  []float64{3, 1, 1},
	}
	for _, r := range data {
		doc.Rows = append(doc.Rows, []string{r.StoreName, integer(r.Orders), money(r.Sales)})
	}
	pdf, err := RenderPDF(doc)
	return pdf, "vendor-sales-report", err
}

func (s *Service) ProductDetails(ctx context.Context) ([]byte, string, error) {
	data, err := s.store.Products(ctx)
	if err != nil {
		return nil, "", err
	}
	doc := &Document{
		Title:   "Catalogue des produits",
		Headers: []string{"Produit", "Boutique", "Catégorie", "Prix", "Promo", "Stock", "Statut"},
		Widths:  []float64{3, 2, 2, 1, 1, 1, 1},
	}
	for _, r := range data {
		doc.Rows = append(doc.Rows, []string{
			r.Title, r.StoreName, r.Category, money(r.RegularPrice), money(r.SalePrice),
			whole(r.StockCount), r.Status,
		})
	}
	pdf, err := RenderPDF(doc)
	return pdf, "product-details-report", err
}

func (s *Service) FavoriteItem(ctx context.Context) ([]byte, string, error) {
	data, err := s.store.FavoriteItems(ctx)
	if err != nil {
		return nil, "", err
	}
	doc := &Document{
		Title:   "Produits favoris",
		Headers: []string{"Produit", "Boutique", "Ajouts en favoris"},
		Widths:  []float64{3, 2, 1},
	}
	for _, r := range data {
		doc.Rows = append(doc.Rows, []string{r.Title, r.StoreName, integer(r.Wishlists)})
	}
	pdf, err := RenderPDF(doc)
	return pdf, "favorite-item-report", err
}

func (s *Service) Customers(ctx context.Context) ([]byte, string, error) {
	data, err := s.store.Customers(ctx)
	if err != nil {
		return nil, "", err
	}
	doc := &Document{
		Title:   "Liste des clients",
		Headers: []string{"Nom", "Email", "Adresse", "Statut"},
		Widths:  []float64{2, 3, 3, 1},
	}
	for _, r := range data {
		doc.Rows = append(doc.Rows, []string{r.Name, r.Email, r.Address, r.Status})
	}
	pdf, err := RenderPDF(doc)
	return pdf, "customer-report", err
}

func (s *Service) Sellers(ctx context.Context) ([]byte, string, error) {
	data, err := s.store.Sellers(ctx)
	if err != nil {
		return nil, "", err
	}
	doc := &Document{
		Title:   "Liste des vendeurs",
		Headers: []string{"Nom", "Boutique", "Email", "Statut"},
		Widths:  []float64{2, 2, 3, 1},
	}
	for _, r := range data {
		doc.Rows = append(doc.Rows, []string{r.Name, r.StoreName, r.Email, r.Status})
	}
	pdf, err := RenderPDF(doc)
	return pdf, "seller-report", err
}

func (s *Service) AdminProfit(ctx context.Context) ([]byte, string, error) {
	data, err := s.store.AdminProfit(ctx)
	if err != nil {
		return nil, "", err
	}
	var totalSales, totalProfit float64
	for _, r := range data {
		totalSales += r.Sales
		totalProfit += r.PlatformProfit
	}
	doc := &Document{
		Title: "Profits de la plateforme",
		Params: [][2]string{
			{"Ventes totales", money(totalSales)},
			{"Profit total", money(totalProfit)},
		},
		Headers: []string{"Boutique", "Ventes", "Profit plateforme"},
		Widths:  []float64{3, 1, 1},
	}
	for _, r := range data {
		doc.Rows = append(doc.Rows, []string{r.StoreName, money(r.Sales), money(r.PlatformProfit)})
	}
	pdf, err := RenderPDF(doc)
	return pdf, "admin-profit-report", err
}

func (s *Service) CustomerOrders(ctx context.Context, customerID int64) ([]byte, string, error) {
	co, err := s.store.CustomerOrders(ctx, customerID)
	if err != nil {
		return nil, "", err
	}
	doc := &Document{
		Title: "Commandes du client",
		Params: [][2]string{
			{"Nom", co.Name},
			{"Email", co.Email},
			{"Adresse", co.Address},
		},
		Headers: []string{"Commande", "Date", "Statut", "Total"},
		Widths:  []float64{1, 2, 2, 1},
	}
	for _, r := range co.Orders {
		doc.Rows = append(doc.Rows, []string{
			fmt.Sprintf("#%d", r.OrderID), r.OrderDate, r.Status, money(r.OrderTotal),
		})
	}
	pdf, err := RenderPDF(doc)
	return pdf, "customer-order-report", err
}

func (s *Service) StockAlert(ctx context.Context, sellerID int64) ([]byte, string, error) {
	data, err := s.store.StockAlert(ctx, sellerID)
	if err != nil {
		return nil, "", err
	}
	doc := &Document{
		Title:   "Alerte de stock",
		Headers: []string{"Produit", "Stock restant", "Statut"},
		Widths:  []float64{3, 1, 1},
	}
	for _, r := range data {
		doc.Rows = append(doc.Rows, []string{r.Title, whole(r.StockCount), r.StockStatus})
	}
	pdf, err := RenderPDF(doc)
	return pdf, "stock-alert-report", err
}

func (s *Service) TopSelling(ctx context.Context, sellerID int64) ([]byte, string, error) {
	data, err := s.store.TopSelling(ctx, sellerID)
	if err != nil {
		return nil, "", err
	}
	doc := &Document{
		Title:   "Meilleures ventes",
		Headers: []string{"Produit", "Quantité vendue", "Ventes"},
		Widths:  []float64{3, 1, 1},
	}
	for _, r := range data {
		doc.Rows = append(doc.Rows, []string{r.ProductName, integer(r.Quantity), money(r.Sales)})
	}
	pdf, err := RenderPDF(doc)
	return pdf, "top-selling-report", err
}

func (s *Service) Invoice(ctx context.Context, orderID int64) ([]byte, string, error) {
	inv, err := s.store.Invoice(ctx, orderID)
	if err != nil {
		return nil, "", err
	}
	doc := &Document{
		Title: fmt.Sprintf("Facture #%d", inv.OrderID),
		Params: [][2]string{
			{"Adresse", fmt.Sprintf("%s, %s, %s", inv.Street, inv.City, inv.State)},
			{"Sous-total", money(inv.SubTotal)},
			{"Frais de passerelle", money(inv.GatewayFee)},
			{"Livraison", money(inv.ShippingCharge)},
			{"Remise", money(inv.Discount)},
			{"Taxe", money(inv.Tax)},
			{"Total", money(inv.OrderTotal)},
		},
		Headers: []string{"Produit", "Quantité", "Prix unitaire", "Sous-total"},
		Widths:  []float64{3, 1, 1, 1},
	}
	for _, r := range inv.Items {
		doc.Rows = append(doc.Rows, []string{
			r.ProductName, integer(r.Quantity), money(r.UnitPrice), money(r.SubTotal),
		})
	}
	pdf, err := RenderPDF(doc)
	return pdf, "invoice-report", err
}
