// Package catalog holds products, categories and reviews. Product listings
// shown to customers only surface active products of active sellers.
package catalog

import "time"

// Product as stored; StoreName is denormalized from the owning seller.
type Product struct {
	ID           int64   `json:"id"`
	SellerID     int64   `json:"sellerId"`
	StoreName    string  `json:"storeName"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	ThumbnailURL string  `json:"thumbnailUrl"`
	RegularPrice float64 `json:"regularPrice"`
	SalePrice    float64 `json:"salePrice"`
	Category     string  `json:"category"`
	StockStatus  string  `json:"stockStatus"`
	StockCount   int     `json:"stockCount"`
	Status       string  `json:"status"`
}

// Category is the flat catalog taxonomy.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Review is a customer's product review.
type Review struct {
	ID         int64     `json:"id"`
	ProductID  int64     `json:"productId"`
	CustomerID int64     `json:"customerId"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
}
