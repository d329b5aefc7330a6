// Package order covers the shopping cart and order lifecycle. An order is a
// header row plus one detail row per purchased product; detail rows carry a
// snapshot of the product at purchase time so later catalog edits do not
// rewrite order history.
package order

import "time"

// Statuses used for order headers and detail lines.
const (
	StatusPending   = "Pending"
	StatusShipped   = "Shipped"
	StatusDelivered = "Delivered"
	StatusCancelled = "Cancelled"
)

type Order struct {
	ID             int64     `json:"id"`
	CustomerID     int64     `json:"customerId"`
	OrderDate      time.Time `json:"orderDate"`
	Status         string    `json:"status"`
	SubTotal       float64   `json:"subTotal"`
	Discount       float64   `json:"discount"`
	ShippingCharge float64   `json:"shippingCharge"`
	Tax            float64   `json:"tax"`
	GatewayFee     float64   `json:"gatewayFee"`
	OrderTotal     float64   `json:"orderTotal"`

	ShippingStreet   string `json:"shippingStreet"`
	ShippingCity     string `json:"shippingCity"`
	ShippingPostCode string `json:"shippingPostCode"`
	ShippingState    string `json:"shippingState"`
	ShippingCountry  string `json:"shippingCountry"`

	PaymentStatus  string `json:"paymentStatus"`
	PaymentMethod  string `json:"paymentMethod"`
	CardNumber     string `json:"cardNumber,omitempty"`
	CardCvv        string `json:"cardCvv,omitempty"`
	CardHolderName string `json:"cardHolderName,omitempty"`
	CardExpiryDate string `json:"cardExpiryDate,omitempty"`

	Details []Detail `json:"orderDetails"`
}

// Detail is one purchased line of an order.
type Detail struct {
	ID                  int64      `json:"id"`
	OrderID             int64      `json:"orderId"`
	ProductID           int64      `json:"productId"`
	SellerID            int64      `json:"sellerId"`
	StoreName           string     `json:"storeName"`
	ProductName         string     `json:"productName"`
	ProductUnitPrice    float64    `json:"productUnitPrice"`
	ProductThumbnailURL string     `json:"productThumbnailUrl"`
	Status              string     `json:"status"`
	Quantity            int        `json:"quantity"`
	SubTotal            float64    `json:"subTotal"`
	DeliveryDate        *time.Time `json:"deliveryDate,omitempty"`
}

// CartItem mirrors Detail but belongs to a customer rather than an order.
type CartItem struct {
	ID                  int64   `json:"id"`
	CustomerID          int64   `json:"customerId"`
	ProductID           int64   `json:"productId"`
	SellerID            int64   `json:"sellerId"`
	StoreName           string  `json:"storeName"`
	ProductName         string  `json:"productName"`
	ProductThumbnailURL string  `json:"productThumbnailUrl"`
	ProductUnitPrice    float64 `json:"productUnitPrice"`
	Quantity            int     `json:"productQuantity"`
	SubTotal            float64 `json:"subTotal"`
}
