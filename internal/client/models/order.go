package models

import "encoding/json"

type OrderItem struct {
	ID       int64       `json:"id"`
	Product  *Product    `json:"product"`
	Quantity int         `json:"quantity"`
	Price    json.Number `json:"price"`
}

// Order is a placed order. OrderDate is passed through as the backend
// formats it (a zone-less local timestamp).
type Order struct {
	ID              int64       `json:"id"`
	OrderItems      []OrderItem `json:"orderItems"`
	TotalAmount     json.Number `json:"totalAmount"`
	OrderDate       string      `json:"orderDate"`
	Status          string      `json:"status"`
	ShippingAddress string      `json:"shippingAddress"`
	PaymentMethod   string      `json:"paymentMethod"`
}

// OrderRequest is the body of POST /orders.
type OrderRequest struct {
	ShippingAddress string `json:"shippingAddress"`
	PaymentMethod   string `json:"paymentMethod"`
}

type Address struct {
	ID        int64  `json:"id"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	Country   string `json:"country"`
	ZipCode   string `json:"zipCode"`
	IsDefault bool   `json:"isDefault"`
}

// String renders the address on one line, the form checkout sends.
func (a Address) String() string {
	return a.Street + ", " + a.City + ", " + a.State + " " + a.ZipCode + ", " + a.Country
}

// OrderSummaryItem is one line of GET /orders/{id}/summary.
type OrderSummaryItem struct {
	ProductName string      `json:"productName"`
	Quantity    int         `json:"quantity"`
	Price       json.Number `json:"price"`
	Subtotal    json.Number `json:"subtotal"`
}

// OrderSummary is the backend's condensed view of an order, with
// per-line subtotals already computed.
type OrderSummary struct {
	OrderID         int64              `json:"orderId"`
	OrderDate       string             `json:"orderDate"`
	Status          string             `json:"status"`
	TotalAmount     json.Number        `json:"totalAmount"`
	ShippingAddress string             `json:"shippingAddress"`
	Items           []OrderSummaryItem `json:"items"`
}
