package models

import "encoding/json"

// Product mirrors the backend catalogue entry. Money is kept as json.Number
// so decimal prices are not rounded through float64.
type Product struct {
	ID            int64       `json:"id"`
	Name          string      `json:"name"`
	Description   string      `json:"description,omitempty"`
	Price         json.Number `json:"price"`
	Stock         int         `json:"stock"`
	Category      string      `json:"category,omitempty"`
	Brand         string      `json:"brand,omitempty"`
	ImageURL      string      `json:"imageUrl,omitempty"`
	AverageRating float64     `json:"averageRating,omitempty"`
	ReviewCount   int         `json:"reviewCount,omitempty"`
}
