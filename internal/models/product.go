package models

import "time"

// Product represents a product entity in the inventory system. Price is held
// as a whole number of cents so no value ever rounds. Name acts as the
// natural key for the upsert path; the schema does not declare it unique.
type Product struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Quantity   int       `json:"quantity"`
	PriceCents int       `json:"price_cents"`
	UpdatedAt  time.Time `json:"updated_at"`
}
