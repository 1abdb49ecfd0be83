package entity

import (
	"time"

	"github.com/google/uuid"
)

// Supplier represents a supplier for data transfer between layers.
type Supplier struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Country         *string   `json:"country,omitempty"`
	DefaultCurrency string    `json:"default_currency"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
