package entity

import (
	"time"

	"github.com/google/uuid"
)

// Listing represents a persisted catalogue listing for data transfer
// between layers.
type Listing struct {
	ID           uuid.UUID `json:"id"`
	SupplierID   uuid.UUID `json:"supplier_id"`
	Name         string    `json:"name"`
	Origin       *string   `json:"origin,omitempty"`
	Region       *string   `json:"region,omitempty"`
	Process      *string   `json:"process,omitempty"`
	Price        *float64  `json:"price,omitempty"`
	CurrencyCode *string   `json:"currency_code,omitempty"`
	Score        *float64  `json:"score,omitempty"`
	Altitude     *string   `json:"altitude,omitempty"`
	Variety      *string   `json:"variety,omitempty"`
	TastingNotes *string   `json:"tasting_notes,omitempty"`
	Available    bool      `json:"available"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
