package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ExtractionRun represents one pipeline invocation's audit record for data
// transfer between layers.
type ExtractionRun struct {
	ID                uuid.UUID       `json:"id"`
	SupplierID        *uuid.UUID      `json:"supplier_id,omitempty"`
	Status            string          `json:"status"`
	Locale            *string         `json:"locale,omitempty"`
	TextBytes         int             `json:"text_bytes"`
	ChunksTotal       int             `json:"chunks_total"`
	ChunksProcessed   int             `json:"chunks_processed"`
	ChunksFailed      int             `json:"chunks_failed"`
	DuplicatesSkipped int             `json:"duplicates_skipped"`
	ListingsInserted  int             `json:"listings_inserted"`
	ErrorCode         *string         `json:"error_code,omitempty"`
	ErrorMessage      *string         `json:"error_message,omitempty"`
	ModelName         *string         `json:"model_name,omitempty"`
	ModelParams       json.RawMessage `json:"model_params,omitempty"`
	StartedAt         time.Time       `json:"started_at"`
	FinishedAt        *time.Time      `json:"finished_at,omitempty"`
}
