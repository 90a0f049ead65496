package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stream names
const (
	StreamRouteImport     = "stream:routes:import"
	StreamRouteImportDone = "stream:routes:import:done"
)

// ImportRequestEvent asks the worker to import one operator's routes.
type ImportRequestEvent struct {
	RequestID    uuid.UUID `json:"request_id"`
	OperatorCode string    `json:"operator_code"`
	OperatorSlug string    `json:"operator_slug"`
	RequestedAt  time.Time `json:"requested_at"`
}

// ImportDoneEvent is published once per processed request.
type ImportDoneEvent struct {
	RequestID    uuid.UUID `json:"request_id"`
	OperatorSlug string    `json:"operator_slug"`
	Fetched      int       `json:"fetched"`
	Created      int       `json:"created"`
	Updated      int       `json:"updated"`
	Error        string    `json:"error,omitempty"`
	FinishedAt   time.Time `json:"finished_at"`
}

// StreamMessage - message read from a Redis stream. Data is the JSON payload.
type StreamMessage struct {
	ID   string
	Data string
}
