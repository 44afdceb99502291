package events

import "time"

const BatchReconciledTopic = "hr.ingestion.batch-reconciled.v1"

const BatchReconciledEventType = "batch_reconciled"

// BatchReconciledEvent is emitted once per committed reconciliation pass.
type BatchReconciledEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	Kind       string    `json:"kind"`
	Inserted   int       `json:"inserted"`
	Updated    int       `json:"updated"`
	OccurredAt time.Time `json:"occurred_at"`
}
