package model

// Package model contains persistence-level entities shared across
// repositories, services and HTTP handlers.

import "time"

// Job kinds accepted by the print pipeline.
const (
	JobKindOrder = "order"
	JobKindImage = "image"
)

// Job statuses. A job is recorded only after the command stream has been
// handed to the printer backend, so "failed" currently only appears when a
// later archival step is rolled back.
const (
	JobStatusSubmitted = "submitted"
	JobStatusFailed    = "failed"
)

// PrintJob describes one rendered label job: what was printed, where the
// command stream went, and how large the rendered output was.
type PrintJob struct {
	ID           string    `json:"id"`
	Kind         string    `json:"kind"`
	Printer      string    `json:"printer"`
	Status       string    `json:"status"`
	Pages        int       `json:"pages"`
	SizeBytes    int64     `json:"size_bytes"`
	ArtifactPath string    `json:"artifact_path,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
