package async

import (
	"context"
	"time"
)

// Job is one recognized-text file waiting for extraction.
type Job struct {
	Path        string
	CarrierHint string // optional; filename prefix usually covers it
	SubmittedAt time.Time
	TraceID     string
}

// Processor handles one job end to end: read, parse, export.
type Processor interface {
	ProcessPath(ctx context.Context, path, carrierHint string) error
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
