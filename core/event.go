package core

import (
	"context"
	"log/slog"
	"math/rand"
)

// AccessEvent is emitted once per evaluation. Delivery is
// fire-and-forget; a sink must never block or fail the pipeline.
type AccessEvent struct {
	Allowed           bool   `json:"allowed"`
	Reason            string `json:"reason"`
	SubjectID         string `json:"subject_id"`
	Application       string `json:"application"`
	Method            string `json:"method"`
	Path              string `json:"path"`
	MatchedEndpointID string `json:"matched_endpoint_id,omitempty"`
}

type EventSink interface {
	Emit(ctx context.Context, event AccessEvent)
}

type NopSink struct{}

func (NopSink) Emit(ctx context.Context, event AccessEvent) {}

// SampledSink forwards to Next at the configured rate.
// Rate <= 0 suppresses everything, >= 1 forwards everything.
type SampledSink struct {
	Rate float64
	Next EventSink
}

func (s SampledSink) Emit(ctx context.Context, event AccessEvent) {
	if s.Rate <= 0 || s.Next == nil {
		return
	}
	if s.Rate < 1.0 && rand.Float64() > s.Rate {
		return
	}
	s.Next.Emit(ctx, event)
}

// SlogSink writes events through the process-wide structured logger.
type SlogSink struct{}

func (SlogSink) Emit(ctx context.Context, event AccessEvent) {
	slog.InfoContext(ctx, "access checked",
		slog.Bool("allowed", event.Allowed),
		slog.String("reason", event.Reason),
		slog.String("subjectId", event.SubjectID),
		slog.String("application", event.Application),
		slog.String("method", event.Method),
		slog.String("path", event.Path),
		slog.String("matchedEndpointId", event.MatchedEndpointID),
	)
}
