package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorderSink struct {
	events []AccessEvent
}

func (r *recorderSink) Emit(ctx context.Context, event AccessEvent) {
	r.events = append(r.events, event)
}

func TestSampledSinkSuppressesAtZero(t *testing.T) {
	recorder := &recorderSink{}
	sink := SampledSink{Rate: 0, Next: recorder}

	for i := 0; i < 100; i++ {
		sink.Emit(context.Background(), AccessEvent{Reason: ReasonExplicitAllow})
	}

	assert.Empty(t, recorder.events)
}

func TestSampledSinkForwardsAtOne(t *testing.T) {
	recorder := &recorderSink{}
	sink := SampledSink{Rate: 1, Next: recorder}

	for i := 0; i < 100; i++ {
		sink.Emit(context.Background(), AccessEvent{Reason: ReasonExplicitAllow})
	}

	assert.Len(t, recorder.events, 100)
}

func TestSampledSinkPartialRate(t *testing.T) {
	recorder := &recorderSink{}
	sink := SampledSink{Rate: 0.5, Next: recorder}

	for i := 0; i < 1000; i++ {
		sink.Emit(context.Background(), AccessEvent{})
	}

	// loose bounds, sampling is random
	assert.Greater(t, len(recorder.events), 300)
	assert.Less(t, len(recorder.events), 700)
}

func TestSampledSinkNilNext(t *testing.T) {
	sink := SampledSink{Rate: 1}
	assert.NotPanics(t, func() {
		sink.Emit(context.Background(), AccessEvent{})
	})
}
