// Package audit provides a ready-made write-interception trail.
//
// A Trail observes every write routed through a schema's write interceptor,
// emits a structured zap log line, and buffers a time-bounded Event for
// external consumers. Events from concurrent writers are drained through
// Source in timestamp order.
package audit

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/on-the-ground/attribut_ive_go/attrs"
	"github.com/on-the-ground/attribut_ive_go/attrs/intercept"
	"github.com/on-the-ground/attribut_ive_go/shared/orderedbuffer"
)

// Event is one observed attribute write, stamped with a time span rather
// than an instant to absorb clock granularity.
type Event struct {
	RecordID uuid.UUID
	Field    string
	Value    any
	TimeSpan TimeSpan
}

// Trail is a write-audit sink. One Trail may serve many records and many
// schemas; events carry the record identity.
type Trail struct {
	ctx    context.Context
	logger *zap.Logger
	buf    *orderedbuffer.OrderedBoundedBuffer[Event]
}

// NewTrail builds a trail logging through logger and buffering up to bufLen
// events sorted by timestamp. The context bounds event delivery: once it is
// done, further events are dropped rather than blocking a writer.
func NewTrail(ctx context.Context, logger *zap.Logger, bufLen int) *Trail {
	return &Trail{
		ctx:    ctx,
		logger: logger,
		buf: orderedbuffer.NewOrderedBoundedBuffer(bufLen, func(a, b Event) int {
			return a.TimeSpan.Start().Compare(b.TimeSpan.Start())
		}),
	}
}

// Hook is the raw write hook: log, then buffer. Install it through Writer.
func (t *Trail) Hook() intercept.WriteHook {
	return func(rec attrs.RawRecord, name string, value any) {
		ev := Event{
			RecordID: rec.ID(),
			Field:    name,
			Value:    value,
			TimeSpan: Now(),
		}
		t.logger.Info("attribute write",
			zap.String("record", ev.RecordID.String()),
			zap.String("field", ev.Field),
			zap.Any("value", ev.Value),
		)
		t.buf.Insert(t.ctx, ev)
	}
}

// Writer wraps the trail's hook as a schema write interceptor.
func (t *Trail) Writer() *intercept.Writer {
	return intercept.NewWriter(t.Hook())
}

// Source drains audited events: evictions while the trail is live, then the
// ordered remainder after Close.
func (t *Trail) Source() <-chan Event {
	return t.buf.Source()
}

// Close flushes buffered events and syncs the logger.
func (t *Trail) Close() {
	t.buf.Close(t.ctx)
	if err := t.logger.Sync(); err != nil {
		t.logger.Warn("failed to sync logger", zap.Error(err))
	}
}
