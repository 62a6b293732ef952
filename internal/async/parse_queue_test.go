package async

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danuarta/schedules-tracker/internal/common"
)

type recordingProcessor struct {
	mu    sync.Mutex
	paths []string
	ids   []string
	err   error
}

func (p *recordingProcessor) ProcessPath(ctx context.Context, path, _ string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.paths = append(p.paths, path)
	p.ids = append(p.ids, common.RequestIDFromContext(ctx))
	return p.err
}

func (p *recordingProcessor) seen() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.paths...)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestQueueProcessesAndDrains(t *testing.T) {
	proc := &recordingProcessor{}
	q := NewParseQueue(proc, quietLogger(), WithWorkers(2), WithQueueSize(8))

	for _, path := range []string{"a.txt", "b.txt", "c.txt"} {
		require.NoError(t, q.Enqueue(context.Background(), Job{Path: path, SubmittedAt: time.Now()}))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	assert.ElementsMatch(t, []string{"a.txt", "b.txt", "c.txt"}, proc.seen())
}

func TestQueuePropagatesTraceID(t *testing.T) {
	proc := &recordingProcessor{}
	q := NewParseQueue(proc, quietLogger(), WithWorkers(1))

	require.NoError(t, q.Enqueue(context.Background(), Job{Path: "a.txt", TraceID: "trace-1"}))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	require.Len(t, proc.ids, 1)
	assert.Equal(t, "trace-1", proc.ids[0])
}

func TestQueueKeepsRunningAfterProcessorError(t *testing.T) {
	proc := &recordingProcessor{err: errors.New("boom")}
	q := NewParseQueue(proc, quietLogger(), WithWorkers(1))

	require.NoError(t, q.Enqueue(context.Background(), Job{Path: "bad.txt"}))
	require.NoError(t, q.Enqueue(context.Background(), Job{Path: "next.txt"}))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	assert.Equal(t, []string{"bad.txt", "next.txt"}, proc.seen())
}

func TestQueueRejectsNothingAfterShutdown(t *testing.T) {
	proc := &recordingProcessor{}
	q := NewParseQueue(proc, quietLogger(), WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	// Enqueue after close is a no-op, not a panic.
	require.NoError(t, q.Enqueue(context.Background(), Job{Path: "late.txt"}))
	assert.Empty(t, proc.seen())
}
