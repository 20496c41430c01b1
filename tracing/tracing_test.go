package tracing

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracingFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "span_test.txt")

	require.NoError(t, Init("schedsim", "0.0.1", fname))

	ctx, span := StartSpan(context.Background(), "scheduler.Run")
	span.WithAttributes(map[string]string{"algorithm": "rr"}).WithInt("processes", 3)
	_, child := StartSpan(ctx, "scheduler.dispatch")
	child.AddEvent("step", map[string]int{"cycle": 1, "pid": 1})
	EndSpan(child, errors.New("cancelled"))
	EndSpan(span, nil)
	assert.NoError(t, Shutdown(context.Background()))

	data, err := os.ReadFile(fname)
	require.NoError(t, err)
	assert.Contains(t, string(data), "scheduler.Run")
	assert.Contains(t, string(data), "scheduler.dispatch")

	var nilSpan *Span
	nilSpan.WithInt("x", 1).SetStatus(nil)
	EndSpan(nilSpan, nil)
}
