package progress

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgress(t *testing.T) {
	var seen []Counters
	ctx, tracker := WithNewTracker(context.Background(), "run-1", "rr", func(c Counters) {
		seen = append(seen, c)
	})

	UpdateCtx(ctx, Delta{Dispatched: 1, Cycles: 2})
	UpdateCtx(ctx, Delta{Preempted: 1})
	UpdateCtx(context.Background(), Delta{Cycles: 100})

	snapshot := tracker.Snapshot()
	assert.Equal(t, "run-1", snapshot.RunID)
	assert.Equal(t, "rr", snapshot.Algorithm)
	assert.Equal(t, 1, snapshot.Dispatched)
	assert.Equal(t, 2, snapshot.Cycles)
	assert.Equal(t, 1, snapshot.Preempted)
	assert.Len(t, seen, 2)

	tracker.OnChange(nil)
	tracker.Update(Delta{Finished: 1})
	assert.Len(t, seen, 2)

	var nilTracker *Progress
	nilTracker.Update(Delta{Cycles: 1})
	assert.Equal(t, Counters{}, nilTracker.Snapshot())
}

func TestProgress_Concurrent(t *testing.T) {
	_, tracker := WithNewTracker(context.Background(), "run", "fifo", nil)
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				tracker.Update(Delta{Cycles: 1})
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1000, tracker.Snapshot().Cycles)
}
