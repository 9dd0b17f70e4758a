package engine

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rgonek/docrebuild/converter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertBatchKeepsJobOrder(t *testing.T) {
	eng := newTestEngine(t)

	jobs := make([]Job, 20)
	for i := range jobs {
		jobs[i] = Job{
			ID:      fmt.Sprintf("job-%02d", i),
			Input:   Input{Text: fmt.Sprintf("# Doc %d", i)},
			Format:  converter.FormatPlain,
			Summary: fmt.Sprintf("summary %d", i),
		}
	}

	results, err := eng.ConvertBatch(context.Background(), jobs, Identity, 3)
	require.NoError(t, err)
	require.Len(t, results, len(jobs))

	for i, r := range results {
		require.NoError(t, r.Err)
		assert.Equal(t, jobs[i].ID, r.ID)
		assert.Contains(t, string(r.Output.Result.Data), fmt.Sprintf("SUMMARY: summary %d\n", i))
		assert.Contains(t, string(r.Output.Result.Data), fmt.Sprintf("\nDoc %d\n", i))
	}
}

func TestConvertBatchRespectsLimit(t *testing.T) {
	eng := newTestEngine(t)

	var inFlight, peak int32
	rw := RewriterFunc(func(_ context.Context, text string) (string, error) {
		n := atomic.AddInt32(&inFlight, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		atomic.AddInt32(&inFlight, -1)
		return text, nil
	})

	jobs := make([]Job, 12)
	for i := range jobs {
		jobs[i] = Job{ID: fmt.Sprint(i), Input: Input{Text: "x"}, Format: converter.FormatPlain}
	}

	_, err := eng.ConvertBatch(context.Background(), jobs, rw, 2)
	require.NoError(t, err)
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(2))
}

func TestConvertBatchIsolatesFailures(t *testing.T) {
	eng := newTestEngine(t)
	boom := errors.New("boom")

	rw := RewriterFunc(func(_ context.Context, text string) (string, error) {
		if text == "bad" {
			return "", boom
		}
		return text, nil
	})

	results, err := eng.ConvertBatch(context.Background(), []Job{
		{ID: "a", Input: Input{Text: "good"}, Format: converter.FormatPlain},
		{ID: "b", Input: Input{Text: "bad"}, Format: converter.FormatPlain},
		{ID: "c", Input: Input{Text: "good"}, Format: converter.Format("pdf")},
	}, rw, 0)
	require.NoError(t, err)

	assert.NoError(t, results[0].Err)
	assert.ErrorIs(t, results[1].Err, boom)
	assert.ErrorIs(t, results[2].Err, converter.ErrUnsupportedFormat)
}

func TestConvertBatchStopsSchedulingOnCancel(t *testing.T) {
	eng := newTestEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	started := make(chan struct{})
	rw := RewriterFunc(func(ctx context.Context, text string) (string, error) {
		if text == "first" {
			close(started)
			<-ctx.Done()
		}
		return text, nil
	})

	jobs := []Job{
		{ID: "first", Input: Input{Text: "first"}, Format: converter.FormatPlain},
		{ID: "second", Input: Input{Text: "second"}, Format: converter.FormatPlain},
		{ID: "third", Input: Input{Text: "third"}, Format: converter.FormatPlain},
	}

	go func() {
		<-started
		cancel()
	}()

	results, err := eng.ConvertBatch(ctx, jobs, rw, 1)
	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, results, 3)

	assert.NoError(t, results[0].Err)
	assert.Equal(t, "second", results[1].ID)
	assert.ErrorIs(t, results[1].Err, context.Canceled)
	assert.ErrorIs(t, results[2].Err, context.Canceled)
}

func TestConvertBatchEmpty(t *testing.T) {
	eng := newTestEngine(t)

	results, err := eng.ConvertBatch(context.Background(), nil, Identity, 2)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestConvertBatchAssignsMissingIDs(t *testing.T) {
	eng := newTestEngine(t)
	jobs := []Job{
		{Input: Input{Text: "a"}, Format: converter.FormatPlain},
		{ID: "kept", Input: Input{Text: "b"}, Format: converter.FormatPlain},
	}

	results, err := eng.ConvertBatch(context.Background(), jobs, Identity, 0)
	require.NoError(t, err)

	_, parseErr := uuid.Parse(results[0].ID)
	assert.NoError(t, parseErr)
	assert.Equal(t, "kept", results[1].ID)
	assert.Empty(t, jobs[0].ID, "caller's jobs are not modified")
}

func TestConvertBatchAppliesRewriteRate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logger = quietLogger()
	cfg.RewriteRate = 20
	eng, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, eng.Config().RewriteBurst)

	jobs := make([]Job, 3)
	for i := range jobs {
		jobs[i] = Job{ID: fmt.Sprint(i), Input: Input{Text: "x"}, Format: converter.FormatPlain}
	}

	start := time.Now()
	_, err = eng.ConvertBatch(context.Background(), jobs, Identity, 3)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond)
}

func TestConvertBatchFailureDoesNotStopLaterJobs(t *testing.T) {
	eng := newTestEngine(t)
	boom := errors.New("boom")

	rw := RewriterFunc(func(_ context.Context, text string) (string, error) {
		if text == "bad" {
			return "", boom
		}
		return text, nil
	})

	results, err := eng.ConvertBatch(context.Background(), []Job{
		{ID: "a", Input: Input{Text: "bad"}, Format: converter.FormatPlain},
		{ID: "b", Input: Input{Text: "good"}, Format: converter.FormatPlain},
		{ID: "c", Input: Input{Text: "good"}, Format: converter.FormatPlain},
	}, rw, 1)
	require.NoError(t, err)

	assert.ErrorIs(t, results[0].Err, boom)
	assert.NoError(t, results[1].Err)
	assert.NoError(t, results[2].Err)
	assert.Contains(t, string(results[2].Output.Result.Data), "good")
}
