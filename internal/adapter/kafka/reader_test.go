package kafka

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFetcher hands out queued messages, then either fails with err or
// blocks until the fetch context ends.
type fakeFetcher struct {
	mu        sync.Mutex
	msgs      []kafkago.Message
	err       error
	committed []kafkago.Message
}

func (f *fakeFetcher) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	f.mu.Lock()
	if len(f.msgs) > 0 {
		msg := f.msgs[0]
		f.msgs = f.msgs[1:]
		f.mu.Unlock()
		return msg, nil
	}
	err := f.err
	f.mu.Unlock()

	if err != nil {
		return kafkago.Message{}, err
	}
	<-ctx.Done()
	return kafkago.Message{}, ctx.Err()
}

func (f *fakeFetcher) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.committed = append(f.committed, msgs...)
	return nil
}

func (f *fakeFetcher) Close() error { return nil }

func newTestReader(f *fakeFetcher, flush time.Duration) *Reader {
	return &Reader{
		reader:        f,
		flushInterval: flush,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func spotMessages(n int) []kafkago.Message {
	msgs := make([]kafkago.Message, n)
	for i := range msgs {
		msgs[i] = kafkago.Message{
			Topic:  "raw-surf-spots",
			Offset: int64(i),
			Key:    []byte("spot"),
			Value:  []byte(`{"name":"Pipeline"}`),
		}
	}
	return msgs
}

func TestReader_ExtractBatch_FullBatch(t *testing.T) {
	f := &fakeFetcher{msgs: spotMessages(5)}
	r := newTestReader(f, time.Second)

	events, err := r.ExtractBatch(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, int64(2), events[2].Offset)
	assert.Len(t, f.msgs, 2, "remaining messages left for the next batch")
}

func TestReader_ExtractBatch_FlushIntervalReturnsPartial(t *testing.T) {
	f := &fakeFetcher{msgs: spotMessages(2)}
	r := newTestReader(f, 20*time.Millisecond)

	start := time.Now()
	events, err := r.ExtractBatch(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, events, 2)
	assert.Less(t, time.Since(start), time.Second)
}

func TestReader_ExtractBatch_FlushIntervalEmpty(t *testing.T) {
	r := newTestReader(&fakeFetcher{}, 10*time.Millisecond)

	events, err := r.ExtractBatch(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestReader_ExtractBatch_ErrorAfterMessagesReturnsPartial(t *testing.T) {
	f := &fakeFetcher{msgs: spotMessages(2), err: errors.New("broker gone")}
	r := newTestReader(f, time.Second)

	events, err := r.ExtractBatch(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestReader_ExtractBatch_ErrorOnFirstFetch(t *testing.T) {
	f := &fakeFetcher{err: errors.New("broker gone")}
	r := newTestReader(f, time.Second)

	events, err := r.ExtractBatch(context.Background(), 10)
	require.Error(t, err)
	assert.ErrorContains(t, err, "fetch message")
	assert.Nil(t, events)
}

func TestReader_ExtractBatch_ParentCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := newTestReader(&fakeFetcher{}, time.Second)

	events, err := r.ExtractBatch(ctx, 10)
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, events)
}

func TestReader_ExtractBatch_CommitCallback(t *testing.T) {
	f := &fakeFetcher{msgs: spotMessages(2)}
	r := newTestReader(f, time.Second)

	events, err := r.ExtractBatch(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, events, 2)

	require.NoError(t, events[1].Commit(context.Background()))
	require.Len(t, f.committed, 1)
	assert.Equal(t, int64(1), f.committed[0].Offset)
}
