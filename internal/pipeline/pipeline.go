package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/surf-spot-etl/internal/domain"
	"github.com/couchcryptid/surf-spot-etl/internal/observability"
	"github.com/couchcryptid/storm-data-shared/retry"
	"github.com/google/uuid"
)

const (
	initialBackoff = 200 * time.Millisecond
	maxBackoff     = 5 * time.Second
)

// BatchExtractor reads up to batchSize raw spot records from the source.
type BatchExtractor interface {
	ExtractBatch(ctx context.Context, batchSize int) ([]domain.RawEvent, error)
}

// Transformer converts a raw record into a serialized enriched spot.
type Transformer interface {
	Transform(ctx context.Context, raw domain.RawEvent) (domain.OutputEvent, error)
}

// BatchLoader writes enriched spots to the destination.
type BatchLoader interface {
	LoadBatch(ctx context.Context, events []domain.OutputEvent) error
}

// Pipeline runs the extract-transform-load loop for surf spot records.
type Pipeline struct {
	extractor   BatchExtractor
	transformer Transformer
	loader      BatchLoader
	logger      *slog.Logger
	metrics     *observability.Metrics
	ready       atomic.Bool
	batchSize   int
}

// New creates a Pipeline with the given stages and observability.
func New(e BatchExtractor, t Transformer, l BatchLoader, logger *slog.Logger, metrics *observability.Metrics, batchSize int) *Pipeline {
	return &Pipeline{
		extractor:   e,
		transformer: t,
		loader:      l,
		logger:      logger,
		metrics:     metrics,
		batchSize:   batchSize,
	}
}

// CheckReadiness returns nil once at least one batch has been loaded.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("pipeline has not loaded any spots yet")
	}
	return nil
}

// Run executes the batch loop until ctx is cancelled. Extract and load
// failures are retried with exponential backoff; Run itself only returns nil.
func (p *Pipeline) Run(ctx context.Context) error {
	p.logger.Info("pipeline started", "batch_size", p.batchSize)
	p.metrics.PipelineRunning.Set(1)
	defer p.metrics.PipelineRunning.Set(0)

	b := &backoff{delay: initialBackoff}
	for ctx.Err() == nil {
		if !p.processBatch(ctx, b) {
			break
		}
	}
	p.logger.Info("pipeline stopping", "reason", ctx.Err())
	return nil
}

// processBatch runs one cycle and reports whether the loop should continue.
func (p *Pipeline) processBatch(ctx context.Context, b *backoff) bool {
	start := time.Now()

	rawBatch, err := p.extractor.ExtractBatch(ctx, p.batchSize)
	if err != nil {
		if ctx.Err() != nil {
			return false
		}
		p.logger.Error("extract batch failed", "error", err)
		return b.wait(ctx)
	}
	if len(rawBatch) == 0 {
		return ctx.Err() == nil
	}

	logger := p.logger.With("batch_id", uuid.NewString())
	logger.Debug("batch extracted", "size", len(rawBatch))

	p.metrics.MessagesConsumed.Add(float64(len(rawBatch)))
	p.metrics.BatchSize.Observe(float64(len(rawBatch)))
	b.reset()

	outBatch, committable := p.transformBatch(ctx, logger, rawBatch)
	if len(outBatch) == 0 {
		return true
	}

	if err := p.loader.LoadBatch(ctx, outBatch); err != nil {
		logger.Error("load batch failed", "error", err, "batch_size", len(outBatch))
		return b.wait(ctx)
	}
	p.metrics.MessagesProduced.Add(float64(len(outBatch)))

	// Offsets are committed only after the sink accepted the batch.
	for _, raw := range committable {
		p.commitOffset(ctx, logger, raw)
	}

	p.metrics.BatchProcessingDuration.Observe(time.Since(start).Seconds())
	p.ready.Store(true)
	logger.Debug("batch loaded", "loaded", len(outBatch), "skipped", len(rawBatch)-len(outBatch))
	return true
}

// transformBatch transforms every record. Records that fail are committed
// immediately so a poison message is never redelivered.
func (p *Pipeline) transformBatch(ctx context.Context, logger *slog.Logger, rawBatch []domain.RawEvent) ([]domain.OutputEvent, []domain.RawEvent) {
	out := make([]domain.OutputEvent, 0, len(rawBatch))
	committable := make([]domain.RawEvent, 0, len(rawBatch))

	for _, raw := range rawBatch {
		event, err := p.transformer.Transform(ctx, raw)
		if err != nil {
			logger.Warn("transform failed, skipping record",
				"error", err,
				"topic", raw.Topic,
				"partition", raw.Partition,
				"offset", raw.Offset,
			)
			p.metrics.TransformErrors.Inc()
			p.commitOffset(ctx, logger, raw)
			continue
		}
		out = append(out, event)
		committable = append(committable, raw)
	}
	return out, committable
}

func (p *Pipeline) commitOffset(ctx context.Context, logger *slog.Logger, raw domain.RawEvent) {
	if raw.Commit == nil {
		return
	}
	if err := raw.Commit(ctx); err != nil {
		logger.Warn("commit offset failed", "error", err,
			"topic", raw.Topic, "partition", raw.Partition, "offset", raw.Offset)
	}
}

// backoff doubles from initialBackoff up to maxBackoff.
type backoff struct {
	delay time.Duration
}

func (b *backoff) reset() {
	b.delay = initialBackoff
}

// wait sleeps for the current delay and advances it. It returns false if ctx
// ends first.
func (b *backoff) wait(ctx context.Context) bool {
	if ctx.Err() != nil {
		return false
	}
	if !retry.SleepWithContext(ctx, b.delay) {
		return false
	}
	b.delay = retry.NextBackoff(b.delay, maxBackoff)
	return true
}
