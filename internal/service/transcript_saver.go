package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/okonkwoa/ataraxia/internal/domain"
	"github.com/okonkwoa/ataraxia/internal/repository"
)

// DefaultTranscriptDebounce batches rapid chat exchanges into one write.
const DefaultTranscriptDebounce = 2 * time.Second

// TranscriptSaver persists chat messages in debounced batches so a flurry of
// turns does not hit the database once per message. Write failures are logged
// and swallowed; losing a transcript line must never break a conversation.
type TranscriptSaver struct {
	messages repository.MessageRepo
	debounce time.Duration
	logger   *slog.Logger

	mu      sync.Mutex
	pending []*domain.Message
	timer   *time.Timer
	closed  bool
}

func NewTranscriptSaver(messages repository.MessageRepo, debounce time.Duration, logger *slog.Logger) *TranscriptSaver {
	if debounce <= 0 {
		debounce = DefaultTranscriptDebounce
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &TranscriptSaver{
		messages: messages,
		debounce: debounce,
		logger:   logger,
	}
}

// Append queues messages for persistence and (re)arms the flush timer.
func (t *TranscriptSaver) Append(msgs ...*domain.Message) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return
	}
	t.pending = append(t.pending, msgs...)
	if t.timer != nil {
		t.timer.Stop()
	}
	t.timer = time.AfterFunc(t.debounce, func() {
		t.Flush(context.Background())
	})
}

// Flush writes all queued messages immediately.
func (t *TranscriptSaver) Flush(ctx context.Context) {
	t.mu.Lock()
	batch := t.pending
	t.pending = nil
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()

	if len(batch) == 0 {
		return
	}
	if err := t.messages.CreateBatch(ctx, batch); err != nil {
		t.logger.Warn("transcript write failed", "count", len(batch), "error", err)
	}
}

// Close flushes any remaining messages and stops the timer. The saver accepts
// no new messages afterwards.
func (t *TranscriptSaver) Close() {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	t.closed = true
	t.mu.Unlock()

	t.Flush(context.Background())
}
