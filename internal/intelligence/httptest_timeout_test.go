package intelligence

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/okonkwoa/ataraxia/internal/domain"
	"github.com/okonkwoa/ataraxia/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSlowServer returns a server that never answers within any reasonable
// timeout but exits cleanly when the request context is cancelled.
func newSlowServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(10 * time.Second):
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func slowClientConfig(endpoint string, task llm.TaskType, timeoutMs int) llm.Config {
	cfg := llm.DefaultConfig()
	cfg.Enabled = true
	cfg.Endpoint = endpoint
	cfg.MaxRetries = 0
	tc := cfg.Tasks[task]
	tc.TimeoutMs = timeoutMs
	cfg.Tasks[task] = tc
	return cfg
}

// A slow model server must not hang a turn: the classifier gives up at the
// task timeout and proceeds with the rule-based result.
func TestClassifyService_Timeout_FallsBackQuickly(t *testing.T) {
	srv := newSlowServer(t)
	cfg := slowClientConfig(srv.URL, llm.TaskClassify, 500)
	client := llm.NewOllamaClient(cfg, llm.NoopObserver{})
	svc := NewClassifyService(client, llm.NoopObserver{})

	start := time.Now()
	cls, err := svc.Classify(context.Background(), "I'm so stressed about my work deadline", nil)
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.True(t, errors.Is(err, llm.ErrTimeout))
	assert.Less(t, elapsed, 3*time.Second, "should give up at the task timeout")
	assert.Equal(t, SourceFallback, cls.Source)
	assert.Equal(t, domain.StressHigh, cls.Level, "fallback still classifies correctly")
}

func TestIntentService_Timeout_FallsBackQuickly(t *testing.T) {
	srv := newSlowServer(t)
	cfg := slowClientConfig(srv.URL, llm.TaskIntent, 500)
	client := llm.NewOllamaClient(cfg, llm.NoopObserver{})
	svc := NewIntentService(client, llm.NoopObserver{})

	start := time.Now()
	intent, err := svc.ClassifyIntent(context.Background(), "remove the habit of late snacks")
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.Less(t, elapsed, 3*time.Second)
	assert.Equal(t, ActionRemove, intent.Action)
	assert.Equal(t, "late snacks", intent.TargetName)
}

func TestReplyService_ContextCancellation(t *testing.T) {
	srv := newSlowServer(t)
	cfg := slowClientConfig(srv.URL, llm.TaskReply, 10_000)
	client := llm.NewOllamaClient(cfg, llm.NoopObserver{})
	svc := NewReplyService(client, llm.NoopObserver{})

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	start := time.Now()
	res := svc.Reply(ctx, "still there?", nil)
	elapsed := time.Since(start)

	assert.Less(t, elapsed, 2*time.Second, "caller cancellation is honored")
	assert.Equal(t, SourceFallback, res.Source)
	assert.NotEmpty(t, res.Text)
}
