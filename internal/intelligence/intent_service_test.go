package intelligence

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/okonkwoa/ataraxia/internal/domain"
	"github.com/okonkwoa/ataraxia/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intentJSON(r intentLLMResponse) string {
	data, _ := json.Marshal(r)
	return string(data)
}

func TestIntentService_ModelAdd(t *testing.T) {
	client := &mockClient{response: intentJSON(intentLLMResponse{
		Action:     "add",
		Habits:     []classifyLLMActivity{{Title: "Evening yoga", Category: "exercise"}},
		Confidence: 0.92,
	})}
	svc := NewIntentService(client, llm.NoopObserver{})

	intent, err := svc.ClassifyIntent(context.Background(), "can you add evening yoga to my habits")

	require.NoError(t, err)
	assert.Equal(t, SourceModel, intent.Source)
	assert.Equal(t, ActionAdd, intent.Action)
	require.Len(t, intent.Habits, 1)
	assert.Equal(t, "Evening yoga", intent.Habits[0].Title)
	assert.True(t, intent.Actionable())
}

func TestIntentService_ModelRemove(t *testing.T) {
	client := &mockClient{response: intentJSON(intentLLMResponse{
		Action:     "remove",
		TargetName: " Morning run ",
		Confidence: 0.88,
	})}
	svc := NewIntentService(client, llm.NoopObserver{})

	intent, err := svc.ClassifyIntent(context.Background(), "drop the morning run please")

	require.NoError(t, err)
	assert.Equal(t, ActionRemove, intent.Action)
	assert.Equal(t, "Morning run", intent.TargetName)
}

func TestIntentService_LowConfidenceFallsBack(t *testing.T) {
	client := &mockClient{response: intentJSON(intentLLMResponse{
		Action:     "add",
		Habits:     []classifyLLMActivity{{Title: "Something", Category: "health"}},
		Confidence: 0.5,
	})}
	svc := NewIntentService(client, llm.NoopObserver{})

	intent, err := svc.ClassifyIntent(context.Background(), "remove the habit of doomscrolling")

	require.NoError(t, err)
	assert.Equal(t, SourceFallback, intent.Source)
	assert.Equal(t, ActionRemove, intent.Action, "fallback patterns take over below the gate")
	assert.Equal(t, "doomscrolling", intent.TargetName)
}

func TestIntentService_ClientErrorFallsBack(t *testing.T) {
	client := &mockClient{err: llm.ErrTimeout}
	svc := NewIntentService(client, llm.NoopObserver{})

	intent, err := svc.ClassifyIntent(context.Background(), "I want to start a journaling habit")

	require.Error(t, err)
	assert.True(t, errors.Is(err, llm.ErrTimeout))
	assert.Equal(t, SourceFallback, intent.Source)
	assert.Equal(t, ActionAdd, intent.Action)
}

func TestIntentService_UnknownActionFallsBack(t *testing.T) {
	client := &mockClient{response: intentJSON(intentLLMResponse{
		Action:     "merge",
		Confidence: 0.95,
	})}
	svc := NewIntentService(client, llm.NoopObserver{})

	intent, err := svc.ClassifyIntent(context.Background(), "hello there")

	require.Error(t, err)
	assert.Equal(t, ActionNone, intent.Action)
}

func TestIntentService_MissingRequiredFieldsFallsBack(t *testing.T) {
	// Remove without a target name is unusable even at high confidence.
	client := &mockClient{response: intentJSON(intentLLMResponse{
		Action:     "remove",
		Confidence: 0.95,
	})}
	svc := NewIntentService(client, llm.NoopObserver{})

	intent, err := svc.ClassifyIntent(context.Background(), "just feeling chatty")

	require.NoError(t, err)
	assert.Equal(t, SourceFallback, intent.Source)
	assert.Equal(t, ActionNone, intent.Action)
}

func TestIntentService_UpdateCarriesCategory(t *testing.T) {
	client := &mockClient{response: intentJSON(intentLLMResponse{
		Action:     "update",
		OldName:    "Reading",
		NewName:    "Audiobooks",
		Category:   "learning",
		Confidence: 0.9,
	})}
	svc := NewIntentService(client, llm.NoopObserver{})

	intent, err := svc.ClassifyIntent(context.Background(), "switch my reading habit to audiobooks")

	require.NoError(t, err)
	assert.Equal(t, ActionUpdate, intent.Action)
	assert.Equal(t, "Reading", intent.OldName)
	assert.Equal(t, "Audiobooks", intent.NewName)
	assert.Equal(t, domain.CategoryLearning, intent.Category)
}
