package intelligence

import (
	"context"
	"fmt"
	"strings"

	"github.com/okonkwoa/ataraxia/internal/domain"
	"github.com/okonkwoa/ataraxia/internal/llm"
)

// IntentService detects habit-management requests in user messages. Like
// ClassifyService it fails closed: model output is only trusted above the
// confidence gate and with the fields its action requires; everything else
// falls back to the rule-based patterns.
type IntentService interface {
	ClassifyIntent(ctx context.Context, text string) (HabitIntent, error)
}

type intentService struct {
	client   llm.Client
	observer llm.Observer
}

// NewIntentService creates an IntentService backed by a model client.
func NewIntentService(client llm.Client, observer llm.Observer) IntentService {
	return &intentService{client: client, observer: observer}
}

// intentLLMResponse is the JSON structure expected from the model.
type intentLLMResponse struct {
	Action     string                `json:"action"`
	Habits     []classifyLLMActivity `json:"habits"`
	TargetName string                `json:"target_name"`
	OldName    string                `json:"old_name"`
	NewName    string                `json:"new_name"`
	Category   string                `json:"category"`
	Confidence float64               `json:"confidence"`
}

func (s *intentService) ClassifyIntent(ctx context.Context, text string) (HabitIntent, error) {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskIntent,
		SystemPrompt: intentSystemPrompt,
		UserPrompt:   text,
	})
	if err != nil {
		return FallbackHabitIntent(text), err
	}

	parsed, err := llm.ExtractJSON[intentLLMResponse](resp.Text, validateIntentResponse)
	if err != nil {
		return FallbackHabitIntent(text), err
	}

	// Model output below the gate is not trusted at all.
	if parsed.Confidence <= IntentConfidenceGate {
		return FallbackHabitIntent(text), nil
	}

	intent, ok := coerceIntent(parsed)
	if !ok {
		// The action's required fields were missing or unusable.
		return FallbackHabitIntent(text), nil
	}
	return intent, nil
}

func validateIntentResponse(r intentLLMResponse) error {
	if !ValidIntentActions[IntentAction(r.Action)] {
		return fmt.Errorf("unknown action %q", r.Action)
	}
	if r.Confidence < 0 || r.Confidence > 1 {
		return fmt.Errorf("confidence must be in [0,1], got %f", r.Confidence)
	}
	return nil
}

func coerceIntent(r intentLLMResponse) (HabitIntent, bool) {
	intent := HabitIntent{
		Action:     IntentAction(r.Action),
		Confidence: r.Confidence,
		Source:     SourceModel,
	}

	switch intent.Action {
	case ActionAdd:
		intent.Habits = coerceActivities(r.Habits)
		if len(intent.Habits) == 0 {
			return HabitIntent{}, false
		}
	case ActionRemove:
		intent.TargetName = strings.TrimSpace(r.TargetName)
		if intent.TargetName == "" {
			return HabitIntent{}, false
		}
	case ActionUpdate:
		intent.OldName = strings.TrimSpace(r.OldName)
		intent.NewName = strings.TrimSpace(r.NewName)
		if intent.OldName == "" || intent.NewName == "" {
			return HabitIntent{}, false
		}
		if c := domain.ActivityCategory(r.Category); domain.ValidCategories[c] {
			intent.Category = c
		}
	}

	return intent, true
}
