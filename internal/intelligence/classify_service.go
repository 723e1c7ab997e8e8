package intelligence

import (
	"context"
	"fmt"
	"strings"

	"github.com/okonkwoa/ataraxia/internal/domain"
	"github.com/okonkwoa/ataraxia/internal/llm"
)

// ClassifyService determines a stress level and suggested activities for a
// user message. The model path is tried first; any failure falls closed to
// the rule-based classifier, so Classify never errors out of a turn. The
// returned error reports why the fallback was used, when it was.
type ClassifyService interface {
	Classify(ctx context.Context, text string, history []llm.Turn) (Classification, error)
}

type classifyService struct {
	client   llm.Client
	observer llm.Observer
}

// NewClassifyService creates a ClassifyService backed by a model client.
func NewClassifyService(client llm.Client, observer llm.Observer) ClassifyService {
	return &classifyService{client: client, observer: observer}
}

// classifyLLMResponse is the JSON structure expected from the model. Some
// models answer with "todos" instead of "activities"; both are accepted.
type classifyLLMResponse struct {
	StressLevel string                `json:"stress_level"`
	Activities  []classifyLLMActivity `json:"activities"`
	Todos       []classifyLLMActivity `json:"todos"`
}

type classifyLLMActivity struct {
	Title    string `json:"title"`
	Category string `json:"category"`
}

func (s *classifyService) Classify(ctx context.Context, text string, history []llm.Turn) (Classification, error) {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskClassify,
		SystemPrompt: classifySystemPrompt,
		History:      history,
		UserPrompt:   text,
	})
	if err != nil {
		return FallbackClassify(text), err
	}

	parsed, err := llm.ExtractJSON[classifyLLMResponse](resp.Text, validateClassifyResponse)
	if err != nil {
		return FallbackClassify(text), err
	}

	level := coerceLevel(domain.StressLevel(parsed.StressLevel), text)

	items := parsed.Activities
	if len(items) == 0 {
		items = parsed.Todos
	}
	activities := coerceActivities(items)
	if len(activities) == 0 {
		activities = FallbackClassify(text).Activities
	}

	return Classification{
		Level:      level,
		Activities: activities,
		Source:     SourceModel,
	}, nil
}

func validateClassifyResponse(r classifyLLMResponse) error {
	if !domain.ValidStressLevels[domain.StressLevel(r.StressLevel)] {
		return fmt.Errorf("unknown stress level %q", r.StressLevel)
	}
	return nil
}

// coerceLevel enforces the cause-token invariant on model output: elevated
// levels require either an explicit stressor or severe-distress vocabulary
// in the source text, otherwise the level is downgraded to moderate.
func coerceLevel(level domain.StressLevel, text string) domain.StressLevel {
	if !level.IsElevated() {
		return level
	}
	lower := strings.ToLower(text)
	if causePattern.MatchString(lower) || severePattern.MatchString(lower) {
		return level
	}
	return domain.StressModerate
}

// coerceActivities trims, validates, and caps raw model suggestions.
// Invalid categories default to health; empty titles are dropped;
// overlong titles are truncated.
func coerceActivities(items []classifyLLMActivity) []domain.ActivitySuggestion {
	var out []domain.ActivitySuggestion
	for _, item := range items {
		title := strings.TrimSpace(item.Title)
		if title == "" {
			continue
		}
		if runes := []rune(title); len(runes) > domain.MaxSuggestionTitleLen {
			title = string(runes[:domain.MaxSuggestionTitleLen])
		}
		out = append(out, domain.ActivitySuggestion{
			Title:    title,
			Category: domain.NormalizeCategory(domain.ActivityCategory(item.Category)),
		})
		if len(out) == MaxActivities {
			break
		}
	}
	return out
}
