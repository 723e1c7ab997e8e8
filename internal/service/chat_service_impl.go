package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/okonkwoa/ataraxia/internal/domain"
	"github.com/okonkwoa/ataraxia/internal/extract"
	"github.com/okonkwoa/ataraxia/internal/intelligence"
	"github.com/okonkwoa/ataraxia/internal/llm"
	"github.com/okonkwoa/ataraxia/internal/repository"
)

// ErrTurnInFlight is returned when ProcessTurn is called while a previous
// turn is still being handled.
var ErrTurnInFlight = errors.New("a turn is already being processed")

// TurnState describes where the orchestrator is in the current exchange.
type TurnState int32

const (
	StateIdle TurnState = iota
	StateClassifying
	StateApplying
	StateReplying
)

func (s TurnState) String() string {
	switch s {
	case StateClassifying:
		return "classifying"
	case StateApplying:
		return "applying"
	case StateReplying:
		return "replying"
	default:
		return "idle"
	}
}

// historyWindow caps how many prior turns are sent to the model.
const historyWindow = 20

var exerciseRequestPattern = regexp.MustCompile(
	`(?i)\b(?:want|need|looking for|give me|suggest)\b.*\b(?:exercise|activit|workout|technique)`)

type chatService struct {
	intents       intelligence.IntentService
	classifier    intelligence.ClassifyService
	replies       intelligence.ReplyService
	habits        HabitService
	stress        StressService
	notifications NotificationService
	transcript    *TranscriptSaver
	messages      repository.MessageRepo
	observer      UseCaseObserver
	logger        *slog.Logger

	mu      sync.Mutex
	state   atomic.Int32
	history []llm.Turn
}

func NewChatService(
	intents intelligence.IntentService,
	classifier intelligence.ClassifyService,
	replies intelligence.ReplyService,
	habits HabitService,
	stress StressService,
	notifications NotificationService,
	transcript *TranscriptSaver,
	messages repository.MessageRepo,
	observers ...UseCaseObserver,
) ChatService {
	svc := &chatService{
		intents:       intents,
		classifier:    classifier,
		replies:       replies,
		habits:        habits,
		stress:        stress,
		notifications: notifications,
		transcript:    transcript,
		messages:      messages,
		observer:      useCaseObserverOrNoop(observers),
		logger:        slog.Default(),
	}
	svc.loadHistory(context.Background())
	return svc
}

// loadHistory seeds the in-memory conversation window from the persisted
// transcript so a new process picks up where the last session ended.
func (s *chatService) loadHistory(ctx context.Context) {
	if s.messages == nil {
		return
	}
	recent, err := s.messages.ListRecent(ctx, historyWindow)
	if err != nil {
		s.logger.Warn("loading prior conversation failed", "error", err)
		return
	}
	for _, m := range recent {
		s.history = append(s.history, llm.Turn{Role: string(m.Role), Text: m.Text})
	}
}

// State reports the current phase of turn processing, for UI spinners.
func (s *chatService) State() TurnState {
	return TurnState(s.state.Load())
}

func (s *chatService) History(ctx context.Context, limit int) ([]*domain.Message, error) {
	if limit <= 0 {
		return s.messages.List(ctx)
	}
	return s.messages.ListRecent(ctx, limit)
}

// ProcessTurn runs one full chat exchange. Turns are strictly sequential;
// overlapping calls fail fast with ErrTurnInFlight.
func (s *chatService) ProcessTurn(ctx context.Context, text string) (*TurnResult, error) {
	if !s.mu.TryLock() {
		return nil, ErrTurnInFlight
	}
	defer s.mu.Unlock()
	defer s.state.Store(int32(StateIdle))

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("empty message")
	}

	started := time.Now()
	result := s.runTurn(ctx, text)

	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:     "chat_turn",
		Duration: time.Since(started),
		Fields: map[string]any{
			"crisis":    result.Crisis,
			"off_topic": result.OffTopic,
			"recorded":  result.Recorded,
		},
	})
	return result, nil
}

func (s *chatService) runTurn(ctx context.Context, text string) *TurnResult {
	result := &TurnResult{}
	s.appendMessage(domain.RoleUser, text)

	result.Crisis = intelligence.IsCrisis(text)

	// Off-topic messages get a gentle redirect and nothing else. A crisis
	// message is never treated as off-topic.
	if !result.Crisis && intelligence.IsOffTopic(text) {
		result.OffTopic = true
		result.Reply = intelligence.RedirectReply()
		s.finishTurn(result)
		return result
	}

	s.state.Store(int32(StateClassifying))

	intent, intentErr := s.intents.ClassifyIntent(ctx, text)
	if intentErr != nil {
		s.logger.Debug("intent classification degraded", "error", intentErr)
	}

	if intent.Actionable() {
		s.state.Store(int32(StateApplying))
		s.applyIntent(ctx, intent, result)
	} else {
		s.handleStress(ctx, text, result)
	}

	s.state.Store(int32(StateReplying))
	if result.Reply == "" {
		s.composeReply(ctx, text, result)
	}

	if result.Crisis {
		result.Reply = intelligence.CrisisPreface() + "\n\n" + result.Reply
	}

	s.finishTurn(result)
	return result
}

// applyIntent mutates the habit store per the classified intent. Store
// failures degrade to an apology; the turn itself always completes.
func (s *chatService) applyIntent(ctx context.Context, intent intelligence.HabitIntent, result *TurnResult) {
	switch intent.Action {
	case intelligence.ActionAdd:
		added, err := s.habits.AddDedup(ctx, intent.Habits)
		if err != nil {
			s.storeFailure(err, result)
			return
		}
		result.AddedHabits = added
		if len(added) == 0 {
			result.Reply = "You're already tracking those habits. Keep it up!"
			return
		}
		for _, name := range added {
			s.notify(ctx, fmt.Sprintf("Habit added: %s", name), domain.NotifySuccess)
		}
		result.Reply = fmt.Sprintf("Great! I've added %s to your habits. Small steps add up.", joinNames(added))

	case intelligence.ActionRemove:
		removed, err := s.habits.Remove(ctx, intent.TargetName)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				result.Reply = fmt.Sprintf("I couldn't find a habit matching %q. You can see your habits with the habit list command.", intent.TargetName)
				return
			}
			s.storeFailure(err, result)
			return
		}
		result.RemovedHabit = removed.Name
		s.notify(ctx, fmt.Sprintf("Habit removed: %s", removed.Name), domain.NotifyInfo)
		result.Reply = fmt.Sprintf("Done, I've removed %q. It's okay to let go of what isn't serving you.", removed.Name)

	case intelligence.ActionUpdate:
		renamed, err := s.habits.Rename(ctx, intent.OldName, intent.NewName, intent.Category)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				result.Reply = fmt.Sprintf("I couldn't find a habit matching %q to change.", intent.OldName)
				return
			}
			s.storeFailure(err, result)
			return
		}
		result.RenamedHabit = renamed.Name
		s.notify(ctx, fmt.Sprintf("Habit updated: %s", renamed.Name), domain.NotifySuccess)
		result.Reply = fmt.Sprintf("Updated! Your habit is now %q, with a fresh start on the streak.", renamed.Name)
	}
}

// handleStress classifies the message for stress when it carries a real
// emotional signal, records the entry, and acts on the level.
func (s *chatService) handleStress(ctx context.Context, text string, result *TurnResult) {
	if !result.Crisis && !intelligence.HasAffectSignal(text) {
		return
	}

	cls, err := s.classifier.Classify(ctx, text, s.recentHistory())
	if err != nil {
		s.logger.Debug("stress classification degraded", "error", err)
	}
	result.Level = cls.Level

	if _, err := s.stress.Record(ctx, cls.Level, text); err != nil {
		s.logger.Warn("recording stress entry failed", "error", err)
		return
	}
	result.Recorded = true

	switch {
	case cls.Level.IsElevated():
		result.Suggestions = cls.Activities
		s.addSuggestions(ctx, cls.Activities, result)
	case cls.Level.IsCalm():
		s.notify(ctx, "Nice to hear you're doing well. Logged it.", domain.NotifyInfo)
	}
}

// addSuggestions runs the dedup-guarded insert for suggested activities and
// reports the outcome: one success notification per newly added habit, or a
// single info notification when every suggestion was already tracked.
func (s *chatService) addSuggestions(ctx context.Context, suggestions []domain.ActivitySuggestion, result *TurnResult) {
	if len(suggestions) == 0 {
		return
	}
	added, err := s.habits.AddDedup(ctx, suggestions)
	if err != nil {
		s.logger.Warn("adding suggested habits failed", "error", err)
		return
	}
	result.AddedHabits = append(result.AddedHabits, added...)
	if len(added) == 0 {
		s.notify(ctx, "Those suggestions are already in your habits. Keep at them.", domain.NotifyInfo)
		return
	}
	for _, name := range added {
		s.notify(ctx, fmt.Sprintf("Habit added: %s", name), domain.NotifySuccess)
	}
}

// composeReply asks the model for a conversational reply, falling back to a
// canned one with a visible banner when the model path fails.
func (s *chatService) composeReply(ctx context.Context, text string, result *TurnResult) {
	res := s.replies.Reply(ctx, text, s.recentHistory())
	result.Reply = res.Text
	if res.Err != nil && !errors.Is(res.Err, llm.ErrDisabled) {
		result.Banner = "The model is unreachable right now. Replies may feel a bit generic."
	}

	// Offer concrete activities when the reply contains them, or when the
	// user explicitly asked for some and the reply came up empty. Extracted
	// activities go through the same dedup-guarded insert as classifier
	// suggestions.
	if len(result.Suggestions) == 0 {
		suggestions := extract.Activities(res.Text)
		if len(suggestions) == 0 && exerciseRequestPattern.MatchString(text) {
			suggestions = intelligence.FallbackActivities()
		}
		result.Suggestions = suggestions
		s.addSuggestions(ctx, suggestions, result)
	}
}

func (s *chatService) storeFailure(err error, result *TurnResult) {
	s.logger.Warn("habit store mutation failed", "error", err)
	result.Reply = "Something went wrong saving that change. Your message is safe; please try again in a moment."
}

func (s *chatService) notify(ctx context.Context, message string, kind domain.NotificationKind) {
	if err := s.notifications.Push(ctx, message, kind); err != nil {
		s.logger.Debug("pushing notification failed", "error", err)
	}
}

func (s *chatService) appendMessage(role domain.Role, text string) {
	msg := &domain.Message{
		ID:        uuid.New().String(),
		Role:      role,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	if s.transcript != nil {
		s.transcript.Append(msg)
	}
	s.history = append(s.history, llm.Turn{Role: string(role), Text: text})
	if len(s.history) > historyWindow {
		s.history = s.history[len(s.history)-historyWindow:]
	}
}

func (s *chatService) finishTurn(result *TurnResult) {
	s.appendMessage(domain.RoleAssistant, result.Reply)
}

// recentHistory returns the model-facing conversation window, excluding the
// in-flight user message so prompt builders can add it themselves.
func (s *chatService) recentHistory() []llm.Turn {
	if len(s.history) == 0 {
		return nil
	}
	return s.history[:len(s.history)-1]
}

func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf("%q", names[0])
	case 2:
		return fmt.Sprintf("%q and %q", names[0], names[1])
	default:
		quoted := make([]string, len(names)-1)
		for i, n := range names[:len(names)-1] {
			quoted[i] = fmt.Sprintf("%q", n)
		}
		return fmt.Sprintf("%s, and %q", strings.Join(quoted, ", "), names[len(names)-1])
	}
}
