package intelligence

import (
	"context"

	"github.com/okonkwoa/ataraxia/internal/llm"
)

// ReplyResult is the outcome of generating the conversational reply.
// Text is always usable; Err records why the canned pool was used when
// Source is SourceFallback.
type ReplyResult struct {
	Text   string
	Source ResultSource
	Err    error
}

// ReplyService generates the free-text conversational reply for a turn,
// using the full prior history. On model failure it substitutes a response
// from a fixed pool of supportive canned replies; the turn is never thrown
// away.
type ReplyService interface {
	Reply(ctx context.Context, text string, history []llm.Turn) ReplyResult
}

type replyService struct {
	client   llm.Client
	observer llm.Observer
}

// NewReplyService creates a ReplyService backed by a model client.
func NewReplyService(client llm.Client, observer llm.Observer) ReplyService {
	return &replyService{client: client, observer: observer}
}

// cannedReplies is the fixed pool used when reply generation fails.
// Selection is deterministic in the history length so repeated failures
// rotate through the pool instead of repeating one line.
var cannedReplies = []string{
	"Thank you for sharing that with me. I'm here with you — would you like to tell me a bit more about how that feels?",
	"I hear you. Whatever you're carrying right now, it's okay to take it one small step at a time.",
	"That sounds like a lot. Take a slow breath with me — there's no rush here.",
	"I'm listening. Sometimes just putting it into words is already something.",
	"However today has been, you showed up here, and that counts. What would feel most supportive right now?",
}

func (s *replyService) Reply(ctx context.Context, text string, history []llm.Turn) ReplyResult {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskReply,
		SystemPrompt: wellnessPersonaPrompt,
		History:      history,
		UserPrompt:   text,
	})
	if err != nil {
		return ReplyResult{
			Text:   cannedReplies[len(history)%len(cannedReplies)],
			Source: SourceFallback,
			Err:    err,
		}
	}
	return ReplyResult{Text: resp.Text, Source: SourceModel}
}
