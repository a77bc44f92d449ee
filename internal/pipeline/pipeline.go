// Package pipeline orchestrates prompt composition, the completion call
// and fallback selection for every MindEase feature. A request moves
// Idle -> Composing -> AwaitingCompletion and then either Success or
// FallingBack; callers always receive usable text, never an error the
// user has to see.
package pipeline

import (
	"context"
	"regexp"
	"strings"

	"mindease/internal/config"
	"mindease/internal/fallback"
	"mindease/internal/logging"
	"mindease/internal/prompt"
	"mindease/internal/types"
)

// State names a stage of the response pipeline.
type State string

const (
	StateIdle               State = "idle"
	StateComposing          State = "composing"
	StateAwaitingCompletion State = "awaiting_completion"
	StateSuccess            State = "success"
	StateFallingBack        State = "falling_back"
)

// Reply is the outcome of a pipeline run.
type Reply struct {
	Text         string
	FromFallback bool
}

// Responder drives the response pipeline for all features.
type Responder struct {
	client   types.CompletionClient
	selector *fallback.Selector
	api      config.APIConfig
	hist     config.HistoryConfig

	// notify, when set, observes state transitions. Called synchronously
	// from the requesting goroutine.
	notify func(State)
}

// New creates a Responder. client may be nil, in which case every
// request falls back immediately.
func New(client types.CompletionClient, selector *fallback.Selector, cfg *config.Config) *Responder {
	return &Responder{
		client:   client,
		selector: selector,
		api:      cfg.API,
		hist:     cfg.History,
	}
}

// OnStateChange registers a transition observer. Not safe to call while
// requests are in flight.
func (r *Responder) OnStateChange(fn func(State)) {
	r.notify = fn
}

func (r *Responder) setState(s State) {
	if r.notify != nil {
		r.notify(s)
	}
}

func (r *Responder) params(g config.GenerationConfig) types.GenerationParams {
	return types.GenerationParams{
		Temperature:     g.Temperature,
		TopK:            g.TopK,
		TopP:            g.TopP,
		MaxOutputTokens: g.MaxOutputTokens,
	}
}

// complete runs the composed prompt through the client, returning ok
// false when the caller should fall back.
func (r *Responder) complete(ctx context.Context, feature, p string, params types.GenerationParams) (string, bool) {
	if r.client == nil {
		logging.Pipeline("%s: no completion client, falling back", feature)
		return "", false
	}
	r.setState(StateAwaitingCompletion)
	text, err := r.client.Complete(ctx, p, params)
	if err != nil {
		logging.PipelineWarn("%s: completion failed: %v", feature, err)
		return "", false
	}
	return text, true
}

// Chat produces the companion's reply to a chat message given the
// transcript so far.
func (r *Responder) Chat(ctx context.Context, message string, conversation []types.ConversationMessage) Reply {
	r.setState(StateComposing)
	p := prompt.Chat(message, conversation, r.hist.ChatWindow)

	if text, ok := r.complete(ctx, "chat", p, r.params(r.api.Chat)); ok {
		r.setState(StateSuccess)
		r.setState(StateIdle)
		return Reply{Text: text}
	}
	r.setState(StateFallingBack)
	reply := Reply{Text: r.selector.Chat(message), FromFallback: true}
	r.setState(StateIdle)
	return reply
}

var speakerPrefix = regexp.MustCompile(`^(?i)(MindEase|AI|Assistant):\s*`)
var newlineRuns = regexp.MustCompile(`\n+`)

// cleanMoodResponse strips a leaked speaker prefix and flattens
// newlines; the mood card renders a single paragraph.
func cleanMoodResponse(text string) string {
	text = speakerPrefix.ReplaceAllString(text, "")
	text = newlineRuns.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Mood produces the companion's reply to a mood check-in.
func (r *Responder) Mood(ctx context.Context, message string, selected *types.MoodOption, conversation []types.ConversationMessage) Reply {
	r.setState(StateComposing)
	p := prompt.Mood(message, selected, conversation, r.hist.MoodWindow)

	if text, ok := r.complete(ctx, "mood", p, r.params(r.api.Mood)); ok {
		r.setState(StateSuccess)
		r.setState(StateIdle)
		return Reply{Text: cleanMoodResponse(text)}
	}
	r.setState(StateFallingBack)
	label := ""
	if selected != nil {
		label = selected.Label
	}
	reply := Reply{Text: r.selector.Mood(label), FromFallback: true}
	r.setState(StateIdle)
	return reply
}

// Journal produces the companion's reflection on a journal entry, with
// previous entries supplying theme context.
func (r *Responder) Journal(ctx context.Context, entry string, previous []types.JournalEntry) Reply {
	r.setState(StateComposing)
	p := prompt.Journal(entry, previous, r.hist.JournalWindow)

	if text, ok := r.complete(ctx, "journal", p, r.params(r.api.Journal)); ok {
		r.setState(StateSuccess)
		r.setState(StateIdle)
		return Reply{Text: text}
	}
	r.setState(StateFallingBack)
	reply := Reply{Text: r.selector.Journal(), FromFallback: true}
	r.setState(StateIdle)
	return reply
}

// Affirmation produces a short affirmation for a mood label.
func (r *Responder) Affirmation(ctx context.Context, mood string) Reply {
	r.setState(StateComposing)
	p := prompt.Affirmation(mood)

	if text, ok := r.complete(ctx, "affirmation", p, r.params(r.api.Affirmation)); ok {
		r.setState(StateSuccess)
		r.setState(StateIdle)
		return Reply{Text: text}
	}
	r.setState(StateFallingBack)
	reply := Reply{Text: r.selector.Affirmation(), FromFallback: true}
	r.setState(StateIdle)
	return reply
}

// validEmotions is the closed set Sentiment may return.
var validEmotions = map[string]bool{
	"happy": true, "sad": true, "anxious": true, "stressed": true,
	"grateful": true, "angry": true, "confused": true, "hopeful": true,
	"lonely": true, "excited": true, "neutral": true,
}

// Sentiment classifies a message into one emotion word. Anything the
// endpoint returns outside the valid set, and any failure, is "neutral".
func (r *Responder) Sentiment(ctx context.Context, message string) string {
	p := prompt.Sentiment(message)

	text, ok := r.complete(ctx, "sentiment", p, r.params(r.api.Affirmation))
	if !ok {
		return "neutral"
	}
	emotion := strings.ToLower(strings.TrimSpace(text))
	if !validEmotions[emotion] {
		logging.PipelineWarn("sentiment: %q outside valid set, using neutral", emotion)
		return "neutral"
	}
	return emotion
}

// Coping suggests one coping strategy for an emotion. Situation is optional.
func (r *Responder) Coping(ctx context.Context, emotion, situation string) Reply {
	r.setState(StateComposing)
	p := prompt.Coping(emotion, situation)

	if text, ok := r.complete(ctx, "coping", p, r.params(r.api.Affirmation)); ok {
		r.setState(StateSuccess)
		r.setState(StateIdle)
		return Reply{Text: text}
	}
	r.setState(StateFallingBack)
	reply := Reply{Text: r.selector.Coping(emotion), FromFallback: true}
	r.setState(StateIdle)
	return reply
}
