// Package types provides shared type definitions used across MindEase packages.
// This package exists to break import cycles between pipeline, history, and store.
// Types in this package should be foundational data structures with no complex dependencies.
package types

import (
	"context"
	"strings"
	"time"
)

// Role identifies the author of a conversation message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ConversationMessage is a single turn in a chat session.
// Messages are append-only; insertion order is meaningful because the
// prompt context window is built from the most recent slice.
type ConversationMessage struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Speaker returns the display name used when rendering a transcript line.
func (m ConversationMessage) Speaker() string {
	if m.Role == RoleUser {
		return "User"
	}
	return "MindEase"
}

// MoodCategory buckets mood options for streak and trend computation.
type MoodCategory string

const (
	MoodPositive MoodCategory = "positive"
	MoodNeutral  MoodCategory = "neutral"
	MoodNegative MoodCategory = "negative"
)

// MoodOption is one of the fixed selectable moods.
type MoodOption struct {
	Label       string       `json:"label"`
	Emoji       string       `json:"emoji"`
	Description string       `json:"description"`
	Category    MoodCategory `json:"category"`
}

// MoodEntry records one mood check-in. Immutable once created.
type MoodEntry struct {
	ID        string       `json:"id"`
	MoodLabel string       `json:"moodLabel"`
	Emoji     string       `json:"emoji"`
	Category  MoodCategory `json:"category"`
	Input     string       `json:"input"`
	Response  string       `json:"response"`
	Timestamp time.Time    `json:"timestamp"`
}

// JournalEntry records one journal submission and its companion response.
type JournalEntry struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Response  string    `json:"response"`
	WordCount int       `json:"wordCount"`
	Emotion   string    `json:"emotion"`
	Timestamp time.Time `json:"timestamp"`
}

// CountWords returns the whitespace-separated word count of s.
func CountWords(s string) int {
	return len(strings.Fields(s))
}

// MoodOptions is the fixed mood palette, in display order.
var MoodOptions = []MoodOption{
	{Label: "Happy", Emoji: "😊", Description: "Feeling joyful and positive", Category: MoodPositive},
	{Label: "Excited", Emoji: "😍", Description: "Full of energy and enthusiasm", Category: MoodPositive},
	{Label: "Peaceful", Emoji: "😌", Description: "Calm and relaxed", Category: MoodPositive},
	{Label: "Content", Emoji: "🙂", Description: "Satisfied and comfortable", Category: MoodPositive},
	{Label: "Grateful", Emoji: "🤗", Description: "Appreciative and thankful", Category: MoodPositive},
	{Label: "Neutral", Emoji: "😐", Description: "Neither good nor bad", Category: MoodNeutral},
	{Label: "Sad", Emoji: "😔", Description: "Feeling down or melancholy", Category: MoodNegative},
	{Label: "Disappointed", Emoji: "😞", Description: "Let down or discouraged", Category: MoodNegative},
	{Label: "Frustrated", Emoji: "😤", Description: "Annoyed or irritated", Category: MoodNegative},
	{Label: "Anxious", Emoji: "😰", Description: "Feeling worried or nervous", Category: MoodNegative},
	{Label: "Angry", Emoji: "😡", Description: "Feeling upset or mad", Category: MoodNegative},
	{Label: "Vulnerable", Emoji: "🥺", Description: "Feeling sensitive or exposed", Category: MoodNegative},
}

// MoodOptionByLabel looks a mood option up by its label, case-insensitively.
func MoodOptionByLabel(label string) (MoodOption, bool) {
	for _, opt := range MoodOptions {
		if strings.EqualFold(opt.Label, label) {
			return opt, true
		}
	}
	return MoodOption{}, false
}

// GenerationParams are the per-request generation knobs forwarded to the
// completion endpoint.
type GenerationParams struct {
	Temperature     float64
	TopK            int
	TopP            float64
	MaxOutputTokens int
}

// CompletionClient issues exactly one request to a text-generation endpoint
// per call. Implementations never retry internally; the caller's context is
// the only cancellation mechanism.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string, params GenerationParams) (string, error)
}
