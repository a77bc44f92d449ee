// Package prompt composes completion prompts for every MindEase feature.
// Composition is pure: the same inputs always yield the same prompt, and
// nothing here performs I/O. Each composer pairs a fixed persona with a
// bounded context window drawn from recent history.
package prompt

import (
	"fmt"
	"strings"

	"mindease/internal/types"
)

// journalEntryPreview bounds how much of a previous entry leaks into context
const journalEntryPreview = 100

// contextWindow returns the newest n messages in oldest-to-newest order,
// rendered one per line as "<Speaker>: <text>".
func contextWindow(history []types.ConversationMessage, n int) string {
	if len(history) == 0 || n <= 0 {
		return ""
	}
	start := len(history) - n
	if start < 0 {
		start = 0
	}
	var b strings.Builder
	for i, msg := range history[start:] {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(msg.Speaker())
		b.WriteString(": ")
		b.WriteString(msg.Text)
	}
	return b.String()
}

// Chat builds the conversational prompt: persona, up to window recent
// messages, then the new user message.
func Chat(message string, history []types.ConversationMessage, window int) string {
	var b strings.Builder
	b.WriteString(chatPersona)
	if ctx := contextWindow(history, window); ctx != "" {
		b.WriteString("\n\nRecent conversation:\n")
		b.WriteString(ctx)
	}
	fmt.Fprintf(&b, "\n\nUser: %s\n\nMindEase (respond in 2-3 sentences with empathy and practical support):", message)
	return b.String()
}

// Mood builds the mood companion prompt. The selected mood, when present,
// is appended to the persona; recent mood conversation comes before the
// user's message.
func Mood(message string, selected *types.MoodOption, history []types.ConversationMessage, window int) string {
	var b strings.Builder
	b.WriteString(moodPersona)
	if selected != nil {
		fmt.Fprintf(&b, "\nSelected Mood: %s %s - %s", selected.Emoji, selected.Label, selected.Description)
	}
	if ctx := contextWindow(history, window); ctx != "" {
		b.WriteString("\n\nRecent mood conversation:\n")
		b.WriteString(ctx)
	}
	fmt.Fprintf(&b, "\n\nUser's message: %q\n\nRespond with empathy and one practical suggestion (2-3 sentences):", message)
	return b.String()
}

// Journal builds the journal companion prompt. Up to window previous
// entries appear as truncated themes so the response can notice patterns
// without re-reading whole entries.
func Journal(entry string, previous []types.JournalEntry, window int) string {
	var b strings.Builder
	b.WriteString(journalPersona)
	if len(previous) > 0 && window > 0 {
		start := len(previous) - window
		if start < 0 {
			start = 0
		}
		b.WriteString("\n\nPrevious journal themes:\n")
		for i, prev := range previous[start:] {
			if i > 0 {
				b.WriteByte('\n')
			}
			fmt.Fprintf(&b, "Entry %d: %s...", i+1, truncate(prev.Text, journalEntryPreview))
		}
	}
	fmt.Fprintf(&b, "\n\nUser's journal entry: %q\n\nMindEase (respond with reflection, affirmation, and gentle question):", entry)
	return b.String()
}

// Affirmation builds the short affirmation prompt for a mood label.
func Affirmation(mood string) string {
	return fmt.Sprintf(`Create a personalized, uplifting affirmation for someone feeling %s.

Requirements:
- Personal and encouraging
- Present tense
- Under 25 words
- Include one relevant emoji
- Focused on strength and self-compassion

Affirmation:`, mood)
}

// Sentiment builds the single-word emotion classification prompt.
func Sentiment(message string) string {
	return fmt.Sprintf(`Analyze the emotional tone of this message and respond with just ONE word from this list: happy, sad, anxious, stressed, grateful, angry, confused, hopeful, lonely, excited, neutral.

Message: %q

Emotion (one word only):`, message)
}

// Coping builds the coping strategy prompt. Situation is optional.
func Coping(emotion, situation string) string {
	sit := ""
	if situation != "" {
		sit = "in this situation: " + situation
	}
	return fmt.Sprintf(`Suggest ONE practical, immediate coping strategy for someone feeling %s %s.
Keep it simple, actionable, and under 50 words. Include a relevant emoji.

Focus on techniques like:
- Breathing exercises
- Grounding techniques
- Physical movement
- Mindfulness practices
- Self-care activities

Coping strategy (one suggestion only):`, emotion, sit)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
