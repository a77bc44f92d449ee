package prompt

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"mindease/internal/types"
)

func msg(role types.Role, text string) types.ConversationMessage {
	return types.ConversationMessage{Role: role, Text: text, Timestamp: time.Now()}
}

func TestChat(t *testing.T) {
	t.Run("no history omits conversation block", func(t *testing.T) {
		p := Chat("I feel tired", nil, 4)

		assert.True(t, strings.HasPrefix(p, "You are MindEase"))
		assert.NotContains(t, p, "Recent conversation:")
		assert.Contains(t, p, "\n\nUser: I feel tired\n\n")
		assert.True(t, strings.HasSuffix(p, "MindEase (respond in 2-3 sentences with empathy and practical support):"))
	})

	t.Run("history rendered oldest to newest with speaker labels", func(t *testing.T) {
		history := []types.ConversationMessage{
			msg(types.RoleUser, "hello"),
			msg(types.RoleAssistant, "hi there"),
		}
		p := Chat("next", history, 4)

		require.Contains(t, p, "Recent conversation:\nUser: hello\nMindEase: hi there")
	})

	t.Run("window keeps only newest messages", func(t *testing.T) {
		var history []types.ConversationMessage
		for i := 0; i < 10; i++ {
			history = append(history, msg(types.RoleUser, fmt.Sprintf("message-%d", i)))
		}
		p := Chat("now", history, 4)

		assert.NotContains(t, p, "message-5")
		assert.Contains(t, p, "message-6")
		assert.Contains(t, p, "message-9")
	})

	t.Run("deterministic for identical inputs", func(t *testing.T) {
		history := []types.ConversationMessage{msg(types.RoleUser, "same")}
		assert.Equal(t, Chat("msg", history, 4), Chat("msg", history, 4))
	})
}

func TestChatProperties(t *testing.T) {
	t.Run("window bound holds for arbitrary histories", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			n := rapid.IntRange(0, 30).Draw(t, "n")
			window := rapid.IntRange(0, 8).Draw(t, "window")

			var history []types.ConversationMessage
			for i := 0; i < n; i++ {
				history = append(history, msg(types.RoleUser, fmt.Sprintf("m%d", i)))
			}
			p := Chat("x", history, window)

			cutoff := n - window
			for i := 0; i < n; i++ {
				token := fmt.Sprintf("User: m%d\n", i)
				last := fmt.Sprintf("User: m%d\n\nUser: x", i)
				present := strings.Contains(p, token) || strings.Contains(p, last)
				if i < cutoff {
					require.False(t, present, "message %d should be outside the window", i)
				} else if window > 0 {
					require.True(t, present, "message %d should be inside the window", i)
				}
			}
		})
	})
}

func TestMood(t *testing.T) {
	t.Run("selected mood appended to persona", func(t *testing.T) {
		opt, ok := types.MoodOptionByLabel("Happy")
		require.True(t, ok)

		p := Mood("great day", &opt, nil, 3)
		assert.Contains(t, p, "Selected Mood: 😊 Happy - Feeling joyful and positive")
		assert.Contains(t, p, `User's message: "great day"`)
	})

	t.Run("nil mood omits mood line", func(t *testing.T) {
		p := Mood("unsure", nil, nil, 3)
		assert.NotContains(t, p, "Selected Mood:")
	})

	t.Run("recent mood conversation included", func(t *testing.T) {
		history := []types.ConversationMessage{
			msg(types.RoleUser, "rough morning"),
			msg(types.RoleAssistant, "that sounds hard"),
		}
		p := Mood("better now", nil, history, 3)
		assert.Contains(t, p, "Recent mood conversation:\nUser: rough morning\nMindEase: that sounds hard")
	})
}

func TestJournal(t *testing.T) {
	t.Run("no previous entries omits themes block", func(t *testing.T) {
		p := Journal("today was calm", nil, 2)
		assert.NotContains(t, p, "Previous journal themes:")
		assert.Contains(t, p, `User's journal entry: "today was calm"`)
		assert.True(t, strings.HasSuffix(p, "MindEase (respond with reflection, affirmation, and gentle question):"))
	})

	t.Run("previous entries truncated to preview length", func(t *testing.T) {
		long := strings.Repeat("a", 250)
		previous := []types.JournalEntry{{Text: long}}

		p := Journal("new entry", previous, 2)
		assert.Contains(t, p, "Entry 1: "+strings.Repeat("a", 100)+"...")
		assert.NotContains(t, p, strings.Repeat("a", 101))
	})

	t.Run("only newest window entries used", func(t *testing.T) {
		previous := []types.JournalEntry{
			{Text: "oldest entry"},
			{Text: "middle entry"},
			{Text: "newest entry"},
		}
		p := Journal("x", previous, 2)
		assert.NotContains(t, p, "oldest entry")
		assert.Contains(t, p, "Entry 1: middle entry...")
		assert.Contains(t, p, "Entry 2: newest entry...")
	})
}

func TestAffirmation(t *testing.T) {
	p := Affirmation("anxious")
	assert.Contains(t, p, "someone feeling anxious")
	assert.Contains(t, p, "Under 25 words")
	assert.True(t, strings.HasSuffix(p, "Affirmation:"))
}

func TestSentiment(t *testing.T) {
	p := Sentiment("I can't sleep")
	assert.Contains(t, p, `Message: "I can't sleep"`)
	assert.Contains(t, p, "happy, sad, anxious, stressed, grateful, angry, confused, hopeful, lonely, excited, neutral")
	assert.True(t, strings.HasSuffix(p, "Emotion (one word only):"))
}

func TestCoping(t *testing.T) {
	t.Run("without situation", func(t *testing.T) {
		p := Coping("stressed", "")
		assert.Contains(t, p, "someone feeling stressed")
		assert.NotContains(t, p, "in this situation")
	})

	t.Run("with situation", func(t *testing.T) {
		p := Coping("anxious", "before an exam")
		assert.Contains(t, p, "in this situation: before an exam")
	})
}
