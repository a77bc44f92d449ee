package fallback

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func newSelector() *Selector {
	return New(rand.NewSource(1))
}

func TestChat(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string // distinctive fragment of the expected bucket
	}{
		{"anxious keyword", "I'm so anxious about tomorrow", "in for 4, hold for 4, out for 6"},
		{"worry keyword", "I worry constantly", "in for 4, hold for 4, out for 6"},
		{"sad keyword", "feeling down today", "okay to feel sad"},
		{"depression keyword", "my depression is back", "okay to feel sad"},
		{"stress keyword", "so much pressure at work", "feeling overwhelmed"},
		{"happy keyword", "I'm so happy!", "joy in your message"},
		{"excited routes to happy bucket", "excited for the trip", "joy in your message"},
		{"grateful keyword", "I appreciate everything", "gratitude is so inspiring"},
		{"case insensitive", "I AM SO ANXIOUS", "in for 4, hold for 4, out for 6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := newSelector().Chat(tt.message)
			assert.Contains(t, got, tt.want)
		})
	}

	t.Run("earlier bucket wins when multiple match", func(t *testing.T) {
		// "anxious" (bucket 1) and "sad" (bucket 2) both present
		got := newSelector().Chat("I'm anxious and sad")
		assert.Contains(t, got, "feeling anxious")
		assert.NotContains(t, got, "okay to feel sad")
	})

	t.Run("no match draws from default pool", func(t *testing.T) {
		got := newSelector().Chat("tell me something")
		assert.Contains(t, chatDefaults, got)
	})

	t.Run("same seed same default", func(t *testing.T) {
		a := New(rand.NewSource(42)).Chat("neutral message")
		b := New(rand.NewSource(42)).Chat("neutral message")
		assert.Equal(t, a, b)
	})
}

func TestChatBucketOrderProperty(t *testing.T) {
	// For any message containing keywords from two buckets, the earlier
	// bucket's response is always returned.
	rapid.Check(t, func(t *rapid.T) {
		i := rapid.IntRange(0, len(chatBuckets)-2).Draw(t, "first")
		j := rapid.IntRange(i+1, len(chatBuckets)-1).Draw(t, "second")
		kwA := rapid.SampledFrom(chatBuckets[i].keywords).Draw(t, "kwA")
		kwB := rapid.SampledFrom(chatBuckets[j].keywords).Draw(t, "kwB")

		// Later bucket's keyword appears first in the message; order of
		// appearance must not matter, only bucket order.
		message := "I feel " + kwB + " and also " + kwA
		got := newSelector().Chat(message)
		require.Equal(t, chatBuckets[i].response, got)
	})
}

func TestMood(t *testing.T) {
	t.Run("known moods", func(t *testing.T) {
		for mood := range moodResponses {
			got := newSelector().Mood(mood)
			assert.Equal(t, moodResponses[mood], got)
		}
	})

	t.Run("case insensitive", func(t *testing.T) {
		assert.Equal(t, moodResponses["anxious"], newSelector().Mood("Anxious"))
	})

	t.Run("unknown mood gets default", func(t *testing.T) {
		assert.Equal(t, moodDefault, newSelector().Mood("melancholic"))
	})

	t.Run("empty mood gets default", func(t *testing.T) {
		assert.Equal(t, moodDefault, newSelector().Mood(""))
	})
}

func TestJournal(t *testing.T) {
	got := newSelector().Journal()
	assert.Contains(t, journalResponses, got)
}

func TestAffirmation(t *testing.T) {
	t.Run("drawn from pool", func(t *testing.T) {
		got := newSelector().Affirmation()
		assert.Contains(t, affirmations, got)
	})

	t.Run("covers the pool over many draws", func(t *testing.T) {
		s := New(rand.NewSource(7))
		seen := make(map[string]bool)
		for i := 0; i < 500; i++ {
			seen[s.Affirmation()] = true
		}
		assert.Len(t, seen, len(affirmations))
	})
}

func TestCoping(t *testing.T) {
	t.Run("known emotions", func(t *testing.T) {
		got := newSelector().Coping("anxious")
		assert.Contains(t, got, "5-4-3-2-1")
	})

	t.Run("overwhelmed has its own strategy", func(t *testing.T) {
		got := newSelector().Coping("overwhelmed")
		assert.Contains(t, got, "3 things on your mind")
	})

	t.Run("unknown emotion gets default", func(t *testing.T) {
		got := newSelector().Coping("bewildered")
		assert.Equal(t, copingDefault, got)
	})
}

func TestResponsesAreSupportive(t *testing.T) {
	// Every canned response ends with an emoji and is non-empty.
	all := chatDefaults
	all = append(all, journalResponses...)
	all = append(all, affirmations...)
	for _, bucket := range chatBuckets {
		all = append(all, bucket.response)
	}
	for _, r := range moodResponses {
		all = append(all, r)
	}
	for _, r := range all {
		assert.NotEmpty(t, strings.TrimSpace(r))
	}
}
