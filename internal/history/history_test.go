package history

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"mindease/internal/types"
)

func moodByLabel(t *testing.T, label string) types.MoodOption {
	t.Helper()
	opt, ok := types.MoodOptionByLabel(label)
	require.True(t, ok)
	return opt
}

func TestConversation(t *testing.T) {
	t.Run("messages kept in insertion order", func(t *testing.T) {
		c := NewConversation()
		c.Add(types.RoleUser, "first")
		c.Add(types.RoleAssistant, "second")
		c.Add(types.RoleUser, "third")

		all := c.All()
		require.Len(t, all, 3)
		assert.Equal(t, "first", all[0].Text)
		assert.Equal(t, "third", all[2].Text)
		assert.Equal(t, 3, c.Len())
	})

	t.Run("added message gets id and timestamp", func(t *testing.T) {
		c := NewConversation()
		msg := c.Add(types.RoleUser, "hello")
		assert.NotEmpty(t, msg.ID)
		assert.False(t, msg.Timestamp.IsZero())
	})
}

func TestMoodLog(t *testing.T) {
	happy := func(t *testing.T) types.MoodOption { return moodByLabel(t, "Happy") }
	sad := func(t *testing.T) types.MoodOption { return moodByLabel(t, "Sad") }

	t.Run("newest first", func(t *testing.T) {
		l := NewMoodLog(20, 7)
		l.Add(happy(t), "first", "r1")
		l.Add(sad(t), "second", "r2")

		entries := l.Entries()
		require.Len(t, entries, 2)
		assert.Equal(t, "second", entries[0].Input)
		assert.Equal(t, "first", entries[1].Input)
	})

	t.Run("cap evicts oldest", func(t *testing.T) {
		l := NewMoodLog(20, 7)
		for i := 0; i < 25; i++ {
			l.Add(happy(t), fmt.Sprintf("checkin-%d", i), "r")
		}
		entries := l.Entries()
		require.Len(t, entries, 20)
		assert.Equal(t, "checkin-24", entries[0].Input)
		assert.Equal(t, "checkin-5", entries[19].Input)
	})

	t.Run("streak counts positive entries within window", func(t *testing.T) {
		l := NewMoodLog(20, 7)
		now := time.Now()

		l.Add(happy(t), "today", "r")
		l.Add(sad(t), "also today", "r")

		// Plant an old positive entry outside the 7-day window
		old := types.MoodEntry{Category: types.MoodPositive, Timestamp: now.Add(-8 * 24 * time.Hour)}
		l.Restore(append(l.Entries(), old))

		assert.Equal(t, 1, l.Streak(now))
	})

	t.Run("stats tally by category", func(t *testing.T) {
		l := NewMoodLog(20, 7)
		l.Add(happy(t), "a", "r")
		l.Add(happy(t), "b", "r")
		l.Add(sad(t), "c", "r")
		l.Add(moodByLabel(t, "Neutral"), "d", "r")

		s := l.Stats()
		assert.Equal(t, MoodStats{Total: 4, Positive: 2, Negative: 1, Neutral: 1}, s)
	})

	t.Run("trend directions", func(t *testing.T) {
		l := NewMoodLog(20, 7)
		assert.Equal(t, "flat", l.Trend(), "empty log is flat")

		l.Add(happy(t), "a", "r")
		assert.Equal(t, "flat", l.Trend(), "single entry is flat")

		l.Add(happy(t), "b", "r")
		l.Add(happy(t), "c", "r")
		assert.Equal(t, "up", l.Trend())

		for i := 0; i < 5; i++ {
			l.Add(sad(t), fmt.Sprintf("s%d", i), "r")
		}
		assert.Equal(t, "down", l.Trend())
	})

	t.Run("restore truncates to cap", func(t *testing.T) {
		l := NewMoodLog(3, 7)
		var entries []types.MoodEntry
		for i := 0; i < 5; i++ {
			entries = append(entries, types.MoodEntry{Input: fmt.Sprintf("e%d", i)})
		}
		l.Restore(entries)
		assert.Equal(t, 3, l.Len())
	})

	t.Run("export snapshot", func(t *testing.T) {
		l := NewMoodLog(20, 7)
		l.Add(happy(t), "a", "r")
		now := time.Now()

		exp := l.Export(now)
		assert.Len(t, exp.MoodHistory, 1)
		assert.Equal(t, 1, exp.MoodStreak)
		assert.Equal(t, now, exp.ExportDate)
	})
}

func TestMoodLogCapProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		capacity := rapid.IntRange(1, 30).Draw(t, "cap")
		adds := rapid.IntRange(0, 60).Draw(t, "adds")

		l := NewMoodLog(capacity, 7)
		opt := types.MoodOptions[0]
		for i := 0; i < adds; i++ {
			l.Add(opt, fmt.Sprintf("m%d", i), "r")
		}

		require.LessOrEqual(t, l.Len(), capacity)
		if adds > 0 {
			// Newest entry always survives
			require.Equal(t, fmt.Sprintf("m%d", adds-1), l.Entries()[0].Input)
		}
	})
}

func TestJournalLog(t *testing.T) {
	t.Run("word count derived from text", func(t *testing.T) {
		l := NewJournalLog(10)
		entry := l.Add("today was a good day", "resp", "Reflective")
		assert.Equal(t, 5, entry.WordCount)
	})

	t.Run("cap evicts oldest", func(t *testing.T) {
		l := NewJournalLog(10)
		for i := 0; i < 12; i++ {
			l.Add(fmt.Sprintf("entry number %d", i), "r", "")
		}
		entries := l.Entries()
		require.Len(t, entries, 10)
		assert.Equal(t, "entry number 11", entries[0].Text)
		assert.Equal(t, "entry number 2", entries[9].Text)
	})

	t.Run("context is oldest to newest", func(t *testing.T) {
		l := NewJournalLog(10)
		l.Add("first entry", "r", "")
		l.Add("second entry", "r", "")
		l.Add("third entry", "r", "")

		ctx := l.Context(2)
		require.Len(t, ctx, 2)
		assert.Equal(t, "second entry", ctx[0].Text)
		assert.Equal(t, "third entry", ctx[1].Text)
	})

	t.Run("context clamps to available entries", func(t *testing.T) {
		l := NewJournalLog(10)
		l.Add("only one", "r", "")
		assert.Len(t, l.Context(5), 1)
	})

	t.Run("total words sums entries", func(t *testing.T) {
		l := NewJournalLog(10)
		l.Add("one two three", "r", "")
		l.Add("four five", "r", "")
		assert.Equal(t, 5, l.TotalWords())
	})

	t.Run("writing streak counts distinct days", func(t *testing.T) {
		l := NewJournalLog(10)
		now := time.Now()
		l.Restore([]types.JournalEntry{
			{Timestamp: now},
			{Timestamp: now.Add(-time.Hour)},                // same day (usually)
			{Timestamp: now.Add(-3 * 24 * time.Hour)},       // different day
			{Timestamp: now.Add(-10 * 24 * time.Hour)},      // outside window
		})
		streak := l.WritingStreak(now)
		assert.GreaterOrEqual(t, streak, 2)
		assert.LessOrEqual(t, streak, 3)
	})

	t.Run("export snapshot", func(t *testing.T) {
		l := NewJournalLog(10)
		l.Add("one two", "r", "")
		now := time.Now()

		exp := l.Export(now)
		assert.Equal(t, 1, exp.TotalEntries)
		assert.Equal(t, 2, exp.TotalWords)
		assert.Len(t, exp.Entries, 1)
	})
}
