// Package history holds the bounded in-memory logs behind each feature:
// the chat transcript, the mood check-in log, and the journal. Mood and
// journal logs are newest-first and capped; adding past the cap silently
// drops the oldest entry. None of the containers are safe for concurrent
// use; each TUI owns its log from a single goroutine.
package history

import (
	"time"

	"github.com/google/uuid"

	"mindease/internal/types"
)

// Conversation is the chronological chat transcript, oldest first.
type Conversation struct {
	messages []types.ConversationMessage
}

// NewConversation returns an empty transcript.
func NewConversation() *Conversation {
	return &Conversation{}
}

// Add appends a message and returns it with ID and timestamp filled.
func (c *Conversation) Add(role types.Role, text string) types.ConversationMessage {
	msg := types.ConversationMessage{
		ID:        uuid.NewString(),
		Role:      role,
		Text:      text,
		Timestamp: time.Now(),
	}
	c.messages = append(c.messages, msg)
	return msg
}

// All returns the transcript oldest first. The slice is shared; callers
// must not mutate it.
func (c *Conversation) All() []types.ConversationMessage {
	return c.messages
}

// Len returns the number of messages.
func (c *Conversation) Len() int {
	return len(c.messages)
}

// MoodLog is the capped mood check-in log, newest first.
type MoodLog struct {
	entries    []types.MoodEntry
	cap        int
	streakDays int
}

// NewMoodLog creates a log retaining at most cap entries, with streaks
// computed over the trailing streakDays days.
func NewMoodLog(cap, streakDays int) *MoodLog {
	return &MoodLog{cap: cap, streakDays: streakDays}
}

// Add prepends a check-in, evicting the oldest entry when full, and
// returns the stored entry.
func (l *MoodLog) Add(mood types.MoodOption, input, response string) types.MoodEntry {
	entry := types.MoodEntry{
		ID:        uuid.NewString(),
		MoodLabel: mood.Label,
		Emoji:     mood.Emoji,
		Category:  mood.Category,
		Input:     input,
		Response:  response,
		Timestamp: time.Now(),
	}
	l.insert(entry)
	return entry
}

func (l *MoodLog) insert(entry types.MoodEntry) {
	keep := l.entries
	if len(keep) > l.cap-1 {
		keep = keep[:l.cap-1]
	}
	l.entries = append([]types.MoodEntry{entry}, keep...)
}

// Restore replaces the log contents from a persisted snapshot.
// Entries beyond the cap are discarded.
func (l *MoodLog) Restore(entries []types.MoodEntry) {
	if len(entries) > l.cap {
		entries = entries[:l.cap]
	}
	l.entries = append([]types.MoodEntry(nil), entries...)
}

// Entries returns the log newest first.
func (l *MoodLog) Entries() []types.MoodEntry {
	return l.entries
}

// Len returns the number of retained entries.
func (l *MoodLog) Len() int {
	return len(l.entries)
}

// Streak counts positive check-ins within the streak window ending now.
func (l *MoodLog) Streak(now time.Time) int {
	cutoff := now.Add(-time.Duration(l.streakDays) * 24 * time.Hour)
	count := 0
	for _, e := range l.entries {
		if e.Category == types.MoodPositive && !e.Timestamp.Before(cutoff) {
			count++
		}
	}
	return count
}

// MoodStats summarizes the retained entries by category.
type MoodStats struct {
	Total    int `json:"total"`
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

// Stats tallies the retained entries.
func (l *MoodLog) Stats() MoodStats {
	s := MoodStats{Total: len(l.entries)}
	for _, e := range l.entries {
		switch e.Category {
		case types.MoodPositive:
			s.Positive++
		case types.MoodNegative:
			s.Negative++
		default:
			s.Neutral++
		}
	}
	return s
}

// Trend reports a coarse direction over the five newest entries:
// "up" with 3+ positive, "down" with 1 or fewer, otherwise "flat".
// Fewer than two entries is always "flat".
func (l *MoodLog) Trend() string {
	if len(l.entries) < 2 {
		return "flat"
	}
	recent := l.entries
	if len(recent) > 5 {
		recent = recent[:5]
	}
	positive := 0
	for _, e := range recent {
		if e.Category == types.MoodPositive {
			positive++
		}
	}
	switch {
	case positive >= 3:
		return "up"
	case positive <= 1:
		return "down"
	default:
		return "flat"
	}
}

// MoodExport is the serializable snapshot written by the export command.
type MoodExport struct {
	MoodHistory []types.MoodEntry `json:"moodHistory"`
	MoodStreak  int               `json:"moodStreak"`
	ExportDate  time.Time         `json:"exportDate"`
}

// Export captures the log for serialization.
func (l *MoodLog) Export(now time.Time) MoodExport {
	return MoodExport{
		MoodHistory: l.entries,
		MoodStreak:  l.Streak(now),
		ExportDate:  now,
	}
}

// JournalLog is the capped journal, newest first.
type JournalLog struct {
	entries []types.JournalEntry
	cap     int
}

// NewJournalLog creates a journal retaining at most cap entries.
func NewJournalLog(cap int) *JournalLog {
	return &JournalLog{cap: cap}
}

// Add prepends an entry, evicting the oldest when full. Word count is
// derived from the text.
func (l *JournalLog) Add(text, response, emotion string) types.JournalEntry {
	entry := types.JournalEntry{
		ID:        uuid.NewString(),
		Text:      text,
		Response:  response,
		WordCount: types.CountWords(text),
		Emotion:   emotion,
		Timestamp: time.Now(),
	}
	keep := l.entries
	if len(keep) > l.cap-1 {
		keep = keep[:l.cap-1]
	}
	l.entries = append([]types.JournalEntry{entry}, keep...)
	return entry
}

// Restore replaces the journal contents from a persisted snapshot.
func (l *JournalLog) Restore(entries []types.JournalEntry) {
	if len(entries) > l.cap {
		entries = entries[:l.cap]
	}
	l.entries = append([]types.JournalEntry(nil), entries...)
}

// Entries returns the journal newest first.
func (l *JournalLog) Entries() []types.JournalEntry {
	return l.entries
}

// Len returns the number of retained entries.
func (l *JournalLog) Len() int {
	return len(l.entries)
}

// Context returns up to n of the newest entries in oldest-to-newest
// order, the shape prompt composition expects.
func (l *JournalLog) Context(n int) []types.JournalEntry {
	if n > len(l.entries) {
		n = len(l.entries)
	}
	out := make([]types.JournalEntry, n)
	for i := 0; i < n; i++ {
		out[i] = l.entries[n-1-i]
	}
	return out
}

// TotalWords sums the word counts of retained entries.
func (l *JournalLog) TotalWords() int {
	total := 0
	for _, e := range l.entries {
		total += e.WordCount
	}
	return total
}

// JournalExport is the serializable snapshot written by the export command.
type JournalExport struct {
	Entries      []types.JournalEntry `json:"entries"`
	TotalEntries int                  `json:"totalEntries"`
	TotalWords   int                  `json:"totalWords"`
	Streak       int                  `json:"streak"`
	ExportDate   time.Time            `json:"exportDate"`
}

// Export captures the journal for serialization. Streak counts distinct
// days with at least one entry in the trailing seven days.
func (l *JournalLog) Export(now time.Time) JournalExport {
	return JournalExport{
		Entries:      l.entries,
		TotalEntries: len(l.entries),
		TotalWords:   l.TotalWords(),
		Streak:       l.WritingStreak(now),
		ExportDate:   now,
	}
}

// WritingStreak counts distinct days with at least one entry in the
// trailing seven days.
func (l *JournalLog) WritingStreak(now time.Time) int {
	cutoff := now.Add(-7 * 24 * time.Hour)
	days := make(map[string]bool)
	for _, e := range l.entries {
		if !e.Timestamp.Before(cutoff) {
			days[e.Timestamp.Format("2006-01-02")] = true
		}
	}
	return len(days)
}
