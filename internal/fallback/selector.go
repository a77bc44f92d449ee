// Package fallback selects canned supportive responses when the
// completion endpoint is unavailable. Keyword buckets are scanned in a
// fixed order so a message matching several emotions always lands in
// the same bucket; randomness only picks within a pool, never a bucket.
package fallback

import (
	"math/rand"
	"strings"

	"mindease/internal/logging"
)

// Selector picks fallback responses. The rand source is injected so
// tests can pin selection.
type Selector struct {
	rng *rand.Rand
}

// New creates a Selector backed by the given source.
func New(src rand.Source) *Selector {
	return &Selector{rng: rand.New(src)}
}

// chatBucket pairs a bucket's trigger keywords with its response.
// Order matters: the first bucket with any keyword hit wins.
type chatBucket struct {
	name     string
	keywords []string
	response string
}

var chatBuckets = []chatBucket{
	{
		name:     "anxiety",
		keywords: []string{"anxious", "anxiety", "worry"},
		response: "I understand you're feeling anxious right now. Let's take three deep breaths together - in for 4, hold for 4, out for 6. You're safe in this moment. 🌿",
	},
	{
		name:     "sad",
		keywords: []string{"sad", "depression", "down"},
		response: "It's completely okay to feel sad, and I'm here with you. These feelings are temporary, and you have the strength to get through this. What's one small comfort you could give yourself right now? 💙",
	},
	{
		name:     "stress",
		keywords: []string{"stress", "overwhelm", "pressure"},
		response: "I can sense you're feeling overwhelmed. Let's focus on just this moment - what's one thing you can let go of right now, even if it's just for today? You don't have to carry everything at once. 🧘‍♀️",
	},
	{
		name:     "happy",
		keywords: []string{"happy", "joy", "excited"},
		response: "I love hearing the joy in your message! This positive energy is beautiful - what's helping you feel so good today? Let's celebrate these wonderful moments. ✨",
	},
	{
		name:     "grateful",
		keywords: []string{"grateful", "thankful", "appreciate"},
		response: "Your gratitude is so inspiring! Focusing on what we're thankful for can really shift our whole perspective. What specific thing made you feel grateful today? 🙏",
	},
}

var chatDefaults = []string{
	"Thank you for sharing with me. Your feelings are completely valid, and it takes courage to open up. What would feel most supportive for you right now? 💜",
	"I hear you, and I want you to know that you're not alone in this. Every step you're taking to care for your mental health matters. How can I best support you today? 🌸",
	"I appreciate you trusting me with your thoughts. Remember that it's perfectly okay to have difficult moments - they're part of being human. What's one gentle thing you could do for yourself? ✨",
	"Your willingness to reach out shows real strength. I'm here to listen and support you through whatever you're experiencing. What's been weighing on your heart? 🤗",
	"Thank you for being open with me. Sometimes just having someone listen can make a difference. What would bring you a moment of peace right now? 🌿",
}

var moodResponses = map[string]string{
	"happy":    "I'm so glad you're feeling happy! 🌟 That positive energy is wonderful - keep embracing these joyful moments.",
	"sad":      "I hear you, and your feelings are completely valid. 💙 Be gentle with yourself today - maybe try a warm cup of tea or a favorite song?",
	"anxious":  "I understand that anxiety can feel overwhelming. 🌸 Let's try three slow, deep breaths together - you're safe right now.",
	"stressed": "Stress can feel so heavy sometimes. 🧘‍♀️ What's one small thing you could let go of today, even if just for now?",
	"grateful": "Gratitude is such beautiful energy! 🙏 I love that you're noticing the good things around you.",
	"angry":    "It's okay to feel angry - your emotions are valid. 💪 Maybe try some quick physical movement to help process these feelings safely?",
	"excited":  "Your excitement is contagious! ✨ I love seeing you so energized - what's got you feeling so positive?",
	"lonely":   "I hear you, and I want you to know you're not alone. 🤗 Even reaching out here shows your strength and courage.",
	"confused": "It's okay to feel uncertain sometimes. 🤔 Confusion often means we're processing something important - be patient with yourself.",
	"hopeful":  "Hope is such a powerful feeling! 🌅 I'm so glad you're feeling optimistic - hold onto that beautiful energy.",
}

const moodDefault = "Thank you for sharing how you're feeling. 💫 Whatever emotions you're experiencing right now are valid and important."

var journalResponses = []string{
	"Thank you for sharing your thoughts with me. 🌼 Your self-reflection shows such wisdom and courage. What stood out to you most while writing this?",
	"I can feel the depth in your words. 💜 Journaling is such a powerful way to process our experiences. How are you feeling after putting these thoughts on paper?",
	"Your honesty and vulnerability in this entry is beautiful. 🌟 Every feeling you've expressed is completely valid. What insight surprised you the most?",
	"I appreciate you opening your heart through your writing. 🌿 Your willingness to explore your inner world shows real strength. What would you like to focus on moving forward?",
	"This journal entry shows such thoughtful reflection. ✨ You're growing with every word you write. What emotion came up most strongly for you today?",
}

var affirmations = []string{
	"You are stronger than you know, and every challenge helps you grow. 🌱",
	"Your journey is unique and valuable. Trust in your ability to navigate this. ✨",
	"You deserve compassion, especially from yourself. Be gentle today. 💙",
	"Every breath is a new beginning. You have the power to create change. 🌟",
	"You are not alone. Your courage to keep going inspires others. 🤗",
	"Your feelings are valid, and your healing matters. Take it one step at a time. 💜",
	"You have survived 100% of your difficult days so far. You've got this. 💪",
	"Your heart is resilient, your spirit is strong, and your future is bright. 🌈",
}

var copingStrategies = map[string]string{
	"anxious":     "Try the 5-4-3-2-1 technique: Name 5 things you see, 4 you touch, 3 you hear, 2 you smell, 1 you taste. 🌿",
	"sad":         "Wrap yourself in a cozy blanket and make a warm drink. Sometimes we need to comfort our inner self. 🫂",
	"stressed":    "Take 5 slow breaths: inhale for 4, hold for 4, exhale for 6. This calms your nervous system. 🧘‍♀️",
	"angry":       "Do 10 jumping jacks or squeeze a pillow tight. Physical movement helps process anger safely. 💪",
	"lonely":      "Reach out to one person today, even with a simple text. Connection heals loneliness. 🤗",
	"overwhelmed": "Write down 3 things on your mind, then choose just 1 to focus on right now. 📝",
}

const copingDefault = "Place your hand on your heart and breathe deeply. Remind yourself: 'This feeling will pass.' 💙"

// Chat returns a contextual fallback for a chat message. The message is
// lowercased and scanned against the buckets in order; no hit picks a
// random default.
func (s *Selector) Chat(message string) string {
	lc := strings.ToLower(message)
	for _, bucket := range chatBuckets {
		for _, kw := range bucket.keywords {
			if strings.Contains(lc, kw) {
				logging.Fallback("chat: bucket=%s keyword=%s", bucket.name, kw)
				return bucket.response
			}
		}
	}
	logging.Fallback("chat: no keyword match, using default pool")
	return chatDefaults[s.rng.Intn(len(chatDefaults))]
}

// Mood returns the fallback for a mood label (case-insensitive).
// Unknown moods get the generic response.
func (s *Selector) Mood(mood string) string {
	if resp, ok := moodResponses[strings.ToLower(mood)]; ok {
		logging.Fallback("mood: matched %q", strings.ToLower(mood))
		return resp
	}
	logging.Fallback("mood: unknown %q, using default", mood)
	return moodDefault
}

// Journal returns a random journal reflection from the pool.
func (s *Selector) Journal() string {
	return journalResponses[s.rng.Intn(len(journalResponses))]
}

// Affirmation returns a random affirmation from the pool.
func (s *Selector) Affirmation() string {
	return affirmations[s.rng.Intn(len(affirmations))]
}

// Coping returns the strategy for an emotion (case-insensitive).
// Unknown emotions get the generic grounding strategy.
func (s *Selector) Coping(emotion string) string {
	if strat, ok := copingStrategies[strings.ToLower(emotion)]; ok {
		return strat
	}
	return copingDefault
}
