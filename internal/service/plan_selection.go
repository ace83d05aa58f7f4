package service

import (
	"math/rand/v2"
)

// recentQuoteWindow is how many recent plans a new quote should not repeat.
const recentQuoteWindow = 14

var motivationalQuotes = []string{
	"A fool with a plan can achieve more than a genius without a plan.",
	"The only way to do great work is to love what you do. - Steve Jobs",
	"Success is the sum of small efforts repeated day in and day out. - Robert Collier",
	"The future belongs to those who believe in the beauty of their dreams. - Eleanor Roosevelt",
	"It does not matter how slowly you go as long as you do not stop. - Confucius",
	"Believe you can and you're halfway there. - Theodore Roosevelt",
	"Don't watch the clock; do what it does. Keep going. - Sam Levenson",
	"The only impossible journey is the one you never begin. - Tony Robbins",
	"You are never too old to set another goal or to dream a new dream. - C.S. Lewis",
	"The way to get started is to quit talking and begin doing. - Walt Disney",
	"Dream big and dare to fail. - Norman Vaughan",
	"Hard work beats talent when talent doesn't work hard. - Tim Notke",
	"The expert in anything was once a beginner. - Helen Hayes",
	"Your limitation, it's only your imagination.",
	"Great things never come from comfort zones.",
	"Push yourself, because no one else is going to do it for you.",
	"Dream it. Wish it. Do it.",
	"Success doesn't just find you. You have to go out and get it.",
	"The harder you work for something, the greater you'll feel when you achieve it.",
	"Dream bigger. Do bigger.",
	"Don't stop when you're tired. Stop when you're done.",
	"Wake up with determination. Go to bed with satisfaction.",
	"Do something today that your future self will thank you for.",
	"Little things make big things happen.",
	"It's going to be hard, but hard does not mean impossible.",
	"Don't wait for opportunity. Create it.",
	"Sometimes we're tested not to show our weaknesses, but to discover our strengths.",
	"The key to success is to focus on goals, not obstacles.",
	"Dream it. Believe it. Build it.",
	"If the plan doesn't work, change the plan, but never the goal.",
	"What lies behind us and what lies before us are tiny matters compared to what lies within us. - Ralph Waldo Emerson",
	"The only person you are destined to become is the person you decide to be. - Ralph Waldo Emerson",
}

// pickQuote returns a random quote not in recent. Once every quote has been
// used recently it picks from the whole list again.
func pickQuote(recent []string, intn func(int) int) string {
	used := make(map[string]bool, len(recent))
	for _, q := range recent {
		used[q] = true
	}
	pool := make([]string, 0, len(motivationalQuotes))
	for _, q := range motivationalQuotes {
		if !used[q] {
			pool = append(pool, q)
		}
	}
	if len(pool) == 0 {
		pool = motivationalQuotes
	}
	return pool[intn(len(pool))]
}

func defaultIntN(n int) int {
	return rand.IntN(n)
}

// planSeed hashes "<dateKey>_<subject>" with the 31-multiplier string hash
// in 32-bit signed arithmetic and returns its magnitude.
func planSeed(dateKey, subject string) int64 {
	var h int32
	for _, c := range utf16Units(dateKey + "_" + subject) {
		h = (h << 5) - h + int32(c)
	}
	seed := int64(h)
	if seed < 0 {
		seed = -seed
	}
	return seed
}

func utf16Units(s string) []uint16 {
	units := make([]uint16, 0, len(s))
	for _, r := range s {
		if r >= 0x10000 {
			r -= 0x10000
			units = append(units, uint16(0xD800+(r>>10)), uint16(0xDC00+(r&0x3FF)))
			continue
		}
		units = append(units, uint16(r))
	}
	return units
}

// seededShuffle returns a permutation of ids driven by a linear
// congruential generator, so the same seed always yields the same order.
func seededShuffle(ids []string, seed int64) []string {
	out := append([]string(nil), ids...)
	rng := seed
	for i := len(out) - 1; i > 0; i-- {
		rng = (rng*9301 + 49297) % 233280
		j := int(float64(rng) / 233280 * float64(i+1))
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// selectPlanQuestions picks up to limit ids for the day's plan.
func selectPlanQuestions(ids []string, dateKey, subject string, limit int) []string {
	shuffled := seededShuffle(ids, planSeed(dateKey, subject))
	if len(shuffled) > limit {
		shuffled = shuffled[:limit]
	}
	return shuffled
}

// capQuestionIDs keeps every answered id, then fills up to limit from each
// pool in turn, skipping ids already taken.
func capQuestionIDs(answered []string, limit int, pools ...[]string) []string {
	seen := make(map[string]bool)
	out := make([]string, 0, limit)
	for _, id := range answered {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	for _, pool := range pools {
		for _, id := range pool {
			if len(out) >= limit {
				return out
			}
			if !seen[id] {
				seen[id] = true
				out = append(out, id)
			}
		}
	}
	return out
}

// unionIDs appends the ids of extra that base does not already hold.
func unionIDs(base, extra []string) []string {
	seen := make(map[string]bool, len(base)+len(extra))
	out := make([]string, 0, len(base)+len(extra))
	for _, list := range [][]string{base, extra} {
		for _, id := range list {
			if !seen[id] {
				seen[id] = true
				out = append(out, id)
			}
		}
	}
	return out
}
