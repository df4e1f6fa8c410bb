// Package intent maps free-text user input to structured values: a mood
// label, an event category, an integer, or an email address.
package intent

import (
	"regexp"
	"strings"
)

// MatchMode selects keyword matching semantics.
type MatchMode int

const (
	// MatchSubstring matches a keyword anywhere in the utterance, with no
	// word-boundary checking. This is the default and its false positives
	// are observable behavior ("unhappy" matches the keyword "happy"
	// before the sad entry is ever consulted). Table order is
	// load-bearing.
	MatchSubstring MatchMode = iota

	// MatchWord requires the keyword to appear as a whole word.
	MatchWord
)

// ParseMatchMode maps a config string to a MatchMode, defaulting to
// substring matching.
func ParseMatchMode(s string) MatchMode {
	if s == "word" {
		return MatchWord
	}
	return MatchSubstring
}

// keywordEntry pairs a label with its ordered trigger keywords. The tables
// are ordered lists, not maps: some keywords legitimately belong to several
// labels and only declaration order disambiguates (first match wins).
type keywordEntry struct {
	label    string
	keywords []string
}

var moodTable = []keywordEntry{
	{"excited", []string{"excited", "pumped", "thrilled", "can't wait", "hyped"}},
	{"happy", []string{"happy", "great", "good", "wonderful", "fantastic", "amazing"}},
	{"relaxed", []string{"relaxed", "chill", "calm", "peaceful", "easy"}},
	{"stressed", []string{"stressed", "anxious", "worried", "overwhelmed", "pressure"}},
	{"sad", []string{"sad", "down", "upset", "unhappy", "depressed", "low"}},
	{"bored", []string{"bored", "boring", "nothing to do", "dull"}},
	{"curious", []string{"curious", "interested", "wondering", "explore"}},
	{"motivated", []string{"motivated", "inspired", "driven", "ambitious"}},
	{"tired", []string{"tired", "exhausted", "sleepy", "drained", "fatigue"}},
	{"adventurous", []string{"adventurous", "adventure", "explore", "new things"}},
	{"romantic", []string{"romantic", "love", "date", "partner"}},
	{"playful", []string{"playful", "fun", "games", "play"}},
	{"creative", []string{"creative", "art", "create", "artistic"}},
	{"peaceful", []string{"peaceful", "zen", "tranquil", "serene"}},
	{"nostalgic", []string{"nostalgic", "memories", "old times", "remember"}},
	{"ambitious", []string{"ambitious", "goals", "success", "career"}},
}

var categoryTable = []keywordEntry{
	{"technology", []string{"tech", "technology", "ai", "coding", "software", "computer"}},
	{"music", []string{"music", "concert", "live", "band", "singing", "acoustic"}},
	{"business", []string{"business", "startup", "entrepreneur", "pitch", "networking"}},
	{"wellness", []string{"wellness", "meditation", "yoga", "mindfulness", "health"}},
	{"gaming", []string{"gaming", "games", "esports", "arcade", "video games"}},
	{"food", []string{"food", "eating", "cuisine", "foodie", "restaurant", "taste"}},
	{"art", []string{"art", "exhibition", "gallery", "creative", "painting"}},
	{"comedy", []string{"comedy", "funny", "laugh", "standup", "jokes"}},
}

// numberWord pairs a number word with its value, in lookup order. Digits
// found anywhere in the text always take priority over this table. The "a"
// entry is deliberately last: "grab me a ticket" means one, at the cost of
// matching any utterance containing the letter.
type numberWord struct {
	word  string
	value int
}

var numberWords = []numberWord{
	{"one", 1}, {"two", 2}, {"three", 3}, {"four", 4}, {"five", 5},
	{"six", 6}, {"seven", 7}, {"eight", 8}, {"nine", 9}, {"ten", 10},
	{"first", 1}, {"second", 2}, {"third", 3}, {"fourth", 4}, {"fifth", 5},
	{"sixth", 6}, {"seventh", 7}, {"eighth", 8}, {"ninth", 9}, {"tenth", 10},
	{"couple", 2}, {"pair", 2}, {"a", 1},
}

var (
	digitsPattern = regexp.MustCompile(`[0-9]+`)
	emailPattern  = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
)

// DetectMood returns the first mood in table order with a matching keyword.
func DetectMood(text string, mode MatchMode) (string, bool) {
	return detect(moodTable, text, mode)
}

// DetectCategory returns the first category in table order with a matching
// keyword.
func DetectCategory(text string, mode MatchMode) (string, bool) {
	return detect(categoryTable, text, mode)
}

func detect(table []keywordEntry, text string, mode MatchMode) (string, bool) {
	lower := strings.ToLower(text)
	for _, entry := range table {
		for _, keyword := range entry.keywords {
			if matches(lower, keyword, mode) {
				return entry.label, true
			}
		}
	}
	return "", false
}

func matches(lower, keyword string, mode MatchMode) bool {
	if mode == MatchWord {
		re := regexp.MustCompile(`(^|[^a-z0-9])` + regexp.QuoteMeta(keyword) + `($|[^a-z0-9])`)
		return re.MatchString(lower)
	}
	return strings.Contains(lower, keyword)
}

// ExtractNumber returns the first contiguous run of decimal digits in the
// text, or failing that the first number-word table entry appearing as a
// substring.
func ExtractNumber(text string) (int, bool) {
	if digits := digitsPattern.FindString(text); digits != "" {
		n := 0
		for _, r := range digits {
			n = n*10 + int(r-'0')
			if n > 1_000_000 {
				// Long digit runs saturate; callers only range-check
				// small values anyway.
				return n, true
			}
		}
		return n, true
	}

	lower := strings.ToLower(text)
	for _, nw := range numberWords {
		if strings.Contains(lower, nw.word) {
			return nw.value, true
		}
	}
	return 0, false
}

// ExtractEmail returns the first email-shaped substring in the text.
func ExtractEmail(text string) (string, bool) {
	if m := emailPattern.FindString(text); m != "" {
		return m, true
	}
	return "", false
}
