package mood

import "strings"

// Intensity rates how uplifted a session reads on the dashboard's [0,100]
// scale, where NeutralIntensity means nothing tipped either way. Keyword
// hits weigh 3 points a side; exclamation marks nudge the bright side.
func Intensity(userText string) int {
	normalized := strings.ToLower(userText)
	if strings.TrimSpace(normalized) == "" {
		return NeutralIntensity
	}

	bright := 0
	for _, word := range brightWords {
		if strings.Contains(normalized, word) {
			bright += 3
		}
	}
	heavy := 0
	for _, word := range heavyWords {
		if strings.Contains(normalized, word) {
			heavy += 3
		}
	}

	if exclaims := strings.Count(userText, "!"); exclaims > 0 && bright > 0 {
		bright += exclaims
	}

	value := NeutralIntensity + 4*(bright-heavy)
	if value < 0 {
		value = 0
	}
	if value > 100 {
		value = 100
	}
	return value
}

var brightWords = []string{
	"happy", "glad", "great", "good", "grateful", "thankful", "excited",
	"proud", "calm", "relieved", "hopeful", "love", "loved", "amazing",
	"wonderful", "fun", "rested", "peaceful", "accomplished", "better",
}

var heavyWords = []string{
	"sad", "anxious", "anxiety", "stressed", "stress", "overwhelmed",
	"tired", "exhausted", "angry", "frustrated", "lonely", "worried",
	"scared", "afraid", "hopeless", "depressed", "cry", "hurt", "awful",
	"terrible", "worse", "burnout", "drained",
}
