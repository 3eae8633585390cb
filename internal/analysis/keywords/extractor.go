package keywords

import (
	"sort"
	"strings"

	"github.com/Davooood90/rambl/backend/internal/model/insight"
)

const (
	maxKeywords = 12
	minWeight   = 0.5
	minTokenLen = 4
)

// fallbackAccent matches the classic theme accent, used when the caller has
// no active theme to lead the palette with.
const fallbackAccent = "#FF8FA3"

// palette tail cycled after the theme accent.
var paletteTail = []string{"#7EC8E3", "#B4F8C8", "#FBE7C6", "#E0BBE4", "#FFAEBC"}

// stopWords filters common English function words plus fillers typical of
// reflective speech.
var stopWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"i", "me", "my", "myself", "we", "our", "ours", "you", "your",
		"he", "she", "it", "they", "what", "which", "who", "this", "that",
		"these", "those", "am", "is", "are", "was", "were", "be", "been",
		"being", "have", "has", "had", "do", "does", "did", "will", "would",
		"could", "should", "may", "might", "must", "shall", "can", "need",
		"dare", "ought", "used", "a", "an", "the", "and", "but", "if", "or",
		"because", "as", "until", "while", "of", "at", "by", "for", "with",
		"about", "against", "between", "into", "through", "during", "before",
		"after", "above", "below", "to", "from", "up", "down", "in", "out",
		"on", "off", "over", "under", "again", "further", "then", "once",
		"here", "there", "when", "where", "why", "how", "all", "each", "few",
		"more", "most", "other", "some", "such", "no", "nor", "not", "only",
		"own", "same", "so", "than", "too", "very", "just", "dont", "im",
		"its", "really", "like", "get", "got", "going", "go", "know",
		"think", "want", "feel", "feeling", "thing", "things", "lot",
	} {
		stopWords[w] = struct{}{}
	}
}

// Extract derives weighted, colored keywords from the concatenated user
// text of a session. Deterministic: counts ordered descending with ties
// broken by first encounter, weights normalized against the batch maximum
// and floored at minWeight. accent leads the color palette; pass the active
// theme accent or empty for the default.
func Extract(text, accent string) []insight.Keyword {
	if strings.TrimSpace(accent) == "" {
		accent = fallbackAccent
	}

	counts := make(map[string]int)
	order := make([]string, 0, 32)
	for _, raw := range strings.Fields(strings.ToLower(text)) {
		token := clean(raw)
		if len(token) < minTokenLen {
			continue
		}
		if _, stop := stopWords[token]; stop {
			continue
		}
		if _, seen := counts[token]; !seen {
			order = append(order, token)
		}
		counts[token]++
	}

	// Stable sort preserves first-encountered order among equal counts.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > maxKeywords {
		order = order[:maxKeywords]
	}
	if len(order) == 0 {
		return nil
	}

	palette := append([]string{accent}, paletteTail...)
	maxCount := counts[order[0]]
	if maxCount < 1 {
		maxCount = 1
	}

	result := make([]insight.Keyword, 0, len(order))
	for i, token := range order {
		weight := float64(counts[token]) / float64(maxCount)
		if weight < minWeight {
			weight = minWeight
		}
		result = append(result, insight.Keyword{
			Text:   capitalize(token),
			Weight: weight,
			Color:  palette[i%len(palette)],
		})
	}
	return result
}

// clean strips everything outside a-z from an already lowercased token.
func clean(token string) string {
	var b strings.Builder
	for _, r := range token {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func capitalize(token string) string {
	if token == "" {
		return token
	}
	return strings.ToUpper(token[:1]) + token[1:]
}
