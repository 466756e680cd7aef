package blogs

import (
	"regexp"
	"strings"

	"github.com/wanderplan/go-travel-planner/internal/types"
)

// interestKeywords maps interest tags to the vocabulary that marks a
// sentence as relevant to them.
var interestKeywords = map[string][]string{
	"outdoor":            {"hiking", "trail", "nature", "park", "beach", "mountain", "adventure", "kayak", "surf"},
	"museums":            {"museum", "gallery", "art", "exhibit", "collection", "cultural", "history"},
	"theme parks":        {"theme park", "amusement", "rides", "roller coaster", "disney", "universal"},
	"scenic drives":      {"scenic drive", "road trip", "highway", "coastal drive", "mountain road"},
	"beaches":            {"beach", "shore", "coast", "sand", "swimming", "snorkel", "dive"},
	"historic landmarks": {"historic", "monument", "landmark", "castle", "cathedral", "ancient"},
	"family friendly":    {"family", "kids", "children", "playground", "zoo", "aquarium"},
	"dining hot spots":   {"restaurant", "food", "dining", "cuisine", "local food", "street food"},
	"solo female":        {"safe", "safety", "solo travel", "women", "female", "security"},
}

var (
	sentenceSplitRe = regexp.MustCompile(`[.!?]+`)
	activityRe      = regexp.MustCompile(`(?i)(visit|go to|check out|explore|try|experience)\s+([^,.]{10,50})`)
	tipRe           = regexp.MustCompile(`(?i)(?:pro tip|tip|advice|important|note|remember):?\s*([^.!?]{20,150})`)

	durationRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\d+\s*hours?`),
		regexp.MustCompile(`(?i)\d+\s*days?`),
		regexp.MustCompile(`(?i)half\s+day`),
		regexp.MustCompile(`(?i)full\s+day`),
	}
	costRes = []*regexp.Regexp{
		regexp.MustCompile(`\$\d+(?:\.\d{2})?`),
		regexp.MustCompile(`(?i)\d+\s*dollars?`),
		regexp.MustCompile(`(?i)free`),
		regexp.MustCompile(`(?i)no cost`),
	}
)

const (
	maxActivities = 20
	maxTips       = 8
)

// extractActivities pulls interest-relevant activity mentions out of
// article text.
func extractActivities(article types.BlogArticle, interests []string) []types.BlogActivity {
	var activities []types.BlogActivity
	seen := map[string]bool{}

	for _, sentence := range sentenceSplitRe.Split(article.Text, -1) {
		sentence = strings.TrimSpace(sentence)
		if len(sentence) <= 20 {
			continue
		}
		lower := strings.ToLower(sentence)
		if !relevantToInterests(lower, interests) {
			continue
		}

		match := activityRe.FindStringSubmatch(lower)
		if match == nil {
			continue
		}
		name := titleCase(strings.TrimSpace(match[2]))
		if seen[name] {
			continue
		}
		seen[name] = true

		context := sentence
		if len(context) > 200 {
			context = context[:200]
		}
		activities = append(activities, types.BlogActivity{
			Name:     name,
			Category: categorize(lower, interests),
			Duration: extractDuration(sentence),
			Cost:     extractCost(sentence),
			Context:  context,
			Source:   article.Source,
		})
		if len(activities) >= maxActivities {
			break
		}
	}
	return activities
}

// extractTips pulls advice snippets out of article text.
func extractTips(text string) []string {
	var tips []string
	for _, match := range tipRe.FindAllStringSubmatch(text, -1) {
		tip := strings.TrimSpace(match[1])
		if len(tip) > 15 {
			tips = append(tips, tip)
		}
		if len(tips) >= maxTips {
			break
		}
	}
	return tips
}

func relevantToInterests(lower string, interests []string) bool {
	for _, interest := range interests {
		keywords, ok := interestKeywords[strings.ToLower(interest)]
		if !ok {
			continue
		}
		for _, keyword := range keywords {
			if strings.Contains(lower, keyword) {
				return true
			}
		}
	}
	return false
}

// categorize picks the first user interest named in the text, then falls
// back on keyword buckets.
func categorize(lower string, interests []string) string {
	for _, interest := range interests {
		if strings.Contains(lower, strings.ToLower(interest)) {
			return interest
		}
	}
	switch {
	case containsAny(lower, "museum", "gallery", "art"):
		return "museums"
	case containsAny(lower, "hike", "trail", "nature"):
		return "outdoor"
	case containsAny(lower, "beach", "coast", "swim"):
		return "beaches"
	case containsAny(lower, "restaurant", "food", "eat"):
		return "dining hot spots"
	default:
		return "general"
	}
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func extractDuration(text string) string {
	for _, re := range durationRes {
		if m := re.FindString(text); m != "" {
			return m
		}
	}
	return ""
}

func extractCost(text string) string {
	for _, re := range costRes {
		if m := re.FindString(text); m != "" {
			return m
		}
	}
	return ""
}
