package assistant

import "strings"

// Intent is the classified purpose of a natural-language request.
type Intent string

// Possible intents. Add is the fallback when no keyword group matches.
const (
	IntentList     Intent = "list"
	IntentComplete Intent = "complete"
	IntentDelete   Intent = "delete"
	IntentAdd      Intent = "add"
)

// intentKeywords is evaluated top-down with first-match-wins semantics, so a
// text containing both a list keyword and a complete keyword resolves to list.
// Membership is a plain substring test ("completed" also matches "complete").
var intentKeywords = []struct {
	intent   Intent
	keywords []string
}{
	{IntentList, []string{"show", "list", "what's", "what do i have", "my tasks", "view"}},
	{IntentComplete, []string{"done", "finished", "complete", "completed"}},
	{IntentDelete, []string{"delete", "remove", "cancel"}},
}

// Classify maps free text to exactly one intent. It never fails: text that
// matches no keyword group is an add request.
func Classify(text string) Intent {
	normalized := strings.ToLower(strings.TrimSpace(text))

	for _, group := range intentKeywords {
		for _, keyword := range group.keywords {
			if strings.Contains(normalized, keyword) {
				return group.intent
			}
		}
	}

	return IntentAdd
}
