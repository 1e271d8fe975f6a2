package assistant

import (
	"strings"

	"github.com/alee-2021/clear/internal/domain"
)

// minMatchWordLength excludes short filler words ("the", "to", "for") from
// fuzzy matching.
const minMatchWordLength = 3

// MatchTask locates the task a complete/delete request refers to: the first
// candidate, in the given order, any of whose content words longer than three
// characters appears in the input text. First match wins — there is no
// best-match scoring, and callers must not reorder candidates expecting one.
// Returns nil when nothing matches.
func MatchTask(candidates []domain.Task, text string) *domain.Task {
	normalized := strings.ToLower(text)

	for i := range candidates {
		words := strings.Fields(strings.ToLower(candidates[i].Content))
		for _, word := range words {
			if len(word) > minMatchWordLength && strings.Contains(normalized, word) {
				return &candidates[i]
			}
		}
	}

	return nil
}
