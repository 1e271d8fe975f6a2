package assistant

import (
	"regexp"
	"strings"
	"unicode"
)

// commandPrefixes are stripped from the front of an add request, each applied
// once in order. "add task" must precede the bare "add" so the longer prefix
// wins.
var commandPrefixes = []*regexp.Regexp{
	regexp.MustCompile(`^remind me to\s+`),
	regexp.MustCompile(`^add task\s+`),
	regexp.MustCompile(`^add\s+`),
	regexp.MustCompile(`^create task\s+`),
	regexp.MustCompile(`^i need to\s+`),
	regexp.MustCompile(`^i have to\s+`),
	regexp.MustCompile(`^i should\s+`),
	regexp.MustCompile(`^don't forget to\s+`),
	regexp.MustCompile(`^remember to\s+`),
}

// dateReferences are date phrases removed from the task content wherever they
// occur. Date extraction runs over the original text, so stripping here never
// loses the due date.
var dateReferences = []*regexp.Regexp{
	regexp.MustCompile(`\s+on \w+day\b`),
	regexp.MustCompile(`\s+tomorrow\b`),
	regexp.MustCompile(`\s+today\b`),
	regexp.MustCompile(`\s+next \w+\b`),
	regexp.MustCompile(`\s+this \w+\b`),
	regexp.MustCompile(`\s+by end of week\b`),
	regexp.MustCompile(`\s+end of week\b`),
	regexp.MustCompile(`\s+by end of month\b`),
	regexp.MustCompile(`\s+end of month\b`),
	regexp.MustCompile(`\s+in \d+ days?\b`),
	regexp.MustCompile(`\s+on \d{1,2}/\d{1,2}\b`),
}

// ExtractContent derives a task's display text from raw input by lowercasing,
// removing command prefixes and date phrases, and capitalizing the first
// letter of what remains.
func ExtractContent(text string) string {
	cleaned := strings.ToLower(strings.TrimSpace(text))

	for _, pattern := range commandPrefixes {
		cleaned = pattern.ReplaceAllString(cleaned, "")
	}

	for _, pattern := range dateReferences {
		cleaned = pattern.ReplaceAllString(cleaned, "")
	}

	return capitalize(strings.TrimSpace(cleaned))
}

// capitalize upper-cases the first rune only; the input is already lowercased.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
