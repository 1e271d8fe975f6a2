package assistant

import (
	"strings"
	"time"

	"github.com/alee-2021/clear/internal/domain"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// DateParser extracts a due date from natural language text.
//
// Two relative phrases are computed directly because general parsers disagree
// on them: "end of week" is the next Sunday (never today — on a Sunday it
// resolves a full week out), and "end of month" is the last calendar day of
// the current month. Everything else is delegated to a rule-based parser that
// resolves ambiguous phrases forward from the reference instant. Text with no
// recognizable date is a valid outcome, not an error.
type DateParser struct {
	parser *when.Parser
}

// NewDateParser creates a DateParser with the English and common rule sets.
func NewDateParser() *DateParser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)

	return &DateParser{parser: w}
}

// Parse scans text for a date reference relative to now.
// The second return value reports whether a date was found.
func (p *DateParser) Parse(text string, now time.Time) (domain.Date, bool) {
	lowered := strings.ToLower(text)

	if strings.Contains(lowered, "end of week") {
		return endOfWeek(now), true
	}

	if strings.Contains(lowered, "end of month") {
		return endOfMonth(now), true
	}

	result, err := p.parser.Parse(text, now)
	if err != nil || result == nil {
		return domain.Date{}, false
	}

	return domain.DateOf(result.Time), true
}

// endOfWeek returns the upcoming Sunday, a week out when now is Sunday.
func endOfWeek(now time.Time) domain.Date {
	daysUntilSunday := (7 - int(now.Weekday())) % 7
	if daysUntilSunday == 0 {
		daysUntilSunday = 7
	}
	return domain.DateOf(now.AddDate(0, 0, daysUntilSunday))
}

// endOfMonth returns the last calendar day of the current month. December is
// day 31 outright; other months step to the first of the next month and back
// one day.
func endOfMonth(now time.Time) domain.Date {
	if now.Month() == time.December {
		return domain.NewDate(now.Year(), time.December, 31)
	}

	firstOfNext := time.Date(now.Year(), now.Month()+1, 1, 0, 0, 0, 0, now.Location())
	return domain.DateOf(firstOfNext.AddDate(0, 0, -1))
}
