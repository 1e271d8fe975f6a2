package assistant

import (
	"testing"

	"github.com/alee-2021/clear/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchTask(t *testing.T) {
	candidates := []domain.Task{
		{ID: 1, Content: "Buy milk"},
		{ID: 2, Content: "Finish the quarterly report"},
		{ID: 3, Content: "Call mom"},
	}

	tests := []struct {
		name   string
		text   string
		wantID int64
	}{
		{"matches a long content word", "i finished the report", 2},
		{"match is case insensitive", "done with MILK", 1},
		{"first candidate wins", "milk and report are both done", 1},
		{"substring containment is enough", "reporting done", 2},
		{"no match on short words only", "mom is done", 0},
		{"no match on unrelated text", "done with the dishes", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match := MatchTask(candidates, tt.text)
			if tt.wantID == 0 {
				assert.Nil(t, match, "expected no match for %q", tt.text)
				return
			}
			require.NotNil(t, match, "expected a match for %q", tt.text)
			assert.Equal(t, tt.wantID, match.ID)
		})
	}
}

func TestMatchTaskIgnoresShortWords(t *testing.T) {
	// Every content word is three characters or fewer, so nothing can match.
	candidates := []domain.Task{
		{ID: 1, Content: "Do it now"},
	}

	match := MatchTask(candidates, "i did it now, all done")
	assert.Nil(t, match, "words of three characters or fewer must not match")
}

func TestMatchTaskEmptyCandidates(t *testing.T) {
	assert.Nil(t, MatchTask(nil, "done with the report"))
	assert.Nil(t, MatchTask([]domain.Task{}, "done with the report"))
}
