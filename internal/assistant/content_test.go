package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestExtractContent verifies command prefixes and date phrases are stripped
// and the remainder is capitalized.
func TestExtractContent(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"remind me to prefix", "remind me to buy milk", "Buy milk"},
		{"add task prefix", "add task finish report", "Finish report"},
		{"bare add prefix", "add water the plants", "Water the plants"},
		{"create task prefix", "create task pay rent", "Pay rent"},
		{"i need to prefix", "i need to call mom", "Call mom"},
		{"i have to prefix", "i have to walk the dog", "Walk the dog"},
		{"i should prefix", "i should clean the garage", "Clean the garage"},
		{"don't forget to prefix", "don't forget to feed the cat", "Feed the cat"},
		{"remember to prefix", "remember to send the invoice", "Send the invoice"},
		{"tomorrow stripped", "remind me to buy milk tomorrow", "Buy milk"},
		{"today stripped", "call the bank today", "Call the bank"},
		{"weekday stripped", "submit taxes on friday", "Submit taxes"},
		{"next word stripped", "book flights next week", "Book flights"},
		{"this word stripped", "mow the lawn this weekend", "Mow the lawn"},
		{"by end of week stripped", "add task finish report by end of week", "Finish report"},
		{"end of month stripped", "pay rent end of month", "Pay rent"},
		{"in n days stripped", "renew passport in 30 days", "Renew passport"},
		{"numeric date stripped", "dentist appointment on 6/15", "Dentist appointment"},
		{"uppercase input", "REMIND ME TO BUY MILK", "Buy milk"},
		{"no prefix no date", "buy milk", "Buy milk"},
		{"bare prefix word stays put", "add", "Add"},
		{"short remainder survives", "add xyz", "Xyz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractContent(tt.text))
		})
	}
}

// TestExtractContentAppliesPrefixesInOrder verifies that "add task" is
// stripped as a unit rather than leaving "task" behind.
func TestExtractContentAppliesPrefixesInOrder(t *testing.T) {
	assert.Equal(t, "Finish report", ExtractContent("add task finish report"))
	assert.NotEqual(t, "Task finish report", ExtractContent("add task finish report"))
}
