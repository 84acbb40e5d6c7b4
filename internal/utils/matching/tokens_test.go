package matching_test

import (
	"testing"

	"github.com/evtfin/eventfin_backend/internal/utils/matching"
	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"simple words", "Ticket ABC sales", []string{"ticket", "abc", "sales"}},
		{"punctuation boundaries", "TXN#2024/annual-dinner", []string{"txn", "2024", "annual", "dinner"}},
		{"drops single runes", "a b cd", []string{"cd"}},
		{"case folding", "TICKET Ticket ticket", []string{"ticket", "ticket", "ticket"}},
		{"cjk runs kept", "春节晚会 ticket", []string{"春节晚会", "ticket"}},
		{"digits kept", "invoice 10023", []string{"invoice", "10023"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matching.Tokenize(tt.input))
		})
	}
}

func TestOverlap(t *testing.T) {
	a := matching.Tokenize("Ticket ABC sales")
	b := matching.Tokenize("ABC ticket payment")

	shared := matching.Overlap(a, b)
	assert.Equal(t, []string{"ticket", "abc"}, shared)
}

func TestOverlapIgnoresFrequency(t *testing.T) {
	a := matching.Tokenize("ticket ticket ticket")
	b := matching.Tokenize("ticket")

	assert.Equal(t, []string{"ticket"}, matching.Overlap(a, b))
}

func TestKeywordsOverlap(t *testing.T) {
	assert.True(t, matching.KeywordsOverlap("Ticket ABC sales", "abc dinner"))
	assert.False(t, matching.KeywordsOverlap("venue deposit", "ticket sales"))
	assert.False(t, matching.KeywordsOverlap("", "anything"))
}
