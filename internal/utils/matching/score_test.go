package matching_test

import (
	"testing"
	"time"

	"github.com/evtfin/eventfin_backend/internal/core/domain"
	"github.com/evtfin/eventfin_backend/internal/utils/matching"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestDateScore(t *testing.T) {
	cfg := matching.DefaultConfig()
	base := day(2025, time.February, 15)

	tests := []struct {
		name    string
		txnDate time.Time
		want    int
	}{
		{"exact day", base, 40},
		{"one day apart", day(2025, time.February, 16), 38},
		{"fifteen days apart", day(2025, time.March, 2), 20},
		{"at window", base.AddDate(0, 0, 30), 0},
		{"beyond window", base.AddDate(0, 0, 45), 0},
		{"before the event", day(2025, time.February, 12), 36},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cfg.DateScore(tt.txnDate, base))
		})
	}
}

func TestDateScoreConfigurableWindow(t *testing.T) {
	cfg := matching.Config{DateWindowDays: 10, PriceTolerance: 0.01, MaxGroupSize: 10}
	base := day(2025, time.June, 1)

	assert.Equal(t, 40, cfg.DateScore(base, base))
	assert.Equal(t, 20, cfg.DateScore(base.AddDate(0, 0, 5), base))
	assert.Equal(t, 0, cfg.DateScore(base.AddDate(0, 0, 10), base))
}

func TestPriceScore(t *testing.T) {
	cfg := matching.DefaultConfig()
	prices := domain.PriceTable{
		Member:    dec("25.00"),
		Regular:   dec("30.00"),
		EarlyBird: dec("22.50"),
	}

	tests := []struct {
		name   string
		amount string
		want   int
	}{
		{"member tier exact", "25.00", 40},
		{"regular tier exact", "30.00", 40},
		{"group payment x3", "90.00", 40},
		{"group payment of early bird", "45.00", 40},
		{"near miss within tolerance", "30.20", 20},
		{"no tier matches", "47.77", 0},
		{"zero amount", "0", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cfg.PriceScore(dec(tt.amount), prices))
		})
	}
}

func TestPriceScoreEmptyTable(t *testing.T) {
	cfg := matching.DefaultConfig()
	assert.Equal(t, 0, cfg.PriceScore(dec("25.00"), domain.PriceTable{}))
}

func TestNameScore(t *testing.T) {
	score, shared := matching.NameScore("Ticket ABC sales", "ABC Annual Dinner Ticket")
	assert.Equal(t, 20, score)
	assert.ElementsMatch(t, []string{"ticket", "abc"}, shared)

	score, shared = matching.NameScore("transfer ref 889", "Spring Hike")
	assert.Equal(t, 0, score)
	assert.Empty(t, shared)

	// Capped at the sub-score maximum regardless of how many tokens overlap.
	score, _ = matching.NameScore("annual dinner gala night", "annual dinner gala night")
	assert.Equal(t, 20, score)
}

func TestScoreBounds(t *testing.T) {
	cfg := matching.DefaultConfig()
	event := domain.Event{
		EventID:   "ev-1",
		Name:      "Annual Dinner",
		EventDate: day(2025, time.February, 15),
		Prices:    domain.PriceTable{Regular: dec("30.00")},
	}
	txns := []domain.BankTransaction{
		{BankTransactionID: "b1", TransactionDate: day(2025, time.February, 15), Amount: dec("30.00"), Description: "Annual dinner ticket"},
		{BankTransactionID: "b2", TransactionDate: day(2020, time.January, 1), Amount: dec("9.99"), Description: ""},
		{BankTransactionID: "b3", TransactionDate: day(2025, time.February, 20), Amount: dec("60.00"), Description: "dinner x2"},
	}

	for _, txn := range txns {
		result := cfg.ScoreEvent(txn, event)
		assert.GreaterOrEqual(t, result.DateScore, 0)
		assert.LessOrEqual(t, result.DateScore, matching.MaxDateScore)
		assert.GreaterOrEqual(t, result.PriceScore, 0)
		assert.LessOrEqual(t, result.PriceScore, matching.MaxPriceScore)
		assert.GreaterOrEqual(t, result.NameScore, 0)
		assert.LessOrEqual(t, result.NameScore, matching.MaxNameScore)
		assert.GreaterOrEqual(t, result.TotalScore, 0)
		assert.LessOrEqual(t, result.TotalScore, 100)
	}
}

func TestScoreEventConfidenceTiers(t *testing.T) {
	cfg := matching.DefaultConfig()
	event := domain.Event{
		EventID:   "ev-1",
		Name:      "Annual Dinner",
		EventDate: day(2025, time.February, 15),
		Prices:    domain.PriceTable{Regular: dec("30.00")},
	}

	// Exact date + exact price + name overlap: high confidence.
	high := cfg.ScoreEvent(domain.BankTransaction{
		TransactionDate: day(2025, time.February, 15),
		Amount:          dec("30.00"),
		Description:     "annual dinner payment",
	}, event)
	assert.Equal(t, domain.ConfidenceHigh, high.Confidence)

	// Price match and near date, no name signal: medium confidence.
	medium := cfg.ScoreEvent(domain.BankTransaction{
		TransactionDate: day(2025, time.February, 20),
		Amount:          dec("30.00"),
		Description:     "transfer 8839",
	}, event)
	assert.Equal(t, domain.ConfidenceMedium, medium.Confidence)

	// Nothing lines up: no match.
	none := cfg.ScoreEvent(domain.BankTransaction{
		TransactionDate: day(2024, time.June, 1),
		Amount:          dec("7.13"),
		Description:     "groceries",
	}, event)
	assert.Equal(t, domain.ConfidenceNone, none.Confidence)
}

func TestBestEventMatch(t *testing.T) {
	cfg := matching.DefaultConfig()
	events := []domain.Event{
		{EventID: "far", Name: "Spring Hike", EventDate: day(2025, time.May, 1), Prices: domain.PriceTable{Regular: dec("10.00")}},
		{EventID: "close", Name: "Annual Dinner", EventDate: day(2025, time.February, 15), Prices: domain.PriceTable{Regular: dec("30.00")}},
	}
	txn := domain.BankTransaction{
		BankTransactionID: "b1",
		TransactionDate:   day(2025, time.February, 15),
		Amount:            dec("30.00"),
		Description:       "annual dinner ticket",
	}

	best, attempt := cfg.BestEventMatch(txn, events)
	require.NotNil(t, best)
	require.NotNil(t, attempt)
	assert.Equal(t, "close", best.EventID)
	assert.Equal(t, best, attempt)
}

func TestBestEventMatchUnderFloor(t *testing.T) {
	cfg := matching.DefaultConfig()
	events := []domain.Event{
		{EventID: "only", Name: "Spring Hike", EventDate: day(2025, time.May, 1), Prices: domain.PriceTable{Regular: dec("10.00")}},
	}
	txn := domain.BankTransaction{
		BankTransactionID: "b1",
		TransactionDate:   day(2024, time.January, 1),
		Amount:            dec("999.99"),
		Description:       "unrelated",
	}

	best, attempt := cfg.BestEventMatch(txn, events)
	assert.Nil(t, best)
	require.NotNil(t, attempt)
	assert.Equal(t, "only", attempt.EventID)
	assert.Equal(t, domain.ConfidenceNone, attempt.Confidence)
}

func TestBestEventMatchNoCandidates(t *testing.T) {
	cfg := matching.DefaultConfig()
	best, attempt := cfg.BestEventMatch(domain.BankTransaction{}, nil)
	assert.Nil(t, best)
	assert.Nil(t, attempt)
}
