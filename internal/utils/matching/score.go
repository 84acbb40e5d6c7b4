package matching

import (
	"fmt"
	"strings"
	"time"

	"github.com/evtfin/eventfin_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Sub-score maxima and confidence thresholds. Date and price dominate the
// total; the free-text name signal only ever tips the balance.
const (
	MaxDateScore  = 40
	MaxPriceScore = 40
	MaxNameScore  = 20

	HighThreshold   = 80
	MediumThreshold = 60

	nameScorePerToken = 10
)

// Config carries the tunable parameters of the scoring engine. The day
// window and the decay shape are not fixed by observed product behavior, so
// they are configuration rather than constants.
type Config struct {
	// DateWindowDays is the day difference at and beyond which the date
	// score drops to zero. The score decays linearly from the exact-day
	// maximum down to zero across the window.
	DateWindowDays int
	// PriceTolerance is the relative tolerance under which a non-exact
	// amount still earns partial price credit (0.01 = 1%).
	PriceTolerance float64
	// MaxGroupSize bounds the integer multiples of a price tier considered
	// for group payments.
	MaxGroupSize int
}

// DefaultConfig returns the engine defaults: a 30-day window, 1% amount
// tolerance and group payments of up to 10 attendees.
func DefaultConfig() Config {
	return Config{
		DateWindowDays: 30,
		PriceTolerance: 0.01,
		MaxGroupSize:   10,
	}
}

// dayDiff returns the absolute whole-day difference between two timestamps.
func dayDiff(a, b time.Time) int {
	ta := time.Date(a.UTC().Year(), a.UTC().Month(), a.UTC().Day(), 0, 0, 0, 0, time.UTC)
	tb := time.Date(b.UTC().Year(), b.UTC().Month(), b.UTC().Day(), 0, 0, 0, 0, time.UTC)
	d := int(ta.Sub(tb).Hours() / 24)
	if d < 0 {
		d = -d
	}
	return d
}

// DateScore scores date proximity: full points on the exact day, linear
// decay to zero at the configured window.
func (c Config) DateScore(txnDate, eventDate time.Time) int {
	window := c.DateWindowDays
	if window <= 0 {
		window = DefaultConfig().DateWindowDays
	}
	diff := dayDiff(txnDate, eventDate)
	if diff >= window {
		return 0
	}
	return MaxDateScore * (window - diff) / window
}

// PriceScore scores amount plausibility against the event's price tiers.
// An exact hit on a tier, or on an integer multiple of a tier (group
// payment), earns full points; an amount within the relative tolerance of
// such a value earns half; anything else earns nothing.
func (c Config) PriceScore(amount decimal.Decimal, prices domain.PriceTable) int {
	tiers := prices.Tiers()
	if len(tiers) == 0 || !amount.IsPositive() {
		return 0
	}
	maxGroup := c.MaxGroupSize
	if maxGroup < 1 {
		maxGroup = 1
	}
	tolerance := decimal.NewFromFloat(c.PriceTolerance)

	near := false
	for _, tier := range tiers {
		for n := 1; n <= maxGroup; n++ {
			expected := tier.Mul(decimal.NewFromInt(int64(n)))
			if AmountsEqual(amount, expected) {
				return MaxPriceScore
			}
			if tolerance.IsPositive() {
				delta := amount.Sub(expected).Abs()
				if delta.LessThanOrEqual(expected.Mul(tolerance)) {
					near = true
				}
			}
		}
	}
	if near {
		return MaxPriceScore / 2
	}
	return 0
}

// NameScore scores keyword overlap between the bank description and the
// candidate's labels. Each distinct shared token is worth a fixed amount,
// capped at the sub-score maximum; frequency is ignored.
func NameScore(description string, labels ...string) (int, []string) {
	descTokens := Tokenize(description)
	labelTokens := Tokenize(strings.Join(labels, " "))
	shared := Overlap(descTokens, labelTokens)
	score := len(shared) * nameScorePerToken
	if score > MaxNameScore {
		score = MaxNameScore
	}
	return score, shared
}

// TierFor buckets a total score into a confidence tier.
func TierFor(total int) domain.ConfidenceTier {
	switch {
	case total >= HighThreshold:
		return domain.ConfidenceHigh
	case total >= MediumThreshold:
		return domain.ConfidenceMedium
	default:
		return domain.ConfidenceNone
	}
}

// ScoreEvent scores one bank transaction against one candidate event.
// Scoring never fails; implausible candidates simply score low.
func (c Config) ScoreEvent(txn domain.BankTransaction, event domain.Event) domain.MatchResult {
	dateScore := c.DateScore(txn.TransactionDate, event.EventDate)
	priceScore := c.PriceScore(txn.Amount, event.Prices)
	nameScore, shared := NameScore(txn.Description, event.Name)

	total := dateScore + priceScore + nameScore
	if total > 100 {
		total = 100
	}
	if total < 0 {
		total = 0
	}

	parts := []string{
		fmt.Sprintf("date %d/%d (%d day(s) apart)", dateScore, MaxDateScore, dayDiff(txn.TransactionDate, event.EventDate)),
		fmt.Sprintf("price %d/%d", priceScore, MaxPriceScore),
	}
	if len(shared) > 0 {
		parts = append(parts, fmt.Sprintf("name %d/%d (shared: %s)", nameScore, MaxNameScore, strings.Join(shared, ", ")))
	} else {
		parts = append(parts, fmt.Sprintf("name %d/%d", nameScore, MaxNameScore))
	}

	return domain.MatchResult{
		BankTransactionID: txn.BankTransactionID,
		EventID:           event.EventID,
		EventName:         event.Name,
		DateScore:         dateScore,
		PriceScore:        priceScore,
		NameScore:         nameScore,
		TotalScore:        total,
		Confidence:        TierFor(total),
		Explanation:       strings.Join(parts, "; "),
	}
}

// BestEventMatch scores txn against every candidate event and returns the
// best candidate clearing the no-match floor (nil if none does) plus,
// separately, the best attempt regardless of the floor so the review UI can
// show the closest candidate. Candidates are evaluated in the given order
// and ties keep the earlier candidate, so results are reproducible for
// identical inputs.
func (c Config) BestEventMatch(txn domain.BankTransaction, events []domain.Event) (best, bestAttempt *domain.MatchResult) {
	for _, event := range events {
		result := c.ScoreEvent(txn, event)
		if bestAttempt == nil || result.TotalScore > bestAttempt.TotalScore {
			r := result
			bestAttempt = &r
		}
	}
	if bestAttempt != nil && bestAttempt.Confidence != domain.ConfidenceNone {
		best = bestAttempt
	}
	return best, bestAttempt
}
