package models

// BudgetTier is the per-day spending bracket picked in the questionnaire.
type BudgetTier string

const (
	TierBudget  BudgetTier = "budget"
	TierMid     BudgetTier = "mid"
	TierLuxury  BudgetTier = "luxury"
	TierPremium BudgetTier = "premium"
)

// DefaultDurationDays is used when the duration answer cannot be parsed.
const DefaultDurationDays = 3

var perDaySpend = map[BudgetTier]int{
	TierBudget:  50,
	TierMid:     100,
	TierLuxury:  200,
	TierPremium: 400,
}

// PerDaySpend returns the daily spend for a tier in currency-agnostic units.
// Unknown tiers fall back to the mid-range spend.
func (t BudgetTier) PerDaySpend() int {
	if spend, ok := perDaySpend[t]; ok {
		return spend
	}
	return perDaySpend[TierMid]
}

// TripPreferences is the normalized questionnaire output. It is read-only
// once produced; the generator and engine never write back into it.
type TripPreferences struct {
	Destination  string     `json:"destination"`
	DurationDays int        `json:"duration_days"`
	BudgetTier   BudgetTier `json:"budget_tier"`
	Vibes        []string   `json:"vibes"`

	// Collected for display and future use; generation does not consume them.
	Pace          int      `json:"pace,omitempty"`
	Interests     []string `json:"interests,omitempty"`
	TravelStyle   string   `json:"travel_style,omitempty"`
	Accommodation string   `json:"accommodation,omitempty"`
}
