package generator

import (
	"errors"
	"strings"
	"testing"

	"github.com/planora/planora/internal/catalog"
	"github.com/planora/planora/internal/models"
)

func tokyoPrefs() models.TripPreferences {
	return models.TripPreferences{
		Destination:  "Tokyo",
		DurationDays: 2,
		BudgetTier:   models.TierMid,
		Vibes:        []string{"adventure-seeker"},
	}
}

func TestGenerate_StructuralInvariants(t *testing.T) {
	prefs := models.TripPreferences{
		Destination:  "Lisbon",
		DurationDays: 5,
		BudgetTier:   models.TierLuxury,
		Vibes:        []string{"bougie-foodie", "culture-vulture"},
	}

	it, err := NewSeeded(1).Generate(prefs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(it.Days) != prefs.DurationDays {
		t.Errorf("got %d days, want %d", len(it.Days), prefs.DurationDays)
	}
	if want := prefs.BudgetTier.PerDaySpend() * prefs.DurationDays; it.TotalBudget != want {
		t.Errorf("got total budget %d, want %d", it.TotalBudget, want)
	}
	if it.Duration != "5 days" {
		t.Errorf("got duration label %q", it.Duration)
	}

	vibeSet := map[string]bool{}
	for _, v := range prefs.Vibes {
		vibeSet[v] = true
	}

	for i, day := range it.Days {
		if day.Index != i+1 {
			t.Errorf("day %d: got index %d", i, day.Index)
		}
		if !vibeSet[day.Theme] {
			t.Errorf("day %d: theme %q not in preference vibes", i, day.Theme)
		}
		if day.Morning.Time != "9:00 AM" || day.Afternoon.Time != "1:00 PM" || day.Evening.Time != "7:00 PM" {
			t.Errorf("day %d: unexpected slot times %q/%q/%q", i, day.Morning.Time, day.Afternoon.Time, day.Evening.Time)
		}
		for _, slot := range models.Slots() {
			a := day.Activity(slot)
			if a.Cost <= 0 {
				t.Errorf("day %d %s: non-positive cost %d", i, slot, a.Cost)
			}
			if !strings.HasPrefix(a.Location, prefs.Destination+" ") {
				t.Errorf("day %d %s: location %q missing destination prefix", i, slot, a.Location)
			}
		}
		if len(day.Tips) == 0 {
			t.Errorf("day %d: no tips", i)
		}
		if len(day.Alternatives) != 2 {
			t.Errorf("day %d: got %d alternatives, want 2", i, len(day.Alternatives))
		}
	}
}

func TestGenerate_SingleVibeThemesEveryDay(t *testing.T) {
	prefs := models.TripPreferences{
		Destination:  "Oslo",
		DurationDays: 7,
		BudgetTier:   models.TierBudget,
		Vibes:        []string{"wellness-retreat"},
	}

	// Multiple seeds: the property must not be an artifact of one draw.
	for seed := int64(0); seed < 10; seed++ {
		it, err := NewSeeded(seed).Generate(prefs)
		if err != nil {
			t.Fatalf("seed %d: unexpected error: %v", seed, err)
		}
		for _, day := range it.Days {
			if day.Theme != "wellness-retreat" {
				t.Fatalf("seed %d day %d: got theme %q", seed, day.Index, day.Theme)
			}
		}
	}
}

func TestGenerate_TokyoScenario(t *testing.T) {
	it, err := NewSeeded(42).Generate(tokyoPrefs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(it.Days) != 2 {
		t.Fatalf("got %d days, want 2", len(it.Days))
	}
	if it.TotalBudget != 200 {
		t.Errorf("got total budget %d, want 200", it.TotalBudget)
	}

	arch := catalog.Archetypes("adventure-seeker")
	for _, day := range it.Days {
		if day.Theme != "adventure-seeker" {
			t.Errorf("day %d: got theme %q", day.Index, day.Theme)
		}
		for i, slot := range models.Slots() {
			if got := day.Activity(slot).Name; got != arch[i] {
				t.Errorf("day %d %s: got activity %q, want %q", day.Index, slot, got, arch[i])
			}
		}
	}
}

func TestGenerate_CostsWithinSlotRanges(t *testing.T) {
	it, err := NewSeeded(7).Generate(models.TripPreferences{
		Destination:  "Marrakesh",
		DurationDays: 20,
		BudgetTier:   models.TierPremium,
		Vibes:        []string{"urban-explorer"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ranges := map[models.Slot][2]int{
		models.SlotMorning:   {10, 59},
		models.SlotAfternoon: {20, 99},
		models.SlotEvening:   {30, 129},
	}
	for _, day := range it.Days {
		for slot, bounds := range ranges {
			cost := day.Activity(slot).Cost
			if cost < bounds[0] || cost > bounds[1] {
				t.Errorf("day %d %s: cost %d outside [%d, %d]", day.Index, slot, cost, bounds[0], bounds[1])
			}
		}
	}
}

func TestGenerate_UnknownThemeUsesFallbackCatalog(t *testing.T) {
	it, err := NewSeeded(3).Generate(models.TripPreferences{
		Destination:  "Reykjavik",
		DurationDays: 1,
		BudgetTier:   models.TierMid,
		Vibes:        []string{"custom-aurora-chasing"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fallback := catalog.Archetypes(catalog.FallbackVibe)
	day := it.Days[0]
	for i, slot := range models.Slots() {
		if got := day.Activity(slot).Name; got != fallback[i] {
			t.Errorf("%s: got %q, want fallback %q", slot, got, fallback[i])
		}
	}
	if day.Alternatives[0] != "Alternative "+fallback[0] {
		t.Errorf("got alternative %q", day.Alternatives[0])
	}
}

func TestGenerate_NonPositiveDurationRejected(t *testing.T) {
	for _, days := range []int{0, -3} {
		prefs := tokyoPrefs()
		prefs.DurationDays = days

		_, err := NewSeeded(1).Generate(prefs)
		var genErr *GenerationError
		if !errors.As(err, &genErr) {
			t.Errorf("duration %d: expected GenerationError, got %v", days, err)
		}
	}
}

func TestGenerate_SameSeedSameItinerary(t *testing.T) {
	prefs := models.TripPreferences{
		Destination:  "Lima",
		DurationDays: 4,
		BudgetTier:   models.TierMid,
		Vibes:        []string{"chill-scenic", "nightlife-lover", "family-fun"},
	}

	a, err := NewSeeded(99).Generate(prefs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := NewSeeded(99).Generate(prefs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range a.Days {
		if a.Days[i].Theme != b.Days[i].Theme {
			t.Errorf("day %d: themes diverge under identical seed", i+1)
		}
		if a.Days[i].Morning.Cost != b.Days[i].Morning.Cost {
			t.Errorf("day %d: costs diverge under identical seed", i+1)
		}
	}
}
