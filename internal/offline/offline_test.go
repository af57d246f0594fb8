package offline

import (
	"math/rand"
	"testing"

	"github.com/planora/planora/internal/generator"
	"github.com/planora/planora/internal/models"
)

func testItinerary(t *testing.T, destination string, days int) models.Itinerary {
	t.Helper()
	it, err := generator.NewSeeded(11).Generate(models.TripPreferences{
		Destination:  destination,
		DurationDays: days,
		BudgetTier:   models.TierLuxury,
		Vibes:        []string{"culture-vulture"},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return it
}

func TestDerive_PinAndLegCounts(t *testing.T) {
	it := testItinerary(t, "Tokyo", 4)

	kit := Derive(it, rand.New(rand.NewSource(1)))

	if got, want := len(kit.Pins), 4*3; got != want {
		t.Errorf("got %d pins, want %d", got, want)
	}
	if got, want := len(kit.WalkingLegs), 4*2; got != want {
		t.Errorf("got %d walking legs, want %d", got, want)
	}

	if kit.Pins[0].ID != "1-morning" {
		t.Errorf("got first pin id %q", kit.Pins[0].ID)
	}
	if kit.Pins[0].Time != "9:00 AM" {
		t.Errorf("pin time should carry the slot time, got %q", kit.Pins[0].Time)
	}
	if kit.WalkingLegs[0].Day != 1 || kit.WalkingLegs[0].From == "" {
		t.Errorf("unexpected first leg: %+v", kit.WalkingLegs[0])
	}
}

func TestDerive_BudgetSplitSumsToTotal(t *testing.T) {
	it := testItinerary(t, "Tokyo", 3)

	kit := Derive(it, rand.New(rand.NewSource(1)))
	b := kit.Budget

	if b.TotalBudget != it.TotalBudget {
		t.Errorf("got total %d, want %d", b.TotalBudget, it.TotalBudget)
	}
	if b.DailyBudget != it.TotalBudget/3 {
		t.Errorf("got daily %d, want %d", b.DailyBudget, it.TotalBudget/3)
	}
	if sum := b.Food + b.Activities + b.Transport + b.Shopping; sum != b.TotalBudget {
		t.Errorf("split sums to %d, want %d", sum, b.TotalBudget)
	}
	if b.Food != int(float64(it.TotalBudget)*FoodShare) {
		t.Errorf("got food %d", b.Food)
	}
}

func TestDerive_KnownDestinationPacks(t *testing.T) {
	kit := Derive(testItinerary(t, "Tokyo", 1), rand.New(rand.NewSource(1)))

	if kit.Emergency.Police != "110" || kit.Emergency.Medical != "119" {
		t.Errorf("unexpected Tokyo emergency numbers: %+v", kit.Emergency)
	}
	if kit.Language.Language != "Japanese" {
		t.Errorf("got language %q, want Japanese", kit.Language.Language)
	}
}

func TestDerive_UnknownDestinationFallsBack(t *testing.T) {
	kit := Derive(testItinerary(t, "Ulaanbaatar", 1), rand.New(rand.NewSource(1)))

	if kit.Emergency.Police != "911" {
		t.Errorf("got fallback police number %q", kit.Emergency.Police)
	}
	if kit.Language.Language != "English" {
		t.Errorf("got fallback language %q", kit.Language.Language)
	}
	if len(kit.Emergency.SafetyTips) == 0 {
		t.Error("fallback pack should still carry safety tips")
	}
}

func TestDerive_SameSeedReproducesKit(t *testing.T) {
	it := testItinerary(t, "Paris", 2)

	a := Derive(it, rand.New(rand.NewSource(5)))
	b := Derive(it, rand.New(rand.NewSource(5)))

	for i := range a.Pins {
		if a.Pins[i].Coordinates != b.Pins[i].Coordinates {
			t.Fatalf("pin %d coordinates diverge under identical seed", i)
		}
	}
	for i := range a.WalkingLegs {
		if a.WalkingLegs[i].Distance != b.WalkingLegs[i].Distance {
			t.Fatalf("leg %d distance diverges under identical seed", i)
		}
	}
}
