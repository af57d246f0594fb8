package generator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/planora/planora/internal/catalog"
	"github.com/planora/planora/internal/models"
)

// GenerationError reports input the generator refuses to build from.
// Normalized preferences never trigger it.
type GenerationError struct {
	Reason string
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("cannot generate itinerary: %s", e.Reason)
}

var districtSuffixes = []string{
	"Downtown", "Old Town", "City Center", "Historic District", "Waterfront", "Arts Quarter",
}

// Per-slot cost ranges in currency-agnostic units.
type costRange struct {
	min  int
	span int
}

var slotCosts = map[models.Slot]costRange{
	models.SlotMorning:   {min: 10, span: 50},
	models.SlotAfternoon: {min: 20, span: 80},
	models.SlotEvening:   {min: 30, span: 100},
}

var slotDurations = map[models.Slot]string{
	models.SlotMorning:   "2-3 hours",
	models.SlotAfternoon: "3-4 hours",
	models.SlotEvening:   "2-3 hours",
}

var slotDescriptions = map[models.Slot]string{
	models.SlotMorning:   "Start your day with this refreshing experience that energizes you for the adventures ahead.",
	models.SlotAfternoon: "Perfect for the main part of your day when energy is high and you're ready to dive deep.",
	models.SlotEvening:   "Wind down with this relaxing activity that caps off your day beautifully.",
}

// Fallback activity names when a catalog list is shorter than three entries.
var slotFallbackActivities = map[models.Slot]string{
	models.SlotMorning:   "Local exploration",
	models.SlotAfternoon: "Cultural experience",
	models.SlotEvening:   "Dinner experience",
}

// Generator builds itineraries from normalized preferences. Structure is
// deterministic; flavor fields (themes, costs, districts) come from the
// injected randomness source so tests can pin a seed.
type Generator struct {
	rand *rand.Rand
}

// New returns a generator backed by the given source, or a time-seeded one
// when r is nil.
func New(r *rand.Rand) *Generator {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rand: r}
}

// NewSeeded returns a generator with a fixed seed, for reproducible output.
func NewSeeded(seed int64) *Generator {
	return New(rand.New(rand.NewSource(seed)))
}

// Generate produces a complete itinerary: one themed day per duration day,
// each with morning/afternoon/evening activities, tips, and alternatives.
// The returned itinerary is only ever mutated by the adjustment engine.
func (g *Generator) Generate(prefs models.TripPreferences) (models.Itinerary, error) {
	if prefs.DurationDays <= 0 {
		return models.Itinerary{}, &GenerationError{Reason: fmt.Sprintf("duration must be at least one day, got %d", prefs.DurationDays)}
	}
	if len(prefs.Vibes) == 0 {
		return models.Itinerary{}, &GenerationError{Reason: "vibe set must not be empty"}
	}

	it := models.Itinerary{
		Destination: prefs.Destination,
		Duration:    fmt.Sprintf("%d days", prefs.DurationDays),
		TotalBudget: prefs.BudgetTier.PerDaySpend() * prefs.DurationDays,
		Vibes:       append([]string(nil), prefs.Vibes...),
		Days:        make([]models.Day, 0, prefs.DurationDays),
	}

	for i := 1; i <= prefs.DurationDays; i++ {
		theme := prefs.Vibes[g.rand.Intn(len(prefs.Vibes))]
		it.Days = append(it.Days, g.buildDay(i, theme, prefs.Destination))
	}

	return it, nil
}

func (g *Generator) buildDay(index int, theme, destination string) models.Day {
	arch := catalog.Archetypes(theme)

	day := models.Day{
		Index:        index,
		Theme:        theme,
		Tips:         catalog.Tips(theme),
		Alternatives: alternatives(arch),
	}

	for i, slot := range models.Slots() {
		name := slotFallbackActivities[slot]
		if i < len(arch) {
			name = arch[i]
		}
		*day.Activity(slot) = g.buildActivity(slot, name, destination)
	}

	return day
}

func (g *Generator) buildActivity(slot models.Slot, name, destination string) models.Activity {
	costs := slotCosts[slot]
	return models.Activity{
		Time:        slot.StartTime(),
		Name:        name,
		Location:    fmt.Sprintf("%s %s", destination, districtSuffixes[g.rand.Intn(len(districtSuffixes))]),
		Duration:    slotDurations[slot],
		Cost:        costs.min + g.rand.Intn(costs.span),
		Description: slotDescriptions[slot],
	}
}

func alternatives(archetypes []string) []string {
	if len(archetypes) > 2 {
		archetypes = archetypes[:2]
	}
	alts := make([]string, 0, len(archetypes))
	for _, a := range archetypes {
		alts = append(alts, "Alternative "+a)
	}
	return alts
}
