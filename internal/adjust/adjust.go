// Package adjust folds discrete weather, traffic, and fatigue events into an
// existing itinerary. Apply is a pure transformation over the caller's
// current (Itinerary, AppliedAdjustments) pair: it never changes the day
// count, destination, vibe set, or total budget, and it has no failure modes
// for well-typed input. Callers serialize concurrent calls per itinerary.
package adjust

import (
	"github.com/planora/planora/internal/catalog"
	"github.com/planora/planora/internal/models"
)

// Fixed replacement scheduled when high fatigue is reported. The slot's
// displayed time and location survive; the previous activity and cost do not.
const (
	restActivityName        = "relaxing cafe visit"
	restActivityDuration    = "1-2 hours"
	restActivityDescription = "Take a break and recharge with a relaxing afternoon."
)

// Description prefixes marking a weather substitution, by condition.
const (
	rainPrefix = "Adjusted for weather: "
	heatPrefix = "Adjusted for heat: "
)

// Apply folds one event into the itinerary and returns the new state. Events
// of a kind already recorded overwrite that kind's record; whether the
// schedule changes again depends on the rule (weather latches, traffic
// compounds, fatigue re-replaces the same fixed activity).
func Apply(it models.Itinerary, event models.AdjustmentEvent, applied models.AppliedAdjustments) (models.Itinerary, models.AppliedAdjustments) {
	// Copy the day structs so the caller's itinerary is left intact; tips and
	// alternatives are shared but no rule writes to them.
	it.Days = append([]models.Day(nil), it.Days...)

	switch event.Kind {
	case models.AdjustWeather:
		if applied.Weather == nil {
			it = applyWeather(it, event.Condition)
		}
		applied.Weather = &models.WeatherAdjustment{Condition: event.Condition, RecordedAt: event.ReportedAt}

	case models.AdjustTraffic:
		it = applyTraffic(it, event.DelayMinutes)
		applied.Traffic = &models.TrafficAdjustment{DelayMinutes: event.DelayMinutes, RecordedAt: event.ReportedAt}

	case models.AdjustFatigue:
		if event.Level == models.FatigueHigh {
			it = applyFatigue(it)
		}
		applied.Fatigue = &models.FatigueAdjustment{Level: event.Level, RecordedAt: event.ReportedAt}
	}

	return it, applied
}

// applyWeather swaps morning and afternoon activities for indoor or shaded
// alternatives. Activities without a substitution entry stay as scheduled.
// Only rain and extreme heat mutate the schedule; the substitution table is
// shared and only the description framing differs.
func applyWeather(it models.Itinerary, condition models.WeatherCondition) models.Itinerary {
	var prefix string
	switch condition {
	case models.WeatherRain:
		prefix = rainPrefix
	case models.WeatherExtremeHeat:
		prefix = heatPrefix
	default:
		return it
	}

	for d := range it.Days {
		for _, slot := range []models.Slot{models.SlotMorning, models.SlotAfternoon} {
			a := it.Days[d].Activity(slot)
			alt, ok := catalog.IndoorAlternative(a.Name)
			if !ok {
				continue
			}
			a.Name = alt
			a.Description = prefix + a.Description
		}
	}
	return it
}

// applyTraffic shifts the displayed start time of every slot on every day.
// Repeated traffic events compound: each shift applies on top of the last.
func applyTraffic(it models.Itinerary, delayMinutes int) models.Itinerary {
	for d := range it.Days {
		for _, slot := range models.Slots() {
			a := it.Days[d].Activity(slot)
			a.Time = ShiftClock(a.Time, delayMinutes)
		}
	}
	return it
}

// applyFatigue replaces every afternoon activity with the fixed rest break,
// overwriting any earlier weather substitution in that slot.
func applyFatigue(it models.Itinerary) models.Itinerary {
	for d := range it.Days {
		a := &it.Days[d].Afternoon
		a.Name = restActivityName
		a.Duration = restActivityDuration
		a.Description = restActivityDescription
		a.Cost = 0
	}
	return it
}
