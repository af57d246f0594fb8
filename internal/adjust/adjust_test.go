package adjust

import (
	"testing"
	"time"

	"github.com/planora/planora/internal/generator"
	"github.com/planora/planora/internal/models"
)

var eventTime = time.Date(2026, time.March, 14, 8, 30, 0, 0, time.UTC)

// adventureItinerary builds a 2-day single-vibe itinerary whose morning
// activity ("hiking trails") has an indoor substitute.
func adventureItinerary(t *testing.T) models.Itinerary {
	t.Helper()
	it, err := generator.NewSeeded(42).Generate(models.TripPreferences{
		Destination:  "Tokyo",
		DurationDays: 2,
		BudgetTier:   models.TierMid,
		Vibes:        []string{"adventure-seeker"},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return it
}

func TestApply_TrafficShiftsEverySlot(t *testing.T) {
	it := adventureItinerary(t)
	budget, days := it.TotalBudget, len(it.Days)

	shifted, applied := Apply(it, models.TrafficEvent(15, eventTime), models.AppliedAdjustments{})

	if applied.Traffic == nil || applied.Traffic.DelayMinutes != 15 {
		t.Fatalf("traffic record not kept: %+v", applied.Traffic)
	}
	if shifted.TotalBudget != budget || len(shifted.Days) != days {
		t.Error("traffic must not touch budget or day count")
	}

	for d, day := range shifted.Days {
		if day.Morning.Time != "9:15 AM" || day.Afternoon.Time != "1:15 PM" || day.Evening.Time != "7:15 PM" {
			t.Errorf("day %d: got times %q/%q/%q", d+1, day.Morning.Time, day.Afternoon.Time, day.Evening.Time)
		}
		for _, slot := range models.Slots() {
			if day.Activity(slot).Name != it.Days[d].Activity(slot).Name {
				t.Errorf("day %d %s: traffic must not change activity names", d+1, slot)
			}
		}
	}
}

func TestApply_TrafficIsCumulative(t *testing.T) {
	it := adventureItinerary(t)

	var applied models.AppliedAdjustments
	twice, applied := Apply(it, models.TrafficEvent(20, eventTime), applied)
	twice, applied = Apply(twice, models.TrafficEvent(25, eventTime), applied)

	once, _ := Apply(it, models.TrafficEvent(45, eventTime), models.AppliedAdjustments{})

	for d := range once.Days {
		for _, slot := range models.Slots() {
			a, b := once.Days[d].Activity(slot).Time, twice.Days[d].Activity(slot).Time
			if a != b {
				t.Errorf("day %d %s: 20+25 gave %q, single 45 gave %q", d+1, slot, b, a)
			}
		}
	}

	// The record keeps the latest event only.
	if applied.Traffic.DelayMinutes != 25 {
		t.Errorf("got recorded delay %d, want 25", applied.Traffic.DelayMinutes)
	}
}

func TestApply_WeatherSubstitutesAndLatches(t *testing.T) {
	it := adventureItinerary(t)

	first, applied := Apply(it, models.WeatherEvent(models.WeatherRain, eventTime), models.AppliedAdjustments{})

	for d := range first.Days {
		got := first.Days[d].Morning
		if got.Name != "museum tours" {
			t.Errorf("day %d: got morning %q, want indoor substitute", d+1, got.Name)
		}
		if want := "Adjusted for weather: " + it.Days[d].Morning.Description; got.Description != want {
			t.Errorf("day %d: description not marked: %q", d+1, got.Description)
		}
		// "water sports" has no substitution entry and stays put.
		if first.Days[d].Afternoon.Name != it.Days[d].Afternoon.Name {
			t.Errorf("day %d: afternoon should be unchanged without a table entry", d+1)
		}
	}

	// Second rain event: bookkeeping only.
	second, applied2 := Apply(first, models.WeatherEvent(models.WeatherRain, eventTime.Add(time.Hour)), applied)
	for d := range second.Days {
		for _, slot := range models.Slots() {
			if second.Days[d].Activity(slot).Name != first.Days[d].Activity(slot).Name ||
				second.Days[d].Activity(slot).Description != first.Days[d].Activity(slot).Description {
				t.Errorf("day %d %s: schedule changed on latched weather event", d+1, slot)
			}
		}
	}
	if applied2.Weather == nil || !applied2.Weather.RecordedAt.Equal(eventTime.Add(time.Hour)) {
		t.Error("second weather event should still update the record")
	}
}

func TestApply_WeatherLatchHoldsAcrossConditions(t *testing.T) {
	it := adventureItinerary(t)

	// A recorded non-mutating condition still latches the rule off.
	sunny, applied := Apply(it, models.WeatherEvent(models.WeatherSunny, eventTime), models.AppliedAdjustments{})
	if applied.Weather == nil || applied.Weather.Condition != models.WeatherSunny {
		t.Fatalf("sunny event not recorded: %+v", applied.Weather)
	}

	rained, applied := Apply(sunny, models.WeatherEvent(models.WeatherRain, eventTime), applied)
	for d := range rained.Days {
		if rained.Days[d].Morning.Name != it.Days[d].Morning.Name {
			t.Errorf("day %d: rain after a recorded condition must not substitute", d+1)
		}
	}
	if applied.Weather.Condition != models.WeatherRain {
		t.Errorf("record should hold the latest condition, got %q", applied.Weather.Condition)
	}
}

func TestApply_ExtremeHeatUsesShadedFraming(t *testing.T) {
	it := adventureItinerary(t)

	heat, _ := Apply(it, models.WeatherEvent(models.WeatherExtremeHeat, eventTime), models.AppliedAdjustments{})

	day := heat.Days[0]
	if day.Morning.Name != "museum tours" {
		t.Errorf("got morning %q, want shared substitution table result", day.Morning.Name)
	}
	if want := "Adjusted for heat: " + it.Days[0].Morning.Description; day.Morning.Description != want {
		t.Errorf("got description %q, want heat framing", day.Morning.Description)
	}
}

func TestApply_FatigueHighReplacesAfternoons(t *testing.T) {
	it := adventureItinerary(t)

	// Shift times first so the replacement provably keeps the shifted time.
	it, applied := Apply(it, models.TrafficEvent(30, eventTime), models.AppliedAdjustments{})

	rested, applied := Apply(it, models.FatigueEvent(models.FatigueHigh, eventTime), applied)

	for d, day := range rested.Days {
		if day.Afternoon.Name != "relaxing cafe visit" {
			t.Errorf("day %d: got afternoon %q", d+1, day.Afternoon.Name)
		}
		if day.Afternoon.Duration != "1-2 hours" {
			t.Errorf("day %d: got duration %q", d+1, day.Afternoon.Duration)
		}
		if day.Afternoon.Cost != 0 {
			t.Errorf("day %d: previous cost should be discarded, got %d", d+1, day.Afternoon.Cost)
		}
		if day.Afternoon.Time != "1:30 PM" {
			t.Errorf("day %d: shifted time should survive, got %q", d+1, day.Afternoon.Time)
		}
		if day.Morning.Name != it.Days[d].Morning.Name || day.Evening.Name != it.Days[d].Evening.Name {
			t.Errorf("day %d: fatigue must only touch afternoons", d+1)
		}
	}
	if applied.Fatigue == nil || applied.Fatigue.Level != models.FatigueHigh {
		t.Fatalf("fatigue record not kept: %+v", applied.Fatigue)
	}
}

func TestApply_FatigueHighOverwritesWeatherSubstitution(t *testing.T) {
	// A vibe whose afternoon slot has an indoor substitute: chill-scenic
	// mornings are "scenic viewpoints"; use a custom itinerary where the
	// afternoon label is in the substitution table.
	it := adventureItinerary(t)
	it.Days[0].Afternoon.Name = "beach activities"

	wet, applied := Apply(it, models.WeatherEvent(models.WeatherRain, eventTime), models.AppliedAdjustments{})
	if wet.Days[0].Afternoon.Name != "aquarium visits" {
		t.Fatalf("precondition failed: afternoon not substituted, got %q", wet.Days[0].Afternoon.Name)
	}

	rested, _ := Apply(wet, models.FatigueEvent(models.FatigueHigh, eventTime), applied)
	if rested.Days[0].Afternoon.Name != "relaxing cafe visit" {
		t.Errorf("got %q, want the rest break to win the slot", rested.Days[0].Afternoon.Name)
	}
	if rested.Days[0].Afternoon.Description != "Take a break and recharge with a relaxing afternoon." {
		t.Errorf("weather-adjusted description should be discarded, got %q", rested.Days[0].Afternoon.Description)
	}
}

func TestApply_LowAndMediumFatigueAreRecordedNoOps(t *testing.T) {
	it := adventureItinerary(t)

	for _, level := range []models.FatigueLevel{models.FatigueLow, models.FatigueMedium} {
		out, applied := Apply(it, models.FatigueEvent(level, eventTime), models.AppliedAdjustments{})
		if out.Days[0].Afternoon.Name != it.Days[0].Afternoon.Name {
			t.Errorf("level %q: schedule should be untouched", level)
		}
		if applied.Fatigue == nil || applied.Fatigue.Level != level {
			t.Errorf("level %q: event should still be recorded", level)
		}
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	it := adventureItinerary(t)
	originalTime := it.Days[0].Morning.Time

	Apply(it, models.TrafficEvent(60, eventTime), models.AppliedAdjustments{})

	if it.Days[0].Morning.Time != originalTime {
		t.Error("Apply must return a new itinerary, not mutate its argument")
	}
}
