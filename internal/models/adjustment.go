package models

import "time"

// AdjustmentKind discriminates the event variants.
type AdjustmentKind string

const (
	AdjustWeather AdjustmentKind = "weather"
	AdjustTraffic AdjustmentKind = "traffic"
	AdjustFatigue AdjustmentKind = "fatigue"
)

// WeatherCondition is the reported condition of a weather event. Conditions
// other than rain and extreme heat are recorded but leave the schedule alone.
type WeatherCondition string

const (
	WeatherRain        WeatherCondition = "rain"
	WeatherExtremeHeat WeatherCondition = "extreme_heat"
	WeatherSunny       WeatherCondition = "sunny"
	WeatherCloudy      WeatherCondition = "cloudy"
)

// FatigueLevel is the reported traveler energy state.
type FatigueLevel string

const (
	FatigueLow    FatigueLevel = "low"
	FatigueMedium FatigueLevel = "medium"
	FatigueHigh   FatigueLevel = "high"
)

// AdjustmentEvent is a discrete external condition change, applied to an
// itinerary one at a time. Exactly the fields for the event's kind are set;
// ReportedAt is the source's timestamp, not the application time.
type AdjustmentEvent struct {
	Kind         AdjustmentKind   `json:"kind"`
	Condition    WeatherCondition `json:"condition,omitempty"`
	DelayMinutes int              `json:"delay_minutes,omitempty"`
	Level        FatigueLevel     `json:"level,omitempty"`
	ReportedAt   time.Time        `json:"reported_at"`
}

// WeatherEvent builds a weather event.
func WeatherEvent(condition WeatherCondition, at time.Time) AdjustmentEvent {
	return AdjustmentEvent{Kind: AdjustWeather, Condition: condition, ReportedAt: at}
}

// TrafficEvent builds a traffic event with a non-negative delay.
func TrafficEvent(delayMinutes int, at time.Time) AdjustmentEvent {
	return AdjustmentEvent{Kind: AdjustTraffic, DelayMinutes: delayMinutes, ReportedAt: at}
}

// FatigueEvent builds a fatigue event.
func FatigueEvent(level FatigueLevel, at time.Time) AdjustmentEvent {
	return AdjustmentEvent{Kind: AdjustFatigue, Level: level, ReportedAt: at}
}

// WeatherAdjustment records the most recent weather event. Its presence,
// regardless of condition, latches the weather rule off.
type WeatherAdjustment struct {
	Condition  WeatherCondition `json:"condition"`
	RecordedAt time.Time        `json:"recorded_at"`
}

// TrafficAdjustment records the most recent traffic event. The schedule
// shift is cumulative even though only the latest delay is kept here.
type TrafficAdjustment struct {
	DelayMinutes int       `json:"delay_minutes"`
	RecordedAt   time.Time `json:"recorded_at"`
}

// FatigueAdjustment records the most recent fatigue event.
type FatigueAdjustment struct {
	Level      FatigueLevel `json:"level"`
	RecordedAt time.Time    `json:"recorded_at"`
}

// AppliedAdjustments holds at most one outstanding record per adjustment
// kind. A new event of a kind overwrites its record; this is an accumulator
// for display, not an event log.
type AppliedAdjustments struct {
	Weather *WeatherAdjustment `json:"weather,omitempty"`
	Traffic *TrafficAdjustment `json:"traffic,omitempty"`
	Fatigue *FatigueAdjustment `json:"fatigue,omitempty"`
}

// Any reports whether any adjustment has been recorded.
func (a AppliedAdjustments) Any() bool {
	return a.Weather != nil || a.Traffic != nil || a.Fatigue != nil
}
