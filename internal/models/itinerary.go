package models

import "time"

// Slot identifies one of the three fixed daily time windows.
type Slot string

const (
	SlotMorning   Slot = "morning"
	SlotAfternoon Slot = "afternoon"
	SlotEvening   Slot = "evening"
)

// Slots lists the daily windows in display order.
func Slots() []Slot {
	return []Slot{SlotMorning, SlotAfternoon, SlotEvening}
}

// StartTime returns the nominal displayed start time for a slot.
func (s Slot) StartTime() string {
	switch s {
	case SlotMorning:
		return "9:00 AM"
	case SlotAfternoon:
		return "1:00 PM"
	case SlotEvening:
		return "7:00 PM"
	}
	return ""
}

// Activity is one scheduled entry in a day. Cost is a positive integer in
// currency-agnostic units. Only the adjustment engine mutates activities
// after generation.
type Activity struct {
	Time        string `json:"time"` // 12-hour display format, e.g. "9:00 AM"
	Name        string `json:"name"`
	Location    string `json:"location"`
	Duration    string `json:"duration"`
	Cost        int    `json:"cost"`
	Description string `json:"description"`
}

// Day holds one themed day of the itinerary with exactly three activities.
type Day struct {
	Index        int      `json:"index"` // 1-based, contiguous
	Theme        string   `json:"theme"` // one element of the preference vibe set
	Morning      Activity `json:"morning"`
	Afternoon    Activity `json:"afternoon"`
	Evening      Activity `json:"evening"`
	Tips         []string `json:"tips"`
	Alternatives []string `json:"alternatives"`
}

// Activity returns the activity scheduled in the given slot.
func (d *Day) Activity(slot Slot) *Activity {
	switch slot {
	case SlotMorning:
		return &d.Morning
	case SlotAfternoon:
		return &d.Afternoon
	case SlotEvening:
		return &d.Evening
	}
	return nil
}

// Itinerary is the generated schedule. The day count and total budget are
// fixed at generation time; adjustments only rewrite activity fields.
type Itinerary struct {
	Destination string   `json:"destination"`
	Duration    string   `json:"duration"` // display label, e.g. "3 days"
	TotalBudget int      `json:"total_budget"`
	Vibes       []string `json:"vibes"`
	Days        []Day    `json:"days"`
}

// Trip is the persisted planning session: the normalized preferences, the
// current itinerary state, and the adjustment records folded into it so far.
type Trip struct {
	ID          string             `json:"id"`
	CreatedAt   time.Time          `json:"created_at"`
	Preferences TripPreferences    `json:"preferences"`
	Itinerary   Itinerary          `json:"itinerary"`
	Adjustments AppliedAdjustments `json:"adjustments"`
}
