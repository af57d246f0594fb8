package cli

import (
	"fmt"
	"strings"

	"github.com/planora/planora/internal/models"
	"github.com/planora/planora/internal/storage"
)

type Context struct {
	Store storage.Provider
}

// loadTrip resolves a trip by id, or the most recent one when id is empty.
func loadTrip(ctx *Context, id string) (models.Trip, error) {
	if id == "" {
		return ctx.Store.LatestTrip()
	}
	return ctx.Store.GetTrip(id)
}

func printItinerary(trip models.Trip) {
	it := trip.Itinerary

	fmt.Printf("Your %s itinerary (%s, budget %d)\n", it.Destination, it.Duration, it.TotalBudget)
	fmt.Printf("Vibes: %s\n", strings.Join(it.Vibes, ", "))
	printAdjustmentBanner(trip.Adjustments)

	for _, day := range it.Days {
		fmt.Printf("\nDay %d: %s\n", day.Index, formatTheme(day.Theme))
		for _, slot := range models.Slots() {
			a := day.Activity(slot)
			fmt.Printf("  %-8s  %-9s %-35s %s (%s, cost %d)\n",
				string(slot), a.Time, a.Name, a.Location, a.Duration, a.Cost)
		}
		for _, tip := range day.Tips {
			fmt.Printf("  tip: %s\n", tip)
		}
		for _, alt := range day.Alternatives {
			fmt.Printf("  alt: %s\n", alt)
		}
	}
}

func printAdjustmentBanner(adjustments models.AppliedAdjustments) {
	if !adjustments.Any() {
		return
	}

	fmt.Println("Adjustments applied:")
	if w := adjustments.Weather; w != nil {
		fmt.Printf("  weather: switched to indoor alternatives due to %s\n", w.Condition)
	}
	if tr := adjustments.Traffic; tr != nil {
		fmt.Printf("  traffic: times shifted by +%d minutes\n", tr.DelayMinutes)
	}
	if f := adjustments.Fatigue; f != nil {
		fmt.Printf("  fatigue: %s (relaxation breaks added on high)\n", f.Level)
	}
}

// formatTheme renders a vibe tag for display, e.g. "chill-scenic" as
// "chill & scenic".
func formatTheme(theme string) string {
	return strings.ReplaceAll(theme, "-", " & ")
}
