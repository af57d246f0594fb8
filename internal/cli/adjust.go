package cli

import (
	"fmt"
	"time"

	"github.com/planora/planora/internal/adjust"
	"github.com/planora/planora/internal/models"
)

// AdjustCmd folds one external event into a saved itinerary. Events are
// applied strictly one per invocation; repeated runs compound or latch
// according to the rule for each kind.
type AdjustCmd struct {
	Weather AdjustWeatherCmd `cmd:"" help:"Apply a weather event (rain, extreme_heat, ...)."`
	Traffic AdjustTrafficCmd `cmd:"" help:"Apply a traffic delay."`
	Fatigue AdjustFatigueCmd `cmd:"" help:"Apply a fatigue report (low, medium, high)."`
}

type AdjustWeatherCmd struct {
	Condition string `arg:"" help:"Weather condition (rain|extreme_heat|sunny|cloudy)."`
	Trip      string `help:"Trip ID (defaults to the most recent trip)."`
}

func (c *AdjustWeatherCmd) Run(ctx *Context) error {
	event := models.WeatherEvent(models.WeatherCondition(c.Condition), time.Now().UTC())
	return applyAndSave(ctx, c.Trip, event)
}

type AdjustTrafficCmd struct {
	Delay int    `arg:"" help:"Delay in minutes."`
	Trip  string `help:"Trip ID (defaults to the most recent trip)."`
}

func (c *AdjustTrafficCmd) Validate() error {
	if c.Delay < 0 {
		return fmt.Errorf("delay must be a non-negative number of minutes")
	}
	return nil
}

func (c *AdjustTrafficCmd) Run(ctx *Context) error {
	event := models.TrafficEvent(c.Delay, time.Now().UTC())
	return applyAndSave(ctx, c.Trip, event)
}

type AdjustFatigueCmd struct {
	Level string `arg:"" help:"Fatigue level (low|medium|high)."`
	Trip  string `help:"Trip ID (defaults to the most recent trip)."`
}

func (c *AdjustFatigueCmd) Validate() error {
	switch models.FatigueLevel(c.Level) {
	case models.FatigueLow, models.FatigueMedium, models.FatigueHigh:
		return nil
	}
	return fmt.Errorf("invalid fatigue level: %s", c.Level)
}

func (c *AdjustFatigueCmd) Run(ctx *Context) error {
	event := models.FatigueEvent(models.FatigueLevel(c.Level), time.Now().UTC())
	return applyAndSave(ctx, c.Trip, event)
}

func applyAndSave(ctx *Context, tripID string, event models.AdjustmentEvent) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	trip, err := loadTrip(ctx, tripID)
	if err != nil {
		return err
	}

	trip.Itinerary, trip.Adjustments = adjust.Apply(trip.Itinerary, event, trip.Adjustments)

	if err := ctx.Store.SaveTrip(trip); err != nil {
		return err
	}

	fmt.Printf("Applied %s event to trip %s\n\n", event.Kind, trip.ID)
	printAdjustmentBanner(trip.Adjustments)
	return nil
}
