package cli

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/planora/planora/internal/offline"
)

type OfflineCmd struct {
	ID   string `arg:"" optional:"" help:"Trip ID (defaults to the most recent trip)."`
	Out  string `short:"o" help:"Write the kit as JSON to this file instead of printing a summary." type:"path"`
	Seed int64  `help:"Seed for reproducible coordinates (0 = time-based)." default:"0"`
}

func (c *OfflineCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	trip, err := loadTrip(ctx, c.ID)
	if err != nil {
		return err
	}

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	kit := offline.Derive(trip.Itinerary, rand.New(rand.NewSource(seed)))

	if c.Out != "" {
		data, err := json.MarshalIndent(kit, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize kit: %w", err)
		}
		if err := os.WriteFile(c.Out, data, 0600); err != nil {
			return fmt.Errorf("failed to write kit: %w", err)
		}
		fmt.Printf("Wrote offline kit for %s to %s\n", kit.Destination, c.Out)
		return nil
	}

	fmt.Printf("Offline travel kit for %s\n\n", kit.Destination)
	fmt.Printf("Map pins:      %d\n", len(kit.Pins))
	fmt.Printf("Walking legs:  %d\n", len(kit.WalkingLegs))
	fmt.Printf("Budget:        total %d, daily %d (food %d / activities %d / transport %d / shopping %d)\n",
		kit.Budget.TotalBudget, kit.Budget.DailyBudget,
		kit.Budget.Food, kit.Budget.Activities, kit.Budget.Transport, kit.Budget.Shopping)
	fmt.Printf("Emergency:     police %s, medical %s, fire %s\n",
		kit.Emergency.Police, kit.Emergency.Medical, kit.Emergency.Fire)
	fmt.Printf("Language pack: %s (%d common phrases)\n", kit.Language.Language, len(kit.Language.Common))
	fmt.Println("\nUse --out to export the full kit as JSON.")
	return nil
}
