package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/planora/planora/internal/generator"
	"github.com/planora/planora/internal/models"
	"github.com/planora/planora/internal/prefs"
)

type PlanCmd struct {
	Seed int64 `help:"Seed for reproducible generation (0 = time-based)." default:"0"`
	Yes  bool  `short:"y" help:"Save the itinerary without asking."`
}

func (c *PlanCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	var fm QuestionnaireModel
	if err := NewQuestionnaireForm(&fm).Run(); err != nil {
		return fmt.Errorf("questionnaire aborted: %w", err)
	}

	normalized, err := prefs.Normalize(fm.RawPreferences())
	if err != nil {
		return err
	}

	gen := generator.New(nil)
	if c.Seed != 0 {
		gen = generator.NewSeeded(c.Seed)
	}

	it, err := gen.Generate(normalized)
	if err != nil {
		return err
	}

	trip := models.Trip{
		ID:          uuid.New().String(),
		CreatedAt:   time.Now().UTC(),
		Preferences: normalized,
		Itinerary:   it,
	}

	printItinerary(trip)

	if !c.Yes {
		fmt.Print("\nSave this itinerary? [y/N]: ")
		reader := bufio.NewReader(os.Stdin)
		response, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			fmt.Println("Itinerary discarded. You can run 'planora plan' again anytime.")
			return nil
		}
	}

	if err := ctx.Store.SaveTrip(trip); err != nil {
		return err
	}

	fmt.Printf("\nSaved trip %s\n", trip.ID)
	return nil
}
