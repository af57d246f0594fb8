package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/planora/planora/internal/cli"
	"github.com/planora/planora/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"~/.config/planora/planora.db"`

	Init    cli.InitCmd    `cmd:"" help:"Initialize planora storage."`
	Plan    cli.PlanCmd    `cmd:"" help:"Answer the questionnaire and generate an itinerary." default:"1"`
	Show    cli.ShowCmd    `cmd:"" help:"Show a saved itinerary."`
	List    cli.ListCmd    `cmd:"" help:"List saved trips."`
	Adjust  cli.AdjustCmd  `cmd:"" help:"Fold a weather, traffic, or fatigue event into a trip."`
	Offline cli.OfflineCmd `cmd:"" help:"Derive the offline travel kit for a trip."`
	Tui     cli.TuiCmd     `cmd:"" help:"Launch the interactive TUI."`
	Doctor  cli.DoctorCmd  `cmd:"" help:"Run environment and storage checks."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("planora"),
		kong.Description("Vibe-driven itinerary generator with live trip adjustments"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	// Determine storage type based on extension
	var store storage.Provider
	if len(CLI.Config) > 5 && CLI.Config[len(CLI.Config)-5:] == ".json" {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{
		Store: store,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
