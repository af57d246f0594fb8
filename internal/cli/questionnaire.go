package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/planora/planora/internal/catalog"
	"github.com/planora/planora/internal/prefs"
)

// QuestionnaireModel backs the trip preference form. String fields hold the
// option values the normalizer expects.
type QuestionnaireModel struct {
	Destination   string
	Duration      string
	Budget        string
	Vibes         []string
	CustomVibe    string
	Pace          int
	Interests     []string
	TravelStyle   string
	Accommodation string
}

// NewQuestionnaireForm builds the multi-step preference form. Group one is
// the trip shape, group two the vibe selection, group three the flavor
// questions the generator records but does not consume.
func NewQuestionnaireForm(fm *QuestionnaireModel) *huh.Form {
	vibeOptions := make([]huh.Option[string], 0, len(catalog.Vibes()))
	for _, vibe := range catalog.Vibes() {
		vibeOptions = append(vibeOptions, huh.NewOption(fmt.Sprintf("%s (%s)", vibe.Name, vibe.Description), vibe.ID))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Where are you planning to travel?").
				Placeholder("e.g., Paris, Tokyo, New York").
				Value(&fm.Destination).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("destination must not be empty")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("How long is your trip?").
				Options(
					huh.NewOption("1-2 days", "1-2"),
					huh.NewOption("3-5 days", "3-5"),
					huh.NewOption("6-10 days", "6-10"),
					huh.NewOption("11-14 days", "11-14"),
					huh.NewOption("2+ weeks", "15+"),
				).
				Value(&fm.Duration),
			huh.NewSelect[string]().
				Title("What's your budget range per day?").
				Options(
					huh.NewOption("$0-50 (Budget)", "budget"),
					huh.NewOption("$51-150 (Mid-range)", "mid"),
					huh.NewOption("$151-300 (Luxury)", "luxury"),
					huh.NewOption("$300+ (Premium)", "premium"),
				).
				Value(&fm.Budget),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("What's your travel vibe? (Select all that apply)").
				Options(vibeOptions...).
				Value(&fm.Vibes),
			huh.NewInput().
				Title("Custom vibe (optional)").
				Description("Describe your own travel style if none of the above fit").
				Value(&fm.CustomVibe),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("What's your preferred travel pace?").
				Options(
					huh.NewOption("Super Chill", 1),
					huh.NewOption("Relaxed", 2),
					huh.NewOption("Balanced", 3),
					huh.NewOption("Active", 4),
					huh.NewOption("Non-stop", 5),
				).
				Value(&fm.Pace),
			huh.NewMultiSelect[string]().
				Title("What are you most interested in?").
				Options(
					huh.NewOption("Museums & Art", "museums"),
					huh.NewOption("Local Cuisine", "food"),
					huh.NewOption("Shopping", "shopping"),
					huh.NewOption("Nature & Outdoors", "nature"),
					huh.NewOption("Historical Sites", "history"),
					huh.NewOption("Nightlife", "nightlife"),
					huh.NewOption("Architecture", "architecture"),
					huh.NewOption("Local Life & People", "local-life"),
				).
				Value(&fm.Interests),
			huh.NewSelect[string]().
				Title("How do you prefer to travel?").
				Options(
					huh.NewOption("Solo Adventure", "solo"),
					huh.NewOption("Romantic Getaway", "couple"),
					huh.NewOption("With Friends", "friends"),
					huh.NewOption("Family Trip", "family"),
					huh.NewOption("Business + Leisure", "business"),
				).
				Value(&fm.TravelStyle),
			huh.NewSelect[string]().
				Title("Where would you like to stay?").
				Options(
					huh.NewOption("Hotels", "hotel"),
					huh.NewOption("Boutique Hotels", "boutique"),
					huh.NewOption("Hostels", "hostel"),
					huh.NewOption("Vacation Rentals", "airbnb"),
					huh.NewOption("Luxury Resorts", "luxury"),
					huh.NewOption("Local Guesthouses", "local"),
				).
				Value(&fm.Accommodation),
		),
	).WithTheme(huh.ThemeDracula())
}

// RawPreferences converts the completed form into normalizer input.
func (fm *QuestionnaireModel) RawPreferences() prefs.RawPreferences {
	return prefs.RawPreferences{
		Destination:   fm.Destination,
		Duration:      fm.Duration,
		Budget:        fm.Budget,
		Vibes:         fm.Vibes,
		CustomVibe:    fm.CustomVibe,
		Pace:          fm.Pace,
		Interests:     fm.Interests,
		TravelStyle:   fm.TravelStyle,
		Accommodation: fm.Accommodation,
	}
}
