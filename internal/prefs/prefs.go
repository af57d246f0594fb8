package prefs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/planora/planora/internal/models"
)

// RawPreferences is the untyped questionnaire answer set, prior to
// validation. Duration and budget arrive as the option values the form uses.
type RawPreferences struct {
	Destination   string
	Duration      string // range token, e.g. "3-5" or "15+"
	Budget        string // tier value, e.g. "mid"
	Vibes         []string
	CustomVibe    string // optional free-text vibe
	Pace          int
	Interests     []string
	TravelStyle   string
	Accommodation string
}

// InvalidPreferencesError reports an unrecoverable questionnaire field.
type InvalidPreferencesError struct {
	Field  string
	Reason string
}

func (e *InvalidPreferencesError) Error() string {
	return fmt.Sprintf("invalid preferences: %s %s", e.Field, e.Reason)
}

// Normalize validates and canonicalizes raw questionnaire answers. It is a
// pure function: recoverable oddities (unknown tier, unparseable duration)
// degrade to defaults, and only a missing destination or empty vibe set
// fails.
func Normalize(raw RawPreferences) (models.TripPreferences, error) {
	destination := strings.TrimSpace(raw.Destination)
	if destination == "" {
		return models.TripPreferences{}, &InvalidPreferencesError{Field: "destination", Reason: "must not be empty"}
	}

	vibes := make([]string, 0, len(raw.Vibes)+1)
	for _, v := range raw.Vibes {
		v = strings.TrimSpace(v)
		if v != "" {
			vibes = append(vibes, v)
		}
	}
	if custom := strings.TrimSpace(raw.CustomVibe); custom != "" {
		vibes = append(vibes, customVibeTag(custom))
	}
	if len(vibes) == 0 {
		return models.TripPreferences{}, &InvalidPreferencesError{Field: "vibe", Reason: "requires at least one selection"}
	}

	return models.TripPreferences{
		Destination:   destination,
		DurationDays:  parseDurationDays(raw.Duration),
		BudgetTier:    normalizeTier(raw.Budget),
		Vibes:         vibes,
		Pace:          raw.Pace,
		Interests:     raw.Interests,
		TravelStyle:   raw.TravelStyle,
		Accommodation: raw.Accommodation,
	}, nil
}

// parseDurationDays takes the lower bound of a range token such as "3-5".
// Anything without a leading positive integer falls back to the default.
func parseDurationDays(token string) int {
	token = strings.TrimSpace(token)

	end := 0
	for end < len(token) && token[end] >= '0' && token[end] <= '9' {
		end++
	}

	days, err := strconv.Atoi(token[:end])
	if err != nil || days <= 0 {
		return models.DefaultDurationDays
	}
	return days
}

func normalizeTier(value string) models.BudgetTier {
	switch tier := models.BudgetTier(strings.TrimSpace(value)); tier {
	case models.TierBudget, models.TierMid, models.TierLuxury, models.TierPremium:
		return tier
	default:
		return models.TierMid
	}
}

// customVibeTag derives a synthetic tag for a free-text vibe. The tag is
// deliberately outside the catalog so generation uses the fallback list.
func customVibeTag(text string) string {
	var b strings.Builder
	b.WriteString("custom-")

	lastHyphen := false
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
