// Package offline derives the downloadable travel kit from a finished
// itinerary: map pins, walking legs, transport info, a budget breakdown, and
// destination-keyed emergency and language packs. Derivation is stateless
// and can be re-run against the latest itinerary at any time.
package offline

import (
	"fmt"
	"math/rand"

	"github.com/planora/planora/internal/models"
)

// Budget split across expense categories, as fractions of the total.
const (
	FoodShare       = 0.4
	ActivitiesShare = 0.3
	TransportShare  = 0.2
	ShoppingShare   = 0.1
)

// Coordinates is a synthesized map position. No geographic feasibility is
// implied; pins are jittered around a nominal city center.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// MapPin marks one scheduled activity on the offline map.
type MapPin struct {
	ID          string      `json:"id"` // "<day>-<slot>"
	Title       string      `json:"title"`
	Location    string      `json:"location"`
	Coordinates Coordinates `json:"coordinates"`
	Time        string      `json:"time"`
	Slot        models.Slot `json:"slot"`
}

// WalkingLeg is an estimated walk between two consecutive slots of a day.
type WalkingLeg struct {
	Day      int      `json:"day"`
	From     string   `json:"from"`
	To       string   `json:"to"`
	Distance string   `json:"distance"` // e.g. "12 min walk"
	Steps    []string `json:"steps"`
}

// TransportOption summarizes one mode of local transport.
type TransportOption struct {
	Available   bool     `json:"available"`
	TicketPrice string   `json:"ticket_price,omitempty"`
	DayPass     string   `json:"day_pass,omitempty"`
	Notes       []string `json:"notes,omitempty"`
}

// TransportInfo is the static local-transport summary.
type TransportInfo struct {
	Subway TransportOption `json:"subway"`
	Bus    TransportOption `json:"bus"`
	Taxi   TransportOption `json:"taxi"`
}

// BudgetBreakdown splits the trip budget by category.
type BudgetBreakdown struct {
	TotalBudget int `json:"total_budget"`
	DailyBudget int `json:"daily_budget"`
	Food        int `json:"food"`
	Activities  int `json:"activities"`
	Transport   int `json:"transport"`
	Shopping    int `json:"shopping"`
}

// EmergencyPack holds destination safety information.
type EmergencyPack struct {
	Destination string            `json:"destination"`
	Police      string            `json:"police"`
	Medical     string            `json:"medical"`
	Fire        string            `json:"fire"`
	TouristLine string            `json:"tourist_line"`
	SafetyTips  []string          `json:"safety_tips"`
	Phrases     map[string]string `json:"phrases"`
}

// LanguagePack holds destination phrases for offline use.
type LanguagePack struct {
	Destination string            `json:"destination"`
	Language    string            `json:"language"`
	Common      map[string]string `json:"common"`
	Food        map[string]string `json:"food"`
	Directions  map[string]string `json:"directions"`
}

// Kit is the complete offline artifact set for one itinerary.
type Kit struct {
	Destination string          `json:"destination"`
	Pins        []MapPin        `json:"pins"`
	WalkingLegs []WalkingLeg    `json:"walking_legs"`
	Transport   TransportInfo   `json:"transport"`
	Budget      BudgetBreakdown `json:"budget"`
	Emergency   EmergencyPack   `json:"emergency"`
	Language    LanguagePack    `json:"language"`
}

type emergencyNumbers struct {
	police, medical, fire, tourist string
}

var emergencyByCity = map[string]emergencyNumbers{
	"Paris":    {"17", "15", "18", "+33 1 43 17 30 00"},
	"Tokyo":    {"110", "119", "119", "+81 3 3201 3331"},
	"New York": {"911", "911", "911", "+1 212 484 1200"},
}

var fallbackEmergency = emergencyNumbers{"911", "911", "911", "911"}

var languageByCity = map[string]string{
	"Paris":    "French",
	"Tokyo":    "Japanese",
	"New York": "English",
}

var safetyTips = []string{
	"Keep copies of important documents",
	"Avoid displaying expensive items",
	"Stay in well-lit areas at night",
	"Keep emergency numbers easily accessible",
}

var walkingSteps = []string{
	"Head north on Main Street",
	"Turn right on Central Avenue",
	"Continue for 3 blocks",
	"Destination will be on your left",
}

// Derive builds the offline kit for an itinerary. The rand source only feeds
// synthesized coordinates and walk estimates, so a fixed seed reproduces the
// kit exactly.
func Derive(it models.Itinerary, r *rand.Rand) Kit {
	return Kit{
		Destination: it.Destination,
		Pins:        derivePins(it, r),
		WalkingLegs: deriveWalkingLegs(it, r),
		Transport:   transportInfo(),
		Budget:      deriveBudget(it),
		Emergency:   emergencyPack(it.Destination),
		Language:    languagePack(it.Destination),
	}
}

func derivePins(it models.Itinerary, r *rand.Rand) []MapPin {
	pins := make([]MapPin, 0, len(it.Days)*3)
	for _, day := range it.Days {
		for _, slot := range models.Slots() {
			a := day.Activity(slot)
			pins = append(pins, MapPin{
				ID:       fmt.Sprintf("%d-%s", day.Index, slot),
				Title:    a.Name,
				Location: a.Location,
				Coordinates: Coordinates{
					Lat: 40.7589 + (r.Float64()-0.5)*0.1,
					Lng: -73.9851 + (r.Float64()-0.5)*0.1,
				},
				Time: a.Time,
				Slot: slot,
			})
		}
	}
	return pins
}

func deriveWalkingLegs(it models.Itinerary, r *rand.Rand) []WalkingLeg {
	slots := models.Slots()
	legs := make([]WalkingLeg, 0, len(it.Days)*(len(slots)-1))
	for _, day := range it.Days {
		for i := 0; i < len(slots)-1; i++ {
			legs = append(legs, WalkingLeg{
				Day:      day.Index,
				From:     day.Activity(slots[i]).Location,
				To:       day.Activity(slots[i+1]).Location,
				Distance: fmt.Sprintf("%d min walk", 5+r.Intn(20)),
				Steps:    walkingSteps,
			})
		}
	}
	return legs
}

func transportInfo() TransportInfo {
	return TransportInfo{
		Subway: TransportOption{
			Available:   true,
			TicketPrice: "$2.75",
			DayPass:     "$33",
			Notes:       []string{"Central Station", "Tourist Hub", "City Center"},
		},
		Bus: TransportOption{
			Available:   true,
			TicketPrice: "$2.25",
			Notes:       []string{"Route 1", "Route 5", "Tourist Loop"},
		},
		Taxi: TransportOption{
			Available:   true,
			TicketPrice: "$3.50 base + $2.50/mile",
			Notes:       []string{"Uber", "Lyft", "Local Taxi"},
		},
	}
}

func deriveBudget(it models.Itinerary) BudgetBreakdown {
	days := len(it.Days)
	daily := 0
	if days > 0 {
		daily = it.TotalBudget / days
	}
	food := int(float64(it.TotalBudget) * FoodShare)
	activities := int(float64(it.TotalBudget) * ActivitiesShare)
	transport := int(float64(it.TotalBudget) * TransportShare)

	return BudgetBreakdown{
		TotalBudget: it.TotalBudget,
		DailyBudget: daily,
		Food:        food,
		Activities:  activities,
		Transport:   transport,
		// Remainder absorbs integer truncation so the split sums exactly.
		Shopping: it.TotalBudget - food - activities - transport,
	}
}

func emergencyPack(destination string) EmergencyPack {
	numbers, ok := emergencyByCity[destination]
	if !ok {
		numbers = fallbackEmergency
	}
	return EmergencyPack{
		Destination: destination,
		Police:      numbers.police,
		Medical:     numbers.medical,
		Fire:        numbers.fire,
		TouristLine: numbers.tourist,
		SafetyTips:  safetyTips,
		Phrases: map[string]string{
			"Help":      "Help! / Au secours! / Tasukete!",
			"Emergency": "Emergency / Urgence / Kyukyu",
			"Police":    "Police / Police / Keisatsu",
			"Hospital":  "Hospital / Hopital / Byoin",
		},
	}
}

func languagePack(destination string) LanguagePack {
	language, ok := languageByCity[destination]
	if !ok {
		language = "English"
	}
	return LanguagePack{
		Destination: destination,
		Language:    language,
		Common: map[string]string{
			"Hello":     "Hello / Bonjour / Konnichiwa",
			"Thank you": "Thank you / Merci / Arigatou gozaimasu",
			"Please":    "Please / S'il vous plait / Onegaishimasu",
			"Excuse me": "Excuse me / Excusez-moi / Sumimasen",
		},
		Food: map[string]string{
			"Menu":       "Menu / Carte / Menyu",
			"Bill":       "Check / Addition / Okaikei",
			"Water":      "Water / Eau / Mizu",
			"Vegetarian": "Vegetarian / Vegetarien / Bejitarian",
		},
		Directions: map[string]string{
			"Where is": "Where is / Ou est / Doko desu ka",
			"Left":     "Left / Gauche / Hidari",
			"Right":    "Right / Droite / Migi",
			"Straight": "Straight / Tout droit / Massugu",
		},
	}
}
