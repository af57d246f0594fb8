package catalog

// FallbackVibe is the catalog used when a theme is not recognized, including
// the synthetic tags assigned to custom free-text vibes.
const FallbackVibe = "urban-explorer"

// Vibe describes a selectable travel style for the questionnaire and TUI.
type Vibe struct {
	ID          string
	Name        string
	Description string
}

var vibes = []Vibe{
	{"chill-scenic", "Chill & Scenic", "Peaceful moments, beautiful views, and relaxing experiences"},
	{"bougie-foodie", "Bougie Foodie", "Fine dining, wine tastings, and gourmet experiences"},
	{"urban-explorer", "Urban Explorer", "Street art, hidden gems, and authentic local experiences"},
	{"adventure-seeker", "Adventure Seeker", "Thrilling activities and outdoor adventures"},
	{"culture-vulture", "Culture Vulture", "Museums, history, art, and intellectual experiences"},
	{"nightlife-lover", "Nightlife Lover", "Bars, clubs, live music, and late-night adventures"},
	{"wellness-retreat", "Wellness & Retreat", "Spas, meditation, yoga, and self-care experiences"},
	{"family-fun", "Family Fun", "Kid-friendly activities and family bonding experiences"},
}

var archetypes = map[string][]string{
	"chill-scenic":     {"scenic viewpoints", "peaceful gardens", "lakeside walks", "sunset spots"},
	"bougie-foodie":    {"michelin restaurants", "wine tastings", "cooking classes", "food markets"},
	"urban-explorer":   {"street art tours", "rooftop bars", "local neighborhoods", "hidden gems"},
	"adventure-seeker": {"hiking trails", "water sports", "extreme activities", "outdoor adventures"},
	"culture-vulture":  {"museums", "historical sites", "art galleries", "cultural centers"},
	"nightlife-lover":  {"clubs", "bars", "live music", "night markets"},
	"wellness-retreat": {"spas", "yoga classes", "meditation centers", "wellness resorts"},
	"family-fun":       {"family attractions", "kid-friendly activities", "parks", "interactive museums"},
}

var tips = map[string][]string{
	"chill-scenic":     {"Bring a camera for amazing photo opportunities", "Pack comfortable walking shoes"},
	"bougie-foodie":    {"Make reservations in advance", "Ask locals for hidden gem recommendations"},
	"urban-explorer":   {"Download offline maps", "Keep some cash for street vendors"},
	"adventure-seeker": {"Check weather conditions", "Bring proper gear and safety equipment"},
	"culture-vulture":  {"Book tickets online to avoid queues", "Consider guided tours for deeper insights"},
	"nightlife-lover":  {"Start early to hit multiple spots", "Stay hydrated and pace yourself"},
	"wellness-retreat": {"Book spa treatments in advance", "Bring comfortable, breathable clothing"},
	"family-fun":       {"Check age restrictions", "Plan for rest breaks between activities"},
}

var genericTips = []string{
	"Stay flexible and enjoy the moment",
	"Ask locals for recommendations",
}

// Indoor or shaded alternatives keyed by the originally scheduled activity.
// Activities without an entry stay as scheduled.
var indoorAlternatives = map[string]string{
	"scenic viewpoints": "art galleries with city views",
	"outdoor markets":   "covered markets or shopping centers",
	"hiking trails":     "museum tours",
	"beach activities":  "aquarium visits",
}

// Vibes returns the selectable travel styles in display order.
func Vibes() []Vibe {
	out := make([]Vibe, len(vibes))
	copy(out, vibes)
	return out
}

// Known reports whether the tag has a dedicated archetype list.
func Known(vibe string) bool {
	_, ok := archetypes[vibe]
	return ok
}

// Archetypes returns the ordered activity archetypes for a vibe. Unknown
// vibes resolve to the urban-explorer list.
func Archetypes(vibe string) []string {
	list, ok := archetypes[vibe]
	if !ok {
		list = archetypes[FallbackVibe]
	}
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// Tips returns the tip pair for a vibe, or the generic pair for unknown vibes.
func Tips(vibe string) []string {
	list, ok := tips[vibe]
	if !ok {
		list = genericTips
	}
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// IndoorAlternative returns the indoor/shaded substitute for an activity
// name, if the substitution table has one.
func IndoorAlternative(activity string) (string, bool) {
	alt, ok := indoorAlternatives[activity]
	return alt, ok
}
