package tui

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/planora/planora/internal/offline"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateTrips:
		content = m.viewTrips()
	case StateDays:
		content = docStyle.Render(m.daysView.View())
	case StateKit:
		content = docStyle.Render(m.viewKit())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Trips", "Days", "Kit"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewTrips() string {
	if m.loadErr != nil {
		return docStyle.Render(bannerStyle.Render("Could not load trips: " + m.loadErr.Error()))
	}
	return docStyle.Render(m.tripList.View())
}

func (m Model) viewKit() string {
	if m.selected == nil {
		return "No trip selected. Pick one from the Trips tab."
	}

	// Seed from creation time so the same trip always shows the same kit.
	kit := offline.Derive(m.selected.Itinerary, rand.New(rand.NewSource(m.selected.CreatedAt.UnixNano())))

	var b strings.Builder
	b.WriteString(bannerStyle.Render("Offline kit: "+kit.Destination) + "\n\n")

	b.WriteString(summaryLabelStyle.Render("Map pins") + fmt.Sprintf("%d saved\n", len(kit.Pins)))
	b.WriteString(summaryLabelStyle.Render("Walking legs") + fmt.Sprintf("%d routes\n", len(kit.WalkingLegs)))
	b.WriteString(summaryLabelStyle.Render("Subway") + fmt.Sprintf("%s per ride, day pass %s\n",
		kit.Transport.Subway.TicketPrice, kit.Transport.Subway.DayPass))
	b.WriteString("\n")

	b.WriteString(summaryLabelStyle.Render("Budget") + fmt.Sprintf("%d total, %d/day\n",
		kit.Budget.TotalBudget, kit.Budget.DailyBudget))
	b.WriteString(summaryLabelStyle.Render("  Food") + fmt.Sprintf("%d\n", kit.Budget.Food))
	b.WriteString(summaryLabelStyle.Render("  Activities") + fmt.Sprintf("%d\n", kit.Budget.Activities))
	b.WriteString(summaryLabelStyle.Render("  Transport") + fmt.Sprintf("%d\n", kit.Budget.Transport))
	b.WriteString(summaryLabelStyle.Render("  Shopping") + fmt.Sprintf("%d\n", kit.Budget.Shopping))
	b.WriteString("\n")

	b.WriteString(summaryLabelStyle.Render("Police") + kit.Emergency.Police + "\n")
	b.WriteString(summaryLabelStyle.Render("Medical") + kit.Emergency.Medical + "\n")
	b.WriteString(summaryLabelStyle.Render("Fire") + kit.Emergency.Fire + "\n")
	b.WriteString(summaryLabelStyle.Render("Tourist line") + kit.Emergency.TouristLine + "\n")
	b.WriteString("\n")

	b.WriteString(summaryLabelStyle.Render("Language") + kit.Language.Language + "\n")
	b.WriteString(summaryLabelStyle.Render("  Phrases") + fmt.Sprintf("%d common, %d food, %d directions\n",
		len(kit.Language.Common), len(kit.Language.Food), len(kit.Language.Directions)))

	return b.String()
}
