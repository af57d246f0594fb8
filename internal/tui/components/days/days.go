package days

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/planora/planora/internal/models"
)

var (
	themeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(10)

	activityStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	tipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("108"))
)

type Model struct {
	viewport viewport.Model
	Trip     *models.Trip
	width    int
	height   int
}

func New(width, height int) Model {
	vp := viewport.New(width, height)
	return Model{viewport: vp}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.Trip == nil {
		return "No trip selected. Pick one from the Trips tab."
	}
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.Render()
}

func (m *Model) SetTrip(trip models.Trip) {
	m.Trip = &trip
	m.viewport.GotoTop()
	m.Render()
}

func (m *Model) Render() {
	if m.Trip == nil {
		m.viewport.SetContent("No trip loaded.")
		return
	}

	var b strings.Builder
	if a := m.Trip.Adjustments; a.Any() {
		if a.Weather != nil {
			b.WriteString(tipStyle.Render(fmt.Sprintf("weather adjusted (%s)", a.Weather.Condition)) + "\n")
		}
		if a.Traffic != nil {
			b.WriteString(tipStyle.Render(fmt.Sprintf("times shifted +%d min", a.Traffic.DelayMinutes)) + "\n")
		}
		if a.Fatigue != nil {
			b.WriteString(tipStyle.Render(fmt.Sprintf("fatigue reported: %s", a.Fatigue.Level)) + "\n")
		}
		b.WriteString("\n")
	}
	for _, day := range m.Trip.Itinerary.Days {
		b.WriteString(fmt.Sprintf("Day %d  %s\n", day.Index, themeStyle.Render(formatTheme(day.Theme))))

		for _, slot := range models.Slots() {
			a := day.Activity(slot)
			b.WriteString(fmt.Sprintf("  %s %s\n", timeStyle.Render(a.Time), activityStyle.Render(a.Name)))
			b.WriteString(fmt.Sprintf("  %s %s\n", timeStyle.Render(""), detailStyle.Render(
				fmt.Sprintf("%s | %s | cost %d", a.Location, a.Duration, a.Cost))))
		}

		for _, tip := range day.Tips {
			b.WriteString(tipStyle.Render(fmt.Sprintf("  tip: %s", tip)) + "\n")
		}
		for _, alt := range day.Alternatives {
			b.WriteString(detailStyle.Render(fmt.Sprintf("  alt: %s", alt)) + "\n")
		}
		b.WriteString("\n")
	}
	m.viewport.SetContent(b.String())
}

func formatTheme(theme string) string {
	return strings.ReplaceAll(theme, "-", " & ")
}
