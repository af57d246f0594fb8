package triplist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/planora/planora/internal/models"
)

type OpenTripMsg struct {
	Trip models.Trip
}

type Item struct {
	Trip models.Trip
}

func (i Item) Title() string {
	title := fmt.Sprintf("%s (%s)", i.Trip.Itinerary.Destination, i.Trip.Itinerary.Duration)
	if i.Trip.Adjustments.Any() {
		title += " *"
	}
	return title
}

func (i Item) Description() string {
	return fmt.Sprintf("%s | budget %d | %s",
		i.Trip.CreatedAt.Format("2006-01-02"),
		i.Trip.Itinerary.TotalBudget,
		strings.Join(i.Trip.Itinerary.Vibes, ", "),
	)
}

func (i Item) FilterValue() string { return i.Trip.Itinerary.Destination }

type KeyMap struct {
	Open key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open trip"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(trips []models.Trip, width, height int) Model {
	items := make([]list.Item, len(trips))
	for i, t := range trips {
		items[i] = Item{Trip: t}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.SetShowTitle(false)
	l.SetShowHelp(false) // We handle help globally in the main model

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Open}
	}

	return Model{list: l, keys: keys}
}

func (m *Model) SetTrips(trips []models.Trip) {
	items := make([]list.Item, len(trips))
	for i, t := range trips {
		items[i] = Item{Trip: t}
	}
	m.list.SetItems(items)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		if key.Matches(msg, m.keys.Open) {
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return OpenTripMsg{Trip: i.Trip} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No trips yet.\n  Run 'planora plan' to create one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
