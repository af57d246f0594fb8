package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/planora/planora/internal/models"
	"github.com/planora/planora/internal/storage"
	"github.com/planora/planora/internal/tui/components/days"
	"github.com/planora/planora/internal/tui/components/triplist"
)

type SessionState int

const (
	StateTrips SessionState = iota
	StateDays
	StateKit
)

const tabCount = 3

type Model struct {
	store    storage.Provider
	state    SessionState
	keys     KeyMap
	help     help.Model
	tripList triplist.Model
	daysView days.Model
	selected *models.Trip
	quitting bool
	width    int
	height   int
	loadErr  error
}

func NewModel(store storage.Provider) Model {
	trips, err := store.ListTrips()
	if err != nil {
		trips = []models.Trip{}
	}

	m := Model{
		store:    store,
		state:    StateTrips,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		tripList: triplist.New(trips, 0, 0),
		daysView: days.New(0, 0),
		loadErr:  err,
	}

	// Preselect the latest trip so the Days and Kit tabs have content
	// before the user opens one explicitly.
	if len(trips) > 0 {
		latest := trips[len(trips)-1]
		m.selected = &latest
		m.daysView.SetTrip(latest)
	}

	return m
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateTrips:
		keys = append(keys, m.keys.Enter, m.keys.Refresh)
	case StateDays:
		keys = append(keys, m.keys.Up, m.keys.Down)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter, m.keys.Refresh}
	return [][]key.Binding{global, navigation}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) reloadTrips() {
	trips, err := m.store.ListTrips()
	if err != nil {
		m.loadErr = err
		return
	}
	m.loadErr = nil
	m.tripList.SetTrips(trips)

	// Keep the selection in sync with any adjustments saved since the
	// program started.
	if m.selected != nil {
		for _, t := range trips {
			if t.ID == m.selected.ID {
				m.selected = &t
				m.daysView.SetTrip(t)
				break
			}
		}
	}
}
