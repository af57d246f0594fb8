package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/planora/planora/internal/tui/components/triplist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		// Reserve rows for the tab bar and the help line.
		m.tripList.SetSize(msg.Width-4, msg.Height-6)
		m.daysView.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case triplist.OpenTripMsg:
		trip := msg.Trip
		m.selected = &trip
		m.daysView.SetTrip(trip)
		m.state = StateDays
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			if m.state == StateTrips {
				m.reloadTrips()
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case StateTrips:
		m.tripList, cmd = m.tripList.Update(msg)
	case StateDays:
		m.daysView, cmd = m.daysView.Update(msg)
	}
	return m, cmd
}
