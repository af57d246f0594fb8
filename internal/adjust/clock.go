package adjust

import (
	"fmt"
	"strconv"
	"strings"
)

// ShiftClock moves a 12-hour display time ("9:00 AM") forward by the given
// number of minutes. Minute overflow rolls into hours, hours wrap modulo 24
// across the AM/PM boundary, and hour 0 displays as 12. Inputs that do not
// parse are returned unchanged.
func ShiftClock(display string, minutes int) string {
	clockPart, period, ok := strings.Cut(display, " ")
	if !ok {
		return display
	}
	hourPart, minutePart, ok := strings.Cut(clockPart, ":")
	if !ok {
		return display
	}
	hours, err := strconv.Atoi(hourPart)
	if err != nil {
		return display
	}
	mins, err := strconv.Atoi(minutePart)
	if err != nil {
		return display
	}

	total := hours*60 + mins + minutes
	if period == "PM" && hours != 12 {
		total += 12 * 60
	}
	if period == "AM" && hours == 12 {
		total -= 12 * 60
	}

	newHours := (total / 60) % 24
	newMinutes := total % 60

	newPeriod := "AM"
	if newHours >= 12 {
		newPeriod = "PM"
	}

	displayHours := newHours
	if newHours > 12 {
		displayHours = newHours - 12
	} else if newHours == 0 {
		displayHours = 12
	}

	return fmt.Sprintf("%d:%02d %s", displayHours, newMinutes, newPeriod)
}
