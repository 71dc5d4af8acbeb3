package reservation

import "time"

// ======================================================
// Time-Slot Catalog
// ======================================================

const (
	// TotalCapacity is the number of seats servable across all
	// overlapping reservations at one slot.
	TotalCapacity = 50

	// LeadTime is the minimum advance notice for same-day bookings.
	LeadTime = 120 * time.Minute

	// MaxPartySize: larger parties are asked to call the restaurant.
	MaxPartySize = 20

	// MaxAdvanceDays bounds how far ahead a table can be booked.
	MaxAdvanceDays = 60

	// ClosedWeekday is the weekly closing day.
	ClosedWeekday = time.Monday

	slotInterval = 30 * time.Minute
)

type serviceWindow struct {
	open  string
	close string
}

// Lunch and dinner service. The close time is the last seating, not
// the time the kitchen shuts.
var serviceWindows = []serviceWindow{
	{open: "11:00", close: "14:30"},
	{open: "17:00", close: "21:30"},
}

// AllSlots returns every nominal seating time of a business day in
// chronological order, formatted HH:MM.
func AllSlots() []string {
	var slots []string
	for _, w := range serviceWindows {
		open := mustParseHM(w.open)
		close := mustParseHM(w.close)
		for cur := open; !cur.After(close); cur = cur.Add(slotInterval) {
			slots = append(slots, cur.Format("15:04"))
		}
	}
	return slots
}

// SlotsFor returns the catalog for a given date, empty on the weekly
// closing day.
func SlotsFor(date time.Time) []string {
	if date.Weekday() == ClosedWeekday {
		return []string{}
	}
	return AllSlots()
}

func mustParseHM(hm string) time.Time {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		panic("bad service window time: " + hm)
	}
	return t
}

// slotMinutes converts an HH:MM slot to minutes since midnight.
func slotMinutes(slot string) int {
	t := mustParseHM(slot)
	return t.Hour()*60 + t.Minute()
}
