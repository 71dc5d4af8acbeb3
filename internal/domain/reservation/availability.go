package reservation

import "time"

// ======================================================
// Availability Calculator
// ======================================================

// AvailabilityInput carries everything the calculator needs. Booked is
// the aggregate guest count per HH:MM slot for the requested date,
// summed over reservations that still count toward capacity. Now is
// the current wall-clock time in the restaurant's timezone.
type AvailabilityInput struct {
	Date   time.Time
	Guests int
	Booked map[string]int
	Now    time.Time
}

// AvailableSlots returns the ordered subsequence of catalog slots that
// can seat the party. An empty result is a normal answer, not an
// error: the closed weekday, a fully booked day and an oversized party
// all land here.
//
// Two concurrent bookings can both pass this check and overfill a
// slot; the writer does not re-check capacity. Accepted limitation.
func AvailableSlots(in AvailabilityInput) []string {
	available := []string{}

	for _, slot := range SlotsFor(in.Date) {
		remaining := TotalCapacity - in.Booked[slot]
		if remaining >= in.Guests {
			available = append(available, slot)
		}
	}

	if !sameDay(in.Date, in.Now) {
		return available
	}

	// Same-day bookings need LeadTime of notice.
	cutoff := in.Now.Hour()*60 + in.Now.Minute() + int(LeadTime.Minutes())

	filtered := []string{}
	for _, slot := range available {
		if slotMinutes(slot) >= cutoff {
			filtered = append(filtered, slot)
		}
	}
	return filtered
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
