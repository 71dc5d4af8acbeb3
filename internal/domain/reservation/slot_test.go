package reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllSlots(t *testing.T) {
	slots := AllSlots()

	require.Len(t, slots, 18)

	assert.Equal(t, "11:00", slots[0])
	assert.Equal(t, "14:30", slots[7])
	assert.Equal(t, "17:00", slots[8])
	assert.Equal(t, "21:30", slots[17])

	// Chronological order.
	for i := 1; i < len(slots); i++ {
		assert.Less(t, slotMinutes(slots[i-1]), slotMinutes(slots[i]))
	}

	// No slot falls in the afternoon break.
	for _, slot := range slots {
		m := slotMinutes(slot)
		assert.False(t, m > 14*60+30 && m < 17*60, "unexpected slot %s", slot)
	}
}

func TestSlotsForClosedDay(t *testing.T) {
	monday := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Monday, monday.Weekday())

	assert.Empty(t, SlotsFor(monday))

	tuesday := monday.AddDate(0, 0, 1)
	assert.Len(t, SlotsFor(tuesday), 18)
}
