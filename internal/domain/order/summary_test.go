package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummary(t *testing.T) {
	assert.Equal(t, "No items", Summary(nil))

	got := Summary([]SummaryItem{
		{Name: "Margherita", Quantity: 2},
		{Name: "Tiramisu", Quantity: 1},
	})
	assert.Equal(t, "Margherita (2), Tiramisu (1)", got)
}

func TestNormalizeType(t *testing.T) {
	for in, want := range map[string]string{
		"delivery":   TypeDelivery,
		"Delivery":   TypeDelivery,
		" DELIVERY ": TypeDelivery,
		"Dine-in":    TypeDineIn,
		"pickup":     TypePickup,
	} {
		assert.Equal(t, want, NormalizeType(in), "input %q", in)
	}
}
