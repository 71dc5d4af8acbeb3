package order

import (
	"fmt"
	"strings"
)

type SummaryItem struct {
	Name     string
	Quantity int
}

// Summary builds the denormalized item list stored on the order,
// e.g. "Margherita (2), Tiramisu (1)".
func Summary(items []SummaryItem) string {
	if len(items) == 0 {
		return "No items"
	}

	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, fmt.Sprintf("%s (%d)", it.Name, it.Quantity))
	}
	return strings.Join(parts, ", ")
}
