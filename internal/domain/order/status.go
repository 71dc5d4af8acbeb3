package order

import "strings"

// Known order lifecycle values. The status board writes whatever the
// admin picked; updates are not validated against this set.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusConfirmed Status = "Confirmed"
	StatusPreparing Status = "Preparing"
	StatusReady     Status = "Ready"
	StatusDelivered Status = "Delivered"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

// Order types offered at checkout, in the wire casing the client
// sends.
const (
	TypeDineIn   = "dine-in"
	TypePickup   = "pickup"
	TypeDelivery = "delivery"
)

// NormalizeType folds an order type to the wire casing so checks
// against the constants match regardless of how the client cased it.
func NormalizeType(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
