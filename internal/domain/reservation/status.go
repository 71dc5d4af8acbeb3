package reservation

// ======================================================
// Reservation Status
// ======================================================

type Status string

const (
	StatusPending   Status = "Pending"
	StatusApproved  Status = "Approved"
	StatusCancelled Status = "Cancelled"
	StatusCompleted Status = "Completed"
)

// CountsTowardCapacity reports whether a reservation in this status
// still holds its seats. Cancelled and Completed bookings release them.
func CountsTowardCapacity(s Status) bool {
	return s == StatusPending || s == StatusApproved
}

func InitialStatus() Status {
	return StatusPending
}
