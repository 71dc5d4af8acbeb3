package reservation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/smartbistro/restaurant-api/internal/httperr"
	"github.com/smartbistro/restaurant-api/internal/validators"
)

// ======================================================
// Reservation Writer validation
// ======================================================

const DateLayout = "2006-01-02"

// Hours may be one or two digits, minutes and seconds must be two.
// "18:5" is rejected, "8:30:00" is accepted.
var timePattern = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]:[0-5][0-9]$`)

type Request struct {
	UserID          *uint
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	Date            string
	Time            string
	Guests          int
	SpecialRequests string
}

// ParseDate reads a YYYY-MM-DD calendar date in the given location.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	date, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, httperr.ErrBusiness("invalid_date", "Invalid date. Please use YYYY-MM-DD format.")
	}
	return date, nil
}

// NormalizeTime accepts HH:MM or HH:MM:SS and returns HH:MM:SS.
func NormalizeTime(s string) (string, error) {
	s = strings.TrimSpace(s)
	if strings.Count(s, ":") == 1 {
		s += ":00"
	}
	if !timePattern.MatchString(s) {
		return "", httperr.ErrBusiness("invalid_time", "Invalid time format. Please use HH:MM format (e.g., 14:30)")
	}
	return s, nil
}

// Validate checks a booking request and returns it with the time
// normalized to HH:MM:SS. Capacity is deliberately not checked here;
// that is the calculator's advisory job.
func (r *Request) Validate(now time.Time) error {
	if strings.TrimSpace(r.CustomerName) == "" || strings.TrimSpace(r.CustomerEmail) == "" ||
		r.Date == "" || r.Time == "" {
		return httperr.ErrBusiness("missing_fields", "Missing required fields: customerName, customerEmail, date, time, guests")
	}

	if !validators.IsEmailValid(r.CustomerEmail) {
		return httperr.ErrBusiness("invalid_email", "Please enter a valid email address")
	}

	if r.Guests < 1 {
		return httperr.ErrBusiness("invalid_guests", "Number of guests must be a positive number")
	}
	if r.Guests > MaxPartySize {
		return httperr.ErrBusiness("party_too_large",
			fmt.Sprintf("For parties over %d guests, please contact the restaurant directly", MaxPartySize))
	}

	date, err := ParseDate(r.Date, now.Location())
	if err != nil {
		return err
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if date.Before(today) {
		return httperr.ErrBusiness("date_in_past", "Please select a future date")
	}
	if date.After(today.AddDate(0, 0, MaxAdvanceDays)) {
		return httperr.ErrBusiness("date_too_far",
			fmt.Sprintf("Reservations can be made at most %d days in advance", MaxAdvanceDays))
	}

	normalized, err := NormalizeTime(r.Time)
	if err != nil {
		return err
	}
	r.Time = normalized

	return nil
}
