package dto

type ReservationListDTO struct {
	ID              uint   `json:"id"`
	CustomerName    string `json:"customer_name"`
	CustomerEmail   string `json:"customer_email"`
	ReservationDate string `json:"reservation_date"`
	ReservationTime string `json:"reservation_time"`
	NumberOfGuests  int    `json:"number_of_guests"`
	Status          string `json:"status"`
	SpecialRequests string `json:"special_requests"`
	TableNumber     *int   `json:"table_number"`
}
