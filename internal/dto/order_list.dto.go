package dto

import "time"

type OrderListDTO struct {
	ID            uint      `json:"id"`
	CustomerName  string    `json:"customer_name"`
	OrderType     string    `json:"order_type"`
	Status        string    `json:"status"`
	TotalAmount   float64   `json:"total_amount"`
	OrderDate     time.Time `json:"order_date"`
	EstimatedTime *int      `json:"estimated_time"`
	CustomerEmail string    `json:"customer_email"`
	CustomerPhone string    `json:"customer_phone"`
	DeliveryAddr  string    `json:"delivery_address"`
	MenuName      string    `json:"menu_name"`
}

type OrderItemDTO struct {
	ID              uint    `json:"id"`
	MenuItemID      uint    `json:"menu_item_id"`
	Quantity        int     `json:"quantity"`
	ItemPrice       float64 `json:"item_price"`
	ItemTotal       float64 `json:"item_total"`
	ItemName        string  `json:"item_name"`
	ItemDescription string  `json:"item_description"`
}
