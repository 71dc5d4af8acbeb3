package models

import "time"

type Order struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID *uint `json:"user_id"`
	User   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user,omitempty"`

	// Walk-in customers order without an account.
	CustomerName  string `gorm:"size:100" json:"customer_name"`
	CustomerEmail string `gorm:"size:100" json:"customer_email"`
	CustomerPhone string `gorm:"size:20" json:"customer_phone"`

	OrderType       string `gorm:"size:20" json:"order_type"`
	DeliveryAddress string `gorm:"size:255" json:"delivery_address"`

	Status        string  `gorm:"size:50;default:'Pending'" json:"status"`
	TotalAmount   float64 `json:"total_amount"`
	EstimatedTime *int    `json:"estimated_time"`

	// Readable item summary ("Margherita (2), Tiramisu (1)"), kept
	// denormalized so the order board can render without a join.
	MenuName string `gorm:"type:text" json:"menu_name"`

	OrderDate time.Time `gorm:"autoCreateTime" json:"order_date"`
	UpdatedAt time.Time `json:"updated_at"`
}

type OrderItem struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OrderID uint  `gorm:"index" json:"order_id"`
	Order   Order `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	MenuItemID uint     `json:"menu_item_id"`
	MenuItem   MenuItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"menu_item"`

	Quantity int `json:"quantity"`

	// Price is snapshotted at order time; later menu edits must not
	// change what the customer was charged.
	Price    float64 `json:"price"`
	Subtotal float64 `json:"subtotal"`

	CreatedAt time.Time `json:"created_at"`
}
