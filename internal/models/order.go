package models

import (
	"time"

	"gorm.io/gorm"
)

// Order is the summary row written once per completed purchase.
// OrderID is a 6-digit random number; it is NOT unique and collisions
// are not detected.
type Order struct {
	Email      string    `json:"email" gorm:"index;type:varchar(255)"`
	OrderID    int       `json:"order_id" gorm:"index"`
	Payment    string    `json:"payment" gorm:"type:varchar(20)"`
	Address    string    `json:"address" gorm:"type:varchar(500)"`
	Date       time.Time `json:"date"`
	gorm.Model           // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// OrderDetail is the line-item row paired 1:1 with an Order by OrderID.
// Orders are single-product, so each summary has exactly one detail.
type OrderDetail struct {
	OrderID    int     `json:"order_id" gorm:"index"`
	Item       string  `json:"item" gorm:"type:varchar(100)"`
	Quantity   int     `json:"quantity"`
	Total      float64 `json:"total"`
	gorm.Model         // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// PaymentMethods lists the accepted payment options.
var PaymentMethods = []string{"Cash", "UPI", "Card"}
