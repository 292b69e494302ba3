package models

import "gorm.io/gorm"

// Product represents one beverage in the fixed catalog. Stock stays in
// [0, MaxStock]: the only increase path is the wraparound reset in
// InventoryService.Sell.
type Product struct {
	ID         string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string  `json:"name" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=1,max=100"`
	Price      float64 `json:"price" validate:"required,gt=0"`
	Stock      int     `json:"stock" validate:"gte=0"`
	gorm.Model         // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// MaxStock is both the seed quantity for every product and the level a
// product wraps back to when a sale exhausts it.
const MaxStock = 60

// UnitPrice is the flat price for every product in the catalog.
const UnitPrice = 50.0

// CatalogNames is the fixed product set, in display order.
var CatalogNames = []string{"Coke", "Diet Coke", "Sprite", "Red Bull", "Monster"}
