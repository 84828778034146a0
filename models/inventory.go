package models

import (
	"time"
)

// InventoryItem is a spare part or consumable. Stock is not consumed by
// services; the two stay decoupled.
type InventoryItem struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	Name       string  `gorm:"not null" json:"name"`
	PartNumber string  `json:"part_number"`
	Category   string  `json:"category"` // filter, coil, capacitor, gas, other
	Stock      int     `gorm:"default:0" json:"stock"`
	UnitPrice  float64 `gorm:"type:decimal(10,2);default:0.0" json:"unit_price"`
	Supplier   string  `json:"supplier"`
	Notes      string  `json:"notes"`

	CreatedAt time.Time `json:"created_at"`
}

func (InventoryItem) TableName() string {
	return "inventory"
}
