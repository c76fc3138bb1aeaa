package models

import "time"

// OrderStatus represents the kitchen lifecycle of a dine-in order
type OrderStatus string

const (
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusNotified  OrderStatus = "notified"
)

// CartLine is one cart entry. Price is a snapshot in whole rupees at the time
// the line was added; the catalog price may have moved since.
type CartLine struct {
	Name     string `json:"name" binding:"required"`
	Price    int    `json:"price" binding:"required,min=0"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

type DineInOrder struct {
	ID                 uint        `json:"id" gorm:"primaryKey"`
	OrderID            string      `json:"order_id" gorm:"uniqueIndex;not null"`
	TableNumber        int         `json:"table_number" gorm:"not null"`
	CustomerName       string      `json:"customer_name" gorm:"not null"`
	UserEmail          string      `json:"user_email" gorm:"not null"`
	Items              []CartLine  `json:"items" gorm:"serializer:json;not null"`
	Total              int         `json:"total" gorm:"not null"`
	Status             OrderStatus `json:"status" gorm:"not null;default:'preparing'"`
	EstimatedReadyTime time.Time   `json:"estimated_ready_time" gorm:"not null"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
}

type OnlineOrder struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	OrderID      string     `json:"order_id" gorm:"uniqueIndex;not null"`
	CustomerName string     `json:"customer_name" gorm:"not null"`
	UserEmail    string     `json:"user_email" gorm:"not null"`
	Address      string     `json:"address" gorm:"size:300;not null"`
	Items        []CartLine `json:"items" gorm:"serializer:json;not null"`
	Total        int        `json:"total" gorm:"not null"`
	CreatedAt    time.Time  `json:"created_at"`
}
