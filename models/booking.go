package models

import "time"

// Booking reserves a table for a date and start time. Date and Time keep the
// wire formats "2006-01-02" and "15:04"; the availability engine parses them
// into an instant when checking conflicts.
type Booking struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	BookingID string    `json:"booking_id" gorm:"uniqueIndex;not null"`
	TableID   int       `json:"table_id" gorm:"not null"`
	Date      string    `json:"date" gorm:"size:20;not null"`
	Time      string    `json:"time" gorm:"size:10;not null"`
	PartySize int       `json:"party_size" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}
