package model

import "time"

// EventRecord is one journaled engine event: a queryable log entry of
// something the engine announced, type tag plus free-text message.
type EventRecord struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Type      string    `gorm:"size:32;not null;index" json:"type"`
	Message   string    `gorm:"size:512;not null" json:"message"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}
