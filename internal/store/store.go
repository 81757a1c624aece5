package store

import (
	"context"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"easypark-backend/internal/lot"
	"easypark-backend/internal/model"
)

// Store defines the journal's database operations.
type Store interface {
	Append(ctx context.Context, eventType lot.EventType, message string) error
	Recent(ctx context.Context, limit int) ([]model.EventRecord, error)
	DB() *gorm.DB
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed journal store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// DB exposes the underlying handle for callers that need raw access.
func (s *gormStore) DB() *gorm.DB {
	return s.db
}

// Append journals a single engine event.
func (s *gormStore) Append(ctx context.Context, eventType lot.EventType, message string) error {
	record := model.EventRecord{
		Type:      string(eventType),
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("failed to journal %s event: %w", eventType, err)
	}
	return nil
}

// Recent returns the newest events, most recent first.
func (s *gormStore) Recent(ctx context.Context, limit int) ([]model.EventRecord, error) {
	var records []model.EventRecord
	err := s.db.WithContext(ctx).
		Order("id DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to read journal: %w", err)
	}
	return records, nil
}

// Recorder adapts a Store into a lot.Observer so every engine event lands in
// the journal. Journal failures are logged and swallowed; the observer
// contract forbids disturbing the engine.
type Recorder struct {
	store Store
}

// NewRecorder creates a journal-writing observer.
func NewRecorder(s Store) *Recorder {
	return &Recorder{store: s}
}

// OnEvent implements lot.Observer.
func (r *Recorder) OnEvent(eventType lot.EventType, message string) {
	if err := r.store.Append(context.Background(), eventType, message); err != nil {
		log.Printf("journal: %v", err)
	}
}
