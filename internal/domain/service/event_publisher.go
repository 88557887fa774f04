package service

import (
	"context"
	"time"
)

// PurchaseRecordedEvent announces a committed purchase to downstream consumers such as the ledger auditor.
type PurchaseRecordedEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	PurchaseID int64     `json:"purchase_id"`
	UserID     string    `json:"user_id"`
	ProductID  string    `json:"product_id"`
	Impact     float64   `json:"impact"`
	Timestamp  time.Time `json:"timestamp"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishPurchaseRecorded publishes a purchase event for async processing
	PublishPurchaseRecorded(ctx context.Context, event *PurchaseRecordedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
