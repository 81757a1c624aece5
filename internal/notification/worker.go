package notification

import (
	"context"
	"log"
	"net/http"

	"github.com/SherClockHolmes/webpush-go"

	"easypark-backend/internal/lot"
)

// Event is one engine announcement queued for push delivery.
type Event struct {
	Type    lot.EventType
	Message string
}

// Sender defines the interface for sending a web push notification.
type Sender interface {
	Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error)
}

// WebPushSender is the real implementation of Sender using the webpush
// library.
type WebPushSender struct{}

// Send sends a notification using the webpush library.
func (s *WebPushSender) Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
	return webpush.SendNotification(payload, sub, options)
}

// WorkerPool fans parking events out to push subscribers in the background.
// It observes the engine, so enqueueing must never block: when the queue is
// full the event is dropped with a log line rather than stalling the
// allocation call that produced it.
type WorkerPool struct {
	size     int
	jobs     chan Event
	registry *Registry
	webpush  *webpush.Options
	sender   Sender
}

// NewWorkerPool creates a new worker pool over the given registry.
func NewWorkerPool(size, queueSize int, registry *Registry, webpushOptions *webpush.Options) *WorkerPool {
	return &WorkerPool{
		size:     size,
		jobs:     make(chan Event, queueSize),
		registry: registry,
		webpush:  webpushOptions,
		sender:   &WebPushSender{},
	}
}

// Start launches the worker goroutines.
func (wp *WorkerPool) Start(ctx context.Context) {
	for i := 0; i < wp.size; i++ {
		go wp.worker(ctx, i)
	}
}

func (wp *WorkerPool) worker(ctx context.Context, id int) {
	log.Printf("Push worker %d started", id)
	for {
		select {
		case ev := <-wp.jobs:
			wp.deliver(ctx, ev)
		case <-ctx.Done():
			log.Printf("Push worker %d shutting down", id)
			return
		}
	}
}

// OnEvent implements lot.Observer. Only actual state changes are pushed;
// failures and lot creation stay in the journal and the log.
func (wp *WorkerPool) OnEvent(eventType lot.EventType, message string) {
	if eventType != lot.EventVehicleParked && eventType != lot.EventVehicleRemoved {
		return
	}
	select {
	case wp.jobs <- Event{Type: eventType, Message: message}:
	default:
		log.Printf("Push queue full, dropping %s event", eventType)
	}
}

// Jobs returns the jobs channel for testing.
func (wp *WorkerPool) Jobs() chan Event {
	return wp.jobs
}

// deliver sends one event to every registered subscription.
func (wp *WorkerPool) deliver(ctx context.Context, ev Event) {
	subs := wp.registry.All()
	if len(subs) == 0 {
		return
	}

	log.Printf("Sending %d notifications for %s event", len(subs), ev.Type)
	for _, sub := range subs {
		wp.send(ctx, sub, []byte(ev.Message))
	}
}

// send delivers a single web push notification.
func (wp *WorkerPool) send(_ context.Context, sub Subscription, payload []byte) {
	wpSub := &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256DH,
			Auth:   sub.Auth,
		},
	}

	resp, err := wp.sender.Send(payload, wpSub, wp.webpush)
	if err != nil {
		log.Printf("Error sending notification to %s: %v", sub.Endpoint, err)
		return
	}
	defer resp.Body.Close()

	// The push service reports expired subscriptions with 410 Gone.
	if resp.StatusCode == http.StatusGone {
		log.Printf("Subscription for endpoint %s is expired. Deleting.", sub.Endpoint)
		wp.registry.Delete(sub.Endpoint)
	}
}
