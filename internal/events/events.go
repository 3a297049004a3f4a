package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// TopicEvents carries every domain event. Consumers filter on Event.Type.
const TopicEvents = "records.events"

// Event types published by the services.
const (
	TypeStudentEnrolled        = "roster.student_enrolled"
	TypeStudentRemoved         = "roster.student_removed"
	TypeCredentialBootstrapped = "credential.bootstrap_completed"
	TypeOTPIssued              = "credential.otp_issued"
	TypePasswordReset          = "credential.password_reset"
	TypeTimetablePublished     = "timetable.published"
	TypeCycleAdvanced          = "cycle.advanced"
)

type Event struct {
	ID         string                 `json:"id"`
	Type       string                 `json:"type"`
	OccurredAt time.Time              `json:"occurred_at"`
	Data       map[string]interface{} `json:"data,omitempty"`
}

func NewEvent(eventType string, data map[string]interface{}) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	}
}

// EventPublisher is the seam services publish through; the bus below is the
// production implementation and MockEventPublisher the test double.
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// Bus is an in-process pub/sub over watermill's gochannel transport. The
// records core defines no network boundary, so events never leave the process;
// an embedding host may bridge them to a real broker.
type Bus struct {
	pubsub *gochannel.GoChannel
}

func NewBus(logger *slog.Logger) *Bus {
	return &Bus{
		pubsub: gochannel.NewGoChannel(gochannel.Config{}, watermill.NewSlogLogger(logger)),
	}
}

func (b *Bus) Publish(_ context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	msg := message.NewMessage(event.ID, payload)
	return b.pubsub.Publish(TopicEvents, msg)
}

// Subscriber exposes the underlying transport for router wiring.
func (b *Bus) Subscriber() message.Subscriber {
	return b.pubsub
}

func (b *Bus) Close() error {
	return b.pubsub.Close()
}

// ===== TEST DOUBLE =====

// MockEventPublisher records published events for assertions.
type MockEventPublisher struct {
	mu     sync.Mutex
	logger *slog.Logger
	events []Event
}

func NewMockEventPublisher(logger *slog.Logger) *MockEventPublisher {
	return &MockEventPublisher{logger: logger}
}

func (m *MockEventPublisher) Publish(_ context.Context, event Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	m.logger.Debug("mock publish", "event_type", event.Type)
	return nil
}

func (m *MockEventPublisher) Close() error { return nil }

func (m *MockEventPublisher) GetPublishedEvents() []Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Event(nil), m.events...)
}

func (m *MockEventPublisher) ClearEvents() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = nil
}
