package events

import (
	"encoding/json"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// NewAuditRouter wires a router that logs every domain event as a structured
// audit line. The caller runs and closes the router.
func NewAuditRouter(bus *Bus, logger *slog.Logger) (*message.Router, error) {
	router, err := message.NewRouter(message.RouterConfig{}, watermill.NewSlogLogger(logger))
	if err != nil {
		return nil, err
	}

	router.AddNoPublisherHandler(
		"audit-log",
		TopicEvents,
		bus.Subscriber(),
		func(msg *message.Message) error {
			var ev Event
			if err := json.Unmarshal(msg.Payload, &ev); err != nil {
				logger.Warn("audit: undecodable event payload", "message_id", msg.UUID)
				return nil
			}
			logger.Info("audit",
				"event_id", ev.ID,
				"event_type", ev.Type,
				"occurred_at", ev.OccurredAt,
				"data", ev.Data)
			return nil
		},
	)
	return router, nil
}
