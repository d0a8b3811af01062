package events

import (
	"context"
	"log/slog"
	"time"
)

// Event types emitted by form submissions.
const (
	TypeReviewSubmitted       = "review.submitted"
	TypeTeacherAdded          = "teacher.added"
	TypeCourseProposed        = "course.proposed"
	TypeSchoolProposed        = "school.proposed"
	TypeResourceSubmitted     = "resource.submitted"
	TypeAmbassadorApplication = "application.ambassador"
	TypeAdminApplication      = "application.admin"
	TypeVerificationRequested = "verification.requested"
	TypeVerificationConfirmed = "verification.confirmed"
	TypeContactComment        = "contact.comment"
	TypeDonation              = "donation.pledged"
)

type Event struct {
	Type       string    `json:"type"`
	SessionID  string    `json:"sessionId"`
	Payload    any       `json:"payload"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Publisher interface for messaging (NATS/Kafka)
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// LogPublisher only logs events. Used when no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, event Event) error {
	p.logger.InfoContext(ctx, "event recorded", "type", event.Type, "session_id", event.SessionID)
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
