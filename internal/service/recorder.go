package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/akshayraj18/mealfix-analytics/internal/domain"
	"github.com/akshayraj18/mealfix-analytics/internal/queue"
	"github.com/akshayraj18/mealfix-analytics/internal/repository"
)

// SignupCounter is the real-time counter incremented on user_signup events.
const SignupCounter = "total_signups"

// Session identifies one run of the recording process. It is constructed
// explicitly at startup and passed to the recorder, never held as
// package-level state.
type Session struct {
	ID         string
	Platform   string
	AppVersion string
}

// NewSession creates a session with a fresh id.
func NewSession(platform, appVersion string) Session {
	return Session{
		ID:         uuid.NewString(),
		Platform:   platform,
		AppVersion: appVersion,
	}
}

// ClientEvent is an event as reported by a mobile or web client, carrying
// its own session and build information.
type ClientEvent struct {
	EventName       string
	SubjectID       string
	SessionID       string
	Platform        string
	AppVersion      string
	ClientTimestamp int64
	Attributes      any
}

// Recorder appends events to the durable log (via the ingest queue) and
// bumps real-time counters for counter-eligible event names. Both writes
// are independent and both swallow failures: a dropped event is logged to
// the diagnostic sink, never surfaced to the caller.
type Recorder struct {
	publisher queue.EventPublisher
	counters  repository.CounterRepository
	session   Session
	log       *zap.Logger
}

// NewRecorder creates an event recorder bound to an explicit session.
func NewRecorder(publisher queue.EventPublisher, counters repository.CounterRepository, session Session, log *zap.Logger) *Recorder {
	return &Recorder{
		publisher: publisher,
		counters:  counters,
		session:   session,
		log:       log,
	}
}

// computeEventID generates a deterministic event ID based on event content.
// Uses SHA-256 of: subject_id|event_name|client_timestamp|session_id|attributes.
// Replays of the same logical event collapse to one row in the log.
func computeEventID(e *domain.EventRecord) string {
	data := fmt.Sprintf("%s|%s|%d|%s|%s",
		e.SubjectID,
		e.EventName,
		e.ClientTimestamp,
		e.SessionID,
		e.Attributes,
	)

	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}

// Record appends one event under the recorder's own session, stamping the
// client timestamp at call time.
func (r *Recorder) Record(ctx context.Context, eventName, subjectID string, attrs any) {
	r.RecordClientEvent(ctx, ClientEvent{
		EventName:       eventName,
		SubjectID:       subjectID,
		ClientTimestamp: time.Now().Unix(),
		Attributes:      attrs,
	})
}

// RecordClientEvent appends one client-reported event. Missing session and
// build fields fall back to the recorder's session.
func (r *Recorder) RecordClientEvent(ctx context.Context, ev ClientEvent) {
	if ev.EventName == "" {
		r.log.Warn("Dropping event without a name")
		return
	}

	subjectID := ev.SubjectID
	if subjectID == "" {
		subjectID = domain.AnonymousSubject
	}

	sessionID := ev.SessionID
	if sessionID == "" {
		sessionID = r.session.ID
	}
	platform := ev.Platform
	if platform == "" {
		platform = r.session.Platform
	}
	appVersion := ev.AppVersion
	if appVersion == "" {
		appVersion = r.session.AppVersion
	}
	clientTimestamp := ev.ClientTimestamp
	if clientTimestamp == 0 {
		clientTimestamp = time.Now().Unix()
	}

	attributes, err := domain.EncodeAttributes(ev.Attributes)
	if err != nil {
		r.log.Warn("Dropping event with unencodable attributes",
			zap.String("event_name", ev.EventName),
			zap.Error(err))
		return
	}

	record := &domain.EventRecord{
		EventName:       ev.EventName,
		SubjectID:       subjectID,
		SessionID:       sessionID,
		Platform:        platform,
		AppVersion:      appVersion,
		ClientTimestamp: clientTimestamp,
		Attributes:      attributes,
	}
	record.EventID = computeEventID(record)

	// Primary write: toward the append-only event store. No retry; a
	// failed write drops the event.
	if err := r.publisher.PublishEvent(ctx, record); err != nil {
		r.log.Error("Failed to record event, dropping",
			zap.String("event_id", record.EventID),
			zap.String("event_name", record.EventName),
			zap.Error(err))
	}

	// Secondary write: real-time counter, independent of the primary.
	if counter, ok := counterFor(record.EventName); ok {
		if err := r.counters.Increment(ctx, counter); err != nil {
			r.log.Error("Failed to increment counter",
				zap.String("counter", counter),
				zap.String("event_name", record.EventName),
				zap.Error(err))
		}
	}
}

// RecordBatch appends a batch of queued client events, typically flushed
// after a client regains connectivity. Each event is recorded
// independently; one bad event never blocks the rest.
func (r *Recorder) RecordBatch(ctx context.Context, events []ClientEvent) {
	for i := range events {
		r.RecordClientEvent(ctx, events[i])
	}
}

// TrackConversion records an A/B test conversion under the reserved
// conversion event name.
func (r *Recorder) TrackConversion(ctx context.Context, subjectID, testName, metricName string, value float64) {
	r.Record(ctx, domain.EventConversion, subjectID, &domain.ConversionAttrs{
		Test:   testName,
		Metric: metricName,
		Value:  value,
	})
}

// counterFor maps counter-eligible event names to their counters.
func counterFor(eventName string) (string, bool) {
	if eventName == domain.EventUserSignup {
		return SignupCounter, true
	}
	return "", false
}
