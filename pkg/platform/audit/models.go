package audit

import (
	"context"
	"time"
)

// EventCategory classifies audit events so sinks can route and retain them differently.
type EventCategory string

const (
	// CategoryCompliance covers changes to an applicant's record or review outcome.
	CategoryCompliance EventCategory = "compliance"
	// CategorySecurity covers authentication and access-control events.
	CategorySecurity EventCategory = "security"
	// CategoryOperations covers routine reads and exports.
	CategoryOperations EventCategory = "operations"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Category  EventCategory
	Timestamp time.Time
	// Subject identifies the record acted on, e.g. "crew:12" or "admin:admin".
	Subject   string
	Action    string
	Decision  string
	Reason    string
	RequestID string
	// ActorID is the admin username for back-office actions, empty for applicants.
	ActorID  string
	ClientIP string
	Device   string
}

type AuditEvent string

const (
	// Applicant events
	EventCrewRegistered     AuditEvent = "crew_registered"
	EventStaffRegistered    AuditEvent = "staff_registered"
	EventDocumentsUploaded  AuditEvent = "documents_uploaded"
	EventProfileTokenIssued AuditEvent = "profile_token_issued"
	EventProfileAccessed    AuditEvent = "profile_accessed"
	EventProfileDenied      AuditEvent = "profile_access_denied"
	EventApplicationTracked AuditEvent = "application_tracked"

	// Review events
	EventStatusChanged AuditEvent = "status_changed"
	EventStatusIgnored AuditEvent = "status_action_ignored"
	EventExported      AuditEvent = "applicants_exported"

	// Admin session events
	EventAdminLogin       AuditEvent = "admin_login"
	EventAdminLoginFailed AuditEvent = "admin_login_failed"
	EventAdminLogout      AuditEvent = "admin_logout"

	// Rate limit events
	EventRateLimitExceeded AuditEvent = "rate_limit_exceeded"
)

var eventCategories = map[AuditEvent]EventCategory{
	EventCrewRegistered:     CategoryCompliance,
	EventStaffRegistered:    CategoryCompliance,
	EventDocumentsUploaded:  CategoryCompliance,
	EventStatusChanged:      CategoryCompliance,
	EventProfileTokenIssued: CategorySecurity,
	EventProfileDenied:      CategorySecurity,
	EventAdminLogin:         CategorySecurity,
	EventAdminLoginFailed:   CategorySecurity,
	EventAdminLogout:        CategorySecurity,
	EventRateLimitExceeded:  CategorySecurity,
	EventProfileAccessed:    CategoryOperations,
	EventApplicationTracked: CategoryOperations,
	EventStatusIgnored:      CategoryOperations,
	EventExported:           CategoryOperations,
}

// Category returns the EventCategory for this audit event.
// Unknown events default to CategoryOperations.
func (e AuditEvent) Category() EventCategory {
	if cat, ok := eventCategories[e]; ok {
		return cat
	}
	return CategoryOperations
}

// Sink receives audit events. Stores and message-bus producers both satisfy it.
type Sink interface {
	Append(ctx context.Context, event Event) error
}

// Store is a Sink that can also be queried.
type Store interface {
	Sink
	ListBySubject(ctx context.Context, subject string) ([]Event, error)
	ListRecent(ctx context.Context, limit int) ([]Event, error)
}
