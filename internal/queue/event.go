// Package queue defines the audit events emitted for every committed
// admin action and the broker plumbing that carries them. Publishing is
// fire-and-forget: a broker outage never blocks or fails a store
// mutation.
package queue

import (
	"time"

	"github.com/google/uuid"
)

const auditQueueName = "catalog.audit"

// Audit actions.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// AuditEvent records one committed create, update or delete.
type AuditEvent struct {
	EventID    string `json:"event_id"`
	Actor      string `json:"actor"`
	Action     string `json:"action"`
	EntityKind string `json:"entity_kind"`
	EntityID   uint64 `json:"entity_id"`
	Summary    string `json:"summary"`
	OccurredAt string `json:"occurred_at"`
}

// NewAuditEvent stamps a fresh event with a unique id and the current
// time.
func NewAuditEvent(actor, action, entityKind string, entityID uint64, summary string) AuditEvent {
	return AuditEvent{
		EventID:    uuid.NewString(),
		Actor:      actor,
		Action:     action,
		EntityKind: entityKind,
		EntityID:   entityID,
		Summary:    summary,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// Publisher is the surface handlers emit audit events through. The AMQP
// implementation ships them to the catalog.audit queue; tests use
// NopPublisher.
type Publisher interface {
	Publish(ev AuditEvent) error
}

// NopPublisher drops every event. Used when no broker is configured and
// in tests.
type NopPublisher struct{}

func (NopPublisher) Publish(AuditEvent) error { return nil }
