package events

import (
	"testing"
	"time"
)

func TestNewBaseEvent(t *testing.T) {
	payload := []byte(`{"score":782}`)

	before := time.Now().UTC()
	event := NewBaseEvent("cibil.score.calculated", "score-123", "ScoreCard", payload)
	after := time.Now().UTC()

	if event.EventID() == "" {
		t.Error("expected non-empty event ID")
	}

	if event.EventType() != "cibil.score.calculated" {
		t.Errorf("expected event type %q, got %q", "cibil.score.calculated", event.EventType())
	}

	if event.AggregateID() != "score-123" {
		t.Errorf("expected aggregate ID %q, got %q", "score-123", event.AggregateID())
	}

	if event.AggregateType() != "ScoreCard" {
		t.Errorf("expected aggregate type %q, got %q", "ScoreCard", event.AggregateType())
	}

	if string(event.Payload()) != string(payload) {
		t.Errorf("expected payload %s, got %s", payload, event.Payload())
	}

	if event.OccurredAt().Before(before) || event.OccurredAt().After(after) {
		t.Errorf("expected occurredAt between %v and %v, got %v", before, after, event.OccurredAt())
	}
}

func TestBaseEventImplementsDomainEvent(t *testing.T) {
	var _ DomainEvent = BaseEvent{}
}

func TestBaseEventIDsAreUnique(t *testing.T) {
	e1 := NewBaseEvent("cibil.customer.onboarded", "cust-1", "Customer", nil)
	e2 := NewBaseEvent("cibil.customer.onboarded", "cust-1", "Customer", nil)

	if e1.EventID() == e2.EventID() {
		t.Error("expected distinct event IDs for distinct events")
	}
}

func TestNewOutboxEntry(t *testing.T) {
	payload := []byte(`{"pan":"ABCDE1234F"}`)
	event := NewBaseEvent("cibil.report.generated", "report-789", "CreditReport", payload)

	entry := NewOutboxEntry(event)

	if entry.ID != event.EventID() {
		t.Errorf("expected outbox ID %v, got %v", event.EventID(), entry.ID)
	}

	if entry.AggregateID != "report-789" {
		t.Errorf("expected aggregate ID %q, got %q", "report-789", entry.AggregateID)
	}

	if entry.AggregateType != "CreditReport" {
		t.Errorf("expected aggregate type %q, got %q", "CreditReport", entry.AggregateType)
	}

	if entry.EventType != "cibil.report.generated" {
		t.Errorf("expected event type %q, got %q", "cibil.report.generated", entry.EventType)
	}

	if string(entry.Payload) != string(payload) {
		t.Errorf("expected payload %s, got %s", payload, entry.Payload)
	}

	if entry.CreatedAt != event.OccurredAt() {
		t.Errorf("expected created at %v, got %v", event.OccurredAt(), entry.CreatedAt)
	}

	if entry.PublishedAt != nil {
		t.Error("expected published at to be nil")
	}
}

func TestEventCollectorRecord(t *testing.T) {
	collector := &EventCollector{}

	e1 := NewBaseEvent("Event1", "agg-test", "Aggregate", nil)
	e2 := NewBaseEvent("Event2", "agg-test", "Aggregate", nil)

	collector.Record(e1)
	collector.Record(e2)

	events := collector.Events()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	if events[0].EventType() != "Event1" {
		t.Errorf("expected first event type %q, got %q", "Event1", events[0].EventType())
	}

	if events[1].EventType() != "Event2" {
		t.Errorf("expected second event type %q, got %q", "Event2", events[1].EventType())
	}
}

func TestEventCollectorEventsDoesNotClear(t *testing.T) {
	collector := &EventCollector{}
	collector.Record(NewBaseEvent("Event1", "agg", "Aggregate", nil))

	_ = collector.Events()

	if len(collector.Events()) != 1 {
		t.Error("expected Events() to not clear the internal slice")
	}
}

func TestEventCollectorClearEvents(t *testing.T) {
	collector := &EventCollector{}

	collector.Record(NewBaseEvent("Event1", "agg-clear", "Aggregate", nil))
	collector.Record(NewBaseEvent("Event2", "agg-clear", "Aggregate", nil))

	cleared := collector.ClearEvents()

	if len(cleared) != 2 {
		t.Fatalf("expected ClearEvents to return 2 events, got %d", len(cleared))
	}

	if len(collector.Events()) != 0 {
		t.Errorf("expected internal slice to be empty after ClearEvents, got %d events", len(collector.Events()))
	}
}

func TestEventCollectorClearEventsOnEmpty(t *testing.T) {
	collector := &EventCollector{}

	cleared := collector.ClearEvents()

	if cleared != nil {
		t.Errorf("expected nil from ClearEvents on empty collector, got %v", cleared)
	}
}
