package usersink

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-settings/pkg/activity"
	usertypes "github.com/goliatone/go-users/pkg/types"
	"github.com/google/uuid"
)

type recordingSink struct {
	records []usertypes.ActivityRecord
	err     error
}

func (s *recordingSink) Log(_ context.Context, record usertypes.ActivityRecord) error {
	s.records = append(s.records, record)
	return s.err
}

func TestHookMapsEventToRecord(t *testing.T) {
	sink := &recordingSink{}
	actorID := uuid.New()
	hook := Hook{Sink: sink}

	err := hook.Notify(context.Background(), activity.Event{
		Verb:       "settings.value.set",
		ActorID:    actorID.String(),
		ObjectType: "settings",
		ObjectID:   "billing",
		Channel:    "audit",
		Metadata:   map[string]any{"key": "debug"},
	})
	if err != nil {
		t.Fatalf("notify: %v", err)
	}
	if len(sink.records) != 1 {
		t.Fatalf("expected one record, got %d", len(sink.records))
	}

	record := sink.records[0]
	if record.Verb != "settings.value.set" || record.ObjectType != "settings" || record.ObjectID != "billing" {
		t.Fatalf("unexpected record identity: %+v", record)
	}
	if record.ActorID != actorID {
		t.Fatalf("expected actor id parsed, got %v", record.ActorID)
	}
	if record.Channel != "audit" {
		t.Fatalf("expected channel preserved, got %q", record.Channel)
	}
	if record.Data["key"] != "debug" {
		t.Fatalf("expected metadata carried as data, got %v", record.Data)
	}
	if record.OccurredAt.IsZero() {
		t.Fatalf("expected timestamp on record")
	}
}

func TestHookUnparsableIDsMapToNil(t *testing.T) {
	sink := &recordingSink{}
	hook := Hook{Sink: sink}

	err := hook.Notify(context.Background(), activity.Event{
		Verb:       "settings.configured",
		ActorID:    "not-a-uuid",
		ObjectType: "settings.layer",
		ObjectID:   "abc",
	})
	if err != nil {
		t.Fatalf("notify: %v", err)
	}
	if sink.records[0].ActorID != uuid.Nil {
		t.Fatalf("expected nil uuid for unparsable actor id, got %v", sink.records[0].ActorID)
	}
}

func TestHookSkipsIncompleteEvents(t *testing.T) {
	sink := &recordingSink{}
	hook := Hook{Sink: sink}

	if err := hook.Notify(context.Background(), activity.Event{Verb: "settings.configured"}); err != nil {
		t.Fatalf("notify: %v", err)
	}
	if len(sink.records) != 0 {
		t.Fatalf("expected incomplete event dropped, got %d records", len(sink.records))
	}
}

func TestHookNilSinkIsNoOp(t *testing.T) {
	hook := Hook{}
	err := hook.Notify(context.Background(), activity.Event{
		Verb:       "settings.configured",
		ObjectType: "settings.layer",
		ObjectID:   "abc",
	})
	if err != nil {
		t.Fatalf("expected nil sink to be a no-op, got %v", err)
	}
}

func TestHookPropagatesSinkError(t *testing.T) {
	wantErr := errors.New("sink unavailable")
	hook := Hook{Sink: &recordingSink{err: wantErr}}

	err := hook.Notify(context.Background(), activity.Event{
		Verb:       "settings.configured",
		ObjectType: "settings.layer",
		ObjectID:   "abc",
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected sink error, got %v", err)
	}
}
