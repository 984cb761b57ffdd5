package activity

import (
	"sort"
	"strings"
	"time"
)

// LayerContext captures metadata about the layer an event concerns.
type LayerContext struct {
	SnapshotID string
	Origin     string
	Keys       []string
}

// EventInput describes the common fields for settings lifecycle events.
type EventInput struct {
	ActorID    string
	UserID     string
	TenantID   string
	ObjectID   string
	Channel    string
	Metadata   map[string]any
	Key        string
	OldValue   any
	NewValue   any
	Layer      LayerContext
	OccurredAt time.Time
}

// BuildConfiguredEvent constructs a normalized activity event for a permanent
// layer pushed by Configure.
func BuildConfiguredEvent(input EventInput) Event {
	return buildSettingsEvent("settings.configured", "settings.layer", input)
}

// BuildOverrideEnteredEvent constructs an activity event for a scope guard
// pushing its temporary layer.
func BuildOverrideEnteredEvent(input EventInput) Event {
	return buildSettingsEvent("settings.override.entered", "settings.layer", input)
}

// BuildOverrideExitedEvent constructs an activity event for a scope guard
// popping its temporary layer.
func BuildOverrideExitedEvent(input EventInput) Event {
	return buildSettingsEvent("settings.override.exited", "settings.layer", input)
}

// BuildValueSetEvent constructs an activity event for a direct base-layer
// write.
func BuildValueSetEvent(input EventInput) Event {
	return buildSettingsEvent("settings.value.set", "settings", input)
}

func buildSettingsEvent(verb, objectType string, input EventInput) Event {
	metadata := cloneMap(input.Metadata)
	if input.Key != "" {
		metadata = ensureMetadata(metadata)
		metadata["key"] = input.Key
	}
	if input.Layer.SnapshotID != "" {
		metadata = ensureMetadata(metadata)
		metadata["snapshot_id"] = input.Layer.SnapshotID
	}
	if input.Layer.Origin != "" {
		metadata = ensureMetadata(metadata)
		metadata["origin"] = input.Layer.Origin
	}
	if len(input.Layer.Keys) > 0 {
		keys := append([]string{}, input.Layer.Keys...)
		sort.Strings(keys)
		metadata = ensureMetadata(metadata)
		metadata["keys"] = keys
	}
	if input.OldValue != nil {
		metadata = ensureMetadata(metadata)
		metadata["old_value"] = input.OldValue
	}
	if input.NewValue != nil {
		metadata = ensureMetadata(metadata)
		metadata["new_value"] = input.NewValue
	}

	objectID := strings.TrimSpace(input.ObjectID)
	if objectID == "" {
		objectID = strings.TrimSpace(input.Layer.SnapshotID)
	}
	if objectID == "" {
		objectID = objectType
	}

	return Event{
		Verb:       verb,
		ActorID:    strings.TrimSpace(input.ActorID),
		UserID:     strings.TrimSpace(input.UserID),
		TenantID:   strings.TrimSpace(input.TenantID),
		ObjectType: objectType,
		ObjectID:   objectID,
		Channel:    strings.TrimSpace(input.Channel),
		Metadata:   metadata,
		OccurredAt: input.OccurredAt,
	}
}

func ensureMetadata(meta map[string]any) map[string]any {
	if meta == nil {
		return map[string]any{}
	}
	return meta
}
