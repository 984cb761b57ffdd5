package settings

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/goliatone/go-settings/layering"
)

// Origin classifies how a layer entered the stack.
type Origin int

const (
	// OriginUnknown guards against zero-valued layers so call sites can detect
	// missing metadata.
	OriginUnknown Origin = iota
	// OriginBase identifies the always-present bottom layer that direct
	// assignment mutates in place.
	OriginBase
	// OriginConfigured identifies a permanent layer pushed by Configure.
	OriginConfigured
	// OriginOverride identifies a temporary layer pushed by a scope guard.
	OriginOverride
)

func (o Origin) String() string {
	switch o {
	case OriginBase:
		return "base"
	case OriginConfigured:
		return "configured"
	case OriginOverride:
		return "override"
	default:
		return "unknown"
	}
}

// ParseOrigin converts a string representation into the corresponding Origin.
// Returns OriginUnknown for unrecognised values.
func ParseOrigin(value string) Origin {
	switch value {
	case "base", "BASE":
		return OriginBase
	case "configured", "CONFIGURED":
		return OriginConfigured
	case "override", "OVERRIDE":
		return OriginOverride
	default:
		return OriginUnknown
	}
}

// MarshalText implements encoding.TextMarshaler so traces serialise origins as
// their string form.
func (o Origin) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Origin) UnmarshalText(text []byte) error {
	parsed := ParseOrigin(string(text))
	if parsed == OriginUnknown && string(text) != "unknown" {
		return fmt.Errorf("settings: unknown origin %q", text)
	}
	*o = parsed
	return nil
}

// layer is one mapping of setting name to value, pushed onto the stack as a
// unit. Layers above the base are never mutated after the push.
type layer struct {
	snapshotID string
	origin     Origin
	values     map[string]any
}

// newSnapshotID mints the identifier provenance traces and activity events use
// to refer to one pushed layer instance.
func newSnapshotID() string {
	return uuid.NewString()
}

func newLayer(origin Origin, values map[string]any) *layer {
	return &layer{
		snapshotID: newSnapshotID(),
		origin:     origin,
		values:     layering.Clone(values),
	}
}

func (l *layer) lookup(name string) (any, bool) {
	value, ok := l.values[name]
	return value, ok
}

func (l *layer) keys() []string {
	out := make([]string, 0, len(l.values))
	for key := range l.values {
		out = append(out, key)
	}
	return out
}
