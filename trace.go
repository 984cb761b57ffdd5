package settings

import (
	"encoding/json"
)

// Trace captures provenance information for one key lookup across the layers
// that participated in resolving it.
type Trace struct {
	Key    string       `json:"key"`
	Layers []Provenance `json:"layers"`
}

// Provenance details how a specific layer contributed to a traced key.
type Provenance struct {
	SnapshotID string `json:"snapshot_id"`
	Origin     Origin `json:"origin"`
	Found      bool   `json:"found"`
	Value      any    `json:"value,omitempty"`
}

// Explain walks the stack strongest first and records, per layer, whether it
// defines key and with what value. The first entry with Found true is the one
// Get would return; a trace with no found entry corresponds to a
// NotConfiguredError.
func (s *Settings) Explain(key string) Trace {
	trace := Trace{
		Key:    key,
		Layers: make([]Provenance, 0, len(s.overrides)+1),
	}
	for i := len(s.overrides) - 1; i >= 0; i-- {
		trace.Layers = append(trace.Layers, provenanceFor(s.overrides[i], key))
	}
	trace.Layers = append(trace.Layers, provenanceFor(s.base, key))
	return trace
}

func provenanceFor(l *layer, key string) Provenance {
	value, found := l.lookup(key)
	entry := Provenance{
		SnapshotID: l.snapshotID,
		Origin:     l.origin,
		Found:      found,
	}
	if found {
		entry.Value = value
	}
	return entry
}

// ToJSON serialises the trace into JSON for logging or transport helpers.
func (t Trace) ToJSON() ([]byte, error) {
	type alias Trace
	return json.Marshal(alias(t))
}

// TraceFromJSON deserialises a JSON payload that was previously generated via
// ToJSON.
func TraceFromJSON(payload []byte) (Trace, error) {
	type alias Trace
	var trace alias
	if err := json.Unmarshal(payload, &trace); err != nil {
		return Trace{}, err
	}
	return Trace(trace), nil
}
