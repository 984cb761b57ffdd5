package settings

import (
	"testing"
)

func TestExplainReturnsLayerProvenance(t *testing.T) {
	s := New()
	s.Set("env", "prod")
	if err := s.Configure(Values{"env": "staging", "team": "core"}); err != nil {
		t.Fatalf("configure: %v", err)
	}

	trace := s.Explain("env")
	if trace.Key != "env" {
		t.Fatalf("expected key env, got %q", trace.Key)
	}
	if len(trace.Layers) != 2 {
		t.Fatalf("expected 2 provenance entries, got %d", len(trace.Layers))
	}
	if !trace.Layers[0].Found || trace.Layers[0].Value != "staging" {
		t.Fatalf("expected configured layer first and found, got %+v", trace.Layers[0])
	}
	if trace.Layers[0].Origin != OriginConfigured {
		t.Fatalf("expected configured origin, got %v", trace.Layers[0].Origin)
	}
	if !trace.Layers[1].Found || trace.Layers[1].Value != "prod" {
		t.Fatalf("expected base layer fallback, got %+v", trace.Layers[1])
	}
	if trace.Layers[1].Origin != OriginBase {
		t.Fatalf("expected base origin, got %v", trace.Layers[1].Origin)
	}
	if trace.Layers[0].SnapshotID == "" || trace.Layers[0].SnapshotID == trace.Layers[1].SnapshotID {
		t.Fatalf("expected distinct snapshot ids, got %+v", trace.Layers)
	}
}

func TestExplainOverrideOrdering(t *testing.T) {
	s := New()
	if err := s.Configure(Values{"flag": false}); err != nil {
		t.Fatalf("configure: %v", err)
	}

	restore := s.Override(Values{"flag": true}).Enter()
	defer restore()

	trace := s.Explain("flag")
	if len(trace.Layers) != 3 {
		t.Fatalf("expected 3 provenance entries, got %d", len(trace.Layers))
	}
	if trace.Layers[0].Origin != OriginOverride || trace.Layers[0].Value != true {
		t.Fatalf("expected override strongest, got %+v", trace.Layers[0])
	}
	if trace.Layers[1].Origin != OriginConfigured || trace.Layers[1].Value != false {
		t.Fatalf("expected configured layer second, got %+v", trace.Layers[1])
	}
}

func TestExplainMissingKey(t *testing.T) {
	s := New()
	if err := s.Configure(Values{"present": 1}); err != nil {
		t.Fatalf("configure: %v", err)
	}

	trace := s.Explain("absent")
	for _, entry := range trace.Layers {
		if entry.Found {
			t.Fatalf("expected no layer to define absent, got %+v", entry)
		}
		if entry.Value != nil {
			t.Fatalf("expected omitted value for miss, got %+v", entry)
		}
	}
}

func TestTraceJSONRoundTrip(t *testing.T) {
	s := New()
	if err := s.Configure(Values{"env": "staging"}); err != nil {
		t.Fatalf("configure: %v", err)
	}

	trace := s.Explain("env")
	payload, err := trace.ToJSON()
	if err != nil {
		t.Fatalf("to json: %v", err)
	}

	decoded, err := TraceFromJSON(payload)
	if err != nil {
		t.Fatalf("from json: %v", err)
	}
	if decoded.Key != trace.Key || len(decoded.Layers) != len(trace.Layers) {
		t.Fatalf("round trip mismatch:\nwant %+v\n got %+v", trace, decoded)
	}
	if decoded.Layers[0].Origin != OriginConfigured {
		t.Fatalf("expected origin to survive serialisation, got %v", decoded.Layers[0].Origin)
	}
}

func TestParseOrigin(t *testing.T) {
	cases := map[string]Origin{
		"base":       OriginBase,
		"CONFIGURED": OriginConfigured,
		"override":   OriginOverride,
		"bogus":      OriginUnknown,
	}
	for input, want := range cases {
		if got := ParseOrigin(input); got != want {
			t.Fatalf("ParseOrigin(%q) = %v, want %v", input, got, want)
		}
	}
	if OriginOverride.String() != "override" {
		t.Fatalf("unexpected override string %q", OriginOverride.String())
	}
}
