package layering

import (
	"reflect"
	"testing"
)

func TestMergeMapsLaterLayersWin(t *testing.T) {
	merged := MergeMaps(
		map[string]any{"a": 1, "b": 1},
		map[string]any{"b": 2, "c": 2},
		map[string]any{"c": 3},
	)

	want := map[string]any{"a": 1, "b": 2, "c": 3}
	if !reflect.DeepEqual(want, merged) {
		t.Fatalf("expected %v, got %v", want, merged)
	}
}

func TestMergeMapsReplacesNestedValuesWholesale(t *testing.T) {
	merged := MergeMaps(
		map[string]any{"db": map[string]any{"host": "a", "port": 1}},
		map[string]any{"db": map[string]any{"host": "b"}},
	)

	db := merged["db"].(map[string]any)
	if db["host"] != "b" {
		t.Fatalf("expected stronger layer value, got %v", db)
	}
	if _, ok := db["port"]; ok {
		t.Fatalf("expected no deep merge of nested maps, got %v", db)
	}
}

func TestMergeMapsDetachedFromInputs(t *testing.T) {
	layer := map[string]any{"tags": []string{"a"}}
	merged := MergeMaps(layer)

	layer["tags"].([]string)[0] = "b"
	if got := merged["tags"].([]string)[0]; got != "a" {
		t.Fatalf("expected merged result detached from input, got %q", got)
	}
}

func TestMergeMapsEmptyInput(t *testing.T) {
	if got := MergeMaps(); len(got) != 0 {
		t.Fatalf("expected empty map, got %v", got)
	}
	if got := MergeMaps(nil, map[string]any{}); len(got) != 0 {
		t.Fatalf("expected empty map, got %v", got)
	}
}
