package settings

import (
	"reflect"
	"testing"
)

func TestFunctionRegistryRegisterAndCall(t *testing.T) {
	registry := NewFunctionRegistry()
	if err := registry.Register("Upper", func(args ...any) (any, error) {
		return "UP", nil
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	// Lookup is case-insensitive.
	value, err := registry.Call("upper")
	if err != nil {
		t.Fatalf("call: %v", err)
	}
	if value != "UP" {
		t.Fatalf("expected UP, got %v", value)
	}

	if err := registry.Register("upper", func(args ...any) (any, error) { return nil, nil }); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if err := registry.Register("", func(args ...any) (any, error) { return nil, nil }); err == nil {
		t.Fatalf("expected empty name error")
	}
	if err := registry.Register("nilfn", nil); err == nil {
		t.Fatalf("expected nil function error")
	}
	if _, err := registry.Call("missing"); err == nil {
		t.Fatalf("expected unknown function error")
	}
}

func TestFunctionRegistryCloneIsDetached(t *testing.T) {
	registry := NewFunctionRegistry()
	_ = registry.Register("a", func(args ...any) (any, error) { return nil, nil })

	clone := registry.Clone()
	_ = clone.Register("b", func(args ...any) (any, error) { return nil, nil })

	if !reflect.DeepEqual(registry.Names(), []string{"a"}) {
		t.Fatalf("expected original registry untouched, got %v", registry.Names())
	}
	if !reflect.DeepEqual(clone.Names(), []string{"a", "b"}) {
		t.Fatalf("expected clone extended, got %v", clone.Names())
	}
}
