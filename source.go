package settings

import (
	"fmt"
	"reflect"
)

// Source supplies key/value pairs for one Configure call. Implementations must
// not retain the returned map; Configure clones it before pushing a layer.
type Source interface {
	Harvest() (map[string]any, error)
}

// Values is an explicit key/value source.
type Values map[string]any

// Harvest returns a copy of the values so later mutation of the caller's map
// cannot reach into a pushed layer.
func (v Values) Harvest() (map[string]any, error) {
	out := make(map[string]any, len(v))
	for key, value := range v {
		out[key] = value
	}
	return out, nil
}

// Object adapts an arbitrary struct (or pointer to struct) into a Source by
// harvesting its exported, non-func fields. A map[string]any is accepted as an
// already-harvested mapping. Anything else fails with ErrInvalidConfiguration
// at Configure time, before any layer is pushed.
func Object(value any) Source {
	return objectSource{value: value}
}

type objectSource struct {
	value any
}

func (s objectSource) Harvest() (map[string]any, error) {
	if s.value == nil {
		return nil, invalidSource("<nil>", "value is nil")
	}

	rv := reflect.ValueOf(s.value)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, invalidSource(rv.Type().String(), "value is a nil pointer")
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Struct:
		return harvestStruct(rv), nil
	case reflect.Map:
		return harvestMap(rv)
	default:
		return nil, invalidSource(rv.Type().String(), "kind %s has no readable attributes", rv.Kind())
	}
}

func harvestStruct(rv reflect.Value) map[string]any {
	rt := rv.Type()
	out := make(map[string]any, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		if field.Type.Kind() == reflect.Func {
			continue
		}
		out[field.Name] = rv.Field(i).Interface()
	}
	return out
}

func harvestMap(rv reflect.Value) (map[string]any, error) {
	if rv.Type().Key().Kind() != reflect.String {
		return nil, invalidSource(rv.Type().String(), "map keys must be strings")
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[fmt.Sprint(iter.Key().Interface())] = iter.Value().Interface()
	}
	return out, nil
}
