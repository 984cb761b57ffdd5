// Package settings implements layered settings resolution: a package declares
// defaults once and any consumer can permanently or temporarily override a
// subset of them without mutating the originals. Reads resolve through an
// ordered stack of layers, most recent first.
//
// The layer stack itself is deliberately unsynchronized; it targets
// single-threaded control flow with reentrant (same goroutine, nested) scoped
// overrides. Hosts sharing one instance across goroutines must serialise
// access themselves.
package settings

import (
	"context"
	"sort"

	"github.com/goliatone/go-settings/layering"
	"github.com/goliatone/go-settings/pkg/activity"
)

// Settings owns a mutable base layer plus an ordered stack of override layers.
// The base layer always exists and is never removed; Configure appends
// permanent layers, scope guards push and pop temporary ones.
type Settings struct {
	base      *layer
	overrides []*layer

	cfg     config
	emitter *activity.Emitter
}

// New constructs an empty Settings instance. The host application owns the
// instance and injects it wherever settings are read; the library keeps no
// process-wide state of its own.
func New(opts ...Option) *Settings {
	cfg := applyOptions(opts)
	return &Settings{
		base: &layer{
			snapshotID: newSnapshotID(),
			origin:     OriginBase,
			values:     map[string]any{},
		},
		cfg: cfg,
		emitter: activity.NewEmitter(cfg.activityHooks, activity.Config{
			Enabled: len(cfg.activityHooks) > 0,
			Channel: cfg.activityChannel,
		}),
	}
}

// Name returns the instance label configured via WithName.
func (s *Settings) Name() string {
	return s.cfg.name
}

// Configure harvests the given sources, merges them with later sources taking
// precedence, and appends one permanent layer to the stack. A harvest failure
// surfaces synchronously and no layer is pushed. Configuring nothing is a
// no-op.
func (s *Settings) Configure(sources ...Source) error {
	merged := map[string]any{}
	for _, source := range sources {
		if source == nil {
			continue
		}
		harvested, err := source.Harvest()
		if err != nil {
			return err
		}
		for key, value := range harvested {
			merged[key] = value
		}
	}
	if len(merged) == 0 {
		return nil
	}

	pushed := newLayer(OriginConfigured, merged)
	s.overrides = append(s.overrides, pushed)
	s.emit(activity.BuildConfiguredEvent(activity.EventInput{
		ObjectID: s.cfg.name,
		Layer:    layerContext(pushed),
	}))
	return nil
}

// Get resolves name by scanning override layers newest first, then the base
// layer. A key defined in no layer returns a NotConfiguredError; the miss is
// never cached and no layer is mutated.
func (s *Settings) Get(name string) (any, error) {
	for i := len(s.overrides) - 1; i >= 0; i-- {
		if value, ok := s.overrides[i].lookup(name); ok {
			return value, nil
		}
	}
	if value, ok := s.base.lookup(name); ok {
		return value, nil
	}
	return nil, &NotConfiguredError{Key: name}
}

// MustGet is Get for initialisation paths where a missing key is fatal.
func (s *Settings) MustGet(name string) any {
	value, err := s.Get(name)
	if err != nil {
		panic(err)
	}
	return value
}

// Has reports whether any layer defines name.
func (s *Settings) Has(name string) bool {
	_, err := s.Get(name)
	return err == nil
}

// Set writes directly into the base layer, never into an override. The write
// behaves as "set a new default": any configured layer defining the same key
// keeps winning until it is popped.
func (s *Settings) Set(name string, value any) {
	old, hadOld := s.base.lookup(name)
	s.base.values[name] = value
	input := activity.EventInput{
		ObjectID: s.cfg.name,
		Key:      name,
		NewValue: value,
		Layer:    layerContext(s.base),
	}
	if hadOld {
		input.OldValue = old
	}
	s.emit(activity.BuildValueSetEvent(input))
}

// Snapshot flattens every layer into one map, strongest layer winning per key.
// The result is a deep copy detached from the stack.
func (s *Settings) Snapshot() map[string]any {
	maps := make([]map[string]any, 0, len(s.overrides)+1)
	maps = append(maps, s.base.values)
	for _, override := range s.overrides {
		maps = append(maps, override.values)
	}
	return layering.MergeMaps(maps...)
}

// Keys returns the sorted union of keys defined across all layers.
func (s *Settings) Keys() []string {
	seen := map[string]struct{}{}
	for _, key := range s.base.keys() {
		seen[key] = struct{}{}
	}
	for _, override := range s.overrides {
		for _, key := range override.keys() {
			seen[key] = struct{}{}
		}
	}
	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Depth returns the number of layers above the base. Scope guards restore the
// depth observed before entry on every exit path.
func (s *Settings) Depth() int {
	return len(s.overrides)
}

// push appends a temporary layer and returns it so the caller can later remove
// exactly that layer instance.
func (s *Settings) push(values map[string]any) *layer {
	pushed := newLayer(OriginOverride, values)
	s.overrides = append(s.overrides, pushed)
	return pushed
}

// remove pops the layer with the given snapshot ID, preserving the relative
// order of the remaining layers. Removal by identity keeps restoration correct
// even if guards are exited out of order.
func (s *Settings) remove(snapshotID string) {
	for i := len(s.overrides) - 1; i >= 0; i-- {
		if s.overrides[i].snapshotID == snapshotID {
			s.overrides = append(s.overrides[:i], s.overrides[i+1:]...)
			return
		}
	}
}

// emit forwards a lifecycle event to the configured hooks. Hook failures never
// affect settings state; hosts that care attach hooks that record their own
// errors.
func (s *Settings) emit(event activity.Event) {
	if !s.emitter.Enabled() {
		return
	}
	_ = s.emitter.Emit(context.Background(), event)
}

func layerContext(l *layer) activity.LayerContext {
	return activity.LayerContext{
		SnapshotID: l.snapshotID,
		Origin:     l.origin.String(),
		Keys:       l.keys(),
	}
}
