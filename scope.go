package settings

import (
	"github.com/goliatone/go-settings/layering"
	"github.com/goliatone/go-settings/pkg/activity"
)

// Override is a reusable scope guard. Each Enter pushes its own temporary
// layer built from the guard's values, so one guard value can be entered
// concurrently-in-time (nested or recursive) and every entry pops
// independently.
type Override struct {
	settings *Settings
	values   map[string]any
}

// Override returns a scope guard configured with the given values. The values
// are copied at guard creation; later mutation of the caller's map does not
// change what subsequent entries push.
func (s *Settings) Override(values Values) *Override {
	return &Override{
		settings: s,
		values:   layering.Clone(map[string]any(values)),
	}
}

// Enter pushes a fresh temporary layer and returns the closure that pops
// exactly that layer. Callers defer the closure so the stack is restored on
// every exit path:
//
//	restore := guard.Enter()
//	defer restore()
//
// Restore is idempotent per entry; calling it twice pops nothing extra.
func (o *Override) Enter() (restore func()) {
	pushed := o.settings.push(o.values)
	o.settings.emit(activity.BuildOverrideEnteredEvent(activity.EventInput{
		ObjectID: o.settings.cfg.name,
		Layer:    layerContext(pushed),
	}))

	done := false
	return func() {
		if done {
			return
		}
		done = true
		o.settings.remove(pushed.snapshotID)
		o.settings.emit(activity.BuildOverrideExitedEvent(activity.EventInput{
			ObjectID: o.settings.cfg.name,
			Layer:    layerContext(pushed),
		}))
	}
}

// Run surrounds one invocation of fn with the guard's push/pop pair. The layer
// is popped even when fn panics; the panic then propagates unchanged.
func (o *Override) Run(fn func() error) error {
	restore := o.Enter()
	defer restore()
	return fn()
}

// Wrap returns a function that applies the guard around every invocation of
// fn. Each call, including recursive ones through the wrapped function, pushes
// and pops its own layer instance.
func (o *Override) Wrap(fn func() error) func() error {
	return func() error {
		return o.Run(fn)
	}
}
