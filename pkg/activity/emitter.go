package activity

import (
	"context"
	"strings"
)

// DefaultChannel is stamped on emitted events that carry no channel of their
// own.
const DefaultChannel = "settings"

// Config controls emission defaults supplied by the host at construction.
type Config struct {
	Enabled bool
	Channel string
}

// Emitter fans events out to a fixed hook set, stamping the default channel on
// events that omit one. A nil or hook-less emitter is a safe no-op.
type Emitter struct {
	hooks Hooks
	cfg   Config
}

// NewEmitter constructs an emitter from hooks and configuration. Nil hooks are
// dropped; emission is enabled only when cfg says so and hooks remain.
func NewEmitter(hooks Hooks, cfg Config) *Emitter {
	kept := make(Hooks, 0, len(hooks))
	for _, hook := range hooks {
		if hook != nil {
			kept = append(kept, hook)
		}
	}
	if len(kept) == 0 {
		kept = nil
		cfg.Enabled = false
	}
	cfg.Channel = strings.TrimSpace(cfg.Channel)
	if cfg.Channel == "" {
		cfg.Channel = DefaultChannel
	}
	return &Emitter{hooks: kept, cfg: cfg}
}

// Enabled reports whether emissions should be attempted.
func (e *Emitter) Enabled() bool {
	return e != nil && e.cfg.Enabled && len(e.hooks) > 0
}

// Channel returns the default channel stamped on events.
func (e *Emitter) Channel() string {
	if e == nil {
		return DefaultChannel
	}
	return e.cfg.Channel
}

// Emit forwards the event to all hooks, applying the default channel when the
// event carries none.
func (e *Emitter) Emit(ctx context.Context, event Event) error {
	if !e.Enabled() {
		return nil
	}
	if strings.TrimSpace(event.Channel) == "" {
		event.Channel = e.cfg.Channel
	}
	return e.hooks.Notify(ctx, event)
}
