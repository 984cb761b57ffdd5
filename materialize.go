package settings

import (
	"github.com/goliatone/go-settings/internal/hydrate"
)

// MaterializeOption configures how Materialize decodes a snapshot.
type MaterializeOption func(*materializeConfig)

type materializeConfig struct {
	useNumber             bool
	disallowUnknownFields bool
}

// MaterializeUseNumber keeps numeric values as json.Number instead of float64.
func MaterializeUseNumber() MaterializeOption {
	return func(cfg *materializeConfig) {
		cfg.useNumber = true
	}
}

// MaterializeStrict rejects snapshot keys the target struct does not declare.
func MaterializeStrict() MaterializeOption {
	return func(cfg *materializeConfig) {
		cfg.disallowUnknownFields = true
	}
}

// Materialize decodes the current resolved snapshot into a typed struct,
// letting hosts read layered settings through their own config types. The
// result is detached from the stack; later layer changes do not flow into it.
func Materialize[T any](s *Settings, opts ...MaterializeOption) (T, error) {
	cfg := materializeConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	var decoderOpts []hydrate.DecoderOption[T]
	if cfg.useNumber {
		decoderOpts = append(decoderOpts, hydrate.WithUseNumber[T]())
	}
	if cfg.disallowUnknownFields {
		decoderOpts = append(decoderOpts, hydrate.WithDisallowUnknownFields[T]())
	}

	decoder := hydrate.NewDecoder(decoderOpts...)
	return decoder.Decode(hydrate.Context{Name: s.cfg.name}, s.Snapshot())
}
