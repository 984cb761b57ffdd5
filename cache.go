package settings

// ProgramCache stores compiled expression programs keyed by expression
// strings. Implementations must be safe for concurrent use when shared.
type ProgramCache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
}

// WithProgramCache registers a program cache on the Settings instance; the
// default evaluator and any engine built from the instance config reuse it.
func WithProgramCache(cache ProgramCache) Option {
	return func(cfg *config) {
		cfg.programCache = cache
	}
}
