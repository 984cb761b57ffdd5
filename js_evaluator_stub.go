//go:build !js_eval

package settings

// NewJSEvaluator returns nil in builds without the js_eval tag; the goja
// engine and its dependency weight are opt-in.
func NewJSEvaluator(opts ...JSEvaluatorOption) Evaluator {
	_ = applyJSEvaluatorOptions(opts)
	return nil
}

func jsEvaluatorAvailable() bool {
	return false
}
