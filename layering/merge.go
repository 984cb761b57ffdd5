package layering

// MergeMaps flattens layers ordered from weakest to strongest into one map.
// Resolution is per key: a later layer that defines a key replaces the value
// from any earlier layer wholesale, with no deep merging of nested values.
// Values are deep copied so the result shares nothing with the inputs.
func MergeMaps(layers ...map[string]any) map[string]any {
	size := 0
	for _, layer := range layers {
		size += len(layer)
	}
	merged := make(map[string]any, size)
	for _, layer := range layers {
		for key, value := range layer {
			merged[key] = Clone(value)
		}
	}
	return merged
}
