// Package deepmerge applies partial override fragments onto generic JSON
// trees. Objects merge recursively; arrays and scalars replace the base
// value wholesale.
package deepmerge

// Merge returns a new tree combining base with fragment. Keys present only
// in base survive untouched; where both sides hold objects the merge
// recurses; any other fragment value (including arrays) replaces the base
// value outright. A nil or empty fragment yields a copy equal to base. The
// base map is never mutated.
func Merge(base, fragment map[string]any) map[string]any {
	out := make(map[string]any, len(base))
	for k, v := range base {
		out[k] = v
	}
	for k, fv := range fragment {
		if bm, ok := out[k].(map[string]any); ok {
			if fm, ok := fv.(map[string]any); ok {
				out[k] = Merge(bm, fm)
				continue
			}
		}
		out[k] = fv
	}
	return out
}
