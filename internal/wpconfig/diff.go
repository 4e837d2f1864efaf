package wpconfig

// Changed returns the subset of updates whose value differs from the current
// mapping. A key absent from current counts as different from any supplied
// value. Keys not present in updates are never part of the result.
//
// The extra PHP block is never value-compared: it is spliced, not replaced,
// so any non-empty block counts as a change.
func Changed(current Values, updates Updates) Updates {
	changed := make(Updates)
	for key, v := range updates {
		if key == KeyExtraPHP {
			if v.Kind == KindString && v.Str != "" {
				changed[key] = v
			}
			continue
		}
		cur, ok := current[string(key)]
		if !ok || cur != v {
			changed[key] = v
		}
	}
	return changed
}
