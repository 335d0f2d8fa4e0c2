package profile

// Snapshot is the editable form state captured at populate time, used
// as the baseline for dirty checking.
type Snapshot map[string]string

// Capture copies the form values into a snapshot. Missing values are
// recorded as empty strings so a later nil/absent value compares clean.
func Capture(values map[string]string) Snapshot {
	snap := make(Snapshot, len(values))
	for k, v := range values {
		snap[k] = v
	}
	return snap
}

// IsDirty reports whether the current form values differ from the
// snapshot, comparing field-wise with absent treated as empty string.
// A newly selected file always counts as dirty: uploads have no
// baseline value to compare against.
func IsDirty(current map[string]string, snap Snapshot, fileSelected bool) bool {
	if fileSelected {
		return true
	}

	for k, v := range current {
		if snap[k] != v {
			return true
		}
	}
	for k, v := range snap {
		if _, ok := current[k]; !ok && v != "" {
			return true
		}
	}
	return false
}
