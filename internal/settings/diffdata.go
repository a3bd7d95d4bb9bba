package settings

// DiffData is a structured before/after payload for audit and display.
type DiffData struct {
	Before       map[string]interface{} `json:"before" yaml:"before"`
	After        map[string]interface{} `json:"after" yaml:"after"`
	BeforeHeader string                 `json:"before_header" yaml:"before_header"`
	AfterHeader  string                 `json:"after_header" yaml:"after_header"`
}

// TaskDiffData builds the diff payload for one reconciled item.
//
// A nil before means the item is being created. Otherwise keysToCopy are
// carried from before into after when the caller did not set them, so
// read-only server-derived fields do not show up as spurious removals.
// keysToOmit (plus "id", always) are dropped from before when absent from
// after.
func TaskDiffData(before, after map[string]interface{}, itemName, itemType string, keysToCopy, keysToOmit []string) *DiffData {
	diff := &DiffData{}

	if before == nil {
		diff.BeforeHeader = "Not present"
		diff.AfterHeader = "New " + itemType + " '" + itemName + "'"
		// Diff consumers expect a map on both sides, not a null.
		diff.Before = map[string]interface{}{}
		diff.After = copyMap(after)
		return diff
	}

	diff.BeforeHeader = "Original " + itemType + " '" + itemName + "'"
	diff.AfterHeader = "Modified " + itemType + " '" + itemName + "'"

	before = copyMap(before)
	after = copyMap(after)

	for _, key := range keysToCopy {
		if value, ok := before[key]; ok {
			if _, set := after[key]; !set {
				after[key] = value
			}
		}
	}

	omit := append([]string{"id"}, keysToOmit...)
	for _, key := range omit {
		if _, ok := before[key]; ok {
			if _, set := after[key]; !set {
				delete(before, key)
			}
		}
	}

	diff.Before = before
	diff.After = after
	return diff
}

func copyMap(m map[string]interface{}) map[string]interface{} {
	copied := make(map[string]interface{}, len(m))
	for key, value := range m {
		copied[key] = value
	}
	return copied
}
