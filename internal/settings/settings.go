package settings

import (
	"fmt"
	"reflect"
	"sort"
)

// Change records one field-level difference between live settings and
// declared parameters.
type Change struct {
	Key string
	Old interface{}
	New interface{}
}

// Diff compares the live settings against the declared parameters and
// returns one Change per key whose values differ. Only keys present in
// params are considered; keys the caller did not set are never reported.
// Changes are ordered by key so output is stable run to run.
func Diff(current, params map[string]interface{}) []Change {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var differences []Change
	for _, key := range keys {
		currentValue := current[key]
		newValue := params[key]
		if !equalValues(currentValue, newValue) {
			differences = append(differences, Change{Key: key, Old: currentValue, New: newValue})
		}
	}
	return differences
}

// Describe renders changes as human-readable strings suitable for the
// change report.
func Describe(changes []Change) []string {
	described := make([]string, 0, len(changes))
	for _, change := range changes {
		described = append(described, fmt.Sprintf("changing %s from %v to %v", change.Key, change.Old, change.New))
	}
	return described
}

// equalValues compares two settings values. Lists compare as sets; the
// server reorders list-valued relationships freely.
func equalValues(current, desired interface{}) bool {
	currentSet, currentIsList := stringSet(current)
	desiredSet, desiredIsList := stringSet(desired)
	if currentIsList && desiredIsList {
		return reflect.DeepEqual(currentSet, desiredSet)
	}
	return reflect.DeepEqual(current, desired)
}

// stringSet converts a list value ([]string or []interface{}) into a set.
// The second return is false when the value is not a list.
func stringSet(value interface{}) (map[string]struct{}, bool) {
	set := map[string]struct{}{}
	switch list := value.(type) {
	case []string:
		for _, item := range list {
			set[item] = struct{}{}
		}
		return set, true
	case []interface{}:
		for _, item := range list {
			set[fmt.Sprintf("%v", item)] = struct{}{}
		}
		return set, true
	default:
		return nil, false
	}
}
