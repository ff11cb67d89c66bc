package slides

import (
	"strconv"
	"strings"

	"github.com/joelanford/mcp/workspace-sim/internal/apierr"
)

// getNestedValue walks a dotted path through nested maps and lists; a
// numeric segment indexes into a list. The boolean is false when any
// segment is missing or not traversable.
func getNestedValue(src map[string]any, path string) (any, bool) {
	keys := strings.Split(path, ".")
	var cur any = src
	for _, key := range keys {
		switch c := cur.(type) {
		case map[string]any:
			v, ok := c[key]
			if !ok {
				return nil, false
			}
			cur = v
		case []any:
			idx, err := strconv.Atoi(key)
			if err != nil || idx < 0 || idx >= len(c) {
				return nil, false
			}
			cur = c[idx]
		default:
			return nil, false
		}
	}
	return cur, true
}

// setNestedValue writes a value at a dotted path, creating intermediate
// maps as needed. A numeric segment indexes into an existing list and
// must be in bounds. A non-traversable intermediate is a path conflict.
func setNestedValue(dst map[string]any, path string, value any) error {
	keys := strings.Split(path, ".")
	var cur any = dst
	for i, key := range keys[:len(keys)-1] {
		segment := strings.Join(keys[:i+1], ".")
		switch c := cur.(type) {
		case []any:
			idx, err := strconv.Atoi(key)
			if err != nil || idx < 0 || idx >= len(c) {
				return apierr.InvalidInput("Path conflict: index %s out of bounds for '%s'.", key, segment)
			}
			m, ok := c[idx].(map[string]any)
			if !ok {
				return apierr.InvalidInput("Path conflict: element at index %d for '%s' is not a dictionary.", idx, segment)
			}
			cur = m
		case map[string]any:
			next, ok := c[key]
			if !ok || next == nil {
				m := map[string]any{}
				c[key] = m
				cur = m
				continue
			}
			switch n := next.(type) {
			case map[string]any:
				cur = n
			case []any:
				cur = n
			default:
				return apierr.InvalidInput("Path conflict while setting value for field: %s. Segment '%s' is not a dictionary.", path, segment)
			}
		default:
			return apierr.InvalidInput("Path conflict while setting value for field: %s. Segment '%s' is not a dictionary.", path, segment)
		}
	}

	last := keys[len(keys)-1]
	switch c := cur.(type) {
	case []any:
		idx, err := strconv.Atoi(last)
		if err != nil || idx < 0 || idx >= len(c) {
			return apierr.InvalidInput("Path conflict: index %s out of bounds for final assignment in path '%s'.", last, path)
		}
		c[idx] = value
	case map[string]any:
		c[last] = value
	default:
		return apierr.InvalidInput("Path conflict: final segment target is not a dictionary for path '%s'.", path)
	}
	return nil
}

// applyFieldMask copies the masked fields from updates into target. A
// mask of "*" replaces every top-level key present in updates; otherwise
// each comma-separated dotted path is copied when present in updates and
// skipped when absent.
func applyFieldMask(target, updates map[string]any, mask string) error {
	if mask == "" {
		return nil
	}
	if mask == "*" {
		for k, v := range updates {
			target[k] = v
		}
		return nil
	}
	for _, path := range strings.Split(mask, ",") {
		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}
		value, ok := getNestedValue(updates, path)
		if !ok {
			continue
		}
		if err := setNestedValue(target, path, value); err != nil {
			return apierr.InvalidInput("Error applying update for field '%s': %s", path, err.Error())
		}
	}
	return nil
}
