package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrPathConflict reports a dotted-path write whose intermediate segment
// already holds a non-mapping value.
var ErrPathConflict = errors.New("path segment is not a mapping")

// lookup navigates a nested map by a dot-separated path and returns the
// value found, or fallback when any segment is missing or non-navigable.
func lookup(raw map[string]any, dotted string, fallback any) any {
	current := any(raw)
	for _, segment := range strings.Split(dotted, ".") {
		mapping, ok := current.(map[string]any)
		if !ok {
			return fallback
		}
		value, ok := mapping[segment]
		if !ok {
			return fallback
		}
		current = value
	}
	return current
}

// assign writes value at a dot-separated path, creating intermediate
// mappings as needed. A segment that collides with an existing non-mapping
// value fails the whole write; nothing is applied.
func assign(raw map[string]any, dotted string, value any) error {
	segments := strings.Split(dotted, ".")
	if len(segments) == 0 || dotted == "" {
		return fmt.Errorf("%w: empty path", ErrPathConflict)
	}

	// Verify the chain before mutating anything so a deep conflict never
	// leaves half-created intermediates behind.
	current := raw
	for index, segment := range segments[:len(segments)-1] {
		existing, ok := current[segment]
		if !ok {
			break
		}
		mapping, ok := existing.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: %q", ErrPathConflict, strings.Join(segments[:index+1], "."))
		}
		current = mapping
	}

	current = raw
	for _, segment := range segments[:len(segments)-1] {
		existing, ok := current[segment]
		if !ok {
			next := map[string]any{}
			current[segment] = next
			current = next
			continue
		}
		current = existing.(map[string]any)
	}
	current[segments[len(segments)-1]] = value
	return nil
}
