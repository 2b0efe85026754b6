package config

import (
	"errors"
	"fmt"

	"culler/internal/domain"
)

var (
	// ErrCorrupted marks a persisted document that could not be used:
	// unparseable bytes or a parseable document that failed validation.
	// Load recovers with defaults; the error exists for user notification.
	ErrCorrupted = errors.New("settings document corrupted")

	// ErrInvalidDocument is wrapped by every validation failure.
	ErrInvalidDocument = errors.New("invalid settings document")
)

var requiredKeys = []string{"src", "keep", "button_mappings", "wheel_mappings", "options"}

var knownKeys = map[string]struct{}{
	"src":             {},
	"keep":            {},
	"reject":          {},
	"button_mappings": {},
	"wheel_mappings":  {},
	"options":         {},
}

// Validate checks a typed document against the closed action set. It is
// pure: no I/O, first violation wins.
func Validate(doc Document) error {
	return validateRaw(toRaw(doc))
}

// validateRaw checks the nested-map form of a v2 document: the five
// required top-level keys, no unknown keys, string path fields, mapping
// values inside the closed action set, boolean recursive_loading.
func validateRaw(raw map[string]any) error {
	for _, key := range requiredKeys {
		if _, ok := raw[key]; !ok {
			return fmt.Errorf("%w: missing required key %q", ErrInvalidDocument, key)
		}
	}
	for key := range raw {
		if _, ok := knownKeys[key]; !ok {
			return fmt.Errorf("%w: unknown key %q", ErrInvalidDocument, key)
		}
	}
	for _, key := range []string{"src", "keep", "reject"} {
		value, ok := raw[key]
		if !ok {
			continue
		}
		if _, ok := value.(string); !ok {
			return fmt.Errorf("%w: %q must be a string", ErrInvalidDocument, key)
		}
	}
	if err := validateMappingSection(raw, "button_mappings", []string{"left_click", "right_click"}); err != nil {
		return err
	}
	if err := validateMappingSection(raw, "wheel_mappings", []string{"wheel_up", "wheel_down"}); err != nil {
		return err
	}

	options, ok := raw["options"].(map[string]any)
	if !ok {
		return fmt.Errorf("%w: options must be a mapping", ErrInvalidDocument)
	}
	recursive, ok := options["recursive_loading"]
	if !ok {
		return fmt.Errorf("%w: missing option recursive_loading", ErrInvalidDocument)
	}
	if _, ok := recursive.(bool); !ok {
		return fmt.Errorf("%w: recursive_loading must be a boolean", ErrInvalidDocument)
	}
	return nil
}

func validateMappingSection(raw map[string]any, section string, events []string) error {
	mappings, ok := raw[section].(map[string]any)
	if !ok {
		return fmt.Errorf("%w: %s must be a mapping", ErrInvalidDocument, section)
	}
	for _, event := range events {
		value, ok := mappings[event]
		if !ok {
			return fmt.Errorf("%w: missing mapping %s.%s", ErrInvalidDocument, section, event)
		}
		name, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w: %s.%s must be a string", ErrInvalidDocument, section, event)
		}
		// Exact membership, no case folding: a value that validates is the
		// value the router dispatches on.
		if !domain.Action(name).Valid() {
			return fmt.Errorf("%w: invalid action %q for %s.%s", ErrInvalidDocument, name, section, event)
		}
	}
	for event := range mappings {
		if !contains(events, event) {
			return fmt.Errorf("%w: unknown mapping %s.%s", ErrInvalidDocument, section, event)
		}
	}
	return nil
}

func contains(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}

// isV1 reports whether the raw document carries the original schema, which
// predates the mapping sections.
func isV1(raw map[string]any) bool {
	_, ok := raw["button_mappings"]
	return !ok
}

// Migrate produces a current-schema document from a raw document of either
// schema. A v1 document contributes its src and keep paths over defaults;
// a v2 document passes through. Migrate is idempotent.
func Migrate(raw map[string]any) Document {
	if !isV1(raw) {
		doc, err := decodeDocument(raw)
		if err != nil {
			return DefaultDocument()
		}
		return doc
	}
	doc := DefaultDocument()
	if src, ok := raw["src"].(string); ok {
		doc.SourceRoot = src
	}
	if keep, ok := raw["keep"].(string); ok {
		doc.KeepRoot = keep
	}
	return doc
}
