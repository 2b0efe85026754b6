package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"culler/internal/fsx"
)

const (
	configDirName  = "culler"
	configFileName = "settings.json"

	// invalidSuffix names the backup taken before an invalid-but-parseable
	// document is replaced with defaults.
	invalidSuffix = ".invalid"
)

// DefaultPath is the documented location of the settings file.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, configDirName, configFileName), nil
}

// Store loads, validates, migrates and persists the configuration
// document, and exposes dotted-path access over its nested form. The raw
// map is authoritative; typed views are derived on demand.
type Store struct {
	path string
	raw  map[string]any
	log  zerolog.Logger
}

func NewStore(path string, logger zerolog.Logger) *Store {
	return &Store{
		path: path,
		raw:  toRaw(DefaultDocument()),
		log:  logger,
	}
}

func (store *Store) Path() string {
	return store.path
}

// Load reads the persisted document. A missing file yields defaults and
// persists them. Unparseable bytes yield defaults and ErrCorrupted, with
// the original bytes left on disk for recovery. A parseable v1 document is
// migrated and the migration persisted. A parseable v2 document that fails
// validation is backed up to a .invalid sibling, replaced with defaults,
// and reported as ErrCorrupted. The returned document is always usable.
func (store *Store) Load() (Document, error) {
	data, err := os.ReadFile(store.path)
	if err != nil {
		if os.IsNotExist(err) {
			store.raw = toRaw(DefaultDocument())
			if err := store.persist(); err != nil {
				return store.Document(), fmt.Errorf("persist defaults: %w", err)
			}
			return store.Document(), nil
		}
		store.log.Error().Err(err).Str("path", store.path).Msg("settings unreadable, using defaults")
		store.raw = toRaw(DefaultDocument())
		return store.Document(), fmt.Errorf("%w: %v", ErrCorrupted, err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		store.log.Warn().Err(err).Str("path", store.path).Msg("settings unparseable, using defaults")
		store.raw = toRaw(DefaultDocument())
		return store.Document(), fmt.Errorf("%w: %v", ErrCorrupted, err)
	}

	if isV1(raw) {
		store.log.Info().Str("path", store.path).Msg("migrating settings from v1 schema")
		migrated := Migrate(raw)
		store.raw = toRaw(migrated)
		if err := store.persist(); err != nil {
			return migrated, fmt.Errorf("persist migration: %w", err)
		}
		return migrated, nil
	}

	if err := validateRaw(raw); err != nil {
		store.log.Warn().Err(err).Str("path", store.path).Msg("settings invalid, backing up and using defaults")
		if backupErr := store.backupInvalid(data); backupErr != nil {
			store.log.Error().Err(backupErr).Msg("settings backup failed")
		}
		store.raw = toRaw(DefaultDocument())
		if persistErr := store.persist(); persistErr != nil {
			store.log.Error().Err(persistErr).Msg("persisting defaults failed")
		}
		return store.Document(), fmt.Errorf("%w: %v", ErrCorrupted, err)
	}

	store.raw = raw
	return store.Document(), nil
}

// Save validates the candidate document and atomically replaces the
// persisted bytes. An invalid document is refused and the active document
// is left untouched.
func (store *Store) Save(doc Document) error {
	if err := Validate(doc); err != nil {
		return err
	}
	raw := toRaw(doc)
	previous := store.raw
	store.raw = raw
	if err := store.persist(); err != nil {
		store.raw = previous
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

// Document returns the typed view of the active document.
func (store *Store) Document() Document {
	doc, err := decodeDocument(store.raw)
	if err != nil {
		return DefaultDocument()
	}
	return doc
}

// Get navigates the document by a dot-separated path, returning fallback
// when the path is missing.
func (store *Store) Get(dotted string, fallback any) any {
	return lookup(store.raw, dotted, fallback)
}

// Set writes a value at a dot-separated path in the active document,
// creating intermediate mappings as needed. The change is in-memory only;
// Save persists it.
func (store *Store) Set(dotted string, value any) error {
	return assign(store.raw, dotted, value)
}

func (store *Store) persist() error {
	data, err := json.MarshalIndent(store.raw, "", "  ")
	if err != nil {
		return err
	}
	return fsx.WriteAtomic(store.path, data, 0o600)
}

func (store *Store) backupInvalid(data []byte) error {
	return fsx.WriteAtomic(store.path+invalidSuffix, data, 0o600)
}
