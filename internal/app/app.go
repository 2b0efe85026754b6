package app

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ncruces/zenity"

	"culler/internal/config"
	"culler/internal/input"
	"culler/internal/logging"
	"culler/internal/services"
	"culler/internal/state"
	"culler/internal/ui"
)

// Options are the command-line overrides. Zero values mean "use whatever
// the settings file says". RecursiveSet distinguishes an explicit
// --recursive=false from the flag being absent.
type Options struct {
	ConfigPath   string
	LogPath      string
	LogLevel     string
	Source       string
	Keep         string
	Reject       string
	Recursive    bool
	RecursiveSet bool
}

// Run wires the whole program together and blocks until the UI exits.
func Run(opts Options) error {
	logPath := opts.LogPath
	if logPath == "" {
		path, err := logging.DefaultPath()
		if err != nil {
			return fmt.Errorf("resolve log path: %w", err)
		}
		logPath = path
	}
	logger, closeLog := logging.Open(logPath, opts.LogLevel)
	defer closeLog()

	configPath := opts.ConfigPath
	if configPath == "" {
		path, err := config.DefaultPath()
		if err != nil {
			return fmt.Errorf("resolve settings path: %w", err)
		}
		configPath = path
	}

	store := config.NewStore(configPath, logger)
	notice := ""
	if _, err := store.Load(); err != nil {
		if !errors.Is(err, config.ErrCorrupted) {
			return fmt.Errorf("load settings: %w", err)
		}
		// Defaults are already active; tell the user instead of dying.
		logger.Warn().Err(err).Msg("settings reset to defaults")
		notice = "Settings were invalid and have been reset to defaults"
	}

	if err := applyOverrides(store, opts); err != nil {
		return err
	}
	if err := ensureFolders(store); err != nil {
		return err
	}

	doc := store.Document()
	logger.Info().
		Str("source", doc.SourceRoot).
		Str("keep", doc.KeepRoot).
		Str("reject", doc.RejectDir()).
		Bool("recursive", doc.Options.RecursiveLoading).
		Msg("starting")

	session := state.NewSession()
	relocator := services.NewFileRelocator(logger)
	controller := state.NewController(session, relocator, store.Document, logger)
	registry := input.NewRegistry(input.Behaviors{
		Keep:     controller.Keep,
		Reject:   controller.Reject,
		Next:     controller.Next,
		Previous: controller.Previous,
		Skip:     controller.Skip,
	})
	router := input.NewRouter(registry, logger)
	router.BindAll(doc)

	scanner := services.NewFileScanner(logger)
	model := ui.NewModel(store, controller, router, scanner, logger).WithStatus(notice)

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// applyOverrides writes the command-line overrides into the settings and
// persists them, so a path passed once sticks for the next session.
func applyOverrides(store *config.Store, opts Options) error {
	changed := false
	set := func(dotted string, value any) error {
		if err := store.Set(dotted, value); err != nil {
			return fmt.Errorf("apply override %s: %w", dotted, err)
		}
		changed = true
		return nil
	}

	if opts.Source != "" {
		if err := set("src", opts.Source); err != nil {
			return err
		}
	}
	if opts.Keep != "" {
		if err := set("keep", opts.Keep); err != nil {
			return err
		}
	}
	if opts.Reject != "" {
		if err := set("reject", opts.Reject); err != nil {
			return err
		}
	}
	if opts.RecursiveSet {
		if err := set("options.recursive_loading", opts.Recursive); err != nil {
			return err
		}
	}
	if !changed {
		return nil
	}
	if err := store.Save(store.Document()); err != nil {
		return fmt.Errorf("save overrides: %w", err)
	}
	return nil
}

// ensureFolders prompts for the source and keep folders when the settings
// do not name them yet. Cancelling either dialog aborts startup; culling
// cannot run without them.
func ensureFolders(store *config.Store) error {
	doc := store.Document()
	changed := false

	if doc.SourceRoot == "" {
		folder, err := pickFolder("Select the folder with images to cull")
		if err != nil {
			return err
		}
		if err := store.Set("src", folder); err != nil {
			return err
		}
		changed = true
	}
	if doc.KeepRoot == "" {
		folder, err := pickFolder("Select the folder for kept images")
		if err != nil {
			return err
		}
		if err := store.Set("keep", folder); err != nil {
			return err
		}
		changed = true
	}

	if !changed {
		return nil
	}
	if err := store.Save(store.Document()); err != nil {
		return fmt.Errorf("save folders: %w", err)
	}
	return nil
}

func pickFolder(title string) (string, error) {
	folder, err := zenity.SelectFile(zenity.Directory(), zenity.Title(title))
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", errors.New("folder selection cancelled")
		}
		return "", fmt.Errorf("folder dialog: %w", err)
	}
	return folder, nil
}
