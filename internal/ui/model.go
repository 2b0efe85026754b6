package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"culler/internal/config"
	"culler/internal/input"
	"culler/internal/services"
	"culler/internal/state"
)

// Model drives the culling session. All state transitions run inside
// Update on the program's single event loop; rapid repeated inputs queue
// through bubbletea and are each fully processed before the next one
// dispatches. The scan is the only operation that leaves the loop.
type Model struct {
	store      *config.Store
	session    *state.Session
	controller *state.Controller
	router     *input.Router
	scanner    services.Scanner
	keys       KeyMap
	log        zerolog.Logger

	status   string
	warnings []string
	showHelp bool
	width    int
	height   int

	cancelScan context.CancelFunc
}

func NewModel(store *config.Store, controller *state.Controller, router *input.Router, scanner services.Scanner, logger zerolog.Logger) Model {
	return Model{
		store:      store,
		session:    controller.Session(),
		controller: controller,
		router:     router,
		scanner:    scanner,
		keys:       DefaultKeyMap(),
		log:        logger,
		status:     "Press enter to start culling",
		width:      100,
		height:     30,
	}
}

func (model Model) WithStatus(message string) Model {
	if message != "" {
		model.status = message
	}
	return model
}

func (model Model) Init() tea.Cmd {
	return nil
}

func (model Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		return model.handleKey(typed)
	case tea.MouseMsg:
		return model.handleMouse(typed)
	case tea.WindowSizeMsg:
		model.width = typed.Width
		model.height = typed.Height
		return model, nil
	case scanResultMsg:
		return model.handleScanResult(typed)
	}
	return model, nil
}

func (model Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, model.keys.Quit):
		if model.cancelScan != nil {
			model.cancelScan()
		}
		return model, tea.Quit
	case key.Matches(msg, model.keys.Help):
		model.showHelp = !model.showHelp
		return model, nil
	case key.Matches(msg, model.keys.Start), key.Matches(msg, model.keys.Rescan):
		return model.startScan()
	case key.Matches(msg, model.keys.Recursive):
		return model.toggleRecursive()
	}
	return model, nil
}

// handleMouse translates the terminal mouse event into one of the four
// physical-event identifiers and routes it. Unbound events are ignored.
func (model Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	var event input.Event
	switch msg.Type {
	case tea.MouseLeft:
		event = input.EventLeftClick
	case tea.MouseRight:
		event = input.EventRightClick
	case tea.MouseWheelUp:
		event = input.EventWheelUp
	case tea.MouseWheelDown:
		event = input.EventWheelDown
	default:
		return model, nil
	}

	if !model.router.Dispatch(event) {
		return model, nil
	}
	if note := model.controller.Note(); note != "" {
		model.status = note
	} else {
		model.status = model.positionStatus()
	}
	return model, nil
}

func (model Model) handleScanResult(msg scanResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if errors.Is(msg.err, context.Canceled) {
			return model, nil
		}
		if model.session.FailScan(msg.generation) {
			model.status = fmt.Sprintf("Scan failed: %v", msg.err)
		}
		return model, nil
	}
	if !model.session.CompleteScan(msg.generation, msg.result.Files) {
		// A newer scan superseded this one; drop the stale result.
		return model, nil
	}
	model.warnings = msg.result.Warnings
	switch model.session.Len() {
	case 0:
		model.status = "No images found in source folder"
	default:
		model.status = fmt.Sprintf("%d images loaded from %s", model.session.Len(), msg.result.Root)
	}
	return model, nil
}

func (model Model) startScan() (tea.Model, tea.Cmd) {
	doc := model.store.Document()
	if doc.SourceRoot == "" {
		model.status = "No source folder configured"
		return model, nil
	}
	if model.cancelScan != nil {
		model.cancelScan()
	}
	ctx, cancel := context.WithCancel(context.Background())
	model.cancelScan = cancel

	generation := model.session.BeginScan()
	model.status = "Scanning..."
	model.warnings = nil

	request := services.ScanRequest{
		Root:      doc.SourceRoot,
		Recursive: doc.Options.RecursiveLoading,
	}
	return model, func() tea.Msg {
		result, err := model.scanner.Scan(ctx, request)
		return scanResultMsg{generation: generation, result: result, err: err}
	}
}

// toggleRecursive flips the recursive_loading option and persists it. The
// change applies to the next scan.
func (model Model) toggleRecursive() (tea.Model, tea.Cmd) {
	recursive := !model.store.Document().Options.RecursiveLoading
	if err := model.store.Set("options.recursive_loading", recursive); err != nil {
		model.status = fmt.Sprintf("Could not update option: %v", err)
		return model, nil
	}
	if err := model.store.Save(model.store.Document()); err != nil {
		model.log.Error().Err(err).Msg("saving settings failed")
		model.status = fmt.Sprintf("Could not save settings: %v", err)
		return model, nil
	}
	if recursive {
		model.status = "Recursive loading on (applies to next scan)"
	} else {
		model.status = "Recursive loading off (applies to next scan)"
	}
	return model, nil
}

func (model Model) positionStatus() string {
	if model.session.Phase() == state.PhaseTerminal {
		return "All images sorted"
	}
	file, ok := model.session.Current()
	if !ok {
		return model.status
	}
	return fmt.Sprintf("Image %d of %d: %s", model.session.Cursor()+1, model.session.Len(), file.RelPath())
}
