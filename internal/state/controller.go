package state

import (
	"fmt"

	"github.com/rs/zerolog"

	"culler/internal/config"
	"culler/internal/services"
)

// Controller implements the five action behaviors over a session. Keep and
// reject relocate the current file synchronously and advance only when the
// move succeeded; a failed move leaves the cursor in place so the image is
// not silently skipped. Destination roots are resolved from the active
// configuration at dispatch time.
type Controller struct {
	session   *Session
	relocator services.Relocator
	document  func() config.Document
	log       zerolog.Logger
	note      string
}

func NewController(session *Session, relocator services.Relocator, document func() config.Document, logger zerolog.Logger) *Controller {
	return &Controller{
		session:   session,
		relocator: relocator,
		document:  document,
		log:       logger,
	}
}

func (controller *Controller) Session() *Session {
	return controller.session
}

// Note returns the outcome of the most recent action for the display
// surface, cleared on read.
func (controller *Controller) Note() string {
	note := controller.note
	controller.note = ""
	return note
}

func (controller *Controller) Keep() {
	controller.relocateCurrent(controller.document().KeepRoot, "kept")
}

func (controller *Controller) Reject() {
	controller.relocateCurrent(controller.document().RejectDir(), "rejected")
}

func (controller *Controller) Next() {
	controller.session.Advance()
}

func (controller *Controller) Previous() {
	controller.session.Retreat()
}

// Skip advances without moving the file. No skip record is kept.
func (controller *Controller) Skip() {
	controller.session.Advance()
}

func (controller *Controller) relocateCurrent(destRoot, verb string) {
	file, ok := controller.session.Current()
	if !ok {
		return
	}
	result, err := controller.relocator.Relocate(services.RelocateRequest{
		File:     file,
		DestRoot: destRoot,
	})
	if err != nil {
		controller.log.Error().Err(err).Str("file", file.RelPath()).Msg("relocation failed")
		controller.note = fmt.Sprintf("Move failed: %v", err)
		return
	}
	controller.session.Advance()
	if result.Renamed {
		controller.note = fmt.Sprintf("%s %s (renamed, name was taken)", verb, file.RelPath())
	} else {
		controller.note = fmt.Sprintf("%s %s", verb, file.RelPath())
	}
}
