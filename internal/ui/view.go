package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"culler/internal/domain"
	"culler/internal/input"
	"culler/internal/state"
)

type uiStyles struct {
	headerStyle lipgloss.Style
	mutedStyle  lipgloss.Style
	statusStyle lipgloss.Style
	warnStyle   lipgloss.Style
	frameStyle  lipgloss.Style
	finalStyle  lipgloss.Style
}

func defaultStyles() uiStyles {
	return uiStyles{
		headerStyle: lipgloss.NewStyle().Bold(true),
		mutedStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		statusStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("69")).Bold(true),
		warnStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("204")).Bold(true),
		frameStyle:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
		finalStyle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
	}
}

func (model Model) View() string {
	styles := defaultStyles()
	if model.showHelp {
		return renderHelp(model, styles)
	}
	sections := []string{
		renderHeader(model, styles),
		renderBody(model, styles),
		renderFooter(model, styles),
	}
	return strings.Join(sections, "\n")
}

func renderHeader(model Model, styles uiStyles) string {
	doc := model.store.Document()
	lines := []string{
		styles.headerStyle.Render("culler"),
		styles.mutedStyle.Render(fmt.Sprintf("source: %s", orUnset(doc.SourceRoot))),
		styles.mutedStyle.Render(fmt.Sprintf("keep:   %s", orUnset(doc.KeepRoot))),
		styles.mutedStyle.Render(fmt.Sprintf("reject: %s", orUnset(doc.RejectDir()))),
	}
	return strings.Join(lines, "\n")
}

func renderBody(model Model, styles uiStyles) string {
	switch model.session.Phase() {
	case state.PhaseIdle:
		return styles.frameStyle.Render("Press enter to scan the source folder")
	case state.PhaseScanning:
		return styles.frameStyle.Render("Scanning...")
	case state.PhaseTerminal:
		return styles.frameStyle.Render(styles.finalStyle.Render("--- NO MORE IMAGES ---"))
	}

	file, ok := model.session.Current()
	if !ok {
		return styles.frameStyle.Render("")
	}
	lines := []string{
		styles.headerStyle.Render(file.Name),
		styles.mutedStyle.Render(file.RelPath()),
		"",
		fmt.Sprintf("Image %d of %d", model.session.Cursor()+1, model.session.Len()),
	}
	return styles.frameStyle.Render(strings.Join(lines, "\n"))
}

func renderFooter(model Model, styles uiStyles) string {
	lines := []string{
		styles.mutedStyle.Render(mappingSummary(model.router)),
		styles.statusStyle.Render(model.status),
	}
	if len(model.warnings) > 0 {
		lines = append(lines, styles.warnStyle.Render(fmt.Sprintf("%d folders skipped during scan (see log)", len(model.warnings))))
	}
	lines = append(lines, styles.mutedStyle.Render("? help  q quit"))
	return strings.Join(lines, "\n")
}

// mappingSummary renders the active bindings, mirroring whatever BindAll
// installed last.
func mappingSummary(router *input.Router) string {
	return fmt.Sprintf("L-Click: %s  |  R-Click: %s  |  Wheel: %s/%s",
		boundName(router, input.EventLeftClick),
		boundName(router, input.EventRightClick),
		boundName(router, input.EventWheelUp),
		boundName(router, input.EventWheelDown),
	)
}

func boundName(router *input.Router, event input.Event) string {
	action, ok := router.Bound(event)
	if !ok || action == domain.ActionDisabled {
		return "-"
	}
	return strings.ToUpper(string(action))
}

func renderHelp(model Model, styles uiStyles) string {
	lines := []string{
		styles.headerStyle.Render("culler - keys"),
		"",
		"enter/s  start culling",
		"r        rescan source folder",
		"e        toggle recursive loading",
		"?        close help",
		"q        quit",
		"",
		styles.headerStyle.Render("mouse"),
		"",
		styles.mutedStyle.Render(mappingSummary(model.router)),
		"",
		styles.mutedStyle.Render("Mappings are configured in " + model.store.Path()),
	}
	return strings.Join(lines, "\n")
}

func orUnset(path string) string {
	if path == "" {
		return "(not set)"
	}
	return path
}
