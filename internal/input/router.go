package input

import (
	"github.com/rs/zerolog"

	"culler/internal/config"
	"culler/internal/domain"
)

// Event identifies one of the four physical inputs the router dispatches.
// The values double as the configuration keys of the mapping sections.
type Event string

const (
	EventLeftClick  Event = "left_click"
	EventRightClick Event = "right_click"
	EventWheelUp    Event = "wheel_up"
	EventWheelDown  Event = "wheel_down"
)

func Events() []Event {
	return []Event{EventLeftClick, EventRightClick, EventWheelUp, EventWheelDown}
}

type binding struct {
	action   domain.Action
	behavior Behavior
}

// Router is the single source of truth for which physical input triggers
// which semantic action. The binding table is replaced wholesale on every
// BindAll, never patched, so two successive configurations can never leak
// into each other.
type Router struct {
	registry Registry
	bindings map[Event]binding
	log      zerolog.Logger
}

func NewRouter(registry Registry, logger zerolog.Logger) *Router {
	return &Router{
		registry: registry,
		bindings: map[Event]binding{},
		log:      logger,
	}
}

// BindAll rebinds every event from the document's mappings. Events mapped
// to disabled stay unbound. Duplicate actions across events are allowed;
// they are logged, not rejected.
func (router *Router) BindAll(doc config.Document) {
	router.UnbindAll()

	seen := map[domain.Action]Event{}
	for _, event := range Events() {
		action, ok := doc.Mapping(string(event))
		if !ok || !action.Invokable() {
			continue
		}
		behavior, ok := router.registry.Resolve(action)
		if !ok {
			router.log.Warn().Str("event", string(event)).Str("action", string(action)).Msg("no behavior for action")
			continue
		}
		if prior, dup := seen[action]; dup {
			router.log.Warn().
				Str("action", string(action)).
				Str("event", string(event)).
				Str("also", string(prior)).
				Msg("action mapped to multiple inputs")
		}
		seen[action] = event
		router.bindings[event] = binding{action: action, behavior: behavior}
	}
}

// UnbindAll clears the table; safe when nothing is bound.
func (router *Router) UnbindAll() {
	router.bindings = map[Event]binding{}
}

// Dispatch runs the behavior bound to event, if any. The behavior runs to
// completion against the table that was active when it fired.
func (router *Router) Dispatch(event Event) bool {
	bound, ok := router.bindings[event]
	if !ok {
		return false
	}
	bound.behavior()
	return true
}

// Bound reports the action currently bound to event, for display surfaces.
func (router *Router) Bound(event Event) (domain.Action, bool) {
	bound, ok := router.bindings[event]
	if !ok {
		return domain.ActionDisabled, false
	}
	return bound.action, true
}
