package domain

import "strings"

// Action is one of the semantic operations a physical input can trigger.
type Action string

const (
	ActionKeep     Action = "keep"
	ActionReject   Action = "reject"
	ActionNext     Action = "next"
	ActionPrevious Action = "previous"
	ActionSkip     Action = "skip"
	ActionDisabled Action = "disabled"
)

func Actions() []Action {
	return []Action{ActionKeep, ActionReject, ActionNext, ActionPrevious, ActionSkip, ActionDisabled}
}

func ParseAction(value string) (Action, bool) {
	action := Action(strings.ToLower(strings.TrimSpace(value)))
	if action.Valid() {
		return action, true
	}
	return "", false
}

func (action Action) Valid() bool {
	switch action {
	case ActionKeep, ActionReject, ActionNext, ActionPrevious, ActionSkip, ActionDisabled:
		return true
	default:
		return false
	}
}

// Invokable reports whether the action resolves to a behavior. The disabled
// sentinel is a valid mapping value that leaves its event unbound.
func (action Action) Invokable() bool {
	return action.Valid() && action != ActionDisabled
}
