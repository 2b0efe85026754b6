package input

import "culler/internal/domain"

// Behavior is the callable side of a semantic action.
type Behavior func()

// Behaviors is the fixed catalogue of action implementations, one per
// invokable action. The action set is closed; there is no registration of
// custom actions.
type Behaviors struct {
	Keep     Behavior
	Reject   Behavior
	Next     Behavior
	Previous Behavior
	Skip     Behavior
}

type Registry struct {
	behaviors Behaviors
}

func NewRegistry(behaviors Behaviors) Registry {
	return Registry{behaviors: behaviors}
}

// Resolve maps an action name to its behavior. The disabled sentinel and
// anything outside the closed set resolve to nothing.
func (registry Registry) Resolve(action domain.Action) (Behavior, bool) {
	var behavior Behavior
	switch action {
	case domain.ActionKeep:
		behavior = registry.behaviors.Keep
	case domain.ActionReject:
		behavior = registry.behaviors.Reject
	case domain.ActionNext:
		behavior = registry.behaviors.Next
	case domain.ActionPrevious:
		behavior = registry.behaviors.Previous
	case domain.ActionSkip:
		behavior = registry.behaviors.Skip
	default:
		return nil, false
	}
	if behavior == nil {
		return nil, false
	}
	return behavior, true
}
