package shared

import "fmt"

// Action represents the direction of a maneuver relative to a body
type Action int

const (
	ActionLaunch Action = iota
	ActionLand
)

var actionNames = map[Action]string{
	ActionLaunch: "launch",
	ActionLand:   "land",
}

// Name returns the action name
func (a Action) Name() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "UNKNOWN"
}

func (a Action) String() string {
	return a.Name()
}

// ParseAction parses an action name string into an Action
func ParseAction(name string) (Action, error) {
	for action, actionName := range actionNames {
		if actionName == name {
			return action, nil
		}
	}
	return ActionLaunch, fmt.Errorf("unknown maneuver action: %s", name)
}

// Maneuver is an immutable (action, body) pair. An ordered sequence of
// maneuvers forms a flight path.
type Maneuver struct {
	Action Action
	Body   Body
}

// NewManeuver creates a maneuver from host-provided identifiers, rejecting
// anything outside the closed action/body sets. Past this boundary only
// closed-set types flow.
func NewManeuver(actionName, bodyName string) (Maneuver, error) {
	action, err := ParseAction(actionName)
	if err != nil {
		return Maneuver{}, err
	}
	body, err := ParseBody(bodyName)
	if err != nil {
		return Maneuver{}, err
	}
	return Maneuver{Action: action, Body: body}, nil
}

func (m Maneuver) String() string {
	return fmt.Sprintf("%s %s", m.Action, m.Body)
}
