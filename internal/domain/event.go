package domain

import (
	"fmt"
	"strings"
)

// Action identifies the control a user triggered.
type Action string

const (
	ActionAddCourier       Action = "add_courier"
	ActionRemoveCourier    Action = "remove_courier"
	ActionCompleteDelivery Action = "complete_delivery"
	ActionPauseDelivery    Action = "pause_delivery"
	ActionLogin            Action = "login"
	ActionRegister         Action = "register"
)

func ParseAction(s string) (Action, error) {
	a := Action(strings.ToLower(strings.TrimSpace(s)))
	switch a {
	case ActionAddCourier, ActionRemoveCourier, ActionCompleteDelivery,
		ActionPauseDelivery, ActionLogin, ActionRegister:
		return a, nil
	}
	return "", fmt.Errorf("unknown action %q: %w", s, ErrInvalidArgument)
}

// Panel reports the sidebar panel the action lives in, if any.
func (a Action) Panel() (Panel, bool) {
	switch a {
	case ActionAddCourier, ActionRemoveCourier:
		return PanelAdmin, true
	case ActionCompleteDelivery, ActionPauseDelivery:
		return PanelDelivery, true
	}
	return 0, false
}

// AuthMode reports the selector option the action lives in, if any.
func (a Action) AuthMode() (AuthMode, bool) {
	switch a {
	case ActionLogin:
		return AuthLogin, true
	case ActionRegister:
		return AuthRegister, true
	}
	return "", false
}

// Event is a single user interaction. Only the fields relevant to Action
// are read.
type Event struct {
	Action       Action
	Courier      Courier
	DeliveryID   int
	Login        LoginCredentials
	Registration Registration
}

func (e Event) Validate() error {
	if _, err := ParseAction(string(e.Action)); err != nil {
		return fmt.Errorf("event: %w", err)
	}
	switch e.Action {
	case ActionRemoveCourier:
		if strings.TrimSpace(e.Courier.Name) == "" {
			return fmt.Errorf("event %s: courier name is required: %w", e.Action, ErrInvalidArgument)
		}
	case ActionCompleteDelivery, ActionPauseDelivery:
		if e.DeliveryID <= 0 {
			return fmt.Errorf("event %s: delivery id must be positive, got %d: %w", e.Action, e.DeliveryID, ErrInvalidArgument)
		}
	}
	return nil
}
