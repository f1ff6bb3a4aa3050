package tui

import (
	"corvo-delivery/internal/domain"

	"github.com/charmbracelet/bubbles/textinput"
)

// field names a text input. Inputs keep their value across render passes.
type field int

const (
	fieldCourierName field = iota
	fieldCourierContact
	fieldUsername
	fieldPassword
	fieldNewUsername
	fieldNewPassword
	fieldConfirmPassword
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldCourierName:     domain.CourierNameLabel,
	fieldCourierContact:  domain.CourierContactLbl,
	fieldUsername:        domain.UsernameLabel,
	fieldPassword:        domain.PasswordLabel,
	fieldNewUsername:     domain.NewUsernameLabel,
	fieldNewPassword:     domain.NewPasswordLabel,
	fieldConfirmPassword: domain.ConfirmPasswordLabel,
}

func newInputs() [fieldCount]textinput.Model {
	var inputs [fieldCount]textinput.Model
	for f := range fieldCount {
		in := textinput.New()
		in.Prompt = "> "
		in.CharLimit = 64
		in.Width = 32
		switch f {
		case fieldPassword, fieldNewPassword, fieldConfirmPassword:
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '•'
		}
		inputs[f] = in
	}
	return inputs
}

// control is one focusable element of the rendered page: either a text
// input or a button that emits an event.
type control struct {
	input  bool
	field  field
	label  string
	action domain.Action

	courier    string
	deliveryID int
}

// buildControls lists the page's focusable elements in display order.
func buildControls(page *domain.Page) []control {
	if page == nil {
		return nil
	}

	var cs []control
	if a := page.Admin; a != nil {
		cs = append(cs,
			control{input: true, field: fieldCourierName},
			control{input: true, field: fieldCourierContact},
			control{label: domain.AddCourierButton, action: domain.ActionAddCourier},
		)
		for _, c := range a.Couriers {
			cs = append(cs, control{
				label:   domain.RemoveCourierButton(c),
				action:  domain.ActionRemoveCourier,
				courier: c.Name,
			})
		}
	}

	if d := page.Delivery; d != nil {
		for _, x := range d.Deliveries {
			cs = append(cs,
				control{label: domain.CompleteDeliveryButton(x), action: domain.ActionCompleteDelivery, deliveryID: x.ID},
				control{label: domain.PauseDeliveryButton(x), action: domain.ActionPauseDelivery, deliveryID: x.ID},
			)
		}
	}

	if page.Auth.Mode == domain.AuthRegister {
		cs = append(cs,
			control{input: true, field: fieldNewUsername},
			control{input: true, field: fieldNewPassword},
			control{input: true, field: fieldConfirmPassword},
			control{label: domain.RegisterButtonLabel, action: domain.ActionRegister},
		)
	} else {
		cs = append(cs,
			control{input: true, field: fieldUsername},
			control{input: true, field: fieldPassword},
			control{label: domain.LoginButtonLabel, action: domain.ActionLogin},
		)
	}
	return cs
}

// event builds the interaction a button press submits, reading the
// current input values.
func (c control) event(inputs *[fieldCount]textinput.Model) domain.Event {
	ev := domain.Event{Action: c.action}
	switch c.action {
	case domain.ActionAddCourier:
		ev.Courier = domain.Courier{
			Name:    inputs[fieldCourierName].Value(),
			Contact: inputs[fieldCourierContact].Value(),
		}
	case domain.ActionRemoveCourier:
		ev.Courier = domain.Courier{Name: c.courier}
	case domain.ActionCompleteDelivery, domain.ActionPauseDelivery:
		ev.DeliveryID = c.deliveryID
	case domain.ActionLogin:
		ev.Login = domain.LoginCredentials{
			Username: inputs[fieldUsername].Value(),
			Password: inputs[fieldPassword].Value(),
		}
	case domain.ActionRegister:
		ev.Registration = domain.Registration{
			NewUsername:     inputs[fieldNewUsername].Value(),
			NewPassword:     inputs[fieldNewPassword].Value(),
			ConfirmPassword: inputs[fieldConfirmPassword].Value(),
		}
	}
	return ev
}
