package domain

import (
	"fmt"
	"strings"
)

// Courier is a delivery person managed from the admin panel.
// The name is the only identity a courier has.
type Courier struct {
	Name    string
	Contact string
}

func (c Courier) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("courier: name must not be empty: %w", ErrInvalidArgument)
	}
	return nil
}
