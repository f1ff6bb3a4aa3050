package domain

// LoginCredentials are submitted by the login form. They are never stored.
type LoginCredentials struct {
	Username string
	Password string
}

// Registration is submitted by the registration form. It is never stored.
type Registration struct {
	NewUsername     string
	NewPassword     string
	ConfirmPassword string
}

func (r Registration) PasswordsMatch() bool {
	return r.NewPassword == r.ConfirmPassword
}
