package command

// UserError is an error meant to be shown to the author of the command.
type UserError struct {
	Message string
}

func (e *UserError) Error() string {
	return e.Message
}

func userError(msg string) *UserError {
	return &UserError{Message: msg}
}
