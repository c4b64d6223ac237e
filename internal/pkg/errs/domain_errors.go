package errs

import "errors"

// Error classes shared by every layer. Domain and usecase errors wrap one of
// these so the HTTP layer can pick a status code without knowing the details.
var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
	ErrInvalidState = errors.New("invalid state")
	ErrValidation   = errors.New("validation failed")
)

// Class returns the error class err belongs to, or nil for unclassified errors.
func Class(err error) error {
	for _, class := range []error{ErrNotFound, ErrForbidden, ErrConflict, ErrInvalidState, ErrValidation} {
		if Is(err, class) {
			return class
		}
	}
	return nil
}

// Error is a classified error whose message is safe to show to API clients.
type Error struct {
	class error
	msg   string
}

// Classify creates an error that reports msg and matches class with errors.Is.
func Classify(class error, msg string) error {
	return &Error{class: class, msg: msg}
}

func (e *Error) Error() string { return e.msg }
func (e *Error) Unwrap() error { return e.class }

// PublicMessage returns the message of the outermost classified error in the chain.
func PublicMessage(err error) (string, bool) {
	var classified *Error
	if As(err, &classified) {
		return classified.msg, true
	}
	return "", false
}
