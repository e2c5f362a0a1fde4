package workflow

import "errors"

// Error kinds. Match with errors.Is.
var (
	ErrValidation    = errors.New("validation error")
	ErrAuthorization = errors.New("authorization error")
	ErrRemote        = errors.New("remote failure")
)

// Error carries a user-facing message together with its kind.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }
func (e *Error) Unwrap() error { return e.Kind }

func validation(msg string) error    { return &Error{Kind: ErrValidation, Msg: msg} }
func authorization(msg string) error { return &Error{Kind: ErrAuthorization, Msg: msg} }

// Remote wraps a failure from the remote API. msg is shown to the user as is.
func Remote(msg string) error { return &Error{Kind: ErrRemote, Msg: msg} }

// Forbidden is used by flows outside the decision path (user admin) that
// apply the same client-side gating.
func Forbidden(msg string) error { return authorization(msg) }

// Invalid is the ErrValidation counterpart of Forbidden.
func Invalid(msg string) error { return validation(msg) }
