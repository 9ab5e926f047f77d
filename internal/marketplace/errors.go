package marketplace

import "errors"

// ErrNoIdentity means the caller is anonymous. Write operations treat it as
// a silent no-op: nothing is stored and nothing is reported to the user.
var ErrNoIdentity = errors.New("no authenticated identity")

// Input errors. They are safe to show to the user as-is.
var (
	ErrDescriptionRequired = errors.New("description is required")
	ErrMessageRequired     = errors.New("message is required")
	ErrRequestIDRequired   = errors.New("request id is required")
	ErrInvalidPrice        = errors.New("price must be a non-negative number")
	ErrStoreNameRequired   = errors.New("store name is required")
)

// Lookup and permission errors.
var (
	ErrRequestNotFound      = errors.New("item request not found")
	ErrRequestClosed        = errors.New("item request is no longer open")
	ErrStoreNotFound        = errors.New("store not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrForbidden            = errors.New("not allowed")
)

// IsValidation reports whether err is caused by bad user input.
func IsValidation(err error) bool {
	for _, target := range []error{
		ErrDescriptionRequired,
		ErrMessageRequired,
		ErrRequestIDRequired,
		ErrInvalidPrice,
		ErrStoreNameRequired,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
