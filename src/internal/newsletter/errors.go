package newsletter

import (
	"fmt"

	apperrors "github.com/maksimkurb/newsletter-lists/src/internal/errors"
)

// InvalidListReason tells why a list name could not be resolved.
type InvalidListReason string

const (
	// ReasonDefaultMisconfigured means the default list was requested and
	// default_list_name does not match any configured list.
	ReasonDefaultMisconfigured InvalidListReason = "default_misconfigured"

	// ReasonNotFound means an explicitly requested list is not configured.
	ReasonNotFound InvalidListReason = "not_found"
)

// InvalidListError is returned when a requested or default list name does not
// correspond to any configured list.
type InvalidListError struct {
	Reason   InvalidListReason
	ListName string
}

func (e *InvalidListError) Error() string {
	if e.Reason == ReasonDefaultMisconfigured {
		return fmt.Sprintf("default list `%s` could not be found", e.ListName)
	}
	return fmt.Sprintf("list `%s` could not be found", e.ListName)
}

// Unwrap exposes the error as an INVALID_LIST_ERROR application error, so
// errors.Is(err, apperrors.New(apperrors.ErrCodeInvalidList, "")) matches it.
func (e *InvalidListError) Unwrap() error {
	return apperrors.NewInvalidListError(e.Error())
}
