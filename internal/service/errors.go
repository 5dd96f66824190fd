package service

import (
	"errors"
	"fmt"

	"connectrpc.com/connect"

	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/internal/storage"
)

var (
	errNoHousehold   = errors.New("household not found")
	errNotMember     = errors.New("not a member of this household")
	errHasHousehold  = errors.New("user already belongs to a household")
	errDraftExists   = errors.New("a draft pay cycle already exists")
	errNoActiveCycle = errors.New("no active pay cycle")
	errCycleClosed   = errors.New("pay cycle is completed")
)

// invalidArgument reports a malformed request.
func invalidArgument(format string, args ...any) error {
	return connect.NewError(connect.CodeInvalidArgument, fmt.Errorf(format, args...))
}

// connectError maps an error from the storage or service layer onto a Connect code.
// Errors that already carry a code pass through unchanged; persistence failures
// surface verbatim as CodeInternal.
func connectError(err error) error {
	var cerr *connect.Error
	switch {
	case errors.As(err, &cerr):
		return cerr
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, errNoHousehold):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, errNotMember):
		return connect.NewError(connect.CodePermissionDenied, err)
	case errors.Is(err, errHasHousehold), errors.Is(err, errDraftExists),
		errors.Is(err, errNoActiveCycle), errors.Is(err, errCycleClosed):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	}
	return connect.NewError(connect.CodeInternal, err)
}
