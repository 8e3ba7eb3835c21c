package service

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"

	appErrors "github.com/Massi21022535/Asistencia-Back/pkg/errors"
)

// storeError maps a repository failure onto the API taxonomy.
// Connectivity problems become STORE_BUSY so callers know a retry is
// safe; anything else is an internal error.
func storeError(err error, message string) error {
	if isTransient(err) {
		return appErrors.Wrap(err, appErrors.ErrStoreBusy.Code, appErrors.ErrStoreBusy.Status, appErrors.ErrStoreBusy.Message)
	}
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, message)
}

func isTransient(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
