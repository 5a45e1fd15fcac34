package dashboard

import (
	"errors"
	"fmt"

	"github.com/bitmark-inc/ukcovid-dashboard/delta"
	"github.com/bitmark-inc/ukcovid-dashboard/external/ukcovid"
	"github.com/bitmark-inc/ukcovid-dashboard/schema"
)

var (
	ErrNoRows       = fmt.Errorf("no matching rows")
	ErrMissingField = fmt.Errorf("metric not published")
)

// NoDataError is returned when a selection matches nothing in the fetched data
type NoDataError struct {
	Area string
	Date schema.Date
	Err  error
}

func (e *NoDataError) Error() string {
	if e.Date.IsZero() {
		return fmt.Sprintf("no data for %s: %s", e.Area, e.Err)
	}
	return fmt.Sprintf("no data for %s on %s: %s", e.Area, e.Date, e.Err)
}

func (e *NoDataError) Unwrap() error {
	return e.Err
}

// isSoft reports whether err should degrade to an empty chart instead of
// failing the request. Only an unreachable endpoint is a hard failure.
func isSoft(err error) bool {
	var nd *NoDataError
	if errors.As(err, &nd) {
		return true
	}

	if delta.IsAlignmentError(err) {
		return true
	}

	var fe *ukcovid.FetchError
	if errors.As(err, &fe) {
		return !fe.Unreachable()
	}
	return false
}
