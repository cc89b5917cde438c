package domain

import (
	"errors"
	"fmt"
)

// Order workflow rejections. Messages are the German strings surfaced to the
// bar UI unchanged; the order endpoint returns them inside its result
// envelope instead of an HTTP error.
var (
	ErrNotAuthenticated   = errors.New("Nicht angemeldet")
	ErrNoActiveSession    = errors.New("Es ist keine Sitzung aktiv")
	ErrUnauthorized       = errors.New("Keine Berechtigung zum Bestellen")
	ErrEmptyOrder         = errors.New("Keine Produkte ausgewählt")
	ErrProductNotFound    = errors.New("Produkt nicht gefunden")
	ErrProductUnavailable = errors.New("Produkt ist nicht verfügbar")
	ErrNonPositiveTotal   = errors.New("Bestellbetrag muss größer als 0 sein")
	ErrMemberNotFound     = errors.New("Mitglied nicht gefunden")
)

// Session and administrative errors.
var (
	ErrActiveSessionExists = errors.New("Es gibt bereits eine aktive Sitzung")
	ErrSessionNotFound     = errors.New("Sitzung nicht gefunden")
	ErrNoBartenders        = errors.New("Mindestens ein Schenk muss eingeteilt sein")
	ErrInvalidPayment      = errors.New("Ungültige Zahlungsangaben")
	ErrOrderNotFound       = errors.New("Bestellung nicht gefunden")
	ErrMemberExists        = errors.New("Mitglied existiert bereits")
)

// Auth errors.
var (
	ErrInvalidCredentials = errors.New("Ungültige Anmeldedaten")
	ErrForbidden          = errors.New("access forbidden")
)

// ProductUnavailableError carries the display name of the product that
// blocked the order.
type ProductUnavailableError struct {
	Name string
}

func (e *ProductUnavailableError) Error() string {
	return fmt.Sprintf("Produkt %s ist nicht verfügbar", e.Name)
}

// Is makes errors.Is(err, ErrProductUnavailable) match.
func (e *ProductUnavailableError) Is(target error) bool {
	return target == ErrProductUnavailable
}

// orderRejections is the closed set of user-facing order workflow failures.
var orderRejections = []error{
	ErrNotAuthenticated,
	ErrNoActiveSession,
	ErrUnauthorized,
	ErrEmptyOrder,
	ErrProductNotFound,
	ErrProductUnavailable,
	ErrNonPositiveTotal,
	ErrMemberNotFound,
}

// IsOrderRejection reports whether err is a user-facing order rejection
// whose message may be shown verbatim. Anything else (store failures,
// timeouts) must surface as a generic message.
func IsOrderRejection(err error) bool {
	for _, rejection := range orderRejections {
		if errors.Is(err, rejection) {
			return true
		}
	}
	return false
}
