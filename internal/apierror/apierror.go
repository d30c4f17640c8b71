// Package apierror defines the error taxonomy shared by all request
// handlers, plus the translation of low-level postgres errors into it.
// Every failure a handler can surface maps to exactly one of the
// sentinel values below; anything else is treated as an internal error.
package apierror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

// Error is an API-visible failure carrying the HTTP status and the
// message body ({"msg": ...}) the client receives.
type Error struct {
	Status int
	Msg    string
}

func (e *Error) Error() string {
	return e.Msg
}

// Sentinel errors. Handlers and stores return these (possibly wrapped)
// and the server package maps them onto responses with errors.As.
var (
	// ErrBadData rejects an unrecognised or invalid query parameter
	// (unknown key, bad sort key, bad order key).
	ErrBadData = &Error{Status: http.StatusBadRequest, Msg: "bad data"}

	// ErrBadRequest rejects a malformed identifier or an out-of-range
	// numeric parameter.
	ErrBadRequest = &Error{Status: http.StatusBadRequest, Msg: "bad request"}

	// ErrInvalidBody rejects a request body with missing or empty
	// required fields.
	ErrInvalidBody = &Error{Status: http.StatusBadRequest, Msg: "invalid body"}

	// ErrNotFound signals that a referenced entity does not exist.
	ErrNotFound = &Error{Status: http.StatusNotFound, Msg: "not found"}
)

// Postgres error codes translated at the persistence boundary.
const (
	pgInvalidTextRepresentation = "22P02" // e.g. non-numeric id bound to an integer column
	pgSyntaxError               = "42601"
	pgNotNullViolation          = "23502"
	pgForeignKeyViolation       = "23503"
	pgUniqueViolation           = "23505"
)

// Wrap translates a postgres driver error into the API taxonomy, or
// annotates it with operation context when no translation applies.
func Wrap(op string, err error) error {
	if translated := FromPg(err); translated != err {
		return translated
	}
	return fmt.Errorf("%s: %w", op, err)
}

// FromPg translates a postgres driver error into the API taxonomy so
// storage-engine codes never leak to clients. Errors that do not match
// a known code are returned unchanged and fall through to the generic
// 500 handler.
func FromPg(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgInvalidTextRepresentation:
		return ErrBadRequest
	case pgSyntaxError, pgNotNullViolation, pgUniqueViolation:
		return ErrInvalidBody
	case pgForeignKeyViolation:
		return ErrNotFound
	default:
		return err
	}
}
