package server

import (
	"encoding/json"
	"net/http"

	"github.com/mgrundel/gazette/internal/apierror"
)

// maxBodySize is the maximum allowed request body size (1 MiB).
const maxBodySize = 1 << 20

// DecodeBody reads and decodes a JSON request body into v. Numbers are
// decoded as json.Number so callers can distinguish integers from other
// numeric shapes. A missing, malformed, or too-large body is an
// invalid-body failure.
func DecodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return apierror.ErrInvalidBody
	}

	return nil
}
