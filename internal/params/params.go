// Package params implements the query-parameter validation and
// normalization shared by the list endpoints: per-endpoint whitelisting
// of accepted parameter names, and parsing of the limit/p pagination
// pair into a normalized window.
package params

import (
	"net/url"
	"strconv"

	"github.com/mgrundel/gazette/internal/apierror"
)

// DefaultPageSize is the page size substituted when the limit key is
// supplied without a value.
const DefaultPageSize = 10

// Page is a normalized pagination window. When Set is false the limit
// key was absent entirely and the endpoint returns the full result set.
type Page struct {
	Limit  int
	Number int // 1-based page index
	Set    bool
}

// Offset returns the number of rows to skip. It is zero whenever the
// limit key was absent, matching the unpaginated full-set behaviour.
func (p Page) Offset() int {
	if !p.Set {
		return 0
	}
	return (p.Number - 1) * p.Limit
}

// CheckAllowed rejects any supplied query-parameter name that is not in
// the endpoint's whitelist. Values are not inspected here; the check is
// presence-only and order-independent.
func CheckAllowed(values url.Values, allowed ...string) error {
	for key := range values {
		ok := false
		for _, name := range allowed {
			if key == name {
				ok = true
				break
			}
		}
		if !ok {
			return apierror.ErrBadData
		}
	}
	return nil
}

// ParsePage normalizes the limit and p keys.
//
// limit present with an empty value defaults to DefaultPageSize; a
// supplied value must parse as a non-negative integer (zero is a valid
// "return nothing" window). p must parse as a positive integer. When
// the limit key is absent the endpoint is unpaginated and p, while
// still validated, has no effect on the window.
func ParsePage(values url.Values) (Page, error) {
	page := Page{Limit: DefaultPageSize, Number: 1}

	if values.Has("limit") {
		page.Set = true
		if raw := values.Get("limit"); raw != "" {
			limit, err := strconv.Atoi(raw)
			if err != nil || limit < 0 {
				return Page{}, apierror.ErrBadRequest
			}
			page.Limit = limit
		}
	}

	if values.Has("p") {
		n, err := strconv.Atoi(values.Get("p"))
		if err != nil || n <= 0 {
			return Page{}, apierror.ErrBadRequest
		}
		page.Number = n
	}

	return page, nil
}
