package articles

import (
	"net/url"

	"github.com/mgrundel/gazette/internal/apierror"
	"github.com/mgrundel/gazette/internal/params"
)

// listParamNames is the whitelist of query parameters accepted by the
// article collection endpoint.
var listParamNames = []string{"topic", "sort_by", "order", "limit", "p"}

// ListParams holds normalized query parameters for the article
// collection endpoint. A nil Topic matches all topics; a non-nil empty
// string is a literal filter that only matches an empty topic value.
type ListParams struct {
	Topic  *string
	SortBy string
	Order  string
	Page   params.Page
}

// ParseListParams validates and normalizes the article collection query
// parameters. Any unrecognised parameter name fails the whole request;
// no defaults are substituted for a rejected request.
func ParseListParams(values url.Values) (ListParams, error) {
	if err := params.CheckAllowed(values, listParamNames...); err != nil {
		return ListParams{}, err
	}

	p := ListParams{SortBy: "created_at", Order: "DESC"}

	if values.Has("topic") {
		topic := values.Get("topic")
		p.Topic = &topic
	}

	// An empty sort_by or order value is not treated as absent: only a
	// missing key falls back to its default.
	if values.Has("sort_by") {
		v := values.Get("sort_by")
		if _, ok := sortColumns[v]; !ok {
			return ListParams{}, apierror.ErrBadData
		}
		p.SortBy = v
	}

	// Order is matched case-sensitively: only the exact tokens ASC and
	// DESC are accepted.
	if values.Has("order") {
		v := values.Get("order")
		if v != "ASC" && v != "DESC" {
			return ListParams{}, apierror.ErrBadData
		}
		p.Order = v
	}

	page, err := params.ParsePage(values)
	if err != nil {
		return ListParams{}, err
	}
	p.Page = page

	return p, nil
}
