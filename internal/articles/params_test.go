package articles

import (
	"errors"
	"net/url"
	"testing"

	"github.com/mgrundel/gazette/internal/apierror"
)

func parse(t *testing.T, query string) url.Values {
	t.Helper()
	values, err := url.ParseQuery(query)
	if err != nil {
		t.Fatal(err)
	}
	return values
}

func TestParseListParams_Defaults(t *testing.T) {
	p, err := ParseListParams(parse(t, ""))
	if err != nil {
		t.Fatal(err)
	}
	if p.Topic != nil {
		t.Errorf("topic: got %q, want wildcard (nil)", *p.Topic)
	}
	if p.SortBy != "created_at" {
		t.Errorf("sort_by: got %q, want 'created_at'", p.SortBy)
	}
	if p.Order != "DESC" {
		t.Errorf("order: got %q, want 'DESC'", p.Order)
	}
	if p.Page.Set {
		t.Error("page should not be set without a limit key")
	}
}

func TestParseListParams_UnknownKey(t *testing.T) {
	_, err := ParseListParams(parse(t, "invalid_key=mitch"))
	if !errors.Is(err, apierror.ErrBadData) {
		t.Errorf("expected ErrBadData, got %v", err)
	}
}

func TestParseListParams_SortKeys(t *testing.T) {
	for _, key := range []string{"title", "topic", "author", "created_at", "votes", "article_img_url"} {
		p, err := ParseListParams(parse(t, "sort_by="+key))
		if err != nil {
			t.Errorf("sort_by=%s should be accepted: %v", key, err)
			continue
		}
		if p.SortBy != key {
			t.Errorf("sort_by: got %q, want %q", p.SortBy, key)
		}
	}

	for _, query := range []string{"sort_by=body", "sort_by=comment_count", "sort_by="} {
		if _, err := ParseListParams(parse(t, query)); !errors.Is(err, apierror.ErrBadData) {
			t.Errorf("%s: expected ErrBadData, got %v", query, err)
		}
	}
}

func TestParseListParams_OrderCaseSensitive(t *testing.T) {
	p, err := ParseListParams(parse(t, "order=ASC"))
	if err != nil {
		t.Fatal(err)
	}
	if p.Order != "ASC" {
		t.Errorf("order: got %q, want 'ASC'", p.Order)
	}

	for _, query := range []string{"order=asc", "order=desc", "order=random", "order="} {
		if _, err := ParseListParams(parse(t, query)); !errors.Is(err, apierror.ErrBadData) {
			t.Errorf("%s: expected ErrBadData, got %v", query, err)
		}
	}
}

func TestParseListParams_TopicFilter(t *testing.T) {
	p, err := ParseListParams(parse(t, "topic=mitch"))
	if err != nil {
		t.Fatal(err)
	}
	if p.Topic == nil || *p.Topic != "mitch" {
		t.Errorf("topic: got %v, want 'mitch'", p.Topic)
	}
}

func TestParseListParams_EmptyTopicIsLiteral(t *testing.T) {
	// topic= is a literal empty-string filter, not a wildcard.
	p, err := ParseListParams(parse(t, "topic="))
	if err != nil {
		t.Fatal(err)
	}
	if p.Topic == nil {
		t.Fatal("empty topic value should still set the filter")
	}
	if *p.Topic != "" {
		t.Errorf("topic: got %q, want empty string", *p.Topic)
	}
}

func TestParseListParams_Pagination(t *testing.T) {
	p, err := ParseListParams(parse(t, "limit=8&p=2"))
	if err != nil {
		t.Fatal(err)
	}
	if !p.Page.Set || p.Page.Limit != 8 || p.Page.Offset() != 8 {
		t.Errorf("page: got %+v (offset %d), want limit 8 offset 8", p.Page, p.Page.Offset())
	}

	if _, err := ParseListParams(parse(t, "p=0")); !errors.Is(err, apierror.ErrBadRequest) {
		t.Errorf("p=0: expected ErrBadRequest, got %v", err)
	}
	if _, err := ParseListParams(parse(t, "limit=-5")); !errors.Is(err, apierror.ErrBadRequest) {
		t.Errorf("limit=-5: expected ErrBadRequest, got %v", err)
	}
}
