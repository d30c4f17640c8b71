package articles

import (
	"fmt"
	"strings"
)

// sortColumns maps each accepted sort_by key to the column expression
// used in the generated ORDER BY clause. Request input is only ever
// used to look up this map; the looked-up fragment, not the input, is
// interpolated into the query.
var sortColumns = map[string]string{
	"title":           "articles.title",
	"topic":           "articles.topic",
	"author":          "articles.author",
	"created_at":      "articles.created_at",
	"votes":           "articles.votes",
	"article_img_url": "articles.article_img_url",
}

// listColumns are the columns returned by the collection read. The
// aggregate counts comments per article; the LEFT JOIN keeps articles
// with zero comments in the result with comment_count = 0.
const listColumns = `articles.article_id, articles.author, articles.title, articles.topic,
	articles.created_at, articles.votes, articles.article_img_url,
	COUNT(comments.comment_id)::INT AS comment_count`

// buildListQuery assembles the filtered, sorted, paginated collection
// read from fixed fragments and bind parameters.
func buildListQuery(p ListParams) (string, []any) {
	var b strings.Builder
	var args []any

	b.WriteString("SELECT ")
	b.WriteString(listColumns)
	b.WriteString("\nFROM articles\nLEFT JOIN comments ON comments.article_id = articles.article_id")

	if p.Topic != nil {
		args = append(args, *p.Topic)
		fmt.Fprintf(&b, "\nWHERE articles.topic = $%d", len(args))
	}

	b.WriteString("\nGROUP BY articles.article_id")
	fmt.Fprintf(&b, "\nORDER BY %s %s", sortColumns[p.SortBy], p.Order)

	if p.Page.Set {
		args = append(args, p.Page.Limit, p.Page.Offset())
		fmt.Fprintf(&b, "\nLIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}

	return b.String(), args
}

// buildCountQuery counts the rows matching the same topic filter as the
// collection read, deliberately ignoring limit and offset so the total
// is invariant under pagination.
func buildCountQuery(topic *string) (string, []any) {
	if topic == nil {
		return "SELECT COUNT(*) FROM articles", nil
	}
	return "SELECT COUNT(*) FROM articles WHERE topic = $1", []any{*topic}
}
