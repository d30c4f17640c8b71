package articles

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgrundel/gazette/internal/apierror"
	"github.com/mgrundel/gazette/internal/params"
)

var listRowColumns = []string{
	"article_id", "author", "title", "topic",
	"created_at", "votes", "article_img_url", "comment_count",
}

func TestStore_List_IncludesZeroCommentArticles(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now().UTC()
	rows := pgxmock.NewRows(listRowColumns).
		AddRow(int64(1), "butter_bridge", "Living in the shadow", "mitch", now, 100, "https://img", 11).
		AddRow(int64(2), "icellusedkars", "Sony Vaio", "mitch", now.Add(-time.Hour), 0, "https://img", 0)

	mock.ExpectQuery("SELECT (.+) FROM articles").
		WithArgs("mitch").
		WillReturnRows(rows)

	store := NewStore(mock)
	topic := "mitch"
	arts, err := store.List(context.Background(), ListParams{
		Topic: &topic, SortBy: "created_at", Order: "DESC",
	})

	require.NoError(t, err)
	require.Len(t, arts, 2)
	assert.Equal(t, 11, arts[0].CommentCount)
	assert.Equal(t, 0, arts[1].CommentCount, "zero-comment article must still be returned")
	assert.Empty(t, arts[0].Body, "collection rows carry no body")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_List_EmptyResultIsNotAnError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT (.+) FROM articles").
		WithArgs("paper").
		WillReturnRows(pgxmock.NewRows(listRowColumns))

	store := NewStore(mock)
	topic := "paper"
	arts, err := store.List(context.Background(), ListParams{
		Topic: &topic, SortBy: "created_at", Order: "DESC",
	})

	require.NoError(t, err)
	assert.NotNil(t, arts)
	assert.Empty(t, arts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_List_PaginationArgs(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT (.+) FROM articles").
		WithArgs(8, 8).
		WillReturnRows(pgxmock.NewRows(listRowColumns))

	store := NewStore(mock)
	_, err = store.List(context.Background(), ListParams{
		SortBy: "created_at", Order: "DESC",
		Page: params.Page{Limit: 8, Number: 2, Set: true},
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Count(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM articles WHERE topic = $1")).
		WithArgs("mitch").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(13))

	store := NewStore(mock)
	topic := "mitch"
	total, err := store.Count(context.Background(), &topic)

	require.NoError(t, err)
	assert.Equal(t, 13, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT (.+) FROM articles").
		WithArgs(int64(999)).
		WillReturnRows(pgxmock.NewRows(getByIDColumns))

	store := NewStore(mock)
	_, err = store.GetByID(context.Background(), 999)

	assert.ErrorIs(t, err, apierror.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

var getByIDColumns = []string{
	"article_id", "author", "title", "body", "topic",
	"created_at", "votes", "article_img_url", "comment_count",
}

func TestStore_GetByID_IncludesBody(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT (.+) FROM articles").
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows(getByIDColumns).
			AddRow(int64(1), "butter_bridge", "Living in the shadow", "I find this existence challenging",
				"mitch", now, 100, "https://img", 11))

	store := NewStore(mock)
	art, err := store.GetByID(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "I find this existence challenging", art.Body)
	assert.Equal(t, 11, art.CommentCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_IncrementVotes(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE articles SET votes = votes + $1 WHERE article_id = $2")).
		WithArgs(5, int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	store := NewStore(mock)
	require.NoError(t, store.IncrementVotes(context.Background(), 1, 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_IncrementVotes_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("UPDATE articles SET votes").
		WithArgs(5, int64(999)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	store := NewStore(mock)
	err = store.IncrementVotes(context.Background(), 999, 5)

	assert.ErrorIs(t, err, apierror.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Delete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM articles WHERE article_id = $1")).
		WithArgs(int64(3)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	store := NewStore(mock)
	require.NoError(t, store.Delete(context.Background(), 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Delete_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("DELETE FROM articles").
		WithArgs(int64(999)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	store := NewStore(mock)
	assert.ErrorIs(t, store.Delete(context.Background(), 999), apierror.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_TopicExists(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT EXISTS \\(SELECT 1 FROM topics").
		WithArgs("mitch").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	store := NewStore(mock)
	exists, err := store.TopicExists(context.Background(), "mitch")

	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
