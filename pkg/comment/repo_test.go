package comment

import (
	"context"
	"math/rand"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

var commentCols = []string{"id", "author_id", "parent_submission", "parent_fullname", "body", "created_utc",
	"edited_utc", "score", "rank_hot", "rank_fiery", "is_banned", "is_deleted", "is_approved",
	"approved_utc", "distinguish_level"}

func commentRows(ids ...int64) *sqlmock.Rows {
	rows := sqlmock.NewRows(commentCols)
	for _, id := range ids {
		rows.AddRow(id, 1, 10, "t2_a", "body", 100+id, 0, int(id), float64(id), 0.0, false, false, 0, 0, 0)
	}
	return rows
}

func TestListForSubmissionOrders(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("cant create mock: %s", err)
	}
	defer db.Close()
	repo := NewCommentRepo(db, rand.New(rand.NewSource(1)))

	for sort, order := range map[Sort]string{
		SortHot:      "ORDER BY rank_hot ASC",
		SortTop:      "ORDER BY score ASC",
		SortNew:      "ORDER BY created_utc ASC",
		SortDisputed: "ORDER BY rank_fiery ASC",
	} {
		t.Run(string(sort), func(t *testing.T) {
			mock.ExpectQuery(regexp.QuoteMeta(order)).
				WithArgs(int64(10)).
				WillReturnRows(commentRows(1, 2, 3))

			got, err := repo.ListForSubmission(context.TODO(), 10, sort)
			assert.NoError(t, err)
			assert.Len(t, got, 3)
			assert.Equal(t, int64(1), got[0].ID)
			assert.Equal(t, "t2_a", got[0].ParentFullname)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestListForSubmissionRandom(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("cant create mock: %s", err)
	}
	defer db.Close()
	repo := NewCommentRepo(db, rand.New(rand.NewSource(42)))

	all := []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	mock.ExpectQuery("FROM comments WHERE parent_submission").
		WithArgs(int64(10)).
		WillReturnRows(commentRows(all...))

	got, err := repo.ListForSubmission(context.TODO(), 10, SortRandom)
	assert.NoError(t, err)

	gotIDs := []int64{}
	for _, c := range got {
		gotIDs = append(gotIDs, c.ID)
	}
	assert.ElementsMatch(t, all, gotIDs)
	assert.NotEqual(t, all, gotIDs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListForSubmissionUnknownSort(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("cant create mock: %s", err)
	}
	defer db.Close()
	repo := NewCommentRepo(db, rand.New(rand.NewSource(1)))

	_, err = repo.ListForSubmission(context.TODO(), 10, Sort("best"))
	assert.ErrorIs(t, err, ErrUnknownSort)
}

func TestModeration(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("cant create mock: %s", err)
	}
	defer db.Close()
	repo := NewCommentRepo(db, rand.New(rand.NewSource(1)))

	mock.ExpectExec("UPDATE comments SET is_banned=true, is_approved=0, approved_utc=0").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.Ban(context.TODO(), 5))

	mock.ExpectExec("UPDATE comments SET is_banned=false").
		WithArgs(int64(9), int64(1000), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.Unban(context.TODO(), 5, 9, 1000))

	mock.ExpectExec("UPDATE comments SET distinguish_level").
		WithArgs(0, int64(6)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.SetDistinguish(context.TODO(), 6, 0), ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdd(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("cant create mock: %s", err)
	}
	defer db.Close()
	repo := NewCommentRepo(db, rand.New(rand.NewSource(1)))

	mock.ExpectQuery("INSERT INTO comments").
		WithArgs(int64(2), int64(10), "t3_4", "hi", int64(100)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	id, err := repo.Add(context.TODO(), &Comment{AuthorID: 2, ParentSubmission: 10, ParentFullname: "t3_4", Body: "hi", CreatedUTC: 100})
	assert.NoError(t, err)
	assert.Equal(t, int64(5), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}
