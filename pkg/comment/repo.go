package comment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"sync"
)

const commentColumns = `id, author_id, parent_submission, parent_fullname, body, created_utc, edited_utc,
	score, rank_hot, rank_fiery, is_banned, is_deleted, is_approved, approved_utc, distinguish_level`

// Ascending; BuildTree reverses sibling order.
var sortOrder = map[Sort]string{
	SortHot:      "rank_hot ASC",
	SortTop:      "score ASC",
	SortNew:      "created_utc ASC",
	SortDisputed: "rank_fiery ASC",
	SortRandom:   "id ASC",
}

type Repo struct {
	db *sql.DB

	mu   sync.Mutex
	rand *rand.Rand
}

func NewCommentRepo(db *sql.DB, rng *rand.Rand) *Repo {
	return &Repo{db: db, rand: rng}
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanComment(row scanner) (*Comment, error) {
	c := new(Comment)
	err := row.Scan(&c.ID, &c.AuthorID, &c.ParentSubmission, &c.ParentFullname, &c.Body, &c.CreatedUTC,
		&c.EditedUTC, &c.Score, &c.RankHot, &c.RankFiery, &c.IsBanned, &c.IsDeleted, &c.IsApproved,
		&c.ApprovedUTC, &c.DistinguishLevel)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("comment/repo: could not scan row: %w", err)
	}
	return c, nil
}

func (r *Repo) GetById(ctx context.Context, id int64) (*Comment, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+commentColumns+" FROM comments WHERE id=$1", id)
	return scanComment(row)
}

// ListForSubmission returns every comment of the post in the fetch order
// of the sort. Random is a uniform shuffle independent of any rank.
func (r *Repo) ListForSubmission(ctx context.Context, submissionID int64, sort Sort) ([]*Comment, error) {
	order, ok := sortOrder[sort]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSort, sort)
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT "+commentColumns+" FROM comments WHERE parent_submission=$1 ORDER BY "+order, submissionID)
	if err != nil {
		return nil, fmt.Errorf("comment/repo: failed loading comments: %w", err)
	}
	defer rows.Close()

	comments := []*Comment{}
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("comment/repo: rows failed: %w", err)
	}

	if sort == SortRandom {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.rand.Shuffle(len(comments), func(i, j int) {
			comments[i], comments[j] = comments[j], comments[i]
		})
	}
	return comments, nil
}

func (r *Repo) Add(ctx context.Context, c *Comment) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `INSERT INTO comments(author_id, parent_submission, parent_fullname,
		body, created_utc) VALUES($1, $2, $3, $4, $5) RETURNING id`,
		c.AuthorID, c.ParentSubmission, c.ParentFullname, c.Body, c.CreatedUTC).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("comment/repo: failed inserting a comment: %w", err)
	}
	return id, nil
}

func (r *Repo) exec(ctx context.Context, what, query string, args ...interface{}) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("comment/repo: failed %s: %w", what, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// Ban removes the comment and drops any earlier approval.
func (r *Repo) Ban(ctx context.Context, id int64) error {
	return r.exec(ctx, "banning comment",
		"UPDATE comments SET is_banned=true, is_approved=0, approved_utc=0 WHERE id=$1", id)
}

func (r *Repo) Unban(ctx context.Context, id, approverID, now int64) error {
	return r.exec(ctx, "unbanning comment",
		"UPDATE comments SET is_banned=false, is_approved=$1, approved_utc=$2 WHERE id=$3", approverID, now, id)
}

func (r *Repo) SetDistinguish(ctx context.Context, id int64, level int) error {
	return r.exec(ctx, "distinguishing comment",
		"UPDATE comments SET distinguish_level=$1 WHERE id=$2", level, id)
}
