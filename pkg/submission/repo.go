package submission

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"guilds/pkg/voting"
)

const submissionSelect = `SELECT s.id, s.author_id, s.title, s.url, s.body, s.body_html, s.created_utc,
	s.edited_utc, s.is_banned, s.ban_reason, s.is_deleted, s.distinguish_level, s.stickied, s.board_id,
	s.original_board_id, COALESCE(s.domain_ref, 0), s.over_18, s.is_image, s.has_thumb, s.creation_ip,
	s.is_approved, s.approved_utc,
	(SELECT count(*) FROM votes v WHERE v.submission_id = s.id AND v.vote_type = $2) AS ups,
	(SELECT count(*) FROM votes v WHERE v.submission_id = s.id AND v.vote_type = $3) AS downs,
	(SELECT count(*) FROM comments c WHERE c.parent_submission = s.id) AS comment_count,
	(SELECT count(*) FROM flags f WHERE f.post_id = s.id) AS flag_count
	FROM submissions s`

type Domain struct {
	ID        int64
	Domain    string
	IsBanned  bool
	BanReason string
}

type Repo struct {
	db *sql.DB
}

func NewSubmissionRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) GetById(ctx context.Context, id int64) (*Submission, error) {
	row := r.db.QueryRowContext(ctx, submissionSelect+" WHERE s.id = $1",
		id, int(voting.ScoreUp), int(voting.ScoreDown))

	s := new(Submission)
	err := row.Scan(&s.ID, &s.AuthorID, &s.Title, &s.URL, &s.Body, &s.BodyHTML, &s.CreatedUTC,
		&s.EditedUTC, &s.IsBanned, &s.BanReason, &s.IsDeleted, &s.DistinguishLevel, &s.Stickied, &s.BoardID,
		&s.OriginalBoardID, &s.DomainRef, &s.Over18, &s.IsImage, &s.HasThumb, &s.CreationIP,
		&s.IsApproved, &s.ApprovedUTC,
		&s.Stats.Ups, &s.Stats.Downs, &s.Stats.CommentCount, &s.Stats.FlagCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("submission/repo: could not scan row: %w", err)
	}
	return s, nil
}

func (r *Repo) Add(ctx context.Context, s *Submission) (int64, error) {
	var domainRef interface{}
	if s.DomainRef != 0 {
		domainRef = s.DomainRef
	}

	var id int64
	err := r.db.QueryRowContext(ctx, `INSERT INTO submissions(author_id, title, url, body, body_html,
		created_utc, created_str, board_id, original_board_id, domain_ref, over_18, is_image, creation_ip)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $8, $9, $10, $11, $12) RETURNING id`,
		s.AuthorID, s.Title, s.URL, s.Body, s.BodyHTML, s.CreatedUTC, CreatedStr(s.CreatedUTC),
		s.BoardID, domainRef, s.Over18, s.IsImage, s.CreationIP).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("submission/repo: failed inserting a submission: %w", err)
	}
	return id, nil
}

func (r *Repo) exec(ctx context.Context, what, query string, args ...interface{}) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("submission/repo: failed %s: %w", what, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// Ban removes the post, drops its approval and its sticky.
func (r *Repo) Ban(ctx context.Context, id int64, reason string) error {
	return r.exec(ctx, "banning submission", `UPDATE submissions SET is_banned=true, is_approved=0,
		approved_utc=0, stickied=false, ban_reason=$1 WHERE id=$2`, reason, id)
}

func (r *Repo) Unban(ctx context.Context, id, approverID, now int64) error {
	return r.exec(ctx, "unbanning submission",
		"UPDATE submissions SET is_banned=false, is_approved=$1, approved_utc=$2 WHERE id=$3",
		approverID, now, id)
}

func (r *Repo) SetDistinguish(ctx context.Context, id int64, level int) error {
	return r.exec(ctx, "distinguishing submission",
		"UPDATE submissions SET distinguish_level=$1 WHERE id=$2", level, id)
}

func (r *Repo) SetHasThumb(ctx context.Context, id int64) error {
	return r.exec(ctx, "flagging thumbnail", "UPDATE submissions SET has_thumb=true WHERE id=$1", id)
}

// ToggleSticky unsticks a stickied post, or makes it the only sticky of its
// board. Both updates share one transaction. Returns the new sticky state.
func (r *Repo) ToggleSticky(ctx context.Context, s *Submission) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("submission/repo: begin failed: %w", err)
	}
	defer tx.Rollback()

	if s.Stickied {
		if _, err := tx.ExecContext(ctx, "UPDATE submissions SET stickied=false WHERE id=$1", s.ID); err != nil {
			return false, fmt.Errorf("submission/repo: failed unsticking: %w", err)
		}
	} else {
		if _, err := tx.ExecContext(ctx,
			"UPDATE submissions SET stickied=false WHERE board_id=$1 AND stickied=true", s.BoardID); err != nil {
			return false, fmt.Errorf("submission/repo: failed unsticking previous: %w", err)
		}
		if _, err := tx.ExecContext(ctx, "UPDATE submissions SET stickied=true WHERE id=$1", s.ID); err != nil {
			return false, fmt.Errorf("submission/repo: failed sticking: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("submission/repo: commit failed: %w", err)
	}
	s.Stickied = !s.Stickied
	return s.Stickied, nil
}

// ActiveFlags counts flags raised since the last approval; an approved post
// has none.
func (r *Repo) ActiveFlags(ctx context.Context, s *Submission) (int, error) {
	if s.IsApproved != 0 {
		return 0, nil
	}
	var n int
	err := r.db.QueryRowContext(ctx,
		"SELECT count(*) FROM flags WHERE post_id=$1 AND created_utc > $2", s.ID, s.ApprovedUTC).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("submission/repo: failed counting flags: %w", err)
	}
	return n, nil
}

func (r *Repo) LookupDomain(ctx context.Context, host string) (*Domain, error) {
	d := new(Domain)
	err := r.db.QueryRowContext(ctx,
		"SELECT id, domain, is_banned, ban_reason FROM domains WHERE domain=$1", host).
		Scan(&d.ID, &d.Domain, &d.IsBanned, &d.BanReason)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("submission/repo: failed loading domain: %w", err)
	}
	return d, nil
}

// Count lets the seeder skip a populated database.
func (r *Repo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, "SELECT count(*) FROM submissions").Scan(&n); err != nil {
		return 0, fmt.Errorf("submission/repo: failed counting: %w", err)
	}
	return n, nil
}
