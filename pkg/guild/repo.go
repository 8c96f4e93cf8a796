package guild

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const boardColumns = "id, name, is_banned, ban_reason, created_utc"

type Repo struct {
	db *sql.DB
}

func NewBoardRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) get(ctx context.Context, where string, arg interface{}) (*Board, error) {
	b := new(Board)
	err := r.db.QueryRowContext(ctx, "SELECT "+boardColumns+" FROM boards WHERE "+where, arg).
		Scan(&b.ID, &b.Name, &b.IsBanned, &b.BanReason, &b.CreatedUTC)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("guild/repo: could not scan row: %w", err)
	}
	return b, nil
}

func (r *Repo) GetById(ctx context.Context, id int64) (*Board, error) {
	return r.get(ctx, "id=$1", id)
}

func (r *Repo) GetByName(ctx context.Context, name string) (*Board, error) {
	return r.get(ctx, "lower(name)=lower($1)", name)
}

func (r *Repo) Add(ctx context.Context, b *Board) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		"INSERT INTO boards(name, created_utc) VALUES($1, $2) RETURNING id", b.Name, b.CreatedUTC).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("guild/repo: failed inserting board: %w", err)
	}
	return id, nil
}

func (r *Repo) SetBanned(ctx context.Context, id int64, banned bool, reason string) error {
	_, err := r.db.ExecContext(ctx, "UPDATE boards SET is_banned=$1, ban_reason=$2 WHERE id=$3", banned, reason, id)
	if err != nil {
		return fmt.Errorf("guild/repo: failed updating ban: %w", err)
	}
	return nil
}

func (r *Repo) HasMod(ctx context.Context, boardID, userID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM mods WHERE board_id=$1 AND user_id=$2 AND accepted=true)",
		boardID, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("guild/repo: failed checking mod: %w", err)
	}
	return exists, nil
}

func (r *Repo) AddMod(ctx context.Context, boardID, userID, now int64) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO mods(user_id, board_id, accepted, created_utc) VALUES($1, $2, true, $3)",
		userID, boardID, now)
	if err != nil {
		return fmt.Errorf("guild/repo: failed adding mod: %w", err)
	}
	return nil
}
