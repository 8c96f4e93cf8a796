package user

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"

	"guilds/pkg/common"
	"guilds/pkg/logger"

	_ "github.com/jackc/pgx/v4/stdlib"
)

const userColumns = `id, username, password, created_utc, admin_level, is_banned, ban_reason,
	login_nonce, discord_id, has_profile, has_banner, is_deleted`

type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{
		db: db,
	}
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row scanner) (*User, error) {
	u := new(User)
	err := row.Scan(&u.ID, &u.Username, &u.Password, &u.CreatedUTC, &u.AdminLevel, &u.IsBanned,
		&u.BanReason, &u.LoginNonce, &u.DiscordID, &u.HasProfile, &u.HasBanner, &u.IsDeleted)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("user/repo: could not scan row: %w", err)
	}
	return u, nil
}

func (r *UserRepo) Add(ctx context.Context, u *User) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		"INSERT INTO users(username, password, created_utc) VALUES($1, $2, $3) RETURNING id",
		u.Username, u.Password, u.CreatedUTC).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("user/repo: user wasn't added: %w", err)
	}
	if id == 0 {
		return 0, fmt.Errorf("user/repo: user wasn't added, returned id is 0")
	}
	return id, nil
}

func (r *UserRepo) GetByUsernameAndPass(ctx context.Context, uname string, pass string) (*User, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE username=$1", uname)
	u, err := scanUser(row)
	if err != nil {
		return nil, err
	}
	// User found by username, now check if passwords are the same
	if len(u.Password) < 8 {
		return nil, errors.New("user/repo: stored password is malformed")
	}
	salt := string(u.Password[0:8])
	if !bytes.Equal(common.HashPass(pass, salt), u.Password) {
		return nil, errors.New("user/repo: password is invalid")
	}
	return u, nil
}

func (r *UserRepo) UserExists(ctx context.Context, uname string) bool {
	var id int64
	err := r.db.QueryRowContext(ctx, "SELECT id FROM users WHERE lower(username)=lower($1)", uname).Scan(&id)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			logger.Log(ctx).Warnf("user/repo: could not scan row: %v", err)
		}
		return false
	}
	return true
}

func (r *UserRepo) GetById(ctx context.Context, uid int64) (*User, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE id=$1", uid)
	return scanUser(row)
}

// Returns all users. Used only for seeding the DB.
func (r *UserRepo) GetAll(ctx context.Context) ([]*User, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+userColumns+" FROM users ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("user/repo: failed executing query for getting all users: %w", err)
	}
	defer rows.Close()

	users := []*User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("user/repo: rows failed: %w", err)
	}

	return users, nil
}

func (r *UserRepo) Alts(ctx context.Context, uid int64) ([]int64, error) {
	return queryAlts(ctx, r.db, uid)
}

type querier interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

func queryAlts(ctx context.Context, q querier, uid int64) ([]int64, error) {
	rows, err := q.QueryContext(ctx,
		"SELECT user2 FROM alts WHERE user1=$1 UNION SELECT user1 FROM alts WHERE user2=$1", uid)
	if err != nil {
		return nil, fmt.Errorf("user/repo: failed loading alts: %w", err)
	}
	defer rows.Close()

	alts := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("user/repo: could not scan alt: %w", err)
		}
		if id != uid {
			alts = append(alts, id)
		}
	}
	return alts, rows.Err()
}

// BanWithAlts bans the user and every linked alt account with the same
// actor and reason. All rows change in one transaction. Returns the ids of
// every banned account, the user first.
func (r *UserRepo) BanWithAlts(ctx context.Context, uid, actorID int64, reason string) ([]int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("user/repo: begin failed: %w", err)
	}
	defer tx.Rollback()

	alts, err := queryAlts(ctx, tx, uid)
	if err != nil {
		return nil, err
	}

	banned := append([]int64{uid}, alts...)
	for i, id := range banned {
		res, err := tx.ExecContext(ctx,
			"UPDATE users SET is_banned=$1, ban_reason=$2 WHERE id=$3", actorID, reason, id)
		if err != nil {
			return nil, fmt.Errorf("user/repo: failed banning user %d: %w", id, err)
		}
		if i == 0 {
			if n, err := res.RowsAffected(); err == nil && n == 0 {
				return nil, ErrNotFound
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("user/repo: commit failed: %w", err)
	}
	return banned, nil
}

func (r *UserRepo) Unban(ctx context.Context, uid int64) error {
	_, err := r.db.ExecContext(ctx, "UPDATE users SET is_banned=0, ban_reason='' WHERE id=$1", uid)
	if err != nil {
		return fmt.Errorf("user/repo: failed unbanning user: %w", err)
	}
	return nil
}

func (r *UserRepo) SetDiscordID(ctx context.Context, uid int64, discordID string) error {
	_, err := r.db.ExecContext(ctx, "UPDATE users SET discord_id=$1 WHERE id=$2", discordID, uid)
	if err != nil {
		return fmt.Errorf("user/repo: failed storing discord id: %w", err)
	}
	return nil
}

func (r *UserRepo) ClearProfileImages(ctx context.Context, uid int64) error {
	_, err := r.db.ExecContext(ctx, "UPDATE users SET has_profile=false, has_banner=false WHERE id=$1", uid)
	if err != nil {
		return fmt.Errorf("user/repo: failed clearing profile images: %w", err)
	}
	return nil
}

// CountCreatedBetween counts accounts created strictly inside (after, before).
func (r *UserRepo) CountCreatedBetween(ctx context.Context, after, before int64) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		"SELECT count(*) FROM users WHERE created_utc < $1 AND created_utc > $2", before, after).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("user/repo: failed counting signups: %w", err)
	}
	return n, nil
}

func (r *UserRepo) CountActive(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, "SELECT count(*) FROM users WHERE is_banned=0").Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("user/repo: failed counting users: %w", err)
	}
	return n, nil
}
