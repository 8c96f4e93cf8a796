package admin

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"guilds/pkg/comment"
	. "guilds/pkg/common"
	"guilds/pkg/guild"
	"guilds/pkg/logger"
	"guilds/pkg/modlog"
	"guilds/pkg/sessions"
	"guilds/pkg/submission"
	"guilds/pkg/user"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=admin

type (
	IUserRepo interface {
		GetById(context.Context, int64) (*user.User, error)
		BanWithAlts(ctx context.Context, uid, actorID int64, reason string) ([]int64, error)
		Unban(context.Context, int64) error
		ClearProfileImages(context.Context, int64) error
	}

	ISubmissionRepo interface {
		GetById(context.Context, int64) (*submission.Submission, error)
		Ban(ctx context.Context, id int64, reason string) error
		Unban(ctx context.Context, id, approverID, now int64) error
		SetDistinguish(ctx context.Context, id int64, level int) error
		ToggleSticky(context.Context, *submission.Submission) (bool, error)
	}

	ICommentRepo interface {
		GetById(context.Context, int64) (*comment.Comment, error)
		Ban(context.Context, int64) error
		Unban(ctx context.Context, id, approverID, now int64) error
		SetDistinguish(ctx context.Context, id int64, level int) error
	}

	IBoardRepo interface {
		GetById(context.Context, int64) (*guild.Board, error)
		SetBanned(ctx context.Context, id int64, banned bool, reason string) error
		HasMod(ctx context.Context, boardID, userID int64) (bool, error)
		AddMod(ctx context.Context, boardID, userID, now int64) error
	}

	IModLog interface {
		Record(context.Context, *modlog.ModAction) error
		Recent(ctx context.Context, limit int64) ([]*modlog.ModAction, error)
	}

	IStore interface {
		Delete(ctx context.Context, key string) error
	}

	IRoleSync interface {
		AddBannedRole(ctx context.Context, discordID, reason string) error
		RemoveBannedRole(ctx context.Context, discordID string) error
	}

	AdminHandler struct {
		Users    IUserRepo
		Posts    ISubmissionRepo
		Comments ICommentRepo
		Boards   IBoardRepo
		Log      IModLog
		Store    IStore
		Roles    IRoleSync
		Now      func() time.Time
	}
)

func NewAdminHandler(users IUserRepo, posts ISubmissionRepo, comments ICommentRepo, boards IBoardRepo,
	log IModLog, store IStore, roles IRoleSync) *AdminHandler {
	return &AdminHandler{
		Users:    users,
		Posts:    posts,
		Comments: comments,
		Boards:   boards,
		Log:      log,
		Store:    store,
		Roles:    roles,
		Now:      time.Now,
	}
}

func (ah *AdminHandler) record(ctx context.Context, kind modlog.Kind, actor *user.User, target, reason string) {
	a := &modlog.ModAction{
		Kind:       kind,
		ActorID:    actor.ID,
		Target:     target,
		Reason:     reason,
		CreatedUTC: ah.Now().Unix(),
	}
	if err := ah.Log.Record(ctx, a); err != nil {
		logger.Log(ctx).Errorf("can't record %s by %d on %s: %v", kind, actor.ID, target, err)
		return
	}
	logger.Log(ctx).Infof("admin %d: %s %s", actor.ID, kind, target)
}

func actor(w http.ResponseWriter, r *http.Request) (*user.User, bool) {
	v, err := sessions.GetAuthUser(r.Context())
	if err != nil {
		WriteMsg(w, "not authorized", http.StatusUnauthorized)
		return nil, false
	}
	return v, true
}

// Users

func (ah *AdminHandler) loadUser(w http.ResponseWriter, r *http.Request) (*user.User, bool) {
	uid, err := strconv.ParseInt(mux.Vars(r)["uid"], 10, 64)
	if err != nil {
		WriteMsg(w, "bad user id", http.StatusBadRequest)
		return nil, false
	}

	u, err := ah.Users.GetById(r.Context(), uid)
	if errors.Is(err, user.ErrNotFound) {
		WriteMsg(w, "user not found", http.StatusBadRequest)
		return nil, false
	}
	if err != nil {
		logger.Log(r.Context()).Errorf("can't load user %d: %v", uid, err)
		WriteMsg(w, "failed loading user", http.StatusInternalServerError)
		return nil, false
	}
	return u, true
}

// BanUser bans the user and every alt account, then tears down their
// profile media and marks them banned on Discord.
func (ah *AdminHandler) BanUser(w http.ResponseWriter, r *http.Request) {
	v, ok := actor(w, r)
	if !ok {
		return
	}
	u, ok := ah.loadUser(w, r)
	if !ok {
		return
	}
	reason := r.FormValue("reason")

	banned, err := ah.Users.BanWithAlts(r.Context(), u.ID, v.ID, reason)
	if errors.Is(err, user.ErrNotFound) {
		WriteMsg(w, "user not found", http.StatusBadRequest)
		return
	}
	if err != nil {
		logger.Log(r.Context()).Errorf("can't ban user %d: %v", u.ID, err)
		WriteMsg(w, "ban failed", http.StatusInternalServerError)
		return
	}

	for _, id := range banned {
		account := u
		if id != u.ID {
			if account, err = ah.Users.GetById(r.Context(), id); err != nil {
				logger.Log(r.Context()).Errorf("can't load alt %d of user %d: %v", id, u.ID, err)
				continue
			}
		}
		ah.afterBan(r.Context(), account, reason)
		ah.record(r.Context(), modlog.BanUser, v, account.URL(), reason)
	}

	http.Redirect(w, r, u.URL(), http.StatusFound)
}

func (ah *AdminHandler) afterBan(ctx context.Context, u *user.User, reason string) {
	if u.HasProfile {
		if err := ah.Store.Delete(ctx, u.ProfileKey()); err != nil {
			logger.Log(ctx).Warnf("can't delete profile image of %d: %v", u.ID, err)
		}
	}
	if u.HasBanner {
		if err := ah.Store.Delete(ctx, u.BannerKey()); err != nil {
			logger.Log(ctx).Warnf("can't delete banner of %d: %v", u.ID, err)
		}
	}
	if u.HasProfile || u.HasBanner {
		if err := ah.Users.ClearProfileImages(ctx, u.ID); err != nil {
			logger.Log(ctx).Errorf("can't clear profile images of %d: %v", u.ID, err)
		}
	}

	if u.DiscordID != "" && ah.Roles != nil {
		if err := ah.Roles.AddBannedRole(ctx, u.DiscordID, reason); err != nil {
			logger.Log(ctx).Errorf("can't add banned role to %d: %v", u.ID, err)
		}
	}
}

// UnbanUser lifts the ban of this account only. Alts stay banned.
func (ah *AdminHandler) UnbanUser(w http.ResponseWriter, r *http.Request) {
	v, ok := actor(w, r)
	if !ok {
		return
	}
	u, ok := ah.loadUser(w, r)
	if !ok {
		return
	}

	if err := ah.Users.Unban(r.Context(), u.ID); err != nil {
		logger.Log(r.Context()).Errorf("can't unban user %d: %v", u.ID, err)
		WriteMsg(w, "unban failed", http.StatusInternalServerError)
		return
	}

	if u.DiscordID != "" && ah.Roles != nil {
		if err := ah.Roles.RemoveBannedRole(r.Context(), u.DiscordID); err != nil {
			logger.Log(r.Context()).Errorf("can't remove banned role of %d: %v", u.ID, err)
		}
	}

	ah.record(r.Context(), modlog.UnbanUser, v, u.URL(), "")
	http.Redirect(w, r, u.URL(), http.StatusFound)
}

// Posts

func (ah *AdminHandler) loadPost(w http.ResponseWriter, r *http.Request) (*submission.Submission, bool) {
	id, err := ParseBase36(mux.Vars(r)["pid"])
	if err != nil {
		WriteMsg(w, "bad post id", http.StatusBadRequest)
		return nil, false
	}

	s, err := ah.Posts.GetById(r.Context(), id)
	if errors.Is(err, submission.ErrNotFound) {
		WriteMsg(w, "post not found", http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		logger.Log(r.Context()).Errorf("can't load post %d: %v", id, err)
		WriteMsg(w, "failed loading post", http.StatusInternalServerError)
		return nil, false
	}
	return s, true
}

// postAction loads the post, applies fn and redirects to the post.
func (ah *AdminHandler) postAction(w http.ResponseWriter, r *http.Request,
	fn func(ctx context.Context, v *user.User, s *submission.Submission) (modlog.Kind, string, int, error)) {
	v, ok := actor(w, r)
	if !ok {
		return
	}
	s, ok := ah.loadPost(w, r)
	if !ok {
		return
	}

	kind, reason, code, err := fn(r.Context(), v, s)
	if code != 0 {
		WriteMsg(w, http.StatusText(code), code)
		return
	}
	if errors.Is(err, submission.ErrNotFound) {
		WriteMsg(w, "post not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Log(r.Context()).Errorf("admin action on post %s failed: %v", s.Base36ID(), err)
		WriteMsg(w, "action failed", http.StatusInternalServerError)
		return
	}

	ah.record(r.Context(), kind, v, s.Fullname(), reason)
	http.Redirect(w, r, s.Permalink(), http.StatusFound)
}

func (ah *AdminHandler) BanPost(w http.ResponseWriter, r *http.Request) {
	ah.postAction(w, r, func(ctx context.Context, v *user.User, s *submission.Submission) (modlog.Kind, string, int, error) {
		reason := r.FormValue("reason")
		return modlog.BanPost, reason, 0, ah.Posts.Ban(ctx, s.ID, reason)
	})
}

func (ah *AdminHandler) UnbanPost(w http.ResponseWriter, r *http.Request) {
	ah.postAction(w, r, func(ctx context.Context, v *user.User, s *submission.Submission) (modlog.Kind, string, int, error) {
		return modlog.UnbanPost, "", 0, ah.Posts.Unban(ctx, s.ID, v.ID, ah.Now().Unix())
	})
}

// DistinguishPost toggles the distinguish mark. Only the author may do it.
func (ah *AdminHandler) DistinguishPost(w http.ResponseWriter, r *http.Request) {
	ah.postAction(w, r, func(ctx context.Context, v *user.User, s *submission.Submission) (modlog.Kind, string, int, error) {
		if s.AuthorID != v.ID {
			return "", "", http.StatusForbidden, nil
		}
		level := v.AdminLevel
		if s.DistinguishLevel != 0 {
			level = 0
		}
		return modlog.DistinguishPost, "", 0, ah.Posts.SetDistinguish(ctx, s.ID, level)
	})
}

// Sticky toggles the sticky of the post. A new sticky replaces the current
// sticky of the same guild.
func (ah *AdminHandler) Sticky(w http.ResponseWriter, r *http.Request) {
	ah.postAction(w, r, func(ctx context.Context, v *user.User, s *submission.Submission) (modlog.Kind, string, int, error) {
		stickied, err := ah.Posts.ToggleSticky(ctx, s)
		if !stickied {
			return modlog.UnstickyPost, "", 0, err
		}
		return modlog.StickyPost, "", 0, err
	})
}

// Comments

func (ah *AdminHandler) commentAction(w http.ResponseWriter, r *http.Request, kind modlog.Kind,
	fn func(ctx context.Context, v *user.User, c *comment.Comment) error) {
	v, ok := actor(w, r)
	if !ok {
		return
	}

	id, err := ParseBase36(mux.Vars(r)["cid"])
	if err != nil {
		WriteMsg(w, "bad comment id", http.StatusBadRequest)
		return
	}

	c, err := ah.Comments.GetById(r.Context(), id)
	if errors.Is(err, comment.ErrNotFound) {
		WriteMsg(w, "comment not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Log(r.Context()).Errorf("can't load comment %d: %v", id, err)
		WriteMsg(w, "failed loading comment", http.StatusInternalServerError)
		return
	}

	err = fn(r.Context(), v, c)
	if errors.Is(err, comment.ErrNotFound) {
		WriteMsg(w, "comment not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Log(r.Context()).Errorf("%s on comment %d failed: %v", kind, id, err)
		WriteMsg(w, "action failed", http.StatusInternalServerError)
		return
	}

	ah.record(r.Context(), kind, v, c.Fullname(), "")
	http.Redirect(w, r, c.Permalink(), http.StatusFound)
}

func (ah *AdminHandler) BanComment(w http.ResponseWriter, r *http.Request) {
	ah.commentAction(w, r, modlog.BanComment, func(ctx context.Context, v *user.User, c *comment.Comment) error {
		return ah.Comments.Ban(ctx, c.ID)
	})
}

func (ah *AdminHandler) UnbanComment(w http.ResponseWriter, r *http.Request) {
	ah.commentAction(w, r, modlog.UnbanComment, func(ctx context.Context, v *user.User, c *comment.Comment) error {
		return ah.Comments.Unban(ctx, c.ID, v.ID, ah.Now().Unix())
	})
}

func (ah *AdminHandler) DistinguishComment(w http.ResponseWriter, r *http.Request) {
	ah.commentAction(w, r, modlog.DistinguishComment, func(ctx context.Context, v *user.User, c *comment.Comment) error {
		return ah.Comments.SetDistinguish(ctx, c.ID, v.AdminLevel)
	})
}

func (ah *AdminHandler) UndistinguishComment(w http.ResponseWriter, r *http.Request) {
	ah.commentAction(w, r, modlog.UndistinguishComment, func(ctx context.Context, v *user.User, c *comment.Comment) error {
		return ah.Comments.SetDistinguish(ctx, c.ID, 0)
	})
}

// Guilds

func (ah *AdminHandler) loadBoard(w http.ResponseWriter, r *http.Request) (*guild.Board, bool) {
	id, err := ParseBase36(mux.Vars(r)["bid"])
	if err != nil {
		WriteMsg(w, "bad guild id", http.StatusBadRequest)
		return nil, false
	}

	b, err := ah.Boards.GetById(r.Context(), id)
	if errors.Is(err, guild.ErrNotFound) {
		WriteMsg(w, "guild not found", http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		logger.Log(r.Context()).Errorf("can't load guild %d: %v", id, err)
		WriteMsg(w, "failed loading guild", http.StatusInternalServerError)
		return nil, false
	}
	return b, true
}

func (ah *AdminHandler) setBoardBan(w http.ResponseWriter, r *http.Request, banned bool) {
	v, ok := actor(w, r)
	if !ok {
		return
	}
	b, ok := ah.loadBoard(w, r)
	if !ok {
		return
	}

	kind, reason := modlog.UnbanGuild, ""
	if banned {
		kind, reason = modlog.BanGuild, r.FormValue("reason")
	}

	if err := ah.Boards.SetBanned(r.Context(), b.ID, banned, reason); err != nil {
		logger.Log(r.Context()).Errorf("can't update ban of guild %s: %v", b.Name, err)
		WriteMsg(w, "action failed", http.StatusInternalServerError)
		return
	}

	ah.record(r.Context(), kind, v, b.Fullname(), reason)
	http.Redirect(w, r, b.Permalink(), http.StatusFound)
}

func (ah *AdminHandler) BanGuild(w http.ResponseWriter, r *http.Request) {
	ah.setBoardBan(w, r, true)
}

func (ah *AdminHandler) UnbanGuild(w http.ResponseWriter, r *http.Request) {
	ah.setBoardBan(w, r, false)
}

// ModSelf makes the admin an accepted moderator of the guild.
func (ah *AdminHandler) ModSelf(w http.ResponseWriter, r *http.Request) {
	v, ok := actor(w, r)
	if !ok {
		return
	}
	b, ok := ah.loadBoard(w, r)
	if !ok {
		return
	}

	has, err := ah.Boards.HasMod(r.Context(), b.ID, v.ID)
	if err != nil {
		logger.Log(r.Context()).Errorf("can't check mods of guild %s: %v", b.Name, err)
		WriteMsg(w, "action failed", http.StatusInternalServerError)
		return
	}
	if !has {
		if err := ah.Boards.AddMod(r.Context(), b.ID, v.ID, ah.Now().Unix()); err != nil {
			logger.Log(r.Context()).Errorf("can't add %d as mod of %s: %v", v.ID, b.Name, err)
			WriteMsg(w, "action failed", http.StatusInternalServerError)
			return
		}
		ah.record(r.Context(), modlog.ModSelf, v, b.Fullname(), "")
	}

	http.Redirect(w, r, b.ModsPage(), http.StatusFound)
}

// ModLog lists the latest moderation actions.
func (ah *AdminHandler) ModLog(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var limit int64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 1 {
			WriteMsg(w, "bad limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	actions, err := ah.Log.Recent(r.Context(), limit)
	if err != nil {
		logger.Log(r.Context()).Errorf("can't load mod log: %v", err)
		WriteMsg(w, "failed loading mod log", http.StatusInternalServerError)
		return
	}

	WriteRespJSON(w, map[string]interface{}{"actions": actions})
}
