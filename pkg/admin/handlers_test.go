package admin

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	gomock "github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guilds/pkg/comment"
	"guilds/pkg/guild"
	"guilds/pkg/modlog"
	"guilds/pkg/sessions"
	"guilds/pkg/submission"
	"guilds/pkg/user"
)

var now = time.Date(2020, time.June, 15, 12, 0, 0, 0, time.UTC)

type adminMocks struct {
	users    *MockIUserRepo
	posts    *MockISubmissionRepo
	comments *MockICommentRepo
	boards   *MockIBoardRepo
	log      *MockIModLog
	store    *MockIStore
	roles    *MockIRoleSync
}

func newTestHandler(ctrl *gomock.Controller) (*AdminHandler, *adminMocks) {
	m := &adminMocks{
		users:    NewMockIUserRepo(ctrl),
		posts:    NewMockISubmissionRepo(ctrl),
		comments: NewMockICommentRepo(ctrl),
		boards:   NewMockIBoardRepo(ctrl),
		log:      NewMockIModLog(ctrl),
		store:    NewMockIStore(ctrl),
		roles:    NewMockIRoleSync(ctrl),
	}
	h := NewAdminHandler(m.users, m.posts, m.comments, m.boards, m.log, m.store, m.roles)
	h.Now = func() time.Time { return now }
	return h, m
}

var admin = &user.User{ID: 1, Username: "root", AdminLevel: 3}

func adminReq(target string, vars map[string]string, form url.Values) *http.Request {
	r := httptest.NewRequest("POST", target, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r = mux.SetURLVars(r, vars)
	return r.WithContext(sessions.WithSession(r.Context(), &sessions.Session{ID: "sess", User: admin}))
}

func expectRecord(t *testing.T, m *adminMocks, kind modlog.Kind, target string) {
	m.log.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a *modlog.ModAction) error {
			assert.Equal(t, kind, a.Kind)
			assert.Equal(t, target, a.Target)
			assert.Equal(t, admin.ID, a.ActorID)
			assert.Equal(t, now.Unix(), a.CreatedUTC)
			return nil
		})
}

func TestBanUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, m := newTestHandler(ctrl)

	t.Run("bad id", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.BanUser(w, adminReq("/api/ban_user/x", map[string]string{"uid": "x"}, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing user", func(t *testing.T) {
		m.users.EXPECT().GetById(gomock.Any(), int64(99)).Return(nil, user.ErrNotFound)
		w := httptest.NewRecorder()
		h.BanUser(w, adminReq("/api/ban_user/99", map[string]string{"uid": "99"}, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bans alts", func(t *testing.T) {
		target := &user.User{ID: 10, Username: "troll", HasProfile: true, DiscordID: "555"}
		alt := &user.User{ID: 11, Username: "troll2", HasBanner: true}
		quiet := &user.User{ID: 12, Username: "troll3"}

		m.users.EXPECT().GetById(gomock.Any(), int64(10)).Return(target, nil)
		m.users.EXPECT().BanWithAlts(gomock.Any(), int64(10), admin.ID, "spam").Return([]int64{10, 11, 12}, nil)

		m.store.EXPECT().Delete(gomock.Any(), "users/troll/profile.png").Return(nil)
		m.users.EXPECT().ClearProfileImages(gomock.Any(), int64(10)).Return(nil)
		m.roles.EXPECT().AddBannedRole(gomock.Any(), "555", "spam").Return(errors.New("discord down"))
		expectRecord(t, m, modlog.BanUser, "/@troll")

		m.users.EXPECT().GetById(gomock.Any(), int64(11)).Return(alt, nil)
		m.store.EXPECT().Delete(gomock.Any(), alt.BannerKey()).Return(nil)
		m.users.EXPECT().ClearProfileImages(gomock.Any(), int64(11)).Return(nil)
		expectRecord(t, m, modlog.BanUser, "/@troll2")

		m.users.EXPECT().GetById(gomock.Any(), int64(12)).Return(quiet, nil)
		expectRecord(t, m, modlog.BanUser, "/@troll3")

		w := httptest.NewRecorder()
		h.BanUser(w, adminReq("/api/ban_user/10", map[string]string{"uid": "10"}, url.Values{"reason": {"spam"}}))
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/@troll", w.Header().Get("Location"))
	})
}

func TestUnbanUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, m := newTestHandler(ctrl)

	u := &user.User{ID: 10, Username: "troll", IsBanned: 1, DiscordID: "555"}
	m.users.EXPECT().GetById(gomock.Any(), int64(10)).Return(u, nil)
	m.users.EXPECT().Unban(gomock.Any(), int64(10)).Return(nil)
	m.roles.EXPECT().RemoveBannedRole(gomock.Any(), "555").Return(nil)
	expectRecord(t, m, modlog.UnbanUser, "/@troll")

	w := httptest.NewRecorder()
	h.UnbanUser(w, adminReq("/api/unban_user/10", map[string]string{"uid": "10"}, nil))
	assert.Equal(t, http.StatusFound, w.Code)
}

func TestPostActions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, m := newTestHandler(ctrl)
	vars := map[string]string{"pid": "1a"}

	t.Run("missing post", func(t *testing.T) {
		m.posts.EXPECT().GetById(gomock.Any(), int64(46)).Return(nil, submission.ErrNotFound)
		w := httptest.NewRecorder()
		h.BanPost(w, adminReq("/api/ban_post/1a", vars, nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("ban", func(t *testing.T) {
		m.posts.EXPECT().GetById(gomock.Any(), int64(46)).Return(&submission.Submission{ID: 46}, nil)
		m.posts.EXPECT().Ban(gomock.Any(), int64(46), "rule 1").Return(nil)
		expectRecord(t, m, modlog.BanPost, "t2_1a")

		w := httptest.NewRecorder()
		h.BanPost(w, adminReq("/api/ban_post/1a", vars, url.Values{"reason": {"rule 1"}}))
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/post/1a", w.Header().Get("Location"))
	})

	t.Run("unban records approver", func(t *testing.T) {
		m.posts.EXPECT().GetById(gomock.Any(), int64(46)).Return(&submission.Submission{ID: 46, IsBanned: true}, nil)
		m.posts.EXPECT().Unban(gomock.Any(), int64(46), admin.ID, now.Unix()).Return(nil)
		expectRecord(t, m, modlog.UnbanPost, "t2_1a")

		w := httptest.NewRecorder()
		h.UnbanPost(w, adminReq("/api/unban_post/1a", vars, nil))
		assert.Equal(t, http.StatusFound, w.Code)
	})

	t.Run("distinguish by non author", func(t *testing.T) {
		m.posts.EXPECT().GetById(gomock.Any(), int64(46)).Return(&submission.Submission{ID: 46, AuthorID: 7}, nil)
		w := httptest.NewRecorder()
		h.DistinguishPost(w, adminReq("/api/distinguish/1a", vars, nil))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("distinguish toggles", func(t *testing.T) {
		m.posts.EXPECT().GetById(gomock.Any(), int64(46)).Return(&submission.Submission{ID: 46, AuthorID: admin.ID}, nil)
		m.posts.EXPECT().SetDistinguish(gomock.Any(), int64(46), 3).Return(nil)
		expectRecord(t, m, modlog.DistinguishPost, "t2_1a")
		w := httptest.NewRecorder()
		h.DistinguishPost(w, adminReq("/api/distinguish/1a", vars, nil))
		assert.Equal(t, http.StatusFound, w.Code)

		m.posts.EXPECT().GetById(gomock.Any(), int64(46)).
			Return(&submission.Submission{ID: 46, AuthorID: admin.ID, DistinguishLevel: 3}, nil)
		m.posts.EXPECT().SetDistinguish(gomock.Any(), int64(46), 0).Return(nil)
		expectRecord(t, m, modlog.DistinguishPost, "t2_1a")
		w = httptest.NewRecorder()
		h.DistinguishPost(w, adminReq("/api/distinguish/1a", vars, nil))
		assert.Equal(t, http.StatusFound, w.Code)
	})
}

func TestSticky(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, m := newTestHandler(ctrl)

	a := &submission.Submission{ID: 46, BoardID: 3}
	b := &submission.Submission{ID: 47, BoardID: 3}

	m.posts.EXPECT().GetById(gomock.Any(), int64(46)).Return(a, nil)
	m.posts.EXPECT().ToggleSticky(gomock.Any(), a).Return(true, nil)
	expectRecord(t, m, modlog.StickyPost, "t2_1a")

	m.posts.EXPECT().GetById(gomock.Any(), int64(47)).Return(b, nil)
	m.posts.EXPECT().ToggleSticky(gomock.Any(), b).Return(true, nil)
	expectRecord(t, m, modlog.StickyPost, "t2_1b")

	m.posts.EXPECT().GetById(gomock.Any(), int64(47)).Return(&submission.Submission{ID: 47, BoardID: 3, Stickied: true}, nil)
	m.posts.EXPECT().ToggleSticky(gomock.Any(), gomock.Any()).Return(false, nil)
	expectRecord(t, m, modlog.UnstickyPost, "t2_1b")

	for _, pid := range []string{"1a", "1b", "1b"} {
		w := httptest.NewRecorder()
		h.Sticky(w, adminReq("/api/sticky/"+pid, map[string]string{"pid": pid}, nil))
		require.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/post/"+pid, w.Header().Get("Location"))
	}
}

func TestCommentActions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, m := newTestHandler(ctrl)
	vars := map[string]string{"cid": "3"}
	c := &comment.Comment{ID: 3, ParentSubmission: 46}

	t.Run("missing comment", func(t *testing.T) {
		m.comments.EXPECT().GetById(gomock.Any(), int64(3)).Return(nil, comment.ErrNotFound)
		w := httptest.NewRecorder()
		h.BanComment(w, adminReq("/api/ban_comment/3", vars, nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("ban", func(t *testing.T) {
		m.comments.EXPECT().GetById(gomock.Any(), int64(3)).Return(c, nil)
		m.comments.EXPECT().Ban(gomock.Any(), int64(3)).Return(nil)
		expectRecord(t, m, modlog.BanComment, "t3_3")

		w := httptest.NewRecorder()
		h.BanComment(w, adminReq("/api/ban_comment/3", vars, nil))
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/post/1a/comment/3", w.Header().Get("Location"))
	})

	t.Run("distinguish uses admin level", func(t *testing.T) {
		m.comments.EXPECT().GetById(gomock.Any(), int64(3)).Return(c, nil)
		m.comments.EXPECT().SetDistinguish(gomock.Any(), int64(3), 3).Return(nil)
		expectRecord(t, m, modlog.DistinguishComment, "t3_3")

		w := httptest.NewRecorder()
		h.DistinguishComment(w, adminReq("/api/distinguish_comment/3", vars, nil))
		assert.Equal(t, http.StatusFound, w.Code)
	})

	t.Run("record failure does not fail the action", func(t *testing.T) {
		m.comments.EXPECT().GetById(gomock.Any(), int64(3)).Return(c, nil)
		m.comments.EXPECT().SetDistinguish(gomock.Any(), int64(3), 0).Return(nil)
		m.log.EXPECT().Record(gomock.Any(), gomock.Any()).Return(errors.New("mongo down"))

		w := httptest.NewRecorder()
		h.UndistinguishComment(w, adminReq("/api/undistinguish_comment/3", vars, nil))
		assert.Equal(t, http.StatusFound, w.Code)
	})
}

func TestGuildActions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, m := newTestHandler(ctrl)
	vars := map[string]string{"bid": "3"}
	b := &guild.Board{ID: 3, Name: "golang"}

	t.Run("ban", func(t *testing.T) {
		m.boards.EXPECT().GetById(gomock.Any(), int64(3)).Return(b, nil)
		m.boards.EXPECT().SetBanned(gomock.Any(), int64(3), true, "abandoned").Return(nil)
		expectRecord(t, m, modlog.BanGuild, "t4_3")

		w := httptest.NewRecorder()
		h.BanGuild(w, adminReq("/api/ban_guild/3", vars, url.Values{"reason": {"abandoned"}}))
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/+golang", w.Header().Get("Location"))
	})

	t.Run("mod self adds once", func(t *testing.T) {
		m.boards.EXPECT().GetById(gomock.Any(), int64(3)).Return(b, nil).Times(2)
		gomock.InOrder(
			m.boards.EXPECT().HasMod(gomock.Any(), int64(3), admin.ID).Return(false, nil),
			m.boards.EXPECT().HasMod(gomock.Any(), int64(3), admin.ID).Return(true, nil),
		)
		m.boards.EXPECT().AddMod(gomock.Any(), int64(3), admin.ID, now.Unix()).Return(nil)
		expectRecord(t, m, modlog.ModSelf, "t4_3")

		for i := 0; i < 2; i++ {
			w := httptest.NewRecorder()
			h.ModSelf(w, adminReq("/api/mod_self/3", vars, nil))
			assert.Equal(t, http.StatusFound, w.Code)
			assert.Equal(t, "/+golang/mod/mods", w.Header().Get("Location"))
		}
	})

	t.Run("missing guild", func(t *testing.T) {
		m.boards.EXPECT().GetById(gomock.Any(), int64(4)).Return(nil, guild.ErrNotFound)
		w := httptest.NewRecorder()
		h.UnbanGuild(w, adminReq("/api/unban_guild/4", map[string]string{"bid": "4"}, nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestModLog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, m := newTestHandler(ctrl)

	w := httptest.NewRecorder()
	h.ModLog(w, httptest.NewRequest("GET", "/api/mod_log?limit=zero", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	m.log.EXPECT().Recent(gomock.Any(), int64(0)).Return([]*modlog.ModAction{{Kind: modlog.BanPost, Target: "t2_1a"}}, nil)
	w = httptest.NewRecorder()
	h.ModLog(w, httptest.NewRequest("GET", "/api/mod_log", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"t2_1a"`)
}
