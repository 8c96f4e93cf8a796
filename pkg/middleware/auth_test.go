package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"guilds/pkg/sessions"
	"guilds/pkg/user"
)

type fakeSessions struct {
	user      *user.UserFromToken
	sessionID string
	err       error
	formKey   string
}

func (f *fakeSessions) UserFromToken(string) (*user.UserFromToken, string, error) {
	return f.user, f.sessionID, f.err
}

func (f *fakeSessions) ValidateFormKey(_ string, _ int64, key string) bool {
	return key != "" && key == f.formKey
}

type fakeUsers map[int64]*user.User

func (f fakeUsers) GetById(_ context.Context, id int64) (*user.User, error) {
	if u, ok := f[id]; ok {
		return u, nil
	}
	return nil, user.ErrNotFound
}

func echoUser(w http.ResponseWriter, r *http.Request) {
	s, err := sessions.GetSession(r.Context())
	if err != nil {
		w.Write([]byte("anonymous"))
		return
	}
	w.Write([]byte(s.User.Username + "@" + s.ID))
}

func TestAuthMiddleware(t *testing.T) {
	users := fakeUsers{1: {ID: 1, Username: "pike"}}

	t.Run("anonymous passes through", func(t *testing.T) {
		auth := NewAuthMiddleware(&fakeSessions{}, users)
		w := httptest.NewRecorder()
		auth.Middleware(http.HandlerFunc(echoUser)).ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
		assert.Equal(t, "anonymous", w.Body.String())
	})

	t.Run("valid token loads the user and session", func(t *testing.T) {
		auth := NewAuthMiddleware(&fakeSessions{user: &user.UserFromToken{ID: 1}, sessionID: "abc"}, users)
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer t")
		w := httptest.NewRecorder()
		auth.Middleware(http.HandlerFunc(echoUser)).ServeHTTP(w, req)
		assert.Equal(t, "pike@abc", w.Body.String())
	})

	t.Run("invalid token is anonymous", func(t *testing.T) {
		auth := NewAuthMiddleware(&fakeSessions{err: errors.New("bad")}, users)
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer t")
		w := httptest.NewRecorder()
		auth.Middleware(http.HandlerFunc(echoUser)).ServeHTTP(w, req)
		assert.Equal(t, "anonymous", w.Body.String())
	})

	t.Run("deleted user", func(t *testing.T) {
		auth := NewAuthMiddleware(&fakeSessions{user: &user.UserFromToken{ID: 2}}, users)
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer t")
		w := httptest.NewRecorder()
		auth.Middleware(http.HandlerFunc(echoUser)).ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func withUser(r *http.Request, u *user.User) *http.Request {
	return r.WithContext(sessions.WithSession(r.Context(), &sessions.Session{ID: "sess", User: u}))
}

func TestRequireAdmin(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusTeapot) })
	h := RequireAdmin(3)(ok)

	cases := []struct {
		name string
		user *user.User
		code int
	}{
		{"anonymous", nil, http.StatusUnauthorized},
		{"too low", &user.User{ID: 1, AdminLevel: 2}, http.StatusForbidden},
		{"exact", &user.User{ID: 1, AdminLevel: 3}, http.StatusTeapot},
		{"higher", &user.User{ID: 1, AdminLevel: 6}, http.StatusTeapot},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/x", nil)
			if c.user != nil {
				req = withUser(req, c.user)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)
			assert.Equal(t, c.code, w.Code)
		})
	}
}

func TestRequireFormKey(t *testing.T) {
	auth := NewAuthMiddleware(&fakeSessions{formKey: "good"}, fakeUsers{})
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })
	h := auth.RequireFormKey(ok)

	post := func(key string) *http.Request {
		form := url.Values{"formkey": {key}}
		req := httptest.NewRequest("POST", "/api/x", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return withUser(req, &user.User{ID: 1})
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, post("good"))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, post("bad"))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("POST", "/api/x", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
