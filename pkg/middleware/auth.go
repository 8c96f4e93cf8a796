package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	. "guilds/pkg/common"
	"guilds/pkg/logger"
	"guilds/pkg/sessions"
	"guilds/pkg/user"
)

type (
	IUserRepo interface {
		GetById(context.Context, int64) (*user.User, error)
	}
	ISessionManager interface {
		UserFromToken(string) (*user.UserFromToken, string, error)
		ValidateFormKey(sessionID string, userID int64, key string) bool
	}
	Auth struct {
		UserRepo       IUserRepo
		SessionManager ISessionManager
	}
)

func NewAuthMiddleware(sm ISessionManager, ur IUserRepo) *Auth {
	return &Auth{
		UserRepo:       ur,
		SessionManager: sm,
	}
}

func (auth Auth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")

		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		userFromToken, sessionID, err := auth.SessionManager.UserFromToken(authHeader)
		if err != nil {
			logger.Log(r.Context()).Errorf("can't get username from token: %v", err)
			next.ServeHTTP(w, r)
			return
		}

		repoCtx, repoCtxCancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer repoCtxCancel()
		u, err := auth.UserRepo.GetById(repoCtx, userFromToken.ID)
		if errors.Is(err, user.ErrNotFound) {
			WriteMsg(w, "user not found", http.StatusBadRequest)
			return
		}
		if err != nil {
			logger.Log(r.Context()).Errorf("auth: can't get the user form repo: %v", err)
			WriteMsg(w, "failed loading user", http.StatusInternalServerError)
			return
		}

		ctx := sessions.WithSession(r.Context(), &sessions.Session{ID: sessionID, User: u})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuth answers 401 for anonymous requests.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := sessions.GetAuthUser(r.Context()); err != nil {
			WriteMsg(w, "not authorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin lets through users whose admin level is at least level.
func RequireAdmin(level int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			v, err := sessions.GetAuthUser(r.Context())
			if err != nil {
				WriteMsg(w, "not authorized", http.StatusUnauthorized)
				return
			}
			if v.AdminLevel < level {
				logger.Log(r.Context()).Warnf("user %d (level %d) tried %s requiring level %d",
					v.ID, v.AdminLevel, r.URL.Path, level)
				WriteMsg(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireFormKey checks the per-session anti-forgery token sent as the
// "formkey" form value.
func (auth Auth) RequireFormKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, err := sessions.GetSession(r.Context())
		if err != nil {
			WriteMsg(w, "not authorized", http.StatusUnauthorized)
			return
		}
		if !auth.SessionManager.ValidateFormKey(s.ID, s.User.ID, r.FormValue("formkey")) {
			WriteMsg(w, "invalid formkey", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
