package api

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"time"

	"guilds/pkg/common"
	"guilds/pkg/logger"
	"guilds/pkg/sessions"
	"guilds/pkg/user"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=api

const minPasswordLen = 8

var validUsername = regexp.MustCompile(`^[a-zA-Z0-9_\-]{3,25}$`)

type (
	UserRepo interface {
		UserExists(context.Context, string) bool
		GetByUsernameAndPass(context.Context, string, string) (*user.User, error)
		Add(context.Context, *user.User) (int64, error)
	}

	SessionManager interface {
		CreateToken(*user.User) (string, error)
		CleanupUserSessions(userId int64) error
		FormKey(sessionID string, userID int64) string
	}

	UserHandler struct {
		Repo           UserRepo
		SessionManager SessionManager
		Now            func() time.Time
	}

	HttpUser struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
)

func NewUserHandler(r UserRepo, sm SessionManager) *UserHandler {
	return &UserHandler{
		Repo:           r,
		SessionManager: sm,
		Now:            time.Now,
	}
}

func (uh UserHandler) LogIn(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	httpUser := new(HttpUser)
	err := common.ParseReqBody(r.Body, httpUser)
	if err != nil {
		logger.Log(r.Context()).Errorf("can't parse request body as user: %v", err)
		common.WriteMsg(w, "bad request format", http.StatusBadRequest)
		return
	}

	user, err := uh.Repo.GetByUsernameAndPass(r.Context(), httpUser.Username, httpUser.Password)
	if err != nil {
		logger.Log(r.Context()).Errorf("can't get the user by username `%s` and password: %v",
			httpUser.Username, err)
		common.WriteMsg(w, "user not found", http.StatusNotFound)
		return
	}

	// Remove expired user session if there are any
	if err := uh.SessionManager.CleanupUserSessions(user.ID); err != nil {
		logger.Log(r.Context()).Errorf("user/handlers: can't cleanup sessions for user `%s`, %v", httpUser.Username, err)
		common.WriteMsg(w, "failed managing user sessions", http.StatusInternalServerError)
		return
	}

	uh.sendToken(r.Context(), w, user, http.StatusOK)
}

func (uh UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	httpUser := new(HttpUser)
	err := common.ParseReqBody(r.Body, httpUser)
	if err != nil {
		logger.Log(r.Context()).Errorf("can't parse request body as user: %v", err)
		common.WriteMsg(w, "bad request format", http.StatusBadRequest)
		return
	}

	if !validUsername.MatchString(httpUser.Username) {
		common.WriteMsg(w, "username must be 3-25 letters, digits, _ or -", http.StatusBadRequest)
		return
	}
	if len(httpUser.Password) < minPasswordLen {
		common.WriteMsg(w, fmt.Sprintf("password must be at least %d characters", minPasswordLen), http.StatusBadRequest)
		return
	}

	// Check if user already exists
	if uh.Repo.UserExists(r.Context(), httpUser.Username) {
		msg := fmt.Sprintf(`user "%s" already exists`, httpUser.Username)
		logger.Log(r.Context()).Info(msg)
		common.WriteMsg(w, msg, http.StatusConflict)
		return
	}

	salt := common.RandStringRunes(8)
	u := &user.User{
		Username:   httpUser.Username,
		Password:   common.HashPass(httpUser.Password, salt),
		CreatedUTC: uh.Now().Unix(),
	}
	id, err := uh.Repo.Add(r.Context(), u)
	if err != nil {
		logger.Log(r.Context()).Errorf("can't add user `%s`: %v", u.Username, err)
		common.WriteMsg(w, "can't add user", http.StatusInternalServerError)
		return
	}
	u.ID = id

	uh.sendToken(r.Context(), w, u, http.StatusCreated)
}

func (uh *UserHandler) sendToken(ctx context.Context, w http.ResponseWriter, user *user.User, code int) {
	token, err := uh.SessionManager.CreateToken(user)
	if err != nil {
		logger.Log(ctx).Errorf("can't create JWT token from user: %v", err)
		common.WriteMsg(w, "user authentication failed", http.StatusInternalServerError)
		return
	}

	tk := struct {
		Token string `json:"token"`
	}{token}
	w.WriteHeader(code)
	common.WriteRespJSON(w, tk)
}

// Me returns the logged in user with the formkey their mutating requests need.
func (uh UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	s, err := sessions.GetSession(r.Context())
	if err != nil {
		common.WriteMsg(w, "not authorized", http.StatusUnauthorized)
		return
	}

	common.WriteRespJSON(w, struct {
		*user.User
		FormKey string `json:"formkey"`
	}{s.User, uh.SessionManager.FormKey(s.ID, s.User.ID)})
}
