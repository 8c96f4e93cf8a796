package sessions

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
	"github.com/gomodule/redigo/redis"

	. "guilds/pkg/common"
	"guilds/pkg/logger"
	"guilds/pkg/user"
)

const (
	redisNS    = "guildSessions"
	stateNS    = "guildOAuthState"
	sessionTTL = 90 * 24 * time.Hour
	stateTTL   = 10 * time.Minute
)

type (
	sessionKey string

	// Session is the authenticated request state stored in the context.
	Session struct {
		ID   string
		User *user.User
	}

	SessionManager struct {
		secret []byte
		pool   *redis.Pool
	}

	jwtClaims struct {
		User user.UserFromToken `json:"user"`
		jwt.StandardClaims
	}
)

const SessionKey sessionKey = "authenticatedUser"

var (
	ErrNoAuth       = errors.New("sessions: no session found")
	ErrStateMissing = errors.New("sessions: no oauth state stored")
)

func NewSessionManager(secret string, pool *redis.Pool) *SessionManager {
	return &SessionManager{
		secret: []byte(secret),
		pool:   pool,
	}
}

func sessionsKey(userId int64) string {
	return fmt.Sprintf("%s:%d", redisNS, userId)
}

// Returns the user and session id from the JWT token if the token is valid
// and the session is still alive in Redis.
func (sm *SessionManager) UserFromToken(authHeader string) (*user.UserFromToken, string, error) {
	if authHeader == "" {
		return nil, "", errors.New("sessions: auth header not found")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	token, err := jwt.ParseWithClaims(tokenString, &jwtClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("sessions: unexpected signing method %v", token.Header["alg"])
			}
			return sm.secret, nil
		})
	if err != nil {
		return nil, "", err
	}

	claims, ok := token.Claims.(*jwtClaims)
	if !ok {
		return nil, "", errors.New("sessions: can't cast token to claim")
	}
	if !token.Valid {
		return nil, "", errors.New("sessions: token is not valid")
	}

	if _, err := sm.CheckRedis(claims.User.ID, claims.Id); err != nil {
		return nil, "", fmt.Errorf("sessions/manager: Redis session is not valid: %w", err)
	}

	return &claims.User, claims.Id, nil
}

// Goes through all user sessions and removes expired ones.
func (sm *SessionManager) CleanupUserSessions(userId int64) error {
	conn := sm.pool.Get()
	defer conn.Close()

	sessions, err := redis.StringMap(conn.Do("HGETALL", sessionsKey(userId)))
	if err != nil {
		return fmt.Errorf("sessions/manager: can't HGETALL user sessions: %w", err)
	}

	nowTs := time.Now().Unix()
	for sessId, exp := range sessions {
		expTs, _ := strconv.ParseInt(exp, 10, 64)
		if nowTs > expTs {
			if _, err := conn.Do("HDEL", sessionsKey(userId), sessId); err != nil {
				return fmt.Errorf("sessions/manager: can't HDEL session: %w", err)
			}
			logger.Log(context.Background()).Debugf("sessions/manager: session %s removed (expired at %s)", sessId, exp)
		}
	}

	return nil
}

func (sm *SessionManager) CheckRedis(userId int64, sessionId string) (bool, error) {
	conn := sm.pool.Get()
	defer conn.Close()

	expiredTs, err := redis.Int64(conn.Do("HGET", sessionsKey(userId), sessionId))
	if err != nil {
		return false, fmt.Errorf("sessions/manager: can't HGET session: %w", err)
	}

	// Check user session for expiration
	nowTs := time.Now().Unix()
	if nowTs > expiredTs {
		return false, errors.New("session has been expired")
	}

	// Prolongate session expiration time if it expires in less than 24 hours
	// because we don't want to kick off the active user.
	if expiredTs-nowTs < int64((24 * time.Hour).Seconds()) {
		newExpDate := time.Now().Add(sessionTTL).Unix()
		if err := sm.AddToRedis(userId, sessionId, newExpDate); err != nil {
			return false, err
		}
	}

	return true, nil
}

func (sm *SessionManager) AddToRedis(userId int64, sessionId string, exp int64) error {
	conn := sm.pool.Get()
	defer conn.Close()

	if _, err := conn.Do("HSET", sessionsKey(userId), sessionId, exp); err != nil {
		return fmt.Errorf("sessions/manager: failed HSET to Redis: %w", err)
	}
	return nil
}

func (sm *SessionManager) CreateToken(u *user.User) (string, error) {
	sessionID := RandStringRunes(10)
	data := jwtClaims{
		User: user.UserFromToken{ID: u.ID, Username: u.Username},
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(sessionTTL).Unix(),
			IssuedAt:  time.Now().Unix(),
			Id:        sessionID,
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, data).SignedString(sm.secret)
	if err != nil {
		return "", err
	}

	if err := sm.AddToRedis(u.ID, sessionID, data.ExpiresAt); err != nil {
		return ``, err
	}

	return token, nil
}

func (sm *SessionManager) sign(s string) string {
	mac := hmac.New(sha256.New, sm.secret)
	mac.Write([]byte(s))
	return hex.EncodeToString(mac.Sum(nil))
}

func (sm *SessionManager) validate(s, signature string) bool {
	return hmac.Equal([]byte(sm.sign(s)), []byte(signature))
}

// FormKey is the anti-forgery token every mutating form must carry.
func (sm *SessionManager) FormKey(sessionID string, userID int64) string {
	return sm.sign(fmt.Sprintf("%s+%d", sessionID, userID))
}

func (sm *SessionManager) ValidateFormKey(sessionID string, userID int64, key string) bool {
	if key == "" {
		return false
	}
	return sm.validate(fmt.Sprintf("%s+%d", sessionID, userID), key)
}

func stateMessage(sessionID string, u *user.User) string {
	return fmt.Sprintf("%s+%d+%d", sessionID, u.LoginNonce, u.ID)
}

// IssueState signs an OAuth state bound to the session and the user and
// remembers it for the session.
func (sm *SessionManager) IssueState(sessionID string, u *user.User) (string, error) {
	state := sm.sign(stateMessage(sessionID, u))

	conn := sm.pool.Get()
	defer conn.Close()

	if _, err := conn.Do("SET", stateNS+":"+sessionID, state, "EX", int(stateTTL.Seconds())); err != nil {
		return "", fmt.Errorf("sessions/manager: failed storing oauth state: %w", err)
	}
	return state, nil
}

// CheckState reports whether the state came back unchanged for this session
// and user.
func (sm *SessionManager) CheckState(sessionID string, u *user.User, state string) (bool, error) {
	conn := sm.pool.Get()
	defer conn.Close()

	stored, err := redis.String(conn.Do("GET", stateNS+":"+sessionID))
	if errors.Is(err, redis.ErrNil) {
		return false, ErrStateMissing
	}
	if err != nil {
		return false, fmt.Errorf("sessions/manager: failed loading oauth state: %w", err)
	}

	if state == "" || !hmac.Equal([]byte(stored), []byte(state)) {
		return false, nil
	}
	return sm.validate(stateMessage(sessionID, u), state), nil
}

func GetAuthUser(ctx context.Context) (*user.User, error) {
	s, ok := ctx.Value(SessionKey).(*Session)
	if !ok || s == nil || s.User == nil {
		return nil, ErrNoAuth
	}
	return s.User, nil
}

func GetSession(ctx context.Context) (*Session, error) {
	s, ok := ctx.Value(SessionKey).(*Session)
	if !ok || s == nil || s.User == nil {
		return nil, ErrNoAuth
	}
	return s, nil
}

func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, SessionKey, s)
}
