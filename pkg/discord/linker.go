package discord

import (
	"context"
	"errors"
	"net/http"

	"golang.org/x/oauth2"

	. "guilds/pkg/common"
	"guilds/pkg/config"
	"guilds/pkg/logger"
	"guilds/pkg/retry"
	"guilds/pkg/sessions"
	"guilds/pkg/user"
)

//go:generate mockgen -source=linker.go -destination=mock_linker.go -package=discord

const (
	AuthorizeURL = "https://discord.com/oauth2/authorize"
	TokenURL     = "https://discord.com/api/oauth2/token"

	// SettingsPage is where the flow lands once the account is linked.
	SettingsPage = "/settings"
)

var Scopes = []string{"identify", "guilds.join"}

type (
	IStateStore interface {
		IssueState(sessionID string, u *user.User) (string, error)
		CheckState(sessionID string, u *user.User, state string) (bool, error)
	}

	IUserRepo interface {
		SetDiscordID(ctx context.Context, uid int64, discordID string) error
	}

	IMembers interface {
		Identify(ctx context.Context, accessToken string) (string, error)
		Join(ctx context.Context, discordID, accessToken string) error
		Kick(ctx context.Context, discordID string) error
		AddBannedRole(ctx context.Context, discordID, reason string) error
	}

	IOAuth interface {
		AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) string
		Exchange(ctx context.Context, code string, opts ...oauth2.AuthCodeOption) (*oauth2.Token, error)
	}

	// Linker runs both legs of the account linking flow on GET /discord.
	Linker struct {
		States  IStateStore
		Users   IUserRepo
		Members IMembers
		OAuth   IOAuth
		Retry   retry.Policy
	}
)

func NewOAuthConfig(cfg config.Discord) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURI,
		Scopes:       Scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:   AuthorizeURL,
			TokenURL:  TokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}

func NewLinker(states IStateStore, users IUserRepo, members IMembers, oauth IOAuth) *Linker {
	return &Linker{
		States:  states,
		Users:   users,
		Members: members,
		OAuth:   oauth,
		Retry:   retry.Default,
	}
}

func (l *Linker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s, err := sessions.GetSession(r.Context())
	if err != nil {
		WriteMsg(w, "not authorized", http.StatusUnauthorized)
		return
	}

	if r.URL.Query().Get("code") == "" {
		l.redirect(w, r, s)
		return
	}
	l.callback(w, r, s)
}

func (l *Linker) redirect(w http.ResponseWriter, r *http.Request, s *sessions.Session) {
	state, err := l.States.IssueState(s.ID, s.User)
	if err != nil {
		logger.Log(r.Context()).Errorf("can't issue oauth state for user %d: %v", s.User.ID, err)
		WriteMsg(w, "failed starting discord login", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, l.OAuth.AuthCodeURL(state), http.StatusFound)
}

func (l *Linker) callback(w http.ResponseWriter, r *http.Request, s *sessions.Session) {
	ctx := r.Context()
	u := s.User
	q := r.URL.Query()

	ok, err := l.States.CheckState(s.ID, u, q.Get("state"))
	if err != nil && !errors.Is(err, sessions.ErrStateMissing) {
		logger.Log(ctx).Errorf("can't check oauth state for user %d: %v", u.ID, err)
		WriteMsg(w, "failed checking state", http.StatusInternalServerError)
		return
	}
	if !ok {
		logger.Log(ctx).Warnf("user %d sent a bad oauth state", u.ID)
		WriteMsg(w, "bad state", http.StatusForbidden)
		return
	}

	token, err := retry.Value(ctx, l.Retry, func(ctx context.Context) (*oauth2.Token, error) {
		t, err := l.OAuth.Exchange(ctx, q.Get("code"))
		var re *oauth2.RetrieveError
		if errors.As(err, &re) {
			return nil, retry.Permanent(err)
		}
		return t, err
	})
	if err != nil {
		logger.Log(ctx).Errorf("discord code exchange failed for user %d: %v", u.ID, err)
		WriteMsg(w, "discord login failed", http.StatusBadGateway)
		return
	}

	discordID, err := l.Members.Identify(ctx, token.AccessToken)
	if err != nil {
		logger.Log(ctx).Errorf("can't identify discord account of user %d: %v", u.ID, err)
		WriteMsg(w, "discord login failed", http.StatusBadGateway)
		return
	}

	if u.DiscordID != "" && u.DiscordID != discordID {
		if err := l.Members.Kick(ctx, u.DiscordID); err != nil {
			logger.Log(ctx).Warnf("can't remove old discord account %s of user %d: %v", u.DiscordID, u.ID, err)
		}
	}

	if err := l.Users.SetDiscordID(ctx, u.ID, discordID); err != nil {
		logger.Log(ctx).Errorf("can't store discord id of user %d: %v", u.ID, err)
		WriteMsg(w, "failed linking account", http.StatusInternalServerError)
		return
	}
	u.DiscordID = discordID

	if err := l.Members.Join(ctx, discordID, token.AccessToken); err != nil {
		logger.Log(ctx).Errorf("can't add user %d to the discord server: %v", u.ID, err)
		WriteMsg(w, "failed joining discord server", http.StatusBadGateway)
		return
	}

	if u.Banned() {
		if err := l.Members.AddBannedRole(ctx, discordID, u.BanReason); err != nil {
			logger.Log(ctx).Errorf("can't add banned role to %s: %v", discordID, err)
		}
	}

	logger.Log(ctx).Infof("user %d linked discord account %s", u.ID, discordID)
	http.Redirect(w, r, SettingsPage, http.StatusFound)
}
