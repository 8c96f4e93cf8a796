package discord

import (
	"context"
	"fmt"

	disgo "github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/snowflake/v2"

	"guilds/pkg/config"
	"guilds/pkg/logger"
	"guilds/pkg/retry"
)

//go:generate mockgen -source=client.go -destination=mock_client.go -package=discord

// API is the part of the disgo REST client the server talks to.
type API interface {
	GetCurrentUser(bearerToken string, opts ...rest.RequestOpt) (*disgo.OAuth2User, error)
	AddMember(guildID snowflake.ID, userID snowflake.ID, memberAdd disgo.MemberAdd, opts ...rest.RequestOpt) (*disgo.Member, error)
	RemoveMember(guildID snowflake.ID, userID snowflake.ID, opts ...rest.RequestOpt) error
	AddMemberRole(guildID snowflake.ID, userID snowflake.ID, roleID snowflake.ID, opts ...rest.RequestOpt) error
	RemoveMemberRole(guildID snowflake.ID, userID snowflake.ID, roleID snowflake.ID, opts ...rest.RequestOpt) error
}

// Client manages the membership of linked accounts in the community
// server. Every call is retried with backoff.
type Client struct {
	api          API
	serverID     snowflake.ID
	bannedRoleID snowflake.ID
	retry        retry.Policy
}

func NewClient(cfg config.Discord) (*Client, error) {
	return newClient(rest.New(rest.NewClient(cfg.BotToken)), cfg)
}

func newClient(api API, cfg config.Discord) (*Client, error) {
	serverID, err := snowflake.Parse(cfg.ServerID)
	if err != nil {
		return nil, fmt.Errorf("discord: bad server id %q: %w", cfg.ServerID, err)
	}

	var roleID snowflake.ID
	if cfg.BannedRoleID != "" {
		if roleID, err = snowflake.Parse(cfg.BannedRoleID); err != nil {
			return nil, fmt.Errorf("discord: bad banned role id %q: %w", cfg.BannedRoleID, err)
		}
	}

	return &Client{
		api:          api,
		serverID:     serverID,
		bannedRoleID: roleID,
		retry:        retry.Default,
	}, nil
}

// Identify returns the id of the account the bearer token belongs to.
func (c *Client) Identify(ctx context.Context, accessToken string) (string, error) {
	u, err := retry.Value(ctx, c.retry, func(ctx context.Context) (*disgo.OAuth2User, error) {
		return c.api.GetCurrentUser(accessToken, rest.WithCtx(ctx))
	})
	if err != nil {
		return "", fmt.Errorf("discord: failed fetching identity: %w", err)
	}
	return u.ID.String(), nil
}

// Join adds the account to the server using the user's own token.
func (c *Client) Join(ctx context.Context, discordID, accessToken string) error {
	uid, err := snowflake.Parse(discordID)
	if err != nil {
		return fmt.Errorf("discord: bad user id %q: %w", discordID, err)
	}

	err = c.retry.Do(ctx, func(ctx context.Context) error {
		_, err := c.api.AddMember(c.serverID, uid, disgo.MemberAdd{AccessToken: accessToken}, rest.WithCtx(ctx))
		return err
	})
	if err != nil {
		return fmt.Errorf("discord: failed adding member %s: %w", discordID, err)
	}
	logger.Log(ctx).Infof("discord: %s joined server %s", discordID, c.serverID)
	return nil
}

// Kick removes the account from the server.
func (c *Client) Kick(ctx context.Context, discordID string) error {
	uid, err := snowflake.Parse(discordID)
	if err != nil {
		return fmt.Errorf("discord: bad user id %q: %w", discordID, err)
	}

	err = c.retry.Do(ctx, func(ctx context.Context) error {
		return c.api.RemoveMember(c.serverID, uid, rest.WithCtx(ctx), rest.WithReason("account unlinked"))
	})
	if err != nil {
		return fmt.Errorf("discord: failed removing member %s: %w", discordID, err)
	}
	return nil
}

func (c *Client) AddBannedRole(ctx context.Context, discordID, reason string) error {
	return c.setBannedRole(ctx, discordID, reason, true)
}

func (c *Client) RemoveBannedRole(ctx context.Context, discordID string) error {
	return c.setBannedRole(ctx, discordID, "unbanned", false)
}

func (c *Client) setBannedRole(ctx context.Context, discordID, reason string, add bool) error {
	if c.bannedRoleID == 0 {
		logger.Log(ctx).Warnf("discord: no banned role configured, skipping %s", discordID)
		return nil
	}
	uid, err := snowflake.Parse(discordID)
	if err != nil {
		return fmt.Errorf("discord: bad user id %q: %w", discordID, err)
	}

	err = c.retry.Do(ctx, func(ctx context.Context) error {
		opts := []rest.RequestOpt{rest.WithCtx(ctx), rest.WithReason(reason)}
		if add {
			return c.api.AddMemberRole(c.serverID, uid, c.bannedRoleID, opts...)
		}
		return c.api.RemoveMemberRole(c.serverID, uid, c.bannedRoleID, opts...)
	})
	if err != nil {
		return fmt.Errorf("discord: failed updating banned role of %s: %w", discordID, err)
	}
	return nil
}
