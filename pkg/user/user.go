package user

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("user: not found")

type User struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	Password   []byte `json:"-"`
	CreatedUTC int64  `json:"created_utc"`
	AdminLevel int    `json:"admin_level"`

	// IsBanned holds the id of the admin who issued the ban, 0 otherwise.
	IsBanned  int64  `json:"is_banned"`
	BanReason string `json:"ban_reason,omitempty"`

	LoginNonce int    `json:"-"`
	DiscordID  string `json:"-"`
	HasProfile bool   `json:"has_profile"`
	HasBanner  bool   `json:"has_banner"`
	IsDeleted  bool   `json:"is_deleted"`
}

func (u *User) URL() string {
	return "/@" + u.Username
}

func (u *User) Banned() bool {
	return u.IsBanned != 0
}

func (u *User) ProfileKey() string {
	return fmt.Sprintf("users/%s/profile.png", u.Username)
}

func (u *User) BannerKey() string {
	return fmt.Sprintf("users/%s/banner.png", u.Username)
}

type UserFromToken struct {
	Username string `json:"username"`
	ID       int64  `json:"id"`
}
