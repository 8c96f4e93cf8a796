package guild

import (
	"errors"

	"guilds/pkg/common"
)

var ErrNotFound = errors.New("guild: not found")

type Board struct {
	ID         int64  `json:"-"`
	Name       string `json:"name"`
	IsBanned   bool   `json:"is_banned"`
	BanReason  string `json:"ban_reason,omitempty"`
	CreatedUTC int64  `json:"created_utc"`
}

func (b *Board) Base36ID() string {
	return common.Base36(b.ID)
}

func (b *Board) Fullname() string {
	return "t4_" + b.Base36ID()
}

func (b *Board) Permalink() string {
	return "/+" + b.Name
}

func (b *Board) ModsPage() string {
	return b.Permalink() + "/mod/mods"
}
