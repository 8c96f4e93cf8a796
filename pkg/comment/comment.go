package comment

import (
	"errors"
	"fmt"

	"guilds/pkg/common"
)

var ErrNotFound = errors.New("comment: not found")

type Comment struct {
	ID               int64   `json:"-"`
	AuthorID         int64   `json:"author_id"`
	ParentSubmission int64   `json:"-"`
	ParentFullname   string  `json:"parent"`
	Body             string  `json:"body"`
	CreatedUTC       int64   `json:"created_utc"`
	EditedUTC        int64   `json:"edited_utc"`
	Score            int     `json:"score"`
	RankHot          float64 `json:"-"`
	RankFiery        float64 `json:"-"`
	IsBanned         bool    `json:"is_banned"`
	IsDeleted        bool    `json:"is_deleted"`
	IsApproved       int64   `json:"-"`
	ApprovedUTC      int64   `json:"-"`
	DistinguishLevel int     `json:"distinguish_level"`
}

func (c *Comment) Base36ID() string {
	return common.Base36(c.ID)
}

// Fullname is the typed reference other comments use as their parent.
func (c *Comment) Fullname() string {
	return "t3_" + c.Base36ID()
}

func (c *Comment) Permalink() string {
	return fmt.Sprintf("/post/%s/comment/%s", common.Base36(c.ParentSubmission), c.Base36ID())
}
