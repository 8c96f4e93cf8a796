package submission

import (
	"errors"
	"fmt"
	"math/rand"
	"net/url"
	"strings"
	"time"

	"guilds/pkg/common"
	"guilds/pkg/voting"
)

var ErrNotFound = errors.New("submission: not found")

const textPostDomain = "text post"

type Submission struct {
	ID               int64  `json:"-"`
	AuthorID         int64  `json:"author_id"`
	Title            string `json:"title"`
	URL              string `json:"url"`
	Body             string `json:"body"`
	BodyHTML         string `json:"body_html"`
	CreatedUTC       int64  `json:"created_utc"`
	EditedUTC        int64  `json:"edited_utc"`
	IsBanned         bool   `json:"is_banned"`
	BanReason        string `json:"ban_reason,omitempty"`
	IsDeleted        bool   `json:"is_deleted"`
	DistinguishLevel int    `json:"distinguish_level"`
	Stickied         bool   `json:"stickied"`
	BoardID          int64  `json:"board_id"`
	OriginalBoardID  int64  `json:"original_board_id"`
	DomainRef        int64  `json:"-"`
	Over18           bool   `json:"over_18"`
	IsImage          bool   `json:"is_image"`
	HasThumb         bool   `json:"has_thumb"`
	CreationIP       string `json:"-"`

	// IsApproved is the id of the approving admin, 0 when not approved.
	IsApproved  int64 `json:"-"`
	ApprovedUTC int64 `json:"-"`

	Stats Stats `json:"-"`
}

// Stats are values projected by the query and never written back.
type Stats struct {
	voting.Tally
	CommentCount int
	FlagCount    int
}

func (s *Submission) Base36ID() string {
	return common.Base36(s.ID)
}

func (s *Submission) Fullname() string {
	return "t2_" + s.Base36ID()
}

func (s *Submission) Permalink() string {
	return "/post/" + s.Base36ID()
}

func (s *Submission) Score() int {
	return s.Stats.Score()
}

func (s *Submission) ScorePercent() int {
	return s.Stats.Percent()
}

func (s *Submission) ScoreFuzzed(rng *rand.Rand) int {
	return voting.Fuzz(s.Score(), rng)
}

// Domain is the host of the link without a leading "www.".
func (s *Submission) Domain() string {
	if s.URL == "" {
		return textPostDomain
	}
	u, err := url.Parse(s.URL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(u.Host, "www.")
}

// Age is the number of seconds since creation.
func (s *Submission) Age(now time.Time) int64 {
	return now.Unix() - s.CreatedUTC
}

func (s *Submission) AgeString(now time.Time) string {
	return RelativeTime(s.CreatedUTC, now)
}

func (s *Submission) EditedString(now time.Time) string {
	return RelativeTime(s.EditedUTC, now)
}

func (s *Submission) CreatedDate() string {
	return time.Unix(s.CreatedUTC, 0).UTC().Format("02 January 2006")
}

func (s *Submission) EditedDate() string {
	return time.Unix(s.EditedUTC, 0).UTC().Format("02 January 2006")
}

func CreatedStr(ts int64) string {
	return time.Unix(ts, 0).UTC().Format("03:04 PM on 02 Jan 2006")
}

// ThumbURL points at the stored thumbnail, at the image itself for image
// posts, or is empty.
func (s *Submission) ThumbURL(storageURL func(key string) string) string {
	switch {
	case s.HasThumb:
		return storageURL(s.ThumbKey())
	case s.IsImage:
		return s.URL
	}
	return ""
}

func (s *Submission) ThumbKey() string {
	return fmt.Sprintf("posts/%s/thumb.png", s.Base36ID())
}

const (
	minute = 60
	hour   = 3600
	day    = 86400
	month  = 2592000
)

func plural(n int64, unit string) string {
	if n > 1 {
		unit += "s"
	}
	return fmt.Sprintf("%d %s ago", n, unit)
}

// RelativeTime formats how long ago ts was. Beyond 30 days it counts
// calendar months, and whole years once that reaches 12.
func RelativeTime(ts int64, now time.Time) string {
	age := now.Unix() - ts
	switch {
	case age < minute:
		return "just now"
	case age < hour:
		return plural(age/minute, "minute")
	case age < day:
		return plural(age/hour, "hour")
	case age < month:
		return plural(age/day, "day")
	}

	n := now.UTC()
	t := time.Unix(ts, 0).UTC()
	months := int64(n.Month()-t.Month()) + 12*int64(n.Year()-t.Year())
	if months < 1 {
		months = 1
	}
	if months < 12 {
		return plural(months, "month")
	}
	return plural(months/12, "year")
}
