package submission

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"guilds/pkg/voting"
)

var now = time.Date(2020, time.June, 15, 12, 0, 0, 0, time.UTC)

func TestIdentity(t *testing.T) {
	s := &Submission{ID: 46}
	assert.Equal(t, "1a", s.Base36ID())
	assert.Equal(t, "t2_1a", s.Fullname())
	assert.Equal(t, "/post/1a", s.Permalink())
}

func TestDomain(t *testing.T) {
	cases := map[string]string{
		"":                                "text post",
		"https://www.example.com/a?b=c":   "example.com",
		"http://blog.example.org/x":       "blog.example.org",
		"http://www.example.org:8080/x":   "example.org:8080",
		"https://wwwexample.com/no-strip": "wwwexample.com",
	}
	for in, want := range cases {
		s := &Submission{URL: in}
		assert.Equal(t, want, s.Domain(), in)
	}
}

func TestAgeString(t *testing.T) {
	cases := []struct {
		created time.Time
		want    string
	}{
		{now.Add(-30 * time.Second), "just now"},
		{now.Add(-61 * time.Second), "1 minute ago"},
		{now.Add(-120 * time.Second), "2 minutes ago"},
		{now.Add(-7200 * time.Second), "2 hours ago"},
		{now.Add(-172800 * time.Second), "2 days ago"},
		{time.Date(2020, time.May, 16, 0, 0, 0, 0, time.UTC), "1 month ago"},
		{time.Date(2020, time.April, 10, 0, 0, 0, 0, time.UTC), "2 months ago"},
		{time.Date(2019, time.January, 1, 0, 0, 0, 0, time.UTC), "1 year ago"},
		{time.Date(2018, time.June, 1, 0, 0, 0, 0, time.UTC), "2 years ago"},
	}
	for _, c := range cases {
		s := &Submission{CreatedUTC: c.created.Unix()}
		assert.Equal(t, c.want, s.AgeString(now), c.created.String())
	}
}

func TestEditedStringUsesEditTime(t *testing.T) {
	s := &Submission{
		CreatedUTC: time.Date(2018, time.June, 1, 0, 0, 0, 0, time.UTC).Unix(),
		EditedUTC:  now.Add(-3 * time.Hour).Unix(),
	}
	assert.Equal(t, "2 years ago", s.AgeString(now))
	assert.Equal(t, "3 hours ago", s.EditedString(now))
	assert.Equal(t, int64(3*3600), (&Submission{CreatedUTC: s.EditedUTC}).Age(now))
}

func TestDates(t *testing.T) {
	s := &Submission{CreatedUTC: 0, EditedUTC: now.Unix()}
	assert.Equal(t, "01 January 1970", s.CreatedDate())
	assert.Equal(t, "15 June 2020", s.EditedDate())
	assert.Equal(t, "12:00 AM on 01 Jan 1970", CreatedStr(0))
}

func TestThumbURL(t *testing.T) {
	storageURL := func(key string) string { return "https://cdn.test/" + key }

	s := &Submission{ID: 46, HasThumb: true, IsImage: true, URL: "https://i.test/a.png"}
	assert.Equal(t, "https://cdn.test/posts/1a/thumb.png", s.ThumbURL(storageURL))

	s.HasThumb = false
	assert.Equal(t, "https://i.test/a.png", s.ThumbURL(storageURL))

	s.IsImage = false
	assert.Equal(t, "", s.ThumbURL(storageURL))
}

func TestScores(t *testing.T) {
	s := &Submission{Stats: Stats{Tally: voting.Tally{Ups: 150, Downs: 50}}}
	assert.Equal(t, 100, s.Score())
	assert.Equal(t, 75, s.ScorePercent())

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		f := s.ScoreFuzzed(rng)
		assert.GreaterOrEqual(t, f, 99)
		assert.LessOrEqual(t, f, 101)
	}

	assert.Equal(t, 0, (&Submission{}).ScorePercent())
}
