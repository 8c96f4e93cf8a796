package voting

import (
	"math"
	"math/rand"
)

type (
	VotingScore int

	Vote struct {
		UserId int64       `json:"user"`
		Score  VotingScore `json:"vote"`
	}

	// Tally is the vote count of a post as projected by the database.
	Tally struct {
		Ups   int `json:"ups"`
		Downs int `json:"downs"`
	}
)

const (
	ScoreUp      VotingScore = 1
	ScoreDiscard VotingScore = 0
	ScoreDown    VotingScore = -1
)

// fuzzFactor is the relative width of the public score noise.
const fuzzFactor = 0.01

func (t Tally) Score() int {
	return t.Ups - t.Downs
}

// Percent is the upvote ratio as a rounded percentage, 0 without votes.
func (t Tally) Percent() int {
	total := t.Ups + t.Downs
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(t.Ups) / float64(total) * 100))
}

// FuzzBounds returns the inclusive range a fuzzed score is drawn from.
func FuzzBounds(score int) (int, int) {
	a := int(math.Floor(float64(score) * (1 - fuzzFactor)))
	b := int(math.Ceil(float64(score) * (1 + fuzzFactor)))
	// for negative scores the multipliers swap sides
	if a > b {
		a, b = b, a
	}
	return a, b
}

// Fuzz draws the displayed score uniformly from FuzzBounds so the exact
// count can't be scraped.
func Fuzz(score int, rng *rand.Rand) int {
	lo, hi := FuzzBounds(score)
	return lo + rng.Intn(hi-lo+1)
}
