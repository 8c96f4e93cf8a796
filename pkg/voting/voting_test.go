package voting

import (
	"math/rand"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gomodule/redigo/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercent(t *testing.T) {
	cases := []struct {
		tally Tally
		want  int
	}{
		{Tally{0, 0}, 0},
		{Tally{3, 1}, 75},
		{Tally{1, 0}, 100},
		{Tally{0, 4}, 0},
		{Tally{2, 1}, 67},
		{Tally{1, 2}, 33},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.tally.Percent(), "%+v", c.tally)
	}
	assert.Equal(t, 2, Tally{3, 1}.Score())
}

func TestFuzzStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, score := range []int{0, 1, 5, 99, 100, 1234, -1, -100, -5000} {
		lo, hi := FuzzBounds(score)
		assert.LessOrEqual(t, lo, hi)
		for i := 0; i < 200; i++ {
			got := Fuzz(score, rng)
			assert.GreaterOrEqual(t, got, lo, "score %d", score)
			assert.LessOrEqual(t, got, hi, "score %d", score)
		}
	}
	assert.Equal(t, 0, Fuzz(0, rng))
}

func TestFuzzSpreadsOverRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		seen[Fuzz(1000, rng)] = true
	}
	lo, hi := FuzzBounds(1000)
	assert.True(t, seen[lo])
	assert.True(t, seen[hi])
}

func TestPercentCache(t *testing.T) {
	mr := miniredis.RunT(t)
	pool := &redis.Pool{Dial: func() (redis.Conn, error) { return redis.Dial("tcp", mr.Addr()) }}
	defer pool.Close()
	c := NewPercentCache(pool)

	p, err := c.Percent(9, Tally{3, 1})
	require.NoError(t, err)
	assert.Equal(t, 75, p)

	// the cached value wins while fresh
	p, err = c.Percent(9, Tally{0, 5})
	require.NoError(t, err)
	assert.Equal(t, 75, p)

	mr.FastForward(61 * time.Second)
	p, err = c.Percent(9, Tally{0, 5})
	require.NoError(t, err)
	assert.Equal(t, 0, p)
}
