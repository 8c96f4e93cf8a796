package voting

import (
	"errors"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"
)

const percentTTL = 60 * time.Second

// PercentCache memoizes upvote percentages per post for a minute.
type PercentCache struct {
	pool *redis.Pool
}

func NewPercentCache(pool *redis.Pool) *PercentCache {
	return &PercentCache{pool: pool}
}

func percentKey(postID int64) string {
	return fmt.Sprintf("score_percent:%d", postID)
}

// Percent returns the cached value for the post or computes it from the
// tally and stores it. Redis failures fall back to the computed value.
func (c *PercentCache) Percent(postID int64, t Tally) (int, error) {
	conn := c.pool.Get()
	defer conn.Close()

	cached, err := redis.Int(conn.Do("GET", percentKey(postID)))
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, redis.ErrNil) {
		return t.Percent(), fmt.Errorf("voting/cache: GET failed: %w", err)
	}

	p := t.Percent()
	if _, err := conn.Do("SET", percentKey(postID), p, "EX", int(percentTTL.Seconds())); err != nil {
		return p, fmt.Errorf("voting/cache: SET failed: %w", err)
	}
	return p, nil
}
