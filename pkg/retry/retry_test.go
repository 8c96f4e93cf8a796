package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var fast = Policy{
	MaxRetries:      3,
	InitialInterval: time.Millisecond,
	MaxInterval:     2 * time.Millisecond,
	MaxElapsedTime:  time.Second,
}

func TestDoRetriesUntilSuccess(t *testing.T) {
	calls := 0
	err := fast.Do(context.Background(), func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("flaky")
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDoGivesUp(t *testing.T) {
	calls := 0
	boom := errors.New("down")
	err := fast.Do(context.Background(), func(context.Context) error {
		calls++
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 4, calls)
}

func TestPermanentStopsAtOnce(t *testing.T) {
	calls := 0
	denied := errors.New("403")
	err := fast.Do(context.Background(), func(context.Context) error {
		calls++
		return Permanent(denied)
	})
	assert.Equal(t, denied, err)
	assert.Equal(t, 1, calls)
}

func TestValue(t *testing.T) {
	n := 0
	v, err := Value(context.Background(), fast, func(context.Context) (string, error) {
		n++
		if n == 1 {
			return "", errors.New("once")
		}
		return "ok", nil
	})
	assert.NoError(t, err)
	assert.Equal(t, "ok", v)
}
