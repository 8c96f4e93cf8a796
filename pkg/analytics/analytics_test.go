package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	gomock "github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2020, time.June, 15, 12, 0, 0, 0, time.UTC)

const (
	nowUnix  = int64(1592222400)
	midnight = int64(1592179200)
	daySecs  = int64(86400)
)

func TestCutoffs(t *testing.T) {
	assert.Equal(t, []int64{nowUnix, midnight, midnight - daySecs, midnight - 2*daySecs}, Cutoffs(now, 3))

	// server zone does not shift the day boundaries
	east := now.In(time.FixedZone("UTC+9", 9*3600))
	assert.Equal(t, Cutoffs(now, 2), Cutoffs(east, 2))
}

func TestCollect(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	users := NewMockIUserCounter(ctrl)

	gomock.InOrder(
		users.EXPECT().CountCreatedBetween(gomock.Any(), midnight, nowUnix).Return(4, nil),
		users.EXPECT().CountCreatedBetween(gomock.Any(), midnight-daySecs, midnight).Return(7, nil),
	)
	users.EXPECT().CountActive(gomock.Any()).Return(120, nil)

	stats, err := Collect(context.TODO(), users, now, 2)
	require.NoError(t, err)
	assert.Equal(t, 120, stats.CurrentTotalUsers)
	require.Len(t, stats.DailySignups, 2)
	assert.Equal(t, &DailySignups{Date: "15 Jun 2020", DayStart: midnight, Signups: 4}, stats.DailySignups[0])
	assert.Equal(t, &DailySignups{Date: "14 Jun 2020", DayStart: midnight - daySecs, Signups: 7}, stats.DailySignups[1])
}

func TestCollectFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	users := NewMockIUserCounter(ctrl)

	users.EXPECT().CountCreatedBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, errors.New("db down"))
	_, err := Collect(context.TODO(), users, now, 5)
	assert.Error(t, err)
}

func TestRenderChart(t *testing.T) {
	png, err := RenderChart(&UserStats{DailySignups: []*DailySignups{
		{DayStart: midnight, Signups: 3},
		{DayStart: midnight - daySecs, Signups: 0},
	}})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))

	_, err = RenderChart(&UserStats{DailySignups: []*DailySignups{{DayStart: midnight}}})
	assert.NoError(t, err)

	_, err = RenderChart(&UserStats{})
	assert.Error(t, err)
}

func TestUserStatData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	users := NewMockIUserCounter(ctrl)
	store := NewMockIStore(ctrl)

	h := NewAnalyticsHandler(users, store)
	h.Now = func() time.Time { return now }

	for _, days := range []string{"0", "366", "two"} {
		w := httptest.NewRecorder()
		h.UserStatData(w, httptest.NewRequest("GET", "/api/user_stat_data?days="+days, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, days)
	}

	t.Run("default window", func(t *testing.T) {
		users.EXPECT().CountCreatedBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return(1, nil).Times(DefaultDays)
		users.EXPECT().CountActive(gomock.Any()).Return(50, nil)
		store.EXPECT().Put(gomock.Any(), ChartKey, gomock.Any(), "image/png").Return(nil)

		w := httptest.NewRecorder()
		h.UserStatData(w, httptest.NewRequest("GET", "/api/user_stat_data", nil))
		require.Equal(t, http.StatusOK, w.Code)

		stats := new(UserStats)
		require.NoError(t, json.NewDecoder(w.Body).Decode(stats))
		assert.Equal(t, 50, stats.CurrentTotalUsers)
		assert.Len(t, stats.DailySignups, DefaultDays)
	})

	t.Run("upload failure still answers", func(t *testing.T) {
		users.EXPECT().CountCreatedBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return(2, nil).Times(3)
		users.EXPECT().CountActive(gomock.Any()).Return(50, nil)
		store.EXPECT().Put(gomock.Any(), ChartKey, gomock.Any(), "image/png").Return(errors.New("minio down"))

		w := httptest.NewRecorder()
		h.UserStatData(w, httptest.NewRequest("GET", "/api/user_stat_data?days=3", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"signups":2`)
	})
}
