package analytics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	. "guilds/pkg/common"
	"guilds/pkg/logger"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=analytics

type (
	IUserCounter interface {
		CountCreatedBetween(ctx context.Context, after, before int64) (int, error)
		CountActive(context.Context) (int, error)
	}

	IStore interface {
		Put(ctx context.Context, key string, data []byte, contentType string) error
	}

	AnalyticsHandler struct {
		Users IUserCounter
		Store IStore
		Now   func() time.Time
	}
)

func NewAnalyticsHandler(users IUserCounter, store IStore) *AnalyticsHandler {
	return &AnalyticsHandler{
		Users: users,
		Store: store,
		Now:   time.Now,
	}
}

// UserStatData reports daily signups and refreshes the growth chart.
func (ah *AnalyticsHandler) UserStatData(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	days := DefaultDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > MaxDays {
			WriteMsg(w, "days must be between 1 and 365", http.StatusBadRequest)
			return
		}
		days = n
	}

	stats, err := Collect(r.Context(), ah.Users, ah.Now(), days)
	if err != nil {
		logger.Log(r.Context()).Errorf("can't collect user stats: %v", err)
		WriteMsg(w, "failed collecting stats", http.StatusInternalServerError)
		return
	}

	ah.publishChart(r.Context(), stats)

	WriteRespJSON(w, stats)
}

func (ah *AnalyticsHandler) publishChart(ctx context.Context, stats *UserStats) {
	png, err := RenderChart(stats)
	if err != nil {
		logger.Log(ctx).Errorf("can't draw user growth chart: %v", err)
		return
	}
	if err := ah.Store.Put(ctx, ChartKey, png, "image/png"); err != nil {
		logger.Log(ctx).Errorf("can't upload user growth chart: %v", err)
		return
	}
	logger.Log(ctx).Debugf("user growth chart uploaded, %d bytes", len(png))
}
