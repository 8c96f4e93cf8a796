package thumbs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"guilds/pkg/logger"
	"guilds/pkg/retry"
	"guilds/pkg/submission"
)

const (
	APIFlashEndpoint = "https://api.apiflash.com/v1/urltoimage"

	screenshotHeight = 720
	thumbnailWidth   = 300
	maxImageBytes    = 8 << 20
)

var ErrNotImage = errors.New("thumbs: screenshot response is not an image")

type (
	IStore interface {
		Put(ctx context.Context, key string, data []byte, contentType string) error
	}

	ISubmissionRepo interface {
		SetHasThumb(ctx context.Context, id int64) error
	}

	// Generator renders a screenshot of a link post and stores it as the
	// post thumbnail.
	Generator struct {
		Endpoint  string
		AccessKey string
		Client    *http.Client
		Store     IStore
		Posts     ISubmissionRepo
		Retry     retry.Policy
		Timeout   time.Duration

		wg sync.WaitGroup
	}
)

func NewGenerator(accessKey string, store IStore, posts ISubmissionRepo) *Generator {
	return &Generator{
		Endpoint:  APIFlashEndpoint,
		AccessKey: accessKey,
		Client:    &http.Client{Timeout: 30 * time.Second},
		Store:     store,
		Posts:     posts,
		Retry:     retry.Default,
		Timeout:   2 * time.Minute,
	}
}

func (g *Generator) screenshotURL(target string) string {
	q := url.Values{}
	q.Set("access_key", g.AccessKey)
	q.Set("format", "png")
	q.Set("height", fmt.Sprint(screenshotHeight))
	q.Set("response_type", "image")
	q.Set("thumbnail_width", fmt.Sprint(thumbnailWidth))
	q.Set("url", target)
	return g.Endpoint + "?" + q.Encode()
}

// Fetch downloads the screenshot of target. Client errors are not retried.
func (g *Generator) Fetch(ctx context.Context, target string) ([]byte, error) {
	return retry.Value(ctx, g.Retry, func(ctx context.Context) ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.screenshotURL(target), nil)
		if err != nil {
			return nil, retry.Permanent(err)
		}

		resp, err := g.Client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("thumbs: request failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			return nil, retry.Permanent(fmt.Errorf("thumbs: screenshot api answered %d", resp.StatusCode))
		}
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("thumbs: screenshot api answered %d", resp.StatusCode)
		}
		if !strings.HasPrefix(resp.Header.Get("Content-Type"), "image/") {
			return nil, retry.Permanent(ErrNotImage)
		}

		data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
		if err != nil {
			return nil, fmt.Errorf("thumbs: failed reading image: %w", err)
		}
		return data, nil
	})
}

// Generate fetches, uploads and flags the thumbnail of s.
func (g *Generator) Generate(ctx context.Context, s *submission.Submission) error {
	data, err := g.Fetch(ctx, s.URL)
	if err != nil {
		return err
	}

	err = g.Retry.Do(ctx, func(ctx context.Context) error {
		return g.Store.Put(ctx, s.ThumbKey(), data, "image/png")
	})
	if err != nil {
		return fmt.Errorf("thumbs: upload failed: %w", err)
	}

	if err := g.Posts.SetHasThumb(ctx, s.ID); err != nil {
		return fmt.Errorf("thumbs: failed flagging post %d: %w", s.ID, err)
	}
	s.HasThumb = true
	return nil
}

// Schedule generates the thumbnail in the background. Failures are logged.
func (g *Generator) Schedule(s *submission.Submission) {
	post := *s
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), g.Timeout)
		defer cancel()

		if err := g.Generate(ctx, &post); err != nil {
			logger.Log(ctx).Errorf("thumbnail for post %s failed: %v", post.Base36ID(), err)
			return
		}
		logger.Log(ctx).Infof("thumbnail for post %s stored", post.Base36ID())
	}()
}

// Wait blocks until every scheduled thumbnail is done.
func (g *Generator) Wait() {
	g.wg.Wait()
}
