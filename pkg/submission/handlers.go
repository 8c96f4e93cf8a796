package submission

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"net/url"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/microcosm-cc/bluemonday"

	"guilds/pkg/comment"
	. "guilds/pkg/common"
	"guilds/pkg/guild"
	"guilds/pkg/logger"
	"guilds/pkg/sessions"
	"guilds/pkg/voting"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=submission

// ViewRemovedLevel is the admin level that sees removed posts in full.
const ViewRemovedLevel = 3

var imageExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".webp": true,
}

type (
	ISubmissionRepo interface {
		GetById(context.Context, int64) (*Submission, error)
		Add(context.Context, *Submission) (int64, error)
		ActiveFlags(context.Context, *Submission) (int, error)
		LookupDomain(context.Context, string) (*Domain, error)
	}

	ICommentRepo interface {
		GetById(context.Context, int64) (*comment.Comment, error)
		ListForSubmission(context.Context, int64, comment.Sort) ([]*comment.Comment, error)
	}

	IBoardRepo interface {
		GetByName(context.Context, string) (*guild.Board, error)
	}

	IPercentCache interface {
		Percent(postID int64, t voting.Tally) (int, error)
	}

	IThumbnailer interface {
		Schedule(*Submission)
	}

	SubmissionHandler struct {
		Posts      ISubmissionRepo
		Comments   ICommentRepo
		Boards     IBoardRepo
		Percents   IPercentCache
		Thumbs     IThumbnailer
		StorageURL func(key string) string
		Now        func() time.Time

		mu   sync.Mutex
		Rand *rand.Rand
	}

	// View is the JSON rendering of a post page.
	View struct {
		ID               string          `json:"id"`
		Fullname         string          `json:"fullname"`
		Permalink        string          `json:"permalink"`
		Removed          bool            `json:"removed"`
		BanReason        string          `json:"ban_reason,omitempty"`
		Title            string          `json:"title,omitempty"`
		URL              string          `json:"url,omitempty"`
		BodyHTML         string          `json:"body_html,omitempty"`
		Domain           string          `json:"domain,omitempty"`
		Score            int             `json:"score"`
		ScorePercent     int             `json:"score_percent"`
		CommentCount     int             `json:"comment_count"`
		ActiveFlags      int             `json:"active_flags,omitempty"`
		Age              string          `json:"age"`
		Edited           string          `json:"edited,omitempty"`
		CreatedDate      string          `json:"created_date"`
		DistinguishLevel int             `json:"distinguish_level"`
		Stickied         bool            `json:"stickied"`
		Over18           bool            `json:"over_18"`
		ThumbURL         string          `json:"thumb_url,omitempty"`
		Sort             string          `json:"sort"`
		LinkedComment    string          `json:"linked_comment,omitempty"`
		Comments         []*comment.Node `json:"comments"`
	}
)

func NewSubmissionHandler(posts ISubmissionRepo, comments ICommentRepo, boards IBoardRepo,
	percents IPercentCache, thumbs IThumbnailer, storageURL func(string) string) *SubmissionHandler {
	return &SubmissionHandler{
		Posts:      posts,
		Comments:   comments,
		Boards:     boards,
		Percents:   percents,
		Thumbs:     thumbs,
		StorageURL: storageURL,
		Rand:       rand.New(rand.NewSource(time.Now().UnixNano())),
		Now:        time.Now,
	}
}

func (sh *SubmissionHandler) load(w http.ResponseWriter, r *http.Request) (*Submission, bool) {
	id, err := ParseBase36(mux.Vars(r)["pid"])
	if err != nil {
		WriteMsg(w, "bad post id", http.StatusBadRequest)
		return nil, false
	}

	s, err := sh.Posts.GetById(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		WriteMsg(w, "post not found", http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		logger.Log(r.Context()).Errorf("can't get post with id %d: %v", id, err)
		WriteMsg(w, "failed loading post", http.StatusInternalServerError)
		return nil, false
	}
	return s, true
}

// Get renders a post with its comment tree in the requested sort order.
func (sh *SubmissionHandler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	sort, err := comment.ParseSort(r.URL.Query().Get("sort"))
	if err != nil {
		WriteMsg(w, "unknown sort", http.StatusUnprocessableEntity)
		return
	}

	s, ok := sh.load(w, r)
	if !ok {
		return
	}

	comments, err := sh.Comments.ListForSubmission(r.Context(), s.ID, sort)
	if err != nil {
		logger.Log(r.Context()).Errorf("can't load comments of post %d: %v", s.ID, err)
		WriteMsg(w, "failed loading comments", http.StatusInternalServerError)
		return
	}

	tree := comment.BuildTree(s.Fullname(), comments)
	if len(tree.Unattached) > 0 {
		logger.Log(r.Context()).Debugf("post %d: %d comments left out of the tree", s.ID, len(tree.Unattached))
	}

	WriteRespJSON(w, sh.view(r, s, sort, tree, ""))
}

// GetComment is the permalink page of one comment of a post.
func (sh *SubmissionHandler) GetComment(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	cid, err := ParseBase36(mux.Vars(r)["cid"])
	if err != nil {
		WriteMsg(w, "bad comment id", http.StatusBadRequest)
		return
	}

	s, ok := sh.load(w, r)
	if !ok {
		return
	}

	c, err := sh.Comments.GetById(r.Context(), cid)
	if errors.Is(err, comment.ErrNotFound) || (err == nil && c.ParentSubmission != s.ID) {
		WriteMsg(w, "comment not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Log(r.Context()).Errorf("can't get comment with id %d: %v", cid, err)
		WriteMsg(w, "failed loading comment", http.StatusInternalServerError)
		return
	}

	WriteRespJSON(w, sh.view(r, s, comment.SortHot, comment.Single(c), c.Base36ID()))
}

func (sh *SubmissionHandler) view(r *http.Request, s *Submission, sort comment.Sort, tree *comment.Tree, linked string) *View {
	now := sh.Now()
	v := &View{
		ID:          s.Base36ID(),
		Fullname:    s.Fullname(),
		Permalink:   s.Permalink(),
		Age:         s.AgeString(now),
		CreatedDate: s.CreatedDate(),
		Sort:        sortLabel(sort),
		Comments:    []*comment.Node{},
	}

	viewer, _ := sessions.GetAuthUser(r.Context())
	if (s.IsBanned || s.IsDeleted) && (viewer == nil || viewer.AdminLevel < ViewRemovedLevel) {
		v.Removed = true
		v.BanReason = s.BanReason
		return v
	}

	percent, err := sh.Percents.Percent(s.ID, s.Stats.Tally)
	if err != nil {
		logger.Log(r.Context()).Warnf("score percent cache failed for post %d: %v", s.ID, err)
	}

	v.Removed = s.IsBanned || s.IsDeleted
	v.BanReason = s.BanReason
	v.Title = s.Title
	v.URL = s.URL
	v.BodyHTML = s.BodyHTML
	v.Domain = s.Domain()
	sh.mu.Lock()
	v.Score = s.ScoreFuzzed(sh.Rand)
	sh.mu.Unlock()
	v.ScorePercent = percent
	v.CommentCount = s.Stats.CommentCount
	v.DistinguishLevel = s.DistinguishLevel
	v.Stickied = s.Stickied
	v.Over18 = s.Over18
	v.ThumbURL = s.ThumbURL(sh.StorageURL)
	v.LinkedComment = linked
	v.Comments = tree.Replies
	if s.EditedUTC > 0 {
		v.Edited = s.EditedString(now)
	}

	if viewer != nil && viewer.AdminLevel >= ViewRemovedLevel {
		flags, err := sh.Posts.ActiveFlags(r.Context(), s)
		if err != nil {
			logger.Log(r.Context()).Warnf("can't count flags of post %d: %v", s.ID, err)
		}
		v.ActiveFlags = flags
	}
	return v
}

// Submit creates a post from the submission form.
func (sh *SubmissionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	author, err := sessions.GetAuthUser(r.Context())
	if err != nil {
		WriteMsg(w, "not authorized", http.StatusUnauthorized)
		return
	}
	if author.Banned() {
		WriteMsg(w, "banned users can't post", http.StatusForbidden)
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	link := strings.TrimSpace(r.FormValue("url"))
	body := r.FormValue("body")
	if title == "" {
		WriteMsg(w, "title is required", http.StatusBadRequest)
		return
	}
	if link == "" && strings.TrimSpace(body) == "" {
		WriteMsg(w, "url or body is required", http.StatusBadRequest)
		return
	}

	board, err := sh.Boards.GetByName(r.Context(), r.FormValue("board"))
	if errors.Is(err, guild.ErrNotFound) {
		WriteMsg(w, "guild not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Log(r.Context()).Errorf("can't load guild %q: %v", r.FormValue("board"), err)
		WriteMsg(w, "failed loading guild", http.StatusInternalServerError)
		return
	}
	if board.IsBanned {
		WriteMsg(w, "guild is banned", http.StatusForbidden)
		return
	}

	s := &Submission{
		AuthorID:   author.ID,
		Title:      title,
		URL:        link,
		Body:       body,
		BodyHTML:   bluemonday.UGCPolicy().Sanitize(body),
		CreatedUTC: sh.Now().Unix(),
		BoardID:    board.ID,
		CreationIP: clientIP(r),
	}

	if link != "" {
		u, err := url.Parse(link)
		if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
			WriteMsg(w, "invalid url", http.StatusBadRequest)
			return
		}

		d, err := sh.Posts.LookupDomain(r.Context(), s.Domain())
		if err != nil {
			logger.Log(r.Context()).Errorf("can't look up domain %s: %v", s.Domain(), err)
			WriteMsg(w, "failed checking domain", http.StatusInternalServerError)
			return
		}
		if d != nil {
			if d.IsBanned {
				WriteMsg(w, "domain is banned: "+d.BanReason, http.StatusForbidden)
				return
			}
			s.DomainRef = d.ID
		}
		s.IsImage = imageExtensions[strings.ToLower(path.Ext(u.Path))]
	}

	id, err := sh.Posts.Add(r.Context(), s)
	if err != nil {
		logger.Log(r.Context()).Errorf("can't add post to the repo: %v", err)
		WriteMsg(w, "failed adding post", http.StatusInternalServerError)
		return
	}
	s.ID = id

	if s.URL != "" && !s.IsImage && sh.Thumbs != nil {
		sh.Thumbs.Schedule(s)
	}

	logger.Log(r.Context()).Infof("user %d submitted post %s to +%s", author.ID, s.Base36ID(), board.Name)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	WriteRespJSON(w, map[string]string{
		"id":        s.Base36ID(),
		"permalink": s.Permalink(),
	})
}

func sortLabel(s comment.Sort) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	host := r.RemoteAddr
	if i := strings.LastIndex(host, ":"); i > 0 {
		host = host[:i]
	}
	return host
}
