package main

import (
	"context"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/jaswdr/faker"

	"guilds/pkg/comment"
	. "guilds/pkg/common"
	"guilds/pkg/guild"
	"guilds/pkg/submission"
	"guilds/pkg/user"
)

var (
	f             = faker.New()
	onePassForAll = HashPass("sdfsdfsdf", RandStringRunes(8)) // salt must have len of 8
	boardNames    = []string{"programming", "music", "videos", "funny", "news", "fashion"}
)

type (
	seedUsers interface {
		Add(context.Context, *user.User) (int64, error)
		GetAll(context.Context) ([]*user.User, error)
	}
	seedBoards interface {
		Add(context.Context, *guild.Board) (int64, error)
	}
	seedPosts interface {
		Add(context.Context, *submission.Submission) (int64, error)
		Count(context.Context) (int, error)
	}
	seedComments interface {
		Add(context.Context, *comment.Comment) (int64, error)
	}
)

// seed fills an empty database with fake users, guilds, posts and comments.
func seed(ctx context.Context, users seedUsers, boards seedBoards, posts seedPosts, comments seedComments, rng *rand.Rand) {
	n, err := posts.Count(ctx)
	if err != nil {
		log.Fatalln("seed: can't count posts:", err)
	}
	if n > 0 {
		log.Printf("seed: %d posts found, nothing to do", n)
		return
	}

	authors, err := users.GetAll(ctx)
	if err != nil {
		log.Fatalln("seed: can't get all authors:", err)
	}
	if len(authors) == 0 {
		createAuthors(ctx, users)
		if authors, err = users.GetAll(ctx); err != nil {
			log.Fatalln("seed: can't get all authors:", err)
		}
	}

	boardIDs := make([]int64, 0, len(boardNames))
	for _, name := range boardNames {
		id, err := boards.Add(ctx, &guild.Board{Name: name, CreatedUTC: time.Now().Unix()})
		if err != nil {
			log.Fatalln("seed: can't add guild:", err)
		}
		boardIDs = append(boardIDs, id)
	}

	for i := 0; i <= 20; i++ {
		p := genPost(authors, boardIDs, rng)
		id, err := posts.Add(ctx, p)
		if err != nil {
			log.Fatalln("seed: can't add post:", err)
		}
		p.ID = id
		genComments(ctx, comments, authors, p, rng)
	}
	log.Println("seed: done")
}

func createAuthors(ctx context.Context, users seedUsers) {
	// User for experiments (not random)
	_, err := users.Add(ctx, &user.User{
		Username:   "pike",
		Password:   onePassForAll,
		CreatedUTC: time.Now().Unix(),
	})
	if err != nil {
		log.Fatalln("seed: can't create default user:", err)
	}
	for i := 1; i <= 5; i++ {
		u := &user.User{
			Username:   strings.ToLower(f.Person().FirstName()) + Base36(int64(i)),
			Password:   onePassForAll,
			CreatedUTC: f.Time().Time(time.Now()).Unix(),
		}
		if _, err := users.Add(ctx, u); err != nil {
			log.Fatalln("seed: can't add user:", err)
		}
	}
}

// genComments adds a few top level comments and replies to them.
func genComments(ctx context.Context, comments seedComments, users []*user.User, p *submission.Submission, rng *rand.Rand) {
	parents := []string{p.Fullname()}
	for i := 0; i <= rng.Intn(10); i++ {
		c := &comment.Comment{
			AuthorID:         randUser(users, rng).ID,
			ParentSubmission: p.ID,
			ParentFullname:   parents[rng.Intn(len(parents))],
			Body:             genText(rng),
			CreatedUTC:       p.CreatedUTC + int64(rng.Intn(86400)),
		}
		id, err := comments.Add(ctx, c)
		if err != nil {
			log.Fatalln("seed: can't add comment:", err)
		}
		c.ID = id
		parents = append(parents, c.Fullname())
	}
}

func genTitle(rng *rand.Rand) string {
	return strings.Join(f.Lorem().Words(rng.Intn(5)+3), " ")
}

func genText(rng *rand.Rand) string {
	return f.Lorem().Paragraph(rng.Intn(3) + 2)
}

func genPost(users []*user.User, boardIDs []int64, rng *rand.Rand) *submission.Submission {
	s := &submission.Submission{
		AuthorID:   randUser(users, rng).ID,
		Title:      genTitle(rng),
		CreatedUTC: f.Time().Time(time.Now()).Unix(),
		BoardID:    boardIDs[rng.Intn(len(boardIDs))],
		CreationIP: f.Internet().Ipv4(),
	}
	if rng.Intn(2) == 0 {
		s.URL = f.Internet().URL()
	} else {
		s.Body = genText(rng)
		s.BodyHTML = "<p>" + s.Body + "</p>"
	}
	return s
}

func randUser(users []*user.User, rng *rand.Rand) *user.User {
	return users[rng.Intn(len(users))]
}
