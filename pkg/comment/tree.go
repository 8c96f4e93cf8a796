package comment

import (
	"errors"
	"fmt"
)

// MaxDepth is how many layers get expanded. Replies of the last expanded
// layer are still attached but not expanded themselves.
const MaxDepth = 8

type Sort string

const (
	SortHot      Sort = "hot"
	SortTop      Sort = "top"
	SortNew      Sort = "new"
	SortDisputed Sort = "disputed"
	SortRandom   Sort = "random"
)

var ErrUnknownSort = errors.New("comment: unknown sort")

func ParseSort(s string) (Sort, error) {
	switch Sort(s) {
	case "":
		return SortHot, nil
	case SortHot, SortTop, SortNew, SortDisputed, SortRandom:
		return Sort(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSort, s)
}

type Node struct {
	Comment *Comment `json:"comment"`
	Replies []*Node  `json:"replies"`
}

type Tree struct {
	Replies []*Node `json:"replies"`
	// Unattached holds comments whose parent is not in the tree, either
	// because it does not exist or because it sits below MaxDepth.
	Unattached []*Comment `json:"-"`
}

// Size counts the comments placed in the tree.
func (t *Tree) Size() int {
	var count func([]*Node) int
	count = func(nodes []*Node) int {
		n := len(nodes)
		for _, c := range nodes {
			n += count(c.Replies)
		}
		return n
	}
	return count(t.Replies)
}

// BuildTree nests comments under rootFullname. The scan runs from the end
// of the list, so siblings come out in reverse input order: feed it
// ascending by rank to display descending. The input slice is not changed.
func BuildTree(rootFullname string, comments []*Comment) *Tree {
	pending := make([]*Comment, len(comments))
	copy(pending, comments)

	var attach func(fullname string, layer int) []*Node
	attach = func(fullname string, layer int) []*Node {
		replies := []*Node{}
		for i := len(pending) - 1; i >= 0; i-- {
			if pending[i].ParentFullname == fullname {
				replies = append(replies, &Node{Comment: pending[i], Replies: []*Node{}})
				pending = append(pending[:i], pending[i+1:]...)
			}
		}
		if layer <= MaxDepth {
			for _, r := range replies {
				r.Replies = attach(r.Comment.Fullname(), layer+1)
			}
		}
		return replies
	}

	t := &Tree{Replies: attach(rootFullname, 1)}
	t.Unattached = pending
	return t
}

// Single is the permalink view of one comment: no other comments are loaded.
func Single(c *Comment) *Tree {
	return &Tree{Replies: []*Node{{Comment: c, Replies: []*Node{}}}, Unattached: []*Comment{}}
}
