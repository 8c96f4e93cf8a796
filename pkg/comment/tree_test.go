package comment

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const root = "t2_1"

func c(id int64, parent string, score int) *Comment {
	return &Comment{ID: id, ParentFullname: parent, Score: score}
}

func ids(nodes []*Node) []int64 {
	out := []int64{}
	for _, n := range nodes {
		out = append(out, n.Comment.ID)
	}
	return out
}

func TestParseSort(t *testing.T) {
	for _, s := range []string{"hot", "top", "new", "disputed", "random"} {
		got, err := ParseSort(s)
		assert.NoError(t, err)
		assert.Equal(t, Sort(s), got)
	}

	got, err := ParseSort("")
	assert.NoError(t, err)
	assert.Equal(t, SortHot, got)

	_, err = ParseSort("best")
	assert.True(t, errors.Is(err, ErrUnknownSort))
}

func TestBuildTreeNesting(t *testing.T) {
	a := c(1, root, 0)
	b := c(2, root, 0)
	a1 := c(3, a.Fullname(), 0)
	a11 := c(4, a1.Fullname(), 0)
	b1 := c(5, b.Fullname(), 0)

	tree := BuildTree(root, []*Comment{a, b, a1, a11, b1})

	assert.Equal(t, []int64{2, 1}, ids(tree.Replies))
	assert.Equal(t, []int64{5}, ids(tree.Replies[0].Replies))
	assert.Equal(t, []int64{3}, ids(tree.Replies[1].Replies))
	assert.Equal(t, []int64{4}, ids(tree.Replies[1].Replies[0].Replies))
	assert.Empty(t, tree.Unattached)
	assert.Equal(t, 5, tree.Size())
}

func TestBuildTreeSiblingOrderIsReversed(t *testing.T) {
	// ascending by score, as fetched for "top"
	in := []*Comment{c(1, root, -2), c(2, root, 0), c(3, root, 4), c(4, root, 9)}
	tree := BuildTree(root, in)

	scores := []int{}
	for _, n := range tree.Replies {
		scores = append(scores, n.Comment.Score)
	}
	assert.Equal(t, []int{9, 4, 0, -2}, scores)
}

func TestBuildTreeOrphans(t *testing.T) {
	in := []*Comment{c(1, root, 0), c(2, "t3_zz", 0), c(3, "t2_other", 0)}
	tree := BuildTree(root, in)

	assert.Equal(t, []int64{1}, ids(tree.Replies))
	require.Len(t, tree.Unattached, 2)
	assert.Equal(t, 3, tree.Size()+len(tree.Unattached))
}

func TestBuildTreeDepthLimit(t *testing.T) {
	in := []*Comment{}
	parent := root
	for i := int64(1); i <= 12; i++ {
		cm := c(i, parent, 0)
		in = append(in, cm)
		parent = cm.Fullname()
	}

	tree := BuildTree(root, in)

	depth := 0
	for nodes := tree.Replies; len(nodes) > 0; nodes = nodes[0].Replies {
		depth++
	}
	assert.Equal(t, MaxDepth+1, depth)
	assert.Len(t, tree.Unattached, 12-(MaxDepth+1))
	assert.Equal(t, 12, tree.Size()+len(tree.Unattached))
}

func TestBuildTreeKeepsInput(t *testing.T) {
	in := []*Comment{c(1, root, 0), c(2, root, 0)}
	BuildTree(root, in)
	assert.Equal(t, int64(1), in[0].ID)
	assert.Equal(t, int64(2), in[1].ID)
}

func TestBuildTreeAccountsForEveryComment(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for n := 0; n <= 60; n++ {
		in := make([]*Comment, 0, n)
		for i := 1; i <= n; i++ {
			parent := root
			if i > 1 && rng.Intn(3) > 0 {
				parent = in[rng.Intn(len(in))].Fullname()
			}
			if rng.Intn(10) == 0 {
				parent = "t3_missing"
			}
			in = append(in, c(int64(i), parent, 0))
		}
		rng.Shuffle(len(in), func(i, j int) { in[i], in[j] = in[j], in[i] })

		tree := BuildTree(root, in)

		seen := map[int64]int{}
		var walk func([]*Node)
		walk = func(nodes []*Node) {
			for _, nd := range nodes {
				seen[nd.Comment.ID]++
				walk(nd.Replies)
			}
		}
		walk(tree.Replies)
		for _, u := range tree.Unattached {
			seen[u.ID]++
		}

		assert.Len(t, seen, n)
		for id, times := range seen {
			assert.Equal(t, 1, times, "comment %d placed %d times", id, times)
		}
	}
}

func TestSingle(t *testing.T) {
	target := c(7, "t3_1", 0)
	tree := Single(target)
	require.Len(t, tree.Replies, 1)
	assert.Same(t, target, tree.Replies[0].Comment)
	assert.Empty(t, tree.Replies[0].Replies)
}
