package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// regionBFS returns the 4-connected region of (0,0)'s color, computed breadth-first.
func regionBFS(g Grid) map[point]bool {
	from := g.At(0, 0)
	seen := map[point]bool{{0, 0}: true}
	queue := []point{{0, 0}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range []point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			n := point{p.x + d.x, p.y + d.y}
			if !g.InBounds(n.x, n.y) || seen[n] || g.At(n.x, n.y) != from {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	return seen
}

func randomGrid(rng *rand.Rand, w, h int) Grid {
	g := NewGrid(w, h)
	for i := range g.Cells {
		g.Cells[i] = rng.Intn(ColorCount)
	}
	return g
}

func TestFloodFillMatchesBreadthFirstRegion(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 200; trial++ {
		w, h := 1+rng.Intn(FieldW), 1+rng.Intn(FieldH)
		before := randomGrid(rng, w, h)
		region := regionBFS(before)

		for to := 0; to < ColorCount; to++ {
			if to == before.At(0, 0) {
				continue
			}
			after := before.Clone()
			painted := after.FloodFill(0, 0, to)

			require.Equal(t, len(region), painted, "trial %d color %d", trial, to)
			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					if region[point{x, y}] {
						assert.Equal(t, to, after.At(x, y), "region cell (%d,%d)", x, y)
					} else {
						assert.Equal(t, before.At(x, y), after.At(x, y), "outside cell (%d,%d)", x, y)
					}
				}
			}
		}
	}
}

func TestFloodFillSameColorIsNoop(t *testing.T) {
	g := GridFromRows([][]int{
		{2, 2},
		{2, 3},
	})
	before := g.Clone()

	assert.Equal(t, 0, g.FloodFill(0, 0, 2))
	assert.True(t, g.Equal(before))
}

func TestFloodFillFollowsAllFourDirections(t *testing.T) {
	// The 0 at (0,2) is only reachable by moving left from (1,2) after going
	// down the middle column.
	g := GridFromRows([][]int{
		{0, 0, 1},
		{1, 0, 1},
		{0, 0, 1},
	})

	painted := g.FloodFill(0, 0, 4)

	assert.Equal(t, 5, painted)
	assert.Equal(t, "441\n141\n441", g.String())
}

func TestFloodFillLargeUniformGrid(t *testing.T) {
	g := NewGrid(200, 200)

	painted := g.FloodFill(0, 0, 3)

	assert.Equal(t, 200*200, painted)
	assert.True(t, g.Uniform())
}

func TestGridHelpers(t *testing.T) {
	g := GridFromRows([][]int{
		{0, 1, 2},
		{3, 4, 5},
	})

	assert.Equal(t, 3, g.W)
	assert.Equal(t, 2, g.H)
	assert.Equal(t, 5, g.At(2, 1))
	assert.True(t, g.InBounds(2, 1))
	assert.False(t, g.InBounds(3, 0))
	assert.False(t, g.InBounds(0, -1))
	assert.Equal(t, [][]int{{0, 1, 2}, {3, 4, 5}}, g.Rows())
	assert.False(t, g.Uniform())

	clone := g.Clone()
	clone.Set(0, 0, 5)
	assert.Equal(t, 0, g.At(0, 0), "clone must not share cells")
	assert.False(t, g.Equal(clone))
}

func TestGridFromRowsRejectsRaggedRows(t *testing.T) {
	assert.Panics(t, func() {
		GridFromRows([][]int{{0, 1}, {2}})
	})
}
