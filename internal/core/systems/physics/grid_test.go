package physics

import (
	"math"
	"math/rand/v2"
	"sort"
	"testing"
	"time"

	"github.com/chewxy/math32"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/vecmath/pkg/vec3"
)

func ids(bodies []*Body) []string {
	out := make([]string, len(bodies))
	for i, b := range bodies {
		out[i] = b.ID.String()
	}
	sort.Strings(out)
	return out
}

func bruteForce(bodies []*Body, keep func(*Body) bool) []*Body {
	var out []*Body
	for _, b := range bodies {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out
}

func TestNewGrid(t *testing.T) {
	for _, size := range []float32{0, -1, math32.NaN(), math32.Inf(1)} {
		_, err := NewGrid(size)
		assert.ErrorIs(t, err, ErrInvalidCellSize, "size %v", size)
	}

	g, err := NewGrid(2.5)
	require.NoError(t, err)
	assert.Equal(t, float32(2.5), g.CellSize())
	assert.Zero(t, g.Len())
}

func TestGridInsertRemove(t *testing.T) {
	g, err := NewGrid(1)
	require.NoError(t, err)

	a := NewBody(vec3.New(0.5, 0.5, 0.5), vec3.Vec3{})
	b := NewBody(vec3.New(0.6, 0.5, 0.5), vec3.Vec3{})
	g.Insert(a)
	g.Insert(b)
	g.Insert(a)
	assert.Equal(t, 2, g.Len())

	assert.True(t, g.Remove(a.ID))
	assert.False(t, g.Remove(a.ID))
	assert.False(t, g.Remove(uuid.New()))
	assert.Equal(t, 1, g.Len())

	got := g.Query(vec3.New(0.5, 0.5, 0.5), 1)
	assert.Equal(t, []*Body{b}, got)
}

func TestGridQuery(t *testing.T) {
	g, err := NewGrid(4)
	require.NoError(t, err)

	r := rand.New(rand.NewPCG(31, 32))
	bodies := make([]*Body, 300)
	for i := range bodies {
		pos := vec3.New(r.Float32()*100-50, r.Float32()*100-50, r.Float32()*20-10)
		bodies[i] = NewBody(pos, vec3.Vec3{})
		g.Insert(bodies[i])
	}

	for i := 0; i < 50; i++ {
		center := vec3.New(r.Float32()*100-50, r.Float32()*100-50, 0)
		radius := r.Float32() * 15

		want := bruteForce(bodies, func(b *Body) bool { return center.Dist(b.Position) <= radius })
		require.Equal(t, ids(want), ids(g.Query(center, radius)), "center %v radius %v", center, radius)
	}

	assert.Len(t, g.Query(vec3.Vec3{}, math32.Inf(1)), len(bodies))
	assert.Empty(t, g.Query(vec3.Vec3{}, -1))
	assert.Empty(t, g.Query(vec3.Vec3{}, math32.NaN()))
}

func TestGridQueryBox(t *testing.T) {
	g, err := NewGrid(3)
	require.NoError(t, err)

	r := rand.New(rand.NewPCG(33, 34))
	bodies := make([]*Body, 200)
	for i := range bodies {
		bodies[i] = NewBody(vec3.New(r.Float32()*60-30, r.Float32()*60-30, r.Float32()*60-30), vec3.Vec3{})
		g.Insert(bodies[i])
	}

	a, b := vec3.New(10, -5, 8), vec3.New(-6, 12, -8)
	lo, hi := a.Min(b), a.Max(b)
	want := bruteForce(bodies, func(body *Body) bool {
		p := body.Position
		return p.X >= lo.X && p.X <= hi.X && p.Y >= lo.Y && p.Y <= hi.Y && p.Z >= lo.Z && p.Z <= hi.Z
	})

	assert.Equal(t, ids(want), ids(g.QueryBox(a, b)))
	assert.Equal(t, ids(want), ids(g.QueryBox(b, a)), "corner order does not matter")
}

func TestGridUpdate(t *testing.T) {
	g, err := NewGrid(1)
	require.NoError(t, err)

	b := NewBody(vec3.New(0.5, 0.5, 0.5), vec3.New(10, 0, 0))
	g.Insert(b)

	b.Integrate(1)
	assert.Empty(t, g.Query(b.Position, 0.1), "stale bucket until Update")
	require.True(t, g.Update(b))
	assert.Equal(t, []*Body{b}, g.Query(b.Position, 0.1))
	assert.Empty(t, g.Query(vec3.New(0.5, 0.5, 0.5), 0.1))
	assert.Equal(t, 1, g.Len())

	assert.False(t, g.Update(NewBody(vec3.Vec3{}, vec3.Vec3{})))
}

func TestGridQueryAtCellLimits(t *testing.T) {
	g, err := NewGrid(1)
	require.NoError(t, err)

	for i := 0; i < 30; i++ {
		g.Insert(NewBody(vec3.New(float32(i), 0, 0), vec3.Vec3{}))
	}
	far := NewBody(vec3.New(1e30, 0, 0), vec3.Vec3{})
	near := NewBody(vec3.New(-1e30, 0, 0), vec3.Vec3{})
	g.Insert(far)
	g.Insert(near)

	tests := []struct {
		name   string
		center vec3.Vec3
		want   *Body
	}{
		{"max cell", vec3.New(1e30, 0, 0), far},
		{"min cell", vec3.New(-1e30, 0, 0), near},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			done := make(chan []*Body, 1)
			go func() { done <- g.Query(tt.center, 1) }()

			select {
			case got := <-done:
				assert.Equal(t, []*Body{tt.want}, got)
			case <-time.After(5 * time.Second):
				t.Fatal("query did not return")
			}

			boxDone := make(chan []*Body, 1)
			go func() { boxDone <- g.QueryBox(tt.center.SubScalar(1), tt.center.AddScalar(1)) }()

			select {
			case got := <-boxDone:
				assert.Equal(t, []*Body{tt.want}, got)
			case <-time.After(5 * time.Second):
				t.Fatal("box query did not return")
			}
		})
	}

	// the write lock must still be obtainable after the queries
	g.Insert(NewBody(vec3.New(100, 0, 0), vec3.Vec3{}))
	assert.Equal(t, 33, g.Len())
}

// Queries see the position from the last Insert or Update, whether they walk
// cells or scan every body.
func TestGridQueryUsesIndexedPosition(t *testing.T) {
	for _, fillers := range []int{0, 400} {
		g, err := NewGrid(1)
		require.NoError(t, err)
		for i := 0; i < fillers; i++ {
			g.Insert(NewBody(vec3.New(float32(i), 0, 1000), vec3.Vec3{}))
		}

		oldPos := vec3.New(0.5, 0.5, 0.5)
		b := NewBody(oldPos, vec3.New(10, 0, 0))
		g.Insert(b)
		b.Integrate(1)
		newPos := b.Position

		assert.Equal(t, []*Body{b}, g.Query(oldPos, 3), "fillers %d", fillers)
		assert.Empty(t, g.Query(newPos, 3), "fillers %d", fillers)
		assert.Equal(t, []*Body{b}, g.QueryBox(oldPos.SubScalar(1), oldPos.AddScalar(1)), "fillers %d", fillers)

		require.True(t, g.Update(b))
		assert.Empty(t, g.Query(oldPos, 3), "fillers %d", fillers)
		assert.Equal(t, []*Body{b}, g.Query(newPos, 3), "fillers %d", fillers)
	}
}

func TestGridUpdateWithinCell(t *testing.T) {
	g, err := NewGrid(10)
	require.NoError(t, err)

	b := NewBody(vec3.New(1, 1, 1), vec3.New(1, 0, 0))
	g.Insert(b)
	b.Integrate(3)
	require.True(t, g.Update(b))

	assert.Empty(t, g.Query(vec3.New(1, 1, 1), 0.5))
	assert.Equal(t, []*Body{b}, g.Query(vec3.New(4, 1, 1), 0.5))
}

func TestToCell(t *testing.T) {
	assert.Equal(t, int32(0), toCell(0.9))
	assert.Equal(t, int32(-1), toCell(-0.1))
	assert.Equal(t, int32(0), toCell(math32.NaN()))
	assert.Equal(t, int32(math.MaxInt32), toCell(math32.Inf(1)))
	assert.Equal(t, int32(math.MinInt32), toCell(math32.Inf(-1)))
}
