package physics

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/chewxy/math32"
	"github.com/google/uuid"

	"github.com/zeusync/vecmath/pkg/vec3"
)

// Grid is a uniform spatial hash over bodies. Cells are cubes of CellSize;
// their integer coordinates are hashed with xxhash, so distinct cells may
// share a bucket and every query filters by exact distance.
//
// The grid indexes the position a body had at its last Insert or Update.
// Moving a body with Integrate or Bound is not visible to queries until the
// body is passed to Update.
type Grid struct {
	mu       sync.RWMutex
	cellSize float32
	buckets  map[uint64][]*gridEntry
	bodies   map[uuid.UUID]*gridEntry
}

type gridEntry struct {
	body *Body
	pos  vec3.Vec3
	key  uint64
}

type cell struct{ x, y, z int32 }

func NewGrid(cellSize float32) (*Grid, error) {
	if !(cellSize > 0) || math32.IsInf(cellSize, 1) {
		return nil, ErrInvalidCellSize
	}
	return &Grid{
		cellSize: cellSize,
		buckets:  make(map[uint64][]*gridEntry),
		bodies:   make(map[uuid.UUID]*gridEntry),
	}, nil
}

func (g *Grid) CellSize() float32 { return g.cellSize }

func (g *Grid) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.bodies)
}

// Insert adds b at its current position, or re-indexes it if it is already
// in the grid.
func (g *Grid) Insert(b *Body) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.removeLocked(b.ID)
	g.insertLocked(b)
}

// Update re-indexes b at its current position. It reports false when b is
// not in the grid.
func (g *Grid) Update(b *Body) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	entry, ok := g.bodies[b.ID]
	if !ok {
		return false
	}
	if key := hashCell(g.cellOf(b.Position)); key == entry.key {
		entry.body = b
		entry.pos = b.Position
		return true
	}
	g.removeLocked(b.ID)
	g.insertLocked(b)
	return true
}

func (g *Grid) Remove(id uuid.UUID) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.removeLocked(id)
}

func (g *Grid) insertLocked(b *Body) {
	entry := &gridEntry{body: b, pos: b.Position, key: hashCell(g.cellOf(b.Position))}
	g.buckets[entry.key] = append(g.buckets[entry.key], entry)
	g.bodies[b.ID] = entry
}

func (g *Grid) removeLocked(id uuid.UUID) bool {
	entry, ok := g.bodies[id]
	if !ok {
		return false
	}
	bucket := g.buckets[entry.key]
	for i, e := range bucket {
		if e == entry {
			bucket[i] = bucket[len(bucket)-1]
			bucket[len(bucket)-1] = nil
			bucket = bucket[:len(bucket)-1]
			break
		}
	}
	if len(bucket) == 0 {
		delete(g.buckets, entry.key)
	} else {
		g.buckets[entry.key] = bucket
	}
	delete(g.bodies, id)
	return true
}

// Query returns the bodies whose indexed position lies within radius of
// center. A body moved since its last Insert or Update is matched at the
// position it had then.
func (g *Grid) Query(center vec3.Vec3, radius float32) []*Body {
	if !(radius >= 0) {
		return nil
	}
	r := vec3.New(radius, radius, radius)
	return g.collect(center.Sub(r), center.Add(r), func(pos vec3.Vec3) bool {
		return center.Dist(pos) <= radius
	})
}

// QueryBox returns the bodies whose indexed position lies inside the
// axis-aligned box spanned by a and b. The corners may be given in any order.
func (g *Grid) QueryBox(a, b vec3.Vec3) []*Body {
	lo, hi := a.Min(b), a.Max(b)
	return g.collect(lo, hi, func(pos vec3.Vec3) bool {
		return pos.Clamp(lo, hi) == pos
	})
}

func (g *Grid) collect(lo, hi vec3.Vec3, keep func(pos vec3.Vec3) bool) []*Body {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []*Body
	from, to := g.cellOf(lo), g.cellOf(hi)
	n := int64(len(g.bodies))
	dx := int64(to.x) - int64(from.x) + 1
	dy := int64(to.y) - int64(from.y) + 1
	dz := int64(to.z) - int64(from.z) + 1

	// scanning every body is cheaper than visiting mostly empty cells
	if dx > n || dy > n || dz > n || dx*dy > n || dx*dy*dz > n {
		for _, entry := range g.bodies {
			if keep(entry.pos) {
				out = append(out, entry.body)
			}
		}
		return out
	}

	// int64 counters: to may be math.MaxInt32, where an int32 would wrap
	visited := make(map[uint64]struct{}, dx*dy*dz)
	for x := int64(from.x); x <= int64(to.x); x++ {
		for y := int64(from.y); y <= int64(to.y); y++ {
			for z := int64(from.z); z <= int64(to.z); z++ {
				key := hashCell(cell{int32(x), int32(y), int32(z)})
				if _, ok := visited[key]; ok {
					continue
				}
				visited[key] = struct{}{}
				for _, entry := range g.buckets[key] {
					if keep(entry.pos) {
						out = append(out, entry.body)
					}
				}
			}
		}
	}
	return out
}

func (g *Grid) cellOf(p vec3.Vec3) cell {
	c := p.DivScalar(g.cellSize)
	return cell{toCell(c.X), toCell(c.Y), toCell(c.Z)}
}

func toCell(v float32) int32 {
	f := math32.Floor(v)
	switch {
	case math32.IsNaN(f):
		return 0
	case f <= math.MinInt32:
		return math.MinInt32
	case f >= math.MaxInt32:
		return math.MaxInt32
	}
	return int32(f)
}

func hashCell(c cell) uint64 {
	var buf [12]byte
	binary.LittleEndian.PutUint32(buf[0:], uint32(c.x))
	binary.LittleEndian.PutUint32(buf[4:], uint32(c.y))
	binary.LittleEndian.PutUint32(buf[8:], uint32(c.z))
	return xxhash.Sum64(buf[:])
}
