package physics

import (
	"math"

	V "github.com/evanrock520-ciencias/ClothSDK/vector"
)

// DefaultTableSize is the bucket count used by a freshly constructed
// SpatialHash when the caller doesn't need a specific size. 10007 is prime,
// comfortably larger than a few thousand cloth particles without ballooning
// memory.
const DefaultTableSize = 10007

// SpatialHash is an open-addressed uniform grid used for the self-collision
// broad phase. Cells are identified by an integer (x,y,z) triple and mapped
// into a fixed table of buckets with the mixing hash from spec.md §4.2;
// particles are bucketed with a counting sort (prefix-sum cellStart) rather
// than a chained hash table, so Build never allocates per particle.
type SpatialHash struct {
	tableSize int
	cellSize  float64

	cellStart       []int // len tableSize+1, prefix sum of bucket counts
	particleIndices []int // particle index per slot, grouped by bucket
}

// NewSpatialHash allocates a hash with tableSize buckets and the given cell
// size. tableSize should be prime to spread clustered grid coordinates.
func NewSpatialHash(tableSize int, cellSize float64) *SpatialHash {
	if tableSize <= 0 {
		tableSize = DefaultTableSize
	}
	return &SpatialHash{
		tableSize: tableSize,
		cellSize:  cellSize,
		cellStart: make([]int, tableSize+1),
	}
}

// SetCellSize changes the cell edge length used by subsequent Build/Query
// calls. The Solver calls this once per frame, sizing cells to the contact
// thickness.
func (h *SpatialHash) SetCellSize(size float64) {
	h.cellSize = size
}

// CellSize returns the current cell edge length.
func (h *SpatialHash) CellSize() float64 {
	return h.cellSize
}

func (h *SpatialHash) hashCoords(x, y, z int) int {
	ux := uint32(x) * 73856093
	uy := uint32(y) * 19349663
	uz := uint32(z) * 83492791
	mixed := ux ^ uy ^ uz
	return int(mixed % uint32(h.tableSize))
}

func (h *SpatialHash) posToGrid(pos V.Vec3) (int, int, int) {
	s := h.cellSize
	if s < V.Epsilon {
		s = V.Epsilon
	}
	gx := int(math.Floor(pos[0] / s))
	gy := int(math.Floor(pos[1] / s))
	gz := int(math.Floor(pos[2] / s))
	return gx, gy, gz
}

// Build rebuilds the bucket table from the current particle positions. It
// is the only place in the hash that allocates — the two backing slices are
// reused across calls, growing only when the particle count grows.
func (h *SpatialHash) Build(particles []*Particle) {
	n := len(particles)
	for i := range h.cellStart {
		h.cellStart[i] = 0
	}

	if cap(h.particleIndices) < n {
		h.particleIndices = make([]int, n)
	} else {
		h.particleIndices = h.particleIndices[:n]
	}

	buckets := make([]int, n)
	for i, p := range particles {
		gx, gy, gz := h.posToGrid(p.Position)
		b := h.hashCoords(gx, gy, gz)
		buckets[i] = b
		h.cellStart[b]++
	}

	// Prefix sum so cellStart[b] becomes the first slot of bucket b and
	// cellStart[tableSize] holds the total particle count.
	sum := 0
	for b := 0; b < h.tableSize; b++ {
		c := h.cellStart[b]
		h.cellStart[b] = sum
		sum += c
	}
	h.cellStart[h.tableSize] = sum

	cursor := make([]int, h.tableSize)
	copy(cursor, h.cellStart[:h.tableSize])
	for i, b := range buckets {
		h.particleIndices[cursor[b]] = i
		cursor[b]++
	}
}

// Query appends into out the indices of every particle within radius of pos,
// scanning the 27 neighbor cells of pos's own cell. out is cleared first and
// reused across calls so the hot self-collision loop never allocates. Query
// does not exclude pos's own particle; callers that need i<j filtering (or
// self-exclusion) must do it themselves.
func (h *SpatialHash) Query(particles []*Particle, pos V.Vec3, radius float64, out *[]int) {
	*out = (*out)[:0]

	gx, gy, gz := h.posToGrid(pos)
	radiusSq := radius * radius

	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				b := h.hashCoords(gx+dx, gy+dy, gz+dz)
				start := h.cellStart[b]
				end := h.cellStart[b+1]
				for s := start; s < end; s++ {
					j := h.particleIndices[s]
					d := particles[j].Position.Sub(pos)
					if d.Dot(d) < radiusSq {
						*out = append(*out, j)
					}
				}
			}
		}
	}
}
