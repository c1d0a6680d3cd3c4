package cube

// Pattern databases: three projections of the full cubie state, corner
// orientation (CO), edge orientation (EO) and corner permutation (CP),
// each built by a reverse breadth-first search from the solved
// projected key outward. Because every move has
// an inverse in the 18-move table, the move graph on each projection is
// undirected, so "distance from solved" and "distance to solved" are
// the same number: one BFS from the solved key gives the exact distance
// for every reachable projected state.
const (
	coSize = 2187  // 3^7: eighth corner's twist is determined by the other seven
	eoSize = 2048  // 2^11: twelfth edge's flip is determined by the other eleven
	cpSize = 40320 // 8!
)

// unvisited marks a PDB slot that BFS has not yet reached. A correctly
// built table never leaves one behind: all three projections are the
// full reachable set for a physical cube (every projected state of a
// solvable cube is some scramble away from solved).
const unvisited = -1

// PDB holds the three admissible distance tables used by Heuristic.
type PDB struct {
	co []int8
	eo []int8
	cp []int8
}

// Table identifies one of the three pattern databases, for progress
// reporting during BuildPDB.
type Table int

const (
	TableCO Table = iota
	TableEO
	TableCP
)

func (t Table) String() string {
	switch t {
	case TableCO:
		return "corner-orientation"
	case TableEO:
		return "edge-orientation"
	case TableCP:
		return "corner-permutation"
	default:
		return "unknown-table"
	}
}

// BuildProgress is called periodically while a table is under
// construction, reporting how many of its total keys have been
// assigned a distance. NewEngine passes its caller's callback through:
// the solve command wires it to a zerolog progress line; tests pass nil.
type BuildProgress func(t Table, visited, total int)

// BuildPDB constructs all three pattern databases, blocking the caller
// until done. The three BFS passes run one after another on the
// calling goroutine, each one a plain queue-based breadth-first search
// over a few
// thousand to forty thousand keys, fast enough that parallelizing it
// would only add synchronization cost for no real gain.
func BuildPDB(progress BuildProgress) *PDB {
	return &PDB{
		co: bfsCO(progress),
		eo: bfsEO(progress),
		cp: bfsCP(progress),
	}
}

// CornerOrientDistance returns the BFS distance of s's corner
// orientation projection from solved.
func (p *PDB) CornerOrientDistance(s State) int {
	return int(p.co[coRank(s.CornerOrient)])
}

// EdgeOrientDistance returns the BFS distance of s's edge orientation
// projection from solved.
func (p *PDB) EdgeOrientDistance(s State) int {
	return int(p.eo[eoRank(s.EdgeOrient)])
}

// CornerPermDistance returns the BFS distance of s's corner
// permutation projection from solved.
func (p *PDB) CornerPermDistance(s State) int {
	return int(p.cp[cpRank(s.CornerPerm)])
}

func bfsCO(progress BuildProgress) []int8 {
	dist := make([]int8, coSize)
	for i := range dist {
		dist[i] = unvisited
	}
	start := coRank(Solved().CornerOrient)
	dist[start] = 0
	queue := make([]int32, 0, coSize)
	queue = append(queue, int32(start))
	visited := 1
	for head := 0; head < len(queue); head++ {
		idx := int(queue[head])
		arr := coUnrank(idx)
		d := dist[idx]
		for _, m := range moveTable {
			next := applyCornerOrient(arr, m)
			nidx := coRank(next)
			if dist[nidx] == unvisited {
				dist[nidx] = d + 1
				queue = append(queue, int32(nidx))
				visited++
				if progress != nil && visited%256 == 0 {
					progress(TableCO, visited, coSize)
				}
			}
		}
	}
	if progress != nil {
		progress(TableCO, visited, coSize)
	}
	return dist
}

func bfsEO(progress BuildProgress) []int8 {
	dist := make([]int8, eoSize)
	for i := range dist {
		dist[i] = unvisited
	}
	start := eoRank(Solved().EdgeOrient)
	dist[start] = 0
	queue := make([]int32, 0, eoSize)
	queue = append(queue, int32(start))
	visited := 1
	for head := 0; head < len(queue); head++ {
		idx := int(queue[head])
		arr := eoUnrank(idx)
		d := dist[idx]
		for _, m := range moveTable {
			next := applyEdgeOrient(arr, m)
			nidx := eoRank(next)
			if dist[nidx] == unvisited {
				dist[nidx] = d + 1
				queue = append(queue, int32(nidx))
				visited++
				if progress != nil && visited%256 == 0 {
					progress(TableEO, visited, eoSize)
				}
			}
		}
	}
	if progress != nil {
		progress(TableEO, visited, eoSize)
	}
	return dist
}

func bfsCP(progress BuildProgress) []int8 {
	dist := make([]int8, cpSize)
	for i := range dist {
		dist[i] = unvisited
	}
	start := cpRank(Solved().CornerPerm)
	dist[start] = 0
	queue := make([]int32, 0, cpSize)
	queue = append(queue, int32(start))
	visited := 1
	for head := 0; head < len(queue); head++ {
		idx := int(queue[head])
		arr := cpUnrank(idx)
		d := dist[idx]
		for _, m := range moveTable {
			next := applyCornerPerm(arr, m)
			nidx := cpRank(next)
			if dist[nidx] == unvisited {
				dist[nidx] = d + 1
				queue = append(queue, int32(nidx))
				visited++
				if progress != nil && visited%2048 == 0 {
					progress(TableCP, visited, cpSize)
				}
			}
		}
	}
	if progress != nil {
		progress(TableCP, visited, cpSize)
	}
	return dist
}

// applyCornerOrient, applyCornerPerm and applyEdgeOrient apply a move
// to a single projection of the full state, using the same tables
// applyDef uses for the full cube. Each projection is closed under the
// move group on its own: a move's effect on corner orientation only
// ever reads corner orientation values and the move's own permutation
// and twist tables, never the corner identities, and likewise for the
// other two projections — which is exactly what makes PDB construction
// tractable without tracking the full 8!*3^8*12!*2^12 state space.
func applyCornerOrient(arr [8]int8, m moveDef) [8]int8 {
	var r [8]int8
	for i := 0; i < 8; i++ {
		r[i] = (arr[m.cornerPermInv[i]] + m.cornerTwist[i]) % 3
	}
	return r
}

func applyCornerPerm(arr [8]int8, m moveDef) [8]int8 {
	var r [8]int8
	for i := 0; i < 8; i++ {
		r[i] = arr[m.cornerPermInv[i]]
	}
	return r
}

func applyEdgeOrient(arr [12]int8, m moveDef) [12]int8 {
	var r [12]int8
	for i := 0; i < 12; i++ {
		r[i] = (arr[m.edgePermInv[i]] + m.edgeFlip[i]) % 2
	}
	return r
}

// coRank/coUnrank encode corner orientation as a 7-digit base-3 number:
// the eighth corner's twist is forced by the sum-to-0-mod-3 invariant,
// so it carries no information and is dropped from the key.
func coRank(arr [8]int8) int {
	idx := 0
	for i := 0; i < 7; i++ {
		idx = idx*3 + int(arr[i])
	}
	return idx
}

func coUnrank(idx int) [8]int8 {
	var arr [8]int8
	sum := 0
	for i := 6; i >= 0; i-- {
		d := idx % 3
		arr[i] = int8(d)
		sum += d
		idx /= 3
	}
	arr[7] = int8((3 - sum%3) % 3)
	return arr
}

// eoRank/eoUnrank: same idea, base-2 over 11 digits.
func eoRank(arr [12]int8) int {
	idx := 0
	for i := 0; i < 11; i++ {
		idx = idx*2 + int(arr[i])
	}
	return idx
}

func eoUnrank(idx int) [12]int8 {
	var arr [12]int8
	sum := 0
	for i := 10; i >= 0; i-- {
		d := idx % 2
		arr[i] = int8(d)
		sum += d
		idx /= 2
	}
	arr[11] = int8(sum % 2)
	return arr
}

// cpFactorials holds (7-i)! for i in 0..7, the place values of the
// factorial number system used to rank/unrank corner permutations.
var cpFactorials = [8]int{5040, 720, 120, 24, 6, 2, 1, 1}

// cpRank computes the Lehmer code rank of a permutation of 0..7 by
// counting, for each position, how many later elements are smaller.
func cpRank(arr [8]int8) int {
	rank := 0
	for i := 0; i < 8; i++ {
		count := 0
		for j := i + 1; j < 8; j++ {
			if arr[j] < arr[i] {
				count++
			}
		}
		rank += count * cpFactorials[i]
	}
	return rank
}

// cpUnrank is the inverse of cpRank: peel off factorial-base digits and
// consume them from the list of values still available.
func cpUnrank(idx int) [8]int8 {
	available := []int8{0, 1, 2, 3, 4, 5, 6, 7}
	var arr [8]int8
	for i := 0; i < 8; i++ {
		f := cpFactorials[i]
		d := idx / f
		idx %= f
		arr[i] = available[d]
		available = append(available[:d], available[d+1:]...)
	}
	return arr
}
