package tsp

import "container/heap"

// mstEstimate returns the weight of a minimum spanning tree over cities,
// using the (directed) costs g[u][v] from a tree vertex u to a candidate v.
// +Inf entries are treated as absent edges.
//
// Policy:
//   - fewer than two cities ⇒ 0;
//   - some city unreachable from the start vertex (cities[0]) ⇒ +Inf.
//
// Steps (Prim with a binary min-heap, lazy deletion):
//  1. Push (0, start).
//  2. Pop the lightest entry; skip it if its city is already in the tree.
//  3. Add its weight, mark the city, push every finite edge to cities
//     still outside the tree.
//
// Complexity: O(k² log k) for k = len(cities).
func (g grid) mstEstimate(cities []int) float64 {
	if len(cities) < 2 {
		return 0
	}

	// Membership and tree flags indexed by city id.
	var (
		inSet  = make([]bool, g.n)
		inTree = make([]bool, g.n)
		c      int
	)
	for _, c = range cities {
		inSet[c] = true
	}

	pq := &edgePQ{{w: 0, v: cities[0]}}
	heap.Init(pq)

	var (
		total float64
		added int
		u     int
		w     float64
	)
	for pq.Len() > 0 && added < len(cities) {
		it := heap.Pop(pq).(pqItem)
		u = it.v
		if inTree[u] {
			continue
		}
		inTree[u] = true
		total += it.w
		added++

		for _, c = range cities {
			if inTree[c] || !inSet[c] {
				continue
			}
			if w = g.at(u, c); w != inf {
				heap.Push(pq, pqItem{w: w, v: c})
			}
		}
	}

	if added < len(cities) {
		return inf // disconnected within the unvisited set
	}

	return total
}

// pqItem is a candidate tree edge ending at city v with weight w.
type pqItem struct {
	w float64
	v int
}

// edgePQ implements heap.Interface as a min-heap of pqItem ordered by weight,
// then by city index so that pops are deterministic.
type edgePQ []pqItem

func (pq edgePQ) Len() int { return len(pq) }
func (pq edgePQ) Less(i, j int) bool {
	if pq[i].w == pq[j].w {
		return pq[i].v < pq[j].v
	}

	return pq[i].w < pq[j].w
}
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ) Push(x any) { *pq = append(*pq, x.(pqItem)) }

func (pq *edgePQ) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}
