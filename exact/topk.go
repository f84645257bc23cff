package exact

import (
	"container/heap"
	"sort"
)

// searchResult pairs a candidate row id with its ranking score.
type searchResult struct {
	id    int
	score float32
}

// resultMinHeap implements a score-keyed min-heap of search results. Among
// equal scores the higher id sits closer to the root so that it is evicted
// first, which makes the selector prefer lower ids on ties.
type resultMinHeap []searchResult

func (h resultMinHeap) Len() int { return len(h) }
func (h resultMinHeap) Less(i, j int) bool {
	if h[i].score == h[j].score {
		return h[i].id > h[j].id
	}
	return h[i].score < h[j].score
}
func (h resultMinHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *resultMinHeap) Push(x interface{}) { *h = append(*h, x.(searchResult)) }
func (h *resultMinHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// TopK returns the ids of the min(k, len(scores)) highest-scoring candidates,
// sorted by descending score. Candidate i carries score scores[i].
//
// It maintains a bounded min-heap of capacity k: a candidate enters only while
// the heap is under capacity or when its score strictly exceeds the current
// minimum, in which case the minimum is evicted. This runs in O(n log k) time
// with O(k) auxiliary memory. Ties on equal scores deterministically prefer
// the lower id.
func TopK(scores []float32, k int) []int {
	if k <= 0 || len(scores) == 0 {
		return nil
	}

	results := make(resultMinHeap, 0, k)
	for id, score := range scores {
		if results.Len() < k {
			heap.Push(&results, searchResult{id: id, score: score})
			continue
		}
		if score > results[0].score {
			results[0] = searchResult{id: id, score: score}
			heap.Fix(&results, 0)
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].score == results[j].score {
			return results[i].id < results[j].id
		}
		return results[i].score > results[j].score
	})

	ids := make([]int, len(results))
	for i, r := range results {
		ids[i] = r.id
	}
	return ids
}
