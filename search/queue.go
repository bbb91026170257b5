package search

import "github.com/katalvlaran/sokosolve/ttable"

// entry pairs a queued record with the cost key it was stored under;
// getBest returns only the record, not the stored cost.
type entry struct {
	record *ttable.Record
	cost   int
}

// bucketQueue is an array-of-FIFO-lists priority structure: O(1)
// insert, amortised O(1) get_best via a shortestCost cursor that
// advances past empty lists and moves back only when store adds an
// entry below it. Ties within one cost key
// are broken LIFO (depth-first preference), matching "pops the tail of
// the first non-empty list".
type bucketQueue struct {
	lists        [][]entry
	shortestCost int
	longestCost  int
	size         int
}

func newBucketQueue() *bucketQueue {
	return &bucketQueue{shortestCost: 1 << 30}
}

// store appends record under cost, growing lists as needed.
func (q *bucketQueue) store(record *ttable.Record, cost int) {
	if cost < 0 {
		cost = 0
	}
	for len(q.lists) <= cost {
		q.lists = append(q.lists, nil)
	}
	q.lists[cost] = append(q.lists[cost], entry{record: record, cost: cost})
	q.size++
	if cost < q.shortestCost {
		q.shortestCost = cost
	}
	if cost > q.longestCost {
		q.longestCost = cost
	}
}

// empty reports whether the queue holds no entries.
func (q *bucketQueue) empty() bool {
	return q.size == 0
}

// getBest scans from shortestCost upward, pops the tail of the first
// non-empty list, and advances shortestCost past any lists it found
// empty along the way.
func (q *bucketQueue) getBest() (*ttable.Record, bool) {
	for q.shortestCost <= q.longestCost {
		list := q.lists[q.shortestCost]
		if len(list) == 0 {
			q.shortestCost++
			continue
		}
		last := list[len(list)-1]
		q.lists[q.shortestCost] = list[:len(list)-1]
		q.size--

		return last.record, true
	}

	return nil, false
}

// reset clears the queue for reuse without reallocating its backing
// slices. runIDA does not call it; it builds a fresh queue per outer
// iteration.
func (q *bucketQueue) reset() {
	for i := range q.lists {
		q.lists[i] = q.lists[i][:0]
	}
	q.shortestCost = 1 << 30
	q.longestCost = 0
	q.size = 0
}
